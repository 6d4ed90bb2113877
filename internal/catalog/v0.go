package catalog

import "github.com/dantte-lp/mcproto/internal/protocol"

// registerV0 transcribes protocol version 0 ("13w42a") directly from
// original_source/fastmc/proto.py, translating each DSL line's type name to
// its internal/schema equivalent (e.g. python's "slot"/"metadata" meant the
// pre-1.8 wire shapes, registered here as "slot_legacy"/"metadata_legacy" to
// disambiguate from the 1.8 shapes added for later versions).
func registerV0() error {
	p := protocol.Get(0)
	p.SetName("13w42a")

	if err := registerHandshake0(p); err != nil {
		return err
	}
	if err := registerStatus0(p); err != nil {
		return err
	}
	if err := registerLogin0(p); err != nil {
		return err
	}
	if err := registerPlay0(p); err != nil {
		return err
	}
	return nil
}

func registerHandshake0(p *protocol.Protocol) error {
	return p.State(protocol.Handshake).FromClient(0x00, "Handshake", `
		version         varint
		addr            string
		port            ushort
		state           varint
	`)
}

func registerStatus0(p *protocol.Protocol) error {
	s := p.State(protocol.Status)
	if err := s.FromServer(0x00, "Response", `
		response        json
	`); err != nil {
		return err
	}
	if err := s.FromServer(0x01, "Ping", `
		time            long
	`); err != nil {
		return err
	}
	if err := s.FromClient(0x00, "Request", ""); err != nil {
		return err
	}
	return s.FromClient(0x01, "Ping", `
		time            long
	`)
}

func registerLogin0(p *protocol.Protocol) error {
	s := p.State(protocol.Login)
	if err := s.FromServer(0x00, "Disconnect", `
		reason          json
	`); err != nil {
		return err
	}
	if err := s.FromServer(0x01, "EncryptionRequest", `
		server_id       string
		public_key      short_byte_array
		challenge_token short_byte_array
	`); err != nil {
		return err
	}
	if err := s.FromServer(0x02, "LoginSuccess", `
		uuid            string
		username        string
	`); err != nil {
		return err
	}
	if err := s.FromClient(0x00, "LoginStart", `
		name            string
	`); err != nil {
		return err
	}
	return s.FromClient(0x01, "EncryptionResponse", `
		shared_secret   short_byte_array
		response_token  short_byte_array
	`)
}

func registerPlay0(p *protocol.Protocol) error {
	s := p.State(protocol.Play)
	for _, pkt := range playClientbound0 {
		if err := s.FromServer(pkt.id, pkt.name, pkt.dsl); err != nil {
			return err
		}
	}
	for _, pkt := range playServerbound0 {
		if err := s.FromClient(pkt.id, pkt.name, pkt.dsl); err != nil {
			return err
		}
	}
	return nil
}

type packetDef struct {
	id   uint32
	name string
	dsl  string
}

var playClientbound0 = []packetDef{
	{0x00, "KeepAlive", `
		keepalive_id    int
	`},
	{0x01, "JoinGame", `
		eid             int
		game_mode       ubyte
		dimension       byte
		difficulty      ubyte
		max_players     ubyte
		level_type      string
	`},
	{0x02, "ChatMessage", `
		chat            json
	`},
	{0x03, "TimeUpdate", `
		world_age       long
		time_of_day     long
	`},
	{0x04, "EntityEquipment", `
		eid             int
		slot            short
		item            slot_legacy
	`},
	{0x05, "SpawnPosition", `
		x               int
		y               int
		z               int
	`},
	{0x06, "HealthUpdate", `
		health          float
		food            short
		food_saturation float
	`},
	{0x07, "Respawn", `
		dimension       int
		difficulty      ubyte
		game_mode       ubyte
		level_type      string
	`},
	{0x08, "PlayerPositionAndLook", `
		x               double
		y               double
		z               double
		yaw             float
		pitch           float
		on_ground       bool
	`},
	{0x09, "HeldItemChange", `
		slot            byte
	`},
	{0x0a, "UseBed", `
		eid             int
		x               int
		y               byte
		z               int
	`},
	{0x0b, "Animation", `
		eid             varint
		animation       ubyte
	`},
	{0x0c, "SpawnPlayer", `
		eid             varint
		uuid            string
		name            string
		x               int32
		y               int32
		z               int32
		yaw             ubyte
		pitch           ubyte
		current_item    short
		metadata        metadata_legacy
	`},
	{0x0d, "CollectItem", `
		collected_eid   int
		collector_eid   int
	`},
	{0x0e, "SpawnObject", `
		eid             varint
		type            byte
		x               int32
		y               int32
		z               int32
		pitch           ubyte
		yaw             ubyte
		data            objdata
	`},
	{0x0f, "SpawnMob", `
		eid             varint
		type            ubyte
		x               int32
		y               int32
		z               int32
		pitch           ubyte
		head_pitch      ubyte
		yaw             ubyte
		velocity_x      short
		velocity_y      short
		velocity_z      short
		metadata        metadata_legacy
	`},
	{0x10, "SpawnPainting", `
		eid             varint
		title           string
		x               int
		y               int
		z               int
		direction       int
	`},
	{0x11, "SpawnExperienceOrb", `
		eid             varint
		x               int32
		y               int32
		z               int32
		count           short
	`},
	{0x12, "EntityVelocity", `
		eid             int
		velocity_x      short
		velocity_y      short
		velocity_z      short
	`},
	{0x13, "DestroyEntities", `
		eids            byte_int_array
	`},
	{0x14, "Entity", `
		eid             int
	`},
	{0x15, "EntityRelativeMove", `
		eid             int
		dx              byte32
		dy              byte32
		dz              byte32
	`},
	{0x16, "EntityLook", `
		eid             int
		yaw             ubyte
		pitch           ubyte
	`},
	{0x17, "EntityLookAndRelativeMove", `
		eid             int
		dx              byte32
		dy              byte32
		dz              byte32
		yaw             ubyte
		pitch           ubyte
	`},
	{0x18, "EntityTeleport", `
		eid             int
		x               int32
		y               int32
		z               int32
		yaw             ubyte
		pitch           ubyte
	`},
	{0x19, "EntityHeadLook", `
		eid             int
		head_yaw        ubyte
	`},
	{0x1a, "EntityStatus", `
		eid             int
		status          byte
	`},
	{0x1b, "AttachEntity", `
		eid             int
		vehicle_id      int
		leash           bool
	`},
	{0x1c, "EntityMetadata", `
		eid             int
		metadata        metadata_legacy
	`},
	{0x1d, "EntityEffect", `
		eid             int
		effect_id       byte
		amplifier       byte
		duration        short
	`},
	{0x1e, "RemoveEntityEffect", `
		eid             int
		effect_id       byte
	`},
	{0x1f, "SetExperience", `
		bar             float
		level           short
		total_exp       short
	`},
	{0x20, "EntityProperty", `
		eid             int
		properties      property_array_legacy
	`},
	{0x21, "ChunkData", `
		chunk_x         int
		chunk_z         int
		continuous      bool
		chunk_bitmap    ushort
		add_bitmap      ushort
		compressed      int_byte_array
	`},
	{0x22, "MultiBlockChange", `
		chunk_x         varint
		chunk_z         varint
		changes         changes_legacy
	`},
	{0x23, "BlockChange", `
		x               int
		y               ubyte
		z               int
		block_type      varint
		block_data      ubyte
	`},
	{0x24, "BlockAction", `
		x               int
		y               short
		z               int
		b1              ubyte
		b2              ubyte
		block_type      varint
	`},
	{0x25, "BlockBreakAnimation", `
		eid             varint
		x               int
		y               int
		z               int
		destroy_stage   byte
	`},
	{0x26, "MapChunkBulk", `
		bulk            chunk_bulk_legacy
	`},
	{0x27, "Explosion", `
		x               float
		y               float
		z               float
		radius          float
		records         explosion_records
		motion_x        float
		motion_y        float
		motion_z        float
	`},
	{0x28, "Effect", `
		effect_id       int
		x               int
		y               byte
		z               int
		data            int
		constant_volume bool
	`},
	{0x29, "SoundEffect", `
		sound           string
		x               int8
		y               int8
		z               int8
		volume          float
		pitch           ubyte
	`},
	{0x2a, "Particle", `
		particle        string
		x               float
		y               float
		z               float
		offset_x        float
		offset_y        float
		offset_z        float
		speed           float
		number          int
	`},
	{0x2b, "ChangeGameState", `
		reason          ubyte
		value           float
	`},
	{0x2c, "SpawnGlobalEntity", `
		eid             varint
		type            byte
		x               int
		y               int
		z               int
	`},
	{0x2d, "OpenWindow", `
		window_id       ubyte
		type            ubyte
		title           string
		slot_count      ubyte
		use_title       bool
		eid             int                 self.type == 11
	`},
	{0x2e, "CloseWindow", `
		window_id       ubyte
	`},
	{0x2f, "SetSlot", `
		window_id       ubyte
		slot            short
		item            slot_legacy
	`},
	{0x30, "WindowItem", `
		window_id       ubyte
		slots           slot_array
	`},
	{0x31, "WindowProperty", `
		window_id       ubyte
		property        short
		value           short
	`},
	{0x32, "ConfirmTransaction", `
		window_id       ubyte
		action_num      short
		accepted        bool
	`},
	{0x33, "UpdateSign", `
		x               int
		y               short
		z               int
		line1           string
		line2           string
		line3           string
		line4           string
	`},
	{0x34, "Maps", `
		map_id          varint
		data            short_byte_array
	`},
	{0x35, "UpdateBlockEntity", `
		x               int
		y               short
		z               int
		action          ubyte
		nbt             short_byte_array
	`},
	{0x36, "SignEditorOpen", `
		x               int
		y               int
		z               int
	`},
	{0x37, "Statistics", `
		stats           statistic_array
	`},
	{0x38, "PlayerListItem", `
		name            string
		online          bool
		ping            short
	`},
	{0x39, "PlayerAbility", `
		flags           byte
		flying_speed    float
		walking_speed   float
	`},
	{0x3a, "TabComplete", `
		completions     varint_string_array
	`},
	{0x3b, "ScoreboardObjective", `
		name            string
		value           string
		operation       byte
	`},
	{0x3c, "UpdateScore", `
		name            string
		remove          byte
		score_name      string              self.remove != 1
		value           int                 self.remove != 1
	`},
	{0x3d, "DisplayScoreboard", `
		position        byte
		score_name      string
	`},
	{0x3e, "Teams", `
		team_name       string
		mode            byte
		display_name    string              self.mode == 0 or self.mode == 2
		prefix          string              self.mode == 0 or self.mode == 2
		suffix          string              self.mode == 0 or self.mode == 2
		friendly_fire   byte                self.mode == 0 or self.mode == 2
		players         short_string_array  self.mode in (0, 3, 4)
	`},
	{0x3f, "PluginMessage", `
		channel         string
		data            short_byte_array
	`},
	{0x40, "Disconnect", `
		reason          json
	`},
}

var playServerbound0 = []packetDef{
	{0x00, "KeepAlive", `
		keepalive_id    int
	`},
	{0x01, "ChatMessage", `
		chat            string
	`},
	{0x02, "UseEntity", `
		target          int
		button          byte
	`},
	{0x03, "Player", `
		on_ground       bool
	`},
	{0x04, "PlayerPosition", `
		x               double
		y               double
		stance          double
		z               double
		on_ground       bool
	`},
	{0x05, "PlayerLook", `
		yaw             float
		pitch           float
		on_ground       bool
	`},
	{0x06, "PlayerPositionAndLook", `
		x               double
		y               double
		stance          double
		z               double
		yaw             float
		pitch           float
		on_ground       bool
	`},
	{0x07, "PlayerDigging", `
		status          byte
		x               int
		y               ubyte
		z               int
		face            byte
	`},
	{0x08, "BlockPlacement", `
		x               int
		y               ubyte
		z               int
		direction       byte
		held_item       slot_legacy
		cursor_x        byte
		cursor_y        byte
		cursor_z        byte
	`},
	{0x09, "HeldItemChange", `
		slot            short
	`},
	{0x0a, "Animation", `
		eid             int
		animation       ubyte
	`},
	{0x0b, "EntityAction", `
		eid             int
		action_id       byte
		jump_boost      int
	`},
	{0x0c, "SteerVehicle", `
		sideways        float
		forward         float
		jump            bool
		unmount         bool
	`},
	{0x0d, "CloseWindow", `
		window_id       byte
	`},
	{0x0e, "ClickWindow", `
		window_id       byte
		slot            short
		button          byte
		action_num      short
		mode            byte
		clicked_item    slot_legacy
	`},
	{0x0f, "ConfirmTransaction", `
		window_id       ubyte
		action_num      short
		accepted        bool
	`},
	{0x10, "CreativeInventoryAction", `
		slot            short
		clicked_item    slot_legacy
	`},
	{0x11, "EnchantItem", `
		window_id       ubyte
		enchantment     byte
	`},
	{0x12, "UpdateSign", `
		x               int
		y               short
		z               int
		line1           string
		line2           string
		line3           string
		line4           string
	`},
	{0x13, "PlayerAbilities", `
		flags           byte
		flying_speed    float
		walking_speed   float
	`},
	{0x14, "TabComplete", `
		text            string
	`},
	{0x15, "ClientSettings", `
		locale          string
		view_distance   byte
		chat_flags      byte
		unused          bool
		difficulty      byte
		show_cape       bool
	`},
	{0x16, "ClientStatus", `
		action_id       byte
	`},
	{0x17, "PluginMessage", `
		channel         string
		data            short_byte_array
	`},
}
