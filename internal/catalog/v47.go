package catalog

import "github.com/dantte-lp/mcproto/internal/protocol"

// registerV47 is a documented minimal extrapolation (original_source does
// not cover protocol version 47 / 1.8 either). Rather than reproduce every
// historical snapshot between 1.7.2 and 1.8, this adds exactly the packets
// needed to exercise each C2 composite codec the 1.8 generation introduces,
// plus the PLAY SetCompression packet spec.md names explicitly.
func registerV47() error {
	p := protocol.Get(47)
	p.SetName("1.8")
	p.BasedOn(5)

	play := p.State(protocol.Play)

	if err := play.FromServer(0x46, "SetCompression", `
		threshold       varint
	`); err != nil {
		return err
	}

	// 1.8 Slot: inline NBT instead of a raw nbt_size/bytes pair.
	if err := play.FromServer(0x04, "EntityEquipment", `
		eid             int
		slot            short
		item            slot
	`); err != nil {
		return err
	}

	// 1.8 binary uuid plus the 1.8 metadata generation (adds rotation).
	if err := play.FromServer(0x0c, "SpawnPlayer", `
		eid             varint
		uuid            uuid
		name            string
		x               int32
		y               int32
		z               int32
		yaw             ubyte
		pitch           ubyte
		current_item    short
		metadata        metadata
	`); err != nil {
		return err
	}
	if err := play.FromServer(0x0f, "SpawnMob", `
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
		metadata        metadata
	`); err != nil {
		return err
	}

	// 14w04a+ property array: varint modifier count.
	if err := play.FromServer(0x20, "EntityProperty", `
		eid             int
		properties      property_array
	`); err != nil {
		return err
	}

	// 14w26c+ multi-block-change record: packed nibble position + varint id.
	if err := play.FromServer(0x22, "MultiBlockChange", `
		chunk_x         varint
		chunk_z         varint
		changes         changes
	`); err != nil {
		return err
	}

	// position_packed: a single block-coordinate field replaces the
	// separate (int x, ubyte y, int z) triple, with block type and data
	// merged into one varint id.
	if err := play.FromServer(0x23, "BlockChange", `
		location        position_packed
		block_id        varint
	`); err != nil {
		return err
	}

	// 14w28a+ chunk-bulk record shape.
	if err := play.FromServer(0x26, "MapChunkBulk", `
		bulk            chunk_bulk
	`); err != nil {
		return err
	}

	// map icons alongside the existing short_byte_array map-pixel payload.
	if err := play.FromServer(0x34, "Maps", `
		map_id          varint
		icons           map_icons
		data            short_byte_array
	`); err != nil {
		return err
	}

	// player-list action union replaces the legacy 3-field add/remove form.
	return play.FromServer(0x38, "PlayerListItem", `
		action          player_list_action
	`)
}
