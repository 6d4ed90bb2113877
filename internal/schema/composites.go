package schema

import "github.com/dantte-lp/mcproto/internal/wire"

// init populates compositeTable: every non-fused DSL type name mapped to a
// reader/writer pair over the wire package. Table-driven rather than a
// switch so Compile's unknown-type check and buildPlan's dispatch share one
// source of truth.
func init() {
	compositeTable = map[string]compositeCodec{
		"string": {
			read:  func(b *wire.ReadBuffer) (any, error) { return wire.ReadString(b) },
			write: func(w *wire.WriteBuffer, v any) error { return wire.WriteString(w, v.(string)) },
		},
		"json": {
			read:  func(b *wire.ReadBuffer) (any, error) { return wire.ReadJSON(b) },
			write: func(w *wire.WriteBuffer, v any) error { return wire.WriteJSON(w, v) },
		},
		"varint": {
			read:  func(b *wire.ReadBuffer) (any, error) { return wire.ReadVarint(b) },
			write: func(w *wire.WriteBuffer, v any) error { return wire.WriteVarint(w, v.(uint32)) },
		},
		"short_byte_array": {
			read:  func(b *wire.ReadBuffer) (any, error) { return wire.ReadShortByteArray(b) },
			write: func(w *wire.WriteBuffer, v any) error { return wire.WriteShortByteArray(w, v.([]byte)) },
		},
		"int_byte_array": {
			read:  func(b *wire.ReadBuffer) (any, error) { return wire.ReadIntByteArray(b) },
			write: func(w *wire.WriteBuffer, v any) error { return wire.WriteIntByteArray(w, v.([]byte)) },
		},
		"varint_byte_array": {
			read:  func(b *wire.ReadBuffer) (any, error) { return wire.ReadVarintByteArray(b) },
			write: func(w *wire.WriteBuffer, v any) error { return wire.WriteVarintByteArray(w, v.([]byte)) },
		},
		"bytes_exhaustive": {
			read:  func(b *wire.ReadBuffer) (any, error) { return wire.ReadBytesExhaustive(b) },
			write: func(w *wire.WriteBuffer, v any) error { return wire.WriteBytesExhaustive(w, v.([]byte)) },
		},
		"position": {
			read:  func(b *wire.ReadBuffer) (any, error) { return wire.ReadPosition(b) },
			write: func(w *wire.WriteBuffer, v any) error { return wire.WritePosition(w, v.(wire.Position)) },
		},
		"position_packed": {
			read:  func(b *wire.ReadBuffer) (any, error) { return wire.ReadPackedPosition(b) },
			write: func(w *wire.WriteBuffer, v any) error { return wire.WritePackedPosition(w, v.(wire.Position)) },
		},
		"uuid": {
			read:  func(b *wire.ReadBuffer) (any, error) { return wire.ReadUUID(b) },
			write: func(w *wire.WriteBuffer, v any) error { return wire.WriteUUID(w, v.([2]uint64)) },
		},
		"slot_legacy": {
			read:  func(b *wire.ReadBuffer) (any, error) { return wire.ReadSlotLegacy(b) },
			write: func(w *wire.WriteBuffer, v any) error { return wire.WriteSlotLegacy(w, v.(*wire.Slot)) },
		},
		"slot": {
			read:  func(b *wire.ReadBuffer) (any, error) { return wire.ReadSlot18(b) },
			write: func(w *wire.WriteBuffer, v any) error { return wire.WriteSlot18(w, v.(*wire.Slot)) },
		},
		"metadata_legacy": {
			read:  func(b *wire.ReadBuffer) (any, error) { return wire.ReadMetadataLegacy(b) },
			write: func(w *wire.WriteBuffer, v any) error { return wire.WriteMetadataLegacy(w, v.(wire.MetadataStream)) },
		},
		"metadata": {
			read:  func(b *wire.ReadBuffer) (any, error) { return wire.ReadMetadata18(b) },
			write: func(w *wire.WriteBuffer, v any) error { return wire.WriteMetadata18(w, v.(wire.MetadataStream)) },
		},
		"property_array_legacy": {
			read:  func(b *wire.ReadBuffer) (any, error) { return wire.ReadPropertyArrayLegacy(b) },
			write: func(w *wire.WriteBuffer, v any) error { return wire.WritePropertyArrayLegacy(w, v.([]wire.Property)) },
		},
		"property_array": {
			read:  func(b *wire.ReadBuffer) (any, error) { return wire.ReadPropertyArray(b) },
			write: func(w *wire.WriteBuffer, v any) error { return wire.WritePropertyArray(w, v.([]wire.Property)) },
		},
		"changes_legacy": {
			read:  func(b *wire.ReadBuffer) (any, error) { return wire.ReadChangesLegacy(b) },
			write: func(w *wire.WriteBuffer, v any) error { return wire.WriteChangesLegacy(w, v.([]uint32)) },
		},
		"changes": {
			read:  func(b *wire.ReadBuffer) (any, error) { return wire.ReadChanges(b) },
			write: func(w *wire.WriteBuffer, v any) error { return wire.WriteChanges(w, v.([]wire.BlockChange)) },
		},
		"chunk_bulk_legacy": {
			read:  func(b *wire.ReadBuffer) (any, error) { return wire.ReadMapChunkBulkLegacy(b) },
			write: func(w *wire.WriteBuffer, v any) error { return wire.WriteMapChunkBulkLegacy(w, v.(wire.ChunkBulk)) },
		},
		"chunk_bulk": {
			read:  func(b *wire.ReadBuffer) (any, error) { return wire.ReadMapChunkBulk(b) },
			write: func(w *wire.WriteBuffer, v any) error { return wire.WriteMapChunkBulk(w, v.(wire.ChunkBulk)) },
		},
		"map_icons": {
			read:  func(b *wire.ReadBuffer) (any, error) { return wire.ReadMapIcons(b) },
			write: func(w *wire.WriteBuffer, v any) error { return wire.WriteMapIcons(w, v.([]wire.MapIcon)) },
		},
		"explosion_records": {
			read:  func(b *wire.ReadBuffer) (any, error) { return wire.ReadExplosionRecords(b) },
			write: func(w *wire.WriteBuffer, v any) error { return wire.WriteExplosionRecords(w, v.([]wire.ExplosionRecord)) },
		},
		"statistic_array": {
			read:  func(b *wire.ReadBuffer) (any, error) { return wire.ReadStatisticArray(b) },
			write: func(w *wire.WriteBuffer, v any) error { return wire.WriteStatisticArray(w, v.([]wire.Statistic)) },
		},
		"byte_int_array": {
			read:  func(b *wire.ReadBuffer) (any, error) { return wire.ReadByteIntArray(b) },
			write: func(w *wire.WriteBuffer, v any) error { return wire.WriteByteIntArray(w, v.([]int32)) },
		},
		"short_string_array": {
			read:  func(b *wire.ReadBuffer) (any, error) { return wire.ReadShortStringArray(b) },
			write: func(w *wire.WriteBuffer, v any) error { return wire.WriteShortStringArray(w, v.([]string)) },
		},
		"varint_string_array": {
			read:  func(b *wire.ReadBuffer) (any, error) { return wire.ReadVarintStringArray(b) },
			write: func(w *wire.WriteBuffer, v any) error { return wire.WriteVarintStringArray(w, v.([]string)) },
		},
		"slot_array": {
			read:  func(b *wire.ReadBuffer) (any, error) { return wire.ReadSlotArray(b) },
			write: func(w *wire.WriteBuffer, v any) error { return wire.WriteSlotArray(w, v.([]*wire.Slot)) },
		},
		"objdata": {
			read:  func(b *wire.ReadBuffer) (any, error) { return wire.ReadObjectData(b) },
			write: func(w *wire.WriteBuffer, v any) error { return wire.WriteObjectData(w, v.(wire.ObjectData)) },
		},
		"player_list_action": {
			read: func(b *wire.ReadBuffer) (any, error) {
				action, entries, err := wire.ReadPlayerListAction(b)
				if err != nil {
					return nil, err
				}
				return playerListActionValue{action: action, entries: entries}, nil
			},
			write: func(w *wire.WriteBuffer, v any) error {
				pl := v.(playerListActionValue)
				return wire.WritePlayerListAction(w, pl.action, pl.entries)
			},
		},
	}
}

// playerListActionValue bundles the PlayerListItem union's discriminant and
// entries into one field value, since the DSL models it as a single field.
type playerListActionValue struct {
	action  wire.PlayerListAction
	entries []wire.PlayerListEntry
}
