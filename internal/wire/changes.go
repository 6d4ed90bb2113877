package wire

import "fmt"

// ErrChangesSizeMismatch indicates the legacy changes array's declared byte
// size did not match count*4 (spec §7 ProtocolViolation).
var ErrChangesSizeMismatch = fmt.Errorf("wire: changes size field does not match count*4")

// ReadChangesLegacy reads the legacy multi-block-change record list: short
// count, int size (must equal count*4), then count raw uint32 records.
func ReadChangesLegacy(b *ReadBuffer) ([]uint32, error) {
	count, err := ReadShort(b)
	if err != nil {
		return nil, err
	}
	size, err := ReadInt(b)
	if err != nil {
		return nil, err
	}
	if size != int32(count)*4 {
		return nil, fmt.Errorf("%w: count=%d size=%d", ErrChangesSizeMismatch, count, size)
	}
	out := make([]uint32, count)
	for i := range out {
		v, err := ReadUInt(b)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// WriteChangesLegacy writes the legacy multi-block-change record list.
func WriteChangesLegacy(w *WriteBuffer, changes []uint32) error {
	if err := WriteShort(w, int16(len(changes))); err != nil {
		return err
	}
	if err := WriteInt(w, int32(len(changes)*4)); err != nil {
		return err
	}
	for _, v := range changes {
		if err := WriteUInt(w, v); err != nil {
			return err
		}
	}
	return nil
}

// BlockChange is one 14w26c+ multi-block-change record: a block position
// packed as y(0-7)|z(8-11)|x(12-15) within the chunk, plus the new varint
// block id.
type BlockChange struct {
	X, Y, Z uint8
	BlockID uint32
}

// ReadChanges reads the 14w26c+ record list: varint count, then count
// (ushort packed, varint block_id) pairs.
func ReadChanges(b *ReadBuffer) ([]BlockChange, error) {
	count, err := ReadVarint(b)
	if err != nil {
		return nil, err
	}
	out := make([]BlockChange, count)
	for i := range out {
		packed, err := ReadUShort(b)
		if err != nil {
			return nil, err
		}
		blockID, err := ReadVarint(b)
		if err != nil {
			return nil, err
		}
		out[i] = BlockChange{
			Y:       uint8(packed & 0xFF),
			Z:       uint8((packed >> 8) & 0x0F),
			X:       uint8((packed >> 12) & 0x0F),
			BlockID: blockID,
		}
	}
	return out, nil
}

// WriteChanges writes the 14w26c+ record list.
func WriteChanges(w *WriteBuffer, changes []BlockChange) error {
	if err := WriteVarint(w, uint32(len(changes))); err != nil {
		return err
	}
	for _, c := range changes {
		packed := uint16(c.Y) | uint16(c.Z&0x0F)<<8 | uint16(c.X&0x0F)<<12
		if err := WriteUShort(w, packed); err != nil {
			return err
		}
		if err := WriteVarint(w, c.BlockID); err != nil {
			return err
		}
	}
	return nil
}
