package wire

import "github.com/dantte-lp/mcproto/internal/nbt"

// Slot represents an inventory item stack (spec C2 "Slot"). ItemID == -1
// denotes an absent/empty slot in both wire variants; callers should treat
// a nil *Slot the same way.
type Slot struct {
	ItemID int16
	Count  int8
	Damage int16
	// NBTRaw holds the opaque NBT bytes for the legacy wire variant
	// (ReadSlotLegacy). Empty unless that variant was used.
	NBTRaw []byte
	// NBT holds the decoded compound tag for the 1.8 wire variant
	// (ReadSlot18). Nil unless that variant was used or the root tag was
	// TagEnd (spec: "treat as absent").
	NBT map[string]nbt.Tag
}

// ReadSlotLegacy reads the legacy slot format: short item_id; if -1 the
// slot is absent. Otherwise byte count, short damage, short nbt_size, and
// nbt_size raw NBT bytes (or none if nbt_size == -1).
func ReadSlotLegacy(b *ReadBuffer) (*Slot, error) {
	itemID, err := ReadShort(b)
	if err != nil {
		return nil, err
	}
	if itemID == -1 {
		return nil, nil
	}
	count, err := ReadByte8(b)
	if err != nil {
		return nil, err
	}
	damage, err := ReadShort(b)
	if err != nil {
		return nil, err
	}
	nbtSize, err := ReadShort(b)
	if err != nil {
		return nil, err
	}
	s := &Slot{ItemID: itemID, Count: count, Damage: damage}
	if nbtSize != -1 {
		raw, err := b.Read(int(nbtSize))
		if err != nil {
			return nil, err
		}
		s.NBTRaw = append([]byte(nil), raw...)
	}
	return s, nil
}

// WriteSlotLegacy writes slot in the legacy format. A nil slot writes the
// absent marker (short -1).
func WriteSlotLegacy(w *WriteBuffer, slot *Slot) error {
	if slot == nil {
		return WriteShort(w, -1)
	}
	if err := WriteShort(w, slot.ItemID); err != nil {
		return err
	}
	if err := WriteByte8(w, slot.Count); err != nil {
		return err
	}
	if err := WriteShort(w, slot.Damage); err != nil {
		return err
	}
	if slot.NBTRaw == nil {
		return WriteShort(w, -1)
	}
	if err := WriteShort(w, int16(len(slot.NBTRaw))); err != nil {
		return err
	}
	_, err := w.Write(slot.NBTRaw)
	return err
}

// ReadSlot18 reads the 1.8 slot format: like the legacy layout, but the
// trailing bytes are an inline NBT tag. If the root tag is TagEnd, the NBT
// payload is treated as absent.
func ReadSlot18(b *ReadBuffer) (*Slot, error) {
	itemID, err := ReadShort(b)
	if err != nil {
		return nil, err
	}
	if itemID == -1 {
		return nil, nil
	}
	count, err := ReadByte8(b)
	if err != nil {
		return nil, err
	}
	damage, err := ReadShort(b)
	if err != nil {
		return nil, err
	}
	s := &Slot{ItemID: itemID, Count: count, Damage: damage}
	_, tag, err := nbt.ReadNamed(b)
	if err != nil {
		return nil, err
	}
	if tag.Type != nbt.TagEnd {
		compound, _ := tag.Value.(map[string]nbt.Tag)
		s.NBT = compound
	}
	return s, nil
}

// WriteSlot18 writes slot in the 1.8 format: a nil NBT compound writes a
// bare TagEnd byte (no name, no payload).
func WriteSlot18(w *WriteBuffer, slot *Slot) error {
	if slot == nil {
		return WriteShort(w, -1)
	}
	if err := WriteShort(w, slot.ItemID); err != nil {
		return err
	}
	if err := WriteByte8(w, slot.Count); err != nil {
		return err
	}
	if err := WriteShort(w, slot.Damage); err != nil {
		return err
	}
	if slot.NBT == nil {
		return nbt.WriteNamed(w, "", nbt.Tag{Type: nbt.TagEnd})
	}
	return nbt.WriteNamed(w, "", nbt.Tag{Type: nbt.TagCompound, Value: slot.NBT})
}
