package wire

// ReadByteIntArray reads a byte-counted array of ints (spec C2, legacy
// DestroyEntities entity-id list).
func ReadByteIntArray(b *ReadBuffer) ([]int32, error) {
	count, err := ReadByte8(b)
	if err != nil {
		return nil, err
	}
	out := make([]int32, count)
	for i := range out {
		v, err := ReadInt(b)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// WriteByteIntArray writes a byte-counted array of ints.
func WriteByteIntArray(w *WriteBuffer, values []int32) error {
	if err := WriteByte8(w, int8(len(values))); err != nil {
		return err
	}
	for _, v := range values {
		if err := WriteInt(w, v); err != nil {
			return err
		}
	}
	return nil
}

// ReadShortStringArray reads a short-counted array of strings (spec C2,
// legacy Teams member list).
func ReadShortStringArray(b *ReadBuffer) ([]string, error) {
	count, err := ReadShort(b)
	if err != nil {
		return nil, err
	}
	out := make([]string, count)
	for i := range out {
		v, err := ReadString(b)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// WriteShortStringArray writes a short-counted array of strings.
func WriteShortStringArray(w *WriteBuffer, values []string) error {
	if err := WriteShort(w, int16(len(values))); err != nil {
		return err
	}
	for _, v := range values {
		if err := WriteString(w, v); err != nil {
			return err
		}
	}
	return nil
}

// ReadVarintStringArray reads a varint-counted array of strings (spec C2,
// legacy TabComplete completion list).
func ReadVarintStringArray(b *ReadBuffer) ([]string, error) {
	count, err := ReadVarint(b)
	if err != nil {
		return nil, err
	}
	out := make([]string, count)
	for i := range out {
		v, err := ReadString(b)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// WriteVarintStringArray writes a varint-counted array of strings.
func WriteVarintStringArray(w *WriteBuffer, values []string) error {
	if err := WriteVarint(w, uint32(len(values))); err != nil {
		return err
	}
	for _, v := range values {
		if err := WriteString(w, v); err != nil {
			return err
		}
	}
	return nil
}

// ReadSlotArray reads a short-counted array of legacy slots (spec C2,
// WindowItems inventory contents).
func ReadSlotArray(b *ReadBuffer) ([]*Slot, error) {
	count, err := ReadShort(b)
	if err != nil {
		return nil, err
	}
	out := make([]*Slot, count)
	for i := range out {
		s, err := ReadSlotLegacy(b)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

// WriteSlotArray writes a short-counted array of legacy slots.
func WriteSlotArray(w *WriteBuffer, slots []*Slot) error {
	if err := WriteShort(w, int16(len(slots))); err != nil {
		return err
	}
	for _, s := range slots {
		if err := WriteSlotLegacy(w, s); err != nil {
			return err
		}
	}
	return nil
}

// ObjectData is SpawnObject's conditional velocity payload (spec C2): a
// positive Value activates the following int16 velocity triple.
type ObjectData struct {
	Value       int32
	HasVelocity bool
	VX, VY, VZ  int16
}

// ReadObjectData reads SpawnObject's trailing payload: int value; if
// value > 0, a further (short, short, short) velocity triple.
func ReadObjectData(b *ReadBuffer) (ObjectData, error) {
	value, err := ReadInt(b)
	if err != nil {
		return ObjectData{}, err
	}
	d := ObjectData{Value: value}
	if value > 0 {
		d.HasVelocity = true
		if d.VX, err = ReadShort(b); err != nil {
			return ObjectData{}, err
		}
		if d.VY, err = ReadShort(b); err != nil {
			return ObjectData{}, err
		}
		if d.VZ, err = ReadShort(b); err != nil {
			return ObjectData{}, err
		}
	}
	return d, nil
}

// WriteObjectData writes SpawnObject's trailing payload.
func WriteObjectData(w *WriteBuffer, d ObjectData) error {
	if err := WriteInt(w, d.Value); err != nil {
		return err
	}
	if d.Value > 0 {
		if err := WriteShort(w, d.VX); err != nil {
			return err
		}
		if err := WriteShort(w, d.VY); err != nil {
			return err
		}
		if err := WriteShort(w, d.VZ); err != nil {
			return err
		}
	}
	return nil
}
