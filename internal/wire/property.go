package wire

// Modifier is one attribute modifier entry (spec C2 "Property array").
type Modifier struct {
	UUID      [2]uint64
	Amount    float64
	Operation int8
}

// Property is one named entity attribute with its modifiers.
type Property struct {
	Key       string
	Value     float64
	Modifiers []Modifier
}

// ReadPropertyArrayLegacy reads the legacy property array: int n
// properties, each with a short modifier count.
func ReadPropertyArrayLegacy(b *ReadBuffer) ([]Property, error) {
	n, err := ReadInt(b)
	if err != nil {
		return nil, err
	}
	out := make([]Property, n)
	for i := range out {
		p, err := readProperty(b, func(b *ReadBuffer) (uint32, error) {
			v, err := ReadUShort(b)
			return uint32(v), err
		})
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}

// WritePropertyArrayLegacy writes the legacy property array.
func WritePropertyArrayLegacy(w *WriteBuffer, props []Property) error {
	if err := WriteInt(w, int32(len(props))); err != nil {
		return err
	}
	for _, p := range props {
		if err := writeProperty(w, p, func(w *WriteBuffer, n uint32) error {
			return WriteUShort(w, uint16(n))
		}); err != nil {
			return err
		}
	}
	return nil
}

// ReadPropertyArray reads the 14w04a+ property array: int n properties,
// each with a varint modifier count.
func ReadPropertyArray(b *ReadBuffer) ([]Property, error) {
	n, err := ReadInt(b)
	if err != nil {
		return nil, err
	}
	out := make([]Property, n)
	for i := range out {
		p, err := readProperty(b, ReadVarint)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}

// WritePropertyArray writes the 14w04a+ property array.
func WritePropertyArray(w *WriteBuffer, props []Property) error {
	if err := WriteInt(w, int32(len(props))); err != nil {
		return err
	}
	for _, p := range props {
		if err := writeProperty(w, p, WriteVarint); err != nil {
			return err
		}
	}
	return nil
}

func readProperty(b *ReadBuffer, readModCount func(*ReadBuffer) (uint32, error)) (Property, error) {
	key, err := ReadString(b)
	if err != nil {
		return Property{}, err
	}
	value, err := ReadDouble(b)
	if err != nil {
		return Property{}, err
	}
	numMods, err := readModCount(b)
	if err != nil {
		return Property{}, err
	}
	mods := make([]Modifier, numMods)
	for i := range mods {
		uuid, err := ReadUUID(b)
		if err != nil {
			return Property{}, err
		}
		amount, err := ReadDouble(b)
		if err != nil {
			return Property{}, err
		}
		op, err := ReadByte8(b)
		if err != nil {
			return Property{}, err
		}
		mods[i] = Modifier{UUID: uuid, Amount: amount, Operation: op}
	}
	return Property{Key: key, Value: value, Modifiers: mods}, nil
}

func writeProperty(w *WriteBuffer, p Property, writeModCount func(*WriteBuffer, uint32) error) error {
	if err := WriteString(w, p.Key); err != nil {
		return err
	}
	if err := WriteDouble(w, p.Value); err != nil {
		return err
	}
	if err := writeModCount(w, uint32(len(p.Modifiers))); err != nil {
		return err
	}
	for _, mod := range p.Modifiers {
		if err := WriteUUID(w, mod.UUID); err != nil {
			return err
		}
		if err := WriteDouble(w, mod.Amount); err != nil {
			return err
		}
		if err := WriteByte8(w, mod.Operation); err != nil {
			return err
		}
	}
	return nil
}
