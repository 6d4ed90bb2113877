package wire

// MapIcon is one icon placed on an in-game map (spec C2 "Map icons").
type MapIcon struct {
	DirectionType uint8
	X, Y          int8
}

// ReadMapIcons reads the map-icon list: varint num, then num
// (byte direction_type, byte x, byte y) triples.
func ReadMapIcons(b *ReadBuffer) ([]MapIcon, error) {
	num, err := ReadVarint(b)
	if err != nil {
		return nil, err
	}
	out := make([]MapIcon, num)
	for i := range out {
		dirType, err := ReadUByte(b)
		if err != nil {
			return nil, err
		}
		x, err := ReadByte8(b)
		if err != nil {
			return nil, err
		}
		y, err := ReadByte8(b)
		if err != nil {
			return nil, err
		}
		out[i] = MapIcon{DirectionType: dirType, X: x, Y: y}
	}
	return out, nil
}

// WriteMapIcons writes the map-icon list.
func WriteMapIcons(w *WriteBuffer, icons []MapIcon) error {
	if err := WriteVarint(w, uint32(len(icons))); err != nil {
		return err
	}
	for _, icon := range icons {
		if err := WriteUByte(w, icon.DirectionType); err != nil {
			return err
		}
		if err := WriteByte8(w, icon.X); err != nil {
			return err
		}
		if err := WriteByte8(w, icon.Y); err != nil {
			return err
		}
	}
	return nil
}
