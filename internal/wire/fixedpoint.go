package wire

// Fixed-point coordinate types (spec §4.1, Design Note / Open Question):
// a signed integer on the wire whose semantic value is wire/N on read and
// round-toward-zero(value*N) on write. int8 and int32 ride on a wire
// int32; byte32 rides on a wire signed byte.
//
// The historical source's write_int8/write_int32/write_byte32 called the
// underlying integer writer without a buffer argument (a dangling-call
// bug). Per spec §9 Open Questions, this port always threads the buffer
// through: WriteInt8 == WriteInt(b, int32(v*8)), etc.

// ReadInt8 reads a wire int32 and divides it by 8.0 (fixed-point "int8").
func ReadInt8(b *ReadBuffer) (float64, error) {
	raw, err := ReadInt(b)
	if err != nil {
		return 0, err
	}
	return float64(raw) / 8.0, nil
}

// WriteInt8 writes round-toward-zero(v*8) as a wire int32.
func WriteInt8(w *WriteBuffer, v float64) error {
	return WriteInt(w, int32(v*8))
}

// ReadInt32 reads a wire int32 and divides it by 32.0 (fixed-point "int32").
func ReadInt32(b *ReadBuffer) (float64, error) {
	raw, err := ReadInt(b)
	if err != nil {
		return 0, err
	}
	return float64(raw) / 32.0, nil
}

// WriteInt32 writes round-toward-zero(v*32) as a wire int32.
func WriteInt32(w *WriteBuffer, v float64) error {
	return WriteInt(w, int32(v*32))
}

// ReadByte32 reads a wire signed byte and divides it by 32.0 ("byte32").
func ReadByte32(b *ReadBuffer) (float64, error) {
	raw, err := ReadByte8(b)
	if err != nil {
		return 0, err
	}
	return float64(raw) / 32.0, nil
}

// WriteByte32 writes round-toward-zero(v*32) as a wire signed byte.
func WriteByte32(w *WriteBuffer, v float64) error {
	return WriteByte8(w, int8(v*32))
}
