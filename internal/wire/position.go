package wire

// Position is a legacy block-coordinate triple (spec §4.1 "position").
type Position struct {
	X int32
	Y uint8
	Z int32
}

// ReadPosition reads the legacy (int x, ubyte y, int z) position.
func ReadPosition(b *ReadBuffer) (Position, error) {
	x, err := ReadInt(b)
	if err != nil {
		return Position{}, err
	}
	y, err := ReadUByte(b)
	if err != nil {
		return Position{}, err
	}
	z, err := ReadInt(b)
	if err != nil {
		return Position{}, err
	}
	return Position{X: x, Y: y, Z: z}, nil
}

// WritePosition writes the legacy (int x, ubyte y, int z) position.
func WritePosition(w *WriteBuffer, p Position) error {
	if err := WriteInt(w, p.X); err != nil {
		return err
	}
	if err := WriteUByte(w, p.Y); err != nil {
		return err
	}
	return WriteInt(w, p.Z)
}

// packedXZSignBit is the sign bit (bit 25) of the 26-bit two's-complement
// x and z fields in the packed position encoding (spec §4.1).
const packedXZSignBit = 1 << 25

// ReadPackedPosition decodes one ulong encoding x:26|y:12|z:26, applying
// two's-complement sign extension to the 26-bit x and z fields.
func ReadPackedPosition(b *ReadBuffer) (Position, error) {
	raw, err := ReadULong(b)
	if err != nil {
		return Position{}, err
	}
	x := int64((raw >> 38) & 0x3FFFFFF)
	y := int64((raw >> 26) & 0xFFF)
	z := int64(raw & 0x3FFFFFF)
	if x >= packedXZSignBit {
		x -= packedXZSignBit << 1
	}
	if z >= packedXZSignBit {
		z -= packedXZSignBit << 1
	}
	return Position{X: int32(x), Y: uint8(y), Z: int32(z)}, nil
}

// WritePackedPosition encodes a Position into the ulong x:26|y:12|z:26
// layout.
//
// spec §9 Open Question: the historical encoder shifted y into the same
// bit range as x ("(x&mask)<<38 | y<<26 | z&mask", with y unmasked — a bug
// that corrupts x's low bits whenever y exceeds 12 bits). This is the
// corrected form: y is masked to 12 bits before the shift.
func WritePackedPosition(w *WriteBuffer, p Position) error {
	const mask26 = 0x3FFFFFF
	packed := (uint64(p.X)&mask26)<<38 | (uint64(p.Y)&0xFFF)<<26 | (uint64(p.Z) & mask26)
	return WriteULong(w, packed)
}

// ReadUUID reads two big-endian ulong words forming a 128-bit UUID
// (msl<<64 | lsl), returned as the high/low 64-bit halves.
func ReadUUID(b *ReadBuffer) ([2]uint64, error) {
	msl, err := ReadULong(b)
	if err != nil {
		return [2]uint64{}, err
	}
	lsl, err := ReadULong(b)
	if err != nil {
		return [2]uint64{}, err
	}
	return [2]uint64{msl, lsl}, nil
}

// WriteUUID writes a UUID as two big-endian ulong words.
func WriteUUID(w *WriteBuffer, v [2]uint64) error {
	if err := WriteULong(w, v[0]); err != nil {
		return err
	}
	return WriteULong(w, v[1])
}
