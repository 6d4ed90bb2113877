package wire

// ExplosionRecord is one affected-block offset within an Explosion packet
// (spec C2 "Explosions"): signed byte offsets relative to the explosion
// center.
type ExplosionRecord struct {
	X, Y, Z int8
}

// ReadExplosionRecords reads the explosion affected-block list: int n,
// then n (byte x, byte y, byte z) offset triples.
func ReadExplosionRecords(b *ReadBuffer) ([]ExplosionRecord, error) {
	n, err := ReadInt(b)
	if err != nil {
		return nil, err
	}
	out := make([]ExplosionRecord, n)
	for i := range out {
		x, err := ReadByte8(b)
		if err != nil {
			return nil, err
		}
		y, err := ReadByte8(b)
		if err != nil {
			return nil, err
		}
		z, err := ReadByte8(b)
		if err != nil {
			return nil, err
		}
		out[i] = ExplosionRecord{X: x, Y: y, Z: z}
	}
	return out, nil
}

// WriteExplosionRecords writes the explosion affected-block list.
func WriteExplosionRecords(w *WriteBuffer, records []ExplosionRecord) error {
	if err := WriteInt(w, int32(len(records))); err != nil {
		return err
	}
	for _, r := range records {
		if err := WriteByte8(w, r.X); err != nil {
			return err
		}
		if err := WriteByte8(w, r.Y); err != nil {
			return err
		}
		if err := WriteByte8(w, r.Z); err != nil {
			return err
		}
	}
	return nil
}
