package wire

// ReadShortByteArray reads a short(len)-prefixed opaque byte array.
func ReadShortByteArray(b *ReadBuffer) ([]byte, error) {
	n, err := ReadUShort(b)
	if err != nil {
		return nil, err
	}
	chunk, err := b.Read(int(n))
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), chunk...), nil
}

// WriteShortByteArray writes data as a short(len)-prefixed byte array.
func WriteShortByteArray(w *WriteBuffer, data []byte) error {
	if err := WriteUShort(w, uint16(len(data))); err != nil {
		return err
	}
	_, err := w.Write(data)
	return err
}

// ReadIntByteArray reads an int(len)-prefixed opaque byte array.
func ReadIntByteArray(b *ReadBuffer) ([]byte, error) {
	n, err := ReadInt(b)
	if err != nil {
		return nil, err
	}
	chunk, err := b.Read(int(n))
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), chunk...), nil
}

// WriteIntByteArray writes data as an int(len)-prefixed byte array.
func WriteIntByteArray(w *WriteBuffer, data []byte) error {
	if err := WriteInt(w, int32(len(data))); err != nil {
		return err
	}
	_, err := w.Write(data)
	return err
}

// ReadVarintByteArray reads a varint(len)-prefixed opaque byte array.
func ReadVarintByteArray(b *ReadBuffer) ([]byte, error) {
	n, err := ReadVarint(b)
	if err != nil {
		return nil, err
	}
	chunk, err := b.Read(int(n))
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), chunk...), nil
}

// WriteVarintByteArray writes data as a varint(len)-prefixed byte array.
func WriteVarintByteArray(w *WriteBuffer, data []byte) error {
	if err := WriteVarint(w, uint32(len(data))); err != nil {
		return err
	}
	_, err := w.Write(data)
	return err
}

// ReadBytesExhaustive consumes every remaining byte of the current packet
// body. Callers MUST only invoke this against a ReadBuffer that framing has
// already bounded to the current frame (spec §9 Open Question) — it is not
// safe against a live connection buffer.
func ReadBytesExhaustive(b *ReadBuffer) ([]byte, error) {
	chunk, err := b.Read(b.Len())
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), chunk...), nil
}

// WriteBytesExhaustive writes data verbatim with no length prefix.
func WriteBytesExhaustive(w *WriteBuffer, data []byte) error {
	_, err := w.Write(data)
	return err
}
