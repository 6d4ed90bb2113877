package wire

import (
	"encoding/binary"
	"math"
)

// -------------------------------------------------------------------------
// Fixed-width primitives (spec §4.1). All multi-byte values are big-endian.
// -------------------------------------------------------------------------

// ReadByte8 reads a signed 8-bit integer ("byte").
func ReadByte8(b *ReadBuffer) (int8, error) {
	chunk, err := b.Read(1)
	if err != nil {
		return 0, err
	}
	return int8(chunk[0]), nil
}

// WriteByte8 writes a signed 8-bit integer.
func WriteByte8(w *WriteBuffer, v int8) error {
	return w.WriteByte(byte(v))
}

// ReadUByte reads an unsigned 8-bit integer ("ubyte").
func ReadUByte(b *ReadBuffer) (uint8, error) {
	chunk, err := b.Read(1)
	if err != nil {
		return 0, err
	}
	return chunk[0], nil
}

// WriteUByte writes an unsigned 8-bit integer.
func WriteUByte(w *WriteBuffer, v uint8) error {
	return w.WriteByte(v)
}

// ReadBool reads a boolean: true iff the byte read equals 0x01.
func ReadBool(b *ReadBuffer) (bool, error) {
	chunk, err := b.Read(1)
	if err != nil {
		return false, err
	}
	return chunk[0] == 0x01, nil
}

// WriteBool writes 0x01 for true, 0x00 for false.
func WriteBool(w *WriteBuffer, v bool) error {
	if v {
		return w.WriteByte(0x01)
	}
	return w.WriteByte(0x00)
}

// ReadShort reads a signed 16-bit big-endian integer.
func ReadShort(b *ReadBuffer) (int16, error) {
	chunk, err := b.Read(2)
	if err != nil {
		return 0, err
	}
	return int16(binary.BigEndian.Uint16(chunk)), nil
}

// WriteShort writes a signed 16-bit big-endian integer.
func WriteShort(w *WriteBuffer, v int16) error {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], uint16(v))
	_, err := w.Write(buf[:])
	return err
}

// ReadUShort reads an unsigned 16-bit big-endian integer.
func ReadUShort(b *ReadBuffer) (uint16, error) {
	chunk, err := b.Read(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(chunk), nil
}

// WriteUShort writes an unsigned 16-bit big-endian integer.
func WriteUShort(w *WriteBuffer, v uint16) error {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

// ReadInt reads a signed 32-bit big-endian integer.
func ReadInt(b *ReadBuffer) (int32, error) {
	chunk, err := b.Read(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(chunk)), nil
}

// WriteInt writes a signed 32-bit big-endian integer.
func WriteInt(w *WriteBuffer, v int32) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(v))
	_, err := w.Write(buf[:])
	return err
}

// ReadUInt reads an unsigned 32-bit big-endian integer.
func ReadUInt(b *ReadBuffer) (uint32, error) {
	chunk, err := b.Read(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(chunk), nil
}

// WriteUInt writes an unsigned 32-bit big-endian integer.
func WriteUInt(w *WriteBuffer, v uint32) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

// ReadLong reads a signed 64-bit big-endian integer.
func ReadLong(b *ReadBuffer) (int64, error) {
	chunk, err := b.Read(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(chunk)), nil
}

// WriteLong writes a signed 64-bit big-endian integer.
func WriteLong(w *WriteBuffer, v int64) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(v))
	_, err := w.Write(buf[:])
	return err
}

// ReadULong reads an unsigned 64-bit big-endian integer.
func ReadULong(b *ReadBuffer) (uint64, error) {
	chunk, err := b.Read(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(chunk), nil
}

// WriteULong writes an unsigned 64-bit big-endian integer.
func WriteULong(w *WriteBuffer, v uint64) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

// ReadFloat reads an IEEE-754 big-endian 32-bit float.
func ReadFloat(b *ReadBuffer) (float32, error) {
	chunk, err := b.Read(4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.BigEndian.Uint32(chunk)), nil
}

// WriteFloat writes an IEEE-754 big-endian 32-bit float.
func WriteFloat(w *WriteBuffer, v float32) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], math.Float32bits(v))
	_, err := w.Write(buf[:])
	return err
}

// ReadDouble reads an IEEE-754 big-endian 64-bit float.
func ReadDouble(b *ReadBuffer) (float64, error) {
	chunk, err := b.Read(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.BigEndian.Uint64(chunk)), nil
}

// WriteDouble writes an IEEE-754 big-endian 64-bit float.
func WriteDouble(w *WriteBuffer, v float64) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], math.Float64bits(v))
	_, err := w.Write(buf[:])
	return err
}
