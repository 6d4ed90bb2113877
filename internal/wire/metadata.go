package wire

import "fmt"

// MetadataValueType identifies the wire type of one entity-metadata entry
// (spec C2 "Metadata stream").
type MetadataValueType uint8

// Metadata value type constants. Types 0-6 exist in both generations;
// MetaRotation (7) was added in the 1.8 generation.
const (
	MetaByte MetadataValueType = iota
	MetaShort
	MetaInt
	MetaFloat
	MetaString
	MetaSlot
	// MetaPosition's value is [3]int32{x, y, z}: three raw ints, distinct
	// from the (int, ubyte, int) Position used by block-coordinate fields.
	MetaPosition
	MetaRotation
)

func readMetaVector(b *ReadBuffer) ([3]int32, error) {
	x, err := ReadInt(b)
	if err != nil {
		return [3]int32{}, err
	}
	y, err := ReadInt(b)
	if err != nil {
		return [3]int32{}, err
	}
	z, err := ReadInt(b)
	if err != nil {
		return [3]int32{}, err
	}
	return [3]int32{x, y, z}, nil
}

func writeMetaVector(w *WriteBuffer, v [3]int32) error {
	if err := WriteInt(w, v[0]); err != nil {
		return err
	}
	if err := WriteInt(w, v[1]); err != nil {
		return err
	}
	return WriteInt(w, v[2])
}

// MetadataEntry is one decoded (type, value) pair, keyed by index in
// MetadataStream.
type MetadataEntry struct {
	Type  MetadataValueType
	Value any
}

// MetadataStream is the decoded `index -> entry` map produced by reading an
// entity metadata stream.
type MetadataStream map[uint8]MetadataEntry

const metadataTerminator = 0x7F

// ErrUnknownMetadataType indicates a metadata type code the active
// generation's dispatch table does not define (spec §7 ProtocolViolation).
var ErrUnknownMetadataType = fmt.Errorf("wire: unknown metadata type")

// ReadMetadataLegacy reads a metadata stream using the legacy (pre-1.8)
// type table: byte, short, int, float, string, slot, position.
func ReadMetadataLegacy(b *ReadBuffer) (MetadataStream, error) {
	return readMetadata(b, readMetaValueLegacy)
}

// WriteMetadataLegacy writes a metadata stream using the legacy type table.
func WriteMetadataLegacy(w *WriteBuffer, m MetadataStream) error {
	return writeMetadata(w, m, writeMetaValueLegacy)
}

// ReadMetadata18 reads a metadata stream using the 1.8 type table, which
// adds MetaRotation (three floats) as type 7.
func ReadMetadata18(b *ReadBuffer) (MetadataStream, error) {
	return readMetadata(b, readMetaValue18)
}

// WriteMetadata18 writes a metadata stream using the 1.8 type table.
func WriteMetadata18(w *WriteBuffer, m MetadataStream) error {
	return writeMetadata(w, m, writeMetaValue18)
}

func readMetadata(b *ReadBuffer, readValue func(*ReadBuffer, MetadataValueType) (any, error)) (MetadataStream, error) {
	out := make(MetadataStream)
	for {
		header, err := ReadUByte(b)
		if err != nil {
			return nil, err
		}
		if header == metadataTerminator {
			return out, nil
		}
		metaType := MetadataValueType(header >> 5)
		index := header & 0x1F
		value, err := readValue(b, metaType)
		if err != nil {
			return nil, err
		}
		out[index] = MetadataEntry{Type: metaType, Value: value}
	}
}

func writeMetadata(w *WriteBuffer, m MetadataStream, writeValue func(*WriteBuffer, MetadataEntry) error) error {
	for index, entry := range m {
		header := uint8(entry.Type)<<5 | (index & 0x1F)
		if err := WriteUByte(w, header); err != nil {
			return err
		}
		if err := writeValue(w, entry); err != nil {
			return err
		}
	}
	return WriteUByte(w, metadataTerminator)
}

func readMetaValueLegacy(b *ReadBuffer, t MetadataValueType) (any, error) {
	switch t {
	case MetaByte:
		v, err := ReadByte8(b)
		return v, err
	case MetaShort:
		return ReadShort(b)
	case MetaInt:
		return ReadInt(b)
	case MetaFloat:
		return ReadFloat(b)
	case MetaString:
		return ReadString(b)
	case MetaSlot:
		return ReadSlotLegacy(b)
	case MetaPosition:
		return readMetaVector(b)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownMetadataType, t)
	}
}

func readMetaValue18(b *ReadBuffer, t MetadataValueType) (any, error) {
	if t == MetaRotation {
		x, err := ReadFloat(b)
		if err != nil {
			return nil, err
		}
		y, err := ReadFloat(b)
		if err != nil {
			return nil, err
		}
		z, err := ReadFloat(b)
		if err != nil {
			return nil, err
		}
		return [3]float32{x, y, z}, nil
	}
	if t == MetaSlot {
		return ReadSlot18(b)
	}
	return readMetaValueLegacy(b, t)
}

func writeMetaValueLegacy(w *WriteBuffer, entry MetadataEntry) error {
	switch entry.Type {
	case MetaByte:
		return WriteByte8(w, entry.Value.(int8))
	case MetaShort:
		return WriteShort(w, entry.Value.(int16))
	case MetaInt:
		return WriteInt(w, entry.Value.(int32))
	case MetaFloat:
		return WriteFloat(w, entry.Value.(float32))
	case MetaString:
		return WriteString(w, entry.Value.(string))
	case MetaSlot:
		slot, _ := entry.Value.(*Slot)
		return WriteSlotLegacy(w, slot)
	case MetaPosition:
		return writeMetaVector(w, entry.Value.([3]int32))
	default:
		return fmt.Errorf("%w: %d", ErrUnknownMetadataType, entry.Type)
	}
}

func writeMetaValue18(w *WriteBuffer, entry MetadataEntry) error {
	if entry.Type == MetaRotation {
		v := entry.Value.([3]float32)
		if err := WriteFloat(w, v[0]); err != nil {
			return err
		}
		if err := WriteFloat(w, v[1]); err != nil {
			return err
		}
		return WriteFloat(w, v[2])
	}
	if entry.Type == MetaSlot {
		slot, _ := entry.Value.(*Slot)
		return WriteSlot18(w, slot)
	}
	return writeMetaValueLegacy(w, entry)
}
