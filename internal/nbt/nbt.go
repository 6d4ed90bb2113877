// Package nbt implements Mojang's Named Binary Tag format (spec C2 "NBT"):
// a typed tag tree used inside a handful of packet payloads (item slots,
// block entity updates).
package nbt

import (
	"fmt"
	"math"

	"github.com/dantte-lp/mcproto/internal/wire"
)

// TagType identifies the kind of an NBT tag (spec §4.2).
type TagType uint8

// Tag type constants, spec §4.2.
const (
	TagEnd TagType = iota
	TagByte
	TagShort
	TagInt
	TagLong
	TagFloat
	TagDouble
	TagByteArray
	TagString
	TagList
	TagCompound
	TagIntArray
)

// Tag is a decoded NBT value. Value holds a Go type appropriate to Type:
//
//	TagByte/TagShort/TagInt/TagLong -> int64
//	TagFloat/TagDouble              -> float64
//	TagByteArray                    -> []int8
//	TagString                       -> string
//	TagList                         -> []Tag (unnamed; Tag.Name empty)
//	TagCompound                     -> map[string]Tag
//	TagIntArray                     -> []int32
type Tag struct {
	Type  TagType
	Name  string
	Value any
}

// ErrUnknownTagType indicates a tag type byte outside 0-11 (spec §7
// ProtocolViolation).
var ErrUnknownTagType = fmt.Errorf("nbt: unknown tag type")

// ReadNamed reads a top-level (name, root tag) pair: a type byte, a
// short_string name (skipped for END), and the tag's payload.
func ReadNamed(b *wire.ReadBuffer) (string, Tag, error) {
	typeByte, err := wire.ReadUByte(b)
	if err != nil {
		return "", Tag{}, err
	}
	tagType := TagType(typeByte)
	if tagType == TagEnd {
		return "", Tag{Type: TagEnd}, nil
	}
	name, err := wire.ReadShortString(b)
	if err != nil {
		return "", Tag{}, err
	}
	value, err := readPayload(b, tagType)
	if err != nil {
		return "", Tag{}, err
	}
	return name, Tag{Type: tagType, Name: name, Value: value}, nil
}

// WriteNamed writes a top-level (name, tag) pair.
func WriteNamed(w *wire.WriteBuffer, name string, t Tag) error {
	if err := wire.WriteUByte(w, uint8(t.Type)); err != nil {
		return err
	}
	if t.Type == TagEnd {
		return nil
	}
	if err := wire.WriteShortString(w, name); err != nil {
		return err
	}
	return writePayload(w, t.Type, t.Value)
}

func readPayload(b *wire.ReadBuffer, t TagType) (any, error) {
	switch t {
	case TagByte:
		v, err := wire.ReadByte8(b)
		return int64(v), err
	case TagShort:
		v, err := wire.ReadShort(b)
		return int64(v), err
	case TagInt:
		v, err := wire.ReadInt(b)
		return int64(v), err
	case TagLong:
		v, err := wire.ReadLong(b)
		return v, err
	case TagFloat:
		v, err := wire.ReadFloat(b)
		return float64(v), err
	case TagDouble:
		return wire.ReadDouble(b)
	case TagByteArray:
		n, err := wire.ReadInt(b)
		if err != nil {
			return nil, err
		}
		chunk, err := b.Read(int(n))
		if err != nil {
			return nil, err
		}
		out := make([]int8, len(chunk))
		for i, c := range chunk {
			out[i] = int8(c)
		}
		return out, nil
	case TagString:
		return wire.ReadShortString(b)
	case TagList:
		return readList(b)
	case TagCompound:
		return readCompound(b)
	case TagIntArray:
		n, err := wire.ReadInt(b)
		if err != nil {
			return nil, err
		}
		out := make([]int32, n)
		for i := range out {
			v, err := wire.ReadInt(b)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownTagType, t)
	}
}

func readList(b *wire.ReadBuffer) ([]Tag, error) {
	elemTypeByte, err := wire.ReadUByte(b)
	if err != nil {
		return nil, err
	}
	elemType := TagType(elemTypeByte)
	n, err := wire.ReadInt(b)
	if err != nil {
		return nil, err
	}
	out := make([]Tag, n)
	for i := range out {
		value, err := readPayload(b, elemType)
		if err != nil {
			return nil, err
		}
		out[i] = Tag{Type: elemType, Value: value}
	}
	return out, nil
}

func readCompound(b *wire.ReadBuffer) (map[string]Tag, error) {
	out := make(map[string]Tag)
	for {
		typeByte, err := wire.ReadUByte(b)
		if err != nil {
			return nil, err
		}
		tagType := TagType(typeByte)
		if tagType == TagEnd {
			return out, nil
		}
		name, err := wire.ReadShortString(b)
		if err != nil {
			return nil, err
		}
		value, err := readPayload(b, tagType)
		if err != nil {
			return nil, err
		}
		out[name] = Tag{Type: tagType, Name: name, Value: value}
	}
}

func writePayload(w *wire.WriteBuffer, t TagType, value any) error {
	switch t {
	case TagByte:
		return wire.WriteByte8(w, int8(value.(int64)))
	case TagShort:
		return wire.WriteShort(w, int16(value.(int64)))
	case TagInt:
		return wire.WriteInt(w, int32(value.(int64)))
	case TagLong:
		return wire.WriteLong(w, value.(int64))
	case TagFloat:
		return wire.WriteFloat(w, float32(value.(float64)))
	case TagDouble:
		v, _ := value.(float64)
		if math.IsNaN(v) {
			v = 0
		}
		return wire.WriteDouble(w, v)
	case TagByteArray:
		arr := value.([]int8)
		if err := wire.WriteInt(w, int32(len(arr))); err != nil {
			return err
		}
		raw := make([]byte, len(arr))
		for i, v := range arr {
			raw[i] = byte(v)
		}
		_, err := w.Write(raw)
		return err
	case TagString:
		return wire.WriteShortString(w, value.(string))
	case TagList:
		return writeList(w, value.([]Tag))
	case TagCompound:
		return writeCompound(w, value.(map[string]Tag))
	case TagIntArray:
		arr := value.([]int32)
		if err := wire.WriteInt(w, int32(len(arr))); err != nil {
			return err
		}
		for _, v := range arr {
			if err := wire.WriteInt(w, v); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrUnknownTagType, t)
	}
}

func writeList(w *wire.WriteBuffer, list []Tag) error {
	elemType := TagEnd
	if len(list) > 0 {
		elemType = list[0].Type
	}
	if err := wire.WriteUByte(w, uint8(elemType)); err != nil {
		return err
	}
	if err := wire.WriteInt(w, int32(len(list))); err != nil {
		return err
	}
	for _, elem := range list {
		if err := writePayload(w, elemType, elem.Value); err != nil {
			return err
		}
	}
	return nil
}

func writeCompound(w *wire.WriteBuffer, compound map[string]Tag) error {
	for name, tag := range compound {
		if err := wire.WriteUByte(w, uint8(tag.Type)); err != nil {
			return err
		}
		if err := wire.WriteShortString(w, name); err != nil {
			return err
		}
		if err := writePayload(w, tag.Type, tag.Value); err != nil {
			return err
		}
	}
	return wire.WriteUByte(w, uint8(TagEnd))
}
