package wire

import (
	"encoding/json"
	"fmt"
)

// ReadString reads a varint-length-prefixed UTF-8 string.
func ReadString(b *ReadBuffer) (string, error) {
	n, err := ReadVarint(b)
	if err != nil {
		return "", err
	}
	chunk, err := b.Read(int(n))
	if err != nil {
		return "", err
	}
	return string(chunk), nil
}

// WriteString writes s as a varint-length-prefixed UTF-8 string.
func WriteString(w *WriteBuffer, s string) error {
	encoded := []byte(s)
	if err := WriteVarint(w, uint32(len(encoded))); err != nil {
		return err
	}
	_, err := w.Write(encoded)
	return err
}

// ReadShortString reads a short(len)-prefixed UTF-8 string, used inside NBT.
func ReadShortString(b *ReadBuffer) (string, error) {
	n, err := ReadUShort(b)
	if err != nil {
		return "", err
	}
	chunk, err := b.Read(int(n))
	if err != nil {
		return "", err
	}
	return string(chunk), nil
}

// WriteShortString writes s as a short(len)-prefixed UTF-8 string.
func WriteShortString(w *WriteBuffer, s string) error {
	encoded := []byte(s)
	if err := WriteUShort(w, uint16(len(encoded))); err != nil {
		return err
	}
	_, err := w.Write(encoded)
	return err
}

// ReadJSON reads a string field and parses it as JSON, returning the
// decoded tree (map[string]any, []any, string, float64, bool, or nil).
func ReadJSON(b *ReadBuffer) (any, error) {
	s, err := ReadString(b)
	if err != nil {
		return nil, err
	}
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, fmt.Errorf("wire: decode json field: %w", err)
	}
	return v, nil
}

// WriteJSON marshals v compactly and writes it as a string field.
func WriteJSON(w *WriteBuffer, v any) error {
	encoded, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("wire: encode json field: %w", err)
	}
	return WriteString(w, string(encoded))
}
