package schema

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/dantte-lp/mcproto/internal/wire"
)

// Parse decodes one packet body from b according to the compiled field
// plan, returning ErrNeedMoreData (via the underlying wire readers) if b
// does not yet hold a complete body.
func (s *Schema) Parse(b *wire.ReadBuffer) (*Packet, error) {
	p := &Packet{schema: s, values: make(map[string]any, len(s.fields))}
	for _, step := range s.plan {
		if step.isRun {
			if err := decodeRun(b, step.run, p); err != nil {
				return nil, err
			}
			continue
		}
		f := step.field
		if f.pred != nil {
			ok, err := f.pred.eval(p.values)
			if err != nil {
				return nil, err
			}
			if !ok {
				p.values[f.name] = nil
				continue
			}
		}
		v, err := decodeField(b, f)
		if err != nil {
			return nil, err
		}
		p.values[f.name] = v
	}
	return p, nil
}

// Emit encodes p's field values to w according to the compiled field plan.
func (s *Schema) Emit(w *wire.WriteBuffer, p *Packet) error {
	for _, step := range s.plan {
		if step.isRun {
			if err := encodeRun(w, step.run, p); err != nil {
				return err
			}
			continue
		}
		f := step.field
		if f.pred != nil {
			ok, err := f.pred.eval(p.values)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
		}
		if err := encodeField(w, f, p.values[f.name]); err != nil {
			return err
		}
	}
	return nil
}

// Create builds a Packet from a caller-supplied field map. Fields governed
// by a false predicate are ignored even if present in values.
func (s *Schema) Create(values map[string]any) (*Packet, error) {
	p := &Packet{schema: s, values: make(map[string]any, len(s.fields))}
	for _, f := range s.fields {
		if f.pred != nil {
			ok, err := f.pred.eval(p.values)
			if err != nil {
				return nil, err
			}
			if !ok {
				p.values[f.name] = nil
				continue
			}
		}
		v, ok := values[f.name]
		if !ok {
			return nil, fmt.Errorf("%w: missing required field %q for packet %s", ErrMalformedDSL, f.name, s.name)
		}
		p.values[f.name] = v
	}
	return p, nil
}

// Desc renders the field list as a human-readable description, in
// declaration order, matching proto.py's Schema.desc() layout.
func (s *Schema) Desc() string {
	out := fmt.Sprintf("%s (0x%02x)\n", s.name, s.id)
	for _, f := range s.fields {
		out += fmt.Sprintf("  %s (%s)\n", f.name, f.typeName)
	}
	return out
}

func decodeField(b *wire.ReadBuffer, f field) (any, error) {
	if f.kind == kindComposite {
		return f.composite.read(b)
	}
	raw, err := b.Read(f.prim.size)
	if err != nil {
		return nil, err
	}
	return decodePrimitive(f.prim, raw), nil
}

func encodeField(w *wire.WriteBuffer, f field, v any) error {
	if f.kind == kindComposite {
		return f.composite.write(w, v)
	}
	buf := make([]byte, f.prim.size)
	encodePrimitive(f.prim, v, buf)
	_, err := w.Write(buf)
	return err
}

// decodeRun reads one fused run in a single bounded call and unpacks each
// field from its precomputed offset, the Go rendering of spec.md §4.3's
// "one structured unpack" optimization.
func decodeRun(b *wire.ReadBuffer, r run, p *Packet) error {
	raw, err := b.Read(r.size)
	if err != nil {
		return err
	}
	for i, f := range r.fields {
		off := r.offset[i]
		p.values[f.name] = decodePrimitive(f.prim, raw[off:off+f.prim.size])
	}
	return nil
}

func encodeRun(w *wire.WriteBuffer, r run, p *Packet) error {
	buf := make([]byte, r.size)
	for i, f := range r.fields {
		off := r.offset[i]
		encodePrimitive(f.prim, p.values[f.name], buf[off:off+f.prim.size])
	}
	_, err := w.Write(buf)
	return err
}

// decodePrimitive unpacks one fixed-width field from a big-endian byte
// slice, applying the fixed-point divisor (spec §4.1) where applicable.
func decodePrimitive(d primitiveDesc, raw []byte) any {
	switch {
	case d.boolean:
		return raw[0] == 0x01
	case d.float32:
		return math.Float32frombits(binary.BigEndian.Uint32(raw))
	case d.float64:
		return math.Float64frombits(binary.BigEndian.Uint64(raw))
	case d.fixedPoint != 0:
		var wireVal int64
		if d.size == 1 {
			wireVal = int64(int8(raw[0]))
		} else {
			wireVal = int64(int32(binary.BigEndian.Uint32(raw)))
		}
		return float64(wireVal) / float64(d.fixedPoint)
	case d.signed:
		switch d.size {
		case 1:
			return int8(raw[0])
		case 2:
			return int16(binary.BigEndian.Uint16(raw))
		case 4:
			return int32(binary.BigEndian.Uint32(raw))
		case 8:
			return int64(binary.BigEndian.Uint64(raw))
		}
	default:
		switch d.size {
		case 1:
			return raw[0]
		case 2:
			return binary.BigEndian.Uint16(raw)
		case 4:
			return binary.BigEndian.Uint32(raw)
		case 8:
			return binary.BigEndian.Uint64(raw)
		}
	}
	return nil
}

// encodePrimitive is decodePrimitive's inverse: it applies the fixed-point
// multiplier per the corrected (buffer-threaded) write behavior documented
// in spec.md §9, writing straight into buf rather than returning a value.
func encodePrimitive(d primitiveDesc, v any, buf []byte) {
	switch {
	case d.boolean:
		if v.(bool) {
			buf[0] = 1
		} else {
			buf[0] = 0
		}
	case d.float32:
		binary.BigEndian.PutUint32(buf, math.Float32bits(toFloat32(v)))
	case d.float64:
		binary.BigEndian.PutUint64(buf, math.Float64bits(toFloat64(v)))
	case d.fixedPoint != 0:
		wireVal := int64(toFloat64(v) * float64(d.fixedPoint))
		if d.size == 1 {
			buf[0] = byte(int8(wireVal))
		} else {
			binary.BigEndian.PutUint32(buf, uint32(int32(wireVal)))
		}
	case d.signed:
		switch d.size {
		case 1:
			buf[0] = byte(toInt64Value(v))
		case 2:
			binary.BigEndian.PutUint16(buf, uint16(toInt64Value(v)))
		case 4:
			binary.BigEndian.PutUint32(buf, uint32(toInt64Value(v)))
		case 8:
			binary.BigEndian.PutUint64(buf, uint64(toInt64Value(v)))
		}
	default:
		switch d.size {
		case 1:
			buf[0] = byte(toInt64Value(v))
		case 2:
			binary.BigEndian.PutUint16(buf, uint16(toInt64Value(v)))
		case 4:
			binary.BigEndian.PutUint32(buf, uint32(toInt64Value(v)))
		case 8:
			binary.BigEndian.PutUint64(buf, uint64(toInt64Value(v)))
		}
	}
}

func toFloat32(v any) float32 {
	switch n := v.(type) {
	case float32:
		return n
	case float64:
		return float32(n)
	default:
		return 0
	}
}

func toFloat64(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	default:
		return 0
	}
}

func toInt64Value(v any) int64 {
	n, _ := toInt64(v)
	return n
}
