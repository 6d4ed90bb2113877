// Package schema compiles the packet field-list DSL into a fused-run codec,
// mirroring the code-generation pass `original_source/fastmc/proto.py`'s
// make_packet_type performs at import time, with Go's offset-based
// encoding/binary decoding in place of Python's struct.Struct compilation.
package schema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dantte-lp/mcproto/internal/wire"
)

// ErrMalformedDSL indicates a field-list DSL line or predicate expression
// could not be parsed, a predicate referenced a field with no value, or
// Create was not given a value for a required field (spec §7 SchemaMismatch).
var ErrMalformedDSL = errors.New("schema: malformed DSL")

// ErrUnknownFieldType indicates a DSL line named a type not present in the
// wire type table.
var ErrUnknownFieldType = errors.New("schema: unknown field type")

// ErrTrailingBytes names the condition of unread bytes left after decoding
// every declared field (spec §7 SchemaMismatch). Parse does not return it:
// such bytes stay in the buffer, and endpoint.Endpoint.Read ignores them.
var ErrTrailingBytes = errors.New("schema: trailing bytes after packet body")

// fieldKind distinguishes the handful of fixed-width primitive wire types
// eligible for fusion from every other (composite, variable-length, or
// predicated) field, per spec.md §4.3.
type fieldKind int

const (
	kindComposite fieldKind = iota
	kindPrimitive
)

// primitiveDesc describes one fixed-width wire primitive eligible for
// fusion: its encoded size and, for the three fixed-point types, the
// wire<->semantic conversion factor (spec §4.1 "fixed point").
type primitiveDesc struct {
	size       int
	fixedPoint int // 0 = not fixed point; else divisor for decode, multiplier for encode
	signed     bool
	float32    bool
	float64    bool
	boolean    bool
}

var primitiveTable = map[string]primitiveDesc{
	"byte":   {size: 1, signed: true},
	"ubyte":  {size: 1},
	"bool":   {size: 1, boolean: true},
	"short":  {size: 2, signed: true},
	"ushort": {size: 2},
	"int":    {size: 4, signed: true},
	"long":   {size: 8, signed: true},
	"float":  {size: 4, float32: true},
	"double": {size: 8, float64: true},
	"int8":   {size: 4, signed: true, fixedPoint: 8},
	"int32":  {size: 4, signed: true, fixedPoint: 32},
	"byte32": {size: 1, signed: true, fixedPoint: 32},
}

// compositeTable lists every non-fused composite/variable-length field type
// a DSL line may name, mapping to reader/writer closures over *wire.ReadBuffer
// / *wire.WriteBuffer. Populated in init() to avoid an import cycle concern
// and keep the table declarative.
var compositeTable map[string]compositeCodec

type compositeCodec struct {
	read  func(b *wire.ReadBuffer) (any, error)
	write func(w *wire.WriteBuffer, v any) error
}

// field is one parsed DSL line.
type field struct {
	name      string
	typeName  string
	kind      fieldKind
	prim      primitiveDesc
	composite compositeCodec
	pred      predicate // nil if unconditional
}

// run is a closed group of consecutive unconditional primitive fields,
// fused into one bounded read/write per spec.md §4.3.
type run struct {
	fields []field
	offset []int // byte offset of each field within the run
	size   int
}

// Schema is a compiled packet definition: a field list plus the fused-run
// plan spec.md §4.3 describes.
type Schema struct {
	id     uint32
	name   string
	fields []field
	plan   []planStep
}

// planStep is either a fused run or a single non-fused field, interleaved
// in declaration order.
type planStep struct {
	isRun bool
	run   run
	field field
}

// ID returns the packet id this schema was compiled for.
func (s *Schema) ID() uint32 { return s.id }

// Name returns the packet name this schema was compiled for.
func (s *Schema) Name() string { return s.name }

// Packet is a decoded or under-construction packet instance: a flat record
// (a map) of field name to decoded Go value; declaration order is kept by
// the Schema, not by the Packet. Absent predicated fields are stored as nil.
type Packet struct {
	schema *Schema
	values map[string]any
}

// Get returns the value of a named field, or nil if absent (predicate
// false) or undefined.
func (p *Packet) Get(name string) any { return p.values[name] }

// Set assigns a named field's value.
func (p *Packet) Set(name string, value any) { p.values[name] = value }

// ID returns the packet id of the schema this packet was built from.
func (p *Packet) ID() uint32 { return p.schema.ID() }

// Name returns the packet name of the schema this packet was built from.
func (p *Packet) Name() string { return p.schema.Name() }

// Compile parses dsl (one `name type [predicate]` line per row, blank lines
// and `#` comments ignored) into a Schema for packet id/name.
func Compile(id uint32, name, dsl string) (*Schema, error) {
	fields, err := parseFields(dsl)
	if err != nil {
		return nil, fmt.Errorf("schema %s (0x%02x): %w", name, id, err)
	}
	s := &Schema{id: id, name: name, fields: fields, plan: buildPlan(fields)}
	return s, nil
}

func parseFields(dsl string) ([]field, error) {
	var fields []field
	seen := map[string]bool{}
	for _, line := range strings.Split(dsl, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 2 {
			return nil, fmt.Errorf("%w: line %q", ErrMalformedDSL, line)
		}
		fname, ftype := parts[0], parts[1]
		rest := strings.TrimSpace(line[indexAfterNthField(line, 2):])

		f := field{name: fname, typeName: ftype}
		if prim, ok := primitiveTable[ftype]; ok {
			f.kind = kindPrimitive
			f.prim = prim
		} else if cc, ok := compositeLookup(ftype); ok {
			f.kind = kindComposite
			f.composite = cc
		} else {
			return nil, fmt.Errorf("%w: %q in line %q", ErrUnknownFieldType, ftype, line)
		}
		if rest != "" {
			pred, err := parsePredicate(rest)
			if err != nil {
				return nil, err
			}
			f.pred = pred
		}
		if seen[fname] {
			return nil, fmt.Errorf("%w: duplicate field %q", ErrMalformedDSL, fname)
		}
		seen[fname] = true
		fields = append(fields, f)
	}
	return fields, nil
}

// indexAfterNthField returns the byte offset in line immediately after the
// n-th whitespace-separated token, skipping the whitespace that follows it.
func indexAfterNthField(line string, n int) int {
	count := 0
	inField := false
	for i, r := range line {
		isSpace := r == ' ' || r == '\t'
		if !isSpace && !inField {
			inField = true
			count++
		} else if isSpace && inField {
			inField = false
			if count == n {
				return i
			}
		}
	}
	return len(line)
}

// buildPlan runs the fusion pass: closes a run at every predicated or
// non-primitive field, matching primitives_optimizer in proto.py.
func buildPlan(fields []field) []planStep {
	var plan []planStep
	var cur run
	flush := func() {
		if len(cur.fields) == 0 {
			return
		}
		offset := make([]int, len(cur.fields))
		size := 0
		for i, f := range cur.fields {
			offset[i] = size
			size += f.prim.size
		}
		cur.offset = offset
		cur.size = size
		plan = append(plan, planStep{isRun: true, run: cur})
		cur = run{}
	}
	for _, f := range fields {
		if f.kind == kindPrimitive && f.pred == nil {
			cur.fields = append(cur.fields, f)
			continue
		}
		flush()
		plan = append(plan, planStep{field: f})
	}
	flush()
	return plan
}

func compositeLookup(typeName string) (compositeCodec, bool) {
	cc, ok := compositeTable[typeName]
	return cc, ok
}
