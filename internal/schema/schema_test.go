package schema_test

import (
	"errors"
	"testing"

	"github.com/dantte-lp/mcproto/internal/schema"
	"github.com/dantte-lp/mcproto/internal/wire"
)

func TestCompileParseEmitRoundTrip(t *testing.T) {
	t.Parallel()

	dsl := `
# a handshake-shaped packet
version varint
addr string
port ushort
state varint
`
	s, err := schema.Compile(0x00, "handshake", dsl)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if s.ID() != 0x00 {
		t.Errorf("ID() = %d, want 0", s.ID())
	}
	if s.Name() != "handshake" {
		t.Errorf("Name() = %q, want handshake", s.Name())
	}

	p, err := s.Create(map[string]any{
		"version": uint32(47),
		"addr":    "localhost",
		"port":    uint16(25565),
		"state":   uint32(2),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	w := wire.NewWriteBuffer()
	if err := s.Emit(w, p); err != nil {
		t.Fatalf("Emit: %v", err)
	}

	r := wire.NewReadBuffer(w.Bytes())
	got, err := s.Parse(r)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got.Get("version") != uint32(47) {
		t.Errorf("version = %v, want 47", got.Get("version"))
	}
	if got.Get("addr") != "localhost" {
		t.Errorf("addr = %v, want localhost", got.Get("addr"))
	}
	if got.Get("port") != uint16(25565) {
		t.Errorf("port = %v, want 25565", got.Get("port"))
	}
	if got.Get("state") != uint32(2) {
		t.Errorf("state = %v, want 2", got.Get("state"))
	}
	if r.Len() != 0 {
		t.Errorf("%d trailing bytes after full parse", r.Len())
	}
}

func TestCreateMissingRequiredField(t *testing.T) {
	t.Parallel()

	s, err := schema.Compile(0x01, "needs-both", "a byte\nb byte\n")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if _, err := s.Create(map[string]any{"a": int8(1)}); err == nil {
		t.Error("Create with a missing field: want error")
	}
}

func TestPredicatedFieldAbsentWhenFalse(t *testing.T) {
	t.Parallel()

	dsl := `
kind varint
value int kind == 1
`
	s, err := schema.Compile(0x02, "predicated", dsl)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	p, err := s.Create(map[string]any{"kind": uint32(0)})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.Get("value") != nil {
		t.Errorf("value with kind=0 = %v, want nil", p.Get("value"))
	}

	w := wire.NewWriteBuffer()
	if err := s.Emit(w, p); err != nil {
		t.Fatalf("Emit: %v", err)
	}

	r := wire.NewReadBuffer(w.Bytes())
	got, err := s.Parse(r)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got.Get("value") != nil {
		t.Errorf("parsed value with kind=0 = %v, want nil", got.Get("value"))
	}
	if r.Len() != 0 {
		t.Errorf("%d trailing bytes", r.Len())
	}
}

func TestPredicatedFieldPresentWhenTrue(t *testing.T) {
	t.Parallel()

	dsl := `
kind varint
value int kind == 1
`
	s, err := schema.Compile(0x02, "predicated", dsl)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	p, err := s.Create(map[string]any{"kind": uint32(1), "value": int32(42)})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	w := wire.NewWriteBuffer()
	if err := s.Emit(w, p); err != nil {
		t.Fatalf("Emit: %v", err)
	}

	r := wire.NewReadBuffer(w.Bytes())
	got, err := s.Parse(r)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got.Get("value") != int32(42) {
		t.Errorf("value = %v, want 42", got.Get("value"))
	}
}

func TestInPredicate(t *testing.T) {
	t.Parallel()

	dsl := `
action varint
target int action in (0, 2)
`
	s, err := schema.Compile(0x03, "in-pred", dsl)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	for _, action := range []uint32{0, 1, 2} {
		fields := map[string]any{"action": action}
		wantPresent := action == 0 || action == 2
		if wantPresent {
			fields["target"] = int32(7)
		}
		p, err := s.Create(fields)
		if err != nil {
			t.Fatalf("Create(action=%d): %v", action, err)
		}
		present := p.Get("target") != nil
		if present != wantPresent {
			t.Errorf("action=%d: target present = %v, want %v", action, present, wantPresent)
		}
	}
}

func TestUnknownFieldType(t *testing.T) {
	t.Parallel()

	_, err := schema.Compile(0x04, "bad", "foo not_a_real_type\n")
	if !errors.Is(err, schema.ErrUnknownFieldType) {
		t.Errorf("Compile: got %v, want ErrUnknownFieldType", err)
	}
}

func TestMalformedDSLLine(t *testing.T) {
	t.Parallel()

	_, err := schema.Compile(0x05, "bad", "onlyonetoken\n")
	if !errors.Is(err, schema.ErrMalformedDSL) {
		t.Errorf("Compile: got %v, want ErrMalformedDSL", err)
	}
}

func TestDuplicateFieldName(t *testing.T) {
	t.Parallel()

	_, err := schema.Compile(0x06, "dup", "a byte\na byte\n")
	if !errors.Is(err, schema.ErrMalformedDSL) {
		t.Errorf("Compile: got %v, want ErrMalformedDSL", err)
	}
}

func TestParseTrailingBytesOnlyAffectsCaller(t *testing.T) {
	t.Parallel()

	// Parse itself only consumes what the schema declares; leftover bytes
	// in the buffer are the caller's (endpoint's) concern, not an error
	// Parse raises on its own.
	s, err := schema.Compile(0x07, "short", "a byte\n")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	r := wire.NewReadBuffer([]byte{0x01, 0x02, 0x03})
	p, err := s.Parse(r)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.Get("a") != int8(1) {
		t.Errorf("a = %v, want 1", p.Get("a"))
	}
	if r.Len() != 2 {
		t.Errorf("Len() = %d, want 2 trailing bytes", r.Len())
	}
}

func TestDescListsFieldsInOrder(t *testing.T) {
	t.Parallel()

	s, err := schema.Compile(0x08, "described", "a byte\nb varint\n")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	desc := s.Desc()
	if desc == "" {
		t.Fatal("Desc() returned empty string")
	}
	if want := "described (0x08)\n  a (byte)\n  b (varint)\n"; desc != want {
		t.Errorf("Desc() = %q, want %q", desc, want)
	}
}

func TestFusedRunBoundaryAtPredicatedField(t *testing.T) {
	t.Parallel()

	// Two primitive runs split by a predicated field must still decode in
	// declaration order regardless of the fusion pass's internal grouping.
	dsl := `
a byte
b byte
flag varint
c int flag == 1
d byte
e byte
`
	s, err := schema.Compile(0x09, "split-run", dsl)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	p, err := s.Create(map[string]any{
		"a": int8(1), "b": int8(2), "flag": uint32(1), "c": int32(100),
		"d": int8(3), "e": int8(4),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	w := wire.NewWriteBuffer()
	if err := s.Emit(w, p); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	r := wire.NewReadBuffer(w.Bytes())
	got, err := s.Parse(r)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got.Get("a") != int8(1) || got.Get("b") != int8(2) || got.Get("c") != int32(100) ||
		got.Get("d") != int8(3) || got.Get("e") != int8(4) {
		t.Errorf("split-run round trip mismatch: %+v", got)
	}
}
