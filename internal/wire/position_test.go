package wire_test

import (
	"testing"

	"github.com/dantte-lp/mcproto/internal/wire"
)

func TestPositionRoundTrip(t *testing.T) {
	t.Parallel()

	cases := []wire.Position{
		{X: 0, Y: 0, Z: 0},
		{X: -1, Y: 255, Z: -1},
		{X: 2097151, Y: 64, Z: -2097152},
		{X: -30000000, Y: 1, Z: 30000000},
	}

	for _, p := range cases {
		w := wire.NewWriteBuffer()
		if err := wire.WritePosition(w, p); err != nil {
			t.Fatalf("WritePosition(%+v): %v", p, err)
		}
		r := wire.NewReadBuffer(w.Bytes())
		got, err := wire.ReadPosition(r)
		if err != nil {
			t.Fatalf("ReadPosition(%+v): %v", p, err)
		}
		if got != p {
			t.Errorf("position round trip: got %+v, want %+v", got, p)
		}
		if r.Len() != 0 {
			t.Errorf("position round trip %+v left %d trailing bytes", p, r.Len())
		}
	}
}

// TestPackedPositionRoundTrip round-trips positions at the extremes of the
// 26-bit signed x and z fields, together with y values up to 255, the
// largest value Position.Y (a uint8) can hold.
func TestPackedPositionRoundTrip(t *testing.T) {
	t.Parallel()

	cases := []wire.Position{
		{X: 0, Y: 0, Z: 0},
		{X: -1, Y: 255, Z: -1},
		{X: 33554431, Y: 255, Z: -33554432},
		{X: -33554432, Y: 128, Z: 33554431},
	}

	for _, p := range cases {
		w := wire.NewWriteBuffer()
		if err := wire.WritePackedPosition(w, p); err != nil {
			t.Fatalf("WritePackedPosition(%+v): %v", p, err)
		}
		r := wire.NewReadBuffer(w.Bytes())
		got, err := wire.ReadPackedPosition(r)
		if err != nil {
			t.Fatalf("ReadPackedPosition(%+v): %v", p, err)
		}
		if got != p {
			t.Errorf("packed position round trip: got %+v, want %+v", got, p)
		}
	}
}

// TestPackedPositionYDoesNotCorruptX pins the corrected masking behavior
// directly: encoding two positions that differ only in y must leave x and z
// identical in the decoded result, since y occupies its own 12-bit field
// and must be masked before the shift.
func TestPackedPositionYDoesNotCorruptX(t *testing.T) {
	t.Parallel()

	base := wire.Position{X: 12345, Y: 0, Z: -54321}
	withY := wire.Position{X: 12345, Y: 255, Z: -54321}

	for _, p := range []wire.Position{base, withY} {
		w := wire.NewWriteBuffer()
		if err := wire.WritePackedPosition(w, p); err != nil {
			t.Fatalf("WritePackedPosition(%+v): %v", p, err)
		}
		r := wire.NewReadBuffer(w.Bytes())
		got, err := wire.ReadPackedPosition(r)
		if err != nil {
			t.Fatalf("ReadPackedPosition(%+v): %v", p, err)
		}
		if got.X != 12345 || got.Z != -54321 {
			t.Errorf("y=%d corrupted x/z: got %+v", p.Y, got)
		}
	}
}

func TestUUIDRoundTrip(t *testing.T) {
	t.Parallel()

	v := [2]uint64{0x0123456789ABCDEF, 0xFEDCBA9876543210}

	w := wire.NewWriteBuffer()
	if err := wire.WriteUUID(w, v); err != nil {
		t.Fatalf("WriteUUID: %v", err)
	}

	r := wire.NewReadBuffer(w.Bytes())
	got, err := wire.ReadUUID(r)
	if err != nil {
		t.Fatalf("ReadUUID: %v", err)
	}
	if got != v {
		t.Errorf("UUID round trip: got %x, want %x", got, v)
	}
	if r.Len() != 0 {
		t.Errorf("UUID round trip left %d trailing bytes", r.Len())
	}
}
