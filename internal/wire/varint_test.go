package wire_test

import (
	"errors"
	"testing"

	"github.com/dantte-lp/mcproto/internal/wire"
)

func TestVarintRoundTrip(t *testing.T) {
	t.Parallel()

	cases := []uint32{0, 1, 127, 128, 255, 300, 2097151, 2097152, 0x7fffffff, 0xffffffff}
	for _, v := range cases {
		w := wire.NewWriteBuffer()
		if err := wire.WriteVarint(w, v); err != nil {
			t.Fatalf("WriteVarint(%d): %v", v, err)
		}
		if got := wire.SizeVarint(v); got != w.Len() {
			t.Errorf("SizeVarint(%d) = %d, want %d", v, got, w.Len())
		}

		r := wire.NewReadBuffer(w.Bytes())
		got, err := wire.ReadVarint(r)
		if err != nil {
			t.Fatalf("ReadVarint(%d): %v", v, err)
		}
		if got != v {
			t.Errorf("round trip %d: got %d", v, got)
		}
		if r.Len() != 0 {
			t.Errorf("round trip %d left %d trailing bytes", v, r.Len())
		}
	}
}

func TestVarintKnownEncodings(t *testing.T) {
	t.Parallel()

	cases := []struct {
		value uint32
		bytes []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{127, []byte{0x7f}},
		{128, []byte{0x80, 0x01}},
		{255, []byte{0xff, 0x01}},
		{25565, []byte{0xdd, 0xc7, 0x01}},
		{2097151, []byte{0xff, 0xff, 0x7f}},
		{2147483647, []byte{0xff, 0xff, 0xff, 0xff, 0x07}},
		{4294967295, []byte{0xff, 0xff, 0xff, 0xff, 0x0f}},
	}

	for _, c := range cases {
		w := wire.NewWriteBuffer()
		if err := wire.WriteVarint(w, c.value); err != nil {
			t.Fatalf("WriteVarint(%d): %v", c.value, err)
		}
		if string(w.Bytes()) != string(c.bytes) {
			t.Errorf("WriteVarint(%d) = % x, want % x", c.value, w.Bytes(), c.bytes)
		}
	}
}

func TestVarintNeedsMoreData(t *testing.T) {
	t.Parallel()

	r := wire.NewReadBuffer([]byte{0x80, 0x80})
	_, err := wire.ReadVarint(r)
	if !errors.Is(err, wire.ErrNeedMoreData) {
		t.Errorf("ReadVarint on truncated input: got %v, want ErrNeedMoreData", err)
	}
}

func TestVarintTooLong(t *testing.T) {
	t.Parallel()

	r := wire.NewReadBuffer([]byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80})
	_, err := wire.ReadVarint(r)
	if !errors.Is(err, wire.ErrVarintTooLong) {
		t.Errorf("ReadVarint on 6-byte input: got %v, want ErrVarintTooLong", err)
	}
}
