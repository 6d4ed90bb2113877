package framing_test

import (
	"errors"
	"testing"

	"github.com/dantte-lp/mcproto/internal/framing"
	"github.com/dantte-lp/mcproto/internal/wire"
)

func TestWriteReadFrameUncompressed(t *testing.T) {
	t.Parallel()

	body := []byte{0x00, 0x01, 0x02, 0x03}

	w := wire.NewWriteBuffer()
	if err := framing.WriteFrame(w, body, nil); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}

	r := wire.NewReadBuffer(w.Bytes())
	got, err := framing.ReadFrame(r, nil)
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	if string(got) != string(body) {
		t.Errorf("ReadFrame = % x, want % x", got, body)
	}
	if r.Len() != 0 {
		t.Errorf("%d trailing bytes after frame", r.Len())
	}
}

func TestWriteReadFrameBelowThreshold(t *testing.T) {
	t.Parallel()

	body := []byte{0xAA, 0xBB}
	threshold := 256

	w := wire.NewWriteBuffer()
	if err := framing.WriteFrame(w, body, &threshold); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}

	r := wire.NewReadBuffer(w.Bytes())
	got, err := framing.ReadFrame(r, &threshold)
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	if string(got) != string(body) {
		t.Errorf("ReadFrame = % x, want % x", got, body)
	}
}

func TestWriteReadFrameAboveThresholdCompresses(t *testing.T) {
	t.Parallel()

	body := make([]byte, 512)
	for i := range body {
		body[i] = byte(i % 7)
	}
	threshold := 64

	w := wire.NewWriteBuffer()
	if err := framing.WriteFrame(w, body, &threshold); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}

	// A compressed frame, prefixes included, must be smaller on the wire than
	// the raw body alone, given the repetitive body above.
	if w.Len() >= len(body) {
		t.Errorf("compressed frame length %d not smaller than body %d", w.Len(), len(body))
	}

	r := wire.NewReadBuffer(w.Bytes())
	got, err := framing.ReadFrame(r, &threshold)
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	if string(got) != string(body) {
		t.Errorf("round trip mismatch: got %d bytes, want %d bytes", len(got), len(body))
	}
}

func TestReadFrameNeedsMoreDataPreservesCursor(t *testing.T) {
	t.Parallel()

	body := []byte{0x01, 0x02, 0x03, 0x04, 0x05}
	w := wire.NewWriteBuffer()
	if err := framing.WriteFrame(w, body, nil); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}

	full := w.Bytes()
	r := wire.NewReadBuffer(full[:len(full)-1])
	if _, err := framing.ReadFrame(r, nil); !errors.Is(err, wire.ErrNeedMoreData) {
		t.Fatalf("ReadFrame on truncated frame: got %v, want ErrNeedMoreData", err)
	}
	if r.Len() != len(full)-1 {
		t.Errorf("cursor moved on ErrNeedMoreData: Len() = %d, want %d", r.Len(), len(full)-1)
	}

	// Feeding the remaining byte must now complete the frame.
	r.Append(full[len(full)-1:])
	got, err := framing.ReadFrame(r, nil)
	if err != nil {
		t.Fatalf("ReadFrame after Append: %v", err)
	}
	if string(got) != string(body) {
		t.Errorf("ReadFrame after Append = % x, want % x", got, body)
	}
}

func TestReadFrameUncompressedBodyAboveThresholdIsViolation(t *testing.T) {
	t.Parallel()

	threshold := 4
	// Hand-construct a frame claiming data_length 0 (uncompressed) whose
	// body is at least as long as the threshold, which the spec forbids.
	inner := wire.NewWriteBuffer()
	if err := wire.WriteVarint(inner, 0); err != nil {
		t.Fatal(err)
	}
	body := []byte{0x01, 0x02, 0x03, 0x04, 0x05}
	if _, err := inner.Write(body); err != nil {
		t.Fatal(err)
	}

	frame := wire.NewWriteBuffer()
	if err := wire.WriteVarint(frame, uint32(inner.Len())); err != nil {
		t.Fatal(err)
	}
	if _, err := frame.Write(inner.Bytes()); err != nil {
		t.Fatal(err)
	}

	r := wire.NewReadBuffer(frame.Bytes())
	if _, err := framing.ReadFrame(r, &threshold); !errors.Is(err, framing.ErrCompressionInvariant) {
		t.Errorf("ReadFrame: got %v, want ErrCompressionInvariant", err)
	}
}
