// Package framing implements the length-prefixed, optionally zlib-compressed
// frame layer (spec C5) sitting between the raw byte stream and the
// schema-keyed packet body.
package framing

import (
	"bytes"
	"compress/zlib"
	"errors"
	"fmt"
	"io"

	"github.com/dantte-lp/mcproto/internal/wire"
)

// ErrCompressionInvariant indicates a compressed-frame body violated the
// data_length/threshold invariants (spec §7 ProtocolViolation).
var ErrCompressionInvariant = errors.New("framing: compression envelope invariant violated")

// ReadFrame attempts to read one frame from b. threshold is nil when
// compression is disabled. It returns (nil, wire.ErrNeedMoreData) if b does
// not yet hold a complete frame, restoring b's cursor first.
func ReadFrame(b *wire.ReadBuffer, threshold *int) ([]byte, error) {
	snapshot := b.Snapshot()
	body, err := readFrame(b, threshold)
	if err != nil {
		b.Restore(snapshot)
		return nil, err
	}
	return body, nil
}

func readFrame(b *wire.ReadBuffer, threshold *int) ([]byte, error) {
	totalSize, err := wire.ReadVarint(b)
	if err != nil {
		return nil, err
	}
	if threshold == nil {
		return b.Read(int(totalSize))
	}

	beforeDataLen := b.Snapshot()
	dataLength, err := wire.ReadVarint(b)
	if err != nil {
		return nil, err
	}
	dataLenFieldSize := b.Snapshot() - beforeDataLen
	remaining := int(totalSize) - dataLenFieldSize
	if remaining < 0 {
		return nil, fmt.Errorf("%w: total_size smaller than data_length field", ErrCompressionInvariant)
	}
	raw, err := b.Read(remaining)
	if err != nil {
		return nil, err
	}

	if dataLength == 0 {
		if len(raw) >= *threshold {
			return nil, fmt.Errorf("%w: uncompressed body length %d >= threshold %d", ErrCompressionInvariant, len(raw), *threshold)
		}
		return raw, nil
	}

	decompressed, err := zlibDecompress(raw, int(dataLength))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompressionInvariant, err)
	}
	if len(decompressed) != int(dataLength) {
		return nil, fmt.Errorf("%w: decompressed length %d != declared data_length %d", ErrCompressionInvariant, len(decompressed), dataLength)
	}
	if len(decompressed) < *threshold {
		return nil, fmt.Errorf("%w: decompressed length %d < threshold %d", ErrCompressionInvariant, len(decompressed), *threshold)
	}
	return decompressed, nil
}

func zlibDecompress(raw []byte, hint int) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	out := make([]byte, 0, hint)
	buf := bytes.NewBuffer(out)
	if _, err := io.Copy(buf, r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFrame serializes body (varint packet id + payload, already
// constructed by the caller) into a frame on w. threshold is nil when
// compression is disabled.
func WriteFrame(w *wire.WriteBuffer, body []byte, threshold *int) error {
	if threshold == nil {
		if err := wire.WriteVarint(w, uint32(len(body))); err != nil {
			return err
		}
		_, err := w.Write(body)
		return err
	}

	if len(body) >= *threshold {
		compressed, err := zlibCompress(body)
		if err != nil {
			return err
		}
		dataLenSize := wire.SizeVarint(uint32(len(body)))
		if err := wire.WriteVarint(w, uint32(dataLenSize+len(compressed))); err != nil {
			return err
		}
		if err := wire.WriteVarint(w, uint32(len(body))); err != nil {
			return err
		}
		_, err = w.Write(compressed)
		return err
	}

	dataLenSize := wire.SizeVarint(0)
	if err := wire.WriteVarint(w, uint32(dataLenSize+len(body))); err != nil {
		return err
	}
	if err := wire.WriteVarint(w, 0); err != nil {
		return err
	}
	_, err := w.Write(body)
	return err
}

func zlibCompress(body []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(body); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
