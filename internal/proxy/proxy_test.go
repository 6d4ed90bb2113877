package proxy

import (
	"context"
	"io"
	"log/slog"
	"net"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dantte-lp/mcproto/internal/catalog"
	"github.com/dantte-lp/mcproto/internal/endpoint"
	"github.com/dantte-lp/mcproto/internal/metrics"
	"github.com/dantte-lp/mcproto/internal/protocol"
	"github.com/dantte-lp/mcproto/internal/wire"
)

// TestPumpRelaysUncompressedFrameUnchanged checks that pump decodes a
// Handshake frame through the catalog, observes the state transition it
// requests, and forwards the frame's bytes onward byte-for-byte (since an
// uncompressed re-frame of an already-uncompressed body is identical to
// the input).
func TestPumpRelaysUncompressedFrameUnchanged(t *testing.T) {
	if err := catalog.Load(); err != nil {
		t.Fatalf("catalog.Load(): %v", err)
	}

	proto := protocol.Get(0)
	collector := metrics.NewCollector(prometheus.NewRegistry())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := &Relay{collector: collector, logger: logger}
	sess := &session{threshold: -1}

	srcServer, srcClient := net.Pipe()
	dstServer, dstClient := net.Pipe()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		r.pump(ctx, srcServer, dstServer, proto, protocol.Serverbound, sess)
		close(done)
	}()

	out := endpoint.New(proto, protocol.Serverbound)
	wbuf := wire.NewWriteBuffer()
	if err := out.Write(wbuf, 0x00, map[string]any{
		"version": uint32(0),
		"addr":    "localhost",
		"port":    uint16(25565),
		"state":   uint32(1), // 1 = Status
	}); err != nil {
		t.Fatalf("encode handshake: %v", err)
	}
	want := wbuf.Bytes()

	writeErr := make(chan error, 1)
	go func() {
		_, err := srcClient.Write(want)
		writeErr <- err
	}()

	got := make([]byte, len(want))
	if _, err := io.ReadFull(dstClient, got); err != nil {
		t.Fatalf("read relayed frame: %v", err)
	}
	if err := <-writeErr; err != nil {
		t.Fatalf("write handshake: %v", err)
	}

	if string(got) != string(want) {
		t.Errorf("relayed frame = %x, want %x", got, want)
	}

	if st := sess.mustState(); st != protocol.Status {
		t.Errorf("session state after handshake = %v, want Status", st)
	}

	srcClient.Close()
	srcServer.Close()
	dstClient.Close()
	dstServer.Close()
	<-done
}

func TestSessionThresholdPtr(t *testing.T) {
	sess := &session{threshold: -1}
	if p := thresholdPtr(sess); p != nil {
		t.Errorf("thresholdPtr(-1) = %v, want nil", p)
	}

	sess.setThreshold(256)
	p := thresholdPtr(sess)
	if p == nil || *p != 256 {
		t.Errorf("thresholdPtr(256) = %v, want pointer to 256", p)
	}
}
