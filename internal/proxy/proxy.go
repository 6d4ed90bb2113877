// Package proxy relays TCP connections between a client and an upstream
// Minecraft server, decoding each frame through the registered catalog so
// state transitions and compression toggles stay observable, then
// re-framing the packet's already-decoded raw body onward unchanged.
package proxy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"

	"github.com/dantte-lp/mcproto/internal/endpoint"
	"github.com/dantte-lp/mcproto/internal/framing"
	"github.com/dantte-lp/mcproto/internal/metrics"
	"github.com/dantte-lp/mcproto/internal/protocol"
	"github.com/dantte-lp/mcproto/internal/wire"
)

// Relay accepts client connections and pipes each to a fresh connection to
// upstreamAddr, decoding every frame through the given catalog version.
type Relay struct {
	upstreamAddr     string
	version          int
	initialThreshold int
	collector        *metrics.Collector
	logger           *slog.Logger
}

// New returns a Relay that forwards to upstreamAddr using version's packet
// catalog. initialThreshold is the compression threshold in effect before
// any SetCompression packet is observed; -1 disables compression.
func New(upstreamAddr string, version, initialThreshold int, collector *metrics.Collector, logger *slog.Logger) *Relay {
	return &Relay{
		upstreamAddr:     upstreamAddr,
		version:          version,
		initialThreshold: initialThreshold,
		collector:        collector,
		logger:           logger,
	}
}

// Serve accepts connections on ln until ctx is cancelled.
func (r *Relay) Serve(ctx context.Context, ln net.Listener) error {
	go func() {
		<-ctx.Done()
		_ = ln.Close()
	}()

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("accept: %w", err)
		}
		go r.handleConn(ctx, conn)
	}
}

// session tracks the protocol state and compression threshold shared by
// both directions of one relayed connection, since a Handshake (client ->
// server) or SetCompression packet (either direction, version-dependent)
// changes behavior for both sides of the pipe.
type session struct {
	mu        sync.Mutex
	state     protocol.State
	threshold int // -1 disables compression
}

func (s *session) snapshot() (protocol.State, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state, s.threshold
}

func (s *session) setState(st protocol.State) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
}

func (s *session) setThreshold(n int) {
	s.mu.Lock()
	s.threshold = n
	s.mu.Unlock()
}

func (r *Relay) handleConn(ctx context.Context, client net.Conn) {
	defer client.Close()

	upstream, err := net.Dial("tcp", r.upstreamAddr)
	if err != nil {
		r.logger.Error("dial upstream failed",
			slog.String("upstream", r.upstreamAddr),
			slog.String("error", err.Error()),
		)
		return
	}
	defer upstream.Close()

	proto := protocol.Get(r.version)
	sess := &session{threshold: r.initialThreshold}

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		r.pump(ctx, client, upstream, proto, protocol.Serverbound, sess)
	}()
	go func() {
		defer wg.Done()
		r.pump(ctx, upstream, client, proto, protocol.Clientbound, sess)
	}()

	wg.Wait()
}

// pump reads frames from src (decoding them as dir-bound packets) and
// forwards the raw frame body to dst, re-threshold'd per the shared
// session state.
func (r *Relay) pump(ctx context.Context, src, dst net.Conn, proto *protocol.Protocol, dir protocol.Direction, sess *session) {
	ep := endpoint.New(proto, dir)
	rbuf := wire.NewReadBuffer(nil)
	buf := make([]byte, 4096)

	for {
		state, threshold := sess.snapshot()
		if ep.State() != state {
			ep.SwitchState(state)
		}
		ep.SetCompressionThreshold(threshold)

		pkt, err := ep.Read(rbuf)
		if err != nil {
			if !errors.Is(err, context.Canceled) {
				r.logger.Debug("pump read error",
					slog.String("direction", dir.String()),
					slog.String("state", state.String()),
					slog.String("error", err.Error()),
				)
				r.collector.RecordDecodeError(dir.String(), state.String())
			}
			return
		}
		if pkt == nil {
			n, err := src.Read(buf)
			if err != nil {
				return
			}
			r.collector.RecordBytesReceived(n)
			rbuf.Append(buf[:n])
			continue
		}

		r.collector.RecordDecode(dir.String(), state.String(), pkt.Body.Name())
		r.observeTransition(dir, state, pkt, sess)

		outThreshold := thresholdPtr(sess)
		wbuf := wire.NewWriteBuffer()
		if err := framing.WriteFrame(wbuf, pkt.Raw, outThreshold); err != nil {
			r.logger.Error("re-frame packet failed", slog.String("error", err.Error()))
			return
		}
		compressed := outThreshold != nil && len(pkt.Raw) >= *outThreshold
		r.collector.RecordFrame(compressed, wbuf.Len())
		if _, err := dst.Write(wbuf.Bytes()); err != nil {
			return
		}
	}
}

func thresholdPtr(sess *session) *int {
	_, threshold := sess.snapshot()
	if threshold < 0 {
		return nil
	}
	t := threshold
	return &t
}

// observeTransition watches for the packets that change the shared session
// state or compression threshold: the client's Handshake (selects Status
// or Login) and either side's SetCompression (present from catalog version
// 5 onward in Login, and from version 47 onward in Play as well).
func (r *Relay) observeTransition(dir protocol.Direction, state protocol.State, pkt *endpoint.Packet, sess *session) {
	switch {
	case state == protocol.Handshake && dir == protocol.Serverbound && pkt.Body.Get("state") != nil:
		next, ok := pkt.Body.Get("state").(uint32)
		if !ok {
			return
		}
		if next == 1 {
			sess.setState(protocol.Status)
		} else if next == 2 {
			sess.setState(protocol.Login)
		}
		r.collector.RecordStateTransition(state.String(), sess.mustState().String())

	case state == protocol.Login && pkt.Body.Get("threshold") != nil:
		if th, ok := pkt.Body.Get("threshold").(uint32); ok {
			sess.setThreshold(int(th))
		}

	case state == protocol.Play && pkt.Body.Get("threshold") != nil:
		if th, ok := pkt.Body.Get("threshold").(uint32); ok {
			sess.setThreshold(int(th))
		}

	case state == protocol.Login && dir == protocol.Clientbound && pkt.Body.Get("uuid") != nil && pkt.Body.Get("username") != nil:
		sess.setState(protocol.Play)
		r.collector.RecordStateTransition(state.String(), protocol.Play.String())
	}
}

func (s *session) mustState() protocol.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
