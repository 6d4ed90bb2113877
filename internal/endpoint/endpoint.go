// Package endpoint implements the stateful per-direction packet reader/
// writer (spec C6): framing plus schema lookup, with the state/threshold
// transition semantics spec.md §4.6 and §5 require.
package endpoint

import (
	"errors"
	"fmt"

	"github.com/dantte-lp/mcproto/internal/framing"
	"github.com/dantte-lp/mcproto/internal/protocol"
	"github.com/dantte-lp/mcproto/internal/schema"
	"github.com/dantte-lp/mcproto/internal/wire"
)

// ErrUnknownPacketID indicates a frame's packet id has no schema in the
// endpoint's current (state, direction) table (spec §7 ProtocolViolation).
var ErrUnknownPacketID = errors.New("endpoint: unknown packet id for current state")

// Endpoint decodes/encodes packets for one direction of one connection,
// tracking the active protocol state and compression threshold. It is not
// safe for concurrent use (spec §5: single-threaded per endpoint).
type Endpoint struct {
	proto     *protocol.Protocol
	dir       protocol.Direction
	state     protocol.State
	threshold *int
}

// New creates an Endpoint bound to proto, starting in protocol.Handshake.
func New(proto *protocol.Protocol, dir protocol.Direction) *Endpoint {
	return &Endpoint{proto: proto, dir: dir, state: protocol.Handshake}
}

// State returns the endpoint's current state.
func (e *Endpoint) State() protocol.State { return e.state }

// SwitchState replaces the active (state, direction) schema table. Per
// spec.md §4.6, the new table is in effect before the next Read/Write call
// returns; this implementation installs it immediately, since Go has no
// equivalent of Python's lazy table caching to race against.
func (e *Endpoint) SwitchState(state protocol.State) {
	e.state = state
}

// SetCompressionThreshold sets the compression threshold. n == -1 disables
// compression (spec.md §4.6); n >= 0 sets an active threshold.
func (e *Endpoint) SetCompressionThreshold(n int) {
	if n < 0 {
		e.threshold = nil
		return
	}
	t := n
	e.threshold = &t
}

// Packet is one decoded frame: its id, its schema-parsed fields, and the
// raw body bytes (packet id plus payload, with the frame's length prefix and
// any compression already removed), matching proto.py's Endpoint.read
// returning (packet, raw).
type Packet struct {
	ID   uint32
	Body *schema.Packet
	Raw  []byte
}

// Read attempts to decode one frame from b. It returns (nil, nil) if b does
// not yet hold a complete frame (spec.md §4.6 step 1).
func (e *Endpoint) Read(b *wire.ReadBuffer) (*Packet, error) {
	raw, err := framing.ReadFrame(b, e.threshold)
	if err != nil {
		if errors.Is(err, wire.ErrNeedMoreData) {
			return nil, nil
		}
		return nil, err
	}

	body := wire.NewReadBuffer(raw)
	id, err := wire.ReadVarint(body)
	if err != nil {
		return nil, fmt.Errorf("endpoint: reading packet id: %w", err)
	}

	s, ok := e.proto.PacketByID(e.state, e.dir, id)
	if !ok {
		return nil, fmt.Errorf("%w: id=0x%02x state=%s dir=%s version=%d",
			ErrUnknownPacketID, id, e.state, e.dir, e.proto.Version())
	}

	p, err := s.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("endpoint: parsing packet %s: %w", s.Name(), err)
	}
	return &Packet{ID: id, Body: p, Raw: raw}, nil
}

// Write constructs a packet from id and fields via the current schema
// table, frames it, and appends it to w (spec.md §4.6 step "write").
func (e *Endpoint) Write(w *wire.WriteBuffer, id uint32, fields map[string]any) error {
	s, ok := e.proto.PacketByID(e.state, e.dir, id)
	if !ok {
		return fmt.Errorf("%w: id=0x%02x state=%s dir=%s version=%d",
			ErrUnknownPacketID, id, e.state, e.dir, e.proto.Version())
	}
	p, err := s.Create(fields)
	if err != nil {
		return fmt.Errorf("endpoint: creating packet %s: %w", s.Name(), err)
	}

	body := wire.NewWriteBuffer()
	if err := wire.WriteVarint(body, id); err != nil {
		return err
	}
	if err := s.Emit(body, p); err != nil {
		return fmt.Errorf("endpoint: emitting packet %s: %w", s.Name(), err)
	}
	return framing.WriteFrame(w, body.Bytes(), e.threshold)
}
