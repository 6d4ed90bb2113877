// Package protocol implements the versioned packet-schema registry (spec
// C4): one Protocol per protocol version, each holding a (state, direction)
// -> (packet id -> *schema.Schema) table, with based_on inheritance.
package protocol

import (
	"fmt"
	"sync"

	"github.com/dantte-lp/mcproto/internal/schema"
)

// State is an endpoint state (spec §4.4): Handshake, Status, Login, Play.
type State int

const (
	Handshake State = iota
	Status
	Login
	Play
)

func (s State) String() string {
	switch s {
	case Handshake:
		return "handshake"
	case Status:
		return "status"
	case Login:
		return "login"
	case Play:
		return "play"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Direction is the direction a packet travels (spec §4.4).
type Direction int

const (
	Clientbound Direction = iota
	Serverbound
)

func (d Direction) String() string {
	if d == Clientbound {
		return "clientbound"
	}
	return "serverbound"
}

// packetTable maps packet id to its compiled schema for one (state,
// direction) pair.
type packetTable map[uint32]*schema.Schema

// Protocol is one protocol version's full packet catalog.
type Protocol struct {
	version int
	name    string
	mu      sync.RWMutex
	tables  map[State][2]packetTable // [Clientbound, Serverbound]
}

var (
	registryMu sync.RWMutex
	registry   = map[int]*Protocol{}
)

// Get returns the singleton Protocol for version, creating it empty on
// first access, mirroring proto.py's `protocol(v)` accessor.
func Get(version int) *Protocol {
	registryMu.Lock()
	defer registryMu.Unlock()
	p, ok := registry[version]
	if !ok {
		p = &Protocol{version: version, tables: map[State][2]packetTable{}}
		registry[version] = p
	}
	return p
}

// Versions returns every protocol version currently registered, sorted
// ascending.
func Versions() []int {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]int, 0, len(registry))
	for v := range registry {
		out = append(out, v)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

// Version returns this protocol's version number.
func (p *Protocol) Version() int { return p.version }

// Name returns this protocol's human-readable name (spec: "13w42a", "1.7.2", ...).
func (p *Protocol) Name() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.name
}

// SetName assigns this protocol's human-readable name.
func (p *Protocol) SetName(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.name = name
}

// BasedOn copies every packet registered on otherVersion into p, shallow:
// later AddPacket calls on p override by (state, direction, id) without
// mutating otherVersion (spec §4.4 "based_on").
func (p *Protocol) BasedOn(otherVersion int) {
	other := Get(otherVersion)
	p.mu.Lock()
	defer p.mu.Unlock()
	other.mu.RLock()
	defer other.mu.RUnlock()
	for state, sides := range other.tables {
		for dir := 0; dir < 2; dir++ {
			for id, s := range sides[dir] {
				p.addPacketLocked(state, Direction(dir), id, s)
			}
		}
	}
}

// AddPacket registers s under (state, direction), overriding any existing
// entry with the same packet id.
func (p *Protocol) AddPacket(state State, dir Direction, s *schema.Schema) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.addPacketLocked(state, dir, s.ID(), s)
}

func (p *Protocol) addPacketLocked(state State, dir Direction, id uint32, s *schema.Schema) {
	sides, ok := p.tables[state]
	if !ok {
		sides = [2]packetTable{{}, {}}
	}
	if sides[dir] == nil {
		sides[dir] = packetTable{}
	}
	sides[dir][id] = s
	p.tables[state] = sides
}

// GetPackets returns the packet id -> schema table for (state, direction).
// The returned map is a snapshot; mutating it does not affect the registry.
func (p *Protocol) GetPackets(state State, dir Direction) map[uint32]*schema.Schema {
	p.mu.RLock()
	defer p.mu.RUnlock()
	sides, ok := p.tables[state]
	if !ok {
		return nil
	}
	src := sides[dir]
	out := make(map[uint32]*schema.Schema, len(src))
	for id, s := range src {
		out[id] = s
	}
	return out
}

// packetByID looks up one schema by (state, direction, id) without copying
// the whole table, used by endpoint.Endpoint.Read/Write hot paths.
func (p *Protocol) packetByID(state State, dir Direction, id uint32) (*schema.Schema, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	sides, ok := p.tables[state]
	if !ok {
		return nil, false
	}
	s, ok := sides[dir][id]
	return s, ok
}

// PacketByID is the exported form of packetByID, used by endpoint.Endpoint.
func (p *Protocol) PacketByID(state State, dir Direction, id uint32) (*schema.Schema, bool) {
	return p.packetByID(state, dir, id)
}

// State returns a builder scoped to state, offering FromServer/FromClient
// registration helpers matching proto.py's `_State`/`_Side`.
func (p *Protocol) State(state State) StateBuilder {
	return StateBuilder{p: p, state: state}
}

// StateBuilder scopes packet registration to one (Protocol, State) pair.
type StateBuilder struct {
	p     *Protocol
	state State
}

// FromServer compiles dsl and registers it as a clientbound packet
// (server -> client) under this builder's state.
func (sb StateBuilder) FromServer(id uint32, name, dsl string) error {
	return sb.add(Clientbound, id, name, dsl)
}

// FromClient compiles dsl and registers it as a serverbound packet
// (client -> server) under this builder's state.
func (sb StateBuilder) FromClient(id uint32, name, dsl string) error {
	return sb.add(Serverbound, id, name, dsl)
}

func (sb StateBuilder) add(dir Direction, id uint32, name, dsl string) error {
	s, err := schema.Compile(id, name, dsl)
	if err != nil {
		return err
	}
	sb.p.AddPacket(sb.state, dir, s)
	return nil
}
