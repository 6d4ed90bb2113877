package protocol_test

import (
	"testing"

	"github.com/dantte-lp/mcproto/internal/protocol"
	"github.com/dantte-lp/mcproto/internal/schema"
)

// Test protocol versions live far outside the catalog package's registered
// range (0-5, 47) to avoid colliding with the process-wide singleton
// registry protocol.Get indexes into.
const (
	testBaseVersion = 90001
	testDerivedVer  = 90002
)

func TestAddPacketAndLookup(t *testing.T) {
	p := protocol.Get(testBaseVersion)
	p.SetName("test-base")

	s, err := schema.Compile(0x10, "greeting", "text string\n")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	p.State(protocol.Play).FromServer(0x10, "greeting", "text string\n")

	got, ok := p.PacketByID(protocol.Play, protocol.Clientbound, 0x10)
	if !ok {
		t.Fatal("PacketByID: not found")
	}
	if got.Name() != s.Name() {
		t.Errorf("PacketByID name = %q, want %q", got.Name(), s.Name())
	}

	if _, ok := p.PacketByID(protocol.Play, protocol.Serverbound, 0x10); ok {
		t.Error("PacketByID: found 0x10 on the wrong direction")
	}
	if _, ok := p.PacketByID(protocol.Status, protocol.Clientbound, 0x10); ok {
		t.Error("PacketByID: found 0x10 on the wrong state")
	}
}

func TestBasedOnInheritsAndOverrides(t *testing.T) {
	base := protocol.Get(testBaseVersion + 10)
	if err := base.State(protocol.Handshake).FromClient(0x00, "handshake", "version varint\n"); err != nil {
		t.Fatalf("FromClient: %v", err)
	}
	if err := base.State(protocol.Play).FromServer(0x01, "keep-alive", "id varint\n"); err != nil {
		t.Fatalf("FromServer: %v", err)
	}

	derived := protocol.Get(testBaseVersion + 11)
	derived.BasedOn(testBaseVersion + 10)

	// Inherited packet present unchanged.
	s, ok := derived.PacketByID(protocol.Handshake, protocol.Serverbound, 0x00)
	if !ok {
		t.Fatal("inherited handshake packet missing")
	}
	if s.Name() != "handshake" {
		t.Errorf("inherited packet name = %q, want handshake", s.Name())
	}

	// Override the same id with a new schema in the derived version.
	if err := derived.State(protocol.Play).FromServer(0x01, "keep-alive-v2", "id long\n"); err != nil {
		t.Fatalf("FromServer override: %v", err)
	}
	overridden, ok := derived.PacketByID(protocol.Play, protocol.Clientbound, 0x01)
	if !ok {
		t.Fatal("overridden packet missing")
	}
	if overridden.Name() != "keep-alive-v2" {
		t.Errorf("overridden packet name = %q, want keep-alive-v2", overridden.Name())
	}

	// The base version must be unaffected by the derived version's override.
	baseStill, ok := base.PacketByID(protocol.Play, protocol.Clientbound, 0x01)
	if !ok {
		t.Fatal("base packet missing after derived override")
	}
	if baseStill.Name() != "keep-alive" {
		t.Errorf("base packet name = %q, want keep-alive (unaffected by derived override)", baseStill.Name())
	}
}

func TestGetPacketsReturnsSnapshot(t *testing.T) {
	p := protocol.Get(testBaseVersion + 20)
	if err := p.State(protocol.Status).FromServer(0x00, "response", "response string\n"); err != nil {
		t.Fatalf("FromServer: %v", err)
	}

	snap := p.GetPackets(protocol.Status, protocol.Clientbound)
	if len(snap) != 1 {
		t.Fatalf("GetPackets: len = %d, want 1", len(snap))
	}
	delete(snap, 0x00)

	still, ok := p.PacketByID(protocol.Status, protocol.Clientbound, 0x00)
	if !ok || still == nil {
		t.Error("mutating the GetPackets snapshot affected the registry")
	}
}

func TestStateStringer(t *testing.T) {
	cases := map[protocol.State]string{
		protocol.Handshake: "handshake",
		protocol.Status:    "status",
		protocol.Login:     "login",
		protocol.Play:      "play",
	}
	for state, want := range cases {
		if got := state.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", state, got, want)
		}
	}
}

func TestDirectionStringer(t *testing.T) {
	if protocol.Clientbound.String() != "clientbound" {
		t.Errorf("Clientbound.String() = %q, want clientbound", protocol.Clientbound.String())
	}
	if protocol.Serverbound.String() != "serverbound" {
		t.Errorf("Serverbound.String() = %q, want serverbound", protocol.Serverbound.String())
	}
}
