package catalog_test

import (
	"testing"

	"github.com/dantte-lp/mcproto/internal/catalog"
	"github.com/dantte-lp/mcproto/internal/protocol"
)

func TestLoadRegistersAllVersions(t *testing.T) {
	if err := catalog.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	for _, version := range []int{0, 1, 2, 3, 4, 5, 47} {
		p := protocol.Get(version)
		if p.Name() == "" {
			t.Errorf("version %d: name not set after Load", version)
		}
		if _, ok := p.PacketByID(protocol.Handshake, protocol.Serverbound, 0x00); !ok {
			t.Errorf("version %d: no Handshake packet registered", version)
		}
	}
}

func TestLoadIsIdempotent(t *testing.T) {
	if err := catalog.Load(); err != nil {
		t.Fatalf("first Load: %v", err)
	}
	p := protocol.Get(0)
	before := p.GetPackets(protocol.Play, protocol.Clientbound)

	if err := catalog.Load(); err != nil {
		t.Fatalf("second Load: %v", err)
	}
	after := p.GetPackets(protocol.Play, protocol.Clientbound)

	if len(before) != len(after) {
		t.Errorf("packet count changed across Load calls: %d -> %d", len(before), len(after))
	}
}

func TestV47HasStatusAndLoginPackets(t *testing.T) {
	if err := catalog.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	p := protocol.Get(47)
	if _, ok := p.PacketByID(protocol.Status, protocol.Serverbound, 0x00); !ok {
		t.Error("v47: no Status Request packet")
	}
	if _, ok := p.PacketByID(protocol.Login, protocol.Serverbound, 0x00); !ok {
		t.Error("v47: no Login Start packet")
	}
	if _, ok := p.PacketByID(protocol.Play, protocol.Clientbound, 0x00); !ok {
		t.Error("v47: no Play-state clientbound 0x00 packet")
	}
}
