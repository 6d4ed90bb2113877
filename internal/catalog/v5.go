package catalog

import "github.com/dantte-lp/mcproto/internal/protocol"

// registerV5 is a documented minimal extrapolation: original_source does
// not cover protocol version 5, so this adds only the one packet spec.md
// itself specifies unambiguously for this slice of the catalog — the LOGIN
// SetCompression packet that activates framing's compression threshold
// (spec.md §6).
func registerV5() error {
	p := protocol.Get(5)
	p.SetName("13w43a+compression")
	p.BasedOn(4)

	return p.State(protocol.Login).FromServer(0x03, "SetCompression", `
		threshold       varint
	`)
}
