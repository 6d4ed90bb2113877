package catalog

import "github.com/dantte-lp/mcproto/internal/protocol"

// registerV1to3 registers versions 1-3 as pure based_on chains with no
// overrides, matching proto.py's "protocol(N).based_on(N-1)" lines exactly.
func registerV1to3() error {
	protocol.Get(1).SetName("13w42b")
	protocol.Get(1).BasedOn(0)

	protocol.Get(2).SetName("13w43a")
	protocol.Get(2).BasedOn(1)

	protocol.Get(3).SetName("1.7.1")
	protocol.Get(3).BasedOn(2)

	return nil
}

// registerV4 registers version 4 ("1.7.2") as version 3 plus the single
// MultiBlockChange override proto.py applies: chunk_x/chunk_z widen from
// varint to int, the rest unchanged.
func registerV4() error {
	p := protocol.Get(4)
	p.SetName("1.7.2")
	p.BasedOn(3)

	return p.State(protocol.Play).FromServer(0x22, "MultiBlockChange", `
		chunk_x         int
		chunk_z         int
		changes         changes_legacy
	`)
}
