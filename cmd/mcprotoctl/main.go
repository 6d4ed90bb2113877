// mcprotoctl is a CLI for inspecting the registered packet catalog and
// exercising the handshake/status round-trip against a live server.
package main

import "github.com/dantte-lp/mcproto/cmd/mcprotoctl/commands"

func main() {
	commands.Execute()
}
