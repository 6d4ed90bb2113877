package commands

import (
	"fmt"
	"net"
	"time"

	"github.com/spf13/cobra"

	"github.com/dantte-lp/mcproto/internal/catalog"
	"github.com/dantte-lp/mcproto/internal/endpoint"
	"github.com/dantte-lp/mcproto/internal/protocol"
	"github.com/dantte-lp/mcproto/internal/wire"
)

func pingCmd() *cobra.Command {
	var (
		addr    string
		version int
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "ping",
		Short: "Perform a handshake/status round-trip against a live server",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := catalog.Load(); err != nil {
				return fmt.Errorf("load catalog: %w", err)
			}
			return runPing(addr, version, timeout)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "localhost:25565", "server address (host:port)")
	cmd.Flags().IntVar(&version, "version", 47, "protocol version to handshake with")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "connection and round-trip timeout")

	return cmd
}

func runPing(addr string, version int, timeout time.Duration) error {
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return fmt.Errorf("parse addr %q: %w", addr, err)
	}
	var port uint16
	if _, err := fmt.Sscanf(portStr, "%d", &port); err != nil {
		return fmt.Errorf("parse port %q: %w", portStr, err)
	}

	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return fmt.Errorf("dial %s: %w", addr, err)
	}
	defer conn.Close()
	_ = conn.SetDeadline(time.Now().Add(timeout))

	proto := protocol.Get(version)
	out := endpoint.New(proto, protocol.Serverbound)

	wbuf := wire.NewWriteBuffer()
	if err := out.Write(wbuf, 0x00, map[string]any{
		"version": uint32(version),
		"addr":    host,
		"port":    port,
		"state":   uint32(1), // 1 = Status
	}); err != nil {
		return fmt.Errorf("encode handshake: %w", err)
	}
	out.SwitchState(protocol.Status)
	if err := out.Write(wbuf, 0x00, map[string]any{}); err != nil {
		return fmt.Errorf("encode status request: %w", err)
	}
	if _, err := conn.Write(wbuf.Bytes()); err != nil {
		return fmt.Errorf("send handshake+request: %w", err)
	}
	wbuf = wire.NewWriteBuffer()

	in := endpoint.New(proto, protocol.Clientbound)
	in.SwitchState(protocol.Status)

	rbuf := wire.NewReadBuffer(nil)
	resp, err := readPacket(conn, rbuf, in)
	if err != nil {
		return fmt.Errorf("read status response: %w", err)
	}
	fmt.Printf("%v\n", resp.Body.Get("response"))

	pingStart := time.Now()
	sendTime := pingStart.UnixMilli()
	if err := out.Write(wbuf, 0x01, map[string]any{"time": uint64(sendTime)}); err != nil {
		return fmt.Errorf("encode ping: %w", err)
	}
	if _, err := conn.Write(wbuf.Bytes()); err != nil {
		return fmt.Errorf("send ping: %w", err)
	}

	pong, err := readPacket(conn, rbuf, in)
	if err != nil {
		return fmt.Errorf("read pong: %w", err)
	}
	_ = pong
	fmt.Printf("round-trip: %s\n", time.Since(pingStart))
	return nil
}

// readPacket reads from conn into rbuf until ep.Read yields a decoded
// packet, since a single TCP Read may return a partial frame.
func readPacket(conn net.Conn, rbuf *wire.ReadBuffer, ep *endpoint.Endpoint) (*endpoint.Packet, error) {
	buf := make([]byte, 4096)
	for {
		if p, err := ep.Read(rbuf); err != nil {
			return nil, err
		} else if p != nil {
			return p, nil
		}
		n, err := conn.Read(buf)
		if err != nil {
			return nil, err
		}
		rbuf.Append(buf[:n])
	}
}
