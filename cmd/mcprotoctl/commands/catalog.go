package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dantte-lp/mcproto/internal/catalog"
	"github.com/dantte-lp/mcproto/internal/protocol"
)

// catalogEntry is the serializable form of one registered packet, used for
// the yaml output format.
type catalogEntry struct {
	ID   uint32 `yaml:"id"`
	Name string `yaml:"name"`
	Desc string `yaml:"desc"`
}

func catalogCmd() *cobra.Command {
	var (
		version   int
		state     string
		direction string
	)

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Dump the registered packet schema table for one (version, state, direction)",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := catalog.Load(); err != nil {
				return fmt.Errorf("load catalog: %w", err)
			}

			st, err := parseState(state)
			if err != nil {
				return err
			}
			dir, err := parseDirection(direction)
			if err != nil {
				return err
			}

			p := protocol.Get(version)
			packets := p.GetPackets(st, dir)

			ids := make([]uint32, 0, len(packets))
			for id := range packets {
				ids = append(ids, id)
			}
			sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

			entries := make([]catalogEntry, 0, len(ids))
			for _, id := range ids {
				s := packets[id]
				entries = append(entries, catalogEntry{ID: id, Name: s.Name(), Desc: s.Desc()})
			}

			if outputFormat == "yaml" {
				out, err := yaml.Marshal(entries)
				if err != nil {
					return fmt.Errorf("marshal catalog: %w", err)
				}
				fmt.Print(string(out))
				return nil
			}

			fmt.Printf("protocol %d (%s) %s/%s: %d packets\n", version, p.Name(), st, dir, len(entries))
			for _, e := range entries {
				fmt.Printf("  0x%02x  %s\n", e.ID, e.Name)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&version, "version", 47, "catalog version")
	cmd.Flags().StringVar(&state, "state", "play", "state: handshake, status, login, play")
	cmd.Flags().StringVar(&direction, "direction", "clientbound", "direction: clientbound, serverbound")

	return cmd
}

func parseState(s string) (protocol.State, error) {
	switch s {
	case "handshake":
		return protocol.Handshake, nil
	case "status":
		return protocol.Status, nil
	case "login":
		return protocol.Login, nil
	case "play":
		return protocol.Play, nil
	default:
		return 0, fmt.Errorf("unknown state %q", s)
	}
}

func parseDirection(d string) (protocol.Direction, error) {
	switch d {
	case "clientbound":
		return protocol.Clientbound, nil
	case "serverbound":
		return protocol.Serverbound, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", d)
	}
}
