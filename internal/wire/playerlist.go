package wire

import "fmt"

// PlayerListAction identifies which variant of PlayerListEntry an action
// union's entries carry (spec C2 "Player-list actions").
type PlayerListAction uint32

const (
	PlayerListAddPlayer PlayerListAction = iota
	PlayerListUpdateGameMode
	PlayerListUpdateLatency
	PlayerListUpdateDisplayName
	PlayerListRemovePlayer
)

// ErrUnknownPlayerListAction indicates an action id the union does not
// define (spec §7 ProtocolViolation: action >= 5 is fatal).
var ErrUnknownPlayerListAction = fmt.Errorf("wire: unknown player-list action")

// PlayerListProperty is one property entry in an AddPlayer payload
// (distinct from the entity-attribute Property in property.go: this one
// carries an optional signature instead of modifiers).
type PlayerListProperty struct {
	Name      string
	Value     string
	Signature *string
}

// PlayerListEntry is one decoded entry in a PlayerListItem packet. Only the
// fields relevant to Action are populated.
type PlayerListEntry struct {
	UUID [2]uint64

	// AddPlayer
	Name       string
	Properties []PlayerListProperty
	GameMode   uint32
	Ping       uint32
	HasDisplay bool
	Display    string

	// UpdateGameMode reuses GameMode; UpdateLatency reuses Ping;
	// UpdateDisplayName reuses HasDisplay/Display. RemovePlayer has no
	// additional payload.
}

// ReadPlayerListAction reads a PlayerListItem packet body: varint action,
// varint count, then count entries whose shape depends on action.
func ReadPlayerListAction(b *ReadBuffer) (PlayerListAction, []PlayerListEntry, error) {
	actionVal, err := ReadVarint(b)
	if err != nil {
		return 0, nil, err
	}
	action := PlayerListAction(actionVal)
	if action > PlayerListRemovePlayer {
		return 0, nil, fmt.Errorf("%w: %d", ErrUnknownPlayerListAction, actionVal)
	}
	count, err := ReadVarint(b)
	if err != nil {
		return 0, nil, err
	}
	out := make([]PlayerListEntry, count)
	for i := range out {
		uuid, err := ReadUUID(b)
		if err != nil {
			return 0, nil, err
		}
		entry := PlayerListEntry{UUID: uuid}
		switch action {
		case PlayerListAddPlayer:
			entry.Name, err = ReadString(b)
			if err != nil {
				return 0, nil, err
			}
			propCount, err := ReadVarint(b)
			if err != nil {
				return 0, nil, err
			}
			entry.Properties = make([]PlayerListProperty, propCount)
			for j := range entry.Properties {
				p, err := readPlayerListProperty(b)
				if err != nil {
					return 0, nil, err
				}
				entry.Properties[j] = p
			}
			entry.GameMode, err = ReadVarint(b)
			if err != nil {
				return 0, nil, err
			}
			entry.Ping, err = ReadVarint(b)
			if err != nil {
				return 0, nil, err
			}
			entry.HasDisplay, err = ReadBool(b)
			if err != nil {
				return 0, nil, err
			}
			if entry.HasDisplay {
				entry.Display, err = ReadString(b)
				if err != nil {
					return 0, nil, err
				}
			}
		case PlayerListUpdateGameMode:
			entry.GameMode, err = ReadVarint(b)
			if err != nil {
				return 0, nil, err
			}
		case PlayerListUpdateLatency:
			entry.Ping, err = ReadVarint(b)
			if err != nil {
				return 0, nil, err
			}
		case PlayerListUpdateDisplayName:
			entry.HasDisplay, err = ReadBool(b)
			if err != nil {
				return 0, nil, err
			}
			if entry.HasDisplay {
				entry.Display, err = ReadString(b)
				if err != nil {
					return 0, nil, err
				}
			}
		case PlayerListRemovePlayer:
			// no additional payload
		}
		out[i] = entry
	}
	return action, out, nil
}

// WritePlayerListAction writes a PlayerListItem packet body.
func WritePlayerListAction(w *WriteBuffer, action PlayerListAction, entries []PlayerListEntry) error {
	if action > PlayerListRemovePlayer {
		return fmt.Errorf("%w: %d", ErrUnknownPlayerListAction, action)
	}
	if err := WriteVarint(w, uint32(action)); err != nil {
		return err
	}
	if err := WriteVarint(w, uint32(len(entries))); err != nil {
		return err
	}
	for _, entry := range entries {
		if err := WriteUUID(w, entry.UUID); err != nil {
			return err
		}
		switch action {
		case PlayerListAddPlayer:
			if err := WriteString(w, entry.Name); err != nil {
				return err
			}
			if err := WriteVarint(w, uint32(len(entry.Properties))); err != nil {
				return err
			}
			for _, p := range entry.Properties {
				if err := writePlayerListProperty(w, p); err != nil {
					return err
				}
			}
			if err := WriteVarint(w, entry.GameMode); err != nil {
				return err
			}
			if err := WriteVarint(w, entry.Ping); err != nil {
				return err
			}
			if err := WriteBool(w, entry.HasDisplay); err != nil {
				return err
			}
			if entry.HasDisplay {
				if err := WriteString(w, entry.Display); err != nil {
					return err
				}
			}
		case PlayerListUpdateGameMode:
			if err := WriteVarint(w, entry.GameMode); err != nil {
				return err
			}
		case PlayerListUpdateLatency:
			if err := WriteVarint(w, entry.Ping); err != nil {
				return err
			}
		case PlayerListUpdateDisplayName:
			if err := WriteBool(w, entry.HasDisplay); err != nil {
				return err
			}
			if entry.HasDisplay {
				if err := WriteString(w, entry.Display); err != nil {
					return err
				}
			}
		case PlayerListRemovePlayer:
			// no additional payload
		}
	}
	return nil
}

func readPlayerListProperty(b *ReadBuffer) (PlayerListProperty, error) {
	name, err := ReadString(b)
	if err != nil {
		return PlayerListProperty{}, err
	}
	value, err := ReadString(b)
	if err != nil {
		return PlayerListProperty{}, err
	}
	isSigned, err := ReadBool(b)
	if err != nil {
		return PlayerListProperty{}, err
	}
	p := PlayerListProperty{Name: name, Value: value}
	if isSigned {
		sig, err := ReadString(b)
		if err != nil {
			return PlayerListProperty{}, err
		}
		p.Signature = &sig
	}
	return p, nil
}

func writePlayerListProperty(w *WriteBuffer, p PlayerListProperty) error {
	if err := WriteString(w, p.Name); err != nil {
		return err
	}
	if err := WriteString(w, p.Value); err != nil {
		return err
	}
	if err := WriteBool(w, p.Signature != nil); err != nil {
		return err
	}
	if p.Signature != nil {
		return WriteString(w, *p.Signature)
	}
	return nil
}
