package state

import (
	"fmt"
	"strings"
)

// Player selects how a stream is opened.
type Player int

const (
	PlayerBrowser Player = iota
	PlayerMPV
	PlayerStreamlink
)

// Players returns every player in presentation order.
func Players() []Player {
	return []Player{PlayerBrowser, PlayerMPV, PlayerStreamlink}
}

// ParsePlayer converts a free-form config/flag value into a Player.
func ParsePlayer(value string) (Player, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "browser":
		return PlayerBrowser, nil
	case "mpv":
		return PlayerMPV, nil
	case "streamlink":
		return PlayerStreamlink, nil
	default:
		return PlayerBrowser, fmt.Errorf("unknown player %q (expected browser, mpv, or streamlink)", value)
	}
}

func (p Player) String() string {
	switch p {
	case PlayerBrowser:
		return "browser"
	case PlayerMPV:
		return "mpv"
	case PlayerStreamlink:
		return "streamlink"
	default:
		return fmt.Sprintf("player(%d)", int(p))
	}
}
