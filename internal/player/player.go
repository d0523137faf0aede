// Package player launches a channel's stream in the selected player and
// opens files with the platform opener. It is UI-triggered glue with no
// knowledge of the tracking loops.
package player

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/lurkd/lurk/internal/state"
)

// Command returns the argv used to open the named channel with the given
// player. Split out from Open so it can be tested without spawning
// anything.
func Command(p state.Player, channel string) []string {
	switch p {
	case state.PlayerMPV:
		return []string{"mpv", "https://twitch.tv/" + channel, "--ytdl-format=best"}
	case state.PlayerStreamlink:
		return []string{"streamlink", "twitch.tv/" + channel, "best"}
	default:
		return openerArgs("https://twitch.tv/" + channel)
	}
}

// Open launches the stream detached; the player process outlives the call.
func Open(p state.Player, channel string) error {
	argv := Command(p, channel)
	cmd := exec.Command(argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open %s with %s: %w", channel, p, err)
	}
	// Reap the child in the background so it doesn't linger as a zombie.
	go func() { _ = cmd.Wait() }()
	return nil
}

// OpenFile hands a path to the platform opener, e.g. to edit the channels
// document in whatever the user associates with .json.
func OpenFile(path string) error {
	argv := openerArgs(path)
	cmd := exec.Command(argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

func openerArgs(target string) []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{"open", target}
	case "windows":
		return []string{"cmd", "/c", "start", "", target}
	default:
		return []string{"xdg-open", target}
	}
}
