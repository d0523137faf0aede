package player

import (
	"runtime"
	"strings"
	"testing"

	"github.com/lurkd/lurk/internal/state"
)

func TestCommand(t *testing.T) {
	tests := []struct {
		player state.Player
		want   []string
	}{
		{state.PlayerMPV, []string{"mpv", "https://twitch.tv/alice", "--ytdl-format=best"}},
		{state.PlayerStreamlink, []string{"streamlink", "twitch.tv/alice", "best"}},
	}

	for _, tt := range tests {
		t.Run(tt.player.String(), func(t *testing.T) {
			got := Command(tt.player, "alice")
			if strings.Join(got, " ") != strings.Join(tt.want, " ") {
				t.Fatalf("Command = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCommand_BrowserUsesPlatformOpener(t *testing.T) {
	got := Command(state.PlayerBrowser, "alice")
	if len(got) == 0 {
		t.Fatal("Command returned empty argv")
	}
	joined := strings.Join(got, " ")
	if !strings.Contains(joined, "https://twitch.tv/alice") {
		t.Fatalf("Command = %v, want it to target the channel URL", got)
	}
	switch runtime.GOOS {
	case "darwin":
		if got[0] != "open" {
			t.Fatalf("opener = %q, want open", got[0])
		}
	case "windows":
		if got[0] != "cmd" {
			t.Fatalf("opener = %q, want cmd", got[0])
		}
	default:
		if got[0] != "xdg-open" {
			t.Fatalf("opener = %q, want xdg-open", got[0])
		}
	}
}
