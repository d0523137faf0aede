package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lurkd/lurk/internal/state"
)

const defaultConfigPath = "~/.config/lurk/channels.json"

// Overrides carries command-line values that take precedence over the
// document field-by-field. Channel and notify lists are wholesale-replaced,
// never merged.
type Overrides struct {
	ClientID     string
	ClientSecret string
	Player       string
	Channels     []string
	Notify       []string
}

// Loader re-reads the same document with the same overrides applied, so a
// reload observes exactly what startup observed plus file edits.
type Loader struct {
	Path      string
	Overrides Overrides
}

// Load resolves and parses the configuration document into a fresh State.
// Callers decide whether a failure is fatal (first load) or tolerated
// (periodic re-check).
func (l Loader) Load() (state.State, error) {
	resolved, err := resolvePath(l.Path)
	if err != nil {
		return state.State{}, err
	}

	bytes, err := os.ReadFile(resolved)
	if err != nil {
		return state.State{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Client             string   `json:"client"`
		Secret             string   `json:"secret"`
		Player             string   `json:"player"`
		Channels           []string `json:"channels"`
		NotifyTitleChanged []string `json:"notify_title_changed"`
	}
	if err := json.Unmarshal(bytes, &raw); err != nil {
		return state.State{}, fmt.Errorf("parse config: %w", err)
	}

	if l.Overrides.ClientID != "" {
		raw.Client = l.Overrides.ClientID
	}
	if l.Overrides.ClientSecret != "" {
		raw.Secret = l.Overrides.ClientSecret
	}
	if l.Overrides.Player != "" {
		raw.Player = l.Overrides.Player
	}
	if l.Overrides.Channels != nil {
		raw.Channels = l.Overrides.Channels
	}
	if l.Overrides.Notify != nil {
		raw.NotifyTitleChanged = l.Overrides.Notify
	}

	player := state.PlayerBrowser
	if strings.TrimSpace(raw.Player) != "" {
		player, err = state.ParsePlayer(raw.Player)
		if err != nil {
			return state.State{}, fmt.Errorf("parse config: %w", err)
		}
	}

	st := state.State{
		ClientID:           strings.TrimSpace(raw.Client),
		ClientSecret:       strings.TrimSpace(raw.Secret),
		Channels:           buildChannels(raw.Channels),
		Player:             player,
		NotifyTitleChanged: buildNotifySet(raw.NotifyTitleChanged),
		SourcePath:         resolved,
	}
	return st, nil
}

// buildChannels keeps document order and drops duplicate names; the first
// occurrence wins.
func buildChannels(names []string) []state.Channel {
	var channels []state.Channel
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		channels = append(channels, state.Channel{Name: name})
	}
	return channels
}

func buildNotifySet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		set[name] = struct{}{}
	}
	return set
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
