package app

import (
	"context"
	"fmt"
	"time"

	"github.com/lurkd/lurk/internal/config"
	"github.com/lurkd/lurk/internal/prefs"
	"github.com/lurkd/lurk/internal/state"
	"github.com/lurkd/lurk/internal/twitch"
	"github.com/lurkd/lurk/internal/ui"
)

// Options configure the lurk application.
type Options struct {
	ConfigPath string
	Overrides  config.Overrides
	PrefsPath  string // empty uses default ~/.config/lurk/prefs.toml
	PollEvery  int    // seconds; zero uses the 60s default
}

// Run boots the tracker and its TUI until the context is cancelled, the
// user quits, or the poller hits a fatal error.
func Run(ctx context.Context, opts Options) error {
	loader := config.Loader{Path: opts.ConfigPath, Overrides: opts.Overrides}

	// The first load is fatal on failure; later re-checks are not.
	initial, err := loader.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	store := state.NewStore(initial)
	client := twitch.NewClient()
	wake := make(chan struct{}, 1)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	tui := ui.New(ui.Options{
		Context:   ctx,
		Store:     store,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	})

	var interval time.Duration
	if opts.PollEvery > 0 {
		interval = time.Duration(opts.PollEvery) * time.Second
	}

	// The UI is the event sink for both loops.
	poller := NewPoller(store, client, tui, wake, interval)
	watcher := NewWatcher(store, loader, tui, wake, 0)

	pollErr := make(chan error, 1)
	go func() {
		err := poller.Run(ctx)
		pollErr <- err
		// A poller return means shutdown or a fatal auth failure; either
		// way the UI should come down too.
		cancel()
	}()
	go watcher.Run(ctx)

	uiErr := tui.Run()
	cancel()

	if err := <-pollErr; err != nil {
		return fmt.Errorf("status poller: %w", err)
	}
	if uiErr != nil {
		return fmt.Errorf("ui: %w", uiErr)
	}
	return nil
}
