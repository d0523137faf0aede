package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/lurkd/lurk/internal/app"
	"github.com/lurkd/lurk/internal/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override channels file path (optional)")
	clientID := flag.String("client", "", "override the Twitch client id (optional)")
	clientSecret := flag.String("secret", "", "override the Twitch client secret (optional)")
	playerName := flag.String("player", "", "override the player: browser, mpv, or streamlink (optional)")
	channels := flag.String("channels", "", "comma-separated channel list; replaces the file's list (optional)")
	notify := flag.String("notify", "", "comma-separated channels to alert on title change; replaces the file's list (optional)")
	pollSeconds := flag.Int("poll", 0, "status poll interval in seconds (optional, defaults to 60s)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		Overrides: config.Overrides{
			ClientID:     *clientID,
			ClientSecret: *clientSecret,
			Player:       *playerName,
			Channels:     splitList(*channels),
			Notify:       splitList(*notify),
		},
	}
	if poll := *pollSeconds; poll > 0 {
		opts.PollEvery = poll
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "lurk: %v\n", err)
		return 1
	}
	return 0
}

// splitList turns a comma-separated flag value into a list; an unset flag
// stays nil so the document's list is kept.
func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
