package app

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/lurkd/lurk/internal/state"
	"github.com/lurkd/lurk/internal/twitch"
)

const (
	defaultPollInterval = 60 * time.Second
	maxFetchAttempts    = 3
	retryDelay          = time.Second

	// noTitle stands in for an empty or missing stream title.
	noTitle = "(no title)"
)

// Poller owns the bearer token and drives the status loop: authenticate
// once, then fetch live status for the tracked set, reconcile it into the
// store, and wait until the interval elapses or the watcher wakes it.
type Poller struct {
	store    *state.Store
	client   twitch.StreamFetcher
	sink     Sink
	wake     <-chan struct{}
	interval time.Duration
}

// NewPoller builds a Poller. interval <= 0 selects the 60s default.
func NewPoller(store *state.Store, client twitch.StreamFetcher, sink Sink, wake <-chan struct{}, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	if sink == nil {
		sink = NopSink{}
	}
	return &Poller{
		store:    store,
		client:   client,
		sink:     sink,
		wake:     wake,
		interval: interval,
	}
}

// Run blocks until ctx is cancelled or authentication fails. A credential
// rejection (or any other auth failure) is returned and terminates the
// poller; transient fetch failures only ever skip a cycle.
func (p *Poller) Run(ctx context.Context) error {
	snap := p.store.Snapshot()
	token, err := p.client.Authenticate(ctx, snap.ClientID, snap.ClientSecret)
	if err != nil {
		return fmt.Errorf("authenticate: %w", err)
	}

	timer := time.NewTimer(p.interval)
	defer timer.Stop()

	for {
		p.poll(ctx, token)

		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(p.interval)

		select {
		case <-ctx.Done():
			return nil
		case <-p.wake:
			// Config change; reconcile against the new channel set now.
		case <-timer.C:
		}
	}
}

// poll runs one fetch-and-reconcile cycle. Failures are logged and the
// cycle is skipped; the loop itself never stops for them.
func (p *Poller) poll(ctx context.Context, token string) {
	snap := p.store.Snapshot()
	if len(snap.Channels) == 0 {
		// An unfiltered streams query would return the platform's top
		// streams, so don't issue one.
		return
	}

	streams, err := p.fetchWithRetry(ctx, token, snap.ClientID, snap.ChannelNames())
	if err != nil {
		log.Printf("status poll failed: %v", err)
		return
	}

	var events []channelEvent
	p.store.Mutate(func(st *state.State) {
		events = reconcile(st, streams)
	})

	// Events go out after the lock is released.
	for _, ev := range events {
		switch ev.kind {
		case eventWentLive:
			p.sink.WentLive(ev.channel)
		case eventTitleChanged:
			p.sink.TitleChanged(ev.channel)
		}
	}
	p.sink.StateChanged()
}

// fetchWithRetry issues the status query, retrying transient failures a
// bounded number of times with a short fixed delay.
func (p *Poller) fetchWithRetry(ctx context.Context, token, clientID string, logins []string) ([]twitch.Stream, error) {
	var lastErr error
	for attempt := 1; attempt <= maxFetchAttempts; attempt++ {
		streams, err := p.client.FetchStreams(ctx, token, clientID, logins)
		if err == nil {
			return streams, nil
		}
		lastErr = err
		if !twitch.IsTransient(err) {
			return nil, err
		}
		if attempt == maxFetchAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryDelay):
		}
	}
	return nil, fmt.Errorf("after %d attempts: %w", maxFetchAttempts, lastErr)
}

type eventKind int

const (
	eventWentLive eventKind = iota
	eventTitleChanged
)

type channelEvent struct {
	kind    eventKind
	channel string
}

// reconcile updates tracked channels' volatile fields from a status
// response and reports the notification-worthy transitions. Names are
// matched case-insensitively against the response's user_login entries;
// stale entries for channels no longer tracked are ignored.
//
// Channels absent from the response go offline but keep their last observed
// title and viewer count.
func reconcile(st *state.State, streams []twitch.Stream) []channelEvent {
	byLogin := make(map[string]twitch.Stream, len(streams))
	for _, s := range streams {
		byLogin[strings.ToLower(s.UserLogin)] = s
	}

	var events []channelEvent
	for i := range st.Channels {
		ch := &st.Channels[i]

		live, ok := byLogin[strings.ToLower(ch.Name)]
		if !ok {
			ch.IsOnline = false
			continue
		}

		title := strings.TrimSpace(live.Title)
		if title == "" {
			title = noTitle
		}

		if ch.IsOnline {
			prev := ""
			if ch.Title != nil {
				prev = *ch.Title
			}
			if prev != title && st.Notifies(ch.Name) {
				events = append(events, channelEvent{kind: eventTitleChanged, channel: ch.Name})
			}
		} else {
			events = append(events, channelEvent{kind: eventWentLive, channel: ch.Name})
		}

		viewers := live.ViewerCount
		ch.Title = &title
		ch.Viewers = &viewers
		ch.IsOnline = true
	}
	return events
}
