package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lurkd/lurk/internal/config"
	"github.com/lurkd/lurk/internal/state"
	"github.com/lurkd/lurk/internal/twitch"
)

func writeDoc(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func watcherFixture(t *testing.T, body string) (*Watcher, *state.Store, *recordingSink, chan struct{}, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "channels.json")
	writeDoc(t, path, body)

	loader := config.Loader{Path: path}
	initial, err := loader.Load()
	if err != nil {
		t.Fatalf("initial load: %v", err)
	}

	store := state.NewStore(initial)
	sink := &recordingSink{}
	wake := make(chan struct{}, 1)
	return NewWatcher(store, loader, sink, wake, 0), store, sink, wake, path
}

const baseDoc = `{
	"client": "cid",
	"secret": "sec",
	"player": "mpv",
	"channels": ["alice", "carol"],
	"notify_title_changed": ["alice"]
}`

func TestWatcher_NoChangeNoWake(t *testing.T) {
	w, _, sink, wake, _ := watcherFixture(t, baseDoc)

	w.check()

	changed, _, _ := sink.counts()
	if changed != 0 {
		t.Fatalf("StateChanged count = %d, want 0 for identical document", changed)
	}
	select {
	case <-wake:
		t.Fatal("wake sent without a change")
	default:
	}
}

func TestWatcher_ReloadMergesAndWakes(t *testing.T) {
	w, store, sink, wake, path := watcherFixture(t, baseDoc)

	// Simulate live data accumulated by the poller.
	store.Mutate(func(st *state.State) {
		reconcile(st, []twitch.Stream{{UserLogin: "alice", Title: "X", ViewerCount: 10}})
	})

	// Drop carol, add dave.
	writeDoc(t, path, `{
		"client": "cid",
		"secret": "sec",
		"player": "mpv",
		"channels": ["alice", "dave"],
		"notify_title_changed": ["alice"]
	}`)

	w.check()

	snap := store.Snapshot()
	names := snap.ChannelNames()
	if len(names) != 2 || names[0] != "alice" || names[1] != "dave" {
		t.Fatalf("channels = %v, want [alice dave]", names)
	}
	alice := snap.Channels[0]
	if !alice.IsOnline || alice.Title == nil || *alice.Title != "X" || alice.Viewers == nil || *alice.Viewers != 10 {
		t.Fatalf("alice = %+v, want live data preserved across reload", alice)
	}
	dave := snap.Channels[1]
	if dave.IsOnline || dave.Title != nil || dave.Viewers != nil {
		t.Fatalf("dave = %+v, want fresh defaults", dave)
	}

	changed, _, _ := sink.counts()
	if changed != 1 {
		t.Fatalf("StateChanged count = %d, want 1", changed)
	}
	select {
	case <-wake:
	default:
		t.Fatal("watcher did not wake the poller after a merge")
	}
}

func TestWatcher_UnreadableDocumentLeavesStateIntact(t *testing.T) {
	w, store, sink, wake, path := watcherFixture(t, baseDoc)
	before := store.Snapshot()

	writeDoc(t, path, `{"channels": [`)
	w.check()

	after := store.Snapshot()
	if !state.Equal(before, after) {
		t.Fatalf("state disturbed by unparsable document: %+v", after)
	}
	changed, _, _ := sink.counts()
	if changed != 0 {
		t.Fatalf("StateChanged count = %d, want 0", changed)
	}
	select {
	case <-wake:
		t.Fatal("wake sent for a failed re-check")
	default:
	}

	// Once the document is valid again the pending change applies.
	writeDoc(t, path, `{"client": "cid", "secret": "sec", "player": "mpv", "channels": ["alice"]}`)
	w.check()
	if got := store.Snapshot().ChannelNames(); len(got) != 1 || got[0] != "alice" {
		t.Fatalf("channels = %v, want [alice] after recovery", got)
	}
}

func TestWatcher_WakeCoalesces(t *testing.T) {
	w, _, _, wake, path := watcherFixture(t, baseDoc)

	writeDoc(t, path, `{"client": "cid", "secret": "sec", "player": "mpv", "channels": ["alice"]}`)
	w.check()
	writeDoc(t, path, `{"client": "cid", "secret": "sec", "player": "mpv", "channels": ["bob"]}`)
	w.check() // slot already full; must not block

	if len(wake) != 1 {
		t.Fatalf("wake slot = %d pending, want 1 (coalesced)", len(wake))
	}
}

func TestWatcher_CredentialChangeAloneTriggersReload(t *testing.T) {
	w, store, sink, _, path := watcherFixture(t, baseDoc)

	writeDoc(t, path, `{
		"client": "cid",
		"secret": "rotated",
		"player": "mpv",
		"channels": ["alice", "carol"],
		"notify_title_changed": ["alice"]
	}`)
	w.check()

	if got := store.Snapshot().ClientSecret; got != "rotated" {
		t.Fatalf("ClientSecret = %q, want rotated", got)
	}
	changed, _, _ := sink.counts()
	if changed != 1 {
		t.Fatalf("StateChanged count = %d, want 1", changed)
	}
}

func TestWatcher_SessionPlayerSurvivesReload(t *testing.T) {
	w, store, _, _, path := watcherFixture(t, baseDoc)

	store.Mutate(func(st *state.State) {
		p := state.PlayerStreamlink
		st.SessionPlayer = &p
	})

	writeDoc(t, path, `{
		"client": "cid",
		"secret": "sec",
		"player": "browser",
		"channels": ["alice", "carol"],
		"notify_title_changed": ["alice"]
	}`)
	w.check()

	snap := store.Snapshot()
	if snap.Player != state.PlayerBrowser {
		t.Fatalf("Player = %v, want browser from document", snap.Player)
	}
	if snap.SessionPlayer == nil || *snap.SessionPlayer != state.PlayerStreamlink {
		t.Fatalf("SessionPlayer = %v, want streamlink preserved", snap.SessionPlayer)
	}
}
