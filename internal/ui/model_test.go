package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lurkd/lurk/internal/state"
)

func strPtr(s string) *string { return &s }
func u64Ptr(v uint64) *uint64 { return &v }

func uiState() state.State {
	return state.State{
		Channels: []state.Channel{
			{Name: "alice", IsOnline: true, Title: strPtr("Chatting"), Viewers: u64Ptr(120)},
			{Name: "bob"},
			{Name: "carol"},
		},
		Player:     state.PlayerMPV,
		SourcePath: "/tmp/channels.json",
	}
}

func uiModel(t *testing.T) (Model, *state.Store) {
	t.Helper()
	store := state.NewStore(uiState())
	m := newModel(Options{Store: store, PrefsPath: t.TempDir() + "/prefs.toml"})
	return m, store
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModel_NavigationClamps(t *testing.T) {
	m, _ := uiModel(t)

	// Moving up at the top stays at the top.
	next, _ := m.Update(keyPress('k'))
	m = next.(Model)
	if m.selected != 0 {
		t.Fatalf("selected = %d, want 0", m.selected)
	}

	for i := 0; i < 5; i++ {
		next, _ = m.Update(keyPress('j'))
		m = next.(Model)
	}
	if m.selected != 2 {
		t.Fatalf("selected = %d, want clamped to 2", m.selected)
	}
}

func TestModel_RefreshClampsSelectionWhenChannelsShrink(t *testing.T) {
	m, store := uiModel(t)
	m.selected = 2

	store.Mutate(func(st *state.State) {
		st.Channels = st.Channels[:1]
	})

	next, _ := m.Update(stateChangedMsg{})
	m = next.(Model)
	if m.selected != 0 {
		t.Fatalf("selected = %d, want 0 after channel list shrank", m.selected)
	}
}

func TestModel_CyclePlayerSetsSessionOverride(t *testing.T) {
	m, store := uiModel(t)

	next, _ := m.Update(keyPress('p'))
	m = next.(Model)

	snap := store.Snapshot()
	if snap.SessionPlayer == nil {
		t.Fatal("session player not set")
	}
	if *snap.SessionPlayer != state.PlayerStreamlink {
		t.Fatalf("session player = %v, want streamlink (next after mpv)", *snap.SessionPlayer)
	}
	if snap.Player != state.PlayerMPV {
		t.Fatalf("configured player = %v, want mpv untouched", snap.Player)
	}
	if m.notice == "" {
		t.Fatal("expected a notice about the session player")
	}
}

func TestModel_NoticeExpiryIgnoresStaleSeq(t *testing.T) {
	m, _ := uiModel(t)

	next, _ := m.showNotice("first")
	m = next.(Model)
	staleSeq := m.noticeSeq
	next, _ = m.showNotice("second")
	m = next.(Model)

	next, _ = m.Update(noticeExpiredMsg{seq: staleSeq})
	m = next.(Model)
	if m.notice != "second" {
		t.Fatalf("notice = %q, want second kept despite stale expiry", m.notice)
	}

	next, _ = m.Update(noticeExpiredMsg{seq: m.noticeSeq})
	m = next.(Model)
	if m.notice != "" {
		t.Fatalf("notice = %q, want cleared", m.notice)
	}
}

func TestModel_WentLiveShowsNotice(t *testing.T) {
	m, _ := uiModel(t)

	next, _ := m.Update(wentLiveMsg{channel: "alice"})
	m = next.(Model)
	if !strings.Contains(m.notice, "alice is live!") {
		t.Fatalf("notice = %q, want went-live text", m.notice)
	}
	if !strings.Contains(m.notice, "120 viewers") {
		t.Fatalf("notice = %q, want viewer count", m.notice)
	}
}

func TestModel_OpenIgnoresOfflineChannel(t *testing.T) {
	m, _ := uiModel(t)
	m.selected = 1 // bob, offline

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Fatal("opening an offline channel should be a no-op")
	}
}

func TestView_MarksOnlineAndOffline(t *testing.T) {
	m, _ := uiModel(t)
	out := m.View()

	if !strings.Contains(out, "alice") || !strings.Contains(out, "Chatting") {
		t.Fatalf("view missing live channel data:\n%s", out)
	}
	if !strings.Contains(out, "120 viewers") {
		t.Fatalf("view missing viewer count:\n%s", out)
	}
	if !strings.Contains(out, "bob") {
		t.Fatalf("view missing offline channel:\n%s", out)
	}
	if !strings.Contains(out, "lurk "+appVersion) {
		t.Fatalf("view missing version header:\n%s", out)
	}
}

func TestView_EmptyChannelList(t *testing.T) {
	m := newModel(Options{Store: state.NewStore(state.State{})})
	out := m.View()
	if !strings.Contains(out, "No channels configured") {
		t.Fatalf("view missing empty-state hint:\n%s", out)
	}
}

func TestGetTheme(t *testing.T) {
	if got := GetTheme("Slate"); got.Name != "Slate" {
		t.Fatalf("GetTheme(Slate) = %q", got.Name)
	}
	if got := GetTheme("nope"); got.Name != "Dracula" {
		t.Fatalf("GetTheme fallback = %q, want Dracula", got.Name)
	}
	if got := NextTheme("Dracula"); got.Name != "Slate" {
		t.Fatalf("NextTheme(Dracula) = %q, want Slate", got.Name)
	}
	if got := NextTheme("Slate"); got.Name != "Dracula" {
		t.Fatalf("NextTheme(Slate) = %q, want wraparound to Dracula", got.Name)
	}
}

func TestNextPlayer_Cycles(t *testing.T) {
	seen := map[state.Player]bool{}
	p := state.PlayerBrowser
	for i := 0; i < len(state.Players()); i++ {
		seen[p] = true
		p = nextPlayer(p)
	}
	if p != state.PlayerBrowser || len(seen) != len(state.Players()) {
		t.Fatalf("player cycle broken: seen=%v back=%v", seen, p)
	}
}
