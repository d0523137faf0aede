package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lurkd/lurk/internal/player"
	"github.com/lurkd/lurk/internal/prefs"
	"github.com/lurkd/lurk/internal/state"
)

const (
	refreshEvery   = time.Second
	noticeLifetime = 5 * time.Second
)

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx       context.Context
	store     *state.Store
	prefsPath string

	keys   keyMap
	theme  Theme
	styles Styles

	snapshot state.State
	selected int
	width    int
	height   int

	// Transient notice line; seq guards against a stale expiry message
	// clearing a newer notice.
	notice    string
	noticeSeq int
}

func newModel(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	theme := GetTheme(opts.ThemeName)

	var snapshot state.State
	if opts.Store != nil {
		snapshot = opts.Store.Snapshot()
	}

	return Model{
		ctx:       ctx,
		store:     opts.Store,
		prefsPath: opts.PrefsPath,
		keys:      DefaultKeyMap(),
		theme:     theme,
		styles:    theme.Styles(),
		snapshot:  snapshot,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.EnterAltScreen, tickCmd(refreshEvery))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		m.refresh()
		return m, tickCmd(refreshEvery)

	case stateChangedMsg:
		m.refresh()
		return m, nil

	case wentLiveMsg:
		m.refresh()
		return m.showNotice(fmt.Sprintf("%s is live!%s", msg.channel, m.viewerSuffix(msg.channel)))

	case titleChangedMsg:
		m.refresh()
		return m.showNotice(fmt.Sprintf("%s changed title: %s", msg.channel, m.titleOf(msg.channel)))

	case launchErrMsg:
		return m.showNotice(msg.err.Error())

	case noticeExpiredMsg:
		if msg.seq == m.noticeSeq {
			m.notice = ""
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.snapshot.Channels)-1 {
			m.selected++
		}
		return m, nil

	case key.Matches(msg, m.keys.Open):
		if m.selected >= len(m.snapshot.Channels) {
			return m, nil
		}
		ch := m.snapshot.Channels[m.selected]
		if !ch.IsOnline {
			return m, nil
		}
		return m, launchCmd(m.snapshot.EffectivePlayer(), ch.Name)

	case key.Matches(msg, m.keys.CyclePlayer):
		next := nextPlayer(m.snapshot.EffectivePlayer())
		if m.store != nil {
			m.store.Mutate(func(st *state.State) {
				st.SessionPlayer = &next
			})
		}
		m.refresh()
		return m.showNotice("player for this session: " + next.String())

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = NextTheme(m.theme.Name)
		m.styles = m.theme.Styles()
		_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		return m, nil

	case key.Matches(msg, m.keys.OpenConfig):
		path := m.snapshot.SourcePath
		return m, func() tea.Msg {
			if err := player.OpenFile(path); err != nil {
				return launchErrMsg{err: err}
			}
			return nil
		}
	}
	return m, nil
}

func (m *Model) refresh() {
	if m.store == nil {
		return
	}
	m.snapshot = m.store.Snapshot()
	if m.selected >= len(m.snapshot.Channels) {
		m.selected = len(m.snapshot.Channels) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m Model) showNotice(text string) (tea.Model, tea.Cmd) {
	m.notice = text
	m.noticeSeq++
	seq := m.noticeSeq
	return m, tea.Tick(noticeLifetime, func(time.Time) tea.Msg {
		return noticeExpiredMsg{seq: seq}
	})
}

func (m Model) viewerSuffix(channel string) string {
	for _, ch := range m.snapshot.Channels {
		if strings.EqualFold(ch.Name, channel) && ch.Viewers != nil {
			return fmt.Sprintf(" (%d viewers)", *ch.Viewers)
		}
	}
	return ""
}

func (m Model) titleOf(channel string) string {
	for _, ch := range m.snapshot.Channels {
		if strings.EqualFold(ch.Name, channel) && ch.Title != nil {
			return *ch.Title
		}
	}
	return ""
}

func nextPlayer(current state.Player) state.Player {
	players := state.Players()
	for i, p := range players {
		if p == current {
			return players[(i+1)%len(players)]
		}
	}
	return players[0]
}

func launchCmd(p state.Player, channel string) tea.Cmd {
	return func() tea.Msg {
		if err := player.Open(p, channel); err != nil {
			return launchErrMsg{err: err}
		}
		return nil
	}
}
