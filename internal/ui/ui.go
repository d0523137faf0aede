package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lurkd/lurk/internal/state"
)

const appVersion = "1.0.3"

// Options configure the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	ThemeName string
	PrefsPath string
}

// UI owns the Bubble Tea program and doubles as the event sink for the
// background loops: loop notifications are forwarded into the program as
// messages.
type UI struct {
	ctx     context.Context
	program *tea.Program
}

// New builds the UI around a fresh model. Run must be called to start it.
func New(opts Options) *UI {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	m := newModel(opts)
	return &UI{
		ctx:     ctx,
		program: tea.NewProgram(m),
	}
}

// Run blocks until the user quits or the context is cancelled.
func (u *UI) Run() error {
	go func() {
		<-u.ctx.Done()
		u.program.Quit()
	}()
	_, err := u.program.Run()
	return err
}

// StateChanged implements the loops' event sink.
func (u *UI) StateChanged() { u.program.Send(stateChangedMsg{}) }

// WentLive implements the loops' event sink.
func (u *UI) WentLive(channel string) { u.program.Send(wentLiveMsg{channel: channel}) }

// TitleChanged implements the loops' event sink.
func (u *UI) TitleChanged(channel string) { u.program.Send(titleChangedMsg{channel: channel}) }

// Messages delivered to the model.
type (
	stateChangedMsg  struct{}
	wentLiveMsg      struct{ channel string }
	titleChangedMsg  struct{ channel string }
	tickMsg          time.Time
	noticeExpiredMsg struct{ seq int }
	launchErrMsg     struct{ err error }
)

func tickCmd(every time.Duration) tea.Cmd {
	return tea.Tick(every, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
