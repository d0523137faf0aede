package app

// Sink receives notifications from the background loops. Implementations
// must be safe for concurrent use and must not block for long; both loops
// call into the sink outside the state lock.
type Sink interface {
	// StateChanged fires after every successful reconciliation and after
	// every applied config reload.
	StateChanged()
	// WentLive fires when a channel transitions offline to online.
	WentLive(channel string)
	// TitleChanged fires when an already-online channel changes title and
	// has opted into title alerts.
	TitleChanged(channel string)
}

// NopSink discards every event.
type NopSink struct{}

func (NopSink) StateChanged()       {}
func (NopSink) WentLive(string)     {}
func (NopSink) TitleChanged(string) {}
