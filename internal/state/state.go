package state

// Channel is the last known status of one tracked stream.
//
// Title and Viewers are volatile: they come from live polling, not from the
// configuration, and survive a config reload only when the channel name does.
type Channel struct {
	Name     string
	IsOnline bool
	Title    *string
	Viewers  *uint64
}

// State is the single mutable record shared by the poller, the config
// watcher, and the UI. Access it only through a Store.
type State struct {
	ClientID     string
	ClientSecret string

	// Channels keeps configuration order; it is significant for display.
	// Names are unique within the slice.
	Channels []Channel

	// Player is the configured way to open a stream. SessionPlayer is a
	// session-scoped override: never persisted, never touched by a reload.
	Player        Player
	SessionPlayer *Player

	// NotifyTitleChanged holds channel names that opted into title-change
	// alerts.
	NotifyTitleChanged map[string]struct{}

	// SourcePath is where the configuration document was loaded from.
	SourcePath string
}

// EffectivePlayer returns the session override when one is set, otherwise
// the configured player.
func (s State) EffectivePlayer() Player {
	if s.SessionPlayer != nil {
		return *s.SessionPlayer
	}
	return s.Player
}

// Notifies reports whether the named channel opted into title-change alerts.
func (s State) Notifies(name string) bool {
	_, ok := s.NotifyTitleChanged[name]
	return ok
}

// ChannelNames returns the tracked names in configuration order.
func (s State) ChannelNames() []string {
	if len(s.Channels) == 0 {
		return nil
	}
	names := make([]string, len(s.Channels))
	for i, ch := range s.Channels {
		names[i] = ch.Name
	}
	return names
}

// Clone returns a deep copy sharing no mutable memory with the receiver.
func (s State) Clone() State {
	dup := s
	dup.Channels = cloneChannels(s.Channels)
	if s.SessionPlayer != nil {
		p := *s.SessionPlayer
		dup.SessionPlayer = &p
	}
	if s.NotifyTitleChanged != nil {
		dup.NotifyTitleChanged = make(map[string]struct{}, len(s.NotifyTitleChanged))
		for name := range s.NotifyTitleChanged {
			dup.NotifyTitleChanged[name] = struct{}{}
		}
	}
	return dup
}

func cloneChannels(channels []Channel) []Channel {
	if len(channels) == 0 {
		return nil
	}
	dup := make([]Channel, len(channels))
	for i, ch := range channels {
		dup[i] = ch.clone()
	}
	return dup
}

func (c Channel) clone() Channel {
	dup := c
	if c.Title != nil {
		t := *c.Title
		dup.Title = &t
	}
	if c.Viewers != nil {
		v := *c.Viewers
		dup.Viewers = &v
	}
	return dup
}
