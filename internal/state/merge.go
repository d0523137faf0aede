package state

// Equal reports whether two states are structurally identical: credentials,
// configured player, channel-name sequence (order-sensitive), and the
// title-notification set. Volatile per-channel fields and the session player
// override are excluded, so a state freshly loaded from the same document as
// a live one compares equal.
//
// Channel names compare exactly here; case-insensitive matching is reserved
// for API reconciliation, where usernames come back from the platform.
func Equal(a, b State) bool {
	if a.ClientID != b.ClientID || a.ClientSecret != b.ClientSecret {
		return false
	}
	if a.Player != b.Player {
		return false
	}
	if len(a.Channels) != len(b.Channels) {
		return false
	}
	for i := range a.Channels {
		if a.Channels[i].Name != b.Channels[i].Name {
			return false
		}
	}
	if len(a.NotifyTitleChanged) != len(b.NotifyTitleChanged) {
		return false
	}
	for name := range a.NotifyTitleChanged {
		if _, ok := b.NotifyTitleChanged[name]; !ok {
			return false
		}
	}
	return true
}

// Merge folds a freshly loaded configuration into live state. Structural
// fields come from next; volatile fields are carried over from old for every
// channel whose name survives the reload (exact match). Channels absent from
// next are dropped, channels new to next keep their zero defaults, and the
// session player override is preserved as-is.
//
// Merge is pure and total: it performs no I/O, takes no locks, and cannot
// fail given two well-formed states.
func Merge(old, next State) State {
	merged := next.Clone()

	byName := make(map[string]Channel, len(old.Channels))
	for _, ch := range old.Channels {
		byName[ch.Name] = ch
	}

	for i := range merged.Channels {
		prev, ok := byName[merged.Channels[i].Name]
		if !ok {
			continue
		}
		prev = prev.clone()
		merged.Channels[i].IsOnline = prev.IsOnline
		merged.Channels[i].Title = prev.Title
		merged.Channels[i].Viewers = prev.Viewers
	}

	if old.SessionPlayer != nil {
		p := *old.SessionPlayer
		merged.SessionPlayer = &p
	}

	return merged
}
