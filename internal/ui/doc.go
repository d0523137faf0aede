// Package ui renders the channel list with Bubble Tea and forwards
// keyboard actions back into the shared state.
//
// The UI is strictly a consumer of the tracking core: it reads snapshots
// from the store, receives loop events as messages (the UI type is the
// loops' event sink), and issues only presentation-side mutations (the
// session player override). Went-live and title-change events surface as a
// transient notice line in place of OS toasts.
package ui
