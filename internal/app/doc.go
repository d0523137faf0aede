// Package app provides the concurrency core: the status poller, the config
// watcher, and the composition root that wires them to the store and UI.
//
// # Overview
//
// Two long-running loops share one state.Store and coordinate through a
// single-slot wake channel:
//
//	Status poller (60s):                Config watcher (3s):
//	┌────────────────────────┐          ┌────────────────────────┐
//	│ authenticate once      │          │ snapshot current state │
//	│ loop:                  │          │ reload document        │
//	│  snapshot names        │   wake   │ state.Equal?           │
//	│  fetch /streams (×3)   │◀─────────│  no: Merge + notify    │
//	│  reconcile under lock  │          └────────────────────────┘
//	│  emit events           │
//	│  wait: timer|wake|ctx  │
//	└────────────────────────┘
//
// A merged config change is visible to the poller's next reconciliation:
// the wake shortens its idle wait, and reconciliation always re-snapshots
// before matching. An in-flight status query is never cancelled by a
// reload; stale entries for channels that were just removed simply find no
// match and are discarded.
//
// # Error handling
//
// Fatal (returned from Run, terminates the process): configuration
// unreadable or unparsable on first load; credentials rejected by the auth
// exchange.
//
// Recoverable (logged, cycle skipped, loop continues): transient network
// failures during a status query, retried up to 3 times 1s apart before
// giving up on the cycle; malformed response payloads; configuration
// unreadable during a periodic re-check.
//
// # Events
//
// Both loops report through a Sink: StateChanged after every applied
// reconciliation or reload, WentLive on an offline-to-online transition,
// and TitleChanged when an already-live channel with a title-alert opt-in
// changes title. Sink calls always happen outside the state lock.
package app
