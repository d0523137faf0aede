// Package state holds the shared channel-tracking state and the pure
// merge logic that reconciles it with a freshly loaded configuration.
//
// # Overview
//
// One State instance is shared by three parties: the status poller (writes
// volatile per-channel fields), the config watcher (replaces structural
// fields and the channel list), and the UI (reads snapshots). The Store
// mediates all of that behind a single lock.
//
//	Poller:                      Watcher:                UI:
//	┌──────────────────┐        ┌──────────────────┐    ┌──────────────┐
//	│ store.Snapshot() │        │ store.Snapshot() │    │              │
//	│ fetch streams    │        │ reload document  │    │              │
//	│ store.Mutate()   │───────→│ store.Mutate()   │───→│ store.       │
//	│   reconcile      │ (lock) │   Merge()        │    │  Snapshot()  │
//	└──────────────────┘        └──────────────────┘    └──────────────┘
//
// # Access discipline
//
// All mutation funnels through Store.Mutate, all reads through
// Store.Snapshot. Network and file I/O always happen outside the lock;
// both loops snapshot first, do their blocking work, then apply the result
// in a short critical section. Snapshots are deep copies, so a reader never
// observes a partially updated record and can never mutate live state by
// accident.
//
// # Volatile vs structural fields
//
// IsOnline, Title, and Viewers are volatile: they are produced by live
// polling and are deliberately excluded from Equal. Everything else is
// structural and comes from the configuration document. Merge replaces the
// structural side wholesale while transplanting the volatile side for every
// channel whose name survives the reload, so a config edit never loses
// in-flight live data.
//
// The SessionPlayer override sits outside both groups: it is chosen in the
// UI for the current session only, ignored by Equal, and carried through
// Merge untouched.
package state
