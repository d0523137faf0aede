// Package config handles loading and parsing the channels document.
//
// # Overview
//
// The document is a flat JSON file naming the API credentials, the tracked
// channels, the preferred player, and the title-notification opt-ins. A
// Loader bundles the resolved path with the command-line overrides so the
// config watcher re-reads exactly what startup read, plus any file edits.
//
// # Document format
//
// Example ~/.config/lurk/channels.json:
//
//	{
//	  "client": "my-client-id",
//	  "secret": "my-client-secret",
//	  "player": "mpv",
//	  "channels": ["alice", "bob"],
//	  "notify_title_changed": ["alice"]
//	}
//
// player is optional and defaults to browser. Duplicate channel names are
// dropped at load; the first occurrence wins.
//
// # Overrides
//
// Command-line values take precedence field-by-field. The channel and
// notify lists are wholesale-replaced by an override, never merged with the
// document's lists.
//
// # Error Handling
//
// Load returns errors for path expansion failures, unreadable files, JSON
// parse failures, and unknown player values. Whether a failure is fatal is
// the caller's call: the first load at startup is, a periodic re-check is
// not.
package config
