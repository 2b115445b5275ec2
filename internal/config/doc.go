// Package config loads the eqdisplay configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/eqdisplay/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing, empty or non-positive, use defaults
//
// # TOML Format
//
//	event_feed = "~/.local/share/eqdisplay/display.jsonl"
//	state_file = "~/.local/share/eqdisplay/state.toml"
//	log_file = "~/.local/share/eqdisplay/eqdisplay.log"
//	log_level = "info"
//	poll_interval_ms = 10
//	feed_interval_ms = 250
//	backlog = 200
//	queue_size = 256
//
// Every field is optional. Paths get tilde expansion and are made absolute.
//
// # Error Handling
//
// A missing file is not an error. Unreadable or malformed files are, wrapped
// with "open config", "read config" or "parse config".
package config
