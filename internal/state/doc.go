// Package state holds the application state the display reads.
//
// # Overview
//
// The state is owned by the producer (the EQ Alert engine, or the feed in
// this module): character, roster, server, guild, class, level, zone,
// direction, location and the boolean flags shown on the state page. The
// display only reads it, with two exceptions routed through the Store:
//
//   - SelectCharacter: the settings page activates a roster entry
//   - SetCharacter: the producer swaps the active character by name
//
// # Concurrency Model
//
//	Producer:                     Display:
//	┌────────────────┐            ┌──────────────────┐
//	│ store.Update() │───────────→│ store.Snapshot() │
//	│ store.Replace()│  (RWMutex) │      ↓           │
//	└────────────────┘            │  render frame    │
//	                              └──────────────────┘
//
// Snapshot returns a copy with its own roster slice, so a frame being
// rendered never observes a half-applied update.
//
// # Sentinels
//
// String fields the producer has not learned yet hold Unavailable. The
// location starts at ZeroLoc. Renderers omit both from the status bar.
//
// # State File
//
// LoadFile reads the TOML file written by the producer:
//
//	char = "tester"
//	chars = ["tester_p1999green"]
//	server = "p1999green"
//	zone = "east commonlands"
//	loc = ["-12.50", "300.00", "4.10"]
//	group = true
//
// Missing keys keep their defaults; a missing file is not an error.
package state
