// Package feed is the producer side of the display queue.
//
// The alert engine writes two files: an append-only JSON lines feed of
// display items and a TOML snapshot of the application state. A Producer
// replays the tail of the feed, then follows both files, decoding each new
// line with display.DecodeWire and pushing the result onto the queue. State
// file changes replace the contents of the state.Store and queue a redraw.
//
// Changes are detected with fsnotify on the parent directories. When
// fsnotify is unavailable the producer falls back to polling; the poll
// interval backs off exponentially while reads keep failing.
package feed
