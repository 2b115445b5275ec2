// Package app is the composition root of eqdisplay.
//
// Run loads the configuration, opens the log file and wires the pieces
// together:
//
//	feed.Producer ──┐
//	                ├─> display.Queue ─> display.Consumer ─> render.Router ─> surface.Buffer
//	ui keys ────────┘                           │
//	                                            └─> program.Send(FrameMsg) ─> ui View
//
// The producer and the consumer run on their own goroutines; the Bubble Tea
// program runs on the caller's. Quitting the program cancels both. A failure
// of the display loop quits the program and is returned from Run, so the
// process exits non-zero. A producer failure is logged and the display keeps
// showing what it has.
//
// Logs go to the configured log file only, since the terminal is in use.
package app
