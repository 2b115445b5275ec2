// Package display owns the event queue and the single consumer loop that
// drives rendering.
//
// Producers (the feed and the keyboard) push Events onto a Queue. The
// Consumer is the only reader: it applies each event to its UIState, takes
// a copy of the application state and hands both to a Drawer as a Frame.
//
// # Event kinds
//
//   - update: set one transient field (setting, selection index, active
//     character) and re-render the current page
//   - draw: switch page, or re-render in place for the "redraw" target
//   - event: append to the events or debug sequence, or clear both
//
// Events appended to the events sequence only trigger a render while the
// events page is showing; debug entries always do, since the debug panel
// follows the debug flag rather than the page.
//
// # Selection
//
// The selection index is clamped to the roster, never wrapped. With an
// empty roster it stays at 0 and the active character is left alone.
//
// # Failure
//
// A failed draw is logged and the loop carries on. A panic while handling
// an event stops the loop with a *LoopError; cancelling the context stops
// it with nil.
package display
