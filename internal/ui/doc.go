// Package ui is the Bubble Tea front end of eqdisplay.
//
// The program owns the terminal: alt screen, raw input and resize
// notifications. It does not render pages itself. Rendering happens on the
// display loop, which draws into a surface.Buffer and sends the finished
// grid back as a FrameMsg; View paints that grid with the active theme.
//
// # Input
//
// Keys are translated into display events and pushed onto the queue, so
// keyboard input and the alert engine's feed go through the same consumer:
//
//   - 1-4 switch page, q quits, 0 reloads the state file
//   - on the events page: c clears, r/d/m toggle raid, debug and mute
//   - on the settings page: up/down move the selection, right/left turn the
//     character setting on and off, space makes the selection active
//   - T cycles the color theme
//
// The chosen theme and page are saved to the prefs file.
//
// # Resizing
//
// A WindowSizeMsg updates the shared surface.Sizer and queues a redraw; the
// next frame is laid out for the new size.
package ui
