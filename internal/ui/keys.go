package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Reload     key.Binding
	CycleTheme key.Binding

	// Page switching
	ViewEvents   key.Binding
	ViewState    key.Binding
	ViewSettings key.Binding
	ViewHelp     key.Binding

	// Events page
	Clear       key.Binding
	ToggleRaid  key.Binding
	ToggleDebug key.Binding
	ToggleMute  key.Binding

	// Settings page
	Up        key.Binding
	Down      key.Binding
	SelectOn  key.Binding
	SelectOff key.Binding
	Cycle     key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
		Reload: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "Reload config"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),

		ViewEvents: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "Events"),
		),
		ViewState: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "State"),
		),
		ViewSettings: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "Settings"),
		),
		ViewHelp: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "Help"),
		),

		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Clear events"),
		),
		ToggleRaid: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Toggle raid mode"),
		),
		ToggleDebug: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "Toggle debug modes"),
		),
		ToggleMute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "Toggle mute"),
		),

		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up", "Cycle up in selection"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down", "Cycle down in selection"),
		),
		SelectOn: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right", "Toggle selection on"),
		),
		SelectOff: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left", "Toggle selection off"),
		),
		Cycle: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "Cycle selection"),
		),
	}
}
