package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/eqdisplay/internal/surface"
)

// Theme assigns colors to the palette roles used by the page renderers.
type Theme struct {
	Name string

	Background string // empty keeps the terminal background
	Border     string // frame, dividers and plain text

	Title     string
	Header    string
	Subtext   string
	Highlight string
	Reserved  string
}

// Palette returns the lipgloss style for each surface role.
func (t Theme) Palette() surface.Palette {
	base := lipgloss.NewStyle()
	if t.Background != "" {
		base = base.Background(lipgloss.Color(t.Background))
	}
	fg := func(color string) lipgloss.Style {
		if color == "" {
			return base
		}
		return base.Foreground(lipgloss.Color(color))
	}

	var p surface.Palette
	p[surface.RoleDefault] = fg(t.Border)
	p[surface.RoleTitle] = fg(t.Title)
	p[surface.RoleHeader] = fg(t.Header)
	p[surface.RoleSubtext] = fg(t.Subtext)
	p[surface.RoleHighlight] = fg(t.Highlight).Bold(true)
	p[surface.RoleReserved] = fg(t.Reserved)
	return p
}

// Theme definitions

var themes = map[string]Theme{
	"Curses":   cursesTheme(),
	"Nightfox": nightfoxTheme(),
	"Kanagawa": kanagawaTheme(),
	"Slate":    slateTheme(),
}

var themeOrder = []string{"Curses", "Nightfox", "Kanagawa", "Slate"}

// GetTheme returns a theme by name, or the default theme.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return cursesTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func cursesTheme() Theme {
	// The classic eight-color terminal pairs.
	return Theme{
		Name:      "Curses",
		Title:     "7", // white
		Header:    "3", // yellow
		Subtext:   "6", // cyan
		Highlight: "5", // magenta
		Reserved:  "2", // green
	}
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name:       "Nightfox",
		Background: "#192330", // bg1
		Border:     "#39506d", // bg4
		Title:      "#cdcecf", // fg1
		Header:     "#dbc074", // yellow
		Subtext:    "#63cdcf", // cyan
		Highlight:  "#9d79d6", // magenta
		Reserved:   "#81b29a", // green
	}
}

func kanagawaTheme() Theme {
	// Kanagawa palette: https://github.com/rebelot/kanagawa.nvim
	return Theme{
		Name:       "Kanagawa",
		Background: "#1F1F28", // sumiInk3
		Border:     "#54546D", // sumiInk6
		Title:      "#DCD7BA", // fujiWhite
		Header:     "#E6C384", // carpYellow
		Subtext:    "#7FB4CA", // springBlue
		Highlight:  "#957FB8", // oniViolet
		Reserved:   "#98BB6C", // springGreen
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name:       "Slate",
		Background: "#0f172a", // slate-900
		Border:     "#334155", // slate-700
		Title:      "#f1f5f9", // slate-100
		Header:     "#f59e0b", // amber-500
		Subtext:    "#38bdf8", // sky-400
		Highlight:  "#e879f9", // fuchsia-400
		Reserved:   "#22c55e", // green-500
	}
}
