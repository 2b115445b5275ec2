package render

import (
	"errors"
	"strings"

	"github.com/five82/eqdisplay/internal/display"
	"github.com/five82/eqdisplay/internal/state"
	"github.com/five82/eqdisplay/internal/surface"
)

// State page columns.
const (
	fieldLabelCol = 5
	fieldSepCol   = 16
	fieldValueCol = 18
)

type stateRow struct {
	row   int
	label string
	value func(state.Snapshot) string
}

var stateRows = []stateRow{
	{5, "Server", func(s state.Snapshot) string { return title(s.Server) }},
	{6, "Character", func(s state.Snapshot) string { return title(s.Char) }},
	{8, "Class", func(s state.Snapshot) string { return title(s.Class) }},
	{9, "Level", func(s state.Snapshot) string { return s.Level }},
	{10, "Guild", func(s state.Snapshot) string { return title(s.Guild) }},
	{12, "Bind", func(s state.Snapshot) string { return boolText(s.Bind) }},
	{13, "Encumbered", func(s state.Snapshot) string { return boolText(s.Encumbered) }},
	{14, "AFK", func(s state.Snapshot) string { return boolText(s.AFK) }},
	{16, "Group", func(s state.Snapshot) string { return boolText(s.Group) }},
	{17, "Raid", func(s state.Snapshot) string { return boolText(s.Raid) }},
	{19, "Zone", func(s state.Snapshot) string { return title(s.Zone) }},
	{21, "Direction", func(s state.Snapshot) string { return title(s.Direction) }},
	{23, "Debug", func(s state.Snapshot) string { return boolText(s.Debug) }},
	{24, "Mute", func(s state.Snapshot) string { return boolText(s.Mute) }},
	{26, "Version", func(s state.Snapshot) string { return s.Version }},
}

const locationRow = 20

func drawStatePage(s surface.Surface, f display.Frame) error {
	cols, _ := s.Size()
	st := f.State
	errs := []error{
		step("frame", drawFrame(s)),
		step("tabs", drawTabs(s, display.PageState, st.Version)),
	}

	field := func(row, labelCol, sepCol, valueCol int, label, value string) {
		errs = append(errs,
			s.Put(row, labelCol, label, surface.Header),
			s.Put(row, sepCol, ": ", surface.Title),
			s.Put(row, valueCol, truncate(value, cols-1-valueCol), surface.Subtext),
		)
	}
	for _, r := range stateRows {
		field(r.row, fieldLabelCol, fieldSepCol, fieldValueCol, r.label, r.value(st))
	}
	if st.Group {
		field(16, 25, 32, 34, "Leader", title(st.Leader))
	}

	errs = append(errs,
		s.Put(locationRow, fieldLabelCol, "Location", surface.Header),
		s.Put(locationRow, fieldSepCol, ": ", surface.Title),
	)
	col := fieldValueCol
	for i, axis := range st.Loc {
		errs = append(errs, s.Put(locationRow, col, axis, surface.Subtext))
		col += textWidth(axis)
		if i < len(st.Loc)-1 {
			errs = append(errs, s.Put(locationRow, col, " : ", surface.Header))
			col += 3
		}
	}
	return errors.Join(errs...)
}

// Settings page geometry.
const (
	rosterRow = 5
	rosterCol = 3
)

func drawSettingsPage(s surface.Surface, f display.Frame) error {
	cols, rows := s.Size()
	st := f.State
	errs := []error{
		step("frame", drawFrame(s)),
		step("tabs", drawTabs(s, display.PageSettings, st.Version)),
	}

	if f.Setting == display.SettingCharacter {
		errs = append(errs, s.Put(4, 3, "Character Selection", surface.Header.Underlined()))
	} else {
		errs = append(errs, s.Put(4, 5, "Character Selection", surface.Subtext))
	}

	// The roster scrolls when it cannot fit above the summary row.
	visible := min(len(st.Chars), max(rows-rosterRow-4, 1))
	height, width := visible+2, cols/3
	box := surface.Sub(s, rosterRow, rosterCol, height, width)
	box.Clear()
	errs = append(errs, step("roster", surface.Box(box, 0, 0, height, width, surface.Plain)))

	first := 0
	if f.Selected >= visible {
		first = f.Selected - visible + 1
	}
	for i := first; i < first+visible && i < len(st.Chars); i++ {
		style := surface.Header
		if i == f.Selected {
			style = surface.Highlight
		}
		row := visible - (i - first)
		errs = append(errs, box.Put(row, 2, truncate(rosterLabel(st.Chars[i]), width-4), style))
	}

	summary := rosterRow + height
	active := title(st.Char) + " on " + st.Server
	errs = append(errs,
		s.Put(summary, 5, "Active Character", surface.Subtext),
		s.Put(summary, 21, ":", surface.Title),
		s.Put(summary, 23, truncate(active, cols-24), surface.Header),
	)
	return errors.Join(errs...)
}

// rosterLabel turns a name_server roster key into "name server".
func rosterLabel(entry string) string {
	name, server, ok := strings.Cut(entry, "_")
	if !ok {
		return title(entry)
	}
	return title(name) + " " + server
}

type helpItem struct{ key, desc string }

type helpSection struct {
	name  string
	items []helpItem
}

var helpSections = []helpSection{
	{"Global", []helpItem{
		{"1", "Events"},
		{"2", "State"},
		{"3", "Settings"},
		{"4", "Help"},
		{"q", "Quit"},
		{"0", "Reload config"},
	}},
	{"Events", []helpItem{
		{"c", "Clear events"},
		{"r", "Toggle raid mode"},
		{"d", "Toggle debug modes"},
		{"m", "Toggle mute"},
	}},
	{"Settings", []helpItem{
		{"up", "Cycle up in selection"},
		{"down", "Cycle down in selection"},
		{"right", "Toggle selection on"},
		{"left", "Toggle selection off"},
		{"space", "Cycle selection"},
	}},
}

func drawHelpPage(s surface.Surface, f display.Frame) error {
	errs := []error{
		step("frame", drawFrame(s)),
		step("tabs", drawTabs(s, display.PageHelp, f.State.Version)),
		s.Put(5, 5, "Commands:", surface.Title),
	}
	row := 7
	for _, section := range helpSections {
		errs = append(errs, s.Put(row, 7, section.name, surface.Title))
		row++
		for _, item := range section.items {
			errs = append(errs,
				s.Put(row, 9, item.key, surface.Header),
				s.Put(row, 15, ":", surface.Title),
				s.Put(row, 17, item.desc, surface.Subtext),
			)
			row++
		}
		row++
	}
	return errors.Join(errs...)
}

func drawTooSmall(s surface.Surface) error {
	cols, rows := s.Size()
	const msg = "Terminal too small."
	return errors.Join(
		drawFrame(s),
		s.Put(rows/2, max(cols/2-10, 0), msg, surface.Title),
	)
}
