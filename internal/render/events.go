package render

import (
	"errors"
	"strings"

	"github.com/five82/eqdisplay/internal/display"
	"github.com/five82/eqdisplay/internal/state"
	"github.com/five82/eqdisplay/internal/surface"
)

func drawEventsPage(s surface.Surface, f display.Frame) error {
	errs := []error{
		step("frame", drawFrame(s)),
		step("tabs", drawTabs(s, display.PageEvents, f.State.Version)),
		step("status bar", drawStatusBar(s, f.State)),
		step("events panel", drawEventPanel(s, f.Events)),
	}
	if f.State.Debug {
		errs = append(errs, step("debug panel", drawDebugPanel(s, f.Debug)))
	}
	return errors.Join(errs...)
}

// drawStatusBar fills the two rows around the vertical center. Fields that
// hold a sentinel value are left blank.
func drawStatusBar(s surface.Surface, st state.Snapshot) error {
	cols, rows := s.Size()
	cy := rows / 2
	errs := []error{
		surface.Divider(s, cy-1, surface.Plain),
		surface.Divider(s, cy+2, surface.Plain),
	}
	put := func(row, col int, text string) {
		errs = append(errs, s.Put(row, col, text, surface.Header))
	}

	name := title(st.Char)
	put(cy, 2, name)
	if state.Available(st.Guild) {
		put(cy, 3+textWidth(name), title(st.Guild))
	}
	if state.Available(st.Server) {
		put(cy, centerCol(cols, st.Server), st.Server)
	}
	if state.Available(st.Zone) {
		zone := title(st.Zone)
		put(cy, cols-2-textWidth(zone), zone)
	}

	col := 2
	if state.Available(st.Level) {
		put(cy+1, col, st.Level)
		col += textWidth(st.Level) + 1
	}
	if state.Available(st.Class) {
		put(cy+1, col, title(st.Class))
	}
	if label := st.Context(); label != "" {
		put(cy+1, centerCol(cols, label), label)
	}

	right := cols - 2
	if state.Available(st.Direction) {
		dir := title(st.Direction)
		right -= textWidth(dir)
		put(cy+1, right, dir)
		right--
	}
	if st.HasLoc() {
		loc := strings.Join(st.Loc[:], ", ")
		right -= textWidth(loc)
		put(cy+1, right, loc)
	}
	return errors.Join(errs...)
}

func panelSize(s surface.Surface) (height, width int) {
	cols, rows := s.Size()
	return rows/2 - 4, cols - 4
}

// drawEventPanel shows the newest entries that fit, newest on the bottom row.
func drawEventPanel(s surface.Surface, events []display.LogEntry) error {
	height, width := panelSize(s)
	panel := surface.Sub(s, 3, 2, height, width)
	panel.Clear()

	var errs []error
	for i := 1; i <= height && i <= len(events); i++ {
		e := events[len(events)-i]
		row := height - i
		errs = append(errs,
			drawTimestamp(panel, row, e.Timestamp),
			panel.PutRune(row, 14, surface.GlyphVLine, surface.Plain),
			panel.Put(row, 16, truncate(e.Text, width-17), surface.Title),
		)
	}
	return errors.Join(errs...)
}

const categoryWidth = 29

// drawDebugPanel mirrors the events panel in the lower half, one category
// column in front of the text.
func drawDebugPanel(s surface.Surface, entries []display.LogEntry) error {
	_, rows := s.Size()
	height, width := panelSize(s)
	panel := surface.Sub(s, rows/2+3, 2, height, width)
	panel.Clear()

	var errs []error
	for i := 1; i <= height && i <= len(entries); i++ {
		e := entries[len(entries)-i]
		row := height - i
		errs = append(errs,
			panel.Put(row, 1, truncate(e.Category, categoryWidth), surface.Subtext),
			panel.PutRune(row, 31, surface.GlyphVLine, surface.Plain),
			panel.Put(row, 33, truncate(e.Text, width-34), surface.Title),
		)
	}
	return errors.Join(errs...)
}
