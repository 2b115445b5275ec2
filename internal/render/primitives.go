package render

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"

	"github.com/five82/eqdisplay/internal/display"
	"github.com/five82/eqdisplay/internal/surface"
)

// Error carries the operation that failed during a render pass.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return "render " + e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// step labels a component failure inside a page.
func step(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}

// drawFrame clears the surface and boxes its perimeter.
func drawFrame(s surface.Surface) error {
	s.Clear()
	cols, rows := s.Size()
	return surface.Box(s, 0, 0, rows, cols, surface.Plain)
}

type tabLayout struct {
	digit string
	page  display.Page
	col   int // label column; counted from the right edge when right is set
	sep   int // separator column, same convention
	right bool
}

var tabLayouts = []tabLayout{
	{digit: "1", page: display.PageEvents, col: 2, sep: 12},
	{digit: "2", page: display.PageState, col: 14, sep: 23},
	{digit: "3", page: display.PageSettings, col: 23, sep: 25, right: true},
	{digit: "4", page: display.PageHelp, col: 9, sep: 11, right: true},
}

// drawTabs draws the navigation strip across rows 0 to 2.
func drawTabs(s surface.Surface, active display.Page, version string) error {
	cols, _ := s.Size()
	errs := []error{surface.Divider(s, 2, surface.Plain)}

	for _, tab := range tabLayouts {
		col, sep := tab.col, tab.sep
		if tab.right {
			col, sep = cols-col, cols-sep
		}
		label := surface.Header
		if tab.page == active {
			label = surface.Highlight
		}
		errs = append(errs,
			s.Put(1, col, tab.digit, surface.Subtext),
			s.Put(1, col+1, ":", surface.Title),
			s.Put(1, col+3, string(tab.page), label),
			s.PutRune(0, sep, surface.GlyphTTee, surface.Plain),
			s.PutRune(1, sep, surface.GlyphVLine, surface.Plain),
			s.PutRune(2, sep, surface.GlyphBTee, surface.Plain),
		)
	}

	title := "EQ ALERT " + version
	errs = append(errs, s.Put(1, centerCol(cols, title), title, surface.Header))
	return errors.Join(errs...)
}

// Timestamp field columns within a log row.
const (
	timestampCol   = 1
	timestampWidth = 12
)

// drawTimestamp renders HH:MM:SS.mmm with styled separators so every log
// row lines up. Malformed stamps are written raw.
func drawTimestamp(s surface.Surface, row int, stamp string) error {
	parts := strings.Split(stamp, ":")
	if len(parts) != 3 {
		return s.Put(row, timestampCol, truncate(stamp, timestampWidth), surface.Subtext)
	}
	sec, ms, ok := strings.Cut(parts[2], ".")
	if !ok {
		return s.Put(row, timestampCol, truncate(stamp, timestampWidth), surface.Subtext)
	}
	return errors.Join(
		s.Put(row, 1, truncate(parts[0], 2), surface.Subtext),
		s.Put(row, 3, ":", surface.Header),
		s.Put(row, 4, truncate(parts[1], 2), surface.Subtext),
		s.Put(row, 6, ":", surface.Header),
		s.Put(row, 7, truncate(sec, 2), surface.Subtext),
		s.Put(row, 9, ".", surface.Header),
		s.Put(row, 10, truncate(ms, 3), surface.Subtext),
	)
}

// truncate cuts text to width terminal cells. No ellipsis, no padding.
func truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(text, width, "")
}

// textWidth is the number of cells text occupies.
func textWidth(text string) int {
	return runewidth.StringWidth(text)
}

// centerCol returns the column that centers text on a surface cols wide.
func centerCol(cols int, text string) int {
	return max(cols/2-(textWidth(text)+1)/2, 0)
}

// title upper-cases the first letter of every run of letters and
// lower-cases the rest, so "sir_tester of qeynos" reads "Sir_Tester Of Qeynos".
func title(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	prevLetter := false
	for _, r := range text {
		isLetter := unicode.IsLetter(r)
		switch {
		case isLetter && !prevLetter:
			b.WriteRune(unicode.ToUpper(r))
		case isLetter:
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
		prevLetter = isLetter
	}
	return b.String()
}

// boolText renders a flag the way the producer encodes it, title-cased.
func boolText(v bool) string {
	if v {
		return "True"
	}
	return "False"
}
