// Package surface provides the drawing target used by the page renderers.
//
// A Surface is a fixed grid of terminal cells addressed by (row, col) with
// the origin in the top-left corner. Renderers only ever write through the
// Surface interface; the concrete Buffer keeps the cells in memory so frames
// can be rendered by the UI layer and inspected by tests without a terminal.
package surface

import (
	"errors"
	"strings"

	"github.com/mattn/go-runewidth"
)

// ErrOutOfBounds is returned when a write starts outside the surface.
var ErrOutOfBounds = errors.New("surface: position out of bounds")

// Role is a semantic palette slot. The UI maps each role to a color.
type Role uint8

const (
	RoleDefault Role = iota
	RoleTitle
	RoleHeader
	RoleSubtext
	RoleHighlight
	RoleReserved

	numRoles
)

// Style is the attribute set of a cell.
type Style struct {
	Role      Role
	Underline bool
}

// Predefined styles for the five palette roles.
var (
	Plain     = Style{}
	Title     = Style{Role: RoleTitle}
	Header    = Style{Role: RoleHeader}
	Subtext   = Style{Role: RoleSubtext}
	Highlight = Style{Role: RoleHighlight}
	Reserved  = Style{Role: RoleReserved}
)

// Underlined returns a copy of s with underline set.
func (s Style) Underlined() Style {
	s.Underline = true
	return s
}

// Box drawing glyphs.
const (
	GlyphHLine    = '─'
	GlyphVLine    = '│'
	GlyphTopLeft  = '┌'
	GlyphTopRight = '┐'
	GlyphBotLeft  = '└'
	GlyphBotRight = '┘'
	GlyphLTee     = '├'
	GlyphRTee     = '┤'
	GlyphTTee     = '┬'
	GlyphBTee     = '┴'
)

// Surface is the terminal capability the renderers draw on.
type Surface interface {
	// Size reports the current dimensions in cells.
	Size() (cols, rows int)
	// Clear blanks every cell.
	Clear()
	// Put writes text starting at (row, col). Text running past the right
	// edge is clipped; a start position outside the surface is an error.
	Put(row, col int, text string, style Style) error
	// PutRune writes a single glyph at (row, col).
	PutRune(row, col int, r rune, style Style) error
}

// Box draws a border around the rectangle at (row, col) sized height x width.
func Box(s Surface, row, col, height, width int, style Style) error {
	if height < 2 || width < 2 {
		return ErrOutOfBounds
	}
	bottom, right := row+height-1, col+width-1
	errs := []error{
		s.PutRune(row, col, GlyphTopLeft, style),
		s.PutRune(row, right, GlyphTopRight, style),
		s.PutRune(bottom, col, GlyphBotLeft, style),
		s.PutRune(bottom, right, GlyphBotRight, style),
	}
	if width > 2 {
		line := strings.Repeat(string(GlyphHLine), width-2)
		errs = append(errs, s.Put(row, col+1, line, style), s.Put(bottom, col+1, line, style))
	}
	for r := row + 1; r < bottom; r++ {
		errs = append(errs, s.PutRune(r, col, GlyphVLine, style), s.PutRune(r, right, GlyphVLine, style))
	}
	return errors.Join(errs...)
}

// Divider draws a horizontal rule across row joined to the surrounding box
// with tee glyphs at both ends.
func Divider(s Surface, row int, style Style) error {
	cols, _ := s.Size()
	if cols < 2 {
		return ErrOutOfBounds
	}
	errs := []error{
		s.PutRune(row, 0, GlyphLTee, style),
		s.PutRune(row, cols-1, GlyphRTee, style),
	}
	if cols > 2 {
		errs = append(errs, s.Put(row, 1, strings.Repeat(string(GlyphHLine), cols-2), style))
	}
	return errors.Join(errs...)
}

// Sub returns a view of parent restricted to the given rectangle. Writes
// are translated into parent coordinates and clipped to the rectangle.
func Sub(parent Surface, row, col, height, width int) Surface {
	return &region{parent: parent, row: row, col: col, height: height, width: width}
}

type region struct {
	parent        Surface
	row, col      int
	height, width int
}

func (r *region) Size() (int, int) {
	pc, pr := r.parent.Size()
	w := min(r.width, pc-r.col)
	h := min(r.height, pr-r.row)
	return max(w, 0), max(h, 0)
}

func (r *region) Clear() {
	w, h := r.Size()
	if w == 0 {
		return
	}
	blank := strings.Repeat(" ", w)
	for y := 0; y < h; y++ {
		_ = r.parent.Put(r.row+y, r.col, blank, Plain)
	}
}

func (r *region) Put(row, col int, text string, style Style) error {
	w, h := r.Size()
	if row < 0 || row >= h || col < 0 || col >= w {
		return ErrOutOfBounds
	}
	return r.parent.Put(r.row+row, r.col+col, runewidth.Truncate(text, w-col, ""), style)
}

func (r *region) PutRune(row, col int, glyph rune, style Style) error {
	w, h := r.Size()
	if row < 0 || row >= h || col < 0 || col >= w {
		return ErrOutOfBounds
	}
	return r.parent.PutRune(r.row+row, r.col+col, glyph, style)
}
