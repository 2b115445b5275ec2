package surface

import (
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Cell is one terminal cell. A zero Rune marks the trailing half of a wide
// glyph stored in the cell to its left.
type Cell struct {
	Rune  rune
	Style Style
}

var blankCell = Cell{Rune: ' '}

// SizeFunc reports the live terminal dimensions.
type SizeFunc func() (cols, rows int)

// Buffer is an in-memory Surface. It is not safe for concurrent use: one
// goroutine draws into it and hands out Grid snapshots.
type Buffer struct {
	size       SizeFunc
	cols, rows int
	cells      []Cell
}

// NewBuffer returns a buffer that follows the dimensions reported by size.
func NewBuffer(size SizeFunc) *Buffer {
	b := &Buffer{size: size}
	b.sync()
	return b
}

// NewFixedBuffer returns a buffer with constant dimensions.
func NewFixedBuffer(cols, rows int) *Buffer {
	return NewBuffer(func() (int, int) { return cols, rows })
}

// Size queries the terminal and resizes the grid when the dimensions changed.
// A resize blanks the grid.
func (b *Buffer) Size() (int, int) {
	b.sync()
	return b.cols, b.rows
}

func (b *Buffer) sync() {
	cols, rows := 0, 0
	if b.size != nil {
		cols, rows = b.size()
	}
	cols, rows = max(cols, 0), max(rows, 0)
	if cols == b.cols && rows == b.rows && b.cells != nil {
		return
	}
	b.cols, b.rows = cols, rows
	b.cells = make([]Cell, cols*rows)
	b.fill()
}

func (b *Buffer) fill() {
	for i := range b.cells {
		b.cells[i] = blankCell
	}
}

// Clear blanks every cell, picking up any pending resize first.
func (b *Buffer) Clear() {
	b.sync()
	b.fill()
}

// Put writes text at (row, col), clipping at the right edge.
func (b *Buffer) Put(row, col int, text string, style Style) error {
	if !b.inBounds(row, col) {
		return ErrOutOfBounds
	}
	c := col
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if c+w > b.cols {
			break
		}
		b.set(row, c, r, w, style)
		c += w
	}
	return nil
}

// PutRune writes a single glyph at (row, col).
func (b *Buffer) PutRune(row, col int, r rune, style Style) error {
	if !b.inBounds(row, col) {
		return ErrOutOfBounds
	}
	w := runewidth.RuneWidth(r)
	if w == 0 || col+w > b.cols {
		return nil
	}
	b.set(row, col, r, w, style)
	return nil
}

func (b *Buffer) inBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// set stores r at (row, col) and repairs any wide glyph it splits.
func (b *Buffer) set(row, col int, r rune, width int, style Style) {
	idx := row*b.cols + col
	if b.cells[idx].Rune == 0 && col > 0 {
		b.cells[idx-1] = blankCell
	}
	last := col + width - 1
	if last+1 < b.cols && b.cells[idx+width].Rune == 0 {
		b.cells[idx+width] = blankCell
	}
	b.cells[idx] = Cell{Rune: r, Style: style}
	if width == 2 {
		b.cells[idx+1] = Cell{Style: style}
	}
}

// Snapshot copies the current cells into an immutable Grid.
func (b *Buffer) Snapshot() Grid {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return Grid{Cols: b.cols, Rows: b.rows, cells: cells}
}

// Grid is an immutable copy of a rendered frame.
type Grid struct {
	Cols, Rows int
	cells      []Cell
}

// Cell returns the cell at (row, col), or a blank cell when out of range.
func (g Grid) Cell(row, col int) Cell {
	if row < 0 || row >= g.Rows || col < 0 || col >= g.Cols {
		return blankCell
	}
	return g.cells[row*g.Cols+col]
}

// Line returns the plain text of a row.
func (g Grid) Line(row int) string {
	if row < 0 || row >= g.Rows {
		return ""
	}
	var b strings.Builder
	for _, c := range g.cells[row*g.Cols : (row+1)*g.Cols] {
		if c.Rune != 0 {
			b.WriteRune(c.Rune)
		}
	}
	return b.String()
}

// String returns the plain text of the whole grid, one line per row.
func (g Grid) String() string {
	lines := make([]string, g.Rows)
	for r := range lines {
		lines[r] = g.Line(r)
	}
	return strings.Join(lines, "\n")
}

// Palette maps each role to a lipgloss style.
type Palette [numRoles]lipgloss.Style

// Render returns the grid as styled text, grouping runs of equally styled
// cells into a single lipgloss render.
func (g Grid) Render(p Palette) string {
	var out strings.Builder
	for row := 0; row < g.Rows; row++ {
		if row > 0 {
			out.WriteByte('\n')
		}
		cells := g.cells[row*g.Cols : (row+1)*g.Cols]
		var run strings.Builder
		current := Plain
		flush := func() {
			if run.Len() == 0 {
				return
			}
			out.WriteString(p.render(current, run.String()))
			run.Reset()
		}
		for _, c := range cells {
			if c.Rune == 0 {
				continue
			}
			if c.Style != current {
				flush()
				current = c.Style
			}
			run.WriteRune(c.Rune)
		}
		flush()
	}
	return out.String()
}

func (p Palette) render(style Style, text string) string {
	st := lipgloss.NewStyle()
	if int(style.Role) < len(p) {
		st = p[style.Role]
	}
	if style.Underline {
		st = st.Underline(true)
	}
	return st.Render(text)
}

// Sizer holds the terminal dimensions reported by the UI so the render
// goroutine can read them without locking.
type Sizer struct {
	packed atomic.Uint64
}

// Set stores new dimensions.
func (s *Sizer) Set(cols, rows int) {
	s.packed.Store(uint64(uint32(max(cols, 0)))<<32 | uint64(uint32(max(rows, 0))))
}

// Size returns the last stored dimensions.
func (s *Sizer) Size() (int, int) {
	v := s.packed.Load()
	return int(v >> 32), int(uint32(v))
}
