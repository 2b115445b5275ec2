package render

import (
	"fmt"

	"github.com/five82/eqdisplay/internal/display"
	"github.com/five82/eqdisplay/internal/surface"
)

// Minimum terminal size for the page layouts. Anything smaller shows a
// placeholder.
const (
	MinCols = 80
	MinRows = 40
)

type pageFunc func(surface.Surface, display.Frame) error

var pages = map[display.Page]pageFunc{
	display.PageEvents:   drawEventsPage,
	display.PageState:    drawStatePage,
	display.PageSettings: drawSettingsPage,
	display.PageHelp:     drawHelpPage,
}

// Router draws frames onto a surface, picking the renderer by page.
type Router struct {
	surface surface.Surface
}

// NewRouter returns a router drawing on s.
func NewRouter(s surface.Surface) *Router {
	return &Router{surface: s}
}

// Draw renders f. Unknown pages draw nothing. Failures are reported as
// *Error; a panic inside a renderer is recovered into one.
func (r *Router) Draw(f display.Frame) (err error) {
	op := "draw " + string(f.Page)
	defer func() {
		if rec := recover(); rec != nil {
			err = &Error{Op: op, Err: fmt.Errorf("panic: %v", rec)}
		}
	}()

	cols, rows := r.surface.Size()
	if cols < MinCols || rows < MinRows {
		if err := drawTooSmall(r.surface); err != nil {
			return &Error{Op: "draw placeholder", Err: err}
		}
		return nil
	}

	draw, ok := pages[f.Page]
	if !ok {
		return nil
	}
	if err := draw(r.surface, f); err != nil {
		return &Error{Op: op, Err: err}
	}
	return nil
}
