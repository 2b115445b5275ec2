// Package render lays out the four dashboard pages on a surface.Surface.
//
// Every renderer is a pure function of the surface size and a display.Frame:
// it clears the surface and redraws the whole page. Router picks the
// renderer for the frame's page and substitutes a placeholder when the
// terminal is smaller than MinCols x MinRows.
//
// Coordinates are absolute cells. Text that would not fit its column is cut
// to the available width; it never spills into the next column.
package render
