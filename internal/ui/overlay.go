package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// overlayCenter draws overlay centered on top of base. The base stays visible
// around the overlay.
func overlayCenter(base, overlay string, width, height int) string {
	lines := splitLines(overlay)
	w := maxLineWidth(lines)
	h := len(lines)
	x := maxInt(0, (width-w)/2)
	y := maxInt(0, (height-h)/2)
	return overlayAt(base, overlay, x, y, width, height)
}

// overlayAt composites overlay onto base at cell position (x, y). Base is
// padded to height lines. A panel bigger than the screen is clipped: rows at
// or past height are dropped and each line is cut at the right edge, so the
// frame never grows beyond width x height.
func overlayAt(base, overlay string, x, y, width, height int) string {
	rows := splitLines(base)
	for len(rows) < height {
		rows = append(rows, "")
	}
	panel := splitLines(overlay)
	span := maxLineWidth(panel)
	if width > 0 {
		span = minInt(span, maxInt(0, width-x))
	}

	for i, line := range panel {
		row := y + i
		if row < 0 || row >= height {
			continue
		}
		rows[row] = splice(rows[row], line, x, span, width)
	}
	return strings.Join(rows, "\n")
}

// splice replaces span cells of under starting at column x with over.
func splice(under, over string, x, span, width int) string {
	under = padRight(under, width)
	left := padRight(ansi.Truncate(under, x, ""), x)
	mid := padRight(ansi.Truncate(over, span, ""), span)
	right := ""
	if end := x + span; width <= 0 || end < width {
		right = ansi.TruncateLeft(under, end, "")
	}
	return left + mid + right
}
