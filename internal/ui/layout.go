package ui

// Identity card dimensions (outer, including border).
const (
	cardWidth  = 20
	cardHeight = 11
	cardGap    = 4
)

// Sticky note dimensions.
const (
	// GridColumns is the number of notes per row in the grid layout when
	// the terminal is wide enough.
	GridColumns = 5

	noteWidth     = 24 // outer width
	noteHeight    = 8  // outer height
	noteGap       = 2
	noteTextLines = 3
)

// Chrome heights for the board screen.
const (
	boardHeaderLines = 3 // title row + rule + spacer
	boardFooterLines = 3 // plus button
	statusLines      = 1
)

// LayoutCompactWidth is the width below which the composer narrows its
// canned buttons. Both catalog columns stay.
const LayoutCompactWidth = 70
