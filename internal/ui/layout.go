package ui

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the list pane width below which rows drop genres.
	LayoutCompactWidth = 50

	// LayoutWideWidth is the width from which the detail pane gets 60% of the screen.
	LayoutWideWidth = 140
)

// Fixed chrome heights.
const (
	headerHeight  = 1
	cmdBarHeight  = 1
	chromeHeight  = headerHeight + cmdBarHeight
	boxBorderRows = 2
)

// Row markers.
const (
	heartFull  = "♥"
	heartEmpty = "♡"
)
