package ui

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which compact mode is used.
	LayoutCompactWidth = 100

	// LayoutMinWidth is the narrowest width the screen is laid out for.
	LayoutMinWidth = 20
)

// Pet list sizing.
const (
	// chromeRows is every row except the pet list body.
	chromeRows = 18

	// minListRows keeps a few pets visible on short terminals.
	minListRows = 3
)

// Status line limits.
const (
	statusErrorWidth        = 80
	statusErrorWidthCompact = 40
	storeLabelWidth         = 50
)
