package config

// Layout constants.
const (
	// ListPaneWidth is the width of the panel list column.
	ListPaneWidth = 34

	// CompactModeThreshold triggers single-pane rendering below this width.
	CompactModeThreshold = 90

	// PreviewCardWidth is the terminal width of one preview card.
	PreviewCardWidth = 26

	// PreviewCardHeight is the number of content lines in one preview card.
	PreviewCardHeight = 12

	// MinPreviewCardWidth keeps cards legible on narrow terminals.
	MinPreviewCardWidth = 14
)

// Display limits.
const (
	// MaxVisiblePanels limits rows in the panel list before scrolling.
	MaxVisiblePanels = 20

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "..."

	// MaxSearchResults caps fuzzy search hits.
	MaxSearchResults = 20
)

// Input constraints.
const (
	// MaxFieldLength is the maximum length of a single-line field.
	MaxFieldLength = 120

	// MaxTextLength is the maximum length of description/notes fields.
	MaxTextLength = 1000
)
