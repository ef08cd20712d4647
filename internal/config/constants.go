package config

// Database/application settings.
const (
	AppName            = "storyboard"
	DBFileName         = "storyboard.db"
	DefaultProjectName = "Storyboard"
	ProjectFileVersion = "1.0"
	DateTimeLayout     = "2006-01-02 15:04"
)

// Page geometry in millimetres. A4 portrait for the storyboard, landscape for
// the shot list.
const (
	PageWidthMM    = 210.0
	PageHeightMM   = 297.0
	PageMarginMM   = 10.0
	PreviewMargin  = 5.0
	GridColumns    = 3
	GridRows       = 2
	PanelsPerPage  = GridColumns * GridRows
	ColumnWidthMM  = 60.0
	ExportRowMM    = 125.0
	PreviewRowMM   = 120.0
	CellPaddingMM  = 2.0
	CardPaddingMM  = 1.0
	ImageBoxWidth  = 58.0
	ImageBoxHeight = 40.0
	EmptyCardMM    = 120.0
)

// Font sizes in points, matching the storyboard paragraph styles.
const (
	TitleFontSize   = 14.0
	HeaderFontSize  = 12.0
	ShotFontSize    = 9.0
	SubheadFontSize = 9.0
	SmallFontSize   = 7.0
	LegendFontSize  = 8.0
	LineHeightMM    = 3.2
)
