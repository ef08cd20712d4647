package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name     string
	Base     lipgloss.Style
	Border   lipgloss.Color
	Header   lipgloss.Style
	Row      lipgloss.Style
	Selected lipgloss.Style
	Label    lipgloss.Style
	Input    lipgloss.Style
	Notes    lipgloss.Style
	Focused  lipgloss.Style
	Dim      lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:     "Default",
		Base:     lipgloss.NewStyle().Margin(0, 1),
		Border:   lipgloss.Color("63"),
		Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Row:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Bold(true),
		Label:    lipgloss.NewStyle().Bold(true),
		Input:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1),
		Notes:    lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245")),
		Focused:  lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	},
	"dracula": {
		Name:     "Dracula",
		Base:     lipgloss.NewStyle().Margin(0, 1),
		Border:   lipgloss.Color("62"),
		Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		Row:      lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("212")).Bold(true),
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Bold(true),
		Input:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1),
		Notes:    lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("60")),
		Focused:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("120")),
	},
}

// CurrentTheme holds the currently active theme.
var CurrentTheme = Themes["default"]

func SetTheme(name string) {
	if t, ok := Themes[name]; ok {
		CurrentTheme = t
	}
}
