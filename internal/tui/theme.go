package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name             string
	Base             lipgloss.Style
	Border           lipgloss.Color
	Header           lipgloss.Style
	Issue            lipgloss.Style
	DoneIssue        lipgloss.Style
	Input            lipgloss.Style
	PriorityCritical lipgloss.Style
	PriorityHigh     lipgloss.Style
	PriorityMedium   lipgloss.Style
	PriorityLow      lipgloss.Style
	Focused          lipgloss.Style
	Dim              lipgloss.Style
	Highlight        lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:             "Default",
		Base:             lipgloss.NewStyle().Margin(1, 2),
		Border:           lipgloss.Color("63"),
		Header:           lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Align(lipgloss.Center),
		Issue:            lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		DoneIssue:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true),
		Input:            lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1).Width(50),
		PriorityCritical: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		PriorityHigh:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		PriorityMedium:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		PriorityLow:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Focused:          lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:              lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight:        lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
	},
	"dracula": {
		Name:             "Dracula",
		Base:             lipgloss.NewStyle().Margin(1, 2),
		Border:           lipgloss.Color("62"),
		Header:           lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true).Align(lipgloss.Center),
		Issue:            lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		DoneIssue:        lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Strikethrough(true),
		Input:            lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1).Width(50),
		PriorityCritical: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		PriorityHigh:     lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true),
		PriorityMedium:   lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		PriorityLow:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Focused:          lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:              lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight:        lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
	},
}

// CurrentTheme holds the currently active theme.
var CurrentTheme = Themes["default"]

func SetTheme(name string) {
	if t, ok := Themes[name]; ok {
		CurrentTheme = t
	}
}
