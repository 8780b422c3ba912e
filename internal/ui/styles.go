package ui

import (
	"charm.land/lipgloss/v2"
)

// Styles holds the lipgloss styles used by the explorer. A single fixed
// palette; jex has no theming surface.
type Styles struct {
	PaneTitle        lipgloss.Style
	PaneTitleFocused lipgloss.Style
	PaneBorder       lipgloss.Style
	CursorLine       lipgloss.Style
	Key              lipgloss.Style
	Scalar           lipgloss.Style
	Punct            lipgloss.Style
	Folded           lipgloss.Style
	QueryBar         lipgloss.Style
	EditorPrompt     lipgloss.Style
	EditorError      lipgloss.Style
	Flash            lipgloss.Style
	StatusError      lipgloss.Style
	StatusNote       lipgloss.Style
	TreeSelected     lipgloss.Style
	TreePaneTarget   lipgloss.Style
	Help             lipgloss.Style
}

// DefaultStyles returns the fixed palette.
func DefaultStyles() Styles {
	return Styles{
		PaneTitle:        lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		PaneTitleFocused: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
		PaneBorder:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		CursorLine:       lipgloss.NewStyle().Background(lipgloss.Color("24")).Foreground(lipgloss.Color("15")),
		Key:              lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Scalar:           lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Punct:            lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Folded:           lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		QueryBar:         lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		EditorPrompt:     lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		EditorError:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Flash:            lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		StatusError:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		StatusNote:       lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		TreeSelected:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		TreePaneTarget:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Help:             lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	}
}
