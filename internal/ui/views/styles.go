package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	Filter      lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
	Scroll      lipgloss.Style
	Highlight   lipgloss.Style
	HighlightBg lipgloss.Style
	Selected    lipgloss.Style
	Group       lipgloss.Style
	Disabled    lipgloss.Style
	NoResults   lipgloss.Style
	Suggestion  lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Filter:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Help:        lipgloss.NewStyle().Faint(true).MarginTop(1),
		Main:        lipgloss.NewStyle().Padding(0, 1),
		Scroll:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		HighlightBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Selected:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		Group:       lipgloss.NewStyle().Bold(true),
		Disabled:    lipgloss.NewStyle().Faint(true).Strikethrough(true),
		NoResults:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Suggestion:  lipgloss.NewStyle().Foreground(lipgloss.Color("51")),  // cyan
	}
}
