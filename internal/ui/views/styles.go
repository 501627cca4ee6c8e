package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title           lipgloss.Style
	Prompt          lipgloss.Style
	Dim             lipgloss.Style
	Help            lipgloss.Style
	Main            lipgloss.Style
	Scroll          lipgloss.Style
	Handle          lipgloss.Style
	Avatar          lipgloss.Style
	Link            lipgloss.Style
	SelectionBg     lipgloss.Style
	ValidationError lipgloss.Style
	StatusLoading   lipgloss.Style
	Toast           lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
		Dim:    lipgloss.NewStyle().Faint(true),
		Help:   lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Scroll:          lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Handle:          lipgloss.NewStyle().Bold(true),
		Avatar:          lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Link:            lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Underline(true),
		SelectionBg:     lipgloss.NewStyle().Background(lipgloss.Color("238")),
		ValidationError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusLoading:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Toast: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("203")).
			Foreground(lipgloss.Color("203")).
			Padding(0, 1),
	}
}
