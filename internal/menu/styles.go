package menu

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Styles contains the lipgloss styles used by the menu.
type Styles struct {
	Title  lipgloss.Style
	Rule   lipgloss.Style
	Number lipgloss.Style

	Failure lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Value   lipgloss.Style
}

// DefaultStyles returns the menu styles rendered for w.
// Colors are dropped automatically when w is not a terminal.
func DefaultStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	return Styles{
		Title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Rule:   r.NewStyle().Foreground(lipgloss.Color("240")),
		Number: r.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),

		Failure: r.NewStyle().Foreground(lipgloss.Color("196")),
		Warning: r.NewStyle().Foreground(lipgloss.Color("214")),
		Info:    r.NewStyle().Foreground(lipgloss.Color("245")),
		Value:   r.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
	}
}
