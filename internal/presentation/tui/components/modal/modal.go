// Package modal provides full-screen modal dialogs.
package modal

import (
	"github.com/charmbracelet/lipgloss"
)

// Kind identifies which dialog is showing.
type Kind int

const (
	AddListing Kind = iota
	RemoveListing
	Quit
	Help
)

// Props defines the properties for the modal component.
type Props struct {
	Visible bool
	Kind    Kind
	Body    string
	Width   int
	Height  int
}

// Render renders the modal centered in the terminal.
func Render(p Props) string {
	if !p.Visible {
		return ""
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("205")).
		Padding(1, 2)

	return lipgloss.Place(
		p.Width, p.Height,
		lipgloss.Center, lipgloss.Center,
		boxStyle.Render(p.Body),
	)
}
