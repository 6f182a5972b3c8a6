// Package gittab renders the committer identity pane.
package gittab

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "124", Dark: "203"})
	faintStyle = lipgloss.NewStyle().Faint(true)
)

// Props carries pre-rendered field views; the dialog owns the inputs.
type Props struct {
	NameField   string
	EmailField  string
	NameMessage string
}

func Render(p Props) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Git identity") + "\n\n")
	b.WriteString("  Name\n  " + p.NameField + "\n")
	if p.NameMessage != "" {
		b.WriteString("  " + errStyle.Render(p.NameMessage) + "\n")
	}
	b.WriteString("\n  Email\n  " + p.EmailField + "\n\n")
	b.WriteString(faintStyle.Render("  Used to attribute commits in every repository.") + "\n")
	b.WriteString(faintStyle.Render("  ctrl+y copies the identity to the clipboard.") + "\n")
	return b.String()
}
