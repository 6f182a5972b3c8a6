// Package integrations renders the external editor, shell, and merge tool
// pane.
package integrations

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	selStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "205", Dark: "213"}).Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
)

// Focus rows, top to bottom.
const (
	FocusEditor = iota
	FocusShell
	FocusMergeName
	FocusMergeCmd
	FocusCount
)

type Props struct {
	Focus int

	Editor  string // display name, "" when none selected
	Shell   string
	Editors []string
	Shells  []string

	// Pre-rendered textinput views for the merge tool fields.
	MergeNameField string
	MergeCmdField  string
}

func Render(p Props) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Integrations") + "\n\n")

	b.WriteString(row(p.Focus == FocusEditor, "External editor", selector(displayOr(p.Editor, "None"), len(p.Editors) > 0)))
	b.WriteString(row(p.Focus == FocusShell, "Shell", selector(displayOr(p.Shell, "(system default)"), len(p.Shells) > 0)))
	b.WriteString("\n")
	b.WriteString(row(p.Focus == FocusMergeName, "Merge tool", p.MergeNameField))
	b.WriteString(row(p.Focus == FocusMergeCmd, "Merge command", p.MergeCmdField))
	b.WriteString("\n" + faintStyle.Render("  The merge command is only saved when a tool name is set.") + "\n")
	return b.String()
}

func row(focused bool, label, value string) string {
	marker := "  "
	l := label
	if focused {
		marker = selStyle.Render("> ")
		l = selStyle.Render(label)
	}
	return fmt.Sprintf("%s%-16s %s\n", marker, l, value)
}

// selector renders a cycling value; arrows hint that left/right cycles.
func selector(value string, hasOptions bool) string {
	if !hasOptions {
		return value + faintStyle.Render("  (nothing discovered)")
	}
	return fmt.Sprintf("‹ %s ›", value)
}

func displayOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
