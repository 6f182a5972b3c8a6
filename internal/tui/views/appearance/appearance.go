// Package appearance renders the theme pane. Changes here apply
// immediately through the dispatcher, so the tab carries no footer.
package appearance

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

// Themes the host application ships with.
var Themes = []string{"system", "light", "dark"}

const (
	FocusTheme = iota
	FocusAutoSwitch
	FocusCount
)

type Props struct {
	Focus      int
	Theme      string
	AutoSwitch bool
}

func Render(p Props) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Appearance") + "\n\n")
	for _, theme := range Themes {
		marker := "( )"
		if theme == p.Theme {
			marker = "(•)"
		}
		line := fmt.Sprintf("  %s %s", marker, theme)
		if p.Focus == FocusTheme && theme == p.Theme {
			line = selStyle.Render("> " + strings.TrimPrefix(line, "  "))
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")
	check := "[ ]"
	if p.AutoSwitch {
		check = "[x]"
	}
	auto := fmt.Sprintf("  %s Switch with the system theme", check)
	if p.Focus == FocusAutoSwitch {
		auto = selStyle.Render("> " + strings.TrimPrefix(auto, "  "))
	}
	b.WriteString(auto + "\n\n")
	b.WriteString(faintStyle.Render("  Theme changes apply immediately.") + "\n")
	return b.String()
}
