// Package advanced renders the behavior flags and uncommitted-changes
// strategy pane.
package advanced

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitprefs/internal/settings"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	selStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "205", Dark: "213"}).Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
)

const (
	FocusStatsOptOut = iota
	FocusConfirmRepoRemoval
	FocusConfirmDiscard
	FocusConfirmForcePush
	FocusStrategy
	FocusCount
)

type Props struct {
	Focus int

	StatsOptOut        bool
	ConfirmRepoRemoval bool
	ConfirmDiscard     bool
	ConfirmForcePush   bool
	Strategy           settings.Strategy
}

func Render(p Props) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Advanced") + "\n\n")

	b.WriteString(checkbox(p.Focus == FocusStatsOptOut, p.StatsOptOut, "Opt out of usage reporting"))
	b.WriteString("\n")
	b.WriteString(faintStyle.Render("  Show a confirmation dialog before...") + "\n")
	b.WriteString(checkbox(p.Focus == FocusConfirmRepoRemoval, p.ConfirmRepoRemoval, "Removing repositories"))
	b.WriteString(checkbox(p.Focus == FocusConfirmDiscard, p.ConfirmDiscard, "Discarding changes"))
	b.WriteString(checkbox(p.Focus == FocusConfirmForcePush, p.ConfirmForcePush, "Force pushing"))
	b.WriteString("\n")

	strategy := fmt.Sprintf("  If I have changes and I switch branches:  ‹ %s ›", p.Strategy.Label())
	if p.Focus == FocusStrategy {
		strategy = selStyle.Render("> " + strings.TrimPrefix(strategy, "  "))
	}
	b.WriteString(strategy + "\n")
	return b.String()
}

func checkbox(focused, on bool, label string) string {
	check := "[ ]"
	if on {
		check = "[x]"
	}
	line := fmt.Sprintf("  %s %s", check, label)
	if focused {
		line = selStyle.Render("> " + strings.TrimPrefix(line, "  "))
	}
	return line + "\n"
}
