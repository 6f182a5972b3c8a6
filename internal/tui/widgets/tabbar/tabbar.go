// Package tabbar renders the dialog's clickable tab headers.
package tabbar

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"gitprefs/internal/tui/state"
)

var (
	activeStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "205", Dark: "213"}).
			Padding(0, 2)
	inactiveStyle = lipgloss.NewStyle().Faint(true).Padding(0, 2)
)

// ZoneID is the bubblezone mark for one tab header.
func ZoneID(t state.Tab) string { return "tab:" + t.String() }

// View renders the header row. Each header is zone-marked so mouse clicks
// can be resolved back to a tab.
func View(active state.Tab) string {
	parts := make([]string, 0, len(state.Tabs))
	for _, t := range state.Tabs {
		style := inactiveStyle
		if t == active {
			style = activeStyle
		}
		parts = append(parts, zone.Mark(ZoneID(t), style.Render(t.String())))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// Clicked resolves a mouse event to the tab header under it.
func Clicked(msg tea.MouseMsg) (state.Tab, bool) {
	for _, t := range state.Tabs {
		if zone.Get(ZoneID(t)).InBounds(msg) {
			return t, true
		}
	}
	return state.Accounts, false
}
