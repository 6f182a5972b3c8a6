package helpoverlay

import (
	"fmt"
	"strings"

	"gitprefs/internal/tui/state"
)

type HelpOverlay struct{}

func NewHelpOverlay() HelpOverlay { return HelpOverlay{} }

// View returns grouped key help with the active tab indicated.
func (HelpOverlay) View(active state.Tab) string {
	sections := []struct {
		title string
		keys  []string
	}{
		{"Tabs", []string{"tab/shift+tab: next/previous tab", "1-5: jump to tab", "mouse: click a header"}},
		{"Fields", []string{"↑/↓: move focus", "←/→: cycle a selector", "space: toggle a checkbox"}},
		{"Actions", []string{"enter: save (when enabled)", "esc: cancel", "ctrl+r: review pending changes", "ctrl+y: copy git identity"}},
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Help (Tab: %s)\n", active)
	for _, sec := range sections {
		fmt.Fprintf(&b, "\n%s:\n", sec.title)
		for _, k := range sec.keys {
			fmt.Fprintf(&b, "  %s\n", k)
		}
	}
	return b.String()
}
