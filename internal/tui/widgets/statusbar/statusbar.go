package statusbar

import (
	"fmt"
	"strings"

	"gitprefs/internal/tui/state"
)

type StatusBar struct{}

func NewStatusBar() StatusBar { return StatusBar{} }

// View composes a concise status line reflecting the dialog state.
func (StatusBar) View(s state.State, notice string) string {
	pos := 0
	for i, t := range state.Tabs {
		if t == s.Tab {
			pos = i + 1
			break
		}
	}
	parts := []string{
		fmt.Sprintf("[%s %d/%d]", s.Tab, pos, len(state.Tabs)),
	}
	if !s.Loaded {
		parts = append(parts, "loading…")
	}
	if state.SaveDisabled(s) {
		parts = append(parts, "save blocked")
	}
	if notice != "" {
		parts = append(parts, notice)
	}
	return strings.Join(parts, "  ")
}
