// Package footer renders the dialog footer for the active tab.
package footer

import (
	"github.com/charmbracelet/lipgloss"

	"gitprefs/internal/tui/state"
)

// Variant is the footer rendered for a tab.
type Variant int

const (
	// None: the tab has no save-relevant editable state of its own.
	None Variant = iota
	// SaveCancel: confirm/dismiss control pair.
	SaveCancel
)

var (
	saveStyle     = lipgloss.NewStyle().Bold(true)
	disabledStyle = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	hintStyle     = lipgloss.NewStyle().Faint(true)
)

// For maps a tab to its footer variant. Accounts and Appearance carry no
// footer; their changes apply immediately. The match is exhaustive: an
// unknown tab panics via Tab.String.
func For(t state.Tab) Variant {
	switch t {
	case state.Accounts, state.Appearance:
		return None
	case state.Integrations, state.Git, state.Advanced:
		return SaveCancel
	default:
		panic("unknown preferences tab " + t.String())
	}
}

// View renders the footer. The disabled save hint differs textually, not
// just by styling, so the state reads on terminals without color support.
func View(v Variant, saveDisabled bool) string {
	switch v {
	case None:
		return hintStyle.Render("esc: close")
	case SaveCancel:
		save := saveStyle.Render("enter: Save")
		if saveDisabled {
			save = disabledStyle.Render("enter: Save (disabled)")
		}
		return save + hintStyle.Render("   esc: Cancel")
	default:
		panic("unknown footer variant")
	}
}
