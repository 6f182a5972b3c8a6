// Package tui implements the preferences dialog: five tabs over the git
// config, the application settings, and the signed-in accounts.
package tui

import (
	"fmt"
	"log"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"gitprefs/internal/accounts"
	"gitprefs/internal/discovery"
	"gitprefs/internal/identity"
	"gitprefs/internal/settings"
	"gitprefs/internal/tui/state"
	"gitprefs/internal/tui/views/accountstab"
	"gitprefs/internal/tui/views/advanced"
	"gitprefs/internal/tui/views/appearance"
	"gitprefs/internal/tui/views/gittab"
	"gitprefs/internal/tui/views/integrations"
	"gitprefs/internal/tui/widgets/diffview"
	"gitprefs/internal/tui/widgets/footer"
	"gitprefs/internal/tui/widgets/helpoverlay"
	"gitprefs/internal/tui/widgets/statusbar"
	"gitprefs/internal/tui/widgets/tabbar"
)

// ConfigStore is the slice of the git config the dialog needs.
type ConfigStore interface {
	Get(key string) string
	Set(key, value string)
	Save() error
	ReadMergeTool() (name, cmd string)
	WriteMergeTool(name, cmd string) error
}

// Options is the contract the host supplies when opening the dialog.
type Options struct {
	Config     ConfigStore
	Accounts   accounts.Provider
	Dispatcher settings.Dispatcher
	Settings   settings.Settings
	LookPath   discovery.LookPathFunc
	InitialTab state.Tab
	// OnDismissed runs when the dialog closes, after a save completes or
	// immediately on cancel.
	OnDismissed func()
}

// Run opens the preferences dialog and blocks until it is dismissed.
func Run(opts Options) error {
	zone.NewGlobal()
	p := tea.NewProgram(newModel(opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("preferences dialog: %w", err)
	}
	return nil
}

// Focus rows on the Git tab; the other tabs define theirs in their view
// packages.
const (
	gitFocusName = iota
	gitFocusEmail
	gitFocusCount
)

type model struct {
	opts Options
	st   state.State
	// baseline is the state as committed by the load, kept for the
	// review-changes overlay.
	baseline state.State
	accts    []accounts.Account

	nameInput      textinput.Model
	emailInput     textinput.Model
	mergeNameInput textinput.Model
	mergeCmdInput  textinput.Model

	focus      int
	notice     string
	showReview bool
	showHelp   bool
	saving     bool

	status statusbar.StatusBar
	help   helpoverlay.HelpOverlay

	width, height int
}

func newModel(opts Options) model {
	mk := func(placeholder string) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = 120
		in.Width = 40
		return in
	}
	m := model{
		opts:           opts,
		st:             state.Initial(opts.InitialTab, opts.Settings),
		nameInput:      mk("Your name"),
		emailInput:     mk("you@example.com"),
		mergeNameInput: mk("vimdiff"),
		mergeCmdInput:  mk("nvim -d $LOCAL $REMOTE"),
		status:         statusbar.NewStatusBar(),
		help:           helpoverlay.NewHelpOverlay(),
	}
	m.syncFocus()
	return m
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, loadCmd(m.opts))
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case loadedMsg:
		m.st = state.ApplyLoaded(m.st, msg.res)
		m.baseline = m.st
		m.accts = msg.accts
		m.nameInput.SetValue(m.st.CommitterName)
		m.emailInput.SetValue(m.st.CommitterEmail)
		m.mergeNameInput.SetValue(m.st.MergeToolName)
		m.mergeCmdInput.SetValue(m.st.MergeToolCommand)
		return m, nil

	case loadFailedMsg:
		// Soft fail: the dialog stays usable on the caller-provided values.
		log.Printf("preferences load failed: %v", msg.err)
		m.notice = "could not load current settings"
		return m, nil

	case savedMsg:
		return m, tea.Quit

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
			if t, ok := tabbar.Clicked(msg); ok {
				m = m.selectTab(t)
			}
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()

	if m.showHelp {
		switch k {
		case "esc", "?", "q":
			m.showHelp = false
		}
		return m, nil
	}
	if m.showReview {
		switch k {
		case "esc", "ctrl+r", "q":
			m.showReview = false
		}
		return m, nil
	}

	// Typing keys go to the focused field; navigation and actions stay
	// global even while a field has focus.
	if in := (&m).focusedInput(); in != nil && !globalKey(k) {
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		m = m.refreshFromInputs()
		return m, cmd
	}

	switch k {
	case "ctrl+c", "esc", "q":
		return m.dismiss()

	case "tab":
		return m.selectTab(nextTab(m.st.Tab, 1)), nil

	case "shift+tab":
		return m.selectTab(nextTab(m.st.Tab, -1)), nil

	case "right", "l":
		if m.selectorFocused() {
			return m.cycleSelector(1), nil
		}
		return m.selectTab(nextTab(m.st.Tab, 1)), nil

	case "left", "h":
		if m.selectorFocused() {
			return m.cycleSelector(-1), nil
		}
		return m.selectTab(nextTab(m.st.Tab, -1)), nil

	case "1", "2", "3", "4", "5":
		idx := int(k[0] - '1')
		return m.selectTab(state.Tabs[idx]), nil

	case "up", "k":
		m = m.moveFocus(-1)
		return m, nil

	case "down", "j":
		m = m.moveFocus(1)
		return m, nil

	case " ":
		m = m.toggleFocused()
		return m, nil

	case "enter":
		if footer.For(m.st.Tab) == footer.SaveCancel && !state.SaveDisabled(m.st) && !m.saving {
			m.saving = true
			return m, saveCmd(m.opts, m.st)
		}
		return m, nil

	case "ctrl+y":
		if m.st.Tab == state.Git {
			ident := identity.Format(m.st.CommitterName, m.st.CommitterEmail)
			if err := clipboard.WriteAll(ident); err != nil {
				log.Printf("copy identity: %v", err)
				m.notice = "clipboard unavailable"
			} else {
				m.notice = "identity copied"
			}
		}
		return m, nil

	case "ctrl+r":
		m.showReview = true
		return m, nil

	case "?":
		m.showHelp = true
		return m, nil
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(tabbar.View(m.st.Tab) + "\n\n")

	switch {
	case m.showHelp:
		b.WriteString(m.help.View(m.st.Tab))
	case m.showReview:
		b.WriteString(diffview.View(summarize(m.baseline), summarize(m.st)))
	default:
		b.WriteString(m.viewBody())
	}

	b.WriteString("\n" + footer.View(footer.For(m.st.Tab), state.SaveDisabled(m.st)) + "\n")
	b.WriteString(m.status.View(m.st, m.notice) + "\n")
	return zone.Scan(b.String())
}

// viewBody matches the tab exhaustively; an out-of-range tab is a
// programming error, not a recoverable condition.
func (m model) viewBody() string {
	switch m.st.Tab {
	case state.Accounts:
		return accountstab.Render(accountstab.Props{Accounts: m.accts})
	case state.Integrations:
		return integrations.Render(integrations.Props{
			Focus:          m.focus,
			Editor:         m.st.Editor,
			Shell:          m.st.Shell,
			Editors:        m.st.Editors,
			Shells:         m.st.Shells,
			MergeNameField: m.mergeNameInput.View(),
			MergeCmdField:  m.mergeCmdInput.View(),
		})
	case state.Git:
		return gittab.Render(gittab.Props{
			NameField:   m.nameInput.View(),
			EmailField:  m.emailInput.View(),
			NameMessage: m.st.NameMessage,
		})
	case state.Appearance:
		return appearance.Render(appearance.Props{
			Focus:      m.focus,
			Theme:      m.st.Theme,
			AutoSwitch: m.st.ThemeAutoSwitch,
		})
	case state.Advanced:
		return advanced.Render(advanced.Props{
			Focus:              m.focus,
			StatsOptOut:        m.st.StatsOptOut,
			ConfirmRepoRemoval: m.st.ConfirmRepositoryRemoval,
			ConfirmDiscard:     m.st.ConfirmDiscardChanges,
			ConfirmForcePush:   m.st.ConfirmForcePush,
			Strategy:           m.st.Strategy,
		})
	default:
		panic("unknown preferences tab " + m.st.Tab.String())
	}
}

func (m model) dismiss() (tea.Model, tea.Cmd) {
	if m.opts.OnDismissed != nil {
		m.opts.OnDismissed()
	}
	return m, tea.Quit
}

func (m model) selectTab(t state.Tab) model {
	m.st = state.SelectTab(m.st, t)
	m.focus = 0
	m.notice = ""
	m.syncFocus()
	return m
}

func nextTab(cur state.Tab, delta int) state.Tab {
	for i, t := range state.Tabs {
		if t == cur {
			n := (i + delta + len(state.Tabs)) % len(state.Tabs)
			return state.Tabs[n]
		}
	}
	return state.Accounts
}

func focusables(t state.Tab) int {
	switch t {
	case state.Accounts:
		return 0
	case state.Integrations:
		return integrations.FocusCount
	case state.Git:
		return gitFocusCount
	case state.Appearance:
		return appearance.FocusCount
	case state.Advanced:
		return advanced.FocusCount
	default:
		panic("unknown preferences tab " + t.String())
	}
}

func (m model) moveFocus(delta int) model {
	count := focusables(m.st.Tab)
	if count == 0 {
		return m
	}
	m.focus += delta
	if m.focus < 0 {
		m.focus = 0
	}
	if m.focus >= count {
		m.focus = count - 1
	}
	m.syncFocus()
	return m
}

// syncFocus keeps exactly the text input matching the focused row active.
func (m *model) syncFocus() {
	m.nameInput.Blur()
	m.emailInput.Blur()
	m.mergeNameInput.Blur()
	m.mergeCmdInput.Blur()
	switch m.st.Tab {
	case state.Git:
		if m.focus == gitFocusName {
			m.nameInput.Focus()
		} else {
			m.emailInput.Focus()
		}
	case state.Integrations:
		switch m.focus {
		case integrations.FocusMergeName:
			m.mergeNameInput.Focus()
		case integrations.FocusMergeCmd:
			m.mergeCmdInput.Focus()
		}
	}
}

func (m *model) focusedInput() *textinput.Model {
	switch {
	case m.nameInput.Focused():
		return &m.nameInput
	case m.emailInput.Focused():
		return &m.emailInput
	case m.mergeNameInput.Focused():
		return &m.mergeNameInput
	case m.mergeCmdInput.Focused():
		return &m.mergeCmdInput
	}
	return nil
}

// refreshFromInputs reduces the current input values into the state so the
// name validity message tracks every keystroke.
func (m model) refreshFromInputs() model {
	m.st = state.SetName(m.st, m.nameInput.Value())
	m.st = state.SetEmail(m.st, m.emailInput.Value())
	m.st = state.SetMergeTool(m.st, m.mergeNameInput.Value())
	m.st = state.SetMergeToolCommand(m.st, m.mergeCmdInput.Value())
	return m
}

// selectorFocused reports whether the focused row cycles values with
// left/right rather than editing text.
func (m model) selectorFocused() bool {
	switch m.st.Tab {
	case state.Integrations:
		return m.focus == integrations.FocusEditor || m.focus == integrations.FocusShell
	case state.Appearance:
		return m.focus == appearance.FocusTheme
	case state.Advanced:
		return m.focus == advanced.FocusStrategy
	default:
		return false
	}
}

func (m model) cycleSelector(delta int) model {
	switch m.st.Tab {
	case state.Integrations:
		if m.focus == integrations.FocusEditor {
			options := append([]string{""}, m.st.Editors...)
			m.st = state.SetEditor(m.st, cycle(options, m.st.Editor, delta))
		} else if m.focus == integrations.FocusShell {
			if len(m.st.Shells) > 0 {
				m.st = state.SetShell(m.st, cycle(m.st.Shells, m.st.Shell, delta))
			}
		}
	case state.Appearance:
		if m.focus == appearance.FocusTheme {
			m.st = state.SetTheme(m.st, cycle(appearance.Themes, m.st.Theme, delta))
			// Appearance has no footer; theme changes apply immediately.
			report(m.opts.Dispatcher.SetTheme(m.st.Theme), "theme")
		}
	case state.Advanced:
		if m.focus == advanced.FocusStrategy {
			cur := string(m.st.Strategy)
			options := make([]string, len(settings.Strategies))
			for i, s := range settings.Strategies {
				options[i] = string(s)
			}
			m.st = state.SetStrategy(m.st, settings.Strategy(cycle(options, cur, delta)))
		}
	}
	return m
}

func (m model) toggleFocused() model {
	switch m.st.Tab {
	case state.Appearance:
		if m.focus == appearance.FocusAutoSwitch {
			m.st = state.ToggleThemeAutoSwitch(m.st)
			report(m.opts.Dispatcher.SetThemeAutoSwitch(m.st.ThemeAutoSwitch), "theme auto-switch")
		}
	case state.Advanced:
		switch m.focus {
		case advanced.FocusStatsOptOut:
			m.st = state.ToggleStatsOptOut(m.st)
		case advanced.FocusConfirmRepoRemoval:
			m.st = state.ToggleConfirmRepositoryRemoval(m.st)
		case advanced.FocusConfirmDiscard:
			m.st = state.ToggleConfirmDiscardChanges(m.st)
		case advanced.FocusConfirmForcePush:
			m.st = state.ToggleConfirmForcePush(m.st)
		}
	}
	return m
}

func cycle(options []string, cur string, delta int) string {
	if len(options) == 0 {
		return cur
	}
	idx := 0
	for i, o := range options {
		if o == cur {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(options)) % len(options)
	return options[idx]
}

// globalKey lists the keys handled by the dialog even while a text field
// has focus. Everything else is typing.
func globalKey(k string) bool {
	switch k {
	case "tab", "shift+tab", "up", "down", "enter", "esc", "ctrl+c", "ctrl+r", "ctrl+y":
		return true
	}
	return false
}

// summarize renders the save-relevant state as one line per setting; the
// review overlay diffs two of these.
func summarize(st state.State) string {
	onOff := func(b bool) string {
		if b {
			return "on"
		}
		return "off"
	}
	editor := st.Editor
	if editor == "" {
		editor = "none"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "user.name = %s\n", st.CommitterName)
	fmt.Fprintf(&b, "user.email = %s\n", st.CommitterEmail)
	fmt.Fprintf(&b, "external editor = %s\n", editor)
	fmt.Fprintf(&b, "shell = %s\n", st.Shell)
	fmt.Fprintf(&b, "merge.tool = %s\n", st.MergeToolName)
	fmt.Fprintf(&b, "merge tool command = %s\n", st.MergeToolCommand)
	fmt.Fprintf(&b, "usage reporting opt-out = %s\n", onOff(st.StatsOptOut))
	fmt.Fprintf(&b, "confirm repository removal = %s\n", onOff(st.ConfirmRepositoryRemoval))
	fmt.Fprintf(&b, "confirm discard changes = %s\n", onOff(st.ConfirmDiscardChanges))
	fmt.Fprintf(&b, "confirm force push = %s\n", onOff(st.ConfirmForcePush))
	fmt.Fprintf(&b, "uncommitted changes = %s\n", st.Strategy.Label())
	fmt.Fprintf(&b, "theme = %s\n", st.Theme)
	return b.String()
}
