package state

import (
	"fmt"
	"strings"

	"gitprefs/internal/settings"
)

// Tab identifies one pane of the preferences dialog. The set is closed;
// rendering code matches exhaustively and panics on anything else.
type Tab int

const (
	Accounts Tab = iota
	Integrations
	Git
	Appearance
	Advanced
)

// Tabs lists every pane in display order.
var Tabs = []Tab{Accounts, Integrations, Git, Appearance, Advanced}

func (t Tab) String() string {
	switch t {
	case Accounts:
		return "Accounts"
	case Integrations:
		return "Integrations"
	case Git:
		return "Git"
	case Appearance:
		return "Appearance"
	case Advanced:
		return "Advanced"
	default:
		panic(fmt.Sprintf("unknown preferences tab %d", int(t)))
	}
}

// ParseTab maps a tab name (as accepted on the command line) to its value.
// Matching ignores case so "--tab git" works.
func ParseTab(name string) (Tab, error) {
	for _, t := range Tabs {
		if strings.EqualFold(t.String(), name) {
			return t, nil
		}
	}
	return Accounts, fmt.Errorf("unknown tab %q", name)
}

// LoadResult carries everything the one-shot initial load fetches. It is
// committed into State atomically by ApplyLoaded.
type LoadResult struct {
	CommitterName    string
	CommitterEmail   string
	Editors          []string
	Shells           []string
	MergeToolName    string
	MergeToolCommand string
}

// State is the dialog's editable state. It lives for one dialog session:
// seeded from the host's current settings, populated once by the load,
// mutated only through the reducers in this package, and discarded on
// dismissal.
type State struct {
	Tab    Tab
	Loaded bool

	CommitterName  string
	CommitterEmail string
	// NameMessage is the inline validation message; non-empty disables save.
	NameMessage string

	Editor           string // "" when no external editor is selected
	Shell            string
	MergeToolName    string
	MergeToolCommand string

	StatsOptOut              bool
	ConfirmRepositoryRemoval bool
	ConfirmDiscardChanges    bool
	ConfirmForcePush         bool
	Strategy                 settings.Strategy

	Theme           string
	ThemeAutoSwitch bool

	Editors []string
	Shells  []string
}

// Initial builds the pre-load state: the caller-provided tab and the host's
// currently persisted settings, empty option lists.
func Initial(tab Tab, cur settings.Settings) State {
	strategy := cur.UncommittedChangesStrategy
	if strategy == "" {
		strategy = settings.StrategyAsk
	}
	return State{
		Tab:                      tab,
		Editor:                   cur.ExternalEditor,
		Shell:                    cur.Shell,
		StatsOptOut:              cur.StatsOptOut,
		ConfirmRepositoryRemoval: cur.ConfirmRepositoryRemoval,
		ConfirmDiscardChanges:    cur.ConfirmDiscardChanges,
		ConfirmForcePush:         cur.ConfirmForcePush,
		Strategy:                 strategy,
		Theme:                    cur.Theme,
		ThemeAutoSwitch:          cur.ThemeAutoSwitch,
	}
}
