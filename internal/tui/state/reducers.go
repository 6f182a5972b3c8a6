package state

import (
	"gitprefs/internal/identity"
	"gitprefs/internal/settings"
)

// SelectTab switches the active pane and returns a new state copy. Nothing
// blocks a tab switch; validation only gates the save action.
func SelectTab(s State, t Tab) State {
	s.Tab = t
	return s
}

// SetName records the committer name and recomputes the validity message
// synchronously.
func SetName(s State, name string) State {
	s.CommitterName = name
	s.NameMessage = identity.ValidateName(name)
	return s
}

// SetEmail records the committer email. Emails are not validated here; git
// accepts anything the user insists on.
func SetEmail(s State, email string) State {
	s.CommitterEmail = email
	return s
}

// SetEditor records the selected external editor ("" for none).
func SetEditor(s State, editor string) State {
	s.Editor = editor
	return s
}

// SetShell records the selected shell.
func SetShell(s State, shell string) State {
	s.Shell = shell
	return s
}

// SetMergeTool records the merge tool name.
func SetMergeTool(s State, name string) State {
	s.MergeToolName = name
	return s
}

// SetMergeToolCommand records the merge tool invocation template. It is
// only persisted when a tool name is also present.
func SetMergeToolCommand(s State, cmd string) State {
	s.MergeToolCommand = cmd
	return s
}

func ToggleStatsOptOut(s State) State {
	s.StatsOptOut = !s.StatsOptOut
	return s
}

func ToggleConfirmRepositoryRemoval(s State) State {
	s.ConfirmRepositoryRemoval = !s.ConfirmRepositoryRemoval
	return s
}

func ToggleConfirmDiscardChanges(s State) State {
	s.ConfirmDiscardChanges = !s.ConfirmDiscardChanges
	return s
}

func ToggleConfirmForcePush(s State) State {
	s.ConfirmForcePush = !s.ConfirmForcePush
	return s
}

// SetStrategy records the uncommitted-changes strategy.
func SetStrategy(s State, strategy settings.Strategy) State {
	s.Strategy = strategy
	return s
}

// SetTheme records the selected theme name.
func SetTheme(s State, theme string) State {
	s.Theme = theme
	return s
}

func ToggleThemeAutoSwitch(s State) State {
	s.ThemeAutoSwitch = !s.ThemeAutoSwitch
	return s
}

// ApplyLoaded commits the one-shot load result in a single update, so the
// view never observes a half-populated state. The committer name is
// validated as part of the commit.
func ApplyLoaded(s State, r LoadResult) State {
	s.CommitterName = r.CommitterName
	s.CommitterEmail = r.CommitterEmail
	s.NameMessage = identity.ValidateName(r.CommitterName)
	s.Editors = r.Editors
	s.Shells = r.Shells
	s.MergeToolName = r.MergeToolName
	s.MergeToolCommand = r.MergeToolCommand
	s.Loaded = true
	return s
}

// SaveDisabled reports whether the save action is blocked. It is blocked
// exactly when the name validity message is present.
func SaveDisabled(s State) bool {
	return s.NameMessage != ""
}
