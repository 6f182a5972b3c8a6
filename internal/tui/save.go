package tui

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"gitprefs/internal/tui/state"
)

type savedMsg struct{}

// saveCmd persists every edited value in sequence and then dismisses the
// dialog. Writes are best-effort: a failed write is logged and the sequence
// continues, so a partial failure leaves earlier settings persisted. The
// dismissal callback runs regardless.
func saveCmd(opts Options, st state.State) tea.Cmd {
	return func() tea.Msg {
		cfg := opts.Config
		cfg.Set("user.name", st.CommitterName)
		cfg.Set("user.email", st.CommitterEmail)
		report(cfg.Save(), "committer identity")

		d := opts.Dispatcher
		report(d.SetStatsOptOut(st.StatsOptOut), "stats opt-out")
		report(d.SetConfirmRepositoryRemoval(st.ConfirmRepositoryRemoval), "confirm repository removal")
		report(d.SetConfirmForcePush(st.ConfirmForcePush), "confirm force push")
		report(d.SetConfirmDiscardChanges(st.ConfirmDiscardChanges), "confirm discard changes")
		if st.Editor != "" {
			report(d.SetExternalEditor(st.Editor), "external editor")
		}
		report(d.SetShell(st.Shell), "shell")
		report(d.SetUncommittedChangesStrategy(st.Strategy), "uncommitted-changes strategy")

		if st.MergeToolName != "" {
			report(cfg.WriteMergeTool(st.MergeToolName, st.MergeToolCommand), "merge tool")
			report(cfg.Save(), "merge tool config")
		}

		if opts.OnDismissed != nil {
			opts.OnDismissed()
		}
		return savedMsg{}
	}
}

func report(err error, what string) {
	if err != nil {
		log.Printf("persist %s: %v", what, err)
	}
}
