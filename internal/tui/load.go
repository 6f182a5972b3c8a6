package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"gitprefs/internal/accounts"
	"gitprefs/internal/discovery"
	"gitprefs/internal/tui/state"
)

type loadedMsg struct {
	res   state.LoadResult
	accts []accounts.Account
}

type loadFailedMsg struct{ err error }

// loadCmd performs the one-shot initial load: committer identity from the
// git config with account fallback, then a concurrent fetch of editors,
// shells, and the merge tool configuration. If any part fails nothing is
// committed; the dialog keeps showing the caller-provided values.
func loadCmd(opts Options) tea.Cmd {
	return func() tea.Msg {
		name := opts.Config.Get("user.name")
		email := opts.Config.Get("user.email")

		accts, err := opts.Accounts.List()
		if err != nil {
			return loadFailedMsg{err}
		}
		if name == "" || email == "" {
			if primary := accounts.Primary(accts); primary != nil {
				if name == "" {
					name = primary.Login
				}
				if email == "" {
					email = accounts.PreferredEmail(*primary)
				}
			}
		}

		var res state.LoadResult
		var g errgroup.Group
		g.Go(func() error {
			res.Editors = discovery.Editors(opts.LookPath)
			return nil
		})
		g.Go(func() error {
			res.Shells = discovery.Shells(opts.LookPath)
			return nil
		})
		g.Go(func() error {
			res.MergeToolName, res.MergeToolCommand = opts.Config.ReadMergeTool()
			return nil
		})
		if err := g.Wait(); err != nil {
			return loadFailedMsg{err}
		}

		res.CommitterName = name
		res.CommitterEmail = email
		return loadedMsg{res: res, accts: accts}
	}
}
