// Copyright
// SPDX-License-Identifier: MIT
// gitprefs: terminal preferences dialog for git identity, integrations, and app settings
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"gitprefs/internal/accounts"
	"gitprefs/internal/gitconfig"
	"gitprefs/internal/logging"
	"gitprefs/internal/settings"
	"gitprefs/internal/tui"
	"gitprefs/internal/tui/state"
)

const Version = "0.3.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		tabName       string
		gitConfigPath string
		settingsPath  string
		accountsPath  string
	)
	cmd := &cobra.Command{
		Use:     "gitprefs",
		Short:   "Edit git identity, integrations, and application preferences",
		Version: Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			closeLog, err := logging.Setup(logging.Enabled())
			if err != nil {
				return err
			}
			defer closeLog()

			if gitConfigPath == "" {
				if gitConfigPath, err = gitconfig.DefaultPath(); err != nil {
					return err
				}
			}
			store, err := gitconfig.Open(gitConfigPath)
			if err != nil {
				return err
			}

			if settingsPath == "" {
				if settingsPath, err = settings.DefaultPath(); err != nil {
					return err
				}
			}
			cur, err := settings.Load(settingsPath)
			if err != nil {
				return err
			}

			if accountsPath == "" {
				// The host app keeps its session next to the settings.
				accountsPath = filepath.Join(filepath.Dir(settingsPath), "accounts.yml")
			}

			tab := state.Accounts
			if tabName != "" {
				if tab, err = state.ParseTab(tabName); err != nil {
					return err
				}
			}

			return tui.Run(tui.Options{
				Config:     store,
				Accounts:   accounts.FileProvider{Path: accountsPath},
				Dispatcher: settings.NewFileDispatcher(settingsPath, cur),
				Settings:   cur,
				InitialTab: tab,
			})
		},
	}
	cmd.Flags().StringVar(&tabName, "tab", "", "tab to open first (Accounts, Integrations, Git, Appearance, Advanced)")
	cmd.Flags().StringVar(&gitConfigPath, "gitconfig", "", "path to the global git config (default ~/.gitconfig)")
	cmd.Flags().StringVar(&settingsPath, "settings", "", "path to the application settings file")
	cmd.Flags().StringVar(&accountsPath, "accounts", "", "path to the session accounts file")
	return cmd
}
