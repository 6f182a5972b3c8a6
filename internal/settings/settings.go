// Package settings persists the application-level preferences that live
// outside the git config: theme, confirmation prompts, telemetry opt-out,
// and the selected editor/shell integrations.
package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Strategy governs how pending edits are handled when the user switches
// away from a branch with uncommitted changes.
type Strategy string

const (
	// StrategyAsk prompts every time. This is the default.
	StrategyAsk   Strategy = "ask"
	StrategyStash Strategy = "stash-on-current-branch"
	StrategyMove  Strategy = "move-to-new-branch"
)

// Strategies lists the selectable values in display order.
var Strategies = []Strategy{StrategyAsk, StrategyStash, StrategyMove}

// Label returns the human-readable form used in the Advanced tab.
func (s Strategy) Label() string {
	switch s {
	case StrategyAsk:
		return "Ask how to proceed"
	case StrategyStash:
		return "Stash on current branch"
	case StrategyMove:
		return "Bring changes to the new branch"
	default:
		return string(s)
	}
}

// Settings is the application preferences document.
type Settings struct {
	Theme                      string   `yaml:"theme"`
	ThemeAutoSwitch            bool     `yaml:"themeAutoSwitch"`
	StatsOptOut                bool     `yaml:"statsOptOut"`
	ConfirmRepositoryRemoval   bool     `yaml:"confirmRepositoryRemoval"`
	ConfirmDiscardChanges      bool     `yaml:"confirmDiscardChanges"`
	ConfirmForcePush           bool     `yaml:"confirmForcePush"`
	UncommittedChangesStrategy Strategy `yaml:"uncommittedChangesStrategy"`
	ExternalEditor             string   `yaml:"externalEditor"`
	Shell                      string   `yaml:"shell"`
}

// Defaults returns the settings used before the user ever saves: all
// confirmation prompts on, ask-to-stash strategy, system theme.
func Defaults() Settings {
	return Settings{
		Theme:                      "system",
		ConfirmRepositoryRemoval:   true,
		ConfirmDiscardChanges:      true,
		ConfirmForcePush:           true,
		UncommittedChangesStrategy: StrategyAsk,
	}
}

// DefaultPath returns the settings file location under the user config dir.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "gitprefs", "settings.yml"), nil
}

// Load reads the settings file. A missing file yields Defaults.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Defaults(), nil
		}
		return Settings{}, fmt.Errorf("read settings %s: %w", path, err)
	}
	s := Defaults()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parse settings %s: %w", path, err)
	}
	if s.UncommittedChangesStrategy == "" {
		s.UncommittedChangesStrategy = StrategyAsk
	}
	return s, nil
}

// Save writes the settings file, creating parent directories as needed.
func Save(path string, s Settings) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write settings %s: %w", path, err)
	}
	return nil
}
