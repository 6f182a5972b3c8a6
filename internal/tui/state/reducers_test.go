package state

import (
	"testing"

	"gitprefs/internal/identity"
	"gitprefs/internal/settings"
)

func TestSelectTabReachesEveryTab(t *testing.T) {
	s := Initial(Accounts, settings.Defaults())
	for _, tab := range Tabs {
		s = SelectTab(s, tab)
		if s.Tab != tab {
			t.Fatalf("expected tab %v, got %v", tab, s.Tab)
		}
	}
}

func TestInitialDefaultsToCallerTab(t *testing.T) {
	s := Initial(Git, settings.Defaults())
	if s.Tab != Git {
		t.Fatalf("expected Git tab, got %v", s.Tab)
	}
	if s.Loaded {
		t.Fatalf("state must not be marked loaded before the load commits")
	}
}

func TestInitialSeedsFromSettings(t *testing.T) {
	cur := settings.Defaults()
	cur.ExternalEditor = "Vim"
	cur.Shell = "zsh"
	cur.StatsOptOut = true
	s := Initial(Accounts, cur)
	if s.Editor != "Vim" || s.Shell != "zsh" || !s.StatsOptOut {
		t.Fatalf("state not seeded from settings: %+v", s)
	}
	if s.Strategy != settings.StrategyAsk {
		t.Fatalf("expected default strategy, got %v", s.Strategy)
	}
}

func TestSetNameRecomputesValidity(t *testing.T) {
	s := Initial(Git, settings.Defaults())

	s = SetName(s, "###")
	if s.NameMessage != identity.InvalidNameMessage {
		t.Fatalf("expected invalid-name message, got %q", s.NameMessage)
	}
	if !SaveDisabled(s) {
		t.Fatalf("save must be disabled while the name is invalid")
	}

	s = SetName(s, "Jane Doe")
	if s.NameMessage != "" {
		t.Fatalf("expected message cleared, got %q", s.NameMessage)
	}
	if SaveDisabled(s) {
		t.Fatalf("save must be enabled once the name is corrected")
	}
}

func TestSaveDisabledIffMessagePresent(t *testing.T) {
	s := Initial(Git, settings.Defaults())
	if SaveDisabled(s) {
		t.Fatalf("fresh state must allow save")
	}
	s.NameMessage = identity.InvalidNameMessage
	if !SaveDisabled(s) {
		t.Fatalf("save must be disabled when a message is set")
	}
}

func TestApplyLoadedCommitsAtomically(t *testing.T) {
	s := Initial(Accounts, settings.Defaults())
	s = ApplyLoaded(s, LoadResult{
		CommitterName:    "Jane Doe",
		CommitterEmail:   "jane@example.com",
		Editors:          []string{"Vim"},
		Shells:           []string{"bash", "zsh"},
		MergeToolName:    "vimdiff",
		MergeToolCommand: "nvim -d",
	})
	if !s.Loaded {
		t.Fatalf("expected Loaded after ApplyLoaded")
	}
	if s.CommitterName != "Jane Doe" || s.CommitterEmail != "jane@example.com" {
		t.Fatalf("identity not committed: %+v", s)
	}
	if len(s.Editors) != 1 || len(s.Shells) != 2 {
		t.Fatalf("option lists not committed: %+v", s)
	}
	if s.MergeToolName != "vimdiff" || s.MergeToolCommand != "nvim -d" {
		t.Fatalf("merge tool not committed: %+v", s)
	}
}

func TestApplyLoadedValidatesName(t *testing.T) {
	s := Initial(Accounts, settings.Defaults())
	s = ApplyLoaded(s, LoadResult{CommitterName: "<>"})
	if s.NameMessage == "" {
		t.Fatalf("loaded invalid name must surface the validity message")
	}
}

func TestToggles(t *testing.T) {
	s := Initial(Advanced, settings.Defaults())

	s = ToggleStatsOptOut(s)
	if !s.StatsOptOut {
		t.Fatalf("expected StatsOptOut toggled on")
	}
	s = ToggleConfirmRepositoryRemoval(s)
	if s.ConfirmRepositoryRemoval {
		t.Fatalf("expected ConfirmRepositoryRemoval toggled off")
	}
	s = ToggleConfirmDiscardChanges(s)
	if s.ConfirmDiscardChanges {
		t.Fatalf("expected ConfirmDiscardChanges toggled off")
	}
	s = ToggleConfirmForcePush(s)
	if s.ConfirmForcePush {
		t.Fatalf("expected ConfirmForcePush toggled off")
	}
}

func TestParseTab(t *testing.T) {
	for _, tab := range Tabs {
		got, err := ParseTab(tab.String())
		if err != nil || got != tab {
			t.Fatalf("round trip failed for %v: %v %v", tab, got, err)
		}
	}
	for _, name := range []string{"git", "GIT", "appearance"} {
		if _, err := ParseTab(name); err != nil {
			t.Fatalf("expected %q to parse regardless of case: %v", name, err)
		}
	}
	if _, err := ParseTab("Nonsense"); err == nil {
		t.Fatalf("expected error for unknown tab name")
	}
}

func TestUnknownTabStringPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for out-of-range tab")
		}
	}()
	_ = Tab(99).String()
}
