package settings

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "settings.yml"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s)
	assert.True(t, s.ConfirmRepositoryRemoval)
	assert.Equal(t, StrategyAsk, s.UncommittedChangesStrategy)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yml")
	want := Settings{
		Theme:                      "dark",
		ThemeAutoSwitch:            true,
		StatsOptOut:                true,
		ConfirmRepositoryRemoval:   false,
		ConfirmDiscardChanges:      true,
		ConfirmForcePush:           false,
		UncommittedChangesStrategy: StrategyMove,
		ExternalEditor:             "Visual Studio Code",
		Shell:                      "zsh",
	}
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFileDispatcherPersistsEachChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yml")
	d := NewFileDispatcher(path, Defaults())

	require.NoError(t, d.SetStatsOptOut(true))
	require.NoError(t, d.SetConfirmForcePush(false))
	require.NoError(t, d.SetShell("fish"))
	require.NoError(t, d.SetUncommittedChangesStrategy(StrategyStash))

	got, err := Load(path)
	require.NoError(t, err)
	assert.True(t, got.StatsOptOut)
	assert.False(t, got.ConfirmForcePush)
	assert.Equal(t, "fish", got.Shell)
	assert.Equal(t, StrategyStash, got.UncommittedChangesStrategy)
	// Untouched settings keep their defaults.
	assert.True(t, got.ConfirmRepositoryRemoval)
}

func TestStrategyLabels(t *testing.T) {
	for _, s := range Strategies {
		assert.NotEmpty(t, s.Label())
	}
}
