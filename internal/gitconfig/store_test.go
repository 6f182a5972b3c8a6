package gitconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempStore(t *testing.T, contents string) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gitconfig")
	if contents != "" {
		require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	}
	s, err := Open(path)
	require.NoError(t, err)
	return s
}

func TestOpenMissingFileIsEmptyStore(t *testing.T) {
	s := tempStore(t, "")
	assert.Equal(t, "", s.Get("user.name"))
}

func TestGetMissingKeyIsEmpty(t *testing.T) {
	s := tempStore(t, "[user]\n\tname = Jane Doe\n")
	assert.Equal(t, "Jane Doe", s.Get("user.name"))
	assert.Equal(t, "", s.Get("user.email"))
	assert.Equal(t, "", s.Get("core.editor"))
}

func TestSetAndSaveRoundTrip(t *testing.T) {
	s := tempStore(t, "")
	s.Set("user.name", "Jane Doe")
	s.Set("user.email", "jane@example.com")
	require.NoError(t, s.Save())

	reopened, err := Open(s.path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", reopened.Get("user.name"))
	assert.Equal(t, "jane@example.com", reopened.Get("user.email"))
}

func TestSubsectionKeys(t *testing.T) {
	s := tempStore(t, "[mergetool \"vimdiff\"]\n\tcmd = nvim -d\n")
	assert.Equal(t, "nvim -d", s.Get("mergetool.vimdiff.cmd"))

	s.Set("mergetool.meld.cmd", "meld $LOCAL $REMOTE")
	assert.Equal(t, "meld $LOCAL $REMOTE", s.Get("mergetool.meld.cmd"))
}

func TestReadMergeTool(t *testing.T) {
	s := tempStore(t, "[merge]\n\ttool = vimdiff\n[mergetool \"vimdiff\"]\n\tcmd = nvim -d\n")
	name, cmd := s.ReadMergeTool()
	assert.Equal(t, "vimdiff", name)
	assert.Equal(t, "nvim -d", cmd)
}

func TestReadMergeToolUnset(t *testing.T) {
	s := tempStore(t, "")
	name, cmd := s.ReadMergeTool()
	assert.Empty(t, name)
	assert.Empty(t, cmd)
}

func TestWriteMergeToolNameOnly(t *testing.T) {
	s := tempStore(t, "")
	require.NoError(t, s.WriteMergeTool("vimdiff", ""))
	assert.Equal(t, "vimdiff", s.Get("merge.tool"))
	assert.Equal(t, "", s.Get("mergetool.vimdiff.cmd"))
}

func TestWriteMergeToolNameAndCommand(t *testing.T) {
	s := tempStore(t, "")
	require.NoError(t, s.WriteMergeTool("meld", "meld $LOCAL $BASE $REMOTE"))
	assert.Equal(t, "meld", s.Get("merge.tool"))
	assert.Equal(t, "meld $LOCAL $BASE $REMOTE", s.Get("mergetool.meld.cmd"))
}

func TestWriteMergeToolNoName(t *testing.T) {
	s := tempStore(t, "")
	require.NoError(t, s.WriteMergeTool("", "meld $LOCAL $REMOTE"))
	assert.Equal(t, "", s.Get("merge.tool"))
	assert.Equal(t, "", s.Get("mergetool.meld.cmd"))
}

func TestWriteMergeToolRejectsUnparseableCommand(t *testing.T) {
	s := tempStore(t, "")
	err := s.WriteMergeTool("custom", "broken 'quote")
	require.Error(t, err)
	// The name was still recorded; only the command key is withheld.
	assert.Equal(t, "custom", s.Get("merge.tool"))
	assert.Equal(t, "", s.Get("mergetool.custom.cmd"))
}
