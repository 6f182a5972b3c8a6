// Package gitconfig reads and writes the user's global git configuration.
// Git config files are ini syntax, so the store works directly on the file
// rather than shelling out to the git binary.
package gitconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	shellquote "github.com/kballard/go-shellquote"
	"gopkg.in/ini.v1"
)

// Store is an in-memory view of one git config file. Set only mutates the
// view; Save flushes it back to disk.
type Store struct {
	path string
	file *ini.File
}

// DefaultPath returns the location of the global git config (~/.gitconfig).
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".gitconfig"), nil
}

// Open loads the config file at path. A missing file is not an error; it
// yields an empty store that Save will create.
func Open(path string) (*Store, error) {
	f, err := ini.LoadSources(ini.LoadOptions{Loose: true}, path)
	if err != nil {
		return nil, fmt.Errorf("parse git config %s: %w", path, err)
	}
	return &Store{path: path, file: f}, nil
}

// Get returns the value for a dotted key like "user.name" or
// "mergetool.vimdiff.cmd". A missing key yields the empty string.
func (s *Store) Get(key string) string {
	section, name := splitKey(key)
	sec, err := s.file.GetSection(section)
	if err != nil || !sec.HasKey(name) {
		return ""
	}
	return sec.Key(name).String()
}

// Set records a value for a dotted key in the in-memory view.
func (s *Store) Set(key, value string) {
	section, name := splitKey(key)
	s.file.Section(section).Key(name).SetValue(value)
}

// Save writes the view back to the file the store was opened from.
func (s *Store) Save() error {
	if err := s.file.SaveTo(s.path); err != nil {
		return fmt.Errorf("write git config %s: %w", s.path, err)
	}
	return nil
}

// ReadMergeTool returns the configured merge tool name and, when a name is
// set, its invocation command. Both are empty when no tool is configured.
func (s *Store) ReadMergeTool() (name, cmd string) {
	name = s.Get("merge.tool")
	if name == "" {
		return "", ""
	}
	return name, s.Get("mergetool." + name + ".cmd")
}

// WriteMergeTool records the merge tool selection. The per-tool command key
// is only written when both a name and a command are present, and the
// command must tokenize as a shell invocation.
func (s *Store) WriteMergeTool(name, cmd string) error {
	if name == "" {
		return nil
	}
	s.Set("merge.tool", name)
	if cmd == "" {
		return nil
	}
	if _, err := shellquote.Split(cmd); err != nil {
		return fmt.Errorf("merge tool command %q: %w", cmd, err)
	}
	s.Set("mergetool."+name+".cmd", cmd)
	return nil
}

// splitKey maps a dotted git config key onto an ini section and key name.
// Three or more segments use git's subsection form: "mergetool.vimdiff.cmd"
// lives in the section [mergetool "vimdiff"] under the key "cmd".
func splitKey(key string) (section, name string) {
	parts := strings.Split(key, ".")
	switch len(parts) {
	case 1:
		return "", parts[0]
	case 2:
		return parts[0], parts[1]
	default:
		sub := strings.Join(parts[1:len(parts)-1], ".")
		return fmt.Sprintf("%s %q", parts[0], sub), parts[len(parts)-1]
	}
}
