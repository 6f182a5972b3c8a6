// Package discovery finds external editor and shell integrations available
// on the host. Lookup goes through the PATH; the probe function is
// injectable so tests run without any of the tools installed.
package discovery

import "os/exec"

// LookPathFunc resolves an executable name to a path, exec.LookPath-style.
type LookPathFunc func(name string) (string, error)

type candidate struct {
	name       string
	executable string
}

var editorCandidates = []candidate{
	{"Visual Studio Code", "code"},
	{"Neovim", "nvim"},
	{"Vim", "vim"},
	{"Emacs", "emacs"},
	{"Sublime Text", "subl"},
	{"Nano", "nano"},
	{"Helix", "hx"},
}

var shellCandidates = []candidate{
	{"bash", "bash"},
	{"zsh", "zsh"},
	{"fish", "fish"},
	{"PowerShell", "pwsh"},
	{"Nushell", "nu"},
}

// Editors returns the display names of the external editors found on PATH,
// in candidate order. A nil lookPath uses exec.LookPath.
func Editors(lookPath LookPathFunc) []string {
	return available(editorCandidates, lookPath)
}

// Shells returns the display names of the shells found on PATH.
func Shells(lookPath LookPathFunc) []string {
	return available(shellCandidates, lookPath)
}

func available(candidates []candidate, lookPath LookPathFunc) []string {
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	var found []string
	for _, c := range candidates {
		if _, err := lookPath(c.executable); err == nil {
			found = append(found, c.name)
		}
	}
	return found
}
