// Package logging routes debug output away from the terminal, which the
// full-screen dialog owns while it runs.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// Setup directs the stdlib logger to a file under the temp dir when debug
// is on, and discards output otherwise. It returns a close func.
func Setup(debug bool) (func(), error) {
	if !debug {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	path := filepath.Join(os.TempDir(), "gitprefs.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return func() { f.Close() }, nil
}

// Enabled reports whether debug logging was requested via the environment.
func Enabled() bool {
	return os.Getenv("GITPREFS_DEBUG") == "1"
}
