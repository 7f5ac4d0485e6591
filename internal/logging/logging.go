// Package logging routes diagnostics to a file under the data directory.
// The terminal belongs to the TUI, so nothing may write to stdout or
// stderr while the program runs.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

const logFile = "soletrack.log"

// Setup points the global logrus logger at <dir>/soletrack.log. When the
// file cannot be opened, logging is discarded rather than corrupting the
// TUI. Returns a close function.
func Setup(dir string, verbose bool) func() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		logrus.SetOutput(io.Discard)
		return func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, logFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		logrus.SetOutput(io.Discard)
		return func() {}
	}
	logrus.SetOutput(f)
	return func() { _ = f.Close() }
}
