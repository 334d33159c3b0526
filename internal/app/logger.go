package app

import (
	"io"
	"log"
	"os"
	"path/filepath"
)

// configureLogger opens the application log at path. The console owns the
// terminal, so when the file cannot be opened diagnostics are discarded.
func configureLogger(path string) (*log.Logger, func()) {
	const flags = log.LstdFlags | log.Lmicroseconds

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return log.New(io.Discard, "", flags), func() {}
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return log.New(io.Discard, "", flags), func() {}
	}

	return log.New(f, "", flags), func() {
		_ = f.Close()
	}
}
