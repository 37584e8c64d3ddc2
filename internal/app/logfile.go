package app

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// OpenLog opens path for appending, creating its directory, and returns a
// logger writing to it. An empty path selects DefaultLogPath. The caller
// closes the returned file.
func OpenLog(path string) (*slog.Logger, *os.File, error) {
	if path == "" {
		var err error
		if path, err = DefaultLogPath(); err != nil {
			return nil, nil, err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, nil)), f, nil
}

// DefaultLogPath returns valentine.log in the state directory.
func DefaultLogPath() (string, error) {
	dir, err := logDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "valentine.log"), nil
}

// logDir returns the directory where the log is stored.
// Follows XDG Base Directory spec: $XDG_STATE_HOME/valentine,
// defaulting to ~/.local/state/valentine.
func logDir() (string, error) {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "valentine"), nil
}
