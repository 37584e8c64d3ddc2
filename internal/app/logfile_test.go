package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogDirXDGEnvOverride(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_STATE_HOME", tmp)

	dir, err := logDir()
	if err != nil {
		t.Fatalf("logDir returned error: %v", err)
	}
	want := filepath.Join(tmp, "valentine")
	if dir != want {
		t.Errorf("dir = %q; want %q", dir, want)
	}
}

func TestLogDirDefaultFallback(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "") // force the fallback path

	dir, err := logDir()
	if err != nil {
		t.Skip("skipping: no user home directory available in test environment")
	}
	suffix := filepath.Join(".local", "state", "valentine")
	if !strings.HasSuffix(dir, suffix) {
		t.Errorf("dir %q does not end with %q", dir, suffix)
	}
}

func TestOpenLogDefaultPath(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_STATE_HOME", tmp)

	logger, f, err := OpenLog("")
	if err != nil {
		t.Fatalf("OpenLog: %v", err)
	}
	logger.Warn("autoplay prevented", "error", "blocked")
	f.Close()

	data, err := os.ReadFile(filepath.Join(tmp, "valentine", "valentine.log"))
	if err != nil {
		t.Fatalf("log file not created: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "autoplay prevented") || !strings.Contains(content, "error=blocked") {
		t.Errorf("log file = %q", content)
	}
}

func TestOpenLogAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "v.log")
	for i := range 3 {
		logger, f, err := OpenLog(path)
		if err != nil {
			t.Fatalf("OpenLog #%d: %v", i, err)
		}
		logger.Info("session", "n", i)
		f.Close()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 3 {
		t.Errorf("expected 3 log lines, got %d", len(lines))
	}
}
