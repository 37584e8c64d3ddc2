// valentine-server hosts the greeting over SSH. Every connection gets its
// own page, greeting the SSH user name. Build:
//
//	go build -o valentine-server ./cmd/server
//
// Usage:
//
//	./valentine-server [-port 2222] [-key server_host_key] [-config config.json]
//
// Then send your valentine:
//
//	ssh -p 2222 sam@<host>
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"

	"valentine/internal/app"
	"valentine/internal/audio"
	"valentine/internal/config"
	"valentine/internal/page"
	"valentine/internal/render"
	internalssh "valentine/internal/ssh"
)

// maxNameBytes caps the greeting name taken from the SSH user.
const maxNameBytes = 16

// defaultTerm is used when the client reports a terminal we do not trust.
const defaultTerm = "xterm-256color"

// allowedTerms lists the TERM values passed through to terminfo lookup.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"vt220":                 true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
}

func main() {
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (auto-generated if absent)")
	configFile := flag.String("config", "", "Path to the greeting's JSON config")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.Load(*configFile)
	if err != nil {
		logger.Error("load config", "error", err)
		os.Exit(1)
	}
	for _, w := range config.Validate(&cfg) {
		logger.Warn(w)
	}

	signer, err := loadOrCreateHostKey(*keyFile, logger)
	if err != nil {
		logger.Error("host key", "error", err)
		os.Exit(1)
	}

	h := &host{
		cfg:      cfg,
		pictures: render.NewPictures(configDir(*configFile)),
		log:      logger,
	}
	srv := &gossh.Server{
		Addr:    fmt.Sprintf(":%d", *port),
		Handler: h.handleSession,
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// No authentication: anyone with the address gets the greeting.
		HostSigners: []gossh.Signer{signer},
	}

	logger.Info("valentine SSH server listening", "port", *port)
	logger.Info("connect with", "command", fmt.Sprintf("ssh -p %d <name>@localhost", *port))
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("serve", "error", err)
		os.Exit(1)
	}
}

// host runs one greeting per SSH session.
type host struct {
	cfg      config.Config
	pictures *render.Pictures
	log      *slog.Logger
	sessions atomic.Int64
}

// handleSession is the gliderlabs SSH handler for one connection.
// It blocks for the duration of the greeting so the session stays open.
func (h *host) handleSession(s gossh.Session) {
	id := h.sessions.Add(1)
	logger := h.log.With("session", id, "remote", s.RemoteAddr().String())

	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "This greeting needs a terminal. Connect with: ssh -t -p 2222 <name>@<host>")
		return
	}

	term := defaultTerm
	for _, env := range s.Environ() {
		if v, ok := strings.CutPrefix(env, "TERM="); ok && allowedTerms[v] {
			term = v
			break
		}
	}
	if allowedTerms[pty.Term] {
		term = pty.Term
	}

	// Create a tcell screen backed by this SSH session.
	// TERM must be set in the process environment before NewTerminfoScreenFromTty.
	tty := internalssh.NewSessionTTY(s, pty, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		return
	}

	cfg := h.cfg
	if name := sanitizeName(s.User()); name != "" {
		cfg.ValentineName = name
	}
	logger.Info("greeting started", "name", cfg.ValentineName, "term", term)

	// Remote visitors hear nothing; the page falls back to its manual
	// music buttons.
	muted := func(func(func())) page.Audio { return &audio.Muted{} }
	app.New(screen, app.Options{
		Config:   cfg,
		Audio:    muted,
		Pictures: h.pictures,
		Logger:   logger,
	}).Run()
	logger.Info("greeting ended")
}

// termMu protects os.Setenv("TERM") around screen creation.
var termMu sync.Mutex

// sanitizeName drops control characters from an SSH user name and keeps
// at most maxNameBytes bytes without splitting a rune.
func sanitizeName(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsControl(r) || r == utf8.RuneError {
			continue
		}
		if b.Len()+utf8.RuneLen(r) > maxNameBytes {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// configDir is where relative picture paths in the config resolve.
func configDir(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Dir(path)
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string, logger *slog.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			logger.Info("loaded host key", "path", path)
			return signer, nil
		}
	}

	logger.Info("generating new ed25519 host key", "path", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	// Persist for next run (non-fatal if it fails).
	if pemBlock, err := xssh.MarshalPrivateKey(key, "valentine server"); err == nil {
		if err := os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0o600); err != nil {
			logger.Warn("could not save host key", "path", path, "error", err)
		}
	}
	return signer, nil
}
