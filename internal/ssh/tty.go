// Package ssh adapts an SSH session to the terminal interface tcell draws on.
package ssh

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// SessionTTY implements tcell.Tty over a gliderlabs/ssh session, so each
// visitor gets a screen of their own.
type SessionTTY struct {
	session gossh.Session
	winCh   <-chan gossh.Window

	mu       sync.Mutex
	window   gossh.Window
	onResize func()
	watching bool
}

// NewSessionTTY wraps s. pty carries the initial window size; winCh
// delivers later resizes.
func NewSessionTTY(s gossh.Session, pty gossh.Pty, winCh <-chan gossh.Window) *SessionTTY {
	return &SessionTTY{session: s, window: pty.Window, winCh: winCh}
}

// Read reads the visitor's keystrokes and mouse reports.
func (t *SessionTTY) Read(b []byte) (int, error) { return t.session.Read(b) }

// Write sends screen updates to the visitor.
func (t *SessionTTY) Write(b []byte) (int, error) { return t.session.Write(b) }

// Close ends the session channel.
func (t *SessionTTY) Close() error { return t.session.Close() }

// Start, Stop and Drain have nothing to do: the channel is already open
// and the server handler owns its lifetime.
func (t *SessionTTY) Start() error { return nil }
func (t *SessionTTY) Stop() error  { return nil }
func (t *SessionTTY) Drain() error { return nil }

// WindowSize returns the last size reported by the client.
func (t *SessionTTY) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers cb for window changes. The first call starts a
// goroutine that follows the window-change channel until the session
// closes it; later calls only swap the callback.
func (t *SessionTTY) NotifyResize(cb func()) {
	t.mu.Lock()
	t.onResize = cb
	start := !t.watching && t.winCh != nil
	t.watching = t.watching || start
	t.mu.Unlock()

	if start {
		go t.watch()
	}
}

func (t *SessionTTY) watch() {
	for win := range t.winCh {
		t.mu.Lock()
		t.window = win
		cb := t.onResize
		t.mu.Unlock()
		if cb != nil {
			cb()
		}
	}
}
