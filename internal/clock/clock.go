// Package clock schedules the page's delayed actions. Every callback runs on
// the page's event loop, never concurrently with another callback.
package clock

import (
	"sync"
	"time"
)

// Scheduler runs fn once after d has elapsed.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func())
	Now() time.Time
}

// Step is one action of a Sequence, run At after the sequence starts.
type Step struct {
	At time.Duration
	Do func()
}

// Sequence is an ordered list of timed steps.
type Sequence []Step

// Run schedules every step relative to now. Steps at offset zero run
// immediately, before Run returns.
func (s Sequence) Run(sch Scheduler) {
	for _, st := range s {
		if st.At <= 0 {
			st.Do()
			continue
		}
		sch.AfterFunc(st.At, st.Do)
	}
}

// Loop is a Scheduler backed by real timers. Expired timers hand their
// callback to post, which must run it on the event loop.
type Loop struct {
	post func(func())

	mu      sync.Mutex
	timers  map[*time.Timer]struct{}
	stopped bool
}

// NewLoop creates a Loop that delivers callbacks through post.
func NewLoop(post func(func())) *Loop {
	return &Loop{post: post, timers: make(map[*time.Timer]struct{})}
}

// AfterFunc implements Scheduler.
func (l *Loop) AfterFunc(d time.Duration, fn func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.stopped {
		return
	}
	var t *time.Timer
	t = time.AfterFunc(d, func() {
		l.mu.Lock()
		delete(l.timers, t)
		stopped := l.stopped
		l.mu.Unlock()
		if !stopped {
			l.post(fn)
		}
	})
	l.timers[t] = struct{}{}
}

// Now implements Scheduler.
func (l *Loop) Now() time.Time { return time.Now() }

// Stop cancels every pending timer. Used when the session ends; the page
// itself never cancels a timer.
func (l *Loop) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stopped = true
	for t := range l.timers {
		t.Stop()
	}
	l.timers = nil
}
