package clock

import (
	"sort"
	"time"
)

// Fake is a manually advanced Scheduler for tests.
type Fake struct {
	now    time.Time
	seq    int
	timers []fakeTimer
}

type fakeTimer struct {
	due time.Time
	seq int
	fn  func()
}

// NewFake creates a Fake whose clock reads start.
func NewFake(start time.Time) *Fake {
	return &Fake{now: start}
}

// AfterFunc implements Scheduler.
func (f *Fake) AfterFunc(d time.Duration, fn func()) {
	f.seq++
	f.timers = append(f.timers, fakeTimer{due: f.now.Add(d), seq: f.seq, fn: fn})
}

// Now implements Scheduler.
func (f *Fake) Now() time.Time { return f.now }

// Pending returns the number of timers that have not fired yet.
func (f *Fake) Pending() int { return len(f.timers) }

// Advance moves the clock forward by d, firing due timers in order of due
// time and then scheduling order. Timers scheduled by a callback fire in
// the same call when they fall due within d.
func (f *Fake) Advance(d time.Duration) {
	target := f.now.Add(d)
	for {
		sort.SliceStable(f.timers, func(i, j int) bool {
			if f.timers[i].due.Equal(f.timers[j].due) {
				return f.timers[i].seq < f.timers[j].seq
			}
			return f.timers[i].due.Before(f.timers[j].due)
		})
		if len(f.timers) == 0 || f.timers[0].due.After(target) {
			break
		}
		next := f.timers[0]
		f.timers = f.timers[1:]
		f.now = next.due
		next.fn()
	}
	f.now = target
}
