// Package liveness decides whether the live feed is still delivering data.
package liveness

import (
	"context"
	"sync"
	"time"
)

type Status int

const (
	Unknown Status = iota
	Online
	Offline
)

func (s Status) String() string {
	switch s {
	case Online:
		return "● Online"
	case Offline:
		return "● Offline"
	default:
		return "● Connecting"
	}
}

const (
	DefaultInterval = 500 * time.Millisecond
	DefaultStale    = 3 * time.Second
)

// Watchdog marks the feed offline when no reading arrived for longer than Stale, or when nothing arrived at
// all within Stale of starting.
type Watchdog struct {
	Interval time.Duration
	Stale    time.Duration
	Now      func() time.Time

	mu       sync.Mutex
	started  time.Time
	lastSeen time.Time
	status   Status
}

func NewWatchdog(interval, stale time.Duration) *Watchdog {
	w := &Watchdog{
		Interval: interval,
		Stale:    stale,
		Now:      time.Now,
	}
	w.started = w.Now()
	return w
}

// Seen records that data arrived at t. Receiving data makes the feed online immediately.
func (w *Watchdog) Seen(t time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.lastSeen = t
	w.status = Online
}

func (w *Watchdog) Check(now time.Time) Status {
	w.mu.Lock()
	defer w.mu.Unlock()
	switch {
	case w.lastSeen.IsZero() && now.Sub(w.started) > w.Stale:
		w.status = Offline
	case !w.lastSeen.IsZero() && now.Sub(w.lastSeen) > w.Stale:
		w.status = Offline
	case !w.lastSeen.IsZero():
		w.status = Online
	}
	return w.status
}

func (w *Watchdog) Status() Status {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.status
}

// Run checks the feed every Interval until ctx is done, calling onChange whenever the status changes.
func (w *Watchdog) Run(ctx context.Context, onChange func(Status)) {
	t := time.NewTicker(w.Interval)
	defer t.Stop()
	last := w.Status()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s := w.Check(w.Now())
			if s != last {
				last = s
				if onChange != nil {
					onChange(s)
				}
			}
		}
	}
}
