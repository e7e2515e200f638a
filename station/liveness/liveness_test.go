package liveness

import (
	"context"
	"testing"
	"time"
)

func TestCheck(t *testing.T) {
	start := time.Unix(1000, 0)
	w := NewWatchdog(DefaultInterval, DefaultStale)
	w.started = start

	if s := w.Check(start.Add(time.Second)); s != Unknown {
		t.Errorf("expected unknown before the deadline, got %v", s)
	}
	if s := w.Check(start.Add(4 * time.Second)); s != Offline {
		t.Errorf("expected offline when never connected, got %v", s)
	}
	w.Seen(start.Add(5 * time.Second))
	if w.Status() != Online {
		t.Errorf("expected online right after data, got %v", w.Status())
	}
	if s := w.Check(start.Add(7 * time.Second)); s != Online {
		t.Errorf("expected online with fresh data, got %v", s)
	}
	if s := w.Check(start.Add(8*time.Second + time.Millisecond)); s != Offline {
		t.Errorf("expected offline with stale data, got %v", s)
	}
}

func TestRunReportsTransitions(t *testing.T) {
	base := time.Unix(0, 0)
	now := base.Add(10 * time.Second)
	w := NewWatchdog(time.Millisecond, DefaultStale)
	w.Now = func() time.Time { return now }
	w.started = base

	changes := make(chan Status, 4)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		w.Run(ctx, func(s Status) { changes <- s })
	}()

	select {
	case s := <-changes:
		if s != Offline {
			t.Errorf("expected offline, got %v", s)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watchdog never reported")
	}
	cancel()
	<-done
}

func TestStatusStrings(t *testing.T) {
	if Online.String() != "● Online" || Offline.String() != "● Offline" {
		t.Error("unexpected status labels")
	}
}
