package store

import (
	"testing"
	"time"
)

func TestSweeperRemovesExpiredKeyInBackground(t *testing.T) {
	s := New()
	s.Set("tmp", "x")
	s.SetExpiry("tmp", 1)

	sw := NewSweeper(s, 20*time.Millisecond)
	sw.Start()
	defer sw.Stop()

	deadline := time.Now().Add(2 * time.Second)
	s.expireAt["tmp"] = time.Now().Add(-1 * time.Millisecond)

	for time.Now().Before(deadline) {
		if !s.Exists("tmp") {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}

	t.Fatalf("sweeper never collected the expired key")
}

func TestSweeperStopIsClean(t *testing.T) {
	s := New()
	sw := NewSweeper(s, 10*time.Millisecond)
	sw.Start()
	sw.Stop()
	// a second Stop would panic closing an already-closed channel; Stop
	// must be safe to call exactly once per Start, which this just exercises.
}
