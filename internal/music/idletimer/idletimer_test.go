package idletimer

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestFireAfterDelay(t *testing.T) {
	c := New()
	fired := make(chan struct{})

	c.Arm("g1", 10*time.Millisecond, func() { close(fired) })

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("timer never fired")
	}
	if c.Armed("g1") {
		t.Fatal("timer still registered after firing")
	}
}

func TestCancelBeforeFire(t *testing.T) {
	c := New()
	var fired atomic.Bool

	c.Arm("g1", 20*time.Millisecond, func() { fired.Store(true) })
	if !c.Cancel("g1") {
		t.Fatal("Cancel reported no timer armed")
	}

	time.Sleep(60 * time.Millisecond)
	if fired.Load() {
		t.Fatal("cancelled timer fired anyway")
	}
}

func TestCancelIsIdempotent(t *testing.T) {
	c := New()
	if c.Cancel("g1") {
		t.Fatal("Cancel on never-armed guild reported a disarm")
	}

	c.Arm("g1", 10*time.Millisecond, func() {})
	c.Cancel("g1")
	if c.Cancel("g1") {
		t.Fatal("second Cancel reported a disarm")
	}
}

func TestArmReplacesNotStacks(t *testing.T) {
	c := New()
	var firstFired, secondFired atomic.Bool

	c.Arm("g1", 20*time.Millisecond, func() { firstFired.Store(true) })
	c.Arm("g1", 20*time.Millisecond, func() { secondFired.Store(true) })

	time.Sleep(80 * time.Millisecond)
	if firstFired.Load() {
		t.Fatal("replaced timer fired")
	}
	if !secondFired.Load() {
		t.Fatal("replacement timer never fired")
	}
}

func TestGuildsAreIndependent(t *testing.T) {
	c := New()
	var g2Fired atomic.Bool

	c.Arm("g1", 10*time.Millisecond, func() {})
	c.Arm("g2", 10*time.Millisecond, func() { g2Fired.Store(true) })
	c.Cancel("g1")

	time.Sleep(60 * time.Millisecond)
	if !g2Fired.Load() {
		t.Fatal("cancelling g1 disarmed g2")
	}
}

// Exactly one of {fire effect, cancel} must win, never both and never neither.
func TestCancelFireRace(t *testing.T) {
	for i := 0; i < 200; i++ {
		c := New()
		var fires atomic.Int32

		c.Arm("g1", time.Millisecond, func() { fires.Add(1) })

		var wg sync.WaitGroup
		wg.Add(1)
		cancelled := false
		go func() {
			defer wg.Done()
			time.Sleep(time.Millisecond)
			cancelled = c.Cancel("g1")
		}()
		wg.Wait()

		// Give a fire that won the race time to run its effect.
		time.Sleep(5 * time.Millisecond)

		got := fires.Load()
		if cancelled && got != 0 {
			t.Fatalf("iteration %d: both cancel and fire took effect", i)
		}
		if !cancelled && got != 1 {
			t.Fatalf("iteration %d: neither cancel nor fire took effect (fires=%d)", i, got)
		}
	}
}

func TestFireRunsExactlyOnce(t *testing.T) {
	c := New()
	var fires atomic.Int32

	c.Arm("g1", time.Millisecond, func() { fires.Add(1) })
	time.Sleep(30 * time.Millisecond)

	// A stale Cancel after the fire must be a harmless no-op.
	if c.Cancel("g1") {
		t.Fatal("Cancel after fire reported a disarm")
	}
	if got := fires.Load(); got != 1 {
		t.Fatalf("fire ran %d times, want 1", got)
	}
}
