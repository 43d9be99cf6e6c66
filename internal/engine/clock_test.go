package engine

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestFrameClockDeliversPositiveDeltas(t *testing.T) {
	c := newFrameClock(200)
	var ticks atomic.Int64
	var badDt atomic.Bool

	go c.run(func(dt float64) {
		if dt <= 0 {
			badDt.Store(true)
		}
		ticks.Add(1)
	})

	time.Sleep(100 * time.Millisecond)
	c.stop()

	if ticks.Load() == 0 {
		t.Fatal("expected at least one tick")
	}
	if badDt.Load() {
		t.Fatal("expected every dt to be positive")
	}
}

func TestFrameClockStopsDelivering(t *testing.T) {
	c := newFrameClock(200)
	var ticks atomic.Int64
	go c.run(func(float64) { ticks.Add(1) })

	time.Sleep(50 * time.Millisecond)
	c.stop()
	// One tick may already be in flight when stop closes the channel.
	time.Sleep(20 * time.Millisecond)
	after := ticks.Load()

	time.Sleep(60 * time.Millisecond)
	if got := ticks.Load(); got != after {
		t.Fatalf("expected no ticks after stop, count went %d -> %d", after, got)
	}
}

func TestFrameClockStopIsIdempotent(t *testing.T) {
	c := newFrameClock(60)
	c.stop()
	c.stop()
}
