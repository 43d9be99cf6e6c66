package engine

import (
	"sync"
	"time"
)

// frameClock invokes a tick callback at a fixed cadence, handing each
// invocation the elapsed seconds since the previous one. Timestamps come
// from the runtime's monotonic clock, so dt is never negative.
type frameClock struct {
	interval time.Duration
	quit     chan struct{}
	once     sync.Once
}

func newFrameClock(fps int) *frameClock {
	return &frameClock{
		interval: time.Second / time.Duration(fps),
		quit:     make(chan struct{}),
	}
}

// run loops until stop is called. Intended to be launched on its own
// goroutine.
func (c *frameClock) run(tick func(dt float64)) {
	t := time.NewTicker(c.interval)
	defer t.Stop()

	last := time.Now()
	for {
		select {
		case <-c.quit:
			return
		case now := <-t.C:
			dt := now.Sub(last).Seconds()
			last = now
			if dt <= 0 {
				continue
			}
			tick(dt)
		}
	}
}

// stop cancels the loop. Safe to call more than once; no tick starts
// after stop returns.
func (c *frameClock) stop() {
	c.once.Do(func() { close(c.quit) })
}
