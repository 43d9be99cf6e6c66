// Package engine converts a scroll progress signal into smoothly evolving
// background animation state: a color gradient pair, per-blob rotation
// angles and spring-damped x/y offsets, published once per frame as an
// immutable snapshot for a renderer to paint.
package engine

import (
	"math/rand"
	"sync"
	"sync/atomic"
	"time"
)

// SpringConfig tunes the offset springs. Stiffness is the angular
// frequency in rad/s, Damping the damping ratio (1.0 critical; below 1
// oscillates, which is permitted and intentional when configured).
type SpringConfig struct {
	Stiffness float64
	Damping   float64
}

// SpeedConfig bounds the per-blob base speed randomization and scales
// all rotation targets.
type SpeedConfig struct {
	Min        float64
	Max        float64
	Multiplier float64
}

// Config describes an engine. The blob count and stops are fixed for the
// engine's lifetime.
type Config struct {
	Stops  []Stop
	Blobs  int
	FPS    int
	Spring SpringConfig
	Speed  SpeedConfig

	// Offsets follow target = base − progress·range.
	YBase  float64
	YRange float64
	XRange float64

	// Seed for base speed randomization; 0 means time-seeded.
	Seed int64
}

// DefaultConfig returns the tuning used by the demos.
func DefaultConfig() Config {
	return Config{
		Stops: []Stop{
			{{H: 222, S: 70, L: 62}, {H: 282, S: 58, L: 64}},
			{{H: 196, S: 80, L: 58}, {H: 222, S: 70, L: 62}},
			{{H: 160, S: 62, L: 52}, {H: 196, S: 80, L: 58}},
		},
		Blobs:  5,
		FPS:    60,
		Spring: SpringConfig{Stiffness: 18, Damping: 1.0},
		Speed:  SpeedConfig{Min: 0.6, Max: 1.4, Multiplier: 1.0},
		YBase:  0,
		YRange: 10,
		XRange: 4,
	}
}

func (c Config) validate() error {
	if len(c.Stops) == 0 {
		return configErr("stops", "at least one color stop required")
	}
	if c.Blobs <= 0 {
		return configErr("blobs", "blob count must be positive")
	}
	if c.FPS <= 0 {
		return configErr("fps", "frame rate must be positive")
	}
	if c.Spring.Stiffness <= 0 {
		return configErr("spring.stiffness", "must be positive")
	}
	if c.Spring.Damping < 0 {
		return configErr("spring.damping", "must not be negative")
	}
	if c.Speed.Min <= 0 {
		return configErr("speed.min", "must be positive")
	}
	if c.Speed.Max < c.Speed.Min {
		return configErr("speed.max", "must not be below speed.min")
	}
	if c.Speed.Multiplier <= 0 {
		return configErr("speed.multiplier", "must be positive")
	}
	return nil
}

// Snapshot is the immutable per-frame output read by renderers. Callers
// must not mutate it.
type Snapshot struct {
	Colors    Stop
	Rotations []float64
	YOffset   float64
	XOffset   float64
	Progress  float64
}

// Rotation returns the single-blob rotation angle; the scalar form of
// Rotations for engines configured with one blob.
func (s Snapshot) Rotation() float64 {
	if len(s.Rotations) == 0 {
		return 0
	}
	return s.Rotations[0]
}

// Engine owns the animation state. Progress arrives by push through
// SetProgress at arbitrary cadence; a frame clock drives ticks at the
// configured rate; renderers read the latest snapshot by pull or
// subscription. All state mutation happens inside a tick.
type Engine struct {
	mu  sync.Mutex
	cfg Config

	grad    Gradient
	ySpring offsetSpring
	xSpring offsetSpring
	field   *rotationField

	clock   *frameClock
	running bool
	stopped bool

	progress   float64
	pending    float64
	hasPending bool

	snap atomic.Pointer[Snapshot]
	subs []func(Snapshot)
}

// New validates the configuration and builds an engine at rest. Base
// speeds are randomized here, once.
func New(cfg Config) (*Engine, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	grad, err := NewGradient(cfg.Stops)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	e := &Engine{
		cfg:     cfg,
		grad:    grad,
		ySpring: newOffsetSpring(cfg.FPS, cfg.Spring.Stiffness, cfg.Spring.Damping),
		xSpring: newOffsetSpring(cfg.FPS, cfg.Spring.Stiffness, cfg.Spring.Damping),
		field:   newRotationField(cfg.Blobs, cfg.Speed, rand.New(rand.NewSource(seed))),
	}
	e.ySpring.reset(cfg.YBase)
	e.xSpring.reset(0)
	e.publish()
	return e, nil
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// SetProgress records the latest scroll progress. Values are clamped to
// [0,1] (NaN becomes 0) so bad input never reaches the cumulative angle
// state. Only the most recent value before a tick matters; nothing else
// mutates until that tick runs.
func (e *Engine) SetProgress(p float64) {
	p = clamp01(p)
	e.mu.Lock()
	e.pending = p
	e.hasPending = true
	e.mu.Unlock()
}

// Subscribe registers a callback invoked with every published snapshot.
// Subscribing never restarts or resets the tick loop.
func (e *Engine) Subscribe(fn func(Snapshot)) {
	e.mu.Lock()
	e.subs = append(e.subs, fn)
	e.mu.Unlock()
}

// Snapshot returns the most recently published snapshot.
func (e *Engine) Snapshot() Snapshot {
	return *e.snap.Load()
}

// Start launches the frame loop. Starting a running engine is an error,
// as is starting one that has been stopped.
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stopped {
		return ErrStopped
	}
	if e.running {
		return ErrRunning
	}
	e.running = true
	e.clock = newFrameClock(e.cfg.FPS)
	go e.clock.run(e.tick)
	return nil
}

// Stop cancels the frame loop and marks the engine inert. Idempotent.
// A tick already in flight observes the inert flag and mutates nothing,
// so the published snapshot is frozen once Stop returns.
func (e *Engine) Stop() {
	e.mu.Lock()
	if e.stopped {
		e.mu.Unlock()
		return
	}
	e.stopped = true
	e.running = false
	clock := e.clock
	e.mu.Unlock()

	if clock != nil {
		clock.stop()
	}
}

// tick advances the simulation by dt seconds and publishes a fresh
// snapshot. Ticks after Stop are silent no-ops.
func (e *Engine) tick(dt float64) {
	e.mu.Lock()
	if e.stopped {
		e.mu.Unlock()
		return
	}

	if e.hasPending {
		dir := scrollDirection(e.progress, e.pending)
		e.progress = e.pending
		e.hasPending = false
		e.field.retarget(dir)
		e.ySpring.setTarget(e.cfg.YBase - e.progress*e.cfg.YRange)
		e.xSpring.setTarget(-e.progress * e.cfg.XRange)
	}

	e.field.tick(dt)
	e.ySpring.tick()
	e.xSpring.tick()

	snap := e.publish()
	subs := e.subs
	e.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

// publish builds and stores a snapshot from current state. Callers other
// than New must hold e.mu.
func (e *Engine) publish() Snapshot {
	snap := &Snapshot{
		Colors:    e.grad.At(e.progress),
		Rotations: e.field.rotations(make([]float64, 0, len(e.field.blobs))),
		YOffset:   e.ySpring.pos,
		XOffset:   e.xSpring.pos,
		Progress:  e.progress,
	}
	e.snap.Store(snap)
	return *snap
}
