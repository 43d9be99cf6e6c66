package engine

import (
	"errors"
	"math"
	"testing"
	"time"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Seed = 42
	return cfg
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty stops", func(c *Config) { c.Stops = nil }},
		{"zero blobs", func(c *Config) { c.Blobs = 0 }},
		{"negative blobs", func(c *Config) { c.Blobs = -3 }},
		{"zero fps", func(c *Config) { c.FPS = 0 }},
		{"zero stiffness", func(c *Config) { c.Spring.Stiffness = 0 }},
		{"negative damping", func(c *Config) { c.Spring.Damping = -0.1 }},
		{"zero speed min", func(c *Config) { c.Speed.Min = 0 }},
		{"max below min", func(c *Config) { c.Speed.Max = 0.1 }},
		{"zero multiplier", func(c *Config) { c.Speed.Multiplier = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig()
			tc.mutate(&cfg)
			_, err := New(cfg)
			if err == nil {
				t.Fatal("expected configuration error")
			}
			if !errors.Is(err, ErrConfig) {
				t.Fatalf("expected ErrConfig, got %v", err)
			}
		})
	}
}

func TestNewPublishesInitialSnapshot(t *testing.T) {
	e, err := New(testConfig())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	snap := e.Snapshot()
	if len(snap.Rotations) != e.cfg.Blobs {
		t.Fatalf("expected %d rotations, got %d", e.cfg.Blobs, len(snap.Rotations))
	}
	if snap.Progress != 0 {
		t.Fatalf("expected initial progress 0, got %v", snap.Progress)
	}
	if snap.YOffset != e.cfg.YBase {
		t.Fatalf("expected initial y offset %v, got %v", e.cfg.YBase, snap.YOffset)
	}
}

func TestSetProgressAppliesOnNextTick(t *testing.T) {
	e, err := New(testConfig())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	e.SetProgress(0.3)
	e.SetProgress(0.8) // last write wins
	if got := e.Snapshot().Progress; got != 0 {
		t.Fatalf("expected progress unchanged before tick, got %v", got)
	}

	e.tick(1.0 / 60)
	if got := e.Snapshot().Progress; got != 0.8 {
		t.Fatalf("expected progress 0.8 after tick, got %v", got)
	}
}

func TestNonFiniteProgressIsClamped(t *testing.T) {
	e, err := New(testConfig())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	for _, p := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), -4, 7} {
		e.SetProgress(p)
		e.tick(1.0 / 60)
		snap := e.Snapshot()
		if snap.Progress < 0 || snap.Progress > 1 {
			t.Fatalf("expected clamped progress for input %v, got %v", p, snap.Progress)
		}
		for i, r := range snap.Rotations {
			if math.IsNaN(r) || math.IsInf(r, 0) {
				t.Fatalf("rotation %d poisoned by progress %v: %v", i, p, r)
			}
		}
		if math.IsNaN(snap.YOffset) || math.IsNaN(snap.XOffset) {
			t.Fatalf("offsets poisoned by progress %v: y=%v x=%v", p, snap.YOffset, snap.XOffset)
		}
	}
}

func TestOffsetsFollowProgressTargets(t *testing.T) {
	cfg := testConfig()
	e, err := New(cfg)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	e.SetProgress(1)
	for it := 0; it < 240; it++ {
		e.tick(1.0 / 60)
	}

	snap := e.Snapshot()
	wantY := cfg.YBase - cfg.YRange
	if math.Abs(snap.YOffset-wantY) > 0.01 {
		t.Fatalf("expected y offset near %v, got %v", wantY, snap.YOffset)
	}
	wantX := -cfg.XRange
	if math.Abs(snap.XOffset-wantX) > 0.01 {
		t.Fatalf("expected x offset near %v, got %v", wantX, snap.XOffset)
	}
}

func TestColorsTrackProgress(t *testing.T) {
	cfg := testConfig()
	e, err := New(cfg)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	e.SetProgress(1)
	e.tick(1.0 / 60)

	want := cfg.Stops[len(cfg.Stops)-1]
	if got := e.Snapshot().Colors; got != want {
		t.Fatalf("expected final stop %v at progress 1, got %v", want, got)
	}
}

func TestSnapshotFrozenAfterStop(t *testing.T) {
	e, err := New(testConfig())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	e.SetProgress(0.5)
	for it := 0; it < 10; it++ {
		e.tick(1.0 / 60)
	}
	e.Stop()

	before := e.Snapshot()
	e.SetProgress(0.9)
	for it := 0; it < 10; it++ {
		e.tick(1.0 / 60)
	}
	after := e.Snapshot()

	if after.Progress != before.Progress || after.YOffset != before.YOffset || after.XOffset != before.XOffset {
		t.Fatalf("expected frozen snapshot after stop, got %+v vs %+v", after, before)
	}
	for i := range before.Rotations {
		if after.Rotations[i] != before.Rotations[i] {
			t.Fatalf("rotation %d changed after stop: %v -> %v", i, before.Rotations[i], after.Rotations[i])
		}
	}
}

func TestStartStopLifecycle(t *testing.T) {
	e, err := New(testConfig())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	if err := e.Start(); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	if err := e.Start(); !errors.Is(err, ErrRunning) {
		t.Fatalf("expected ErrRunning on second start, got %v", err)
	}

	time.Sleep(60 * time.Millisecond)
	e.Stop()
	e.Stop() // idempotent

	if err := e.Start(); !errors.Is(err, ErrStopped) {
		t.Fatalf("expected ErrStopped after stop, got %v", err)
	}
}

func TestSubscribeReceivesEveryPublishedSnapshot(t *testing.T) {
	e, err := New(testConfig())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	var got []Snapshot
	e.Subscribe(func(s Snapshot) { got = append(got, s) })

	e.SetProgress(0.25)
	e.tick(1.0 / 60)
	e.tick(1.0 / 60)

	if len(got) != 2 {
		t.Fatalf("expected 2 snapshots, got %d", len(got))
	}
	if got[0].Progress != 0.25 {
		t.Fatalf("expected subscriber to see progress 0.25, got %v", got[0].Progress)
	}
}

func TestSingleBlobRotationScalar(t *testing.T) {
	cfg := testConfig()
	cfg.Blobs = 1
	e, err := New(cfg)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	e.tick(1.0 / 60)
	snap := e.Snapshot()
	if len(snap.Rotations) != 1 {
		t.Fatalf("expected one rotation, got %d", len(snap.Rotations))
	}
	if snap.Rotation() != snap.Rotations[0] {
		t.Fatalf("expected scalar rotation %v, got %v", snap.Rotations[0], snap.Rotation())
	}
}

func TestSeededEnginesAreReproducible(t *testing.T) {
	a, err := New(testConfig())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	b, err := New(testConfig())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	for i := range a.field.blobs {
		if a.field.blobs[i].baseSpeed != b.field.blobs[i].baseSpeed {
			t.Fatalf("expected identical base speeds for equal seeds, blob %d differs", i)
		}
	}
}
