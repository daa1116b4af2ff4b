/*
NAME
  scheduler_test.go

AUTHORS
  Mira Holt <mira@ausocean.org>

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package render

import (
	"sync"
	"testing"
	"time"

	"github.com/ausocean/wavetracer/integrator"
	"github.com/ausocean/wavetracer/render/config"
)

// testLogger routes Config's logging through the testing package, as
// revid's own tests do.
type testLogger testing.T

func (tl *testLogger) Debug(msg string, args ...interface{})   { tl.Log(0, msg, args...) }
func (tl *testLogger) Info(msg string, args ...interface{})    { tl.Log(0, msg, args...) }
func (tl *testLogger) Warning(msg string, args ...interface{}) { tl.Log(0, msg, args...) }
func (tl *testLogger) Error(msg string, args ...interface{})   { tl.Log(0, msg, args...) }
func (tl *testLogger) Fatal(msg string, args ...interface{})   { tl.Log(0, msg, args...) }
func (tl *testLogger) SetLevel(lvl int8)                       {}

func (tl *testLogger) Log(lvl int8, msg string, args ...interface{}) {
	if len(args) == 0 {
		(*testing.T)(tl).Log(msg)
		return
	}
	(*testing.T)(tl).Logf(msg+" (%v)", args)
}

// fakeFilm is a minimal, square single-pixel-per-block Film used to
// drive the scheduler without any real accumulation buffer.
type fakeFilm struct {
	blocks    int
	mu        sync.Mutex
	inFlight  map[int]bool
	writes    []uint
	developed bool
}

func newFakeFilm(blocks int) *fakeFilm {
	return &fakeFilm{blocks: blocks, inFlight: make(map[int]bool), writes: make([]uint, blocks)}
}

func (f *fakeFilm) BlockCount() int { return f.blocks }

func (f *fakeFilm) BlockAt(index int) Block {
	return Block{Index: index, X: index, Y: 0, W: 1, H: 1}
}

func (f *fakeFilm) IsPolarimetric() bool { return false }
func (f *fakeFilm) DimensionsCount() int { return 1 }

func (f *fakeFilm) AcquireBlock(index int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.inFlight[index] {
		return false
	}
	f.inFlight[index] = true
	return true
}

func (f *fakeFilm) ReleaseBlock(index int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.inFlight, index)
}

func (f *fakeFilm) WriteBlock(index int, spp uint) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes[index] += spp
	delete(f.inFlight, index)
}

func (f *fakeFilm) Develop(fractionalSpp float64) DevelopResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.developed = true
	return DevelopResult{
		Dims:              1,
		Linear:            make([]float64, f.blocks),
		SamplesPerElement: int(fractionalSpp + 0.5),
	}
}

func (f *fakeFilm) totalWrites(index int) uint {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.writes[index]
}

// instantIntegrator completes every Render call immediately.
type instantIntegrator struct{}

func (instantIntegrator) Render(ctx integrator.Context, block int, pos integrator.Position, spp uint) {
}

// gatedIntegrator reports every Render call on started before blocking
// until the test releases it on gate, letting a test observe exactly
// which jobs are in flight at a given instant.
type gatedIntegrator struct {
	started chan int
	gate    chan struct{}
}

func newGatedIntegrator() *gatedIntegrator {
	return &gatedIntegrator{started: make(chan int), gate: make(chan struct{})}
}

func (g *gatedIntegrator) Render(ctx integrator.Context, block int, pos integrator.Position, spp uint) {
	g.started <- block
	<-g.gate
}

func testConfig(t *testing.T, workers uint) config.Config {
	return config.Config{
		BlockSize:       config.DefaultBlockSize,
		SamplesPerBlock: 1,
		WorkerCount:     workers,
		Logger:          (*testLogger)(t),
	}
}

func noopCtxFor(int) integrator.Context { return nil }

func TestBuildJobsVisitsEveryBlockBeforeRepeating(t *testing.T) {
	film := newFakeFilm(3)
	sensors := []Sensor{{ID: "s0", Film: film}}
	jobs := buildJobs(sensors, 2, 1)
	if len(jobs) != 6 {
		t.Fatalf("got %d jobs, want 6", len(jobs))
	}
	for i := 0; i < 3; i++ {
		if jobs[i].block != i {
			t.Errorf("round 0 job %d: got block %d, want %d", i, jobs[i].block, i)
		}
	}
	for i := 3; i < 6; i++ {
		if jobs[i].block != i-3 {
			t.Errorf("round 1 job %d: got block %d, want %d", i, jobs[i].block, i-3)
		}
	}
}

func TestBuildJobsCapsLastRoundSpp(t *testing.T) {
	film := newFakeFilm(1)
	sensors := []Sensor{{ID: "s0", Film: film}}
	jobs := buildJobs(sensors, 5, 2)
	if len(jobs) != 3 {
		t.Fatalf("got %d jobs, want 3", len(jobs))
	}
	if jobs[0].spp != 2 || jobs[1].spp != 2 || jobs[2].spp != 1 {
		t.Errorf("got spp sequence %d,%d,%d, want 2,2,1", jobs[0].spp, jobs[1].spp, jobs[2].spp)
	}
}

func TestSchedulerRunCompletesAllSensors(t *testing.T) {
	film := newFakeFilm(4)
	sensors := []Sensor{{ID: "s0", Film: film}}
	cfg := testConfig(t, 2)
	cfg.SamplesPerBlock = 2
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	s := New(cfg, sensors, instantIntegrator{}, 2, noopCtxFor, ProgressCallbacks{}, nil)
	result := s.Run()

	sr, ok := result.Sensors["s0"]
	if !ok {
		t.Fatal("missing sensor s0 in result")
	}
	if !sr.Complete {
		t.Error("expected sensor to be marked complete")
	}
	for i := 0; i < film.blocks; i++ {
		if got := film.totalWrites(i); got != 2 {
			t.Errorf("block %d: got %d samples written, want 2", i, got)
		}
	}
}

func TestSchedulerPauseStopsNewDispatch(t *testing.T) {
	film := newFakeFilm(3)
	sensors := []Sensor{{ID: "s0", Film: film}}
	cfg := testConfig(t, 1) // InFlightTarget == 2
	cfg.SamplesPerBlock = 1
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	gi := newGatedIntegrator()
	s := New(cfg, sensors, gi, 1, noopCtxFor, ProgressCallbacks{}, nil)

	done := make(chan RenderResult, 1)
	go func() { done <- s.Run() }()

	// Job 0 is now in flight and blocked at the gate; job 1 sits queued
	// in the worker channel, and the scheduler loop is parked with
	// nothing yet ready on either its completions or interrupts channel.
	block0 := <-gi.started

	// Only the pause interrupt can possibly be ready at this instant, so
	// the scheduler is guaranteed to process it before any completion.
	s.Interrupt(Interrupt{Kind: Pause})

	gi.gate <- struct{}{} // let job 0 finish
	block1 := <-gi.started // job 1 was already dispatched before pause

	if block0 == block1 {
		t.Fatalf("expected two distinct blocks to start, got %d twice", block0)
	}

	// With the worker pool's single slot occupied by job 1 and no
	// refill while paused, job 2 must not start within a short window.
	select {
	case b := <-gi.started:
		t.Fatalf("job for block %d started while paused", b)
	case <-time.After(20 * time.Millisecond):
	}

	gi.gate <- struct{}{} // let job 1 finish

	select {
	case b := <-gi.started:
		t.Fatalf("job for block %d started while paused", b)
	case <-time.After(20 * time.Millisecond):
	}

	s.Interrupt(Interrupt{Kind: Resume})
	block2 := <-gi.started
	gi.gate <- struct{}{}

	seen := map[int]bool{block0: true, block1: true, block2: true}
	if len(seen) != 3 {
		t.Fatalf("expected jobs for 3 distinct blocks, saw %v", seen)
	}

	result := <-done
	if !result.Sensors["s0"].Complete {
		t.Error("expected sensor to complete after resume")
	}
}

func TestSchedulerTerminateLeavesSensorIncomplete(t *testing.T) {
	film := newFakeFilm(4)
	sensors := []Sensor{{ID: "s0", Film: film}}
	cfg := testConfig(t, 1)
	cfg.SamplesPerBlock = 1
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	gi := newGatedIntegrator()
	terminated := make(chan string, 1)
	s := New(cfg, sensors, gi, 1, noopCtxFor, ProgressCallbacks{
		OnTerminate: func(sensorID string) { terminated <- sensorID },
	}, nil)

	done := make(chan RenderResult, 1)
	go func() { done <- s.Run() }()

	<-gi.started
	s.Interrupt(Interrupt{Kind: Terminate})
	gi.gate <- struct{}{}

	// A second job may already have been dispatched before terminate
	// was processed; drain it so the scheduler can quiesce.
	select {
	case <-gi.started:
		gi.gate <- struct{}{}
	case <-time.After(20 * time.Millisecond):
	}

	result := <-done
	if sr, ok := result.Sensors["s0"]; ok && sr.Complete {
		t.Error("expected sensor not to be reported complete after terminate")
	}

	select {
	case id := <-terminated:
		if id != "s0" {
			t.Errorf("got terminated sensor %q, want s0", id)
		}
	case <-time.After(20 * time.Millisecond):
		t.Error("expected OnTerminate to fire for the incomplete sensor")
	}
}
