/*
NAME
  scheduler.go

AUTHORS
  Mira Holt <mira@ausocean.org>

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package render implements the block-based render scheduler: it
// partitions each sensor's film into blocks, dispatches integration
// jobs across a worker pool, and develops completed sensors into
// render results. The dispatch loop and its interrupts use a
// goroutine/channel idiom rather than a condition variable: a channel
// of completions plays the condvar's role. Terminate sets an atomic
// flag that stops further dispatch; the job channel is closed once the
// loop has drained the in-flight jobs, which ends the workers.
package render

import (
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ausocean/wavetracer/integrator"
	"github.com/ausocean/wavetracer/render/config"
)

// Previewer receives lossy, non-synchronised snapshots of in-progress
// sensors after batches of job completions.
type Previewer interface {
	Preview(sensorID string, fractionalSpp float64)
}

// ProgressCallbacks are optional hooks for rendering progress.
type ProgressCallbacks struct {
	OnProgress  func(sensorID string, progress float64)
	OnComplete  func(sensorID string, elapsed time.Duration)
	OnTerminate func(sensorID string)
}

type jobSpec struct {
	sensorIdx int
	block     int
	spp       uint
}

type completion struct {
	job     jobSpec
	elapsed time.Duration
}

// sensorState tracks one sensor's progress through its job rounds.
type sensorState struct {
	totalJobs     int
	jobsCompleted int
	startTime     time.Time
}

// Scheduler dispatches block-integration jobs across a fixed worker
// pool, honouring pause/resume/terminate/capture-intermediate
// interrupts, until every sensor's requested samples-per-element have
// been rendered.
type Scheduler struct {
	cfg        config.Config
	sensors    []Sensor
	integrator integrator.Integrator
	ctxFor     func(sensorIdx int) integrator.Context
	progress   ProgressCallbacks
	previewer  Previewer

	// jobs and nextJob are only ever touched from the Run goroutine.
	jobs    []jobSpec
	nextJob int

	mu           sync.Mutex // guards sensorStates, read concurrently by onJobComplete and develop*
	sensorStates []sensorState

	jobCh       chan jobSpec
	completions chan completion
	interrupts  chan Interrupt

	paused     atomic.Bool
	terminated atomic.Bool

	wg sync.WaitGroup
}

// New builds a Scheduler. requestedSpp is the target samples-per-
// element for every sensor; ctxFor produces the per-sensor
// integrator.Context the workers pass to it.
func New(cfg config.Config, sensors []Sensor, it integrator.Integrator, requestedSpp uint, ctxFor func(sensorIdx int) integrator.Context, progress ProgressCallbacks, previewer Previewer) *Scheduler {
	s := &Scheduler{
		cfg:         cfg,
		sensors:     sensors,
		integrator:  it,
		ctxFor:      ctxFor,
		progress:    progress,
		previewer:   previewer,
		jobCh:       make(chan jobSpec, len(sensors)*4+1),
		completions: make(chan completion, len(sensors)*4+1),
		interrupts:  make(chan Interrupt, 16),
	}
	s.jobs = buildJobs(sensors, requestedSpp, cfg.SamplesPerBlock)
	s.sensorStates = make([]sensorState, len(sensors))
	for i := range s.sensorStates {
		s.sensorStates[i].totalJobs = countJobsFor(s.jobs, i)
	}
	return s
}

// buildJobs lays out (sensor, block, spp) jobs round-major across all
// sensors, so sensors progress roughly together and, within a sensor,
// every block of a round is visited before the round repeats.
func buildJobs(sensors []Sensor, requestedSpp uint, samplesPerBlock uint) []jobSpec {
	rounds := 0
	perSensorBlocks := make([]int, len(sensors))
	for i, sn := range sensors {
		perSensorBlocks[i] = sn.Film.BlockCount()
		r := int(math.Ceil(float64(requestedSpp) / float64(samplesPerBlock)))
		if r > rounds {
			rounds = r
		}
	}

	var jobs []jobSpec
	for r := 0; r < rounds; r++ {
		for i := range sensors {
			remaining := int(requestedSpp) - r*int(samplesPerBlock)
			if remaining <= 0 {
				continue
			}
			spp := uint(samplesPerBlock)
			if remaining < int(samplesPerBlock) {
				spp = uint(remaining)
			}
			for b := 0; b < perSensorBlocks[i]; b++ {
				jobs = append(jobs, jobSpec{sensorIdx: i, block: b, spp: spp})
			}
		}
	}
	return jobs
}

func countJobsFor(jobs []jobSpec, sensorIdx int) int {
	n := 0
	for _, j := range jobs {
		if j.sensorIdx == sensorIdx {
			n++
		}
	}
	return n
}

// Interrupt enqueues an interrupt for the scheduler's run loop to
// process on its next wake; safe to call from any goroutine.
func (s *Scheduler) Interrupt(i Interrupt) {
	s.interrupts <- i
}

// Run starts the worker pool and the dispatch loop, blocking until
// every sensor completes or a terminate interrupt drains the in-flight
// set. It returns the final RenderResult.
func (s *Scheduler) Run() RenderResult {
	for w := uint(0); w < s.cfg.WorkerCount; w++ {
		s.wg.Add(1)
		go s.worker()
	}

	inFlight := 0
	target := s.cfg.InFlightTarget()

	refill := func() {
		for !s.terminated.Load() && !s.paused.Load() && inFlight < target && s.nextJob < len(s.jobs) {
			s.jobCh <- s.jobs[s.nextJob]
			s.nextJob++
			inFlight++
		}
	}
	refill()

	var captureRemaining int
	var captureCallback func(RenderResult)
	capturing := false
	savedPaused := false

	for {
		if !capturing && inFlight == 0 && s.nextJob >= len(s.jobs) {
			break
		}
		if s.terminated.Load() && inFlight == 0 {
			break
		}

		select {
		case c := <-s.completions:
			inFlight--
			s.onJobComplete(c)
			if capturing {
				captureRemaining--
				if captureRemaining == 0 {
					result := s.developAll()
					if captureCallback != nil {
						captureCallback(result)
					}
					capturing = false
					s.paused.Store(savedPaused)
				}
			}
			if !capturing {
				refill()
			}

		case intr := <-s.interrupts:
			switch intr.Kind {
			case Pause:
				if capturing {
					savedPaused = true
				} else {
					s.paused.Store(true)
				}
			case Resume:
				if capturing {
					savedPaused = false
				} else {
					s.paused.Store(false)
					refill()
				}
			case Terminate:
				s.terminated.Store(true)
			case CaptureIntermediate:
				savedPaused = s.paused.Load()
				s.paused.Store(true)
				capturing = true
				captureRemaining = inFlight
				captureCallback = intr.OnCapture
				if captureRemaining == 0 {
					result := s.developAll()
					if captureCallback != nil {
						captureCallback(result)
					}
					capturing = false
					s.paused.Store(savedPaused)
				}
			}
		}
	}

	close(s.jobCh)
	s.wg.Wait()

	for i, sn := range s.sensors {
		if s.sensorStates[i].jobsCompleted >= s.sensorStates[i].totalJobs {
			if s.progress.OnComplete != nil {
				s.progress.OnComplete(sn.ID, time.Since(s.sensorStates[i].startTime))
			}
		} else if s.terminated.Load() && s.progress.OnTerminate != nil {
			s.progress.OnTerminate(sn.ID)
		}
	}

	return s.developComplete()
}

func (s *Scheduler) worker() {
	defer s.wg.Done()
	for job := range s.jobCh {
		start := time.Now()
		s.integrateJob(job)
		s.completions <- completion{job: job, elapsed: time.Since(start)}
	}
}

func (s *Scheduler) integrateJob(job jobSpec) {
	sn := s.sensors[job.sensorIdx]
	if !sn.Film.AcquireBlock(job.block) {
		return
	}
	ctx := s.ctxFor(job.sensorIdx)
	block := sn.Film.BlockAt(job.block)
	for y := block.Y; y < block.Y+block.H; y++ {
		for x := block.X; x < block.X+block.W; x++ {
			s.integrator.Render(ctx, job.block, integrator.Position{X: x, Y: y}, job.spp)
		}
	}
	sn.Film.WriteBlock(job.block, job.spp)
}

func (s *Scheduler) onJobComplete(c completion) {
	s.mu.Lock()
	st := &s.sensorStates[c.job.sensorIdx]
	if st.jobsCompleted == 0 {
		st.startTime = time.Now()
	}
	st.jobsCompleted++
	progress := 0.0
	if st.totalJobs > 0 {
		progress = float64(st.jobsCompleted) / float64(st.totalJobs)
	}
	done := st.jobsCompleted
	s.mu.Unlock()

	if s.progress.OnProgress != nil {
		s.progress.OnProgress(s.sensors[c.job.sensorIdx].ID, progress)
	}
	if s.previewer != nil {
		sn := s.sensors[c.job.sensorIdx]
		fractional := float64(done) / float64(max1(sn.Film.BlockCount())) * float64(s.cfg.SamplesPerBlock)
		s.previewer.Preview(sn.ID, fractional)
	}
}

// developAll develops every sensor's film regardless of completion
// state, used for capture_intermediate snapshots.
func (s *Scheduler) developAll() RenderResult {
	out := RenderResult{Sensors: make(map[string]SensorRenderResult, len(s.sensors))}
	for i, sn := range s.sensors {
		st := s.sensorStates[i]
		fractional := 0.0
		if st.totalJobs > 0 {
			fractional = float64(st.jobsCompleted) / float64(max1(sn.Film.BlockCount())) * float64(s.cfg.SamplesPerBlock)
		}
		dev := sn.Film.Develop(fractional)
		dev.SamplesPerElement = int(math.Round(fractional + 0.5))
		out.Sensors[sn.ID] = SensorRenderResult{
			SensorID:          sn.ID,
			Developed:         dev,
			SamplesPerElement: dev.SamplesPerElement,
			FractionalSpe:     fractional,
			Complete:          st.jobsCompleted >= st.totalJobs,
		}
	}
	return out
}

// developComplete develops only fully-complete sensors: partial films
// are not developed automatically on termination.
func (s *Scheduler) developComplete() RenderResult {
	out := RenderResult{Sensors: make(map[string]SensorRenderResult, len(s.sensors))}
	for i, sn := range s.sensors {
		st := s.sensorStates[i]
		if st.totalJobs == 0 || st.jobsCompleted < st.totalJobs {
			continue
		}
		rounds := float64(st.totalJobs) / float64(max1(sn.Film.BlockCount()))
		dev := sn.Film.Develop(rounds * float64(s.cfg.SamplesPerBlock))
		out.Sensors[sn.ID] = SensorRenderResult{
			SensorID:          sn.ID,
			RenderElapsed:     time.Since(st.startTime),
			Developed:         dev,
			SamplesPerElement: dev.SamplesPerElement,
			Complete:          true,
		}
	}
	return out
}

func max1(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
