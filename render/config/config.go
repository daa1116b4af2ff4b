/*
NAME
  config.go

AUTHORS
  Mira Holt <mira@ausocean.org>

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package config holds the render scheduler's configuration.
package config

import "github.com/ausocean/utils/logging"

// Default block and sample-batch sizes, used when a Config leaves the
// corresponding field unset (zero).
const (
	DefaultBlockSize       = 32
	DefaultSamplesPerBlock = 16
	DefaultWorkerCount     = 4
	parallelJobsFactor     = 1.5
)

// Config configures the render scheduler.
type Config struct {
	// BlockSize is the side length, in film elements, of a render block.
	BlockSize uint

	// SamplesPerBlock is the number of samples per element integrated in
	// a single job.
	SamplesPerBlock uint

	// WorkerCount is the number of worker goroutines in the pool. The
	// scheduler keeps ceil(1.5 x WorkerCount) jobs in flight.
	WorkerCount uint

	// ForceRayTracing disables any beam/cone-sweep fast paths an
	// integrator may otherwise take, useful for validating against a
	// reference ray-traced render.
	ForceRayTracing bool

	// Logger holds an implementation of the Logger interface. This must
	// be set for the scheduler to report invalid configuration.
	Logger logging.Logger
}

// Validate checks Config's fields for valid values, defaulting any that
// are unset (zero) and logging the default via LogInvalidField.
func (c *Config) Validate() error {
	if c.BlockSize == 0 {
		c.LogInvalidField("BlockSize", DefaultBlockSize)
		c.BlockSize = DefaultBlockSize
	}
	if c.SamplesPerBlock == 0 {
		c.LogInvalidField("SamplesPerBlock", DefaultSamplesPerBlock)
		c.SamplesPerBlock = DefaultSamplesPerBlock
	}
	if c.WorkerCount == 0 {
		c.LogInvalidField("WorkerCount", DefaultWorkerCount)
		c.WorkerCount = DefaultWorkerCount
	}
	return nil
}

// InFlightTarget is the number of jobs the scheduler keeps dispatched at
// once: ceil(parallelJobsFactor x WorkerCount).
func (c *Config) InFlightTarget() int {
	n := float64(c.WorkerCount) * parallelJobsFactor
	target := int(n)
	if float64(target) < n {
		target++
	}
	return target
}

// LogInvalidField logs that a config field was bad or unset and is
// being defaulted to def.
func (c *Config) LogInvalidField(name string, def interface{}) {
	if c.Logger == nil {
		return
	}
	c.Logger.Info(name+" bad or unset, defaulting", name, def)
}
