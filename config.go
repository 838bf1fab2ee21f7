package loom

import "go.uber.org/zap"

// Config holds the knobs a World is built with, in the spirit of the
// teacher's config.go: a small struct with setter methods rather than a
// flag/env parsing layer.
type Config struct {
	// Workers bounds the worker pool used for parallel system groups. Zero
	// means unbounded: errgroup.SetLimit is not called and every system of a
	// group gets its own goroutine.
	Workers int

	// Stats enables per-system wall-clock sampling in the scheduler.
	Stats bool

	// StatsCapacity bounds the ring buffer kept per system when Stats is on.
	StatsCapacity int

	// Logger receives barrier-crossing diagnostics; stats samples are kept
	// in memory (World.Samples), not logged. Defaults to zap.NewNop() so a
	// World needs no logging setup to be usable.
	Logger *zap.Logger
}

// DefaultConfig returns the zero-configuration Config: unbounded worker
// pool, stats disabled, a no-op logger.
func DefaultConfig() Config {
	return Config{
		StatsCapacity: 64,
		Logger:        zap.NewNop(),
	}
}

// SetLogger installs l as the World's diagnostic logger.
func (c *Config) SetLogger(l *zap.Logger) {
	c.Logger = l
}

// SetStats turns per-system stats collection on or off.
func (c *Config) SetStats(on bool) {
	c.Stats = on
}

// SetWorkers bounds the parallel-group worker pool.
func (c *Config) SetWorkers(n int) {
	c.Workers = n
}
