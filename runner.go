package popbench

import (
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// ErrInvalidIterations is returned by Run for a negative iteration count.
var ErrInvalidIterations = errors.New("invalid iteration count")

// Measurement is the outcome of one Run.
type Measurement struct {
	Last       Result
	Name       string
	Iterations int
	Elapsed    time.Duration
}

// Seconds returns the elapsed time in fractional seconds.
func (m Measurement) Seconds() float64 {
	return m.Elapsed.Seconds()
}

// Throughput returns iterations per second.
// It is 0 when nothing ran or no time elapsed.
func (m Measurement) Throughput() float64 {
	if m.Iterations == 0 || m.Elapsed <= 0 {
		return 0
	}
	return float64(m.Iterations) / m.Seconds()
}

// Run pops TargetKey from a fresh copy of template once per iteration and
// times the whole batch. A nil template means an empty mapping.
//
// Panics raised by the candidate are not recovered.
func Run(c Candidate, template Mapping, opts ...Option) (Measurement, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.iterations < 0 {
		return Measurement{}, fmt.Errorf("%w: %d", ErrInvalidIterations, cfg.iterations)
	}

	batch := NewBatch(template, cfg.iterations)

	var res Result
	start := cfg.clock.Now()
	for _, m := range batch {
		res = c.Pop(m, cfg.args...)
	}
	end := cfg.clock.Now()

	elapsed := end.Sub(start)
	if elapsed < 0 {
		elapsed = 0
	}
	m := Measurement{
		Name:       c.Name,
		Iterations: cfg.iterations,
		Elapsed:    elapsed,
		Last:       res,
	}

	slog.Debug("benchmark complete",
		"candidate", m.Name, "iterations", m.Iterations, "elapsed", m.Elapsed)

	if err := report(cfg, template, m); err != nil {
		return m, fmt.Errorf("write report: %w", err)
	}
	return m, nil
}
