// Package gen implements the terrain generation stages and the pipeline
// that sequences them.
package gen

import (
	"io"
	"log/slog"

	"strata/internal/config"
	"strata/internal/world"
)

// Stage is one step of the generation pipeline. Process derives its own
// seed from baseSeed and offset and mutates w in place.
type Stage interface {
	Name() string
	Process(w *world.World, baseSeed uint32, offset int32) error
}

// Option tunes how stages and pipelines execute.
type Option func(*env)

// WithWorkers bounds the number of goroutines per parallel pass. Zero uses
// GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(e *env) { e.workers = n }
}

// WithLogger routes progress messages to l.
func WithLogger(l *slog.Logger) Option {
	return func(e *env) {
		if l != nil {
			e.log = l
		}
	}
}

type env struct {
	cfg     config.Config
	workers int
	log     *slog.Logger
}

func newEnv(cfg config.Config, opts []Option) env {
	e := env{
		cfg:     cfg,
		workers: cfg.Workers,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, o := range opts {
		o(&e)
	}
	return e
}

func (e env) logger(stage string) *slog.Logger {
	return e.log.With("stage", stage)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// dx8 and dy8 enumerate the 8-neighborhood clockwise starting at north.
var (
	dx8 = [8]int{0, 1, 1, 1, 0, -1, -1, -1}
	dy8 = [8]int{-1, -1, 0, 1, 1, 1, 0, -1}
)
