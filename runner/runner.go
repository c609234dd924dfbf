// Package runner is the run-control surface around the tsp engine: Start
// spawns exactly one background search, Stop requests cooperative
// cancellation, Wait blocks for the result.
//
// The engine's callbacks are invoked on the run goroutine; sinks that touch
// UI state must marshal to their own thread.
package runner

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/tourvns/tsp"
)

var (
	// ErrAlreadyRunning is returned by Start while a previous run is active.
	ErrAlreadyRunning = errors.New("runner: a run is already active")

	// ErrNotStarted is returned by Wait before the first Start.
	ErrNotStarted = errors.New("runner: no run started")
)

// Runner drives at most one optimization run at a time.
// All methods are safe for concurrent use.
type Runner struct {
	logger *slog.Logger

	mu     sync.Mutex
	id     uuid.UUID
	cancel context.CancelFunc
	done   chan struct{}
	result tsp.Result
	err    error
}

// New returns an idle Runner. A nil logger selects slog.Default().
func New(logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{logger: logger.With(slog.String("component", "runner"))}
}

// Start validates opts, draws a seed tour and launches the search on its own
// goroutine. Validation errors are returned synchronously and leave the
// Runner idle. When opts.Seed is 0 a fresh seed is derived from the clock and
// the run id, and reported in the result for reproduction.
func (r *Runner) Start(ctx context.Context, dm *tsp.DistanceMatrix, opts tsp.Options) (uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.activeLocked() {
		return uuid.Nil, ErrAlreadyRunning
	}

	id := uuid.New()
	if opts.Seed == 0 {
		opts.Seed = freshSeed(id)
	}

	log := r.logger.With(slog.String("run_id", id.String()))
	sink := opts.OnImprove
	opts.OnImprove = func(d float64) {
		log.Debug("new best distance", slog.Float64("distance", d))
		if sink != nil {
			sink(d)
		}
	}

	rc, err := tsp.NewRunContext(opts)
	if err != nil {
		return uuid.Nil, fmt.Errorf("start run: %w", err)
	}
	seed, err := rc.SeedTour(dm)
	if err != nil {
		return uuid.Nil, fmt.Errorf("start run: %w", err)
	}

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	r.id, r.cancel, r.done = id, cancel, done
	r.result, r.err = tsp.Result{}, nil

	log.Info("run started",
		slog.Int("cities", dm.Cities()),
		slog.Int64("seed", rc.Seed()),
		slog.Int("max_attempts", opts.MaxAttempts),
		slog.Int("neighbourhood_size", opts.NeighbourhoodSize),
		slog.Int("iterations", opts.Iterations),
		slog.String("cadence", opts.Cadence.String()),
	)

	go func() {
		defer close(done)
		defer cancel()

		began := time.Now()
		res, err := rc.Search(runCtx, dm, seed)

		r.mu.Lock()
		r.result, r.err = res, err
		r.mu.Unlock()

		if err != nil {
			log.Error("run failed", slog.String("error", err.Error()))
			return
		}
		log.Info("run finished",
			slog.String("status", res.Status.String()),
			slog.Float64("distance", res.Distance),
			slog.Int("iterations", res.Iterations),
			slog.Duration("duration", time.Since(began)),
		)
	}()

	return id, nil
}

// Stop requests cancellation of the active run. It does not wait; calling it
// when idle or more than once is a no-op.
func (r *Runner) Stop() {
	r.mu.Lock()
	cancel := r.cancel
	r.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// Wait blocks until the current (or last) run ends or ctx is done.
// A cancelled run is a successful stop: its Result has Status
// tsp.StatusCancelled and err is nil.
func (r *Runner) Wait(ctx context.Context) (tsp.Result, error) {
	r.mu.Lock()
	done := r.done
	r.mu.Unlock()

	if done == nil {
		return tsp.Result{}, ErrNotStarted
	}

	select {
	case <-done:
	case <-ctx.Done():
		return tsp.Result{}, ctx.Err()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.result, r.err
}

// Running reports whether a run is active.
func (r *Runner) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.activeLocked()
}

// ID returns the id of the current (or last) run, uuid.Nil before Start.
func (r *Runner) ID() uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.id
}

func (r *Runner) activeLocked() bool {
	if r.done == nil {
		return false
	}
	select {
	case <-r.done:
		return false
	default:
		return true
	}
}

// freshSeed mixes a nanosecond clock reading with random bits of the run id.
func freshSeed(id uuid.UUID) int64 {
	return tsp.MixSeed(time.Now().UnixNano(), binary.LittleEndian.Uint64(id[:8]))
}
