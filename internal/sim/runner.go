package sim

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/crawley-dev/physics-toy/internal/input"
)

// Runner drives a Frontend without a display, advancing it frame by
// frame with an empty input snapshot.
type Runner struct {
	front     Frontend
	log       *zap.Logger
	observers []Observer
}

func NewRunner(front Frontend, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{
		front:     front,
		log:       log,
		observers: make([]Observer, 0),
	}
}

func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

func (r *Runner) Run(ctx context.Context, cfg RunConfig) (*Result, error) {
	if err := validateRunConfig(cfg); err != nil {
		return nil, err
	}

	if !r.front.Running() {
		r.front.ToggleRun()
	}

	var in input.Snapshot
	dt := cfg.Dt.Seconds()
	t := 0.0
	started := time.Now()

	result := &Result{Seed: cfg.Seed}

	for i := 0; i < cfg.Frames; i++ {
		select {
		case <-ctx.Done():
			result.Elapsed = time.Since(started)
			return result, ctx.Err()
		default:
		}

		r.front.Update(&in, cfg.Dt)
		t += dt
		result.FramesRun++
		result.SimTime = t

		for _, obs := range r.observers {
			obs.OnFrame(r.front, uint64(i+1), t)
		}
		in.ClearFrame()
	}

	result.Elapsed = time.Since(started)
	r.log.Debug("headless run complete",
		zap.Int("frames", result.FramesRun),
		zap.Duration("elapsed", result.Elapsed))
	return result, nil
}

func validateRunConfig(cfg RunConfig) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %v", cfg.Dt)
	}
	if cfg.Frames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", cfg.Frames)
	}
	return nil
}
