package main

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/google/uuid"
	"github.com/milk9111/lightshow/prefabs"
	"github.com/milk9111/lightshow/sim"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Config describes a batch of headless runs.
type Config struct {
	Preset string
	Scene  string
	Ticks  int
	Runs   int
	Seed   uint64
}

// Result is the final state of one run.
type Result struct {
	Index       int
	ID          uuid.UUID
	Seed        uint64
	Stats       sim.Stats
	Fingerprint uint64
}

var errNoRuns = errors.New("headless: runs and ticks must be positive")

// RunAll simulates cfg.Runs independent sessions in parallel. Each
// simulation stays on its own goroutine; results come back in run order.
func RunAll(ctx context.Context, cfg Config, log *zap.Logger) ([]Result, error) {
	if cfg.Runs <= 0 || cfg.Ticks <= 0 {
		return nil, errNoRuns
	}

	preset, err := prefabs.LoadPreset(cfg.Preset, sim.DefaultParams())
	if err != nil {
		return nil, err
	}
	script := preset.Script
	if cfg.Scene != "" {
		script = cfg.Scene
	}

	results := make([]Result, cfg.Runs)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i := 0; i < cfg.Runs; i++ {
		g.Go(func() error {
			r, err := runOne(ctx, preset, script, cfg.Ticks, cfg.Seed+uint64(i), log)
			if err != nil {
				return fmt.Errorf("run %d: %w", i, err)
			}
			r.Index = i
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runOne(ctx context.Context, preset *prefabs.PresetSpec, script string, ticks int, seed uint64, log *zap.Logger) (Result, error) {
	id := uuid.New()
	log = log.With(zap.Stringer("run", id), zap.Uint64("seed", seed))

	s, err := sim.New(preset.Params, sim.WithLogger(log), sim.WithSeed(seed))
	if err != nil {
		return Result{}, err
	}
	if err := s.LoadScene(preset.Scene); err != nil {
		return Result{}, err
	}
	if script != "" {
		p := s.Params()
		scene, err := prefabs.RunSceneScript(ctx, script, p.Width, p.Height, int64(seed))
		if err != nil {
			return Result{}, err
		}
		if err := s.LoadScene(scene); err != nil {
			return Result{}, err
		}
	}

	log.Debug("run started", zap.Int("bodies", s.Stats().Bodies), zap.Int("ticks", ticks))
	for t := 0; t < ticks; t++ {
		if t%64 == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		s.Step()
	}

	st := s.Stats()
	fp := s.Snapshot().Fingerprint()
	log.Info("run finished",
		zap.Uint64("tick", st.Tick),
		zap.Int("bodies", st.Bodies),
		zap.Int("effects", st.Effects),
		zap.Float64("kinetic_energy", st.KineticEnergy),
		zap.String("fingerprint", fmt.Sprintf("%016x", fp)),
	)
	return Result{ID: id, Seed: seed, Stats: st, Fingerprint: fp}, nil
}
