package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/milk9111/lightshow/logging"
	"go.uber.org/zap"
)

func main() {
	presetName := flag.String("preset", "lightshow", "preset name in prefabs/ (basename, .yaml optional)")
	sceneName := flag.String("scene", "", "scene script in prefabs/scripts/ (overrides the preset's script)")
	ticks := flag.Int("ticks", 600, "ticks to simulate per run")
	runs := flag.Int("runs", 1, "number of independent runs, simulated in parallel")
	seed := flag.Uint64("seed", 1, "seed of the first run; run i uses seed+i")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logger := logging.Must(*debug)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := RunAll(ctx, Config{
		Preset: *presetName,
		Scene:  *sceneName,
		Ticks:  *ticks,
		Runs:   *runs,
		Seed:   *seed,
	}, logger)
	if err != nil {
		logger.Error("headless run failed", zap.Error(err))
		os.Exit(1)
	}

	for _, r := range results {
		fmt.Printf("run=%d seed=%d ticks=%d bodies=%d effects=%d fingerprint=%016x\n",
			r.Index, r.Seed, r.Stats.Tick, r.Stats.Bodies, r.Stats.Effects, r.Fingerprint)
	}
}
