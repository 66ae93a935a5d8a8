package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/lightshow/logging"
	"go.uber.org/zap"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging and overlay")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	presetName := flag.String("preset", "lightshow", "preset name in prefabs/ (basename, .yaml optional)")
	sceneName := flag.String("scene", "", "scene script in prefabs/scripts/ (overrides the preset's script)")
	seed := flag.Uint64("seed", 0, "random seed for sparks, particle sizes and scene scripts (0 = random)")
	flag.Parse()

	logger, err := logging.New(*debug)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	game, err := NewGame(Config{
		Preset: *presetName,
		Scene:  *sceneName,
		Seed:   *seed,
		Debug:  *debug,
		Logger: logger,
	})
	if err != nil {
		logger.Fatal("failed to start", zap.Error(err))
	}
	defer game.Close()

	w, h := game.Size()
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("lightshow")

	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("game exited", zap.Error(err))
	}
}
