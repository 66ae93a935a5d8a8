package main

import (
	"github.com/milk9111/lightshow/prefabs"
	"go.uber.org/zap"
	"golang.design/x/clipboard"
)

// initClipboard reports whether the system clipboard is usable. It is not on
// Linux without X11 or Wayland, and scene export is then disabled.
func initClipboard(log *zap.Logger) bool {
	if err := clipboard.Init(); err != nil {
		log.Warn("clipboard unavailable; scene export disabled", zap.Error(err))
		return false
	}
	return true
}

// copyScene writes the current bodies and force points to the clipboard as
// a YAML scene that can be pasted into a preset.
func (g *Game) copyScene() {
	if !g.clipboard {
		return
	}
	scene := g.sim.Scene(g.preset.Name)
	data, err := prefabs.MarshalScene(scene)
	if err != nil {
		g.log.Warn("scene export failed", zap.Error(err))
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	g.log.Info("scene copied",
		zap.Int("bodies", len(scene.Bodies)),
		zap.Int("force_points", len(scene.ForcePoints)),
	)
}
