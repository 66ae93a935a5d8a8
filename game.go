package main

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/lightshow/prefabs"
	"github.com/milk9111/lightshow/sim"
	"github.com/milk9111/lightshow/tool"
	"go.uber.org/zap"
)

// Config is what main parses from the command line.
type Config struct {
	Preset string
	Scene  string
	Seed   uint64
	Debug  bool
	Logger *zap.Logger
}

type Game struct {
	frames int
	debug  bool
	log    *zap.Logger
	rng    *rand.Rand
	seed   uint64

	sim      *sim.Simulation
	preset   *prefabs.PresetSpec
	script   string
	tool     tool.Tool
	paused   bool
	stepOnce bool

	dragging  bool
	dragStart cp.Vector

	renderer  *Renderer
	ui        *ebitenui.UI
	panel     *ToolPanel
	watcher   *prefabs.Watcher
	clipboard bool
}

func NewGame(cfg Config) (*Game, error) {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	preset, err := prefabs.LoadPreset(cfg.Preset, sim.DefaultParams())
	if err != nil {
		return nil, err
	}

	s, err := sim.New(preset.Params, sim.WithLogger(log), sim.WithSeed(seed))
	if err != nil {
		return nil, fmt.Errorf("preset %s: %w", cfg.Preset, err)
	}

	g := &Game{
		debug:    cfg.Debug,
		log:      log,
		rng:      rand.New(rand.NewPCG(seed, seed+1)),
		seed:     seed,
		sim:      s,
		preset:   preset,
		script:   preset.Script,
		renderer: NewRenderer(),
	}
	if cfg.Scene != "" {
		g.script = cfg.Scene
	}
	if err := g.loadScene(); err != nil {
		return nil, err
	}

	g.panel = NewToolPanel(g)
	g.ui = g.panel.UI

	if w, err := prefabs.NewWatcher("prefabs", "prefabs/scripts"); err != nil {
		log.Warn("hot reload disabled", zap.Error(err))
	} else {
		g.watcher = w
	}
	g.clipboard = initClipboard(log)

	log.Info("game started",
		zap.String("preset", preset.Name),
		zap.String("script", g.script),
		zap.Uint64("seed", seed),
	)
	return g, nil
}

// loadScene places the preset's inline bodies and, when set, the scene
// script's bodies.
func (g *Game) loadScene() error {
	if err := g.sim.LoadScene(g.preset.Scene); err != nil {
		return err
	}
	if g.script == "" {
		return nil
	}
	p := g.sim.Params()
	scene, err := prefabs.RunSceneScript(context.Background(), g.script, p.Width, p.Height, int64(g.seed))
	if err != nil {
		return err
	}
	return g.sim.LoadScene(scene)
}

func (g *Game) reloadScene() {
	g.sim.Reset()
	if err := g.loadScene(); err != nil {
		g.log.Warn("scene reload failed", zap.String("script", g.script), zap.Error(err))
	}
}

func (g *Game) reloadPreset() {
	preset, err := prefabs.LoadPreset(g.preset.Name, sim.DefaultParams())
	if err != nil {
		g.log.Warn("preset reload failed", zap.String("preset", g.preset.Name), zap.Error(err))
		return
	}
	// The window keeps its size; only physics and tool settings change.
	p := preset.Params
	cur := g.sim.Params()
	p.Width, p.Height = cur.Width, cur.Height
	if err := g.sim.SetParams(p); err != nil {
		g.log.Warn("preset rejected", zap.String("preset", preset.Name), zap.Error(err))
		return
	}
	g.preset = preset
	g.panel.Refresh()
	g.log.Info("preset reloaded", zap.String("preset", preset.Name))
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			switch {
			case change.Kind == prefabs.ChangePreset && change.Name == g.preset.Name:
				g.reloadPreset()
			case change.Kind == prefabs.ChangeScript && change.Name == prefabs.ScriptName(g.script):
				g.reloadScene()
				g.log.Info("scene reloaded", zap.String("script", g.script))
			}
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			g.log.Warn("watcher", zap.Error(err))
		default:
			return
		}
	}
}

func (g *Game) Update() error {
	g.frames++

	g.pollWatcher()
	g.ui.Update()
	g.handleKeys()
	g.handleMouse()

	if !g.paused || g.stepOnce {
		g.sim.Step()
		g.stepOnce = false
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.sim.Snapshot()
	g.renderer.Draw(screen, snap)
	if g.dragging {
		x, y := ebiten.CursorPosition()
		g.renderer.DrawDrag(screen, g.dragStart, cp.Vector{X: float64(x), Y: float64(y)})
	}

	g.ui.Draw(screen)

	st := g.sim.Stats()
	hud := fmt.Sprintf("Particles: %d    Tool: %s    FPS: %.2f", st.Bodies+st.ForcePoints, g.tool, ebiten.ActualFPS())
	if g.paused {
		hud += "    [paused]"
	}
	if g.debug {
		hud += fmt.Sprintf("\ntick %d  effects %d  collisions %d  KE %.1f  p (%.2f, %.2f)",
			st.Tick, st.Effects, st.Collisions, st.KineticEnergy, st.Momentum.X, st.Momentum.Y)
	}
	w := screen.Bounds().Dx()
	ebitenutil.DebugPrintAt(screen, hud, w-420, 4)
}

// Size returns the simulation bounds in pixels.
func (g *Game) Size() (int, int) {
	p := g.sim.Params()
	return int(p.Width), int(p.Height)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	p := g.sim.Params()
	return p.Width, p.Height
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}
