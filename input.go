package main

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/lightshow/sim"
	"github.com/milk9111/lightshow/tool"
	"go.uber.org/zap"
)

const (
	gravityStep = 0.05
	trailStep   = 0.05
)

var toolKeys = map[ebiten.Key]tool.Tool{
	ebiten.Key1: tool.ToolParticle,
	ebiten.Key2: tool.ToolAttractor,
	ebiten.Key3: tool.ToolRepulsor,
	ebiten.Key4: tool.ToolBlackHole,
}

func (g *Game) handleKeys() {
	for key, t := range toolKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.setTool(t)
		}
	}

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.reset()
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		g.reloadScene()
	case inpututil.IsKeyJustPressed(ebiten.KeyP), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.togglePause()
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		if g.paused {
			g.stepOnce = true
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyC) && ctrl:
		g.copyScene()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.updateParams(func(p *sim.Params) { p.ParticleCollisions = !p.ParticleCollisions })
	case inpututil.IsKeyJustPressed(ebiten.KeyG):
		g.updateParams(func(p *sim.Params) { p.MutualGravity = !p.MutualGravity })
	case inpututil.IsKeyJustPressed(ebiten.KeyE):
		g.updateParams(func(p *sim.Params) { p.Effects = !p.Effects })
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		g.updateParams(func(p *sim.Params) { p.GravityY += gravityStep })
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		g.updateParams(func(p *sim.Params) { p.GravityY -= gravityStep })
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft):
		g.updateParams(func(p *sim.Params) { p.TrailDecay = max(p.TrailDecay-trailStep, 0.01) })
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketRight):
		g.updateParams(func(p *sim.Params) { p.TrailDecay = min(p.TrailDecay+trailStep, 1) })
	}
}

func (g *Game) handleMouse() {
	x, y := ebiten.CursorPosition()
	cursor := cp.Vector{X: float64(x), Y: float64(y)}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if g.panel.Contains(image.Pt(x, y)) {
			return
		}
		g.dragging = true
		g.dragStart = cursor
		return
	}

	if g.dragging && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.dragging = false
		if _, err := tool.Apply(g.sim, g.tool, g.preset.Tools, g.dragStart, cursor, g.rng); err != nil {
			g.log.Warn("tool rejected", zap.Stringer("tool", g.tool), zap.Error(err))
		}
	}
}

func (g *Game) setTool(t tool.Tool) {
	g.tool = t
	g.panel.Refresh()
}

func (g *Game) reset() {
	g.sim.Reset()
	g.renderer.Clear()
}

func (g *Game) togglePause() {
	g.paused = !g.paused
	g.panel.Refresh()
}

func (g *Game) updateParams(fn func(*sim.Params)) {
	if err := g.sim.UpdateParams(fn); err != nil {
		g.log.Warn("parameter change rejected", zap.Error(err))
		return
	}
	g.panel.Refresh()
}
