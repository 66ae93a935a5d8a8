package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/lightshow/common"
	"github.com/milk9111/lightshow/sim"
	"golang.org/x/image/colornames"
)

var (
	background  = color.NRGBA{R: 17, G: 24, B: 39, A: 0xff}
	attractorFg = color.NRGBA{R: 0, G: 255, B: 150, A: 128}
	repulsorFg  = color.NRGBA{R: 255, G: 100, B: 100, A: 128}
)

const (
	shockwaveWidth = 3
	sparkRadius    = 2
)

// Renderer draws snapshots. Everything is drawn onto a persistent trail
// layer that is faded towards the background by TrailDecay each frame.
type Renderer struct {
	trails *ebiten.Image
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Clear drops the trail layer so the next frame starts on a clean
// background.
func (r *Renderer) Clear() {
	if r.trails != nil {
		r.trails.Fill(background)
	}
}

func (r *Renderer) Draw(screen *ebiten.Image, snap sim.Snapshot) {
	w, h := int(snap.Params.Width), int(snap.Params.Height)
	if r.trails == nil || r.trails.Bounds().Dx() != w || r.trails.Bounds().Dy() != h {
		r.trails = ebiten.NewImage(w, h)
		r.trails.Fill(background)
	}

	fade := background
	fade.A = uint8(snap.Params.TrailDecay*0xff + 0.5)
	vector.FillRect(r.trails, 0, 0, float32(w), float32(h), fade, false)

	for _, b := range snap.Bodies {
		x, y, rad := float32(b.Position.X), float32(b.Position.Y), float32(b.Radius)
		vector.FillCircle(r.trails, x, y, rad, b.Color, true)
		if b.Pinned {
			vector.StrokeCircle(r.trails, x, y, rad, 2, colornames.Slategray, true)
		}
	}

	for _, fp := range snap.ForcePoints {
		c := repulsorFg
		if fp.Attractor() {
			c = attractorFg
		}
		vector.FillCircle(r.trails, float32(fp.Position.X), float32(fp.Position.Y), float32(fp.Radius), c, true)
	}

	for _, sw := range snap.Shockwaves {
		vector.StrokeCircle(r.trails, float32(sw.Position.X), float32(sw.Position.Y), float32(sw.Radius), shockwaveWidth, fadeTo(sw.Color, sw.Life), true)
	}
	for _, sp := range snap.Sparks {
		vector.FillCircle(r.trails, float32(sp.Position.X), float32(sp.Position.Y), sparkRadius, fadeTo(sp.Color, sp.Life), true)
	}

	screen.DrawImage(r.trails, nil)
}

// DrawDrag shows the launch vector while the mouse is held.
func (r *Renderer) DrawDrag(screen *ebiten.Image, from, to cp.Vector) {
	vector.StrokeLine(screen, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), 2, colornames.Lightgrey, true)
}

// fadeTo scales c's alpha by life in [0, 1].
func fadeTo(c color.NRGBA, life float64) color.NRGBA {
	if life < 0 {
		life = 0
	}
	if life > 1 {
		life = 1
	}
	c.A = uint8(common.Lerp(0, float32(c.A), float32(life)) + 0.5)
	return c
}
