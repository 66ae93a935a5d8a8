package main

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/lightshow/sim"
	"github.com/milk9111/lightshow/tool"
)

// ToolPanel is the control strip in the top-left corner: tool selection,
// reset, pause and the physics toggles.
type ToolPanel struct {
	UI *ebitenui.UI

	game      *Game
	container *widget.Container
	tools     map[tool.Tool]*widget.Button
	pause     *widget.Button
	gravity   *widget.Button
	collide   *widget.Button
	effects   *widget.Button
	status    *widget.Text
}

var (
	panelBg    = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 160}
	buttonBg   = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}
	selectedBg = color.NRGBA{R: 0x4f, G: 0x46, B: 0xe5, A: 255}
	textColor  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

func NewToolPanel(g *Game) *ToolPanel {
	panelImg := imageui.NewNineSliceColor(panelBg)
	btnImg := imageui.NewNineSliceColor(buttonBg)
	selImg := imageui.NewNineSliceColor(selectedBg)

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	btnTextColor := &widget.ButtonTextColor{Idle: textColor}
	buttonImage := &widget.ButtonImage{Idle: btnImg, Hover: selImg, Pressed: selImg}

	p := &ToolPanel{game: g, tools: make(map[tool.Tool]*widget.Button)}

	newButton := func(label string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(buttonImage),
			widget.ButtonOpts.Text(label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true})),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		)
	}

	p.container = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 10, Bottom: 10, Left: 10, Right: 10}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(150, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionStart, VerticalPosition: widget.AnchorLayoutPositionStart}),
		),
	)

	p.container.AddChild(widget.NewText(
		widget.TextOpts.Text("Tools", &face, textColor),
	))
	for i, t := range tool.All {
		btn := newButton(fmt.Sprintf("%d  %s", i+1, t), func() { g.setTool(t) })
		p.tools[t] = btn
		p.container.AddChild(btn)
	}

	p.container.AddChild(widget.NewText(
		widget.TextOpts.Text("Physics", &face, textColor),
	))
	p.gravity = newButton("", func() {
		g.updateParams(func(params *sim.Params) { params.MutualGravity = !params.MutualGravity })
	})
	p.collide = newButton("", func() {
		g.updateParams(func(params *sim.Params) { params.ParticleCollisions = !params.ParticleCollisions })
	})
	p.effects = newButton("", func() {
		g.updateParams(func(params *sim.Params) { params.Effects = !params.Effects })
	})
	p.pause = newButton("", g.togglePause)
	p.container.AddChild(p.gravity)
	p.container.AddChild(p.collide)
	p.container.AddChild(p.effects)
	p.container.AddChild(p.pause)
	p.container.AddChild(newButton("R  Reset", g.reset))

	p.status = widget.NewText(
		widget.TextOpts.Text("", &face, textColor),
	)
	p.container.AddChild(p.status)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(p.container)

	p.UI = &ebitenui.UI{Container: root}
	p.Refresh()
	return p
}

// Refresh rewrites the labels from the current game state.
func (p *ToolPanel) Refresh() {
	if p == nil || p.game == nil {
		return
	}
	for t, btn := range p.tools {
		label := btn.Text()
		if label == nil {
			continue
		}
		marker := " "
		if t == p.game.tool {
			marker = ">"
		}
		label.Label = fmt.Sprintf("%s %d  %s", marker, int(t)+1, t)
	}

	params := p.game.sim.Params()
	setLabel(p.gravity, "G  Mutual gravity", params.MutualGravity)
	setLabel(p.collide, "C  Collisions", params.ParticleCollisions)
	setLabel(p.effects, "E  Effects", params.Effects)
	if label := p.pause.Text(); label != nil {
		if p.game.paused {
			label.Label = "P  Resume"
		} else {
			label.Label = "P  Pause"
		}
	}
	p.status.Label = fmt.Sprintf("gravity %.2f  trail %.2f\npreset %s", params.GravityY, params.TrailDecay, p.game.preset.Name)
}

// Contains reports whether pt is over the panel, so clicks on it do not
// also spawn.
func (p *ToolPanel) Contains(pt image.Point) bool {
	if p == nil || p.container == nil {
		return false
	}
	return pt.In(p.container.GetWidget().Rect)
}

func setLabel(btn *widget.Button, name string, on bool) {
	label := btn.Text()
	if label == nil {
		return
	}
	state := "off"
	if on {
		state = "on"
	}
	label.Label = fmt.Sprintf("%s: %s", name, state)
}
