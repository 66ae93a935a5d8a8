package sim

import (
	"fmt"
	"image/color"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/lightshow/ecs"
	"github.com/milk9111/lightshow/ecs/component"
	"github.com/milk9111/lightshow/prefabs"
)

// DefaultBodyColor is used for scene bodies that do not name a colour.
var DefaultBodyColor = color.NRGBA{R: 0x81, G: 0x8c, B: 0xf8, A: 0xff}

// LoadScene adds every body and force point of scene. Nothing is added
// unless the whole scene validates.
func (s *Simulation) LoadScene(scene prefabs.Scene) error {
	p := s.Params()

	bodies := make([]component.Body, len(scene.Bodies))
	for i, spec := range scene.Bodies {
		b, err := NewBody(p,
			cp.Vector{X: spec.X, Y: spec.Y},
			cp.Vector{X: spec.VX, Y: spec.VY},
			spec.Radius,
			spec.Color.ColorOr(DefaultBodyColor),
			BodyOptions{Pinned: spec.Pinned, Mass: spec.Mass},
		)
		if err != nil {
			return fmt.Errorf("sim: scene %q body %d: %w", scene.Name, i, err)
		}
		bodies[i] = b
	}

	points := make([]component.ForcePoint, len(scene.ForcePoints))
	for i, spec := range scene.ForcePoints {
		fp, err := NewForcePoint(cp.Vector{X: spec.X, Y: spec.Y}, spec.Strength)
		if err != nil {
			return fmt.Errorf("sim: scene %q force point %d: %w", scene.Name, i, err)
		}
		points[i] = fp
	}

	for i, b := range bodies {
		if _, err := s.addBody(b, scene.Bodies[i].Pinned); err != nil {
			return err
		}
	}
	for _, fp := range points {
		e := s.world.CreateEntity()
		if err := ecs.Add(s.world, e, component.ForcePointComponent, fp); err != nil {
			return fmt.Errorf("sim: add force point: %w", err)
		}
	}
	return nil
}

// Scene exports the current bodies and force points so they can be saved
// and loaded again with LoadScene.
func (s *Simulation) Scene(name string) prefabs.Scene {
	scene := prefabs.Scene{Name: name}

	ents, bodies := ecs.Collect(s.world, component.BodyComponent)
	for i, b := range bodies {
		pinned := ecs.Has(s.world, ents[i], component.PinnedTagComponent)
		spec := prefabs.BodySpec{
			X:      b.Position.X,
			Y:      b.Position.Y,
			VX:     b.Velocity.X,
			VY:     b.Velocity.Y,
			Radius: b.Radius,
			Color:  prefabs.NewYAMLColor(b.Color),
			Pinned: pinned,
		}
		if b.Mass != MassForRadius(b.Radius, s.Params().MassFactor) {
			spec.Mass = b.Mass
		}
		scene.Bodies = append(scene.Bodies, spec)
	}

	_, points := ecs.Collect(s.world, component.ForcePointComponent)
	for _, fp := range points {
		scene.ForcePoints = append(scene.ForcePoints, prefabs.ForcePointSpec{
			X:        fp.Position.X,
			Y:        fp.Position.Y,
			Strength: fp.Strength,
		})
	}
	return scene
}
