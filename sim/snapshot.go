package sim

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/lightshow/ecs"
	"github.com/milk9111/lightshow/ecs/component"
)

// BodyState is a body as seen by a renderer.
type BodyState struct {
	Entity ecs.Entity
	Pinned bool
	component.Body
}

// Snapshot is a copy of the simulation state after a tick. Mutating it
// does not affect the simulation.
type Snapshot struct {
	Tick        uint64
	Params      Params
	Bodies      []BodyState
	ForcePoints []component.ForcePoint
	Shockwaves  []component.Shockwave
	Sparks      []component.Spark
}

// Snapshot copies the current state. Bodies are in spawn order.
func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{Tick: s.tick, Params: s.Params()}

	ents, bodies := ecs.Collect(s.world, component.BodyComponent)
	snap.Bodies = make([]BodyState, len(bodies))
	for i, b := range bodies {
		snap.Bodies[i] = BodyState{
			Entity: ents[i],
			Pinned: ecs.Has(s.world, ents[i], component.PinnedTagComponent),
			Body:   b,
		}
	}

	_, snap.ForcePoints = ecs.Collect(s.world, component.ForcePointComponent)

	_, effects := ecs.Collect(s.world, component.EffectComponent)
	for _, fx := range effects {
		switch v := fx.(type) {
		case *component.Shockwave:
			snap.Shockwaves = append(snap.Shockwaves, *v)
		case *component.Spark:
			snap.Sparks = append(snap.Sparks, *v)
		default:
			panic(fmt.Sprintf("sim: unknown effect %T", fx))
		}
	}
	return snap
}

// Stats summarises a simulation at one tick.
type Stats struct {
	Tick          uint64
	Bodies        int
	ForcePoints   int
	Effects       int
	Collisions    int
	Momentum      cp.Vector
	KineticEnergy float64
}

// Stats reports counts and conserved quantities over the free bodies.
func (s *Simulation) Stats() Stats {
	st := Stats{
		Tick:        s.tick,
		Bodies:      s.world.Count(component.BodyComponent.Kind()),
		ForcePoints: s.world.Count(component.ForcePointComponent.Kind()),
		Effects:     s.world.Count(component.EffectComponent.Kind()),
		Collisions:  s.collisions,
	}
	ents, bodies := ecs.Collect(s.world, component.BodyComponent)
	for i, b := range bodies {
		if ecs.Has(s.world, ents[i], component.PinnedTagComponent) {
			continue
		}
		st.Momentum = st.Momentum.Add(b.Momentum())
		st.KineticEnergy += b.KineticEnergy()
	}
	return st
}

// Fingerprint hashes tick, body and effect state. Two runs with the same
// inputs and seed produce the same fingerprint.
func (snap Snapshot) Fingerprint() uint64 {
	buf := make([]byte, 0, 8*(2+6*len(snap.Bodies)+3*len(snap.Shockwaves)+4*len(snap.Sparks)))
	put := func(fs ...float64) {
		for _, f := range fs {
			buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(f))
		}
	}
	buf = binary.LittleEndian.AppendUint64(buf, snap.Tick)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(len(snap.Bodies)))
	for _, b := range snap.Bodies {
		put(b.Position.X, b.Position.Y, b.Velocity.X, b.Velocity.Y, b.Radius, b.Mass)
	}
	for _, sw := range snap.Shockwaves {
		put(sw.Position.X, sw.Position.Y, sw.Life)
	}
	for _, sp := range snap.Sparks {
		put(sp.Position.X, sp.Position.Y, sp.Velocity.X, sp.Velocity.Y)
	}
	return xxhash.Sum64(buf)
}
