package sim

import (
	"fmt"
	"image/color"
	"math/rand/v2"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/lightshow/ecs"
	"github.com/milk9111/lightshow/ecs/component"
	"github.com/milk9111/lightshow/ecs/system"
	"go.uber.org/zap"
)

// Simulation owns one sandbox session: the world with its bodies, force
// points and effects, and the systems that advance it. It is not safe for
// concurrent use; drive it from a single goroutine.
type Simulation struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	settings  ecs.Entity
	log       *zap.Logger
	rng       *rand.Rand

	tick       uint64
	collisions int
}

type Option func(*Simulation)

// WithLogger routes debug output to l.
func WithLogger(l *zap.Logger) Option {
	return func(s *Simulation) {
		if l != nil {
			s.log = l
		}
	}
}

// WithSeed makes spark directions reproducible.
func WithSeed(seed uint64) Option {
	return func(s *Simulation) {
		s.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// New builds an empty simulation with parameters p.
func New(p Params, opts ...Option) (*Simulation, error) {
	if err := ValidateParams(p); err != nil {
		return nil, err
	}

	s := &Simulation{
		world: ecs.NewWorld(),
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.settings = s.world.CreateEntity()
	if err := ecs.Add(s.world, s.settings, component.SettingsTagComponent, component.SettingsTag{}); err != nil {
		return nil, fmt.Errorf("sim: settings entity: %w", err)
	}
	if err := ecs.Add(s.world, s.settings, component.SettingsComponent, p); err != nil {
		return nil, fmt.Errorf("sim: settings entity: %w", err)
	}

	s.scheduler = ecs.NewScheduler(
		system.NewForceSystem(),
		system.NewMotionSystem(),
		system.NewCollisionSystem(),
		system.NewEffectSpawnSystem(s.rng),
		system.NewEffectSystem(),
		&statsSystem{sim: s},
	)
	return s, nil
}

// Params returns the current parameters.
func (s *Simulation) Params() Params {
	p, _ := ecs.Get(s.world, s.settings, component.SettingsComponent)
	return p
}

// SetParams replaces the parameters. It may be called between ticks.
func (s *Simulation) SetParams(p Params) error {
	if err := ValidateParams(p); err != nil {
		return err
	}
	return ecs.Add(s.world, s.settings, component.SettingsComponent, p)
}

// UpdateParams applies fn to a copy of the parameters and stores the result
// if it validates.
func (s *Simulation) UpdateParams(fn func(*Params)) error {
	p := s.Params()
	fn(&p)
	return s.SetParams(p)
}

// SpawnBody adds a body; its mass is derived from radius unless opts.Mass
// is set.
func (s *Simulation) SpawnBody(pos, vel cp.Vector, radius float64, c color.NRGBA, opts BodyOptions) (ecs.Entity, error) {
	b, err := NewBody(s.Params(), pos, vel, radius, c, opts)
	if err != nil {
		s.log.Debug("spawn rejected", zap.Error(err))
		return 0, err
	}
	return s.addBody(b, opts.Pinned)
}

func (s *Simulation) addBody(b component.Body, pinned bool) (ecs.Entity, error) {
	e := s.world.CreateEntity()
	if err := ecs.Add(s.world, e, component.BodyComponent, b); err != nil {
		return 0, fmt.Errorf("sim: add body: %w", err)
	}
	if pinned {
		if err := ecs.Add(s.world, e, component.PinnedTagComponent, component.PinnedTag{}); err != nil {
			return 0, fmt.Errorf("sim: pin body: %w", err)
		}
	}
	return e, nil
}

// PlaceForcePoint adds a stationary attractor (strength > 0) or repulsor
// (strength < 0).
func (s *Simulation) PlaceForcePoint(pos cp.Vector, strength float64) (ecs.Entity, error) {
	fp, err := NewForcePoint(pos, strength)
	if err != nil {
		s.log.Debug("force point rejected", zap.Error(err))
		return 0, err
	}
	e := s.world.CreateEntity()
	if err := ecs.Add(s.world, e, component.ForcePointComponent, fp); err != nil {
		return 0, fmt.Errorf("sim: add force point: %w", err)
	}
	return e, nil
}

// Reset removes every body, force point and effect. Parameters are kept.
func (s *Simulation) Reset() {
	removed := 0
	for _, e := range s.world.Entities() {
		if e == s.settings {
			continue
		}
		if s.world.DestroyEntity(e) {
			removed++
		}
	}
	s.world.Events().Drain()
	s.collisions = 0
	s.log.Debug("simulation reset", zap.Int("removed", removed), zap.Uint64("tick", s.tick))
}

// Step advances the simulation by one tick: forces, integration and walls,
// collisions, effect spawning, effect ageing.
func (s *Simulation) Step() {
	s.scheduler.Update(s.world)
	s.tick++
}

// Tick returns the number of completed steps.
func (s *Simulation) Tick() uint64 {
	return s.tick
}

// World exposes the underlying world for read-only inspection.
func (s *Simulation) World() *ecs.World {
	return s.world
}

// statsSystem runs last and records per-tick counters before the event
// queue is flushed.
type statsSystem struct {
	sim *Simulation
}

func (st *statsSystem) Update(w *ecs.World) {
	st.sim.collisions = len(w.Events().Of(ecs.EventCollision))
}
