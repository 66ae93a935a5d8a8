package system

import (
	"math/rand/v2"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/lightshow/common"
	"github.com/milk9111/lightshow/ecs"
	"github.com/milk9111/lightshow/ecs/component"
)

// EffectSpawnSystem turns this tick's collision events into shockwaves and,
// for hard impacts, bursts of sparks.
type EffectSpawnSystem struct {
	rng *rand.Rand
}

// NewEffectSpawnSystem uses rng for spark directions; nil picks a randomly
// seeded source.
func NewEffectSpawnSystem(rng *rand.Rand) *EffectSpawnSystem {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &EffectSpawnSystem{rng: rng}
}

func (s *EffectSpawnSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	settings, ok := settingsOf(w)
	if !ok || !settings.Effects {
		return
	}

	for _, evt := range w.Events().Of(ecs.EventCollision) {
		hit, ok := evt.Data.(ecs.CollisionEvent)
		if !ok {
			continue
		}
		c := common.ZoneColor(hit.Point.X, settings.Width)
		spawnEffect(w, component.NewShockwave(hit.Point, hit.Impact*2, c))
		if hit.Impact <= settings.SparkThreshold {
			continue
		}
		for i := 0; i < settings.SparkCount; i++ {
			vel := cp.Vector{
				X: (s.rng.Float64() - 0.5) * 2 * component.SparkMaxSpeed,
				Y: (s.rng.Float64() - 0.5) * 2 * component.SparkMaxSpeed,
			}
			spawnEffect(w, component.NewSpark(hit.Point, vel, c))
		}
	}
}

func spawnEffect(w *ecs.World, fx component.Effect) {
	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.EffectComponent, fx); err != nil {
		panic("effect spawn system: add effect: " + err.Error())
	}
}
