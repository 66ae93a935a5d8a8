package system

import (
	"fmt"

	"github.com/milk9111/lightshow/ecs"
	"github.com/milk9111/lightshow/ecs/component"
)

// EffectSystem ages every visual effect once per tick and destroys the ones
// whose life ran out.
type EffectSystem struct{}

func NewEffectSystem() *EffectSystem {
	return &EffectSystem{}
}

func (s *EffectSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	for _, e := range w.Query(component.EffectComponent.Kind()) {
		fx, ok := ecs.Get(w, e, component.EffectComponent)
		if !ok || fx == nil {
			w.DestroyEntity(e)
			continue
		}

		AgeEffect(fx)
		if !fx.Alive() {
			w.DestroyEntity(e)
		}
	}
}

// AgeEffect advances one effect by a tick.
func AgeEffect(fx component.Effect) {
	switch v := fx.(type) {
	case *component.Shockwave:
		v.Life -= component.ShockwaveDecay
		v.Radius += component.ShockwaveGrowth
	case *component.Spark:
		v.Life -= component.SparkDecay
		v.Position = v.Position.Add(v.Velocity)
	default:
		panic(fmt.Sprintf("effect system: unknown effect %T", fx))
	}
}
