package system

import (
	"github.com/milk9111/lightshow/ecs"
	"github.com/milk9111/lightshow/ecs/component"
)

func settingsOf(w *ecs.World) (component.Settings, bool) {
	e, ok := w.First(component.SettingsComponent.Kind())
	if !ok {
		return component.Settings{}, false
	}
	return ecs.Get(w, e, component.SettingsComponent)
}

// freeBodies returns the non-pinned bodies in spawn order.
func freeBodies(w *ecs.World) ([]ecs.Entity, []component.Body) {
	ents, bodies := ecs.Collect(w, component.BodyComponent)
	n := 0
	for i, e := range ents {
		if ecs.Has(w, e, component.PinnedTagComponent) {
			continue
		}
		ents[n], bodies[n] = e, bodies[i]
		n++
	}
	return ents[:n], bodies[:n]
}

func storeBodies(w *ecs.World, ents []ecs.Entity, bodies []component.Body) {
	for i, e := range ents {
		if err := ecs.Add(w, e, component.BodyComponent, bodies[i]); err != nil {
			panic("system: store body: " + err.Error())
		}
	}
}
