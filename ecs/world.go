package ecs

import (
	"fmt"

	"github.com/milk9111/lightshow/ecs/component"
)

// kind is satisfied by every component.ComponentKind[T].
type kind interface {
	ID() component.ComponentID
	Valid() bool
}

// World owns entities, their components and the per-tick event queue.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	events   EventQueue
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and retires its handle.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e.id())
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns every live entity in id order.
func (w *World) Entities() []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

func (w *World) AddComponent(e Entity, k kind, value any) error {
	if w == nil || !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	if k == nil || !k.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	s, ok := w.stores[k.ID()]
	if !ok {
		s = &SparseSet{}
		w.stores[k.ID()] = s
	}
	s.Set(e.id(), value)
	return nil
}

func (w *World) GetComponent(e Entity, k kind) (any, bool) {
	if w == nil || !w.entities.isAlive(e) || k == nil {
		return nil, false
	}
	s := w.stores[k.ID()]
	if !s.Has(e.id()) {
		return nil, false
	}
	return s.Get(e.id()), true
}

func (w *World) HasComponent(e Entity, k kind) bool {
	if w == nil || !w.entities.isAlive(e) || k == nil {
		return false
	}
	return w.stores[k.ID()].Has(e.id())
}

func (w *World) RemoveComponent(e Entity, k kind) bool {
	if w == nil || !w.entities.isAlive(e) || k == nil {
		return false
	}
	return w.stores[k.ID()].Remove(e.id())
}

// Query returns the live entities holding every listed kind, ordered by the
// first kind's storage order.
func (w *World) Query(kinds ...kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, len(kinds))
	for i, k := range kinds {
		sets[i] = w.stores[k.ID()]
		if sets[i] == nil {
			return nil
		}
	}
	ids := intersect(sets[0], sets[1:]...)
	out := make([]Entity, 0, len(ids))
	for _, id := range ids {
		out = append(out, w.entities.entity(id))
	}
	return out
}

// First returns the first entity holding k.
func (w *World) First(k kind) (Entity, bool) {
	if w == nil || k == nil {
		return 0, false
	}
	ids := w.stores[k.ID()].ids()
	if len(ids) == 0 {
		return 0, false
	}
	return w.entities.entity(ids[0]), true
}

// Count returns how many entities hold k.
func (w *World) Count(k kind) int {
	if w == nil || k == nil {
		return 0
	}
	return w.stores[k.ID()].Len()
}

func (w *World) String() string {
	if w == nil {
		return "ecs.World(nil)"
	}
	return fmt.Sprintf("ecs.World(entities=%d stores=%d)", w.entities.count, len(w.stores))
}
