package ecs

import "github.com/milk9111/lightshow/ecs/component"

func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value T) error {
	return w.AddComponent(e, handle.Kind(), value)
}

func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	return w.RemoveComponent(e, handle.Kind())
}

func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	return w.HasComponent(e, handle.Kind())
}

func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (T, bool) {
	var zero T
	value, ok := w.GetComponent(e, handle.Kind())
	if !ok {
		return zero, false
	}
	cast, ok := value.(T)
	if !ok {
		return zero, false
	}
	return cast, true
}

// Update applies fn to e's component and stores the result back.
func Update[T any](w *World, e Entity, handle component.ComponentHandle[T], fn func(*T)) bool {
	value, ok := Get(w, e, handle)
	if !ok {
		return false
	}
	fn(&value)
	return Add(w, e, handle, value) == nil
}

// Collect returns the entities holding handle and copies of their
// components, both in storage order.
func Collect[T any](w *World, handle component.ComponentHandle[T]) ([]Entity, []T) {
	if w == nil {
		return nil, nil
	}
	s := w.stores[handle.Kind().ID()]
	ids := s.ids()
	ents := make([]Entity, 0, len(ids))
	values := make([]T, 0, len(ids))
	for _, id := range ids {
		v, ok := s.Get(id).(T)
		if !ok {
			continue
		}
		ents = append(ents, w.entities.entity(id))
		values = append(values, v)
	}
	return ents, values
}
