package ecs

import (
	"testing"

	"github.com/milk9111/lightshow/ecs/component"
)

func TestSparseWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, w.CreateEntity())
			}
			if len(w.Entities()) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(w.Entities()))
			}
			if c.destroyIndex >= 0 {
				if !w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if w.IsAlive(ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return false the second time")
				}
			}
		})
	}
}

func TestRecycledEntityHasNewGeneration(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	old := w.CreateEntity()
	if err := Add(w, old, h, 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	w.DestroyEntity(old)

	fresh := w.CreateEntity()
	if fresh.id() != old.id() {
		t.Fatalf("expected id %d to be recycled, got %d", old.id(), fresh.id())
	}
	if fresh == old {
		t.Fatalf("recycled entity must differ from the stale handle")
	}
	if Has(w, fresh, h) {
		t.Fatalf("recycled entity must not inherit components")
	}
	if _, ok := Get(w, old, h); ok {
		t.Fatalf("stale handle must not resolve")
	}
}

func TestSparseWorldComponentsAndQueries(t *testing.T) {
	t.Run("component_table", func(t *testing.T) {
		w := NewWorld()

		h1 := component.NewComponent[int]()
		h2 := component.NewComponent[string]()
		h3 := component.NewComponent[float64]()

		e1 := w.CreateEntity()
		e2 := w.CreateEntity()

		tests := []struct {
			name     string
			setup    func() error
			check    func(t *testing.T)
			teardown func() bool
		}{
			{
				name:  "add_int_to_e1",
				setup: func() error { return Add(w, e1, h1, 10) },
				check: func(t *testing.T) {
					v, ok := Get(w, e1, h1)
					if !ok || v != 10 {
						t.Fatalf("expected 10, got %v ok=%v", v, ok)
					}
				},
				teardown: func() bool { return Remove(w, e1, h1) },
			},
			{
				name: "add_str_to_e1_and_e2",
				setup: func() error {
					if err := Add(w, e1, h2, "a"); err != nil {
						return err
					}
					return Add(w, e2, h2, "b")
				},
				check: func(t *testing.T) {
					if !Has(w, e1, h2) || !Has(w, e2, h2) {
						t.Fatalf("expected both entities to have string component")
					}
					if got := w.Query(h2.Kind()); len(got) != 2 {
						t.Fatalf("expected 2 entities in query, got %d", len(got))
					}
				},
				teardown: func() bool { return Remove(w, e1, h2) },
			},
			{
				name:  "add_float_and_remove",
				setup: func() error { return Add(w, e1, h3, 1.23) },
				check: func(t *testing.T) {
					if _, ok := Get(w, e1, h3); !ok {
						t.Fatalf("expected float present")
					}
				},
				teardown: func() bool { return Remove(w, e1, h3) },
			},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				if err := tc.setup(); err != nil {
					t.Fatalf("setup failed: %v", err)
				}
				tc.check(t)
				if !tc.teardown() {
					t.Fatalf("teardown failed for %s", tc.name)
				}
			})
		}
	})

	t.Run("add_to_dead_entity", func(t *testing.T) {
		w := NewWorld()
		h := component.NewComponent[int]()
		e := w.CreateEntity()
		w.DestroyEntity(e)
		if err := Add(w, e, h, 1); err != component.ErrEntityNotAlive {
			t.Fatalf("expected ErrEntityNotAlive, got %v", err)
		}
	})

	t.Run("nil_interface_component", func(t *testing.T) {
		w := NewWorld()
		h := component.NewComponent[error]()
		e := w.CreateEntity()
		if err := Add(w, e, h, nil); err != component.ErrNilComponent {
			t.Fatalf("expected ErrNilComponent, got %v", err)
		}
	})
}

func TestQueryIntersection(t *testing.T) {
	w := NewWorld()
	hi := component.NewComponent[int]()
	hs := component.NewComponent[string]()

	e1 := w.CreateEntity()
	e2 := w.CreateEntity()
	e3 := w.CreateEntity()

	for _, e := range []Entity{e1, e2, e3} {
		if err := Add(w, e, hi, 1); err != nil {
			t.Fatalf("add int: %v", err)
		}
	}
	if err := Add(w, e3, hs, "x"); err != nil {
		t.Fatalf("add string: %v", err)
	}
	if err := Add(w, e1, hs, "y"); err != nil {
		t.Fatalf("add string: %v", err)
	}

	got := w.Query(hi.Kind(), hs.Kind())
	if len(got) != 2 || got[0] != e1 || got[1] != e3 {
		t.Fatalf("expected [%v %v], got %v", e1, e3, got)
	}

	unused := component.NewComponent[bool]()
	if got := w.Query(hi.Kind(), unused.Kind()); len(got) != 0 {
		t.Fatalf("query with empty store should be empty, got %v", got)
	}
	if first, ok := w.First(hs.Kind()); !ok || first != e3 {
		t.Fatalf("expected first string holder %v, got %v ok=%v", e3, first, ok)
	}
}

func TestCollectKeepsInsertionOrder(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	var want []Entity
	for i := 0; i < 5; i++ {
		e := w.CreateEntity()
		if err := Add(w, e, h, i); err != nil {
			t.Fatalf("add: %v", err)
		}
		want = append(want, e)
	}
	// Overwriting must not move an entity in storage.
	if !Update(w, want[1], h, func(v *int) { *v = 42 }) {
		t.Fatalf("update failed")
	}

	ents, values := Collect(w, h)
	if len(ents) != len(want) {
		t.Fatalf("expected %d entities, got %d", len(want), len(ents))
	}
	for i := range want {
		if ents[i] != want[i] {
			t.Fatalf("index %d: expected %v, got %v", i, want[i], ents[i])
		}
	}
	if values[1] != 42 {
		t.Fatalf("expected updated value 42, got %d", values[1])
	}
}

func TestDestroyRemovesComponents(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	e := w.CreateEntity()
	if err := Add(w, e, h, 7); err != nil {
		t.Fatalf("add: %v", err)
	}
	w.DestroyEntity(e)
	if w.Count(h.Kind()) != 0 {
		t.Fatalf("expected empty store after destroy, got %d", w.Count(h.Kind()))
	}
}

type recordSystem struct {
	seen *[]int
}

func (r recordSystem) Update(w *World) {
	*r.seen = append(*r.seen, w.Events().Len())
}

type pushSystem struct{}

func (pushSystem) Update(w *World) {
	w.Events().Push(Event{Type: EventCollision, Data: CollisionEvent{Impact: 3}})
}

func TestSchedulerFlushesEventsAfterSystems(t *testing.T) {
	w := NewWorld()
	var seen []int
	s := NewScheduler(pushSystem{}, recordSystem{seen: &seen})

	s.Update(w)
	s.Update(w)

	if len(seen) != 2 || seen[0] != 1 || seen[1] != 1 {
		t.Fatalf("expected each tick to see only its own event, got %v", seen)
	}
	if w.Events().Len() != 0 {
		t.Fatalf("expected queue flushed after update, got %d", w.Events().Len())
	}
}

func TestEventQueueOf(t *testing.T) {
	var q EventQueue
	q.Push(Event{Type: EventCollision, Data: CollisionEvent{Impact: 1}})
	q.Push(Event{Type: "other"})
	q.Push(Event{Type: EventCollision, Data: CollisionEvent{Impact: 2}})

	got := q.Of(EventCollision)
	if len(got) != 2 {
		t.Fatalf("expected 2 collision events, got %d", len(got))
	}
	if got[1].Data.(CollisionEvent).Impact != 2 {
		t.Fatalf("expected events in push order")
	}

	drained := q.Drain()
	if len(drained) != 3 || q.Len() != 0 {
		t.Fatalf("expected drain to return all 3 and empty the queue, got %d left %d", len(drained), q.Len())
	}
}

func TestEntityString(t *testing.T) {
	e := makeEntity(3, 2)
	if e.String() != "3v2" {
		t.Fatalf("expected 3v2, got %s", e.String())
	}
	if Entity(0).Valid() {
		t.Fatalf("zero entity must be invalid")
	}
}
