package ecs

import "github.com/milk9111/solidstep/ecs/component"

// Add stores a copy of value on e, replacing any previous value.
func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value T) error {
	v := value
	return w.AddComponent(e, handle.Kind().ID(), &v)
}

func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	return w.RemoveComponent(e, handle.Kind().ID())
}

func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	return w.HasComponent(e, handle.Kind().ID())
}

// Get returns a copy of the component; write changes back with Add.
func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (T, bool) {
	var zero T
	ptr, ok := getPtr(w, e, handle)
	if !ok {
		return zero, false
	}
	return *ptr, true
}

func getPtr[T any](w *World, e Entity, handle component.ComponentHandle[T]) (*T, bool) {
	value, ok := w.GetComponent(e, handle.Kind().ID())
	if !ok {
		return nil, false
	}
	ptr, ok := value.(*T)
	if !ok || ptr == nil {
		return nil, false
	}
	return ptr, true
}

// ForEach calls fn with a pointer into storage for every entity carrying
// handle, in ascending entity id order.
func ForEach[T any](w *World, handle component.ComponentHandle[T], fn func(Entity, *T)) {
	if w == nil || fn == nil {
		return
	}
	for _, e := range w.Query(handle.Kind()) {
		if ptr, ok := getPtr(w, e, handle); ok {
			fn(e, ptr)
		}
	}
}

// ForEach2 is ForEach over entities carrying both components.
func ForEach2[A, B any](w *World, ha component.ComponentHandle[A], hb component.ComponentHandle[B], fn func(Entity, *A, *B)) {
	if w == nil || fn == nil {
		return
	}
	for _, e := range w.Query(ha.Kind(), hb.Kind()) {
		a, okA := getPtr(w, e, ha)
		b, okB := getPtr(w, e, hb)
		if okA && okB {
			fn(e, a, b)
		}
	}
}
