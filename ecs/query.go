package ecs

import (
	"errors"
	"fmt"
	"slices"

	"github.com/milk9111/solidstep/ecs/component"
)

var (
	ErrNoEntity         = errors.New("ecs: no entity matches query")
	ErrMultipleEntities = errors.New("ecs: more than one entity matches query")
)

// IntersectEntities returns entity IDs present in both sets.
func IntersectEntities(a, b *SparseSet) []int {
	if a == nil || b == nil {
		return nil
	}
	// iterate smaller set
	if len(a.denseEntities) > len(b.denseEntities) {
		a, b = b, a
	}
	out := make([]int, 0, len(a.denseEntities))
	for _, id := range a.denseEntities {
		if b.Has(id) {
			out = append(out, id)
		}
	}
	return out
}

// Query returns the live entities carrying every kind, sorted by ascending
// id so iteration order is reproducible tick to tick.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}

	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		s := w.store(k.ID(), false)
		if s == nil || s.Len() == 0 {
			return nil
		}
		sets = append(sets, s)
	}
	slices.SortFunc(sets, func(a, b *SparseSet) int { return a.Len() - b.Len() })

	ids := append([]int(nil), sets[0].Entities()...)
	for _, s := range sets[1:] {
		ids = slices.DeleteFunc(ids, func(id int) bool { return !s.Has(id) })
	}
	slices.Sort(ids)

	out := make([]Entity, 0, len(ids))
	for _, id := range ids {
		if e, ok := w.entities.entity(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// First returns the lowest-id entity carrying kind.
func (w *World) First(kinds ...component.Kind) (Entity, bool) {
	ents := w.Query(kinds...)
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}

// Single returns the only entity matching the query. Zero or several matches
// are reported as errors so callers relying on a unique entity notice.
func (w *World) Single(kinds ...component.Kind) (Entity, error) {
	ents := w.Query(kinds...)
	switch len(ents) {
	case 0:
		return 0, ErrNoEntity
	case 1:
		return ents[0], nil
	default:
		return 0, fmt.Errorf("%w: %d matches", ErrMultipleEntities, len(ents))
	}
}
