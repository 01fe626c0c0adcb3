package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/solidstep/ecs"
	"github.com/milk9111/solidstep/ecs/component"
	"github.com/milk9111/solidstep/ecs/system"
	"github.com/milk9111/solidstep/physics"
	"golang.org/x/image/colornames"
)

// DrawWorld fills solids and outlines every actor's collider.
func DrawWorld(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	b := screen.Bounds()
	vp := FitLevel(w, float64(b.Dx()), float64(b.Dy()))

	ecs.ForEach2(w, component.ColliderComponent, component.TransformComponent, func(e ecs.Entity, col *component.Collider, t *component.Transform) {
		if !ecs.Has(w, e, component.SolidComponent) || !col.Shape.Valid() {
			return
		}
		x, y, wd, ht := vp.Rect(col.Shape.Bounds(t.Vector()))
		vector.DrawFilledRect(screen, x, y, wd, ht, colornames.Slategray, false)
	})

	for _, e := range w.Query(component.ActorComponent.Kind(), component.ColliderComponent.Kind(), component.TransformComponent.Kind()) {
		col, _ := ecs.Get(w, e, component.ColliderComponent)
		t, _ := ecs.Get(w, e, component.TransformComponent)
		actor, _ := ecs.Get(w, e, component.ActorComponent)
		clr := color.Color(colornames.Limegreen)
		if actor.Grounded {
			clr = colornames.Gold
		}
		drawShape(screen, vp, col.Shape.Shape(), t.Vector(), clr)
	}
}

// DrawPhysicsDebug outlines solids, marks this tick's contacts and prints the
// player's grounded flag with the world's state hash.
func DrawPhysicsDebug(w *ecs.World, contacts *system.ContactRecorder, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	b := screen.Bounds()
	vp := FitLevel(w, float64(b.Dx()), float64(b.Dy()))

	for _, e := range w.Query(component.SolidComponent.Kind(), component.ColliderComponent.Kind(), component.TransformComponent.Kind()) {
		col, _ := ecs.Get(w, e, component.ColliderComponent)
		t, _ := ecs.Get(w, e, component.TransformComponent)
		drawShape(screen, vp, col.Shape.Shape(), t.Vector(), colornames.Steelblue)
	}

	for _, evt := range contacts.Events() {
		x, y, wd, ht := vp.Rect(evt.Box)
		vector.StrokeRect(screen, x, y, wd, ht, 2, colornames.Red, false)
	}

	grounded := "n/a"
	if player, err := w.Single(component.PlayerTagComponent.Kind()); err == nil {
		actor, _ := ecs.Get(w, player, component.ActorComponent)
		grounded = fmt.Sprintf("%v", actor.Grounded)
	}
	text := fmt.Sprintf("Tick: %d\nGrounded: %s\nContacts: %d\nState: %016x", w.Tick(), grounded, len(contacts.Events()), system.StateHash(w))
	ebitenutil.DebugPrintAt(screen, text, 10, 24)
}

func drawShape(screen *ebiten.Image, vp Viewport, shape physics.Shape, pos cp.Vector, clr color.Color) {
	switch s := shape.(type) {
	case physics.AABB:
		x, y, wd, ht := vp.Rect(s.Box(pos))
		vector.StrokeRect(screen, x, y, wd, ht, 1, clr, false)
	case physics.RayCast:
		x0, y0 := vp.Point(pos)
		x1, y1 := vp.Point(s.End(pos))
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, colornames.Orange, true)
	case physics.Custom:
		for _, p := range s.Parts() {
			drawShape(screen, vp, p.Shape.Shape(), pos.Add(p.Offset), clr)
		}
	case physics.SharedShape:
		drawShape(screen, vp, s.Shape(), pos, clr)
	}
}
