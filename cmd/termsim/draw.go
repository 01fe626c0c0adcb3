package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/solidstep/ecs"
	"github.com/milk9111/solidstep/ecs/component"
	"github.com/milk9111/solidstep/sim"
)

var (
	solidStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	actorStyle   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	groundStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	contactStyle = tcell.StyleDefault.Foreground(tcell.ColorRed)
	statusStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// grid maps y-up world units onto terminal cells. A cell covers twice as
// much world height as width.
type grid struct {
	cellW, cellH float64
	height       float64
	cols, rows   int
}

func newGrid(w *ecs.World, cols, rows int) grid {
	g := grid{cellW: 1, cellH: 2, cols: cols, rows: rows}
	e, err := w.Single(component.LevelBoundsComponent.Kind())
	if err != nil || cols <= 0 || rows <= 0 {
		return g
	}
	lb, _ := ecs.Get(w, e, component.LevelBoundsComponent)
	k := math.Max(lb.Width/float64(cols), lb.Height/float64(rows)/2)
	if k <= 0 {
		return g
	}
	g.cellW, g.cellH, g.height = k, 2*k, lb.Height
	return g
}

func (g grid) fill(screen tcell.Screen, bb cp.BB, r rune, style tcell.Style) {
	x0 := int(math.Floor(bb.L / g.cellW))
	x1 := int(math.Ceil(bb.R/g.cellW)) - 1
	y0 := int(math.Floor((g.height - bb.T) / g.cellH))
	y1 := int(math.Ceil((g.height-bb.B)/g.cellH)) - 1
	for y := max(y0, 0); y <= min(y1, g.rows-1); y++ {
		for x := max(x0, 0); x <= min(x1, g.cols-1); x++ {
			screen.SetContent(x, y, r, nil, style)
		}
	}
}

func draw(screen tcell.Screen, s *sim.Sim) {
	screen.Clear()
	w := s.World
	width, height := screen.Size()
	g := newGrid(w, width, height-1)

	for _, e := range w.Query(component.SolidComponent.Kind(), component.ColliderComponent.Kind(), component.TransformComponent.Kind()) {
		col, _ := ecs.Get(w, e, component.ColliderComponent)
		t, _ := ecs.Get(w, e, component.TransformComponent)
		g.fill(screen, col.Shape.Bounds(t.Vector()), '#', solidStyle)
	}
	for _, evt := range s.Contacts.Events() {
		g.fill(screen, evt.Box, '#', contactStyle)
	}

	grounded := false
	for _, e := range w.Query(component.ActorComponent.Kind(), component.ColliderComponent.Kind(), component.TransformComponent.Kind()) {
		col, _ := ecs.Get(w, e, component.ColliderComponent)
		t, _ := ecs.Get(w, e, component.TransformComponent)
		actor, _ := ecs.Get(w, e, component.ActorComponent)
		glyph := 'o'
		if ecs.Has(w, e, component.PlayerTagComponent) {
			glyph = '@'
			grounded = actor.Grounded
		}
		style := actorStyle
		if actor.Grounded {
			style = groundStyle
		}
		g.fill(screen, col.Shape.Bounds(t.Vector()), glyph, style)
	}

	status := fmt.Sprintf(" tick %d  grounded %v  contacts %d  hash %016x  [arrows/ad move, space jump, r reset, q quit]",
		w.Tick(), grounded, len(s.Contacts.Events()), s.Hash())
	for i, r := range status {
		if i >= width {
			break
		}
		screen.SetContent(i, height-1, r, nil, statusStyle)
	}
	screen.Show()
}
