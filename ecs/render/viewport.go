package render

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/solidstep/ecs"
	"github.com/milk9111/solidstep/ecs/component"
)

// Viewport maps y-up world units onto a y-down screen, fitting the level.
type Viewport struct {
	Zoom    float64
	OffsetX float64
	OffsetY float64
	Height  float64
}

func FitLevel(w *ecs.World, screenW, screenH float64) Viewport {
	vp := Viewport{Zoom: 1, Height: screenH}
	e, err := w.Single(component.LevelBoundsComponent.Kind())
	if err != nil {
		return vp
	}
	lb, _ := ecs.Get(w, e, component.LevelBoundsComponent)
	if lb.Width <= 0 || lb.Height <= 0 {
		return vp
	}
	vp.Zoom = min(screenW/lb.Width, screenH/lb.Height)
	vp.OffsetX = (screenW - lb.Width*vp.Zoom) / 2
	vp.OffsetY = (screenH - lb.Height*vp.Zoom) / 2
	return vp
}

func (v Viewport) Point(p cp.Vector) (float32, float32) {
	x := v.OffsetX + p.X*v.Zoom
	y := v.Height - v.OffsetY - p.Y*v.Zoom
	return float32(x), float32(y)
}

// Rect returns the screen rectangle of bb as x, y, width, height.
func (v Viewport) Rect(bb cp.BB) (float32, float32, float32, float32) {
	x, y := v.Point(cp.Vector{X: bb.L, Y: bb.T})
	return x, y, float32((bb.R - bb.L) * v.Zoom), float32((bb.T - bb.B) * v.Zoom)
}
