package component

import "github.com/milk9111/solidstep/physics"

// Collider pairs a shared shape with the entity's Transform. ShapeName is the
// shape library entry the handle came from, empty for shapes built in code.
type Collider struct {
	Shape     physics.SharedShape
	ShapeName string
}

// Release drops the collider's shape handle.
func (c *Collider) Release() {
	c.Shape.Release()
	c.Shape = physics.SharedShape{}
}

var ColliderComponent = NewComponent[Collider]()
