package component

// CollisionResponse opts an entity into velocity adjustment on collision
// events. Script optionally names a tengo script under prefabs/scripts.
type CollisionResponse struct {
	Script string
}

var CollisionResponseComponent = NewComponent[CollisionResponse]()
