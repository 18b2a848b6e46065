package bento

import "reflect"

// Entity is a unique ID + version tag.
type Entity struct {
	ID      uint32
	Version uint32
}

// entityMeta holds where an entity lives.
type entityMeta struct {
	archetypeIndex int    // index in World.archetypes
	index          int    // position inside archetype
	version        uint32 // current version, 0 if the entity is dead
}

// EntityComponent identifies a single component slot: the component of the
// given type at the given entity. It is the key the view layer partitions
// component access by.
type EntityComponent struct {
	Entity Entity
	Type   reflect.Type
}
