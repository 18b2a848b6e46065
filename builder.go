package bento

import "reflect"

// Builder creates entities directly inside the archetype for component T,
// skipping the per-entity archetype lookup.
type Builder[T any] struct {
	world *World
	arch  *archetype
	id    uint8
}

// NewBuilder creates a builder for entities holding component T.
func NewBuilder[T any](w *World) *Builder[T] {
	t := reflect.TypeFor[T]()
	id := w.getCompTypeID(t)
	var mask bitmask256
	mask.set(id)
	sp := compSpec{id: id, typ: t, size: w.compIDToSize[id]}
	arch := w.getOrCreateArchetype(mask, []compSpec{sp})
	return &Builder[T]{world: w, arch: arch, id: id}
}

// NewEntity creates one entity with a zero-valued T.
func (b *Builder[T]) NewEntity() Entity {
	return b.world.createEntity(b.arch)
}

// NewEntities creates count entities with zero-valued components and returns
// them.
func (b *Builder[T]) NewEntities(count int) []Entity {
	ents := make([]Entity, count)
	for i := range ents {
		ents[i] = b.world.createEntity(b.arch)
	}
	return ents
}

// Get returns a pointer to the component of the entity, or nil if the entity
// no longer lives in this builder's archetype.
func (b *Builder[T]) Get(e Entity) *T {
	return GetComponent[T](b.world, e)
}

// Builder2 creates entities directly inside the archetype for components
// T1 and T2.
type Builder2[T1, T2 any] struct {
	world *World
	arch  *archetype
	id1   uint8
	id2   uint8
}

// NewBuilder2 creates a builder for entities holding components T1 and T2.
func NewBuilder2[T1, T2 any](w *World) *Builder2[T1, T2] {
	t1 := reflect.TypeFor[T1]()
	t2 := reflect.TypeFor[T2]()
	id1 := w.getCompTypeID(t1)
	id2 := w.getCompTypeID(t2)
	var mask bitmask256
	mask.set(id1)
	mask.set(id2)
	specs := []compSpec{
		{id: id1, typ: t1, size: w.compIDToSize[id1]},
		{id: id2, typ: t2, size: w.compIDToSize[id2]},
	}
	arch := w.getOrCreateArchetype(mask, specs)
	return &Builder2[T1, T2]{world: w, arch: arch, id1: id1, id2: id2}
}

// NewEntity creates one entity with zero-valued components.
func (b *Builder2[T1, T2]) NewEntity() Entity {
	return b.world.createEntity(b.arch)
}

// NewEntities creates count entities with zero-valued components and returns
// them.
func (b *Builder2[T1, T2]) NewEntities(count int) []Entity {
	ents := make([]Entity, count)
	for i := range ents {
		ents[i] = b.world.createEntity(b.arch)
	}
	return ents
}
