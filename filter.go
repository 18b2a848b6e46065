package bento

import (
	"reflect"
	"unsafe"
)

// Filter is a fast, cache-friendly iterator over all entities that have a
// specific component. It iterates directly over the component arrays within
// matching archetypes.
//
// A filter walks entity sets that are disjoint between archetypes, which is
// what makes it a natural companion to WorldView.GetComponentDynamicMutUnchecked:
// the iteration order itself proves no slot is visited twice.
type Filter[T any] struct {
	world   *World
	cur     *archetype
	base    unsafe.Pointer
	entity  Entity
	include bitmask256
	stride  uintptr
	archIdx int
	index   int
	size    int
	id      uint8
}

// NewFilter creates a filter over all entities possessing the component T.
func NewFilter[T any](w *World) *Filter[T] {
	id := w.getCompTypeID(reflect.TypeFor[T]())
	var m bitmask256
	m.set(id)
	f := &Filter[T]{
		world:   w,
		include: m,
		stride:  w.compIDToSize[id],
		id:      id,
	}
	f.Reset()
	return f
}

// Reset rewinds the iterator. Call it to iterate the same set again or after
// the world's archetype list changed.
func (f *Filter[T]) Reset() {
	f.archIdx = 0
	f.index = -1
	f.size = 0
	f.cur = nil
}

// Next advances to the next matching entity. It must be called before
// Entity or Get, and returns false when iteration is complete.
func (f *Filter[T]) Next() bool {
	f.index++
	if f.index < f.size {
		f.entity = f.cur.entityIDs[f.index]
		return true
	}
	for f.archIdx < len(f.world.archetypes) {
		a := f.world.archetypes[f.archIdx]
		f.archIdx++
		if a.size == 0 || !a.mask.contains(f.include) {
			continue
		}
		f.cur = a
		f.base = a.compPointers[f.id]
		f.size = a.size
		f.index = 0
		f.entity = a.entityIDs[0]
		return true
	}
	return false
}

// Entity returns the current entity.
func (f *Filter[T]) Entity() Entity {
	return f.entity
}

// Get returns a pointer to the component for the current entity.
func (f *Filter[T]) Get() *T {
	return (*T)(unsafe.Pointer(uintptr(f.base) + uintptr(f.index)*f.stride))
}

// Filter2 iterates over all entities that have both components T1 and T2.
type Filter2[T1, T2 any] struct {
	world   *World
	cur     *archetype
	base1   unsafe.Pointer
	base2   unsafe.Pointer
	entity  Entity
	include bitmask256
	stride1 uintptr
	stride2 uintptr
	archIdx int
	index   int
	size    int
	id1     uint8
	id2     uint8
}

// NewFilter2 creates a filter over all entities possessing both T1 and T2.
func NewFilter2[T1, T2 any](w *World) *Filter2[T1, T2] {
	id1 := w.getCompTypeID(reflect.TypeFor[T1]())
	id2 := w.getCompTypeID(reflect.TypeFor[T2]())
	var m bitmask256
	m.set(id1)
	m.set(id2)
	f := &Filter2[T1, T2]{
		world:   w,
		include: m,
		stride1: w.compIDToSize[id1],
		stride2: w.compIDToSize[id2],
		id1:     id1,
		id2:     id2,
	}
	f.Reset()
	return f
}

// Reset rewinds the iterator.
func (f *Filter2[T1, T2]) Reset() {
	f.archIdx = 0
	f.index = -1
	f.size = 0
	f.cur = nil
}

// Next advances to the next matching entity.
func (f *Filter2[T1, T2]) Next() bool {
	f.index++
	if f.index < f.size {
		f.entity = f.cur.entityIDs[f.index]
		return true
	}
	for f.archIdx < len(f.world.archetypes) {
		a := f.world.archetypes[f.archIdx]
		f.archIdx++
		if a.size == 0 || !a.mask.contains(f.include) {
			continue
		}
		f.cur = a
		f.base1 = a.compPointers[f.id1]
		f.base2 = a.compPointers[f.id2]
		f.size = a.size
		f.index = 0
		f.entity = a.entityIDs[0]
		return true
	}
	return false
}

// Entity returns the current entity.
func (f *Filter2[T1, T2]) Entity() Entity {
	return f.entity
}

// Get returns pointers to both components for the current entity.
func (f *Filter2[T1, T2]) Get() (*T1, *T2) {
	p1 := unsafe.Pointer(uintptr(f.base1) + uintptr(f.index)*f.stride1)
	p2 := unsafe.Pointer(uintptr(f.base2) + uintptr(f.index)*f.stride2)
	return (*T1)(p1), (*T2)(p2)
}
