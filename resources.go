package bento

import (
	"reflect"
	"unsafe"
)

// Resources manages the world's resource slots: at most one value per type,
// addressed by a numeric slot ID. Values are stored behind pointers so that
// references handed out stay valid across slice growth. Designed for O(1)
// operations and minimal allocations.
type Resources struct {
	items   []any // *T values
	elems   []reflect.Type
	ticks   []uint64 // change tick per slot
	types   map[reflect.Type]int
	freeIds []int
}

// Add adds a resource (a pointer to its value) and returns its slot ID.
// Panics if res is nil, not a pointer, or a resource of the same type already
// exists. Reuses free IDs if available.
func (r *Resources) Add(res any) int {
	if res == nil {
		panic("bento: cannot add nil resource")
	}
	t := reflect.TypeOf(res)
	if t.Kind() != reflect.Pointer {
		panic("bento: resources must be added as pointers")
	}
	elem := t.Elem()
	if r.types == nil {
		r.types = make(map[reflect.Type]int)
	}
	if _, ok := r.types[elem]; ok {
		panic("bento: resource of the same type already exists")
	}
	var id int
	if len(r.freeIds) > 0 {
		id = r.freeIds[len(r.freeIds)-1]
		r.freeIds = r.freeIds[:len(r.freeIds)-1]
		r.items[id] = res
		r.elems[id] = elem
		r.ticks[id] = 0
	} else {
		r.items = append(r.items, res)
		r.elems = append(r.elems, elem)
		r.ticks = append(r.ticks, 0)
		id = len(r.items) - 1
	}
	r.types[elem] = id
	return id
}

// Has checks if a resource with the given ID exists.
func (r *Resources) Has(id int) bool {
	return id >= 0 && id < len(r.items) && r.items[id] != nil
}

// Get retrieves the resource by ID, or nil if it doesn't exist.
func (r *Resources) Get(id int) any {
	if !r.Has(id) {
		return nil
	}
	return r.items[id]
}

// Remove removes the resource by ID if it exists, marking the ID as free for
// reuse.
func (r *Resources) Remove(id int) {
	if !r.Has(id) {
		return
	}
	delete(r.types, r.elems[id])
	r.items[id] = nil
	r.elems[id] = nil
	r.ticks[id] = 0
	r.freeIds = append(r.freeIds, id)
}

// Clear removes all resources, resetting the free list.
func (r *Resources) Clear() {
	for i := range r.items {
		r.items[i] = nil
		r.elems[i] = nil
	}
	r.items = r.items[:0]
	r.elems = r.elems[:0]
	r.ticks = r.ticks[:0]
	clear(r.types)
	r.freeIds = r.freeIds[:0]
}

// idOf resolves the slot ID holding a value of type t.
func (r *Resources) idOf(t reflect.Type) (int, bool) {
	id, ok := r.types[t]
	return id, ok
}

// ptr returns a type-erased pointer to the slot's value.
func (r *Resources) ptr(id int) (unsafe.Pointer, bool) {
	if !r.Has(id) {
		return nil, false
	}
	return reflect.ValueOf(r.items[id]).UnsafePointer(), true
}

// HasResource checks if a resource of type T exists, returning true and its
// ID, or false and -1.
func HasResource[T any](r *Resources) (bool, int) {
	if id, ok := r.types[reflect.TypeFor[T]()]; ok {
		return true, id
	}
	return false, -1
}

// GetResource retrieves the resource of type T if it exists, returning it as
// *T and its ID, or nil and -1.
func GetResource[T any](r *Resources) (*T, int) {
	if id, ok := r.types[reflect.TypeFor[T]()]; ok {
		return r.items[id].(*T), id
	}
	return nil, -1
}
