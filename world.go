// Package bento implements a high-performance, archetype-based Entity
// Component System together with capability-scoped world views.
//
// Features:
//   - Archetype-based storage with max 256 component types.
//   - Bitmask for fast archetype lookup.
//   - Unsafe pointers for zero-GC overhead on component access.
//   - Preallocated pools for entities and component arrays.
//   - Simple, generic Builder and Filter APIs for 1 or 2 components.
//   - WorldView: a single exclusive world handle partitioned into
//     provably-disjoint sub-handles, safe to hand to independent consumers.
package bento

import (
	"reflect"
	"unsafe"
)

// MaxComponentTypes defines the maximum number of unique component types that
// can be registered in a World. This value is fixed at 256.
const MaxComponentTypes = 256

// compSpec bundles a component type’s ID and reflect.Type.
type compSpec struct {
	typ  reflect.Type
	size uintptr
	id   uint8
}

// World owns all entities, component storage and resource slots. Exactly one
// view hierarchy may hold it at a time; the view layer partitions permission
// to touch it, never the storage itself.
type World struct {
	compIDToType   [MaxComponentTypes]reflect.Type
	compIDToSize   [MaxComponentTypes]uintptr
	compTypeMap    map[reflect.Type]uint8
	maskToArcIndex map[bitmask256]int // lookup mask→archetype index
	archetypes     []*archetype
	metas          []entityMeta // len = capacity
	freeIDs        []uint32     // stack of free entity IDs
	resources      *Resources
	events         *EventBus
	capacity       int
	nextEntityVer  uint32
	nextCompTypeID uint16
	changeTick     uint64 // current observation window, starts at 1
}

// NewWorld preallocates pools for up to capacity entities. The world grows
// past the initial capacity on demand.
func NewWorld(capacity int) *World {
	w := &World{
		compTypeMap:    make(map[reflect.Type]uint8, 16),
		maskToArcIndex: make(map[bitmask256]int),
		archetypes:     make([]*archetype, 0, 16),
		metas:          make([]entityMeta, capacity),
		freeIDs:        make([]uint32, capacity),
		resources:      &Resources{},
		events:         &EventBus{},
		capacity:       capacity,
		nextEntityVer:  1,
		changeTick:     1,
	}
	for i := 0; i < capacity; i++ {
		// fill freeIDs with [capacity-1 .. 0]
		w.freeIDs[i] = uint32(capacity - 1 - i)
	}
	for i := range w.metas {
		w.metas[i].archetypeIndex = -1
		w.metas[i].index = -1
	}
	// Pre-create the empty archetype
	w.getOrCreateArchetype(bitmask256{}, nil)
	return w
}

// Resources returns the world's resource slots: at most one value per type,
// addressable by numeric slot ID.
func (w *World) Resources() *Resources {
	return w.resources
}

// Events returns the world's event bus. Dirty-marks fired through the view
// layer publish ResourceChanged and ComponentChanged here.
func (w *World) Events() *EventBus {
	return w.events
}

// AddResource inserts a resource (a pointer to its value) and returns its
// slot ID. The slot is marked changed in the current observation window.
func (w *World) AddResource(res any) int {
	id := w.resources.Add(res)
	w.resources.ticks[id] = w.changeTick
	return id
}

// ChangeTick returns the current observation window.
func (w *World) ChangeTick() uint64 {
	return w.changeTick
}

// AdvanceTick opens a new observation window. Slots marked changed in an
// earlier window are no longer considered dirty.
func (w *World) AdvanceTick() {
	w.changeTick++
}

// IsValid checks if the entity is still valid. An entity is valid if its ID
// is in bounds and its version matches the world's version for that ID, which
// protects against stale references to recycled IDs.
func (w *World) IsValid(e Entity) bool {
	if int(e.ID) >= len(w.metas) {
		return false
	}
	meta := w.metas[e.ID]
	return meta.version != 0 && meta.version == e.Version
}

// getCompTypeID registers or fetches a component type ID for t.
func (w *World) getCompTypeID(t reflect.Type) uint8 {
	if id, ok := w.compTypeMap[t]; ok {
		return id
	}
	if w.nextCompTypeID >= MaxComponentTypes {
		panic("bento: too many component types")
	}
	id := uint8(w.nextCompTypeID)
	w.compTypeMap[t] = id
	w.compIDToType[id] = t
	w.compIDToSize[id] = t.Size()
	w.nextCompTypeID++
	return id
}

// componentID resolves the numeric slot ID for a component type without
// registering it.
func (w *World) componentID(t reflect.Type) (uint8, bool) {
	id, ok := w.compTypeMap[t]
	return id, ok
}

// getOrCreateArchetype returns an archetype for the given mask; if missing,
// allocates component storage arrays for the world's entity capacity.
func (w *World) getOrCreateArchetype(mask bitmask256, specs []compSpec) *archetype {
	if idx, ok := w.maskToArcIndex[mask]; ok {
		return w.archetypes[idx]
	}
	c := max(w.capacity, 1)
	a := &archetype{
		index:     len(w.archetypes),
		mask:      mask,
		entityIDs: make([]Entity, c),
		cap:       c,
	}
	for _, sp := range specs {
		slice := reflect.MakeSlice(reflect.SliceOf(sp.typ), c, c)
		a.compPointers[sp.id] = slice.UnsafePointer()
		a.compSizes[sp.id] = sp.size
		a.compTicks[sp.id] = make([]uint64, c)
		a.compOrder = append(a.compOrder, sp.id)
	}
	w.archetypes = append(w.archetypes, a)
	w.maskToArcIndex[mask] = a.index
	return a
}

// growArchetype doubles the archetype's entity slots, moving component data
// into freshly allocated arrays.
func (w *World) growArchetype(a *archetype) {
	newCap := max(a.cap*2, 1)
	newEntityIDs := make([]Entity, newCap)
	copy(newEntityIDs, a.entityIDs)
	a.entityIDs = newEntityIDs
	for _, id := range a.compOrder {
		typ := w.compIDToType[id]
		slice := reflect.MakeSlice(reflect.SliceOf(typ), newCap, newCap)
		ptr := slice.UnsafePointer()
		memCopy(ptr, a.compPointers[id], uintptr(a.size)*a.compSizes[id])
		a.compPointers[id] = ptr
		newTicks := make([]uint64, newCap)
		copy(newTicks, a.compTicks[id])
		a.compTicks[id] = newTicks
	}
	a.cap = newCap
}

// expand increases entity capacity when the free ID pool runs dry.
func (w *World) expand(additional int) {
	oldCap := w.capacity
	newCap := oldCap * 2
	if newCap == 0 {
		newCap = 1
	}
	if newCap < oldCap+additional {
		newCap = oldCap + additional
	}
	delta := newCap - oldCap
	newMetas := make([]entityMeta, delta)
	for i := range newMetas {
		newMetas[i].archetypeIndex = -1
		newMetas[i].index = -1
	}
	w.metas = append(w.metas, newMetas...)
	for i := range delta {
		w.freeIDs = append(w.freeIDs, uint32(newCap-1-i))
	}
	w.capacity = newCap
}

// createEntity bumps an entity into the given archetype.
// Zero allocations on the hot path while pools have room.
func (w *World) createEntity(a *archetype) Entity {
	if len(w.freeIDs) == 0 {
		w.expand(1)
	}
	// pop an ID
	last := len(w.freeIDs) - 1
	id := w.freeIDs[last]
	w.freeIDs = w.freeIDs[:last]
	if a.size == a.cap {
		w.growArchetype(a)
	}
	meta := &w.metas[id]
	meta.archetypeIndex = a.index
	meta.index = a.size
	meta.version = w.nextEntityVer
	ent := Entity{ID: id, Version: meta.version}
	a.entityIDs[a.size] = ent
	for _, cid := range a.compOrder {
		memZero(a.compPtr(cid, a.size), a.compSizes[cid])
		a.compTicks[cid][a.size] = 0
	}
	a.size++
	w.nextEntityVer++
	return ent
}

// CreateEntity creates a new entity with no components.
func (w *World) CreateEntity() Entity {
	return w.createEntity(w.archetypes[w.maskToArcIndex[bitmask256{}]])
}

// RemoveEntity deletes e from its archetype, swapping the last element in.
func (w *World) RemoveEntity(e Entity) {
	if !w.IsValid(e) {
		return
	}
	meta := &w.metas[e.ID]
	a := w.archetypes[meta.archetypeIndex]
	w.removeFromArchetype(a, meta)
	meta.archetypeIndex = -1
	meta.index = -1
	meta.version = 0
	w.freeIDs = append(w.freeIDs, e.ID)
}

// removeFromArchetype removes the entity at meta from the archetype without
// freeing its ID or invalidating its version.
func (w *World) removeFromArchetype(a *archetype, meta *entityMeta) {
	idx := meta.index
	lastIdx := a.size - 1
	if idx < lastIdx {
		lastEnt := a.entityIDs[lastIdx]
		a.entityIDs[idx] = lastEnt
		for _, id := range a.compOrder {
			src := a.compPtr(id, lastIdx)
			dst := a.compPtr(id, idx)
			memCopy(dst, src, a.compSizes[id])
			a.compTicks[id][idx] = a.compTicks[id][lastIdx]
		}
		w.metas[lastEnt.ID].index = idx
	}
	a.size--
}

// moveEntity relocates the entity at meta into target, carrying over every
// component target also stores (change ticks included). Returns the new index.
func (w *World) moveEntity(e Entity, meta *entityMeta, target *archetype) int {
	a := w.archetypes[meta.archetypeIndex]
	if target.size == target.cap {
		w.growArchetype(target)
	}
	newIdx := target.size
	target.entityIDs[newIdx] = e
	target.size++
	for _, id := range a.compOrder {
		if !target.mask.containsBit(id) {
			continue
		}
		memCopy(target.compPtr(id, newIdx), a.compPtr(id, meta.index), a.compSizes[id])
		target.compTicks[id][newIdx] = a.compTicks[id][meta.index]
	}
	w.removeFromArchetype(a, meta)
	meta.archetypeIndex = target.index
	meta.index = newIdx
	return newIdx
}

// ClearEntities removes all entities, recycling their IDs and resetting
// archetypes without deallocating storage.
func (w *World) ClearEntities() {
	for i := range w.metas {
		w.metas[i].archetypeIndex = -1
		w.metas[i].index = -1
		w.metas[i].version = 0
	}
	w.freeIDs = w.freeIDs[:0]
	for i := uint32(0); i < uint32(w.capacity); i++ {
		w.freeIDs = append(w.freeIDs, i)
	}
	for _, a := range w.archetypes {
		a.size = 0
	}
}

// componentPtr returns a type-erased pointer to the component slot id at e.
// The pointer stays valid until the entity moves archetypes or is removed.
func (w *World) componentPtr(e Entity, id uint8) (unsafe.Pointer, bool) {
	if !w.IsValid(e) {
		return nil, false
	}
	meta := w.metas[e.ID]
	a := w.archetypes[meta.archetypeIndex]
	if !a.mask.containsBit(id) {
		return nil, false
	}
	return a.compPtr(id, meta.index), true
}

// componentTick returns the change tick recorded for the component slot id
// at e, or 0 if the slot does not exist.
func (w *World) componentTick(e Entity, id uint8) uint64 {
	if !w.IsValid(e) {
		return 0
	}
	meta := w.metas[e.ID]
	a := w.archetypes[meta.archetypeIndex]
	if !a.mask.containsBit(id) {
		return 0
	}
	return a.compTicks[id][meta.index]
}

// markComponentChanged stamps the component slot with the current tick and
// notifies subscribers.
func (w *World) markComponentChanged(e Entity, id uint8) {
	if !w.IsValid(e) {
		return
	}
	meta := w.metas[e.ID]
	a := w.archetypes[meta.archetypeIndex]
	if !a.mask.containsBit(id) {
		return
	}
	a.compTicks[id][meta.index] = w.changeTick
	Publish(w.events, ComponentChanged{Entity: e, Type: w.compIDToType[id]})
}

// markResourceChanged stamps the resource slot with the current tick and
// notifies subscribers.
func (w *World) markResourceChanged(id int) {
	if !w.resources.Has(id) {
		return
	}
	w.resources.ticks[id] = w.changeTick
	Publish(w.events, ResourceChanged{Type: w.resources.elems[id]})
}

// memZero clears size bytes at ptr.
func memZero(ptr unsafe.Pointer, size uintptr) {
	if size == 0 {
		return
	}
	b := unsafe.Slice((*byte)(ptr), size)
	clear(b)
}
