package bento

import "reflect"

// GetComponent returns a pointer to the component of type T for the entity,
// or nil if the entity is invalid or does not have the component.
func GetComponent[T any](w *World, e Entity) *T {
	if !w.IsValid(e) {
		return nil
	}
	id, ok := w.componentID(reflect.TypeFor[T]())
	if !ok {
		return nil
	}
	meta := w.metas[e.ID]
	a := w.archetypes[meta.archetypeIndex]
	if !a.mask.containsBit(id) {
		return nil
	}
	return (*T)(a.compPtr(id, meta.index))
}

// SetComponent sets the component of type T on the entity, adding it if not
// present. The slot is marked changed in the current observation window.
func SetComponent[T any](w *World, e Entity, val T) {
	if !w.IsValid(e) {
		return
	}
	t := reflect.TypeFor[T]()
	id := w.getCompTypeID(t)
	meta := &w.metas[e.ID]
	a := w.archetypes[meta.archetypeIndex]
	if a.mask.containsBit(id) {
		// already has, just set
		*(*T)(a.compPtr(id, meta.index)) = val
		a.compTicks[id][meta.index] = w.changeTick
		return
	}
	newMask := a.mask
	newMask.set(id)
	target := w.archetypeForMask(newMask, a, id, false)
	newIdx := w.moveEntity(e, meta, target)
	*(*T)(target.compPtr(id, newIdx)) = val
	target.compTicks[id][newIdx] = w.changeTick
}

// RemoveComponent removes the component of type T from the entity if present.
func RemoveComponent[T any](w *World, e Entity) {
	if !w.IsValid(e) {
		return
	}
	id, ok := w.componentID(reflect.TypeFor[T]())
	if !ok {
		return
	}
	meta := &w.metas[e.ID]
	a := w.archetypes[meta.archetypeIndex]
	if !a.mask.containsBit(id) {
		return
	}
	newMask := a.mask
	newMask.unset(id)
	target := w.archetypeForMask(newMask, a, id, true)
	w.moveEntity(e, meta, target)
}

// archetypeForMask finds or creates the archetype for mask, building specs
// from the source archetype plus (or minus) the component being added
// (removed).
func (w *World) archetypeForMask(mask bitmask256, from *archetype, id uint8, removing bool) *archetype {
	if idx, ok := w.maskToArcIndex[mask]; ok {
		return w.archetypes[idx]
	}
	var tempSpecs [MaxComponentTypes]compSpec
	count := 0
	for _, cid := range from.compOrder {
		if removing && cid == id {
			continue
		}
		tempSpecs[count] = compSpec{
			id:   cid,
			typ:  w.compIDToType[cid],
			size: w.compIDToSize[cid],
		}
		count++
	}
	if !removing {
		tempSpecs[count] = compSpec{
			id:   id,
			typ:  w.compIDToType[id],
			size: w.compIDToSize[id],
		}
		count++
	}
	return w.getOrCreateArchetype(mask, tempSpecs[:count])
}
