package bento

import "unsafe"

// archetype holds storage for one unique component-set mask. Component data
// lives in contiguous per-type arrays addressed through unsafe pointers;
// entity order inside an archetype is unspecified and changes on swap-remove.
type archetype struct {
	compPointers [MaxComponentTypes]unsafe.Pointer
	compTicks    [MaxComponentTypes][]uint64 // change tick per entity slot
	compSizes    [MaxComponentTypes]uintptr
	entityIDs    []Entity
	compOrder    []uint8    // list of component IDs in this arch
	mask         bitmask256 // which component bits this arch uses
	index        int        // position in world.archetypes
	size         int        // current entity count
	cap          int        // allocated entity slots
}

// compPtr returns the address of the component id at entity slot idx.
func (a *archetype) compPtr(id uint8, idx int) unsafe.Pointer {
	return unsafe.Pointer(uintptr(a.compPointers[id]) + uintptr(idx)*a.compSizes[id])
}

// memCopy copies size bytes from src to dst using built-in copy for performance.
func memCopy(dst, src unsafe.Pointer, size uintptr) {
	if size == 0 {
		return
	}
	dstBytes := unsafe.Slice((*byte)(dst), size)
	srcBytes := unsafe.Slice((*byte)(src), size)
	copy(dstBytes, srcBytes)
}
