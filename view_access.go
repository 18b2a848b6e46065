package bento

import "reflect"

// GetResourceMut returns a mutable reference to the resource of type T. The
// reference points into the world's storage; it must not be retained past
// the operation that uses it if control passes to other code holding a view
// over the same world.
func GetResourceMut[T any](v *WorldView) (*T, error) {
	v.assertLive()
	return getResourceUnchecked[T](v)
}

// GetTwoResourcesMut returns mutable references to two resources from one
// view: distinct types live in distinct slots, so both references are
// disjoint by construction. Panics if T1 and T2 are the same type, since two
// references to the same slot would alias. Each result fails independently.
func GetTwoResourcesMut[T1, T2 any](v *WorldView) (r1 *T1, err1 error, r2 *T2, err2 error) {
	v.assertLive()
	if reflect.TypeFor[T1]() == reflect.TypeFor[T2]() {
		panic("bento: GetTwoResourcesMut requires two distinct resource types")
	}
	r1, err1 = getResourceUnchecked[T1](v)
	r2, err2 = getResourceUnchecked[T2](v)
	return r1, err1, r2, err2
}

// getResourceUnchecked validates capability but not exclusive use of v.
func getResourceUnchecked[T any](v *WorldView) (*T, error) {
	t := reflect.TypeFor[T]()
	if !v.AllowsResource(t) {
		return nil, errNoAccessToResource(t)
	}
	res, _ := GetResource[T](v.world.resources)
	if res == nil {
		return nil, errResourceDoesNotExist(t)
	}
	return res, nil
}

// GetResourceDynamicMut returns a dynamically-typed mutable reference to the
// resource of type t, plus a deferred marker that flags the slot as changed.
// Fails if the view lacks capability, the slot is absent, or the registry
// cannot supply a dynamic bridge for t.
func (v *WorldView) GetResourceDynamicMut(t reflect.Type, registry *TypeRegistry) (DynamicValue, DirtyMarker, error) {
	v.assertLive()
	if !v.AllowsResource(t) {
		return nil, nil, errNoAccessToResource(t)
	}
	id, ok := v.world.resources.idOf(t)
	if !ok {
		return nil, nil, errResourceDoesNotExist(t)
	}
	ptr, ok := v.world.resources.ptr(id)
	if !ok {
		return nil, nil, errResourceDoesNotExist(t)
	}
	value, err := dynamicFromPointer(registry, t, ptr)
	if err != nil {
		return nil, nil, err
	}
	w := v.world
	return value, func() { w.markResourceChanged(id) }, nil
}

// GetComponentDynamicMut returns a dynamically-typed mutable reference to
// the component of type t at e, whether the slot was already marked changed
// in the current observation window, and a deferred dirty-marker. Callers
// use the dirty flag to avoid redundant change notifications.
func (v *WorldView) GetComponentDynamicMut(e Entity, t reflect.Type, registry *TypeRegistry) (DynamicValue, bool, DirtyMarker, error) {
	v.assertLive()
	value, marker, err := v.componentDynamic(e, t, registry)
	if err != nil {
		return nil, false, nil, err
	}
	id, _ := v.world.componentID(t)
	dirty := v.world.componentTick(e, id) == v.world.changeTick
	return value, dirty, marker, nil
}

// GetComponentDynamicMutUnchecked is GetComponentDynamicMut without the
// exclusivity the view normally vouches for: the caller must independently
// guarantee that no other live reference into the same slot exists, e.g.
// because it iterates entities known by construction to be disjoint from
// every other consumer of this view. Capability is still checked.
func (v *WorldView) GetComponentDynamicMutUnchecked(e Entity, t reflect.Type, registry *TypeRegistry) (DynamicValue, DirtyMarker, error) {
	v.assertLive()
	return v.componentDynamic(e, t, registry)
}

func (v *WorldView) componentDynamic(e Entity, t reflect.Type, registry *TypeRegistry) (DynamicValue, DirtyMarker, error) {
	if !v.AllowsComponent(EntityComponent{Entity: e, Type: t}) {
		return nil, nil, errNoAccessToComponent(e, t)
	}
	id, ok := v.world.componentID(t)
	if !ok {
		return nil, nil, errNoComponentID(t)
	}
	ptr, ok := v.world.componentPtr(e, id)
	if !ok {
		return nil, nil, errComponentDoesNotExist(e, t)
	}
	value, err := dynamicFromPointer(registry, t, ptr)
	if err != nil {
		return nil, nil, err
	}
	w := v.world
	return value, func() { w.markComponentChanged(e, id) }, nil
}
