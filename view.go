package bento

import "reflect"

// WorldView is a view into the world which may only access certain resources
// and components: a restricted form of *World. It can be used to access a
// value and give out the remaining world somewhere else, so that independent
// consumers hold provably-disjoint mutable access into one world.
//
// Disjointness is established at split time, once: every split removes the
// keys granted to the child from the parent's remaining capability, so the
// remainder and the child can never reach the same slot. A split retires the
// parent permanently; using a retired view is a programmer error and panics.
//
// Example usage:
//
//	world := bento.NewWorld(1024)
//	world.AddResource(&Materials{})
//
//	view := bento.NewWorldView(world)
//	materials, rest, ok := bento.SplitOffResourceTyped[Materials](view)
//	passSomewhereElse(rest)
//
// A WorldView is single-threaded, like the world beneath it.
type WorldView struct {
	world      *World
	resources  accessSet[reflect.Type]
	components accessSet[EntityComponent]
	retired    bool
}

// NewWorldView creates a view with permission to access everything in w. The
// caller must hand over its world reference: exactly one view hierarchy may
// touch a world at a time.
func NewWorldView(w *World) *WorldView {
	return &WorldView{
		world:      w,
		resources:  everything[reflect.Type](),
		components: everything[EntityComponent](),
	}
}

// ResourcesComponents splits the world into one view which may only be used
// for resource access and another which may only be used for component
// access. This is the standard top-level partition for handing disjoint
// halves to two independent subsystems.
func ResourcesComponents(w *World) (resources, components *WorldView) {
	resources = &WorldView{
		world:      w,
		resources:  everything[reflect.Type](),
		components: nothing[EntityComponent](),
	}
	components = &WorldView{
		world:      w,
		resources:  nothing[reflect.Type](),
		components: everything[EntityComponent](),
	}
	return resources, components
}

func (v *WorldView) assertLive() {
	if v.retired {
		panic("bento: use of a world view after it was split")
	}
}

// AllowsResource reports whether the resource of type t may be accessed from
// this view.
func (v *WorldView) AllowsResource(t reflect.Type) bool {
	return v.resources.allows(t)
}

// AllowsComponent reports whether the given component slot may be accessed
// from this view.
func (v *WorldView) AllowsComponent(c EntityComponent) bool {
	return v.components.allows(c)
}

// ContainsEntity reports whether the entity is alive. Pure metadata: no
// aliasing exposure, so it is permitted regardless of the view's
// capabilities.
func (v *WorldView) ContainsEntity(e Entity) bool {
	v.assertLive()
	return v.world.IsValid(e)
}

// SplitOffResource splits this view into one view that only has access to
// the resource of type t and the rest. The parent is retired. Panics if the
// view does not hold t.
func (v *WorldView) SplitOffResource(t reflect.Type) (split, rest *WorldView) {
	v.assertLive()
	if !v.AllowsResource(t) {
		panic("bento: split of a resource the view has no access to")
	}
	split = &WorldView{
		world:      v.world,
		resources:  allowOnly(t),
		components: nothing[EntityComponent](),
	}
	rest = &WorldView{
		world:      v.world,
		resources:  v.resources.without(t),
		components: v.components.clone(),
	}
	v.retired = true
	return split, rest
}

// SplitOffResourceTyped is like SplitOffResource but returns the typed
// reference directly, tied to the world's lifetime rather than to the split
// view, so it can be handed to a long-lived consumer independently of rest.
// The capability for T is consumed even when the slot is empty: ok is false
// and the reference nil, but rest no longer holds T either way.
func SplitOffResourceTyped[T any](v *WorldView) (res *T, rest *WorldView, ok bool) {
	v.assertLive()
	t := reflect.TypeFor[T]()
	if !v.AllowsResource(t) {
		panic("bento: split of a resource the view has no access to")
	}
	rest = &WorldView{
		world:      v.world,
		resources:  v.resources.without(t),
		components: v.components.clone(),
	}
	v.retired = true
	res, _ = GetResource[T](v.world.resources)
	if res == nil {
		return nil, rest, false
	}
	return res, rest, true
}

// SplitOffComponent splits this view into one view that only has access to
// the component slot c and the rest. The parent is retired. Panics if the
// view does not hold c.
func (v *WorldView) SplitOffComponent(c EntityComponent) (split, rest *WorldView) {
	v.assertLive()
	if !v.AllowsComponent(c) {
		panic("bento: split of a component the view has no access to")
	}
	split = &WorldView{
		world:      v.world,
		resources:  nothing[reflect.Type](),
		components: allowOnly(c),
	}
	rest = &WorldView{
		world:      v.world,
		resources:  v.resources.clone(),
		components: v.components.without(c),
	}
	v.retired = true
	return split, rest
}

// SplitOffComponents splits off several component slots at once. Every
// precondition is checked before any capability is removed: if a single key
// is missing, the call panics and nothing is split.
func (v *WorldView) SplitOffComponents(cs []EntityComponent) (split, rest *WorldView) {
	v.assertLive()
	for _, c := range cs {
		if !v.AllowsComponent(c) {
			panic("bento: split of a component the view has no access to")
		}
	}
	split = &WorldView{
		world:      v.world,
		resources:  nothing[reflect.Type](),
		components: allowKeys(cs),
	}
	rest = &WorldView{
		world:      v.world,
		resources:  v.resources.clone(),
		components: v.components.withoutMany(cs),
	}
	v.retired = true
	return split, rest
}
