package bento

import (
	"reflect"
	"unsafe"
)

// DirtyMarker flags the slot a dynamic value was minted from as changed. It
// is deferred rather than applied on access so that marking does not touch
// the slot during the caller's mutation window. Invoke it (or drop it) before
// the dynamic value goes out of use if change tracking matters.
type DirtyMarker func()

// DynamicValue is a type-erased mutable reference to one slot's contents,
// reinterpreted as its concrete type through the registry.
type DynamicValue interface {
	// Type returns the concrete type of the slot contents.
	Type() reflect.Type
	// Value returns an addressable reflect.Value over the slot contents.
	Value() reflect.Value
	// Interface returns a copy of the slot contents.
	Interface() any
	// Set overwrites the slot contents. Panics if val is not assignable to
	// the slot's type.
	Set(val any)
}

// rawDynamic reinterprets raw slot memory as a value of typ.
type rawDynamic struct {
	typ reflect.Type
	ptr unsafe.Pointer
}

func (d rawDynamic) Type() reflect.Type {
	return d.typ
}

func (d rawDynamic) Value() reflect.Value {
	return reflect.NewAt(d.typ, d.ptr).Elem()
}

func (d rawDynamic) Interface() any {
	return d.Value().Interface()
}

func (d rawDynamic) Set(val any) {
	d.Value().Set(reflect.ValueOf(val))
}

// Registration is one type's entry in a TypeRegistry.
type Registration struct {
	typ     reflect.Type
	fromPtr func(unsafe.Pointer) DynamicValue // nil when registered opaque
}

// Type returns the type this registration describes.
func (r *Registration) Type() reflect.Type {
	return r.typ
}

// TypeRegistry maps types to the capabilities the dynamic value bridge
// needs. It is populated at startup by the code that owns the world; a
// missing registration is a first-class error, never assumed absent.
type TypeRegistry struct {
	registrations map[reflect.Type]*Registration
}

// NewTypeRegistry creates an empty registry.
func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{registrations: make(map[reflect.Type]*Registration)}
}

// Lookup returns the registration for t.
func (r *TypeRegistry) Lookup(t reflect.Type) (*Registration, bool) {
	registration, ok := r.registrations[t]
	return registration, ok
}

// RegisterType registers T with the raw-pointer-to-dynamic-value capability.
func RegisterType[T any](r *TypeRegistry) {
	t := reflect.TypeFor[T]()
	r.registrations[t] = &Registration{
		typ: t,
		fromPtr: func(ptr unsafe.Pointer) DynamicValue {
			return rawDynamic{typ: t, ptr: ptr}
		},
	}
}

// RegisterOpaque records t without granting pointer reinterpretation.
// Dynamic access to an opaque type fails with ErrNoTypeData.
func (r *TypeRegistry) RegisterOpaque(t reflect.Type) {
	r.registrations[t] = &Registration{typ: t}
}

// dynamicFromPointer converts a type-erased slot pointer plus its type into
// a DynamicValue via the registry. The pointer must point at a value of
// exactly type t.
func dynamicFromPointer(reg *TypeRegistry, t reflect.Type, ptr unsafe.Pointer) (DynamicValue, error) {
	registration, ok := reg.Lookup(t)
	if !ok {
		return nil, errNoTypeRegistration(t)
	}
	if registration.fromPtr == nil {
		return nil, errNoTypeData(t, "DynamicFromPointer")
	}
	// guards against a misconfigured registry handing back a foreign entry
	if registration.Type() != t {
		panic("bento: registry returned a registration for the wrong type")
	}
	return registration.fromPtr(ptr), nil
}
