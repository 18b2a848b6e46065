package bento

import (
	"fmt"
	"reflect"
)

// ErrorCode categorizes recoverable access failures.
type ErrorCode string

const (
	// ErrNoAccessToResource: the view's capability set does not cover the
	// resource type.
	ErrNoAccessToResource ErrorCode = "no_access_to_resource"
	// ErrNoAccessToComponent: the view's capability set does not cover the
	// entity/type pair.
	ErrNoAccessToComponent ErrorCode = "no_access_to_component"
	// ErrResourceDoesNotExist: capability present, resource slot absent.
	ErrResourceDoesNotExist ErrorCode = "resource_does_not_exist"
	// ErrComponentDoesNotExist: capability present, component slot absent.
	ErrComponentDoesNotExist ErrorCode = "component_does_not_exist"
	// ErrNoComponentID: the world has no numeric slot ID for the type.
	ErrNoComponentID ErrorCode = "no_component_id"
	// ErrNoTypeRegistration: the type registry has no entry for the type.
	ErrNoTypeRegistration ErrorCode = "no_type_registration"
	// ErrNoTypeData: the registration lacks a required capability.
	ErrNoTypeData ErrorCode = "no_type_data"
)

// AccessError is returned by view accessors for every recoverable failure.
// Programmer errors (splitting off a key the view does not hold, requesting
// the same resource type twice) panic instead.
type AccessError struct {
	// Code identifies the failure category.
	Code ErrorCode
	// Type is the component or resource type the access was about.
	Type reflect.Type
	// Entity is set for component accesses.
	Entity Entity
	// Capability names the missing registration capability for ErrNoTypeData.
	Capability string
}

func (e *AccessError) Error() string {
	switch e.Code {
	case ErrNoAccessToResource:
		return fmt.Sprintf("no access to resource %v", e.Type)
	case ErrNoAccessToComponent:
		return fmt.Sprintf("no access to component %v at entity %d", e.Type, e.Entity.ID)
	case ErrResourceDoesNotExist:
		return fmt.Sprintf("resource %v does not exist", e.Type)
	case ErrComponentDoesNotExist:
		return fmt.Sprintf("component %v does not exist at entity %d", e.Type, e.Entity.ID)
	case ErrNoComponentID:
		return fmt.Sprintf("no component ID registered for %v", e.Type)
	case ErrNoTypeRegistration:
		return fmt.Sprintf("type %v is not registered", e.Type)
	case ErrNoTypeData:
		return fmt.Sprintf("registration for %v lacks %s", e.Type, e.Capability)
	}
	return fmt.Sprintf("access error %s for %v", e.Code, e.Type)
}

func errNoAccessToResource(t reflect.Type) error {
	return &AccessError{Code: ErrNoAccessToResource, Type: t}
}

func errNoAccessToComponent(e Entity, t reflect.Type) error {
	return &AccessError{Code: ErrNoAccessToComponent, Type: t, Entity: e}
}

func errResourceDoesNotExist(t reflect.Type) error {
	return &AccessError{Code: ErrResourceDoesNotExist, Type: t}
}

func errComponentDoesNotExist(e Entity, t reflect.Type) error {
	return &AccessError{Code: ErrComponentDoesNotExist, Type: t, Entity: e}
}

func errNoComponentID(t reflect.Type) error {
	return &AccessError{Code: ErrNoComponentID, Type: t}
}

func errNoTypeRegistration(t reflect.Type) error {
	return &AccessError{Code: ErrNoTypeRegistration, Type: t}
}

func errNoTypeData(t reflect.Type, capability string) error {
	return &AccessError{Code: ErrNoTypeData, Type: t, Capability: capability}
}
