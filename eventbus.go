package bento

import "reflect"

// MaxEventTypes defines the maximum number of unique event types that can be
// registered in the EventBus. This value is fixed at 256.
const MaxEventTypes = 256

// EventBus provides a simple, type-safe publish/subscribe channel for
// decoupled communication. The world owns one; the view layer publishes
// change notifications to it when dirty-markers fire, so inspection consumers
// can react without polling.
//
// Publish is allocation-free, making it suitable for hot paths.
type EventBus struct {
	eventTypeMap    map[reflect.Type]uint8
	handlers        [MaxEventTypes][]interface{}
	nextEventTypeID uint8
}

// ResourceChanged is published when a resource slot is explicitly marked
// changed through a dirty-marker.
type ResourceChanged struct {
	Type reflect.Type
}

// ComponentChanged is published when a component slot is explicitly marked
// changed through a dirty-marker.
type ComponentChanged struct {
	Entity Entity
	Type   reflect.Type
}

// Subscribe registers a handler function to be called when an event of type
// T is published. Handlers run synchronously in subscription order.
func Subscribe[T any](bus *EventBus, handler func(T)) {
	t := reflect.TypeFor[T]()
	id := bus.getEventTypeID(t)
	if cap(bus.handlers[id]) == 0 {
		bus.handlers[id] = make([]interface{}, 0, 4)
	}
	bus.handlers[id] = append(bus.handlers[id], handler)
}

// Publish broadcasts an event of type T to all registered handlers for that
// type. Publishing with no subscribers is free.
func Publish[T any](bus *EventBus, event T) {
	t := reflect.TypeFor[T]()
	if id, ok := bus.eventTypeMap[t]; ok {
		for _, h := range bus.handlers[id] {
			h.(func(T))(event)
		}
	}
}

// getEventTypeID retrieves or assigns an ID for the event type.
func (bus *EventBus) getEventTypeID(t reflect.Type) uint8 {
	if bus.eventTypeMap == nil {
		bus.eventTypeMap = make(map[reflect.Type]uint8)
	}
	if id, ok := bus.eventTypeMap[t]; ok {
		return id
	}
	id := bus.nextEventTypeID
	bus.nextEventTypeID++
	if int(id) >= MaxEventTypes {
		panic("bento: too many event types")
	}
	bus.eventTypeMap[t] = id
	return id
}
