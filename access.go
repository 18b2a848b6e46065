package bento

import "slices"

// accessSet records which keys a view may touch, either as the keys
// explicitly allowed or as the complement of the keys explicitly forbidden.
// A view that has split off a handful of keys still holds almost the whole
// universe; the forbid-list form keeps that remainder proportional to the
// number of keys ever split off, not the number of slots in the world.
type accessSet[T comparable] struct {
	keys   []T
	forbid bool // keys are forbidden, everything else allowed
}

func allowOnly[T comparable](key T) accessSet[T] {
	return accessSet[T]{keys: []T{key}}
}

func allowKeys[T comparable](keys []T) accessSet[T] {
	return accessSet[T]{keys: slices.Clone(keys)}
}

func everything[T comparable]() accessSet[T] {
	return accessSet[T]{forbid: true}
}

func nothing[T comparable]() accessSet[T] {
	return accessSet[T]{}
}

func (s accessSet[T]) allows(key T) bool {
	if s.forbid {
		return !slices.Contains(s.keys, key)
	}
	return slices.Contains(s.keys, key)
}

func (s accessSet[T]) clone() accessSet[T] {
	return accessSet[T]{keys: slices.Clone(s.keys), forbid: s.forbid}
}

// without returns the set minus key. A split always removes a key the caller
// just proved it holds, so removing a key an allow-list does not contain is a
// caller bug and panics.
func (s accessSet[T]) without(key T) accessSet[T] {
	if s.forbid {
		return accessSet[T]{keys: append(slices.Clone(s.keys), key), forbid: true}
	}
	i := slices.Index(s.keys, key)
	if i < 0 {
		panic("bento: capability removed without being held")
	}
	keys := slices.Clone(s.keys)
	keys[i] = keys[len(keys)-1]
	return accessSet[T]{keys: keys[:len(keys)-1]}
}

// withoutMany removes every key, folding without over one running set.
func (s accessSet[T]) withoutMany(keys []T) accessSet[T] {
	rest := s
	for _, key := range keys {
		rest = rest.without(key)
	}
	return rest
}
