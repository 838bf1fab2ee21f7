package store

import "sort"

// HashMapStorage is a hashed guid→value map with O(1) expected access.
// Grounded on original_source/src/hashmap.rs (there backed by an FNV
// hasher; Go's builtin map is used here, matching the teacher's own
// preference for stdlib containers over a hand-rolled hash table).
//
// Values are boxed (map[uint64]*T rather than map[uint64]T) because Go
// maps do not let you take the address of a value in place — boxing is
// what lets Get double as both the read and write accessor, same as every
// other strategy here.
type HashMapStorage[T any] struct {
	m map[uint64]*T
}

var _ Indexed[int] = (*HashMapStorage[int])(nil)

func NewHashMapStorage[T any]() *HashMapStorage[T] {
	return &HashMapStorage[T]{m: make(map[uint64]*T)}
}

func NewHashMapStorageWithCapacity[T any](n int) *HashMapStorage[T] {
	return &HashMapStorage[T]{m: make(map[uint64]*T, n)}
}

// Insert requires !Contains(guid).
func (h *HashMapStorage[T]) Insert(guid uint64, v T) {
	if _, ok := h.m[guid]; ok {
		panic("store: HashMapStorage.Insert on guid that already has a component")
	}
	h.m[guid] = &v
}

// Remove requires Contains(guid).
func (h *HashMapStorage[T]) Remove(guid uint64) {
	if _, ok := h.m[guid]; !ok {
		panic("store: HashMapStorage.Remove on guid without a component")
	}
	delete(h.m, guid)
}

// Get requires Contains(guid).
func (h *HashMapStorage[T]) Get(guid uint64) *T {
	v, ok := h.m[guid]
	if !ok {
		panic("store: HashMapStorage.Get on guid without a component")
	}
	return v
}

// Contains reports whether guid currently has a value.
func (h *HashMapStorage[T]) Contains(guid uint64) bool {
	_, ok := h.m[guid]
	return ok
}

// Len returns the number of stored values.
func (h *HashMapStorage[T]) Len() int { return len(h.m) }

// Values returns every value in ascending-guid order, aligned with Guids().
func (h *HashMapStorage[T]) Values() []T {
	guids := h.Guids()
	out := make([]T, len(guids))
	for i, g := range guids {
		out[i] = *h.m[g]
	}
	return out
}

// Guids returns the guid owning Values()[i] for each i, in ascending order.
func (h *HashMapStorage[T]) Guids() []uint64 {
	out := make([]uint64, 0, len(h.m))
	for k := range h.m {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
