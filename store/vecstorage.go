package store

// VecStorage is a direct vector indexed by guid with uninitialized slots:
// O(1) access, sparse iteration via an explicit id list. Grounded on
// original_source/src/vec.rs.
//
// Unlike the Rust original (which leaves unfilled slots uninitialized
// behind unsafe set_len), Go always zero-initializes, so growth is just a
// slice append of zero values — the present flags are what distinguish
// "present" from "never written" or "removed"; the id list keeps
// iteration order.
type VecStorage[T any] struct {
	values  []T
	present []bool
	ids     []uint64
}

var _ Indexed[int] = (*VecStorage[int])(nil)

func NewVecStorage[T any]() *VecStorage[T] {
	return &VecStorage[T]{}
}

func NewVecStorageWithCapacity[T any](n int) *VecStorage[T] {
	return &VecStorage[T]{
		values:  make([]T, 0, n),
		present: make([]bool, 0, n),
		ids:     make([]uint64, 0, n),
	}
}

func (v *VecStorage[T]) grow(guid uint64) {
	if int(guid) < len(v.values) {
		return
	}
	newValues := make([]T, guid+1)
	copy(newValues, v.values)
	v.values = newValues

	newPresent := make([]bool, guid+1)
	copy(newPresent, v.present)
	v.present = newPresent
}

// Insert requires !Contains(guid).
func (v *VecStorage[T]) Insert(guid uint64, t T) {
	if v.Contains(guid) {
		panic("store: VecStorage.Insert on guid that already has a component")
	}
	v.grow(guid)
	v.values[guid] = t
	v.present[guid] = true
	v.ids = append(v.ids, guid)
}

// Remove requires Contains(guid).
func (v *VecStorage[T]) Remove(guid uint64) {
	if !v.Contains(guid) {
		panic("store: VecStorage.Remove on guid without a component")
	}
	var zero T
	v.values[guid] = zero
	v.present[guid] = false
	for i, id := range v.ids {
		if id == guid {
			v.ids = append(v.ids[:i], v.ids[i+1:]...)
			break
		}
	}
}

// Get requires Contains(guid).
func (v *VecStorage[T]) Get(guid uint64) *T {
	if !v.Contains(guid) {
		panic("store: VecStorage.Get on guid without a component")
	}
	return &v.values[guid]
}

// Contains reports whether guid currently has a value. The original's
// contains is a linear scan of the id list (its own FIXME notes this is
// "super slow for bigger collections"); loom instead checks the present
// flag for guid in O(1).
func (v *VecStorage[T]) Contains(guid uint64) bool {
	return int(guid) < len(v.present) && v.present[guid]
}

// Len returns the number of stored values.
func (v *VecStorage[T]) Len() int { return len(v.ids) }

// Values returns every value in id-list order (insertion order, absent any
// removals).
func (v *VecStorage[T]) Values() []T {
	out := make([]T, len(v.ids))
	for i, id := range v.ids {
		out[i] = v.values[id]
	}
	return out
}

// Guids returns the guid owning Values()[i] for each i.
func (v *VecStorage[T]) Guids() []uint64 { return v.ids }
