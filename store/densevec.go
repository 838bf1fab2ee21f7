package store

// DenseVec is a guid→index table plus a contiguous value vector: O(1)
// access, compact iteration in insertion order, O(1) swap-remove with
// index patch-up. Grounded on original_source/src/dense_vec.rs (the
// Storage impl) together with the densevec crate it wraps, whose contract
// spec §4.2 restates directly.
type DenseVec[T any] struct {
	slotOf []int // guid -> slot+1, 0 meaning absent
	ids    []uint64
	values []T
}

var _ Indexed[int] = (*DenseVec[int])(nil)

// NewDenseVec returns an empty DenseVec.
func NewDenseVec[T any]() *DenseVec[T] {
	return &DenseVec[T]{}
}

// NewDenseVecWithCapacity returns an empty DenseVec pre-sized for n entries.
func NewDenseVecWithCapacity[T any](n int) *DenseVec[T] {
	return &DenseVec[T]{
		ids:    make([]uint64, 0, n),
		values: make([]T, 0, n),
	}
}

func (d *DenseVec[T]) ensureSlotTable(guid uint64) {
	if int(guid) < len(d.slotOf) {
		return
	}
	grown := make([]int, guid+1)
	copy(grown, d.slotOf)
	for i := len(d.slotOf); i < len(grown); i++ {
		grown[i] = 0
	}
	d.slotOf = grown
}

// Insert requires !Contains(guid).
func (d *DenseVec[T]) Insert(guid uint64, v T) {
	if d.Contains(guid) {
		panic("store: DenseVec.Insert on guid that already has a component")
	}
	d.ensureSlotTable(guid)
	d.values = append(d.values, v)
	d.ids = append(d.ids, guid)
	d.slotOf[guid] = len(d.values) // 1-based
}

// Remove requires Contains(guid). Swap-removes the value with the last
// element and patches the displaced entry's slot.
func (d *DenseVec[T]) Remove(guid uint64) {
	slot := d.slotOf[guid] - 1
	if slot < 0 {
		panic("store: DenseVec.Remove on guid without a component")
	}
	last := len(d.values) - 1
	if slot != last {
		d.values[slot] = d.values[last]
		d.ids[slot] = d.ids[last]
		d.slotOf[d.ids[slot]] = slot + 1
	}
	var zero T
	d.values[last] = zero
	d.values = d.values[:last]
	d.ids = d.ids[:last]
	d.slotOf[guid] = 0
}

// Get requires Contains(guid).
func (d *DenseVec[T]) Get(guid uint64) *T {
	slot := d.slotOf[guid] - 1
	if slot < 0 {
		panic("store: DenseVec.Get on guid without a component")
	}
	return &d.values[slot]
}

// Contains reports whether guid currently has a value.
func (d *DenseVec[T]) Contains(guid uint64) bool {
	return int(guid) < len(d.slotOf) && d.slotOf[guid] != 0
}

// Len returns the number of stored values.
func (d *DenseVec[T]) Len() int { return len(d.values) }

// Values returns every value in insertion order (modulo swap-removes, see
// Remove).
func (d *DenseVec[T]) Values() []T { return d.values }

// Guids returns the guid owning Values()[i] for each i.
func (d *DenseVec[T]) Guids() []uint64 { return d.ids }
