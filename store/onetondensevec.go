package store

// group locates one guid's slice within the shared vec: [firstIndex,
// firstIndex+length).
type group struct {
	firstIndex int
	length     int
}

// DenseOneToNVec stores a variable-length slice of T per guid packed into
// one contiguous backing vector, indexed by a DenseVec of {firstIndex,
// length} groups. Grounded on original_source/src/oneton_densevec.rs, whose
// groups: DenseVec<Group> over a shared vec: Vec<T> this mirrors directly.
//
// InsertSlice always appends its new run to the end of vec and shifts every
// later group's firstIndex down when a guid's old run is removed first, same
// as the original's remove-then-append strategy — there is no in-place
// resize of a run.
type DenseOneToNVec[T any] struct {
	groups *DenseVec[group]
	vec    []T
}

var _ OneToN[int] = (*DenseOneToNVec[int])(nil)

func NewDenseOneToNVec[T any]() *DenseOneToNVec[T] {
	return &DenseOneToNVec[T]{groups: NewDenseVec[group]()}
}

// removeRun deletes the backing run for guid (if any) from vec, shifting
// every later group's firstIndex down by the removed run's length.
func (d *DenseOneToNVec[T]) removeRun(guid uint64) {
	if !d.groups.Contains(guid) {
		return
	}
	g := *d.groups.Get(guid)
	d.vec = append(d.vec[:g.firstIndex], d.vec[g.firstIndex+g.length:]...)
	for _, id := range d.groups.Guids() {
		other := d.groups.Get(id)
		if other.firstIndex > g.firstIndex {
			other.firstIndex -= g.length
		}
	}
	d.groups.Remove(guid)
}

// InsertSlice replaces guid's slice wholesale (removing any prior run first)
// with a fresh run appended to the end of the shared vector.
func (d *DenseOneToNVec[T]) InsertSlice(guid uint64, vs []T) {
	d.removeRun(guid)
	first := len(d.vec)
	d.vec = append(d.vec, vs...)
	d.groups.Insert(guid, group{firstIndex: first, length: len(vs)})
}

// Remove requires Contains(guid).
func (d *DenseOneToNVec[T]) Remove(guid uint64) {
	if !d.groups.Contains(guid) {
		panic("store: DenseOneToNVec.Remove on guid without a slice")
	}
	d.removeRun(guid)
}

// Contains reports whether guid currently owns a slice.
func (d *DenseOneToNVec[T]) Contains(guid uint64) bool {
	return d.groups.Contains(guid)
}

// Len returns the number of guids with a stored slice.
func (d *DenseOneToNVec[T]) Len() int { return d.groups.Len() }

// GetSlice requires Contains(guid). Returns a view into the shared backing
// vector; callers must not retain it across a subsequent InsertSlice/Remove
// on any guid, since those can relocate other guids' runs.
func (d *DenseOneToNVec[T]) GetSlice(guid uint64) []T {
	g := *d.groups.Get(guid)
	return d.vec[g.firstIndex : g.firstIndex+g.length]
}
