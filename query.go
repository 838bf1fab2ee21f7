package loom

import "github.com/forgeweave/loom/bitset"

// fetcher is the capability every query kind implements: a bitmask
// predicate contribution, a lock acquired for the fetch's lifetime, and a
// per-guid accessor. Tuple queries compose fetchers structurally (§4.4).
type fetcher[T any] interface {
	queryMask(w *World) bitset.Predicate
	lock(w *World) (unlock func())
	get(w *World, guid uint64) T
}

// orderedFetcher is additionally implemented by hierarchical-backed query
// kinds (ReadHierarchical, WriteHierarchical, ReadAndParent, WriteAndParent):
// it supplies the ordered-cache key and the live pre-order guid walk so a
// tuple containing it iterates in Forest pre-order instead of the
// unordered mask index (§4.4).
type orderedFetcher interface {
	orderedSource(w *World) (cacheKey string, ids []uint64)
}

// --- Read / Write -----------------------------------------------------

// Read queries a flat component for shared access.
type Read[T any] struct{}

func (Read[T]) queryMask(w *World) bitset.Predicate {
	_, entry := indexedStorage[T](w)
	return bitset.Has(bitset.Of(entry.bit))
}

func (Read[T]) lock(w *World) func() {
	_, entry := indexedStorage[T](w)
	entry.mu.RLock()
	return entry.mu.RUnlock
}

func (Read[T]) get(w *World, guid uint64) *T {
	storage, _ := indexedStorage[T](w)
	return storage.Get(guid)
}

// Write queries a flat component for exclusive access.
type Write[T any] struct{}

func (Write[T]) queryMask(w *World) bitset.Predicate {
	_, entry := indexedStorage[T](w)
	return bitset.Has(bitset.Of(entry.bit))
}

func (Write[T]) lock(w *World) func() {
	_, entry := indexedStorage[T](w)
	entry.mu.Lock()
	return entry.mu.Unlock
}

func (Write[T]) get(w *World, guid uint64) *T {
	storage, _ := indexedStorage[T](w)
	return storage.Get(guid)
}

// Each iterates every Read[T]-matching guid directly off the storage,
// bypassing the mask index, in the storage's own order (spec.md §4.4).
func (q Read[T]) Each(w *World) func(yield func(Entity, *T) bool) {
	return func(yield func(Entity, *T) bool) {
		storage, entry := indexedStorage[T](w)
		entry.mu.RLock()
		defer entry.mu.RUnlock()
		for _, g := range storage.Guids() {
			if !yield(Entity(g), storage.Get(g)) {
				return
			}
		}
	}
}

// Each iterates every Write[T]-matching guid directly off the storage.
func (q Write[T]) Each(w *World) func(yield func(Entity, *T) bool) {
	return func(yield func(Entity, *T) bool) {
		storage, entry := indexedStorage[T](w)
		entry.mu.Lock()
		defer entry.mu.Unlock()
		for _, g := range storage.Guids() {
			if !yield(Entity(g), storage.Get(g)) {
				return
			}
		}
	}
}

// --- Not / ReadNot ------------------------------------------------------

// Not contributes only an exclusion to a tuple's mask and a unit value; per
// spec.md §9's resolved open question it must not be iterated standalone —
// it has no exported Each.
type Not[T any] struct{}

func (Not[T]) queryMask(w *World) bitset.Predicate {
	_, entry := indexedStorage[T](w)
	return bitset.Not(bitset.Of(entry.bit))
}

func (Not[T]) lock(w *World) func()                 { return func() {} }
func (Not[T]) get(w *World, guid uint64) struct{} { return struct{}{} }

// ReadNot yields &C for entities that have C but not N.
type ReadNot[C any, N any] struct{}

func (ReadNot[C, N]) queryMask(w *World) bitset.Predicate {
	_, ce := indexedStorage[C](w)
	_, ne := indexedStorage[N](w)
	return bitset.HasNot(bitset.Of(ce.bit), bitset.Of(ne.bit))
}

func (ReadNot[C, N]) lock(w *World) func() {
	_, ce := indexedStorage[C](w)
	ce.mu.RLock()
	return ce.mu.RUnlock
}

func (q ReadNot[C, N]) get(w *World, guid uint64) *C {
	storage, _ := indexedStorage[C](w)
	return storage.Get(guid)
}

// --- ReadEntities / ReadOption ------------------------------------------

// ReadEntities yields every entity regardless of mask.
type ReadEntities struct{}

func (ReadEntities) queryMask(w *World) bitset.Predicate { return bitset.All() }
func (ReadEntities) lock(w *World) func()                { return func() {} }
func (ReadEntities) get(w *World, guid uint64) Entity     { return Entity(guid) }

// ReadOption yields Option<&C> (a possibly-nil pointer) without requiring C
// to be present.
type ReadOption[T any] struct{}

func (ReadOption[T]) queryMask(w *World) bitset.Predicate { return bitset.All() }

func (ReadOption[T]) lock(w *World) func() {
	_, entry := indexedStorage[T](w)
	entry.mu.RLock()
	return entry.mu.RUnlock
}

func (ReadOption[T]) get(w *World, guid uint64) *T {
	storage, _ := indexedStorage[T](w)
	if !storage.Contains(guid) {
		return nil
	}
	return storage.Get(guid)
}

// --- ReadOr --------------------------------------------------------------

// OrPair2 is the result of ReadOr2: each field is populated iff that
// alternative's component is present on the matched entity (at least one
// is guaranteed present by the or-mask).
type OrPair2[A, B any] struct {
	A *A
	B *B
}

// ReadOr2 matches entities carrying A or B (nontrivial overlap required,
// per spec.md §4.1's or-combinator contract).
type ReadOr2[A, B any] struct{}

func (ReadOr2[A, B]) queryMask(w *World) bitset.Predicate {
	_, ae := indexedStorage[A](w)
	_, be := indexedStorage[B](w)
	return bitset.Or(bitset.Of(ae.bit, be.bit))
}

func (ReadOr2[A, B]) lock(w *World) func() {
	_, ae := indexedStorage[A](w)
	_, be := indexedStorage[B](w)
	ae.mu.RLock()
	be.mu.RLock()
	return func() { be.mu.RUnlock(); ae.mu.RUnlock() }
}

func (ReadOr2[A, B]) get(w *World, guid uint64) OrPair2[A, B] {
	as, _ := indexedStorage[A](w)
	bs, _ := indexedStorage[B](w)
	var out OrPair2[A, B]
	if as.Contains(guid) {
		out.A = as.Get(guid)
	}
	if bs.Contains(guid) {
		out.B = bs.Get(guid)
	}
	return out
}

// OrPair3 is the three-alternative form of OrPair2.
type OrPair3[A, B, C any] struct {
	A *A
	B *B
	C *C
}

// ReadOr3 matches entities carrying any of A, B or C.
type ReadOr3[A, B, C any] struct{}

func (ReadOr3[A, B, C]) queryMask(w *World) bitset.Predicate {
	_, ae := indexedStorage[A](w)
	_, be := indexedStorage[B](w)
	_, ce := indexedStorage[C](w)
	return bitset.Or(bitset.Of(ae.bit, be.bit, ce.bit))
}

func (ReadOr3[A, B, C]) lock(w *World) func() {
	_, ae := indexedStorage[A](w)
	_, be := indexedStorage[B](w)
	_, ce := indexedStorage[C](w)
	ae.mu.RLock()
	be.mu.RLock()
	ce.mu.RLock()
	return func() { ce.mu.RUnlock(); be.mu.RUnlock(); ae.mu.RUnlock() }
}

func (ReadOr3[A, B, C]) get(w *World, guid uint64) OrPair3[A, B, C] {
	as, _ := indexedStorage[A](w)
	bs, _ := indexedStorage[B](w)
	cs, _ := indexedStorage[C](w)
	var out OrPair3[A, B, C]
	if as.Contains(guid) {
		out.A = as.Get(guid)
	}
	if bs.Contains(guid) {
		out.B = bs.Get(guid)
	}
	if cs.Contains(guid) {
		out.C = cs.Get(guid)
	}
	return out
}

// --- Hierarchical / AndParent --------------------------------------------

// ReadHierarchical iterates a Forest-backed component in pre-order,
// yielding &C.
type ReadHierarchical[T any] struct{}

func (ReadHierarchical[T]) queryMask(w *World) bitset.Predicate {
	_, entry := hierarchicalStorage[T](w)
	return bitset.Has(bitset.Of(entry.bit))
}

func (ReadHierarchical[T]) lock(w *World) func() {
	_, entry := hierarchicalStorage[T](w)
	entry.mu.RLock()
	return entry.mu.RUnlock
}

func (ReadHierarchical[T]) get(w *World, guid uint64) *T {
	h, _ := hierarchicalStorage[T](w)
	return h.Get(guid)
}

func (ReadHierarchical[T]) orderedSource(w *World) (string, []uint64) {
	h, entry := hierarchicalStorage[T](w)
	return entry.typeName + "\x00", h.OrderedIDs()
}

// Each iterates T's Forest in pre-order, yielding &C.
func (q ReadHierarchical[T]) Each(w *World) func(yield func(Entity, *T) bool) {
	return func(yield func(Entity, *T) bool) {
		h, entry := hierarchicalStorage[T](w)
		entry.mu.RLock()
		defer entry.mu.RUnlock()
		for _, g := range h.OrderedIDs() {
			if !yield(Entity(g), h.Get(g)) {
				return
			}
		}
	}
}

// WriteHierarchical is ReadHierarchical with exclusive access.
type WriteHierarchical[T any] struct{}

func (WriteHierarchical[T]) queryMask(w *World) bitset.Predicate {
	_, entry := hierarchicalStorage[T](w)
	return bitset.Has(bitset.Of(entry.bit))
}

func (WriteHierarchical[T]) lock(w *World) func() {
	_, entry := hierarchicalStorage[T](w)
	entry.mu.Lock()
	return entry.mu.Unlock
}

func (WriteHierarchical[T]) get(w *World, guid uint64) *T {
	h, _ := hierarchicalStorage[T](w)
	return h.Get(guid)
}

func (WriteHierarchical[T]) orderedSource(w *World) (string, []uint64) {
	h, entry := hierarchicalStorage[T](w)
	return entry.typeName + "\x00", h.OrderedIDs()
}

func (q WriteHierarchical[T]) Each(w *World) func(yield func(Entity, *T) bool) {
	return func(yield func(Entity, *T) bool) {
		h, entry := hierarchicalStorage[T](w)
		entry.mu.Lock()
		defer entry.mu.Unlock()
		for _, g := range h.OrderedIDs() {
			if !yield(Entity(g), h.Get(g)) {
				return
			}
		}
	}
}

// WithParent pairs a Forest node's value with its parent's, when any.
type WithParent[T any] struct {
	Value  *T
	Parent *T
}

// ReadAndParent iterates a Forest in pre-order, yielding each node's value
// alongside its parent's (nil for roots).
type ReadAndParent[T any] struct{}

func (ReadAndParent[T]) queryMask(w *World) bitset.Predicate {
	_, entry := hierarchicalStorage[T](w)
	return bitset.Has(bitset.Of(entry.bit))
}

func (ReadAndParent[T]) lock(w *World) func() {
	_, entry := hierarchicalStorage[T](w)
	entry.mu.RLock()
	return entry.mu.RUnlock
}

func (ReadAndParent[T]) get(w *World, guid uint64) WithParent[T] {
	h, _ := hierarchicalStorage[T](w)
	out := WithParent[T]{Value: h.Get(guid)}
	if pg, ok := h.Parent(guid); ok {
		out.Parent = h.Get(pg)
	}
	return out
}

func (ReadAndParent[T]) orderedSource(w *World) (string, []uint64) {
	h, entry := hierarchicalStorage[T](w)
	return entry.typeName + "\x00", h.OrderedIDs()
}

func (q ReadAndParent[T]) Each(w *World) func(yield func(Entity, WithParent[T]) bool) {
	return func(yield func(Entity, WithParent[T]) bool) {
		h, entry := hierarchicalStorage[T](w)
		entry.mu.RLock()
		defer entry.mu.RUnlock()
		for _, g := range h.OrderedIDs() {
			v := WithParent[T]{Value: h.Get(g)}
			if pg, ok := h.Parent(g); ok {
				v.Parent = h.Get(pg)
			}
			if !yield(Entity(g), v) {
				return
			}
		}
	}
}

// WriteAndParent is ReadAndParent with exclusive access; both the node's
// and its parent's values are mutable through the returned pointers, which
// alias the same storage lock for the iterator's lifetime.
type WriteAndParent[T any] struct{}

func (WriteAndParent[T]) queryMask(w *World) bitset.Predicate {
	_, entry := hierarchicalStorage[T](w)
	return bitset.Has(bitset.Of(entry.bit))
}

func (WriteAndParent[T]) lock(w *World) func() {
	_, entry := hierarchicalStorage[T](w)
	entry.mu.Lock()
	return entry.mu.Unlock
}

func (WriteAndParent[T]) get(w *World, guid uint64) WithParent[T] {
	h, _ := hierarchicalStorage[T](w)
	out := WithParent[T]{Value: h.Get(guid)}
	if pg, ok := h.Parent(guid); ok {
		out.Parent = h.Get(pg)
	}
	return out
}

func (WriteAndParent[T]) orderedSource(w *World) (string, []uint64) {
	h, entry := hierarchicalStorage[T](w)
	return entry.typeName + "\x00", h.OrderedIDs()
}

func (q WriteAndParent[T]) Each(w *World) func(yield func(Entity, WithParent[T]) bool) {
	return func(yield func(Entity, WithParent[T]) bool) {
		h, entry := hierarchicalStorage[T](w)
		entry.mu.Lock()
		defer entry.mu.Unlock()
		for _, g := range h.OrderedIDs() {
			v := WithParent[T]{Value: h.Get(g)}
			if pg, ok := h.Parent(g); ok {
				v.Parent = h.Get(pg)
			}
			if !yield(Entity(g), v) {
				return
			}
		}
	}
}
