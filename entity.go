package loom

import "github.com/forgeweave/loom/bitset"

// Entity is an opaque guid: a monotonically increasing, never-reused
// identifier into the world's entity table. Per spec.md's explicit
// Non-goal there is no generational recycling — RemoveEntity retires a
// guid rather than freeing it for reuse.
type Entity uint64

// entityRow is one append-only row of the entity table: (guid, mask).
// Removal clears mask to zero but the row stays at index guid so
// insertion-order iteration (DenseVec, the per-mask index) stays valid.
type entityRow struct {
	guid uint64
	mask bitset.Mask
}

// EntityBuilder accumulates components for a not-yet-committed entity.
// CreateEntity reserves the guid immediately so add_child can reference it
// before Build() appends the (guid, mask) row; component storages are
// populated as each Add* call happens rather than batched until Build.
type EntityBuilder struct {
	world *World
	guid  uint64
	mask  bitset.Mask
	built bool
}

// Guid returns the guid this builder will commit — usable as a parent
// argument to another entity's BuilderAddChild before this builder calls
// Build.
func (b *EntityBuilder) Guid() uint64 { return b.guid }

// Entity returns the Entity value this builder will produce.
func (b *EntityBuilder) Entity() Entity { return Entity(b.guid) }

// CreateEntity reserves a fresh guid and returns a builder for it. The
// entity does not appear in mask-index (tuple) queries until Build is
// called; single-type Each queries iterate the storage directly and see
// each component as soon as a Builder* call inserts it.
func (w *World) CreateEntity() *EntityBuilder {
	w.tableMu.Lock()
	guid := w.nextGuid
	w.nextGuid++
	w.tableMu.Unlock()
	return &EntityBuilder{world: w, guid: guid, mask: bitset.New()}
}

// BuilderAdd inserts a flat component value on b's entity and ORs its bit
// into the builder's mask. Panics if T is unregistered or already present
// on this guid.
func BuilderAdd[T any](b *EntityBuilder, v T) *EntityBuilder {
	storage, entry := indexedStorage[T](b.world)
	entry.mu.Lock()
	defer entry.mu.Unlock()
	if storage.Contains(b.guid) {
		panic(ComponentExistsError{Component: entry.typeName, Guid: b.guid})
	}
	storage.Insert(b.guid, v)
	b.mask.Set(entry.bit)
	if entry.kind == kindHierarchical {
		invalidateHierarchical(b.world, entry)
	}
	return b
}

// BuilderAddThreadLocal is BuilderAdd for a component registered via
// RegisterThreadLocal.
func BuilderAddThreadLocal[T any](b *EntityBuilder, v T) *EntityBuilder {
	return BuilderAdd[T](b, v)
}

// BuilderAddChild inserts v as a Forest-backed component on b's entity,
// parented under parent's existing T component. parent must already carry
// T (built earlier, or added via BuilderAdd on a root builder).
func BuilderAddChild[T any](b *EntityBuilder, parent Entity, v T) *EntityBuilder {
	h, entry := hierarchicalStorage[T](b.world)
	entry.mu.Lock()
	defer entry.mu.Unlock()
	if h.Contains(b.guid) {
		panic(ComponentExistsError{Component: entry.typeName, Guid: b.guid})
	}
	h.InsertChild(uint64(parent), b.guid, v)
	b.mask.Set(entry.bit)
	invalidateHierarchical(b.world, entry)
	return b
}

// BuilderAddSlice installs vs as b's entity's DenseOneToNVec-backed slice
// for component type T.
func BuilderAddSlice[T any](b *EntityBuilder, vs []T) *EntityBuilder {
	o, entry := oneToNStorage[T](b.world)
	entry.mu.Lock()
	defer entry.mu.Unlock()
	o.InsertSlice(b.guid, vs)
	b.mask.Set(entry.bit)
	return b
}

// BuilderAddSliceThreadLocal is BuilderAddSlice for a thread-local-only
// one-to-N component.
func BuilderAddSliceThreadLocal[T any](b *EntityBuilder, vs []T) *EntityBuilder {
	return BuilderAddSlice[T](b, vs)
}

// Build appends (guid, mask) to the entity table and invalidates the
// unordered per-mask index cache. A builder must only be built once.
func (b *EntityBuilder) Build() Entity {
	if b.built {
		panic("loom: EntityBuilder.Build called twice")
	}
	b.built = true
	w := b.world
	w.tableMu.Lock()
	for int(b.guid) >= len(w.entities) {
		w.entities = append(w.entities, entityRow{guid: uint64(len(w.entities))})
	}
	w.entities[b.guid] = entityRow{guid: b.guid, mask: b.mask}
	w.tableMu.Unlock()
	w.maskCache.Invalidate()
	return Entity(b.guid)
}

// AddComponentTo adds a flat component to an already-built entity, updating
// its row mask and invalidating the per-mask cache.
func AddComponentTo[T any](w *World, e Entity, v T) {
	storage, entry := indexedStorage[T](w)
	entry.mu.Lock()
	if storage.Contains(uint64(e)) {
		entry.mu.Unlock()
		panic(ComponentExistsError{Component: entry.typeName, Guid: uint64(e)})
	}
	storage.Insert(uint64(e), v)
	entry.mu.Unlock()

	w.tableMu.Lock()
	w.entities[e].mask.Set(entry.bit)
	w.tableMu.Unlock()
	w.maskCache.Invalidate()
	if entry.kind == kindHierarchical {
		invalidateHierarchical(w, entry)
	}
}

// RemoveComponentFrom removes a flat component from e, clearing its mask
// bit and invalidating the per-mask cache. Panics if e does not carry T.
func RemoveComponentFrom[T any](w *World, e Entity) {
	storage, entry := indexedStorage[T](w)
	entry.mu.Lock()
	if !storage.Contains(uint64(e)) {
		entry.mu.Unlock()
		panic(ComponentNotFoundError{Component: entry.typeName, Guid: uint64(e)})
	}
	storage.Remove(uint64(e))
	entry.mu.Unlock()

	w.tableMu.Lock()
	w.entities[e].mask.Clear(entry.bit)
	w.tableMu.Unlock()
	w.maskCache.Invalidate()
	if entry.kind == kindHierarchical {
		invalidateHierarchical(w, entry)
	}
}

// ComponentFor returns e's current T value, or nil if e does not carry T.
func ComponentFor[T any](w *World, e Entity) *T {
	storage, entry := indexedStorage[T](w)
	entry.mu.RLock()
	defer entry.mu.RUnlock()
	if !storage.Contains(uint64(e)) {
		return nil
	}
	v := *storage.Get(uint64(e))
	return &v
}

// ComponentForMut returns a pointer for in-place mutation of e's T value.
// The caller must not retain the pointer beyond the current system/call,
// matching the lock-guard lifetime contract of queries (see query.go).
func ComponentForMut[T any](w *World, e Entity) *T {
	storage, entry := indexedStorage[T](w)
	entry.mu.Lock()
	defer entry.mu.Unlock()
	if !storage.Contains(uint64(e)) {
		return nil
	}
	return storage.Get(uint64(e))
}

// TreeNodeFor returns e's T value along with its parent's, if any, from a
// Forest-backed component.
func TreeNodeFor[T any](w *World, e Entity) (value *T, parent *T) {
	h, entry := hierarchicalStorage[T](w)
	entry.mu.RLock()
	defer entry.mu.RUnlock()
	if !h.Contains(uint64(e)) {
		return nil, nil
	}
	v := *h.Get(uint64(e))
	if pg, ok := h.Parent(uint64(e)); ok {
		pv := *h.Get(pg)
		return &v, &pv
	}
	return &v, nil
}

// TreeNodeForMut is TreeNodeFor returning mutable pointers.
func TreeNodeForMut[T any](w *World, e Entity) (value *T, parent *T) {
	h, entry := hierarchicalStorage[T](w)
	entry.mu.Lock()
	defer entry.mu.Unlock()
	if !h.Contains(uint64(e)) {
		return nil, nil
	}
	v := h.Get(uint64(e))
	if pg, ok := h.Parent(uint64(e)); ok {
		return v, h.Get(pg)
	}
	return v, nil
}

// OneToNSliceFor returns e's DenseOneToNVec-backed slice for component type
// T. The returned slice aliases live storage; elements written through it
// are visible to later callers, but the slice itself is invalidated by a
// subsequent InsertSlice/Remove on any guid (see store.DenseOneToNVec.GetSlice).
func OneToNSliceFor[T any](w *World, e Entity) []T {
	o, entry := oneToNStorage[T](w)
	entry.mu.RLock()
	defer entry.mu.RUnlock()
	return o.GetSlice(uint64(e))
}

// RemoveEntity clears every component the entity carries (iterating
// registered types in bit order, per spec.md §3) and zeroes its mask. The
// row is retained — guid is retired, not reclaimed.
func (w *World) RemoveEntity(e Entity) {
	w.tableMu.RLock()
	mask := w.entities[e].mask
	w.tableMu.RUnlock()

	for _, entry := range w.entriesByBit() {
		if !mask.Test(entry.bit) {
			continue
		}
		entry.mu.Lock()
		entry.removeFn(uint64(e))
		entry.mu.Unlock()
	}

	w.tableMu.Lock()
	w.entities[e].mask = bitset.New()
	w.tableMu.Unlock()

	w.maskCache.Invalidate()
	w.orderedCache.Invalidate()
}

// invalidateHierarchical drops the ordered-cache entries for entry's
// component type after a Forest mutation (spec.md §4.4's "ordered index
// cache… invalidated when the underlying Forest mutates").
func invalidateHierarchical(w *World, entry *componentEntry) {
	w.orderedCache.InvalidatePrefix(entry.typeName + "\x00")
}
