package loom

import (
	"reflect"
	"sync"

	"github.com/forgeweave/loom/store"
)

// Strategy selects the storage backing a flat (non-hierarchical,
// non-one-to-N) component type. Mirrors the enumerated options the
// derive/marker surface exposes in spec.md §6 ({DenseVec, VecStorage,
// HashMapStorage, AssocVec}), default Dense.
type Strategy int

const (
	Dense Strategy = iota
	Sparse
	Assoc
	Hashed
)

func (s Strategy) String() string {
	switch s {
	case Dense:
		return "DenseVec"
	case Sparse:
		return "VecStorage"
	case Assoc:
		return "AssocVec"
	case Hashed:
		return "HashMapStorage"
	default:
		return "unknown strategy"
	}
}

// storageKind names the capability set a component's storage actually
// implements, so a query requiring Hierarchical/OneToN over the wrong kind
// can fail with StorageStrategyMismatchError instead of a blind type
// assertion panic.
type storageKind int

const (
	kindFlat storageKind = iota
	kindHierarchical
	kindOneToN
	kindHierarchicalOneToN
)

// componentEntry is one registry row: a type-erased storage object plus the
// metadata the registry, entity table and query engine need around it.
// Mirrors the teacher's AccessibleComponent pairing a Component token with
// its accessor, generalized from "one table column" to "one pluggable
// storage strategy".
type componentEntry struct {
	bit         int
	threadLocal bool
	kind        storageKind
	typeName    string
	storage     any
	mu          *sync.RWMutex
	removeFn    func(guid uint64)
}

// Register allocates storage of the given Strategy for component type T,
// assigns it the next mask bit, and indexes it by reflect.Type. Panics (per
// spec §4.6, a programmer error) if T is already registered.
func Register[T any](w *World, strategy Strategy) {
	registerFlat[T](w, strategy, false)
}

// RegisterThreadLocal is Register for a component only ever touched by
// thread-local systems.
func RegisterThreadLocal[T any](w *World, strategy Strategy) {
	registerFlat[T](w, strategy, true)
}

func registerFlat[T any](w *World, strategy Strategy, threadLocal bool) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	w.mustNotBeRegistered(t)

	var backing store.Indexed[T]
	switch strategy {
	case Dense:
		backing = store.NewDenseVec[T]()
	case Sparse:
		backing = store.NewVecStorage[T]()
	case Assoc:
		backing = store.NewAssocVec[T]()
	case Hashed:
		backing = store.NewHashMapStorage[T]()
	default:
		backing = store.NewDenseVec[T]()
	}

	entry := &componentEntry{
		bit:         w.allocateBit(),
		threadLocal: threadLocal,
		kind:        kindFlat,
		typeName:    t.String(),
		storage:     backing,
		mu:          &sync.RWMutex{},
	}
	entry.removeFn = func(guid uint64) { backing.Remove(guid) }
	w.registry[t] = entry
}

// RegisterHierarchical allocates a Forest-backed storage for T, the only
// strategy compatible with ReadHierarchical/WriteHierarchical/
// ReadAndParent/WriteAndParent queries.
func RegisterHierarchical[T any](w *World) {
	registerHierarchical[T](w, false)
}

// RegisterHierarchicalThreadLocal is RegisterHierarchical for a
// thread-local-only component.
func RegisterHierarchicalThreadLocal[T any](w *World) {
	registerHierarchical[T](w, true)
}

func registerHierarchical[T any](w *World, threadLocal bool) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	w.mustNotBeRegistered(t)

	backing := store.NewForest[T]()
	entry := &componentEntry{
		bit:         w.allocateBit(),
		threadLocal: threadLocal,
		kind:        kindHierarchical,
		typeName:    t.String(),
		storage:     backing,
		mu:          &sync.RWMutex{},
	}
	entry.removeFn = func(guid uint64) { backing.Remove(guid) }
	w.registry[t] = entry
}

// RegisterOneToN allocates a DenseOneToNVec-backed storage for T: each
// entity owns a variable-length contiguous slice of T (spec.md's
// DenseOneToNVec strategy, exercised by scenario S5).
func RegisterOneToN[T any](w *World) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	w.mustNotBeRegistered(t)

	backing := store.NewDenseOneToNVec[T]()
	entry := &componentEntry{
		bit:      w.allocateBit(),
		kind:     kindOneToN,
		typeName: t.String(),
		storage:  backing,
		mu:       &sync.RWMutex{},
	}
	entry.removeFn = func(guid uint64) {
		if backing.Contains(guid) {
			backing.Remove(guid)
		}
	}
	w.registry[t] = entry
}

// RegisterOneToNForest allocates an OneToNForest-backed storage for T: each
// entity owns zero or more root trees sharing one arena.
func RegisterOneToNForest[T any](w *World) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	w.mustNotBeRegistered(t)

	backing := store.NewOneToNForest[T]()
	entry := &componentEntry{
		bit:      w.allocateBit(),
		kind:     kindHierarchicalOneToN,
		typeName: t.String(),
		storage:  backing,
		mu:       &sync.RWMutex{},
	}
	entry.removeFn = func(guid uint64) {
		if backing.Contains(guid) {
			backing.Remove(guid)
		}
	}
	w.registry[t] = entry
}

func (w *World) mustNotBeRegistered(t reflect.Type) {
	if _, ok := w.registry[t]; ok {
		panic(ComponentAlreadyRegisteredError{Component: t.String()})
	}
}

func (w *World) allocateBit() int {
	bit := w.nextBit
	w.nextBit++
	return bit
}

func entryFor[T any](w *World) (*componentEntry, reflect.Type) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	e, ok := w.registry[t]
	if !ok {
		panic(ComponentNotRegisteredError{Component: t.String()})
	}
	return e, t
}

func indexedStorage[T any](w *World) (store.Indexed[T], *componentEntry) {
	e, t := entryFor[T](w)
	idx, ok := e.storage.(store.Indexed[T])
	if !ok {
		panic(StorageStrategyMismatchError{Component: t.String(), Want: "Indexed"})
	}
	return idx, e
}

func hierarchicalStorage[T any](w *World) (store.Hierarchical[T], *componentEntry) {
	e, t := entryFor[T](w)
	h, ok := e.storage.(store.Hierarchical[T])
	if !ok {
		panic(StorageStrategyMismatchError{Component: t.String(), Want: "Hierarchical (Forest)"})
	}
	return h, e
}

func oneToNStorage[T any](w *World) (store.OneToN[T], *componentEntry) {
	e, t := entryFor[T](w)
	o, ok := e.storage.(store.OneToN[T])
	if !ok {
		panic(StorageStrategyMismatchError{Component: t.String(), Want: "OneToN (DenseOneToNVec)"})
	}
	return o, e
}

func hierarchicalOneToNStorage[T any](w *World) (store.HierarchicalOneToN[T], *componentEntry) {
	e, t := entryFor[T](w)
	h, ok := e.storage.(store.HierarchicalOneToN[T])
	if !ok {
		panic(StorageStrategyMismatchError{Component: t.String(), Want: "HierarchicalOneToN (OneToNForest)"})
	}
	return h, e
}
