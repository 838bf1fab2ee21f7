// Package store implements the component storage strategies of spec §4.2:
// DenseVec, VecStorage, AssocVec, HashMapStorage, Forest, OneToNForest, and
// DenseOneToNVec. Each maps an entity guid to a payload and exposes
// insert/remove/get(+mut)/contains plus strategy-specific iteration.
//
// Grounded on original_source/src/{dense_vec,vec,assoc_vec,hashmap,forest,
// oneton_forest,oneton_densevec}.rs; none of the Go example repos in the
// pack implement per-component storage (the teacher, TheBitDrifter/warehouse,
// is archetype-based), so these are original transliterations of the Rust
// strategies into Go generics, following the teacher's own texture for
// small, single-purpose files and table-driven tests.
package store

// Indexed is the capability set shared by the scalar (one value per guid)
// storage strategies: DenseVec, VecStorage, AssocVec, HashMapStorage, and
// Forest. Queries that only need Read/Write semantics type-assert a
// registered component's store against this generic interface, regardless
// of which concrete strategy backs it — spec §9 "Polymorphic storage".
type Indexed[T any] interface {
	Insert(guid uint64, v T)
	Remove(guid uint64)
	Get(guid uint64) *T
	Contains(guid uint64) bool
	Len() int
	// Values returns every stored value in the strategy's iteration order
	// (insertion order for DenseVec; pre-order for Forest). DenseVec's
	// slice aliases internal storage — see §5's aliasing contract; the other
	// strategies return a fresh copy.
	Values() []T
	// Guids returns the guid owning each element of Values(), index for
	// index, so ReadEntities-style composition can pair a value with its
	// owner without a second lookup.
	Guids() []uint64
}

// Hierarchical is implemented by Forest: storages whose iteration order is
// a forest pre-order rather than insertion/hash order, and which support
// attaching children.
type Hierarchical[T any] interface {
	Indexed[T]
	InsertChild(parentGuid, guid uint64, v T)
	Parent(guid uint64) (uint64, bool)
	// OrderedIDs returns the cached pre-order guid walk (roots in
	// insertion order, each root's subtree depth-first), invalidated on
	// any mutation per spec §4.2/§4.4.
	OrderedIDs() []uint64
}

// OneToN is the capability set for DenseOneToNVec: a per-guid contiguous
// slice rather than a single value.
type OneToN[T any] interface {
	Remove(guid uint64)
	Contains(guid uint64) bool
	Len() int
	InsertSlice(guid uint64, vs []T)
	GetSlice(guid uint64) []T
}

// HierarchicalOneToN is the capability set for OneToNForest: a per-guid list
// of forest roots.
type HierarchicalOneToN[T any] interface {
	Remove(guid uint64)
	Contains(guid uint64) bool
	Len() int
	InsertRoot(guid uint64, v T) uint64
	InsertChild(parentNodeID uint64, v T) uint64
	Roots(guid uint64) []uint64
	NodeValue(nodeID uint64) *T
}
