package store

// OneToNForest stores a variable-length list of forest trees per guid: each
// guid owns zero or more root nodes, and nodes may themselves have children,
// all living in one shared arena. Grounded on original_source/src/
// oneton_forest.rs, whose entities_roots: DenseVec<Vec<NodeId>> maps guid to
// its root-node-id list over a shared node arena — reproduced here with
// Forest's forestNode type and its own copy of the arena logic.
type OneToNForest[T any] struct {
	nodes   []forestNode[T]
	rootsOf map[uint64][]int // guid -> root node ids, insertion order
	ownerOf map[int]uint64   // node id -> owning guid, for Remove
	count   int
}

var _ HierarchicalOneToN[int] = (*OneToNForest[int])(nil)

func NewOneToNForest[T any]() *OneToNForest[T] {
	return &OneToNForest[T]{
		rootsOf: make(map[uint64][]int),
		ownerOf: make(map[int]uint64),
	}
}

func (f *OneToNForest[T]) newNode(v T) int {
	f.nodes = append(f.nodes, forestNode[T]{
		parent: -1, firstChild: -1, lastChild: -1,
		prevSibling: -1, nextSibling: -1,
		data: v, alive: true,
	})
	id := len(f.nodes) - 1
	f.count++
	return id
}

// InsertRoot has no precondition: it may be called repeatedly for the same
// guid to add further roots; the first call establishes guid as present in
// the HierarchicalOneToN sense. Returns the new node's id.
func (f *OneToNForest[T]) InsertRoot(guid uint64, v T) uint64 {
	id := f.newNode(v)
	f.rootsOf[guid] = append(f.rootsOf[guid], id)
	f.ownerOf[id] = guid
	return uint64(id)
}

// InsertChild appends v as the last child of parentNodeID and returns the
// new node's id. parentNodeID must have been returned by InsertRoot or
// InsertChild on this forest.
func (f *OneToNForest[T]) InsertChild(parentNodeID uint64, v T) uint64 {
	p := int(parentNodeID)
	if p < 0 || p >= len(f.nodes) || !f.nodes[p].alive {
		panic("store: OneToNForest.InsertChild on an unknown node id")
	}
	id := f.newNode(v)
	f.nodes[id].parent = p
	f.ownerOf[id] = f.ownerOf[p]

	parent := &f.nodes[p]
	if parent.lastChild == -1 {
		parent.firstChild = id
		parent.lastChild = id
	} else {
		f.nodes[parent.lastChild].nextSibling = id
		f.nodes[id].prevSibling = parent.lastChild
		parent.lastChild = id
	}
	return uint64(id)
}

func (f *OneToNForest[T]) killSubtree(nodeID int) {
	n := &f.nodes[nodeID]
	for child := n.firstChild; child != -1; {
		next := f.nodes[child].nextSibling
		f.killSubtree(child)
		child = next
	}
	delete(f.ownerOf, nodeID)
	n.alive = false
	f.count--
}

// Remove requires Contains(guid). Removes every tree rooted under guid.
func (f *OneToNForest[T]) Remove(guid uint64) {
	roots, ok := f.rootsOf[guid]
	if !ok {
		panic("store: OneToNForest.Remove on guid without any trees")
	}
	for _, root := range roots {
		f.killSubtree(root)
	}
	delete(f.rootsOf, guid)
}

// Contains reports whether guid currently owns at least one tree.
func (f *OneToNForest[T]) Contains(guid uint64) bool {
	roots, ok := f.rootsOf[guid]
	return ok && len(roots) > 0
}

// Len returns the number of guids that own at least one tree.
func (f *OneToNForest[T]) Len() int { return len(f.rootsOf) }

// Roots returns guid's root node ids in insertion order.
func (f *OneToNForest[T]) Roots(guid uint64) []uint64 {
	roots := f.rootsOf[guid]
	out := make([]uint64, len(roots))
	for i, r := range roots {
		out[i] = uint64(r)
	}
	return out
}

// NodeValue returns the value stored at nodeID, or nil if nodeID is unknown
// or has been removed.
func (f *OneToNForest[T]) NodeValue(nodeID uint64) *T {
	id := int(nodeID)
	if id < 0 || id >= len(f.nodes) || !f.nodes[id].alive {
		return nil
	}
	return &f.nodes[id].data
}
