package store

// forestNode is one arena slot: a doubly-linked sibling list under a
// parent, so children can be appended/walked without reshuffling the
// arena. -1 means "no such link". Grounded on original_source/src/
// idtree.rs (the arena backing Forest) condensed to the subset Forest
// actually needs: parent/children/siblings/data.
type forestNode[T any] struct {
	parent, firstChild, lastChild, prevSibling, nextSibling int
	guid                                                    uint64
	data                                                     T
	alive                                                    bool
}

// Forest is a multi-rooted arena tree of values keyed by guid: supports
// Insert (new root), InsertChild, pre-order traversal across all roots, and
// a cached OrderedIDs vector invalidated on mutation. Grounded on
// original_source/src/forest.rs.
type Forest[T any] struct {
	nodes      []forestNode[T]
	nodeOf     map[uint64]int
	roots      []int
	orderedIDs []uint64 // nil means "needs recompute"
	count      int
}

var _ Hierarchical[int] = (*Forest[int])(nil)

func NewForest[T any]() *Forest[T] {
	return &Forest[T]{nodeOf: make(map[uint64]int)}
}

func NewForestWithCapacity[T any](n int) *Forest[T] {
	return &Forest[T]{
		nodes:  make([]forestNode[T], 0, n),
		nodeOf: make(map[uint64]int, n),
	}
}

func (f *Forest[T]) newNode(guid uint64, v T) int {
	f.nodes = append(f.nodes, forestNode[T]{
		parent: -1, firstChild: -1, lastChild: -1,
		prevSibling: -1, nextSibling: -1,
		guid: guid, data: v, alive: true,
	})
	id := len(f.nodes) - 1
	f.nodeOf[guid] = id
	f.count++
	return id
}

// Insert requires !Contains(guid). Adds guid as a new root.
func (f *Forest[T]) Insert(guid uint64, v T) {
	if f.Contains(guid) {
		panic("store: Forest.Insert on guid that already has a component")
	}
	id := f.newNode(guid, v)
	f.roots = append(f.roots, id)
	f.orderedIDs = nil
}

// InsertChild requires Contains(parentGuid) and !Contains(guid).
func (f *Forest[T]) InsertChild(parentGuid, guid uint64, v T) {
	parentID, ok := f.nodeOf[parentGuid]
	if !ok || !f.nodes[parentID].alive {
		panic("store: Forest.InsertChild on a missing parent guid")
	}
	if f.Contains(guid) {
		panic("store: Forest.InsertChild on guid that already has a component")
	}
	id := f.newNode(guid, v)
	f.nodes[id].parent = parentID

	parent := &f.nodes[parentID]
	if parent.lastChild == -1 {
		parent.firstChild = id
		parent.lastChild = id
	} else {
		f.nodes[parent.lastChild].nextSibling = id
		f.nodes[id].prevSibling = parent.lastChild
		parent.lastChild = id
	}
	f.orderedIDs = nil
}

// unlink detaches nodeID from its parent's child list or, if it is a root,
// from the roots slice.
func (f *Forest[T]) unlink(nodeID int) {
	n := &f.nodes[nodeID]
	if n.prevSibling != -1 {
		f.nodes[n.prevSibling].nextSibling = n.nextSibling
	}
	if n.nextSibling != -1 {
		f.nodes[n.nextSibling].prevSibling = n.prevSibling
	}
	if n.parent != -1 {
		p := &f.nodes[n.parent]
		if p.firstChild == nodeID {
			p.firstChild = n.nextSibling
		}
		if p.lastChild == nodeID {
			p.lastChild = n.prevSibling
		}
		return
	}
	for i, r := range f.roots {
		if r == nodeID {
			f.roots = append(f.roots[:i], f.roots[i+1:]...)
			return
		}
	}
}

func (f *Forest[T]) killSubtree(nodeID int) {
	n := &f.nodes[nodeID]
	for child := n.firstChild; child != -1; {
		next := f.nodes[child].nextSibling
		f.killSubtree(child)
		child = next
	}
	delete(f.nodeOf, n.guid)
	n.alive = false
	f.count--
}

// Remove requires Contains(guid). Removes guid's node and its entire
// subtree.
func (f *Forest[T]) Remove(guid uint64) {
	nodeID, ok := f.nodeOf[guid]
	if !ok {
		panic("store: Forest.Remove on guid without a component")
	}
	f.unlink(nodeID)
	f.killSubtree(nodeID)
	f.orderedIDs = nil
}

// Get requires Contains(guid).
func (f *Forest[T]) Get(guid uint64) *T {
	id, ok := f.nodeOf[guid]
	if !ok {
		panic("store: Forest.Get on guid without a component")
	}
	return &f.nodes[id].data
}

// Contains reports whether guid currently has a value.
func (f *Forest[T]) Contains(guid uint64) bool {
	id, ok := f.nodeOf[guid]
	return ok && f.nodes[id].alive
}

// Len returns the number of live nodes across every tree.
func (f *Forest[T]) Len() int { return f.count }

// Parent returns the guid of guid's parent node, if any.
func (f *Forest[T]) Parent(guid uint64) (uint64, bool) {
	id, ok := f.nodeOf[guid]
	if !ok {
		return 0, false
	}
	p := f.nodes[id].parent
	if p == -1 {
		return 0, false
	}
	return f.nodes[p].guid, true
}

func (f *Forest[T]) walkPreOrder(nodeID int, out []uint64) []uint64 {
	out = append(out, f.nodes[nodeID].guid)
	for child := f.nodes[nodeID].firstChild; child != -1; child = f.nodes[child].nextSibling {
		out = f.walkPreOrder(child, out)
	}
	return out
}

// OrderedIDs returns the cached pre-order guid walk: roots in insertion
// order, each root's subtree depth-first, recomputed on first access after
// any mutation (spec §4.2/§4.4/§8 invariant 5).
func (f *Forest[T]) OrderedIDs() []uint64 {
	if f.orderedIDs != nil {
		return f.orderedIDs
	}
	out := make([]uint64, 0, f.count)
	for _, root := range f.roots {
		out = f.walkPreOrder(root, out)
	}
	f.orderedIDs = out
	return out
}

// Values returns every live value in pre-order (the only well-defined
// "storage order" for a multi-rooted tree).
func (f *Forest[T]) Values() []T {
	ids := f.OrderedIDs()
	out := make([]T, len(ids))
	for i, id := range ids {
		out[i] = *f.Get(id)
	}
	return out
}

// Guids returns the guid owning Values()[i] for each i.
func (f *Forest[T]) Guids() []uint64 {
	return append([]uint64(nil), f.OrderedIDs()...)
}
