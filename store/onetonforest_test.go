package store

import (
	"reflect"
	"testing"
)

func TestOneToNForestInsertRootAppendsPerGuid(t *testing.T) {
	f := NewOneToNForest[string]()
	f.InsertRoot(1, "a")
	f.InsertRoot(1, "b")
	f.InsertRoot(2, "c")

	roots1 := f.Roots(1)
	if len(roots1) != 2 {
		t.Fatalf("Roots(1) length = %d, want 2", len(roots1))
	}
	if *f.NodeValue(roots1[0]) != "a" || *f.NodeValue(roots1[1]) != "b" {
		t.Fatalf("Roots(1) values = %q, %q, want a, b", *f.NodeValue(roots1[0]), *f.NodeValue(roots1[1]))
	}
	if len(f.Roots(2)) != 1 {
		t.Fatalf("Roots(2) length = %d, want 1", len(f.Roots(2)))
	}
}

func TestOneToNForestInsertChildUnderRoot(t *testing.T) {
	f := NewOneToNForest[int]()
	root := f.InsertRoot(1, 10)
	child := f.InsertChild(root, 20)

	if *f.NodeValue(child) != 20 {
		t.Fatalf("NodeValue(child) = %d, want 20", *f.NodeValue(child))
	}
	roots := f.Roots(1)
	if !reflect.DeepEqual(roots, []uint64{root}) {
		t.Fatalf("Roots(1) = %v, want [%d]", roots, root)
	}
}

func TestOneToNForestRemoveDropsEveryTreeForGuid(t *testing.T) {
	f := NewOneToNForest[int]()
	root1 := f.InsertRoot(1, 1)
	child := f.InsertChild(root1, 2)
	root2 := f.InsertRoot(1, 3)
	other := f.InsertRoot(5, 99)

	f.Remove(1)

	if f.Contains(1) {
		t.Fatal("Contains(1) = true after Remove")
	}
	for _, id := range []uint64{root1, child, root2} {
		if f.NodeValue(id) != nil {
			t.Fatalf("NodeValue(%d) survived Remove(1)", id)
		}
	}
	if f.NodeValue(other) == nil {
		t.Fatal("unrelated guid's tree was removed")
	}
}

func TestOneToNForestContains(t *testing.T) {
	f := NewOneToNForest[int]()
	if f.Contains(1) {
		t.Fatal("Contains(1) = true before any Insert")
	}
	f.InsertRoot(1, 1)
	if !f.Contains(1) {
		t.Fatal("Contains(1) = false after InsertRoot")
	}
}
