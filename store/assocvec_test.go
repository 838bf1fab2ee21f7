package store

import (
	"math/rand"
	"testing"
)

func TestAssocVecMaintainsSortedOrder(t *testing.T) {
	a := NewAssocVec[int]()
	guids := []uint64{50, 10, 30, 20, 40}
	for _, g := range guids {
		a.Insert(g, int(g))
	}

	sortedGuids := a.Guids()
	for i := 1; i < len(sortedGuids); i++ {
		if sortedGuids[i-1] >= sortedGuids[i] {
			t.Fatalf("Guids() not sorted ascending at %d: %v", i, sortedGuids)
		}
	}
}

func TestAssocVecLocateMatchesDirectSearchRegardlessOfAccessPattern(t *testing.T) {
	a := NewAssocVec[int]()
	const n = 200
	for i := 0; i < n; i++ {
		a.Insert(uint64(i), i*2)
	}

	rng := rand.New(rand.NewSource(1))
	order := rng.Perm(n)
	for _, guid := range order {
		got := *a.Get(uint64(guid))
		if got != guid*2 {
			t.Fatalf("Get(%d) = %d, want %d", guid, got, guid*2)
		}
	}

	for i := 0; i < n; i += 7 {
		got := *a.Get(uint64(i))
		if got != i*2 {
			t.Fatalf("repeat Get(%d) = %d, want %d", i, got, i*2)
		}
	}
}

func TestAssocVecRemoveThenReinsert(t *testing.T) {
	a := NewAssocVec[string]()
	a.Insert(1, "a")
	a.Insert(2, "b")
	a.Insert(3, "c")

	a.Remove(2)
	if a.Contains(2) {
		t.Fatal("Contains(2) = true after Remove")
	}

	a.Insert(2, "b2")
	if got := *a.Get(2); got != "b2" {
		t.Fatalf("Get(2) = %q, want %q", got, "b2")
	}
	if got := *a.Get(1); got != "a" {
		t.Fatalf("Get(1) = %q, want %q", got, "a")
	}
	if got := *a.Get(3); got != "c" {
		t.Fatalf("Get(3) = %q, want %q", got, "c")
	}
}

func TestAssocVecInsertDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on duplicate Insert")
		}
	}()
	a := NewAssocVec[int]()
	a.Insert(1, 1)
	a.Insert(1, 2)
}

func TestLog2Threshold(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 0}, {1, 0}, {2, 1}, {3, 1}, {4, 2}, {8, 3}, {1000, 9},
	}
	for _, tt := range tests {
		if got := log2Threshold(tt.n); got != tt.want {
			t.Errorf("log2Threshold(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}
