package store

import "testing"

func TestHashMapStorageInsertGetRemove(t *testing.T) {
	h := NewHashMapStorage[string]()
	h.Insert(1, "a")
	h.Insert(2, "b")

	if got := *h.Get(1); got != "a" {
		t.Fatalf("Get(1) = %q, want %q", got, "a")
	}
	h.Remove(1)
	if h.Contains(1) {
		t.Fatal("Contains(1) = true after Remove")
	}
	if got := *h.Get(2); got != "b" {
		t.Fatalf("Get(2) = %q, want %q", got, "b")
	}
}

func TestHashMapStorageGetReturnsWritableHandle(t *testing.T) {
	h := NewHashMapStorage[int]()
	h.Insert(1, 10)

	p := h.Get(1)
	*p = 20

	if got := *h.Get(1); got != 20 {
		t.Fatalf("Get(1) = %d after write-through, want %d", got, 20)
	}
}

func TestHashMapStorageInsertDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on duplicate Insert")
		}
	}()
	h := NewHashMapStorage[int]()
	h.Insert(1, 1)
	h.Insert(1, 2)
}

func TestHashMapStorageLen(t *testing.T) {
	h := NewHashMapStorage[int]()
	for i := uint64(0); i < 5; i++ {
		h.Insert(i, int(i))
	}
	if h.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", h.Len())
	}
	h.Remove(0)
	if h.Len() != 4 {
		t.Fatalf("Len() after Remove = %d, want 4", h.Len())
	}
}
