package store

import "testing"

func TestDenseVecInsertGetRemove(t *testing.T) {
	tests := []struct {
		name    string
		inserts map[uint64]string
		remove  uint64
	}{
		{name: "remove middle", inserts: map[uint64]string{1: "a", 2: "b", 3: "c"}, remove: 2},
		{name: "remove last", inserts: map[uint64]string{1: "a", 2: "b", 3: "c"}, remove: 3},
		{name: "remove only", inserts: map[uint64]string{5: "x"}, remove: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDenseVec[string]()
			for guid, v := range tt.inserts {
				d.Insert(guid, v)
			}
			if d.Len() != len(tt.inserts) {
				t.Fatalf("Len() = %d, want %d", d.Len(), len(tt.inserts))
			}
			d.Remove(tt.remove)
			if d.Contains(tt.remove) {
				t.Fatalf("Contains(%d) = true after Remove", tt.remove)
			}
			if d.Len() != len(tt.inserts)-1 {
				t.Fatalf("Len() after Remove = %d, want %d", d.Len(), len(tt.inserts)-1)
			}
			for guid, want := range tt.inserts {
				if guid == tt.remove {
					continue
				}
				got := d.Get(guid)
				if got == nil || *got != want {
					t.Fatalf("Get(%d) = %v, want %q", guid, got, want)
				}
			}
		})
	}
}

func TestDenseVecSwapRemovePatchesSlot(t *testing.T) {
	d := NewDenseVec[int]()
	d.Insert(1, 10)
	d.Insert(2, 20)
	d.Insert(3, 30)

	d.Remove(1) // swaps 3 into slot 0

	if !d.Contains(3) {
		t.Fatal("Contains(3) = false after unrelated Remove")
	}
	if got := *d.Get(3); got != 30 {
		t.Fatalf("Get(3) = %d, want 30", got)
	}
	if got := *d.Get(2); got != 20 {
		t.Fatalf("Get(2) = %d, want 20", got)
	}
}

func TestDenseVecInsertDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on duplicate Insert")
		}
	}()
	d := NewDenseVec[int]()
	d.Insert(1, 1)
	d.Insert(1, 2)
}

func TestDenseVecValuesAndGuidsAligned(t *testing.T) {
	d := NewDenseVec[string]()
	d.Insert(1, "a")
	d.Insert(2, "b")

	values := d.Values()
	guids := d.Guids()
	if len(values) != len(guids) {
		t.Fatalf("Values/Guids length mismatch: %d vs %d", len(values), len(guids))
	}
	for i, guid := range guids {
		if *d.Get(guid) != values[i] {
			t.Fatalf("Values()[%d] = %q does not match Get(%d) = %q", i, values[i], guid, *d.Get(guid))
		}
	}
}
