package store

import "testing"

func TestVecStorageInsertGetRemove(t *testing.T) {
	tests := []struct {
		name   string
		guids  []uint64
		remove uint64
	}{
		{name: "sparse guids", guids: []uint64{2, 9, 100}, remove: 9},
		{name: "dense guids", guids: []uint64{0, 1, 2, 3}, remove: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewVecStorage[int]()
			for i, guid := range tt.guids {
				v.Insert(guid, i*10)
			}
			v.Remove(tt.remove)
			if v.Contains(tt.remove) {
				t.Fatalf("Contains(%d) = true after Remove", tt.remove)
			}
			for i, guid := range tt.guids {
				if guid == tt.remove {
					continue
				}
				got := v.Get(guid)
				if got == nil || *got != i*10 {
					t.Fatalf("Get(%d) = %v, want %d", guid, got, i*10)
				}
			}
		})
	}
}

func TestVecStorageGrowsSparsely(t *testing.T) {
	v := NewVecStorage[string]()
	v.Insert(1000, "far")
	if v.Contains(500) {
		t.Fatal("Contains(500) = true for a guid never inserted")
	}
	if !v.Contains(1000) {
		t.Fatal("Contains(1000) = false right after Insert")
	}
}

func TestVecStorageValuesInIDOrder(t *testing.T) {
	v := NewVecStorage[int]()
	v.Insert(5, 50)
	v.Insert(2, 20)
	v.Insert(8, 80)

	values := v.Values()
	guids := v.Guids()
	if len(values) != 3 || len(guids) != 3 {
		t.Fatalf("expected 3 values and guids, got %d/%d", len(values), len(guids))
	}
	for i, guid := range guids {
		if *v.Get(guid) != values[i] {
			t.Fatalf("Values()[%d] = %d does not match Get(%d)", i, values[i], guid)
		}
	}
}
