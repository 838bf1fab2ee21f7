package store

import (
	"reflect"
	"testing"
)

func TestDenseOneToNVecInsertAndGetSlice(t *testing.T) {
	d := NewDenseOneToNVec[int]()
	d.InsertSlice(1, []int{1, 2, 3})
	d.InsertSlice(2, []int{10, 20})

	if got := d.GetSlice(1); !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Fatalf("GetSlice(1) = %v, want [1 2 3]", got)
	}
	if got := d.GetSlice(2); !reflect.DeepEqual(got, []int{10, 20}) {
		t.Fatalf("GetSlice(2) = %v, want [10 20]", got)
	}
}

func TestDenseOneToNVecRemoveShiftsLaterGroups(t *testing.T) {
	d := NewDenseOneToNVec[int]()
	d.InsertSlice(1, []int{1, 2, 3})
	d.InsertSlice(2, []int{10, 20})
	d.InsertSlice(3, []int{100})

	d.Remove(1)

	if d.Contains(1) {
		t.Fatal("Contains(1) = true after Remove")
	}
	if got := d.GetSlice(2); !reflect.DeepEqual(got, []int{10, 20}) {
		t.Fatalf("GetSlice(2) after Remove(1) = %v, want [10 20]", got)
	}
	if got := d.GetSlice(3); !reflect.DeepEqual(got, []int{100}) {
		t.Fatalf("GetSlice(3) after Remove(1) = %v, want [100]", got)
	}
}

func TestDenseOneToNVecInsertSliceReplacesExistingRun(t *testing.T) {
	d := NewDenseOneToNVec[string]()
	d.InsertSlice(1, []string{"a", "b"})
	d.InsertSlice(2, []string{"x"})

	d.InsertSlice(1, []string{"c", "d", "e"})

	if got := d.GetSlice(1); !reflect.DeepEqual(got, []string{"c", "d", "e"}) {
		t.Fatalf("GetSlice(1) after replace = %v, want [c d e]", got)
	}
	if got := d.GetSlice(2); !reflect.DeepEqual(got, []string{"x"}) {
		t.Fatalf("GetSlice(2) = %v, want [x] (unaffected by guid 1's replace)", got)
	}
}

func TestDenseOneToNVecLen(t *testing.T) {
	d := NewDenseOneToNVec[int]()
	if d.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", d.Len())
	}
	d.InsertSlice(1, []int{1})
	d.InsertSlice(2, []int{2, 3})
	if d.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", d.Len())
	}
}
