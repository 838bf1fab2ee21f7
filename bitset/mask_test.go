package bitset

import "testing"

func TestMaskSetClearTest(t *testing.T) {
	tests := []struct {
		name string
		bits []int
		test int
		want bool
	}{
		{"low bit set", []int{0}, 0, true},
		{"low bit absent", []int{0}, 1, false},
		{"crosses word boundary", []int{63, 64, 130}, 130, true},
		{"empty mask", nil, 5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Of(tt.bits...)
			if got := m.Test(tt.test); got != tt.want {
				t.Errorf("Test(%d) = %v, want %v", tt.test, got, tt.want)
			}
		})
	}
}

func TestMaskClearIsNoOpBeyondWidth(t *testing.T) {
	var m Mask
	m.Clear(200) // must not panic or grow
	if !m.IsEmpty() {
		t.Fatalf("expected empty mask")
	}
}

func TestMaskUnionIntersectContains(t *testing.T) {
	a := Of(0, 2, 130)
	b := Of(2, 3)

	union := a.Union(b)
	for _, bit := range []int{0, 2, 3, 130} {
		if !union.Test(bit) {
			t.Errorf("union missing bit %d", bit)
		}
	}

	inter := a.Intersect(b)
	if !inter.Equal(Of(2)) {
		t.Errorf("intersect = %v, want {2}", inter.Bits())
	}

	if !a.ContainsAll(Of(0, 2)) {
		t.Errorf("expected a to contain {0,2}")
	}
	if a.ContainsAll(Of(0, 3)) {
		t.Errorf("expected a not to contain {0,3}")
	}
	if !a.ContainsAny(b) {
		t.Errorf("expected a and b to overlap on bit 2")
	}
}

func TestMaskKeyStableAcrossEquivalentMasks(t *testing.T) {
	a := Of(1, 5, 200)
	b := New()
	for _, bit := range []int{200, 5, 1} {
		b.Set(bit)
	}
	if a.Key() != b.Key() {
		t.Errorf("Key() differs for equal masks: %q vs %q", a.Key(), b.Key())
	}
	if !a.Equal(b) {
		t.Errorf("expected masks built in different order to be Equal")
	}
}

func TestMaskCloneIsIndependent(t *testing.T) {
	a := Of(1, 2)
	clone := a.Clone()
	clone.Set(99)
	if a.Test(99) {
		t.Errorf("mutating clone affected original")
	}
}
