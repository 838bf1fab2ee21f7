package bitset

import "testing"

func TestPredicateCheckBasic(t *testing.T) {
	posBit, velBit := 0, 1

	tests := []struct {
		name   string
		pred   Predicate
		mask   Mask
		expect bool
	}{
		{"all accepts empty mask", All(), New(), true},
		{"has requires bit present", Has(Of(posBit)), Of(posBit), true},
		{"has rejects missing bit", Has(Of(posBit)), Of(velBit), false},
		{"not rejects present bit (combined with positive)", Has(Of(posBit)).Combine(Not(Of(velBit))), Of(posBit, velBit), false},
		{"not accepts absent bit (combined with positive)", Has(Of(posBit)).Combine(Not(Of(velBit))), Of(posBit), true},
		{"hasNot mirrors combine", HasNot(Of(posBit), Of(velBit)), Of(posBit), true},
		{"or requires nontrivial overlap", Or(Of(posBit, velBit)), Of(velBit), true},
		{"or rejects disjoint mask", Or(Of(posBit, velBit)), Of(2), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pred.Check(tt.mask); got != tt.expect {
				t.Errorf("Check(%v) = %v, want %v", tt.mask.Bits(), got, tt.expect)
			}
		})
	}
}

func TestPredicateCombineIsAssociativeAndCommutative(t *testing.T) {
	a := Has(Of(0))
	b := Has(Of(1))
	c := Has(Of(2))

	left := a.Combine(b).Combine(c)
	right := a.Combine(b.Combine(c))
	if !left.Mask().Equal(right.Mask()) {
		t.Errorf("combine not associative: %v vs %v", left.Mask().Bits(), right.Mask().Bits())
	}

	ab := a.Combine(b)
	ba := b.Combine(a)
	if !ab.Mask().Equal(ba.Mask()) {
		t.Errorf("combine not commutative: %v vs %v", ab.Mask().Bits(), ba.Mask().Bits())
	}
}

func TestPredicateMaskUnionOfHasAndNot(t *testing.T) {
	p := Has(Of(0)).Combine(Not(Of(1)))
	m := p.Mask()
	if !m.Test(0) || !m.Test(1) {
		t.Errorf("Mask() = %v, want bits {0,1}", m.Bits())
	}
}

// Has(bit) and Not(bit) share the same Mask() (both touch bit 0), but must
// never collide as cache keys — they select disjoint, not overlapping,
// entity sets.
func TestPredicateKeyDistinguishesHasFromNot(t *testing.T) {
	has := Has(Of(0))
	not := Not(Of(0))

	if has.Mask().Key() != not.Mask().Key() {
		t.Fatalf("test setup invalid: Has(0) and Not(0) should share a Mask().Key()")
	}
	if has.Key() == not.Key() {
		t.Errorf("Has(0).Key() == Not(0).Key() (%q); they must differ", has.Key())
	}
}

func TestPredicateKeyStableAcrossCombineOrder(t *testing.T) {
	a := Has(Of(0)).Combine(Not(Of(1)))
	b := Not(Of(1)).Combine(Has(Of(0)))
	if a.Key() != b.Key() {
		t.Errorf("Key() not commutative under Combine: %q vs %q", a.Key(), b.Key())
	}
}
