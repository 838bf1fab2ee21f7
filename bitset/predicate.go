package bitset

// Predicate is the three-valued bitmask query predicate of spec §3/§4.1:
// `has` (all bits required present), `not` (bits required absent), and an
// `or` disjunction used only by ReadOr. `all()` accepts everything.
//
// The original Rust Bitmask represents "no exclusion yet" with a
// usize::MAX sentinel so that AND-ing it with a real exclusion mask is the
// identity operation. A fixed-width all-ones value cannot be expressed for
// an arbitrary-width Mask, so notIsIdentity plays the same role explicitly:
// combining two predicates ANDs their `not` masks only when both actually
// carry an exclusion, otherwise the non-sentinel side passes through
// unchanged — the same observable behavior without assuming a bounded
// width.
type Predicate struct {
	has Mask
	not Mask
	// notIsIdentity mirrors the all-ones sentinel: true means this
	// predicate has no exclusion, i.e. `not` behaves as the AND identity.
	notIsIdentity bool
	or            Mask
	orSet         bool
}

// All returns the sentinel predicate that accepts every entity mask.
func All() Predicate {
	return Predicate{notIsIdentity: true}
}

// Has returns a predicate requiring every bit in bits.
func Has(bits Mask) Predicate {
	return Predicate{has: bits, notIsIdentity: true}
}

// Not returns a predicate requiring every bit in bits to be absent.
// Per spec §4.4, Not must only be combined (via Combine) with at least one
// positive query; evaluating it alone is meaningless (everything but the
// requirement itself matches).
func Not(bits Mask) Predicate {
	return Predicate{not: bits}
}

// HasNot returns a predicate requiring `has` present and `not` absent —
// the ReadNot<C, N> query kind.
func HasNot(has, not Mask) Predicate {
	return Predicate{has: has, not: not}
}

// Or returns the disjunctive predicate used by ReadOr<(C1,...,Ck)>: it
// accepts any entity mask whose bits nontrivially overlap bits.
func Or(bits Mask) Predicate {
	return Predicate{notIsIdentity: true, or: bits, orSet: true}
}

// Combine implements spec §4.1's `A | B` combinator:
// has = A.has | B.has, not = A.not & B.not (AND-identity-aware, see above).
func (p Predicate) Combine(q Predicate) Predicate {
	out := Predicate{has: p.has.Union(q.has)}

	switch {
	case p.notIsIdentity && q.notIsIdentity:
		out.notIsIdentity = true
	case p.notIsIdentity:
		out.not = q.not
	case q.notIsIdentity:
		out.not = p.not
	default:
		out.not = p.not.Intersect(q.not)
	}

	out.or = p.or.Union(q.or)
	out.orSet = p.orSet || q.orSet
	return out
}

// Mask returns the union of has, not and or bits. It collapses which side
// of the predicate each bit came from, so it must never be used alone as a
// cache key for two different predicates over the same bits (e.g.
// Has(A) vs Not(A)) — use Key for that.
func (p Predicate) Mask() Mask {
	return p.has.Union(p.not).Union(p.or)
}

// Key returns a string uniquely identifying p's full has/not/or shape,
// suitable as a cache key for the per-predicate index caches (§4.4).
// Unlike Mask().Key(), this keeps has, not and or distinguishable, so
// Has(A) and Not(A) — which share the same Mask() — never collide.
func (p Predicate) Key() string {
	return p.has.Key() + "|" + p.not.Key() + "|" + p.or.Key()
}

// Check implements spec §3's predicate: entity_mask satisfies p iff
// (entity_mask & p.has) == p.has AND (entity_mask & p.not) != p.not (i.e.
// at least one forbidden bit is missing when not has any set bits), AND,
// when an Or requirement is present, entity_mask overlaps it nontrivially.
func (p Predicate) Check(entityMask Mask) bool {
	if !entityMask.ContainsAll(p.has) {
		return false
	}
	if !p.notIsIdentity && !p.not.IsEmpty() && entityMask.ContainsAll(p.not) {
		return false
	}
	if p.orSet && !p.or.IsEmpty() && !entityMask.ContainsAny(p.or) {
		return false
	}
	return true
}
