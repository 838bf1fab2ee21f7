// Tuple arities 2 through 16; Go has no variadic generics so each arity is
// its own concrete type following the identical mechanical pattern: combine
// children's mask predicates, resolve the guid list (ordered if any child is
// hierarchical, else the per-mask cache), lock every child's storage for the
// walk, and materialize each child's value per guid into a query.PairN. This
// file was originally written by hand; query/gen (see DESIGN.md) regenerates
// it in place, gofmt'd, with comments and layout that differ from this copy.
// DO NOT extend this file by adding a 17th arity without also updating
// SPEC_FULL.md's stated bound and query/gen's maxArity.
//
//go:generate go run ./query/gen -tuple-out=query_tuple.go -pair-out=query/tuple.go
package loom

import (
	"github.com/forgeweave/loom/bitset"
	"github.com/forgeweave/loom/query"
)

// combineAll folds a list of per-child mask predicates into the tuple's
// combined predicate via repeated Combine (associative and commutative,
// bitset.Predicate.Combine's doc comment).
func combineAll(preds ...bitset.Predicate) bitset.Predicate {
	p := bitset.All()
	for _, q := range preds {
		p = p.Combine(q)
	}
	return p
}

// resolveIDs returns the guid list a tuple query should walk: the first
// ordered child's pre-order walk filtered by the combined predicate, or the
// unordered per-mask cache when no child is hierarchical (spec.md §4.4).
func resolveIDs(w *World, m bitset.Predicate, ordered []orderedFetcher) []uint64 {
	if len(ordered) > 0 {
		key, ids := ordered[0].orderedSource(w)
		cacheKey := key + m.Key()
		return w.orderedCache.GetOrCompute(cacheKey, func() []uint64 {
			out := make([]uint64, 0, len(ids))
			for _, g := range ids {
				if m.Check(w.maskOf(g)) {
					out = append(out, g)
				}
			}
			return out
		})
	}
	key := m.Key()
	return w.maskCache.GetOrCompute(key, func() []uint64 {
		w.tableMu.RLock()
		defer w.tableMu.RUnlock()
		out := make([]uint64, 0, len(w.entities))
		for _, row := range w.entities {
			if m.Check(row.mask) {
				out = append(out, row.guid)
			}
		}
		return out
	})
}

// Tuple2 composes 2 fetchers into one query over the guid list their
// combined mask selects.
type Tuple2[T1, T2 any] struct {
	q1 fetcher[T1]
	q2 fetcher[T2]
}

// NewTuple2 composes the given fetchers. Each must come from a distinct
// component type; composing Write[T] with itself (or with another
// parallel system's Write[T]) is a caller error per spec.md §5.
func NewTuple2[T1, T2 any](q1 fetcher[T1], q2 fetcher[T2]) Tuple2[T1, T2] {
	return Tuple2[T1, T2]{q1, q2}
}

// Each resolves 2's combined guid list and yields (Entity, Pair2) for
// each match, holding every child's storage lock for the walk's lifetime.
func (t Tuple2[T1, T2]) Each(w *World) func(yield func(Entity, query.Pair2[T1, T2]) bool) {
	return func(yield func(Entity, query.Pair2[T1, T2]) bool) {
		m := combineAll(t.q1.queryMask(w), t.q2.queryMask(w))
		var ordered []orderedFetcher
	if of, ok := any(t.q1).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q2).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
		ids := resolveIDs(w, m, ordered)

	u1 := t.q1.lock(w)
	u2 := t.q2.lock(w)
		defer func() {
		u2()
		u1()
		}()

		for _, g := range ids {
			v := query.Pair2[T1, T2]{V1: t.q1.get(w, g), V2: t.q2.get(w, g)}
			if !yield(Entity(g), v) {
				return
			}
		}
	}
}

// Tuple3 composes 3 fetchers into one query over the guid list their
// combined mask selects.
type Tuple3[T1, T2, T3 any] struct {
	q1 fetcher[T1]
	q2 fetcher[T2]
	q3 fetcher[T3]
}

// NewTuple3 composes the given fetchers. Each must come from a distinct
// component type; composing Write[T] with itself (or with another
// parallel system's Write[T]) is a caller error per spec.md §5.
func NewTuple3[T1, T2, T3 any](q1 fetcher[T1], q2 fetcher[T2], q3 fetcher[T3]) Tuple3[T1, T2, T3] {
	return Tuple3[T1, T2, T3]{q1, q2, q3}
}

// Each resolves 3's combined guid list and yields (Entity, Pair3) for
// each match, holding every child's storage lock for the walk's lifetime.
func (t Tuple3[T1, T2, T3]) Each(w *World) func(yield func(Entity, query.Pair3[T1, T2, T3]) bool) {
	return func(yield func(Entity, query.Pair3[T1, T2, T3]) bool) {
		m := combineAll(t.q1.queryMask(w), t.q2.queryMask(w), t.q3.queryMask(w))
		var ordered []orderedFetcher
	if of, ok := any(t.q1).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q2).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q3).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
		ids := resolveIDs(w, m, ordered)

	u1 := t.q1.lock(w)
	u2 := t.q2.lock(w)
	u3 := t.q3.lock(w)
		defer func() {
		u3()
		u2()
		u1()
		}()

		for _, g := range ids {
			v := query.Pair3[T1, T2, T3]{V1: t.q1.get(w, g), V2: t.q2.get(w, g), V3: t.q3.get(w, g)}
			if !yield(Entity(g), v) {
				return
			}
		}
	}
}

// Tuple4 composes 4 fetchers into one query over the guid list their
// combined mask selects.
type Tuple4[T1, T2, T3, T4 any] struct {
	q1 fetcher[T1]
	q2 fetcher[T2]
	q3 fetcher[T3]
	q4 fetcher[T4]
}

// NewTuple4 composes the given fetchers. Each must come from a distinct
// component type; composing Write[T] with itself (or with another
// parallel system's Write[T]) is a caller error per spec.md §5.
func NewTuple4[T1, T2, T3, T4 any](q1 fetcher[T1], q2 fetcher[T2], q3 fetcher[T3], q4 fetcher[T4]) Tuple4[T1, T2, T3, T4] {
	return Tuple4[T1, T2, T3, T4]{q1, q2, q3, q4}
}

// Each resolves 4's combined guid list and yields (Entity, Pair4) for
// each match, holding every child's storage lock for the walk's lifetime.
func (t Tuple4[T1, T2, T3, T4]) Each(w *World) func(yield func(Entity, query.Pair4[T1, T2, T3, T4]) bool) {
	return func(yield func(Entity, query.Pair4[T1, T2, T3, T4]) bool) {
		m := combineAll(t.q1.queryMask(w), t.q2.queryMask(w), t.q3.queryMask(w), t.q4.queryMask(w))
		var ordered []orderedFetcher
	if of, ok := any(t.q1).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q2).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q3).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q4).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
		ids := resolveIDs(w, m, ordered)

	u1 := t.q1.lock(w)
	u2 := t.q2.lock(w)
	u3 := t.q3.lock(w)
	u4 := t.q4.lock(w)
		defer func() {
		u4()
		u3()
		u2()
		u1()
		}()

		for _, g := range ids {
			v := query.Pair4[T1, T2, T3, T4]{V1: t.q1.get(w, g), V2: t.q2.get(w, g), V3: t.q3.get(w, g), V4: t.q4.get(w, g)}
			if !yield(Entity(g), v) {
				return
			}
		}
	}
}

// Tuple5 composes 5 fetchers into one query over the guid list their
// combined mask selects.
type Tuple5[T1, T2, T3, T4, T5 any] struct {
	q1 fetcher[T1]
	q2 fetcher[T2]
	q3 fetcher[T3]
	q4 fetcher[T4]
	q5 fetcher[T5]
}

// NewTuple5 composes the given fetchers. Each must come from a distinct
// component type; composing Write[T] with itself (or with another
// parallel system's Write[T]) is a caller error per spec.md §5.
func NewTuple5[T1, T2, T3, T4, T5 any](q1 fetcher[T1], q2 fetcher[T2], q3 fetcher[T3], q4 fetcher[T4], q5 fetcher[T5]) Tuple5[T1, T2, T3, T4, T5] {
	return Tuple5[T1, T2, T3, T4, T5]{q1, q2, q3, q4, q5}
}

// Each resolves 5's combined guid list and yields (Entity, Pair5) for
// each match, holding every child's storage lock for the walk's lifetime.
func (t Tuple5[T1, T2, T3, T4, T5]) Each(w *World) func(yield func(Entity, query.Pair5[T1, T2, T3, T4, T5]) bool) {
	return func(yield func(Entity, query.Pair5[T1, T2, T3, T4, T5]) bool) {
		m := combineAll(t.q1.queryMask(w), t.q2.queryMask(w), t.q3.queryMask(w), t.q4.queryMask(w), t.q5.queryMask(w))
		var ordered []orderedFetcher
	if of, ok := any(t.q1).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q2).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q3).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q4).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q5).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
		ids := resolveIDs(w, m, ordered)

	u1 := t.q1.lock(w)
	u2 := t.q2.lock(w)
	u3 := t.q3.lock(w)
	u4 := t.q4.lock(w)
	u5 := t.q5.lock(w)
		defer func() {
		u5()
		u4()
		u3()
		u2()
		u1()
		}()

		for _, g := range ids {
			v := query.Pair5[T1, T2, T3, T4, T5]{V1: t.q1.get(w, g), V2: t.q2.get(w, g), V3: t.q3.get(w, g), V4: t.q4.get(w, g), V5: t.q5.get(w, g)}
			if !yield(Entity(g), v) {
				return
			}
		}
	}
}

// Tuple6 composes 6 fetchers into one query over the guid list their
// combined mask selects.
type Tuple6[T1, T2, T3, T4, T5, T6 any] struct {
	q1 fetcher[T1]
	q2 fetcher[T2]
	q3 fetcher[T3]
	q4 fetcher[T4]
	q5 fetcher[T5]
	q6 fetcher[T6]
}

// NewTuple6 composes the given fetchers. Each must come from a distinct
// component type; composing Write[T] with itself (or with another
// parallel system's Write[T]) is a caller error per spec.md §5.
func NewTuple6[T1, T2, T3, T4, T5, T6 any](q1 fetcher[T1], q2 fetcher[T2], q3 fetcher[T3], q4 fetcher[T4], q5 fetcher[T5], q6 fetcher[T6]) Tuple6[T1, T2, T3, T4, T5, T6] {
	return Tuple6[T1, T2, T3, T4, T5, T6]{q1, q2, q3, q4, q5, q6}
}

// Each resolves 6's combined guid list and yields (Entity, Pair6) for
// each match, holding every child's storage lock for the walk's lifetime.
func (t Tuple6[T1, T2, T3, T4, T5, T6]) Each(w *World) func(yield func(Entity, query.Pair6[T1, T2, T3, T4, T5, T6]) bool) {
	return func(yield func(Entity, query.Pair6[T1, T2, T3, T4, T5, T6]) bool) {
		m := combineAll(t.q1.queryMask(w), t.q2.queryMask(w), t.q3.queryMask(w), t.q4.queryMask(w), t.q5.queryMask(w), t.q6.queryMask(w))
		var ordered []orderedFetcher
	if of, ok := any(t.q1).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q2).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q3).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q4).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q5).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q6).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
		ids := resolveIDs(w, m, ordered)

	u1 := t.q1.lock(w)
	u2 := t.q2.lock(w)
	u3 := t.q3.lock(w)
	u4 := t.q4.lock(w)
	u5 := t.q5.lock(w)
	u6 := t.q6.lock(w)
		defer func() {
		u6()
		u5()
		u4()
		u3()
		u2()
		u1()
		}()

		for _, g := range ids {
			v := query.Pair6[T1, T2, T3, T4, T5, T6]{V1: t.q1.get(w, g), V2: t.q2.get(w, g), V3: t.q3.get(w, g), V4: t.q4.get(w, g), V5: t.q5.get(w, g), V6: t.q6.get(w, g)}
			if !yield(Entity(g), v) {
				return
			}
		}
	}
}

// Tuple7 composes 7 fetchers into one query over the guid list their
// combined mask selects.
type Tuple7[T1, T2, T3, T4, T5, T6, T7 any] struct {
	q1 fetcher[T1]
	q2 fetcher[T2]
	q3 fetcher[T3]
	q4 fetcher[T4]
	q5 fetcher[T5]
	q6 fetcher[T6]
	q7 fetcher[T7]
}

// NewTuple7 composes the given fetchers. Each must come from a distinct
// component type; composing Write[T] with itself (or with another
// parallel system's Write[T]) is a caller error per spec.md §5.
func NewTuple7[T1, T2, T3, T4, T5, T6, T7 any](q1 fetcher[T1], q2 fetcher[T2], q3 fetcher[T3], q4 fetcher[T4], q5 fetcher[T5], q6 fetcher[T6], q7 fetcher[T7]) Tuple7[T1, T2, T3, T4, T5, T6, T7] {
	return Tuple7[T1, T2, T3, T4, T5, T6, T7]{q1, q2, q3, q4, q5, q6, q7}
}

// Each resolves 7's combined guid list and yields (Entity, Pair7) for
// each match, holding every child's storage lock for the walk's lifetime.
func (t Tuple7[T1, T2, T3, T4, T5, T6, T7]) Each(w *World) func(yield func(Entity, query.Pair7[T1, T2, T3, T4, T5, T6, T7]) bool) {
	return func(yield func(Entity, query.Pair7[T1, T2, T3, T4, T5, T6, T7]) bool) {
		m := combineAll(t.q1.queryMask(w), t.q2.queryMask(w), t.q3.queryMask(w), t.q4.queryMask(w), t.q5.queryMask(w), t.q6.queryMask(w), t.q7.queryMask(w))
		var ordered []orderedFetcher
	if of, ok := any(t.q1).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q2).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q3).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q4).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q5).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q6).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q7).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
		ids := resolveIDs(w, m, ordered)

	u1 := t.q1.lock(w)
	u2 := t.q2.lock(w)
	u3 := t.q3.lock(w)
	u4 := t.q4.lock(w)
	u5 := t.q5.lock(w)
	u6 := t.q6.lock(w)
	u7 := t.q7.lock(w)
		defer func() {
		u7()
		u6()
		u5()
		u4()
		u3()
		u2()
		u1()
		}()

		for _, g := range ids {
			v := query.Pair7[T1, T2, T3, T4, T5, T6, T7]{V1: t.q1.get(w, g), V2: t.q2.get(w, g), V3: t.q3.get(w, g), V4: t.q4.get(w, g), V5: t.q5.get(w, g), V6: t.q6.get(w, g), V7: t.q7.get(w, g)}
			if !yield(Entity(g), v) {
				return
			}
		}
	}
}

// Tuple8 composes 8 fetchers into one query over the guid list their
// combined mask selects.
type Tuple8[T1, T2, T3, T4, T5, T6, T7, T8 any] struct {
	q1 fetcher[T1]
	q2 fetcher[T2]
	q3 fetcher[T3]
	q4 fetcher[T4]
	q5 fetcher[T5]
	q6 fetcher[T6]
	q7 fetcher[T7]
	q8 fetcher[T8]
}

// NewTuple8 composes the given fetchers. Each must come from a distinct
// component type; composing Write[T] with itself (or with another
// parallel system's Write[T]) is a caller error per spec.md §5.
func NewTuple8[T1, T2, T3, T4, T5, T6, T7, T8 any](q1 fetcher[T1], q2 fetcher[T2], q3 fetcher[T3], q4 fetcher[T4], q5 fetcher[T5], q6 fetcher[T6], q7 fetcher[T7], q8 fetcher[T8]) Tuple8[T1, T2, T3, T4, T5, T6, T7, T8] {
	return Tuple8[T1, T2, T3, T4, T5, T6, T7, T8]{q1, q2, q3, q4, q5, q6, q7, q8}
}

// Each resolves 8's combined guid list and yields (Entity, Pair8) for
// each match, holding every child's storage lock for the walk's lifetime.
func (t Tuple8[T1, T2, T3, T4, T5, T6, T7, T8]) Each(w *World) func(yield func(Entity, query.Pair8[T1, T2, T3, T4, T5, T6, T7, T8]) bool) {
	return func(yield func(Entity, query.Pair8[T1, T2, T3, T4, T5, T6, T7, T8]) bool) {
		m := combineAll(t.q1.queryMask(w), t.q2.queryMask(w), t.q3.queryMask(w), t.q4.queryMask(w), t.q5.queryMask(w), t.q6.queryMask(w), t.q7.queryMask(w), t.q8.queryMask(w))
		var ordered []orderedFetcher
	if of, ok := any(t.q1).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q2).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q3).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q4).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q5).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q6).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q7).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q8).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
		ids := resolveIDs(w, m, ordered)

	u1 := t.q1.lock(w)
	u2 := t.q2.lock(w)
	u3 := t.q3.lock(w)
	u4 := t.q4.lock(w)
	u5 := t.q5.lock(w)
	u6 := t.q6.lock(w)
	u7 := t.q7.lock(w)
	u8 := t.q8.lock(w)
		defer func() {
		u8()
		u7()
		u6()
		u5()
		u4()
		u3()
		u2()
		u1()
		}()

		for _, g := range ids {
			v := query.Pair8[T1, T2, T3, T4, T5, T6, T7, T8]{V1: t.q1.get(w, g), V2: t.q2.get(w, g), V3: t.q3.get(w, g), V4: t.q4.get(w, g), V5: t.q5.get(w, g), V6: t.q6.get(w, g), V7: t.q7.get(w, g), V8: t.q8.get(w, g)}
			if !yield(Entity(g), v) {
				return
			}
		}
	}
}

// Tuple9 composes 9 fetchers into one query over the guid list their
// combined mask selects.
type Tuple9[T1, T2, T3, T4, T5, T6, T7, T8, T9 any] struct {
	q1 fetcher[T1]
	q2 fetcher[T2]
	q3 fetcher[T3]
	q4 fetcher[T4]
	q5 fetcher[T5]
	q6 fetcher[T6]
	q7 fetcher[T7]
	q8 fetcher[T8]
	q9 fetcher[T9]
}

// NewTuple9 composes the given fetchers. Each must come from a distinct
// component type; composing Write[T] with itself (or with another
// parallel system's Write[T]) is a caller error per spec.md §5.
func NewTuple9[T1, T2, T3, T4, T5, T6, T7, T8, T9 any](q1 fetcher[T1], q2 fetcher[T2], q3 fetcher[T3], q4 fetcher[T4], q5 fetcher[T5], q6 fetcher[T6], q7 fetcher[T7], q8 fetcher[T8], q9 fetcher[T9]) Tuple9[T1, T2, T3, T4, T5, T6, T7, T8, T9] {
	return Tuple9[T1, T2, T3, T4, T5, T6, T7, T8, T9]{q1, q2, q3, q4, q5, q6, q7, q8, q9}
}

// Each resolves 9's combined guid list and yields (Entity, Pair9) for
// each match, holding every child's storage lock for the walk's lifetime.
func (t Tuple9[T1, T2, T3, T4, T5, T6, T7, T8, T9]) Each(w *World) func(yield func(Entity, query.Pair9[T1, T2, T3, T4, T5, T6, T7, T8, T9]) bool) {
	return func(yield func(Entity, query.Pair9[T1, T2, T3, T4, T5, T6, T7, T8, T9]) bool) {
		m := combineAll(t.q1.queryMask(w), t.q2.queryMask(w), t.q3.queryMask(w), t.q4.queryMask(w), t.q5.queryMask(w), t.q6.queryMask(w), t.q7.queryMask(w), t.q8.queryMask(w), t.q9.queryMask(w))
		var ordered []orderedFetcher
	if of, ok := any(t.q1).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q2).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q3).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q4).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q5).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q6).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q7).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q8).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q9).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
		ids := resolveIDs(w, m, ordered)

	u1 := t.q1.lock(w)
	u2 := t.q2.lock(w)
	u3 := t.q3.lock(w)
	u4 := t.q4.lock(w)
	u5 := t.q5.lock(w)
	u6 := t.q6.lock(w)
	u7 := t.q7.lock(w)
	u8 := t.q8.lock(w)
	u9 := t.q9.lock(w)
		defer func() {
		u9()
		u8()
		u7()
		u6()
		u5()
		u4()
		u3()
		u2()
		u1()
		}()

		for _, g := range ids {
			v := query.Pair9[T1, T2, T3, T4, T5, T6, T7, T8, T9]{V1: t.q1.get(w, g), V2: t.q2.get(w, g), V3: t.q3.get(w, g), V4: t.q4.get(w, g), V5: t.q5.get(w, g), V6: t.q6.get(w, g), V7: t.q7.get(w, g), V8: t.q8.get(w, g), V9: t.q9.get(w, g)}
			if !yield(Entity(g), v) {
				return
			}
		}
	}
}

// Tuple10 composes 10 fetchers into one query over the guid list their
// combined mask selects.
type Tuple10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10 any] struct {
	q1 fetcher[T1]
	q2 fetcher[T2]
	q3 fetcher[T3]
	q4 fetcher[T4]
	q5 fetcher[T5]
	q6 fetcher[T6]
	q7 fetcher[T7]
	q8 fetcher[T8]
	q9 fetcher[T9]
	q10 fetcher[T10]
}

// NewTuple10 composes the given fetchers. Each must come from a distinct
// component type; composing Write[T] with itself (or with another
// parallel system's Write[T]) is a caller error per spec.md §5.
func NewTuple10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10 any](q1 fetcher[T1], q2 fetcher[T2], q3 fetcher[T3], q4 fetcher[T4], q5 fetcher[T5], q6 fetcher[T6], q7 fetcher[T7], q8 fetcher[T8], q9 fetcher[T9], q10 fetcher[T10]) Tuple10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10] {
	return Tuple10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]{q1, q2, q3, q4, q5, q6, q7, q8, q9, q10}
}

// Each resolves 10's combined guid list and yields (Entity, Pair10) for
// each match, holding every child's storage lock for the walk's lifetime.
func (t Tuple10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]) Each(w *World) func(yield func(Entity, query.Pair10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]) bool) {
	return func(yield func(Entity, query.Pair10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]) bool) {
		m := combineAll(t.q1.queryMask(w), t.q2.queryMask(w), t.q3.queryMask(w), t.q4.queryMask(w), t.q5.queryMask(w), t.q6.queryMask(w), t.q7.queryMask(w), t.q8.queryMask(w), t.q9.queryMask(w), t.q10.queryMask(w))
		var ordered []orderedFetcher
	if of, ok := any(t.q1).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q2).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q3).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q4).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q5).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q6).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q7).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q8).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q9).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q10).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
		ids := resolveIDs(w, m, ordered)

	u1 := t.q1.lock(w)
	u2 := t.q2.lock(w)
	u3 := t.q3.lock(w)
	u4 := t.q4.lock(w)
	u5 := t.q5.lock(w)
	u6 := t.q6.lock(w)
	u7 := t.q7.lock(w)
	u8 := t.q8.lock(w)
	u9 := t.q9.lock(w)
	u10 := t.q10.lock(w)
		defer func() {
		u10()
		u9()
		u8()
		u7()
		u6()
		u5()
		u4()
		u3()
		u2()
		u1()
		}()

		for _, g := range ids {
			v := query.Pair10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]{V1: t.q1.get(w, g), V2: t.q2.get(w, g), V3: t.q3.get(w, g), V4: t.q4.get(w, g), V5: t.q5.get(w, g), V6: t.q6.get(w, g), V7: t.q7.get(w, g), V8: t.q8.get(w, g), V9: t.q9.get(w, g), V10: t.q10.get(w, g)}
			if !yield(Entity(g), v) {
				return
			}
		}
	}
}

// Tuple11 composes 11 fetchers into one query over the guid list their
// combined mask selects.
type Tuple11[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11 any] struct {
	q1 fetcher[T1]
	q2 fetcher[T2]
	q3 fetcher[T3]
	q4 fetcher[T4]
	q5 fetcher[T5]
	q6 fetcher[T6]
	q7 fetcher[T7]
	q8 fetcher[T8]
	q9 fetcher[T9]
	q10 fetcher[T10]
	q11 fetcher[T11]
}

// NewTuple11 composes the given fetchers. Each must come from a distinct
// component type; composing Write[T] with itself (or with another
// parallel system's Write[T]) is a caller error per spec.md §5.
func NewTuple11[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11 any](q1 fetcher[T1], q2 fetcher[T2], q3 fetcher[T3], q4 fetcher[T4], q5 fetcher[T5], q6 fetcher[T6], q7 fetcher[T7], q8 fetcher[T8], q9 fetcher[T9], q10 fetcher[T10], q11 fetcher[T11]) Tuple11[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11] {
	return Tuple11[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11]{q1, q2, q3, q4, q5, q6, q7, q8, q9, q10, q11}
}

// Each resolves 11's combined guid list and yields (Entity, Pair11) for
// each match, holding every child's storage lock for the walk's lifetime.
func (t Tuple11[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11]) Each(w *World) func(yield func(Entity, query.Pair11[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11]) bool) {
	return func(yield func(Entity, query.Pair11[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11]) bool) {
		m := combineAll(t.q1.queryMask(w), t.q2.queryMask(w), t.q3.queryMask(w), t.q4.queryMask(w), t.q5.queryMask(w), t.q6.queryMask(w), t.q7.queryMask(w), t.q8.queryMask(w), t.q9.queryMask(w), t.q10.queryMask(w), t.q11.queryMask(w))
		var ordered []orderedFetcher
	if of, ok := any(t.q1).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q2).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q3).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q4).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q5).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q6).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q7).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q8).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q9).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q10).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q11).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
		ids := resolveIDs(w, m, ordered)

	u1 := t.q1.lock(w)
	u2 := t.q2.lock(w)
	u3 := t.q3.lock(w)
	u4 := t.q4.lock(w)
	u5 := t.q5.lock(w)
	u6 := t.q6.lock(w)
	u7 := t.q7.lock(w)
	u8 := t.q8.lock(w)
	u9 := t.q9.lock(w)
	u10 := t.q10.lock(w)
	u11 := t.q11.lock(w)
		defer func() {
		u11()
		u10()
		u9()
		u8()
		u7()
		u6()
		u5()
		u4()
		u3()
		u2()
		u1()
		}()

		for _, g := range ids {
			v := query.Pair11[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11]{V1: t.q1.get(w, g), V2: t.q2.get(w, g), V3: t.q3.get(w, g), V4: t.q4.get(w, g), V5: t.q5.get(w, g), V6: t.q6.get(w, g), V7: t.q7.get(w, g), V8: t.q8.get(w, g), V9: t.q9.get(w, g), V10: t.q10.get(w, g), V11: t.q11.get(w, g)}
			if !yield(Entity(g), v) {
				return
			}
		}
	}
}

// Tuple12 composes 12 fetchers into one query over the guid list their
// combined mask selects.
type Tuple12[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12 any] struct {
	q1 fetcher[T1]
	q2 fetcher[T2]
	q3 fetcher[T3]
	q4 fetcher[T4]
	q5 fetcher[T5]
	q6 fetcher[T6]
	q7 fetcher[T7]
	q8 fetcher[T8]
	q9 fetcher[T9]
	q10 fetcher[T10]
	q11 fetcher[T11]
	q12 fetcher[T12]
}

// NewTuple12 composes the given fetchers. Each must come from a distinct
// component type; composing Write[T] with itself (or with another
// parallel system's Write[T]) is a caller error per spec.md §5.
func NewTuple12[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12 any](q1 fetcher[T1], q2 fetcher[T2], q3 fetcher[T3], q4 fetcher[T4], q5 fetcher[T5], q6 fetcher[T6], q7 fetcher[T7], q8 fetcher[T8], q9 fetcher[T9], q10 fetcher[T10], q11 fetcher[T11], q12 fetcher[T12]) Tuple12[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12] {
	return Tuple12[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12]{q1, q2, q3, q4, q5, q6, q7, q8, q9, q10, q11, q12}
}

// Each resolves 12's combined guid list and yields (Entity, Pair12) for
// each match, holding every child's storage lock for the walk's lifetime.
func (t Tuple12[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12]) Each(w *World) func(yield func(Entity, query.Pair12[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12]) bool) {
	return func(yield func(Entity, query.Pair12[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12]) bool) {
		m := combineAll(t.q1.queryMask(w), t.q2.queryMask(w), t.q3.queryMask(w), t.q4.queryMask(w), t.q5.queryMask(w), t.q6.queryMask(w), t.q7.queryMask(w), t.q8.queryMask(w), t.q9.queryMask(w), t.q10.queryMask(w), t.q11.queryMask(w), t.q12.queryMask(w))
		var ordered []orderedFetcher
	if of, ok := any(t.q1).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q2).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q3).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q4).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q5).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q6).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q7).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q8).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q9).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q10).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q11).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q12).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
		ids := resolveIDs(w, m, ordered)

	u1 := t.q1.lock(w)
	u2 := t.q2.lock(w)
	u3 := t.q3.lock(w)
	u4 := t.q4.lock(w)
	u5 := t.q5.lock(w)
	u6 := t.q6.lock(w)
	u7 := t.q7.lock(w)
	u8 := t.q8.lock(w)
	u9 := t.q9.lock(w)
	u10 := t.q10.lock(w)
	u11 := t.q11.lock(w)
	u12 := t.q12.lock(w)
		defer func() {
		u12()
		u11()
		u10()
		u9()
		u8()
		u7()
		u6()
		u5()
		u4()
		u3()
		u2()
		u1()
		}()

		for _, g := range ids {
			v := query.Pair12[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12]{V1: t.q1.get(w, g), V2: t.q2.get(w, g), V3: t.q3.get(w, g), V4: t.q4.get(w, g), V5: t.q5.get(w, g), V6: t.q6.get(w, g), V7: t.q7.get(w, g), V8: t.q8.get(w, g), V9: t.q9.get(w, g), V10: t.q10.get(w, g), V11: t.q11.get(w, g), V12: t.q12.get(w, g)}
			if !yield(Entity(g), v) {
				return
			}
		}
	}
}

// Tuple13 composes 13 fetchers into one query over the guid list their
// combined mask selects.
type Tuple13[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13 any] struct {
	q1 fetcher[T1]
	q2 fetcher[T2]
	q3 fetcher[T3]
	q4 fetcher[T4]
	q5 fetcher[T5]
	q6 fetcher[T6]
	q7 fetcher[T7]
	q8 fetcher[T8]
	q9 fetcher[T9]
	q10 fetcher[T10]
	q11 fetcher[T11]
	q12 fetcher[T12]
	q13 fetcher[T13]
}

// NewTuple13 composes the given fetchers. Each must come from a distinct
// component type; composing Write[T] with itself (or with another
// parallel system's Write[T]) is a caller error per spec.md §5.
func NewTuple13[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13 any](q1 fetcher[T1], q2 fetcher[T2], q3 fetcher[T3], q4 fetcher[T4], q5 fetcher[T5], q6 fetcher[T6], q7 fetcher[T7], q8 fetcher[T8], q9 fetcher[T9], q10 fetcher[T10], q11 fetcher[T11], q12 fetcher[T12], q13 fetcher[T13]) Tuple13[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13] {
	return Tuple13[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13]{q1, q2, q3, q4, q5, q6, q7, q8, q9, q10, q11, q12, q13}
}

// Each resolves 13's combined guid list and yields (Entity, Pair13) for
// each match, holding every child's storage lock for the walk's lifetime.
func (t Tuple13[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13]) Each(w *World) func(yield func(Entity, query.Pair13[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13]) bool) {
	return func(yield func(Entity, query.Pair13[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13]) bool) {
		m := combineAll(t.q1.queryMask(w), t.q2.queryMask(w), t.q3.queryMask(w), t.q4.queryMask(w), t.q5.queryMask(w), t.q6.queryMask(w), t.q7.queryMask(w), t.q8.queryMask(w), t.q9.queryMask(w), t.q10.queryMask(w), t.q11.queryMask(w), t.q12.queryMask(w), t.q13.queryMask(w))
		var ordered []orderedFetcher
	if of, ok := any(t.q1).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q2).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q3).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q4).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q5).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q6).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q7).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q8).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q9).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q10).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q11).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q12).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q13).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
		ids := resolveIDs(w, m, ordered)

	u1 := t.q1.lock(w)
	u2 := t.q2.lock(w)
	u3 := t.q3.lock(w)
	u4 := t.q4.lock(w)
	u5 := t.q5.lock(w)
	u6 := t.q6.lock(w)
	u7 := t.q7.lock(w)
	u8 := t.q8.lock(w)
	u9 := t.q9.lock(w)
	u10 := t.q10.lock(w)
	u11 := t.q11.lock(w)
	u12 := t.q12.lock(w)
	u13 := t.q13.lock(w)
		defer func() {
		u13()
		u12()
		u11()
		u10()
		u9()
		u8()
		u7()
		u6()
		u5()
		u4()
		u3()
		u2()
		u1()
		}()

		for _, g := range ids {
			v := query.Pair13[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13]{V1: t.q1.get(w, g), V2: t.q2.get(w, g), V3: t.q3.get(w, g), V4: t.q4.get(w, g), V5: t.q5.get(w, g), V6: t.q6.get(w, g), V7: t.q7.get(w, g), V8: t.q8.get(w, g), V9: t.q9.get(w, g), V10: t.q10.get(w, g), V11: t.q11.get(w, g), V12: t.q12.get(w, g), V13: t.q13.get(w, g)}
			if !yield(Entity(g), v) {
				return
			}
		}
	}
}

// Tuple14 composes 14 fetchers into one query over the guid list their
// combined mask selects.
type Tuple14[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14 any] struct {
	q1 fetcher[T1]
	q2 fetcher[T2]
	q3 fetcher[T3]
	q4 fetcher[T4]
	q5 fetcher[T5]
	q6 fetcher[T6]
	q7 fetcher[T7]
	q8 fetcher[T8]
	q9 fetcher[T9]
	q10 fetcher[T10]
	q11 fetcher[T11]
	q12 fetcher[T12]
	q13 fetcher[T13]
	q14 fetcher[T14]
}

// NewTuple14 composes the given fetchers. Each must come from a distinct
// component type; composing Write[T] with itself (or with another
// parallel system's Write[T]) is a caller error per spec.md §5.
func NewTuple14[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14 any](q1 fetcher[T1], q2 fetcher[T2], q3 fetcher[T3], q4 fetcher[T4], q5 fetcher[T5], q6 fetcher[T6], q7 fetcher[T7], q8 fetcher[T8], q9 fetcher[T9], q10 fetcher[T10], q11 fetcher[T11], q12 fetcher[T12], q13 fetcher[T13], q14 fetcher[T14]) Tuple14[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14] {
	return Tuple14[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14]{q1, q2, q3, q4, q5, q6, q7, q8, q9, q10, q11, q12, q13, q14}
}

// Each resolves 14's combined guid list and yields (Entity, Pair14) for
// each match, holding every child's storage lock for the walk's lifetime.
func (t Tuple14[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14]) Each(w *World) func(yield func(Entity, query.Pair14[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14]) bool) {
	return func(yield func(Entity, query.Pair14[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14]) bool) {
		m := combineAll(t.q1.queryMask(w), t.q2.queryMask(w), t.q3.queryMask(w), t.q4.queryMask(w), t.q5.queryMask(w), t.q6.queryMask(w), t.q7.queryMask(w), t.q8.queryMask(w), t.q9.queryMask(w), t.q10.queryMask(w), t.q11.queryMask(w), t.q12.queryMask(w), t.q13.queryMask(w), t.q14.queryMask(w))
		var ordered []orderedFetcher
	if of, ok := any(t.q1).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q2).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q3).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q4).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q5).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q6).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q7).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q8).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q9).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q10).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q11).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q12).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q13).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q14).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
		ids := resolveIDs(w, m, ordered)

	u1 := t.q1.lock(w)
	u2 := t.q2.lock(w)
	u3 := t.q3.lock(w)
	u4 := t.q4.lock(w)
	u5 := t.q5.lock(w)
	u6 := t.q6.lock(w)
	u7 := t.q7.lock(w)
	u8 := t.q8.lock(w)
	u9 := t.q9.lock(w)
	u10 := t.q10.lock(w)
	u11 := t.q11.lock(w)
	u12 := t.q12.lock(w)
	u13 := t.q13.lock(w)
	u14 := t.q14.lock(w)
		defer func() {
		u14()
		u13()
		u12()
		u11()
		u10()
		u9()
		u8()
		u7()
		u6()
		u5()
		u4()
		u3()
		u2()
		u1()
		}()

		for _, g := range ids {
			v := query.Pair14[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14]{V1: t.q1.get(w, g), V2: t.q2.get(w, g), V3: t.q3.get(w, g), V4: t.q4.get(w, g), V5: t.q5.get(w, g), V6: t.q6.get(w, g), V7: t.q7.get(w, g), V8: t.q8.get(w, g), V9: t.q9.get(w, g), V10: t.q10.get(w, g), V11: t.q11.get(w, g), V12: t.q12.get(w, g), V13: t.q13.get(w, g), V14: t.q14.get(w, g)}
			if !yield(Entity(g), v) {
				return
			}
		}
	}
}

// Tuple15 composes 15 fetchers into one query over the guid list their
// combined mask selects.
type Tuple15[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14, T15 any] struct {
	q1 fetcher[T1]
	q2 fetcher[T2]
	q3 fetcher[T3]
	q4 fetcher[T4]
	q5 fetcher[T5]
	q6 fetcher[T6]
	q7 fetcher[T7]
	q8 fetcher[T8]
	q9 fetcher[T9]
	q10 fetcher[T10]
	q11 fetcher[T11]
	q12 fetcher[T12]
	q13 fetcher[T13]
	q14 fetcher[T14]
	q15 fetcher[T15]
}

// NewTuple15 composes the given fetchers. Each must come from a distinct
// component type; composing Write[T] with itself (or with another
// parallel system's Write[T]) is a caller error per spec.md §5.
func NewTuple15[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14, T15 any](q1 fetcher[T1], q2 fetcher[T2], q3 fetcher[T3], q4 fetcher[T4], q5 fetcher[T5], q6 fetcher[T6], q7 fetcher[T7], q8 fetcher[T8], q9 fetcher[T9], q10 fetcher[T10], q11 fetcher[T11], q12 fetcher[T12], q13 fetcher[T13], q14 fetcher[T14], q15 fetcher[T15]) Tuple15[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14, T15] {
	return Tuple15[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14, T15]{q1, q2, q3, q4, q5, q6, q7, q8, q9, q10, q11, q12, q13, q14, q15}
}

// Each resolves 15's combined guid list and yields (Entity, Pair15) for
// each match, holding every child's storage lock for the walk's lifetime.
func (t Tuple15[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14, T15]) Each(w *World) func(yield func(Entity, query.Pair15[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14, T15]) bool) {
	return func(yield func(Entity, query.Pair15[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14, T15]) bool) {
		m := combineAll(t.q1.queryMask(w), t.q2.queryMask(w), t.q3.queryMask(w), t.q4.queryMask(w), t.q5.queryMask(w), t.q6.queryMask(w), t.q7.queryMask(w), t.q8.queryMask(w), t.q9.queryMask(w), t.q10.queryMask(w), t.q11.queryMask(w), t.q12.queryMask(w), t.q13.queryMask(w), t.q14.queryMask(w), t.q15.queryMask(w))
		var ordered []orderedFetcher
	if of, ok := any(t.q1).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q2).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q3).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q4).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q5).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q6).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q7).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q8).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q9).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q10).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q11).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q12).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q13).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q14).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q15).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
		ids := resolveIDs(w, m, ordered)

	u1 := t.q1.lock(w)
	u2 := t.q2.lock(w)
	u3 := t.q3.lock(w)
	u4 := t.q4.lock(w)
	u5 := t.q5.lock(w)
	u6 := t.q6.lock(w)
	u7 := t.q7.lock(w)
	u8 := t.q8.lock(w)
	u9 := t.q9.lock(w)
	u10 := t.q10.lock(w)
	u11 := t.q11.lock(w)
	u12 := t.q12.lock(w)
	u13 := t.q13.lock(w)
	u14 := t.q14.lock(w)
	u15 := t.q15.lock(w)
		defer func() {
		u15()
		u14()
		u13()
		u12()
		u11()
		u10()
		u9()
		u8()
		u7()
		u6()
		u5()
		u4()
		u3()
		u2()
		u1()
		}()

		for _, g := range ids {
			v := query.Pair15[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14, T15]{V1: t.q1.get(w, g), V2: t.q2.get(w, g), V3: t.q3.get(w, g), V4: t.q4.get(w, g), V5: t.q5.get(w, g), V6: t.q6.get(w, g), V7: t.q7.get(w, g), V8: t.q8.get(w, g), V9: t.q9.get(w, g), V10: t.q10.get(w, g), V11: t.q11.get(w, g), V12: t.q12.get(w, g), V13: t.q13.get(w, g), V14: t.q14.get(w, g), V15: t.q15.get(w, g)}
			if !yield(Entity(g), v) {
				return
			}
		}
	}
}

// Tuple16 composes 16 fetchers into one query over the guid list their
// combined mask selects.
type Tuple16[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14, T15, T16 any] struct {
	q1 fetcher[T1]
	q2 fetcher[T2]
	q3 fetcher[T3]
	q4 fetcher[T4]
	q5 fetcher[T5]
	q6 fetcher[T6]
	q7 fetcher[T7]
	q8 fetcher[T8]
	q9 fetcher[T9]
	q10 fetcher[T10]
	q11 fetcher[T11]
	q12 fetcher[T12]
	q13 fetcher[T13]
	q14 fetcher[T14]
	q15 fetcher[T15]
	q16 fetcher[T16]
}

// NewTuple16 composes the given fetchers. Each must come from a distinct
// component type; composing Write[T] with itself (or with another
// parallel system's Write[T]) is a caller error per spec.md §5.
func NewTuple16[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14, T15, T16 any](q1 fetcher[T1], q2 fetcher[T2], q3 fetcher[T3], q4 fetcher[T4], q5 fetcher[T5], q6 fetcher[T6], q7 fetcher[T7], q8 fetcher[T8], q9 fetcher[T9], q10 fetcher[T10], q11 fetcher[T11], q12 fetcher[T12], q13 fetcher[T13], q14 fetcher[T14], q15 fetcher[T15], q16 fetcher[T16]) Tuple16[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14, T15, T16] {
	return Tuple16[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14, T15, T16]{q1, q2, q3, q4, q5, q6, q7, q8, q9, q10, q11, q12, q13, q14, q15, q16}
}

// Each resolves 16's combined guid list and yields (Entity, Pair16) for
// each match, holding every child's storage lock for the walk's lifetime.
func (t Tuple16[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14, T15, T16]) Each(w *World) func(yield func(Entity, query.Pair16[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14, T15, T16]) bool) {
	return func(yield func(Entity, query.Pair16[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14, T15, T16]) bool) {
		m := combineAll(t.q1.queryMask(w), t.q2.queryMask(w), t.q3.queryMask(w), t.q4.queryMask(w), t.q5.queryMask(w), t.q6.queryMask(w), t.q7.queryMask(w), t.q8.queryMask(w), t.q9.queryMask(w), t.q10.queryMask(w), t.q11.queryMask(w), t.q12.queryMask(w), t.q13.queryMask(w), t.q14.queryMask(w), t.q15.queryMask(w), t.q16.queryMask(w))
		var ordered []orderedFetcher
	if of, ok := any(t.q1).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q2).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q3).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q4).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q5).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q6).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q7).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q8).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q9).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q10).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q11).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q12).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q13).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q14).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q15).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
	if of, ok := any(t.q16).(orderedFetcher); ok {
		ordered = append(ordered, of)
	}
		ids := resolveIDs(w, m, ordered)

	u1 := t.q1.lock(w)
	u2 := t.q2.lock(w)
	u3 := t.q3.lock(w)
	u4 := t.q4.lock(w)
	u5 := t.q5.lock(w)
	u6 := t.q6.lock(w)
	u7 := t.q7.lock(w)
	u8 := t.q8.lock(w)
	u9 := t.q9.lock(w)
	u10 := t.q10.lock(w)
	u11 := t.q11.lock(w)
	u12 := t.q12.lock(w)
	u13 := t.q13.lock(w)
	u14 := t.q14.lock(w)
	u15 := t.q15.lock(w)
	u16 := t.q16.lock(w)
		defer func() {
		u16()
		u15()
		u14()
		u13()
		u12()
		u11()
		u10()
		u9()
		u8()
		u7()
		u6()
		u5()
		u4()
		u3()
		u2()
		u1()
		}()

		for _, g := range ids {
			v := query.Pair16[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14, T15, T16]{V1: t.q1.get(w, g), V2: t.q2.get(w, g), V3: t.q3.get(w, g), V4: t.q4.get(w, g), V5: t.q5.get(w, g), V6: t.q6.get(w, g), V7: t.q7.get(w, g), V8: t.q8.get(w, g), V9: t.q9.get(w, g), V10: t.q10.get(w, g), V11: t.q11.get(w, g), V12: t.q12.get(w, g), V13: t.q13.get(w, g), V14: t.q14.get(w, g), V15: t.q15.get(w, g), V16: t.q16.get(w, g)}
			if !yield(Entity(g), v) {
				return
			}
		}
	}
}

