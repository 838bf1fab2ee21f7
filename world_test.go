package loom_test

import (
	"reflect"
	"testing"

	"github.com/forgeweave/loom"
)

type Pos struct{ X, Y float64 }
type Vel struct{ X, Y float64 }
type GlobalPos struct{ X, Y float64 }
type MarkerC1 struct{}
type MarkerC2 struct{}

// S1 — Read after three inserts.
func TestScenarioReadAfterThreeInserts(t *testing.T) {
	w := loom.NewWorld(loom.DefaultConfig())
	loom.Register[Pos](w, loom.Dense)

	for i := 1.0; i <= 3; i++ {
		w.CreateEntity()
		b := w.CreateEntity()
		loom.BuilderAdd(b, Pos{X: i, Y: i})
		b.Build()
	}

	var got []Pos
	for _, p := range (loom.Read[Pos]{}).Each(w) {
		got = append(got, *p)
	}
	want := []Pos{{1, 1}, {2, 2}, {3, 3}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Read[Pos] = %v, want %v", got, want)
	}
}

// S2 — Write then Read.
func TestScenarioWriteThenRead(t *testing.T) {
	w := loom.NewWorld(loom.DefaultConfig())
	loom.Register[Pos](w, loom.Dense)
	loom.Register[Vel](w, loom.Dense)

	for i := 1.0; i <= 3; i++ {
		b := w.CreateEntity()
		loom.BuilderAdd(b, Pos{X: i, Y: i})
		loom.BuilderAdd(b, Vel{X: 1, Y: 1})
		b.Build()
	}

	tuple := loom.NewTuple2[*Pos, *Vel](loom.Write[Pos]{}, loom.Read[Vel]{})
	for _, pair := range tuple.Each(w) {
		pair.V1.X += pair.V2.X
		pair.V1.Y += pair.V2.Y
	}

	var got []Pos
	for _, p := range (loom.Read[Pos]{}).Each(w) {
		got = append(got, *p)
	}
	want := []Pos{{2, 2}, {3, 3}, {4, 4}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Read[Pos] after write = %v, want %v", got, want)
	}
}

// S3 — Hierarchical global pos.
func TestScenarioHierarchicalGlobalPos(t *testing.T) {
	w := loom.NewWorld(loom.DefaultConfig())
	loom.RegisterHierarchical[GlobalPos](w)

	b1 := w.CreateEntity()
	loom.BuilderAdd(b1, GlobalPos{1, 1})
	e1 := b1.Build()

	b2 := w.CreateEntity()
	loom.BuilderAdd(b2, GlobalPos{2, 2})
	e2 := b2.Build()

	b3 := w.CreateEntity()
	loom.BuilderAddChild(b3, e1, GlobalPos{3, 3})
	e3 := b3.Build()

	b4 := w.CreateEntity()
	loom.BuilderAddChild(b4, e2, GlobalPos{4, 4})
	b4.Build()

	b5 := w.CreateEntity()
	loom.BuilderAddChild(b5, e3, GlobalPos{5, 5})
	b5.Build()

	for _, pair := range (loom.WriteAndParent[GlobalPos]{}).Each(w) {
		if pair.Parent != nil {
			pair.Value.X += pair.Parent.X
			pair.Value.Y += pair.Parent.Y
		}
	}

	var got []GlobalPos
	for _, p := range (loom.ReadHierarchical[GlobalPos]{}).Each(w) {
		got = append(got, *p)
	}
	want := []GlobalPos{{1, 1}, {4, 4}, {9, 9}, {2, 2}, {6, 6}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ordered GlobalPos = %v, want %v", got, want)
	}
}

// S4 — remove_component_from and remove_entity.
func TestScenarioRemoveComponentAndEntity(t *testing.T) {
	w := loom.NewWorld(loom.DefaultConfig())
	loom.Register[Pos](w, loom.Dense)
	loom.Register[Vel](w, loom.Dense)

	var entities []loom.Entity
	for i := 1.0; i <= 3; i++ {
		b := w.CreateEntity()
		loom.BuilderAdd(b, Pos{X: i, Y: i})
		loom.BuilderAdd(b, Vel{X: i, Y: i})
		entities = append(entities, b.Build())
	}

	loom.RemoveComponentFrom[Vel](w, entities[1])

	count := 0
	for range loom.NewTuple2[*Pos, *Vel](loom.Read[Pos]{}, loom.Read[Vel]{}).Each(w) {
		count++
	}
	if count != 2 {
		t.Fatalf("(Read<Pos>,Read<Vel>) count = %d, want 2", count)
	}

	count = 0
	for range (loom.Read[Pos]{}).Each(w) {
		count++
	}
	if count != 3 {
		t.Fatalf("Read<Pos> count = %d, want 3", count)
	}

	w.RemoveEntity(entities[1])

	count = 0
	for range (loom.Read[Pos]{}).Each(w) {
		count++
	}
	if count != 2 {
		t.Fatalf("Read<Pos> count after RemoveEntity = %d, want 2", count)
	}
}

// S5 — One-to-N slice.
func TestScenarioOneToNSlice(t *testing.T) {
	w := loom.NewWorld(loom.DefaultConfig())
	loom.RegisterOneToN[Pos](w)

	lengths := []int{1, 2, 3}
	var entities []loom.Entity
	for _, l := range lengths {
		slice := make([]Pos, l)
		for i := range slice {
			slice[i] = Pos{X: float64(l), Y: float64(l)}
		}
		b := w.CreateEntity()
		loom.BuilderAddSlice(b, slice)
		entities = append(entities, b.Build())
	}

	for i, e := range entities {
		l := lengths[i]
		slice := loom.OneToNSliceFor[Pos](w, e)
		if len(slice) != l {
			t.Fatalf("entity %d: slice length = %d, want %d", i, len(slice), l)
		}
		for j := range slice {
			slice[j].X++
			slice[j].Y++
		}
	}

	for i, e := range entities {
		l := lengths[i]
		slice := loom.OneToNSliceFor[Pos](w, e)
		if len(slice) != l {
			t.Fatalf("entity %d: slice length after mutation = %d, want %d", i, len(slice), l)
		}
		want := Pos{X: float64(l + 1), Y: float64(l + 1)}
		if slice[0] != want {
			t.Fatalf("entity %d: slice[0] = %v, want %v", i, slice[0], want)
		}
	}
}

// S6 — Parallel writers on disjoint filters.
func TestScenarioParallelWritersOnDisjointFilters(t *testing.T) {
	w := loom.NewWorld(loom.DefaultConfig())
	loom.Register[Pos](w, loom.Dense)
	loom.Register[MarkerC1](w, loom.Dense)
	loom.Register[MarkerC2](w, loom.Dense)

	const n = 50
	var entities []loom.Entity
	for i := 0; i < n; i++ {
		b := w.CreateEntity()
		loom.BuilderAdd(b, Pos{})
		if i%2 == 0 {
			loom.BuilderAdd(b, MarkerC1{})
		} else {
			loom.BuilderAdd(b, MarkerC2{})
		}
		entities = append(entities, b.Build())
	}

	w.AddSystem("inc-c1", func(ents *loom.Entities, res *loom.Resources) {
		for _, pair := range loom.NewTuple2[*Pos, struct{}](loom.Write[Pos]{}, loom.Not[MarkerC2]{}).Each(ents.World()) {
			pair.V1.X++
		}
	})
	w.AddSystem("inc-c2", func(ents *loom.Entities, res *loom.Resources) {
		for _, pair := range loom.NewTuple2[*Pos, struct{}](loom.Write[Pos]{}, loom.Not[MarkerC1]{}).Each(ents.World()) {
			pair.V1.X++
		}
	})

	w.RunOnce()

	for _, e := range entities {
		p := loom.ComponentFor[Pos](w, e)
		if p.X != 1 {
			t.Fatalf("entity %d: Pos.X = %v, want 1", e, p.X)
		}
	}
}
