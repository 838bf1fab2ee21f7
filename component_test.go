package loom_test

import (
	"testing"

	"github.com/forgeweave/loom"
)

type Health struct{ HP int }
type Tag struct{}
type Mana struct{ MP int }
type Armor struct{ AC int }

func TestRegisterDuplicatePanics(t *testing.T) {
	w := loom.NewWorld(loom.DefaultConfig())
	loom.Register[Health](w, loom.Dense)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic registering Health twice")
		}
	}()
	loom.Register[Health](w, loom.Dense)
}

func TestComponentForOnUnregisteredTypePanics(t *testing.T) {
	w := loom.NewWorld(loom.DefaultConfig())
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic reading an unregistered component")
		}
	}()
	loom.ComponentFor[Health](w, loom.Entity(0))
}

func TestAllFourStrategiesRegisterIndependently(t *testing.T) {
	w := loom.NewWorld(loom.DefaultConfig())
	loom.Register[Health](w, loom.Dense)
	loom.Register[Tag](w, loom.Sparse)
	loom.Register[Mana](w, loom.Assoc)
	loom.Register[Armor](w, loom.Hashed)

	b := w.CreateEntity()
	loom.BuilderAdd(b, Health{HP: 10})
	loom.BuilderAdd(b, Tag{})
	loom.BuilderAdd(b, Mana{MP: 5})
	loom.BuilderAdd(b, Armor{AC: 3})
	e := b.Build()

	if got := loom.ComponentFor[Health](w, e); got == nil || got.HP != 10 {
		t.Fatalf("ComponentFor[Health] = %v, want HP=10", got)
	}
	if got := loom.ComponentFor[Mana](w, e); got == nil || got.MP != 5 {
		t.Fatalf("ComponentFor[Mana] = %v, want MP=5", got)
	}
	if got := loom.ComponentFor[Armor](w, e); got == nil || got.AC != 3 {
		t.Fatalf("ComponentFor[Armor] = %v, want AC=3", got)
	}
}

func TestStorageStrategyMismatchPanics(t *testing.T) {
	w := loom.NewWorld(loom.DefaultConfig())
	loom.Register[Health](w, loom.Dense)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic requesting hierarchical storage on a flat component")
		}
	}()
	loom.TreeNodeFor[Health](w, loom.Entity(0))
}

func TestAddComponentToExistingComponentPanics(t *testing.T) {
	w := loom.NewWorld(loom.DefaultConfig())
	loom.Register[Health](w, loom.Dense)
	b := w.CreateEntity()
	loom.BuilderAdd(b, Health{HP: 1})
	e := b.Build()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic adding a component that is already present")
		}
	}()
	loom.AddComponentTo(w, e, Health{HP: 2})
}

func TestRemoveComponentFromMissingComponentPanics(t *testing.T) {
	w := loom.NewWorld(loom.DefaultConfig())
	loom.Register[Health](w, loom.Dense)
	b := w.CreateEntity()
	e := b.Build()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic removing an absent component")
		}
	}()
	loom.RemoveComponentFrom[Health](w, e)
}
