package loom_test

import "testing"

import "github.com/forgeweave/loom"

type Clock struct{ Tick int }

func TestResourceAddOfRemoveRoundTrip(t *testing.T) {
	w := loom.NewWorld(loom.DefaultConfig())
	res := w.Resources()

	if _, ok := loom.ResourceOf[Clock](res); ok {
		t.Fatal("expected no Clock resource before Add")
	}

	loom.AddResource(res, Clock{Tick: 1})
	got, ok := loom.ResourceOf[Clock](res)
	if !ok || got.Tick != 1 {
		t.Fatalf("ResourceOf[Clock] = %v, %v; want {1}, true", got, ok)
	}

	loom.RemoveResource[Clock](res)
	if _, ok := loom.ResourceOf[Clock](res); ok {
		t.Fatal("expected no Clock resource after Remove")
	}
}

func TestResourceAddOverwritesExisting(t *testing.T) {
	w := loom.NewWorld(loom.DefaultConfig())
	res := w.Resources()

	loom.AddResource(res, Clock{Tick: 1})
	loom.AddResource(res, Clock{Tick: 2})

	got, ok := loom.ResourceOf[Clock](res)
	if !ok || got.Tick != 2 {
		t.Fatalf("ResourceOf[Clock] = %v, %v; want {2}, true", got, ok)
	}
}

func TestResourceThreadLocalRoundTrip(t *testing.T) {
	w := loom.NewWorld(loom.DefaultConfig())
	tl := w.ResourcesThreadLocal()

	loom.AddResourceThreadLocal(tl, Clock{Tick: 5})
	got, ok := loom.ResourceOfThreadLocal[Clock](tl)
	if !ok || got.Tick != 5 {
		t.Fatalf("ResourceOfThreadLocal[Clock] = %v, %v; want {5}, true", got, ok)
	}

	loom.RemoveResourceThreadLocal[Clock](tl)
	if _, ok := loom.ResourceOfThreadLocal[Clock](tl); ok {
		t.Fatal("expected no Clock resource after RemoveThreadLocal")
	}
}
