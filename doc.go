/*
Package loom provides an Entity-Component-System (ECS) runtime for games
and simulations.

Loom offers a performant approach to managing game entities through
component-based design. Unlike an archetype-table ECS, each component
type owns its own pluggable storage strategy (dense vector, sparse
vector, sorted associative vector, hash map, or a tree for hierarchical
data) so the storage shape can be chosen per component rather than
forced into one row layout.

Core Concepts:

  - Entity: an opaque guid identifying a row in the world's entity table.
  - Component: a typed value held in one of the world's storage strategies.
  - World: the registry of component storages, the entity table, resource
    bags, and the system schedule.
  - Query: a composable predicate (Read, Write, Not, ReadOr, ...) over a
    component's presence/absence, joined into tuples for multi-component
    iteration.
  - System: a function run once per World.RunOnce call, either in
    parallel with other systems or thread-local to the calling goroutine.

Basic Usage:

	// Create a world and register component storages
	w := loom.NewWorld(loom.DefaultConfig())
	loom.Register[Position](w, loom.Dense)
	loom.Register[Velocity](w, loom.Dense)

	// Create entities
	b := w.CreateEntity()
	loom.BuilderAdd(b, Position{X: 10, Y: 20})
	loom.BuilderAdd(b, Velocity{X: 1, Y: 2})
	b.Build()

	// Query entities and process them
	tuple := loom.NewTuple2[*Position, *Velocity](loom.Write[Position]{}, loom.Read[Velocity]{})
	for _, pair := range tuple.Each(w) {
		pair.V1.X += pair.V2.X
		pair.V1.Y += pair.V2.Y
	}

Loom is a standalone ECS runtime; it makes no assumptions about
rendering, input, or any other engine layer above it.
*/
package loom
