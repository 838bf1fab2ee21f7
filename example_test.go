package loom_test

import (
	"fmt"

	"github.com/forgeweave/loom"
)

// ExamplePosition is a simple component for 2D coordinates.
type ExamplePosition struct {
	X float64
	Y float64
}

// ExampleVelocity is a simple component for 2D movement.
type ExampleVelocity struct {
	X float64
	Y float64
}

// ExampleName is a simple component for entity identification.
type ExampleName struct {
	Value string
}

// Example_basic shows basic loom usage with entity creation and queries.
func Example_basic() {
	w := loom.NewWorld(loom.DefaultConfig())
	loom.Register[ExamplePosition](w, loom.Dense)
	loom.Register[ExampleVelocity](w, loom.Dense)
	loom.Register[ExampleName](w, loom.Dense)

	for i := 0; i < 5; i++ {
		b := w.CreateEntity()
		loom.BuilderAdd(b, ExamplePosition{})
		b.Build()
	}
	for i := 0; i < 3; i++ {
		b := w.CreateEntity()
		loom.BuilderAdd(b, ExamplePosition{})
		loom.BuilderAdd(b, ExampleVelocity{X: 1, Y: 1})
		b.Build()
	}

	// One named entity.
	b := w.CreateEntity()
	loom.BuilderAdd(b, ExamplePosition{X: 10, Y: 20})
	loom.BuilderAdd(b, ExampleVelocity{X: 1, Y: 2})
	loom.BuilderAdd(b, ExampleName{Value: "Player"})
	b.Build()

	// Query for all entities with position and velocity.
	matchCount := 0
	for range loom.NewTuple2[*ExamplePosition, *ExampleVelocity](loom.Read[ExamplePosition]{}, loom.Read[ExampleVelocity]{}).Each(w) {
		matchCount++
	}
	fmt.Printf("Found %d entities with position and velocity\n", matchCount)

	// Update the named entity's position from its velocity.
	tuple := loom.NewTuple3[*ExamplePosition, *ExampleVelocity, *ExampleName](
		loom.Write[ExamplePosition]{}, loom.Read[ExampleVelocity]{}, loom.Read[ExampleName]{},
	)
	for _, trio := range tuple.Each(w) {
		trio.V1.X += trio.V2.X
		trio.V1.Y += trio.V2.Y
		fmt.Printf("Updated %s to position (%.1f, %.1f)\n", trio.V3.Value, trio.V1.X, trio.V1.Y)
	}

	// Output:
	// Found 4 entities with position and velocity
	// Updated Player to position (11.0, 22.0)
}

// Example_queries shows how to use the AND (tuple), OR and NOT query forms.
func Example_queries() {
	w := loom.NewWorld(loom.DefaultConfig())
	loom.Register[ExamplePosition](w, loom.Dense)
	loom.Register[ExampleVelocity](w, loom.Dense)
	loom.Register[ExampleName](w, loom.Dense)

	newGroup := func(withVelocity, withName bool) {
		for i := 0; i < 3; i++ {
			b := w.CreateEntity()
			loom.BuilderAdd(b, ExamplePosition{})
			if withVelocity {
				loom.BuilderAdd(b, ExampleVelocity{})
			}
			if withName {
				loom.BuilderAdd(b, ExampleName{})
			}
			b.Build()
		}
	}
	newGroup(false, false)
	newGroup(true, false)
	newGroup(false, true)
	newGroup(true, true)

	// AND query: entities with position AND velocity.
	andCount := 0
	for range loom.NewTuple2[*ExamplePosition, *ExampleVelocity](loom.Read[ExamplePosition]{}, loom.Read[ExampleVelocity]{}).Each(w) {
		andCount++
	}
	fmt.Printf("AND query matched %d entities\n", andCount)

	// OR query: entities with velocity OR name.
	orCount := 0
	orTuple := loom.NewTuple2[loom.OrPair2[ExampleVelocity, ExampleName], loom.Entity](
		loom.ReadOr2[ExampleVelocity, ExampleName]{}, loom.ReadEntities{},
	)
	for range orTuple.Each(w) {
		orCount++
	}
	fmt.Printf("OR query matched %d entities\n", orCount)

	// NOT query: entities with position but NOT velocity.
	notCount := 0
	notTuple := loom.NewTuple2[*ExamplePosition, struct{}](loom.Read[ExamplePosition]{}, loom.Not[ExampleVelocity]{})
	for range notTuple.Each(w) {
		notCount++
	}
	fmt.Printf("NOT query matched %d entities\n", notCount)

	// Output:
	// AND query matched 6 entities
	// OR query matched 9 entities
	// NOT query matched 6 entities
}
