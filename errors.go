package loom

import "fmt"

// ComponentAlreadyRegisteredError is the panic value of
// Register/RegisterThreadLocal when called twice for the same component type.
type ComponentAlreadyRegisteredError struct {
	Component string
}

func (e ComponentAlreadyRegisteredError) Error() string {
	return fmt.Sprintf("component already registered: %s", e.Component)
}

// ComponentNotRegisteredError is the panic value when a component type is
// used before being registered on the world.
type ComponentNotRegisteredError struct {
	Component string
}

func (e ComponentNotRegisteredError) Error() string {
	return fmt.Sprintf("component not registered: %s", e.Component)
}

// ComponentExistsError mirrors the precondition on insert: the entity
// already carries this component.
type ComponentExistsError struct {
	Component string
	Guid      uint64
}

func (e ComponentExistsError) Error() string {
	return fmt.Sprintf("component %s already exists on entity %d", e.Component, e.Guid)
}

// ComponentNotFoundError mirrors the precondition on remove: the entity
// does not carry this component. (ComponentFor, ComponentForMut,
// TreeNodeFor and TreeNodeForMut return nil instead of panicking.)
type ComponentNotFoundError struct {
	Component string
	Guid      uint64
}

func (e ComponentNotFoundError) Error() string {
	return fmt.Sprintf("component %s does not exist on entity %d", e.Component, e.Guid)
}

// StorageStrategyMismatchError is the panic value when a query requiring a
// hierarchical (or one-to-N) storage is composed over a component that was
// registered with an incompatible strategy.
type StorageStrategyMismatchError struct {
	Component string
	Want      string
}

func (e StorageStrategyMismatchError) Error() string {
	return fmt.Sprintf("component %s is not stored as %s", e.Component, e.Want)
}

// EntityRetiredError describes an operation on a guid that has already gone
// through RemoveEntity. No loom function currently returns or panics with
// it: operations on retired guids are not checked.
type EntityRetiredError struct {
	Guid uint64
}

func (e EntityRetiredError) Error() string {
	return fmt.Sprintf("entity %d has been removed", e.Guid)
}
