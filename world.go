package loom

import (
	"reflect"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/forgeweave/loom/bitset"
	"github.com/forgeweave/loom/query"
)

// World is the public surface of the runtime: component registry, entity
// table, resource bags and the system schedule. Mirrors the teacher's
// Storage as "the thing everything else hangs off of", generalized from
// one archetype table to one storage-per-component-type registry.
type World struct {
	cfg Config

	// debugID identifies this World instance in logs and panic messages —
	// useful once a process runs more than one World (e.g. a server test
	// harness spinning up several), the same way a request ID disambiguates
	// concurrent requests in a log stream.
	debugID string

	registry map[reflect.Type]*componentEntry
	nextBit  int

	tableMu  sync.RWMutex
	entities []entityRow
	nextGuid uint64

	maskCache    *query.IndexCache
	orderedCache *query.IndexCache

	resources   *Resources
	resourcesTL *ResourcesThreadLocal

	schedule []scheduleItem
	stats    *systemStats
}

// NewWorld constructs an empty World. Pass DefaultConfig() for
// zero-configuration defaults.
func NewWorld(cfg Config) *World {
	if cfg.Logger == nil {
		cfg = DefaultConfig()
	}
	return &World{
		cfg:          cfg,
		debugID:      uuid.NewString(),
		registry:     make(map[reflect.Type]*componentEntry),
		maskCache:    query.NewIndexCache(),
		orderedCache: query.NewIndexCache(),
		resources:    newResources(),
		resourcesTL:  newResourcesThreadLocal(),
	}
}

// DebugID returns the World's process-unique identifier, generated once at
// construction. It has no effect on behavior — it exists for log lines and
// panic messages so multiple Worlds in one process stay distinguishable.
func (w *World) DebugID() string { return w.debugID }

// entriesByBit returns every registered component entry sorted by mask bit,
// i.e. registration order — the order RemoveEntity must visit them in.
func (w *World) entriesByBit() []*componentEntry {
	out := make([]*componentEntry, 0, len(w.registry))
	for _, e := range w.registry {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].bit < out[j].bit })
	return out
}

// Len returns the number of rows in the entity table, including retired
// (removed) entities — it never shrinks.
func (w *World) Len() int {
	w.tableMu.RLock()
	defer w.tableMu.RUnlock()
	return len(w.entities)
}

// maskOf returns guid's current row mask.
func (w *World) maskOf(guid uint64) bitset.Mask {
	w.tableMu.RLock()
	defer w.tableMu.RUnlock()
	return w.entities[guid].mask
}

// Entities returns a handle systems use to run queries against w.
func (w *World) Entities() *Entities {
	return &Entities{world: w}
}

// Resources returns w's sendable resource bag.
func (w *World) Resources() *Resources { return w.resources }

// ResourcesThreadLocal returns w's thread-local resource bag.
func (w *World) ResourcesThreadLocal() *ResourcesThreadLocal { return w.resourcesTL }

// Entities is the handle passed to systems. Queries are run through the
// Each methods of the query types in query.go and query_tuple.go (Read[T],
// Tuple2[...], ...), which take the *World from Entities.World(); the
// per-entity direct accessors are package functions for the same reason,
// since Go methods cannot carry their own type parameters.
type Entities struct {
	world *World
}

// World exposes the underlying World for the direct-accessor package
// functions (ComponentFor, TreeNodeFor, ...) and for the query Each methods.
func (ents *Entities) World() *World { return ents.world }
