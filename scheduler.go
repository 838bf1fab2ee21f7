package loom

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// SystemFunc is a parallel-eligible system: it must only touch the World
// through the Entities/Resources handles it is given, never raw Go
// variables shared with other systems, so the scheduler's lack of a
// write-write race checker (spec.md §5) doesn't bite.
type SystemFunc func(ents *Entities, res *Resources)

// ThreadLocalSystemFunc additionally receives the thread-local resource
// bag; the scheduler guarantees these run one at a time on the calling
// goroutine, in insertion order.
type ThreadLocalSystemFunc func(ents *Entities, res *Resources, tl *ResourcesThreadLocal)

type scheduleKind int

const (
	kindParallel scheduleKind = iota
	kindThreadLocal
	kindBarrier
)

type scheduleItem struct {
	kind   scheduleKind
	label  string
	fn     SystemFunc
	tlFn   ThreadLocalSystemFunc
}

// AddSystem appends a parallel-eligible system to the schedule.
func (w *World) AddSystem(label string, fn SystemFunc) {
	w.schedule = append(w.schedule, scheduleItem{kind: kindParallel, label: label, fn: fn})
}

// AddSystemThreadLocal appends a thread-local system to the schedule.
func (w *World) AddSystemThreadLocal(label string, fn ThreadLocalSystemFunc) {
	w.schedule = append(w.schedule, scheduleItem{kind: kindThreadLocal, label: label, tlFn: fn})
}

// AddBarrier appends a synchronization point: every system before it must
// complete before any system after it begins.
func (w *World) AddBarrier() {
	w.schedule = append(w.schedule, scheduleItem{kind: kindBarrier})
}

// systemStats is the per-system wall-clock ring buffer kept when
// Config.Stats is enabled.
type systemStats struct {
	mu      sync.Mutex
	samples map[string][]time.Duration
	cap     int
}

func newSystemStats(cap int) *systemStats {
	return &systemStats{samples: make(map[string][]time.Duration), cap: cap}
}

func (s *systemStats) record(label string, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	buf := s.samples[label]
	if len(buf) >= s.cap {
		buf = buf[1:]
	}
	s.samples[label] = append(buf, d)
}

// Samples returns a copy of the recorded wall-clock durations for label.
func (w *World) Samples(label string) []time.Duration {
	if w.stats == nil {
		return nil
	}
	w.stats.mu.Lock()
	defer w.stats.mu.Unlock()
	return append([]time.Duration(nil), w.stats.samples[label]...)
}

// RunOnce walks the schedule once: consecutive parallel systems up to the
// next barrier or thread-local system run concurrently via an
// errgroup.Group (golang.org/x/sync, the same module the pack's
// zmux-server pulls in for its fork-join singleflight use); thread-local
// systems run sequentially on the calling goroutine in insertion order. A
// system panic is recovered per-goroutine, turned into an error so
// errgroup.Wait surfaces it cleanly, and then re-panicked here — matching
// spec.md §4.6's "system panic propagates; run_once rethrows" without
// leaving a parallel group's other goroutines to crash the process
// mid-flight.
func (w *World) RunOnce() {
	if w.cfg.Stats && w.stats == nil {
		w.stats = newSystemStats(w.cfg.StatsCapacity)
	}

	i := 0
	for i < len(w.schedule) {
		item := w.schedule[i]
		switch item.kind {
		case kindBarrier:
			w.cfg.Logger.Debug("barrier", zap.String("world", w.debugID))
			i++
		case kindThreadLocal:
			w.runOne(item)
			i++
		case kindParallel:
			j := i
			for j < len(w.schedule) && w.schedule[j].kind == kindParallel {
				j++
			}
			w.runParallelGroup(w.schedule[i:j])
			i = j
		}
	}
}

func (w *World) runOne(item scheduleItem) {
	start := time.Now()
	defer func() {
		if w.stats != nil {
			w.stats.record(item.label, time.Since(start))
		}
	}()
	ents := w.Entities()
	item.tlFn(ents, w.resources, w.resourcesTL)
}

func (w *World) runParallelGroup(items []scheduleItem) {
	var g errgroup.Group
	if w.cfg.Workers > 0 {
		g.SetLimit(w.cfg.Workers)
	}
	for _, item := range items {
		item := item
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("world %s: system %q panicked: %v", w.debugID, item.label, r)
				}
			}()
			start := time.Now()
			ents := w.Entities()
			item.fn(ents, w.resources)
			if w.stats != nil {
				w.stats.record(item.label, time.Since(start))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		panic(err)
	}
}
