package loom

// This file documents the exported-symbol convention a hot-reload system
// loader would look up via the standard library's plugin package; loom
// itself opens no plugins and ships no loader. Per spec.md §6, the core's
// job is only to define the system function signatures such a loader
// needs, not the loader itself — persistence, networking, and a scripting
// interface are all out of scope the same way.
//
// A reloadable system lives in its own package, built as a Go plugin
// (`go build -buildmode=plugin`) and exporting one symbol per system under
// the name the loader looks up:
//
//	// Exported symbol name: "System_<identifier>"
//	var System_movement loom.SystemFunc = func(ents *loom.Entities, res *loom.Resources) {
//		...
//	}
//
//	// Exported symbol name: "SystemThreadLocal_<identifier>"
//	var SystemThreadLocal_render loom.ThreadLocalSystemFunc = func(
//		ents *loom.Entities, res *loom.Resources, tl *loom.ResourcesThreadLocal,
//	) {
//		...
//	}
//
// A loader built against this convention would, for each plugin path,
// call plugin.Open, then p.Lookup("System_movement") (or the
// SystemThreadLocal_ prefix), type-assert the result to *SystemFunc or
// *ThreadLocalSystemFunc, and pass it to World.AddSystem /
// AddSystemThreadLocal. loom defines nothing beyond the two function
// types and this naming convention — building, signing, versioning and
// hot-swapping plugins is left entirely to the embedding application.
