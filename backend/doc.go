// Package backend provides a pluggable rendering backend abstraction for
// plotkit.
//
// # Backend Registration
//
// Backends are registered via init() functions and selected at runtime.
// The software backend registers itself on import:
//
//	import _ "github.com/goplot/plotkit/backend/agg"
//
// # Backend Selection
//
// Use selects the active backend by name; figures rendered through the plt
// package draw with whatever backend is active:
//
//	if err := backend.Use("agg"); err != nil {
//		log.Fatal(err)
//	}
//
// UseDefault walks the priority order (gpu first, then agg) and activates
// the first backend that initializes.
//
// # Inspection
//
// Backend plugins are packaged as shared objects named backend_<name>.so in
// a plugin directory. The Inspector discovers which plugins are installed
// and probes which of them actually activate in the current environment —
// a plugin can be present while its native dependency (a GPU driver, a
// display) is missing:
//
//	ins := backend.Inspector{Dir: dir}
//	res, err := ins.Inspect()
//	// res.Discovered: every backend named by a plugin file
//	// res.Usable:     the subset whose activation succeeded
//
// Probing works by activating each candidate in turn. Inspect restores the
// previously active backend before returning, so inspection does not
// redirect later rendering.
package backend
