package backend

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/goplot/plotkit"
)

// modulePrefix is the naming convention for backend plugin files:
// backend_<name><suffix>.
const modulePrefix = "backend_"

// DefaultSuffixes are the file suffixes recognized as backend modules when
// an Inspector does not specify its own. Go backend plugins are shared
// objects built with -buildmode=plugin.
var DefaultSuffixes = []string{".so"}

// ErrNotBackendModule is returned by ExtractBackendName for filenames that
// do not follow the backend module naming convention.
var ErrNotBackendModule = errors.New("backend: filename is not a backend module")

// InspectionResult partitions the backends found in a plugin directory.
type InspectionResult struct {
	// Discovered lists every backend named by a module file, in directory
	// enumeration order. A discovered backend is packaged, not necessarily
	// usable.
	Discovered []string

	// Usable is the subset of Discovered whose activation succeeded.
	// Order follows Discovered.
	Usable []string
}

// Inspector discovers which rendering backend plugins are installed in a
// directory and probes which of them actually activate in the current
// environment.
//
// The zero value needs Dir set; Suffixes defaults to DefaultSuffixes and
// Activate defaults to Use.
type Inspector struct {
	// Dir is the backend plugin directory to inspect.
	Dir string

	// Suffixes are the module file suffixes to recognize. Backends may be
	// packaged differently per platform (".so", ".dll").
	Suffixes []string

	// Activate switches the active rendering backend, reporting an error
	// when the backend is not usable. When nil, Use is called, and Inspect
	// restores the previously active backend before returning.
	Activate func(name string) error
}

func (ins *Inspector) suffixes() []string {
	if len(ins.Suffixes) == 0 {
		return DefaultSuffixes
	}
	return ins.Suffixes
}

// discover lists the raw entries of the plugin directory, in enumeration
// order, with no filtering. The error carries the underlying fs error for
// errors.Is checks.
func (ins *Inspector) discover() ([]string, error) {
	entries, err := os.ReadDir(ins.Dir)
	if err != nil {
		return nil, fmt.Errorf("backend: read plugin dir: %w", err)
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	return names, nil
}

// IsBackendModule reports whether filename follows the backend module
// naming convention: the backend_ prefix and one of the given suffixes
// (DefaultSuffixes when none are given).
func IsBackendModule(filename string, suffixes ...string) bool {
	if len(suffixes) == 0 {
		suffixes = DefaultSuffixes
	}
	if !strings.HasPrefix(filename, modulePrefix) {
		return false
	}
	for _, suf := range suffixes {
		if len(filename) > len(modulePrefix)+len(suf)-1 && strings.HasSuffix(filename, suf) {
			return true
		}
	}
	return false
}

// ExtractBackendName derives the bare backend name from a module filename
// by stripping the suffix and then the backend_ prefix:
//
//	ExtractBackendName("backend_agg.so")  // "agg"
//
// Filenames that do not satisfy IsBackendModule fail with
// ErrNotBackendModule.
func ExtractBackendName(filename string, suffixes ...string) (string, error) {
	if len(suffixes) == 0 {
		suffixes = DefaultSuffixes
	}
	if !IsBackendModule(filename, suffixes...) {
		return "", fmt.Errorf("%w: %q", ErrNotBackendModule, filename)
	}
	for _, suf := range suffixes {
		if strings.HasSuffix(filename, suf) {
			return filename[len(modulePrefix) : len(filename)-len(suf)], nil
		}
	}
	// Unreachable: IsBackendModule guarantees a suffix match.
	return "", fmt.Errorf("%w: %q", ErrNotBackendModule, filename)
}

// ListSupported returns the names of all backends packaged in the plugin
// directory: directory entries filtered by IsBackendModule and mapped
// through ExtractBackendName, preserving enumeration order. Duplicate
// names (two module files reducing to the same bare name) appear twice.
//
// A packaged backend is not necessarily usable; see Inspect.
func (ins *Inspector) ListSupported() ([]string, error) {
	files, err := ins.discover()
	if err != nil {
		return nil, err
	}

	suffixes := ins.suffixes()
	names := make([]string, 0, len(files))
	for _, f := range files {
		if !IsBackendModule(f, suffixes...) {
			continue
		}
		name, err := ExtractBackendName(f, suffixes...)
		if err != nil {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

// probe attempts to activate a backend, collapsing any activation error to
// false. The error itself is deliberately discarded: the inspector's
// contract is usable-or-not, and callers needing the cause must activate
// the backend themselves.
func (ins *Inspector) probe(name string) bool {
	activate := ins.Activate
	if activate == nil {
		activate = Use
	}
	return activate(name) == nil
}

// Inspect discovers the packaged backends and probes each one in order.
// Usable is always a subset of Discovered. Probes run sequentially with no
// early exit and no timeout: a backend whose activation hangs (a GUI
// toolkit waiting on a display) blocks the inspection.
//
// A discovery failure surfaces the filesystem error and produces no
// result. Individual probe failures are silent — the failed backend is
// simply absent from Usable.
//
// When Activate is nil, probing switches the process-wide active backend;
// Inspect restores the previously active backend (or deactivates, when
// none was active) before returning.
func (ins *Inspector) Inspect() (InspectionResult, error) {
	discovered, err := ins.ListSupported()
	if err != nil {
		return InspectionResult{}, err
	}

	restore := ins.Activate == nil
	prev := ""
	if restore {
		prev = ActiveName()
	}

	usable := make([]string, 0, len(discovered))
	for _, name := range discovered {
		if ins.probe(name) {
			usable = append(usable, name)
		}
	}

	if restore {
		restoreActive(prev)
	}
	return InspectionResult{Discovered: discovered, Usable: usable}, nil
}

// restoreActive puts the active backend back to what it was before
// probing. Best-effort: a restore failure leaves the last probed backend
// active.
func restoreActive(prev string) {
	if prev == ActiveName() {
		return
	}
	if prev == "" {
		Deactivate()
		return
	}
	if err := Use(prev); err != nil {
		plotkit.Logger().Warn("could not restore active backend", "name", prev, "error", err)
	}
}
