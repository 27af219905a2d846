package backend

import (
	"fmt"
	"sync"

	"github.com/goplot/plotkit"
)

// The active backend is process-wide state: whichever backend was most
// recently activated renders all subsequent figures. Guarded by a single
// mutex; activation is rare and never on a drawing hot path.
var (
	activeMu   sync.RWMutex
	active     Backend
	activeName string
)

// Use activates the named backend: the instance is created from the
// registry, initialized, and becomes the current rendering backend. The
// previously active backend, if any, is closed.
//
// Use fails with ErrBackendNotAvailable for unregistered names, and with
// the backend's own error when Init fails (e.g. no GPU adapter). On
// failure the previously active backend stays active.
func Use(name string) error {
	b := Get(name)
	if b == nil {
		return fmt.Errorf("%w: %q", ErrBackendNotAvailable, name)
	}
	if err := b.Init(); err != nil {
		return fmt.Errorf("backend %q: %w", name, err)
	}

	activeMu.Lock()
	prev := active
	active = b
	activeName = name
	activeMu.Unlock()

	if prev != nil {
		prev.Close()
	}
	plotkit.Logger().Info("backend activated", "name", name)
	return nil
}

// UseDefault activates the first backend in priority order whose Init
// succeeds. It fails with ErrBackendNotAvailable only when no registered
// backend activates.
func UseDefault() error {
	for _, name := range defaultOrder() {
		err := Use(name)
		if err == nil {
			return nil
		}
		plotkit.Logger().Warn("backend not usable", "name", name, "error", err)
	}
	return fmt.Errorf("%w: no registered backend activates", ErrBackendNotAvailable)
}

// Active returns the currently active backend, or nil when none is active.
func Active() Backend {
	activeMu.RLock()
	defer activeMu.RUnlock()
	return active
}

// ActiveName returns the name of the currently active backend, or "" when
// none is active.
func ActiveName() string {
	activeMu.RLock()
	defer activeMu.RUnlock()
	return activeName
}

// Deactivate closes the active backend and leaves no backend active.
func Deactivate() {
	activeMu.Lock()
	prev := active
	active = nil
	activeName = ""
	activeMu.Unlock()

	if prev != nil {
		prev.Close()
	}
}
