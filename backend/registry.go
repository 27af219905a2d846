package backend

import (
	"sync"
)

// Factory creates a new backend instance.
type Factory func() Backend

// registry holds registered backends.
var (
	registryMu sync.RWMutex
	backends   = make(map[string]Factory)
	// Priority order for default selection (first usable wins).
	// GPU > agg: the GPU backend is fastest when it activates, agg is the
	// always-available fallback.
	priority = []string{GPU, Agg}
)

// Register registers a backend factory with the given name.
// This is typically called from init() functions in backend packages.
// If a backend with the same name is already registered, it is replaced.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends[name] = factory
}

// Unregister removes a backend from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// Registered returns the names of all registered backends, in no
// particular order.
func Registered() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	return names
}

// IsRegistered checks if a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}

// Get returns a new backend instance by name.
// Returns nil if the backend is not registered.
func Get(name string) Backend {
	registryMu.RLock()
	defer registryMu.RUnlock()

	factory, ok := backends[name]
	if !ok {
		return nil
	}
	return factory()
}

// defaultOrder returns the priority names followed by any other registered
// backends.
func defaultOrder() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	order := make([]string, 0, len(backends))
	seen := make(map[string]bool, len(backends))
	for _, name := range priority {
		if _, ok := backends[name]; ok {
			order = append(order, name)
			seen[name] = true
		}
	}
	for name := range backends {
		if !seen[name] {
			order = append(order, name)
		}
	}
	return order
}
