package backend

import (
	"fmt"
	"plugin"
)

// OpenPlugin loads a compiled backend plugin (a shared object built with
// -buildmode=plugin) so its init() can register the backend it provides.
// Loading is one-way: Go plugins cannot be unloaded.
//
// Loading only makes the backend known to the registry; whether it
// activates is a separate question answered by Use or Inspector.Inspect.
func OpenPlugin(path string) error {
	if _, err := plugin.Open(path); err != nil {
		return fmt.Errorf("backend: open plugin %s: %w", path, err)
	}
	return nil
}
