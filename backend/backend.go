package backend

import (
	"errors"

	"github.com/goplot/plotkit"
)

// Backend name constants.
const (
	// Agg is the name of the CPU-based software raster backend.
	Agg = "agg"
	// GPU is the name of the GPU backend (gogpu/wgpu).
	GPU = "gpu"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not
	// registered.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNotInitialized is returned when operations are called before Init.
	ErrNotInitialized = errors.New("backend: not initialized")

	// ErrInvalidSize is returned for non-positive canvas dimensions.
	ErrInvalidSize = errors.New("backend: invalid canvas size")
)

// Backend is the interface rendering backends implement. It abstracts how
// figures get rasterized, allowing software, GPU, and plugin-provided
// implementations behind one registry.
//
// Backends must be registered via Register and are activated via Use.
type Backend interface {
	// Name returns the backend identifier (e.g., "agg", "gpu").
	Name() string

	// Init initializes the backend. Activation calls Init before the
	// backend becomes current; an Init error means the backend is not
	// usable in this environment.
	Init() error

	// Close releases backend resources.
	// The backend should not be used after Close is called.
	Close()

	// NewCanvas creates a canvas for rendering a figure of the given
	// pixel dimensions.
	NewCanvas(width, height int) (plotkit.Canvas, error)
}
