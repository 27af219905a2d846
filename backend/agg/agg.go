// Package agg provides the CPU-based software raster backend.
// It is always usable: activation never depends on native libraries,
// displays, or GPU adapters.
//
// The backend registers itself on import:
//
//	import _ "github.com/goplot/plotkit/backend/agg"
package agg

import (
	"github.com/goplot/plotkit"
	"github.com/goplot/plotkit/backend"
)

// Backend is the software raster backend. It hands out plotkit's
// SoftwareCanvas for figure rendering.
type Backend struct {
	initialized bool
}

// init registers the agg backend on package import.
func init() {
	backend.Register(backend.Agg, func() backend.Backend {
		return &Backend{}
	})
}

// New creates a new software raster backend.
func New() *Backend {
	return &Backend{}
}

// Name returns the backend identifier.
func (b *Backend) Name() string {
	return backend.Agg
}

// Init initializes the backend. The software backend has no external
// dependencies, so initialization always succeeds.
func (b *Backend) Init() error {
	b.initialized = true
	return nil
}

// Close releases backend resources.
func (b *Backend) Close() {
	b.initialized = false
}

// NewCanvas creates a software canvas for rendering.
func (b *Backend) NewCanvas(width, height int) (plotkit.Canvas, error) {
	if !b.initialized {
		return nil, backend.ErrNotInitialized
	}
	if width <= 0 || height <= 0 {
		return nil, backend.ErrInvalidSize
	}
	return plotkit.NewSoftwareCanvas(width, height), nil
}
