package gpu

import "errors"

// Package errors for the GPU backend.
var (
	// ErrNoGPU is returned when no GPU adapter is available.
	ErrNoGPU = errors.New("gpu: no GPU adapter available")

	// ErrNotInitialized is returned when operations are called before Init.
	ErrNotInitialized = errors.New("gpu: backend not initialized")
)
