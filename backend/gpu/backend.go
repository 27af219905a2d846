// Package gpu provides a GPU rendering backend over gogpu/wgpu.
//
// Activation acquires real GPU resources (instance, adapter, device,
// queue), so Init fails on machines without a usable adapter — which is
// exactly what backend.Inspector probes for. Rasterization itself still
// runs on the software canvas; the GPU pipeline takes over once wgpu
// texture readback lands.
//
// The backend registers itself on import:
//
//	import _ "github.com/goplot/plotkit/backend/gpu"
package gpu

import (
	"fmt"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/core"

	"github.com/goplot/plotkit"
	"github.com/goplot/plotkit/backend"
)

// Backend is a GPU rendering backend using gogpu/wgpu.
//
// The backend manages GPU resources including instance, adapter, device,
// and queue. It is safe for concurrent use.
type Backend struct {
	mu sync.RWMutex

	// GPU resources
	instance *core.Instance
	adapter  core.AdapterID
	device   core.DeviceID
	queue    core.QueueID

	initialized bool
}

// init registers the GPU backend on package import.
func init() {
	backend.Register(backend.GPU, func() backend.Backend {
		return &Backend{}
	})
}

// New creates a new GPU rendering backend.
// The backend must be initialized with Init() before use.
func New() *Backend {
	return &Backend{}
}

// Name returns the backend identifier.
func (b *Backend) Name() string {
	return backend.GPU
}

// Init initializes the backend by creating GPU resources: an instance,
// a high-performance adapter, a device, and the command queue.
//
// Returns an error if GPU initialization fails at any step.
func (b *Backend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}

	log := plotkit.Logger()

	// Step 1: Create Instance
	b.instance = core.NewInstance(&gputypes.InstanceDescriptor{
		Backends: gputypes.BackendsPrimary,
	})

	// Step 2: Request Adapter (prefer high performance GPU)
	adapterID, err := b.instance.RequestAdapter(&gputypes.RequestAdapterOptions{
		PowerPreference: gputypes.PowerPreferenceHighPerformance,
	})
	if err != nil {
		b.instance = nil
		return fmt.Errorf("%w: %w", ErrNoGPU, err)
	}
	b.adapter = adapterID

	if info, err := core.GetAdapterInfo(adapterID); err == nil {
		log.Info("gpu adapter selected", "name", info.Name, "backend", info.Backend)
	}

	// Step 3: Create Device
	deviceID, err := core.RequestDevice(adapterID, &gputypes.DeviceDescriptor{
		Label:            "plotkit-gpu-device",
		RequiredLimits:   gputypes.DefaultLimits(),
		RequiredFeatures: nil,
	})
	if err != nil {
		b.releaseLocked()
		return fmt.Errorf("device creation failed: %w", err)
	}
	b.device = deviceID

	// Step 4: Get Queue
	queueID, err := core.GetDeviceQueue(deviceID)
	if err != nil {
		b.releaseLocked()
		return fmt.Errorf("queue retrieval failed: %w", err)
	}
	b.queue = queueID

	b.initialized = true
	log.Info("gpu backend initialized")
	return nil
}

// Close releases all backend resources.
// The backend should not be used after Close is called.
func (b *Backend) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized && b.instance == nil {
		return
	}
	b.releaseLocked()
	b.initialized = false
}

// releaseLocked drops GPU resources in reverse order of creation.
// Callers must hold b.mu.
func (b *Backend) releaseLocked() {
	log := plotkit.Logger()

	if !b.device.IsZero() {
		if err := core.DeviceDrop(b.device); err != nil {
			log.Warn("error releasing device", "error", err)
		}
		b.device = core.DeviceID{}
	}
	if !b.adapter.IsZero() {
		if err := core.AdapterDrop(b.adapter); err != nil {
			log.Warn("error releasing adapter", "error", err)
		}
		b.adapter = core.AdapterID{}
	}

	// Instance needs no explicit cleanup in the current implementation.
	b.instance = nil
	b.queue = core.QueueID{}
}

// NewCanvas creates a canvas for rendering.
//
// Rasterization currently delegates to the software canvas.
// TODO: render through a GPU texture once wgpu implements texture readback.
func (b *Backend) NewCanvas(width, height int) (plotkit.Canvas, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.initialized {
		return nil, ErrNotInitialized
	}
	if width <= 0 || height <= 0 {
		return nil, backend.ErrInvalidSize
	}
	return plotkit.NewSoftwareCanvas(width, height), nil
}

// IsInitialized returns true if the backend has been initialized.
func (b *Backend) IsInitialized() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.initialized
}

// Device returns the GPU device ID.
// Returns a zero ID if the backend is not initialized.
func (b *Backend) Device() core.DeviceID {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.device
}

// Queue returns the GPU queue ID.
// Returns a zero ID if the backend is not initialized.
func (b *Backend) Queue() core.QueueID {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.queue
}
