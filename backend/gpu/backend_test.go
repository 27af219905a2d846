package gpu

import (
	"errors"
	"testing"

	"github.com/goplot/plotkit/backend"
)

func TestBackendName(t *testing.T) {
	b := New()
	if b.Name() != "gpu" {
		t.Errorf("Name() = %q, want %q", b.Name(), "gpu")
	}
}

func TestBackendAutoRegistered(t *testing.T) {
	if !backend.IsRegistered(backend.GPU) {
		t.Error("gpu backend should be auto-registered on import")
	}
}

func TestNewCanvasBeforeInit(t *testing.T) {
	b := New()
	if _, err := b.NewCanvas(100, 100); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("NewCanvas() before Init error = %v, want ErrNotInitialized", err)
	}
}

func TestBackendLifecycle(t *testing.T) {
	b := New()
	if err := b.Init(); err != nil {
		t.Skipf("no GPU available: %v", err)
	}
	defer b.Close()

	if !b.IsInitialized() {
		t.Error("IsInitialized() = false after successful Init")
	}
	if b.Device().IsZero() {
		t.Error("Device() is zero after Init")
	}
	if b.Queue().IsZero() {
		t.Error("Queue() is zero after Init")
	}

	c, err := b.NewCanvas(320, 240)
	if err != nil {
		t.Fatalf("NewCanvas() error = %v", err)
	}
	if c.Width() != 320 || c.Height() != 240 {
		t.Errorf("canvas size = %dx%d, want 320x240", c.Width(), c.Height())
	}
}

func TestInitIdempotent(t *testing.T) {
	b := New()
	if err := b.Init(); err != nil {
		t.Skipf("no GPU available: %v", err)
	}
	defer b.Close()

	if err := b.Init(); err != nil {
		t.Errorf("second Init() error = %v", err)
	}
}

func TestCloseBeforeInit(t *testing.T) {
	b := New()
	b.Close() // must not panic
	if b.IsInitialized() {
		t.Error("IsInitialized() = true after Close without Init")
	}
}
