package plotkit

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewFigureDefaults(t *testing.T) {
	f := NewFigure()
	if f.Width() != 640 || f.Height() != 480 {
		t.Errorf("default size = %dx%d, want 640x480", f.Width(), f.Height())
	}
	if f.DPI() != 100 {
		t.Errorf("default DPI = %v, want 100", f.DPI())
	}
}

func TestFigureOptions(t *testing.T) {
	f := NewFigure(WithSize(300, 200), WithDPI(72), WithBackground(Black))
	if f.Width() != 300 || f.Height() != 200 {
		t.Errorf("size = %dx%d, want 300x200", f.Width(), f.Height())
	}
	if f.DPI() != 72 {
		t.Errorf("DPI = %v, want 72", f.DPI())
	}
	if f.background != Black {
		t.Errorf("background = %v, want black", f.background)
	}
}

func TestAddAxes(t *testing.T) {
	f := NewFigure()
	a1 := f.AddAxes()
	a2 := f.AddAxes()
	if a1 == a2 {
		t.Error("AddAxes returned the same axes twice")
	}
	if got := f.Axes(); len(got) != 2 || got[0] != a1 || got[1] != a2 {
		t.Errorf("Axes() = %v, want [a1 a2]", got)
	}
	f.Clear()
	if len(f.Axes()) != 0 {
		t.Error("Clear did not remove axes")
	}
}

func TestRenderFillsBackground(t *testing.T) {
	f := NewFigure(WithSize(20, 20), WithBackground(Blue))
	c := NewSoftwareCanvas(20, 20)
	if err := f.Render(c); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got := c.Pixmap().Get(10, 10).NRGBA(); got != Blue.NRGBA() {
		t.Errorf("background pixel = %v, want blue", got)
	}
}

func TestRenderMultipleAxes(t *testing.T) {
	f := NewFigure(WithSize(320, 480))
	top := f.AddAxes()
	bottom := f.AddAxes()
	if _, err := top.Plot([]float64{0, 1}, []float64{0, 1}); err != nil {
		t.Fatalf("Plot() error = %v", err)
	}
	if _, err := bottom.Plot([]float64{0, 1}, []float64{1, 0}); err != nil {
		t.Fatalf("Plot() error = %v", err)
	}

	c := NewSoftwareCanvas(320, 480)
	if err := f.Render(c); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	// Both vertical halves must contain drawn pixels.
	if !regionMarked(c, 0, 0, 320, 240) {
		t.Error("top axes slot is empty")
	}
	if !regionMarked(c, 0, 240, 320, 480) {
		t.Error("bottom axes slot is empty")
	}
}

func regionMarked(c *SoftwareCanvas, x0, y0, x1, y1 int) bool {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if c.Pixmap().Get(x, y).NRGBA() != White.NRGBA() {
				return true
			}
		}
	}
	return false
}

func TestSavePNG(t *testing.T) {
	f := NewFigure(WithSize(100, 80))
	ax := f.AddAxes()
	if _, err := ax.Plot([]float64{0, 1, 2}, []float64{0, 1, 0}); err != nil {
		t.Fatalf("Plot() error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "fig.png")
	if err := f.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if info.Size() == 0 {
		t.Error("written PNG is empty")
	}
}

func TestSavePNGInjectedCanvas(t *testing.T) {
	c := NewSoftwareCanvas(50, 40)
	f := NewFigure(WithSize(50, 40), WithCanvas(c))
	f.AddAxes()

	path := filepath.Join(t.TempDir(), "fig.png")
	if err := f.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}
	// The injected canvas holds the render.
	if got := c.Pixmap().Get(1, 1).NRGBA(); got != White.NRGBA() {
		t.Errorf("injected canvas corner = %v, want white background", got)
	}
}
