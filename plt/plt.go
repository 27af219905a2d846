// Package plt is a stateful convenience layer over plotkit figures.
//
// Functions operate on an implicit current figure and current axes, so a
// quick script needs no explicit object management:
//
//	plt.Plot(x, y)
//	plt.Title("signal")
//	plt.SavePNG("signal.png")
//
// Importing plt registers both rendering backends; SavePNG activates the
// best available one when none is active yet.
//
// The package serializes access to its implicit state, but scripts that
// plot from multiple goroutines should use plotkit.Figure directly.
package plt

import (
	"sync"

	"github.com/goplot/plotkit"
	"github.com/goplot/plotkit/backend"
	_ "github.com/goplot/plotkit/backend/agg"
	_ "github.com/goplot/plotkit/backend/gpu"
)

var (
	mu  sync.Mutex
	fig *plotkit.Figure
	ax  *plotkit.Axes
)

// Figure starts a new current figure and returns it. Any previous current
// figure and axes are discarded.
func Figure(opts ...plotkit.FigureOption) *plotkit.Figure {
	mu.Lock()
	defer mu.Unlock()

	fig = plotkit.NewFigure(opts...)
	ax = nil
	return fig
}

// Gcf returns the current figure, creating a default one if needed.
func Gcf() *plotkit.Figure {
	mu.Lock()
	defer mu.Unlock()
	return gcf()
}

// Gca returns the current axes, creating a figure and axes if needed.
func Gca() *plotkit.Axes {
	mu.Lock()
	defer mu.Unlock()
	return gca()
}

// Clf clears the current figure: all axes are removed but the figure and
// its size options are kept.
func Clf() {
	mu.Lock()
	defer mu.Unlock()

	if fig != nil {
		fig.Clear()
	}
	ax = nil
}

func gcf() *plotkit.Figure {
	if fig == nil {
		fig = plotkit.NewFigure()
		ax = nil
	}
	return fig
}

func gca() *plotkit.Axes {
	if ax == nil {
		ax = gcf().AddAxes()
	}
	return ax
}

// Plot adds a line series to the current axes.
func Plot(x, y []float64, opts ...plotkit.SeriesOption) (*plotkit.Series, error) {
	mu.Lock()
	defer mu.Unlock()
	return gca().Plot(x, y, opts...)
}

// Scatter adds a marker-only series to the current axes.
func Scatter(x, y []float64, opts ...plotkit.SeriesOption) (*plotkit.Series, error) {
	mu.Lock()
	defer mu.Unlock()
	return gca().Scatter(x, y, opts...)
}

// Title sets the current axes title.
func Title(title string) {
	mu.Lock()
	defer mu.Unlock()
	gca().SetTitle(title)
}

// XLabel sets the current axes x label.
func XLabel(label string) {
	mu.Lock()
	defer mu.Unlock()
	gca().SetXLabel(label)
}

// YLabel sets the current axes y label.
func YLabel(label string) {
	mu.Lock()
	defer mu.Unlock()
	gca().SetYLabel(label)
}

// XLim sets the current axes x range.
func XLim(lo, hi float64) {
	mu.Lock()
	defer mu.Unlock()
	gca().SetXLim(lo, hi)
}

// YLim sets the current axes y range.
func YLim(lo, hi float64) {
	mu.Lock()
	defer mu.Unlock()
	gca().SetYLim(lo, hi)
}

// XTicks sets explicit x tick positions on the current axes.
func XTicks(ticks []float64) {
	mu.Lock()
	defer mu.Unlock()
	gca().SetXTicks(ticks)
}

// YTicks sets explicit y tick positions on the current axes.
func YTicks(ticks []float64) {
	mu.Lock()
	defer mu.Unlock()
	gca().SetYTicks(ticks)
}

// Grid toggles grid lines on the current axes.
func Grid(on bool) {
	mu.Lock()
	defer mu.Unlock()
	gca().SetGrid(on)
}

// SavePNG renders the current figure through the active backend and
// writes it to a PNG file. When no backend is active, the best available
// one is activated first.
func SavePNG(path string) error {
	mu.Lock()
	f := gcf()
	mu.Unlock()

	if backend.ActiveName() == "" {
		if err := backend.UseDefault(); err != nil {
			return err
		}
	}
	c, err := backend.Active().NewCanvas(f.Width(), f.Height())
	if err != nil {
		return err
	}
	if err := f.Render(c); err != nil {
		return err
	}
	return c.Pixmap().SavePNG(path)
}
