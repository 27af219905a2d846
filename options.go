package plotkit

// FigureOption configures a Figure during creation.
// Use functional options to customize figure behavior:
//
//	fig := plotkit.NewFigure(
//		plotkit.WithSize(800, 600),
//		plotkit.WithBackground(plotkit.White),
//	)
type FigureOption func(*figureOptions)

// figureOptions holds optional configuration for Figure creation.
type figureOptions struct {
	width      int
	height     int
	dpi        float64
	background RGBA
	canvas     Canvas
}

// defaultFigureOptions returns the default figure options.
func defaultFigureOptions() figureOptions {
	return figureOptions{
		width:      640,
		height:     480,
		dpi:        100,
		background: White,
	}
}

// WithSize sets the figure size in pixels.
func WithSize(width, height int) FigureOption {
	return func(o *figureOptions) {
		if width > 0 {
			o.width = width
		}
		if height > 0 {
			o.height = height
		}
	}
}

// WithDPI sets the figure resolution metadata.
func WithDPI(dpi float64) FigureOption {
	return func(o *figureOptions) {
		if dpi > 0 {
			o.dpi = dpi
		}
	}
}

// WithBackground sets the figure background color.
func WithBackground(c RGBA) FigureOption {
	return func(o *figureOptions) {
		o.background = c
	}
}

// WithCanvas sets a custom canvas for the figure.
// Use this for dependency injection of backend-provided canvases:
//
//	canvas, _ := b.NewCanvas(640, 480)
//	fig := plotkit.NewFigure(plotkit.WithCanvas(canvas))
//
// When a canvas is set, SavePNG renders through it instead of creating a
// software canvas.
func WithCanvas(c Canvas) FigureOption {
	return func(o *figureOptions) {
		o.canvas = c
	}
}

// SeriesOption configures a plotted series.
type SeriesOption func(*Series)

// WithColor sets the series color, overriding the palette cycle.
func WithColor(c RGBA) SeriesOption {
	return func(s *Series) {
		s.color = c
		s.hasColor = true
	}
}

// WithLineWidth sets the stroke width of the series line in pixels.
func WithLineWidth(w float64) SeriesOption {
	return func(s *Series) {
		if w > 0 {
			s.lineWidth = w
		}
	}
}

// WithMarkers draws a circular marker of the given radius at every point,
// in addition to any line.
func WithMarkers(radius float64) SeriesOption {
	return func(s *Series) {
		if radius > 0 {
			s.markerSize = radius
		}
	}
}

// WithLabel sets the series label.
func WithLabel(label string) SeriesOption {
	return func(s *Series) {
		s.label = label
	}
}
