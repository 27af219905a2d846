package plotkit

// Figure is a complete drawing: one or more axes stacked vertically on a
// shared background, rendered at a fixed pixel size.
//
// Figure is not safe for concurrent use.
type Figure struct {
	width      int
	height     int
	dpi        float64
	background RGBA
	canvas     Canvas
	axes       []*Axes
}

// NewFigure creates a figure. With no options the figure is 640x480 pixels
// with a white background.
func NewFigure(opts ...FigureOption) *Figure {
	options := defaultFigureOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return &Figure{
		width:      options.width,
		height:     options.height,
		dpi:        options.dpi,
		background: options.background,
		canvas:     options.canvas,
	}
}

// Width returns the figure width in pixels.
func (f *Figure) Width() int { return f.width }

// Height returns the figure height in pixels.
func (f *Figure) Height() int { return f.height }

// DPI returns the figure resolution metadata.
func (f *Figure) DPI() float64 { return f.dpi }

// AddAxes appends a new plot area to the figure and returns it.
// Multiple axes share the figure height evenly, top to bottom.
func (f *Figure) AddAxes() *Axes {
	ax := &Axes{}
	f.axes = append(f.axes, ax)
	return ax
}

// Axes returns the figure's axes in the order they were added.
func (f *Figure) Axes() []*Axes { return f.axes }

// Clear removes all axes.
func (f *Figure) Clear() { f.axes = nil }

// Render draws the figure onto the canvas: background first, then each
// axes in its vertical slot.
func (f *Figure) Render(c Canvas) error {
	c.Clear(f.background)

	if len(f.axes) == 0 {
		return nil
	}

	w := float64(c.Width())
	slot := float64(c.Height()) / float64(len(f.axes))
	for i, ax := range f.axes {
		ax.render(c, 0, float64(i)*slot, w, slot)
	}
	return nil
}

// SavePNG renders the figure and writes it to a PNG file.
// The figure's canvas is used when one was injected with WithCanvas;
// otherwise a software canvas is created for the call.
func (f *Figure) SavePNG(path string) error {
	canvas := f.canvas
	if canvas == nil {
		canvas = NewSoftwareCanvas(f.width, f.height)
	}
	if err := f.Render(canvas); err != nil {
		return err
	}
	Logger().Debug("figure rendered", "width", f.width, "height", f.height, "axes", len(f.axes))
	return canvas.Pixmap().SavePNG(path)
}
