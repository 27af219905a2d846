package plotkit

// Series is one plotted data set: paired X/Y values with line and marker
// styling. Create series through Axes.Plot and Axes.Scatter.
type Series struct {
	x, y []float64

	color      RGBA
	hasColor   bool
	lineWidth  float64 // 0 disables the line
	markerSize float64 // 0 disables markers
	label      string
}

// X returns the x values of the series.
func (s *Series) X() []float64 { return s.x }

// Y returns the y values of the series.
func (s *Series) Y() []float64 { return s.y }

// Label returns the series label.
func (s *Series) Label() string { return s.label }

// Len returns the number of points.
func (s *Series) Len() int { return len(s.x) }
