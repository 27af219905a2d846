package plotkit

import (
	"errors"
	"fmt"
	"math"
)

// ErrLengthMismatch is returned when x and y slices differ in length.
var ErrLengthMismatch = errors.New("plotkit: x and y must have the same length")

// axisLimit is a manually set axis range; the zero value means autoscale.
type axisLimit struct {
	set    bool
	lo, hi float64
}

// Axes is a single plot area inside a figure: series, limits, ticks,
// title and axis labels.
//
// Axes is not safe for concurrent use.
type Axes struct {
	series []*Series

	xlim, ylim axisLimit

	xticks, yticks       []float64
	hasXTicks, hasYTicks bool

	title  string
	xlabel string
	ylabel string
	grid   bool
}

// Plot adds a line series. The color cycles through the default palette
// unless WithColor is given.
func (a *Axes) Plot(x, y []float64, opts ...SeriesOption) (*Series, error) {
	return a.addSeries(x, y, 1.5, 0, opts)
}

// Scatter adds a marker-only series.
func (a *Axes) Scatter(x, y []float64, opts ...SeriesOption) (*Series, error) {
	return a.addSeries(x, y, 0, 3, opts)
}

func (a *Axes) addSeries(x, y []float64, lineWidth, markerSize float64, opts []SeriesOption) (*Series, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: len(x)=%d, len(y)=%d", ErrLengthMismatch, len(x), len(y))
	}
	s := &Series{
		x:          append([]float64(nil), x...),
		y:          append([]float64(nil), y...),
		lineWidth:  lineWidth,
		markerSize: markerSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	if !s.hasColor {
		s.color = seriesPalette[len(a.series)%len(seriesPalette)]
	}
	a.series = append(a.series, s)
	return s, nil
}

// Series returns the series added so far, in plot order.
func (a *Axes) Series() []*Series { return a.series }

// SetXLim sets the x axis range, disabling autoscale.
func (a *Axes) SetXLim(lo, hi float64) {
	a.xlim = axisLimit{set: true, lo: lo, hi: hi}
}

// SetYLim sets the y axis range, disabling autoscale.
func (a *Axes) SetYLim(lo, hi float64) {
	a.ylim = axisLimit{set: true, lo: lo, hi: hi}
}

// XLim returns the x range the axes would render with.
func (a *Axes) XLim() (lo, hi float64) {
	lo, hi = a.resolveLim(a.xlim, func(s *Series) []float64 { return s.x })
	return lo, hi
}

// YLim returns the y range the axes would render with.
func (a *Axes) YLim() (lo, hi float64) {
	lo, hi = a.resolveLim(a.ylim, func(s *Series) []float64 { return s.y })
	return lo, hi
}

// SetXTicks sets explicit x tick positions. Ticks outside the axis range
// are not drawn. Pass nil to restore automatic ticks.
func (a *Axes) SetXTicks(ticks []float64) {
	a.xticks = append([]float64(nil), ticks...)
	a.hasXTicks = ticks != nil
}

// SetYTicks sets explicit y tick positions. Pass nil to restore automatic
// ticks.
func (a *Axes) SetYTicks(ticks []float64) {
	a.yticks = append([]float64(nil), ticks...)
	a.hasYTicks = ticks != nil
}

// SetTitle sets the title drawn above the plot area.
func (a *Axes) SetTitle(title string) { a.title = title }

// Title returns the axes title.
func (a *Axes) Title() string { return a.title }

// SetXLabel sets the label drawn below the x axis.
func (a *Axes) SetXLabel(label string) { a.xlabel = label }

// SetYLabel sets the label drawn along the y axis.
func (a *Axes) SetYLabel(label string) { a.ylabel = label }

// SetGrid toggles grid lines at tick positions.
func (a *Axes) SetGrid(on bool) { a.grid = on }

// resolveLim returns the axis range: the manual limit if set, otherwise the
// data range padded by 5% on each side. Empty axes render as [0, 1].
func (a *Axes) resolveLim(l axisLimit, values func(*Series) []float64) (float64, float64) {
	if l.set {
		lo, hi := l.lo, l.hi
		if lo == hi {
			return lo - 0.5, hi + 0.5
		}
		return lo, hi
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range a.series {
		for _, v := range values(s) {
			if !isFinite(v) {
				continue
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if lo > hi {
		return 0, 1
	}
	if lo == hi {
		return lo - 0.5, hi + 0.5
	}
	pad := (hi - lo) * 0.05
	return lo - pad, hi + pad
}

// Layout constants, in pixels.
const (
	marginLeft   = 56
	marginRight  = 16
	marginTop    = 16
	marginBottom = 40
	tickLen      = 4
	tickPad      = 4
	titlePad     = 8
	labelPad     = 4
)

// render draws the axes into the region (x0, y0, w, h) of the canvas.
func (a *Axes) render(c Canvas, x0, y0, w, h float64) {
	_, lineH := c.TextSize("0")
	ascent := float64(lineH) - 2

	left := float64(marginLeft)
	if a.ylabel != "" {
		left += float64(lineH) + labelPad
	}
	top := float64(marginTop)
	if a.title != "" {
		top += float64(lineH) + titlePad
	}
	bottom := float64(marginBottom)

	px0 := x0 + left
	py0 := y0 + top
	pw := w - left - marginRight
	ph := h - top - bottom
	if pw < 8 || ph < 8 {
		Logger().Warn("axes region too small to render", "w", w, "h", h)
		return
	}

	xlo, xhi := a.XLim()
	ylo, yhi := a.YLim()

	tx := func(v float64) float64 { return px0 + (v-xlo)/(xhi-xlo)*pw }
	ty := func(v float64) float64 { return py0 + ph - (v-ylo)/(yhi-ylo)*ph }

	xticks := a.resolveTicks(a.hasXTicks, a.xticks, xlo, xhi)
	yticks := a.resolveTicks(a.hasYTicks, a.yticks, ylo, yhi)
	xstep := tickStep(xticks)
	ystep := tickStep(yticks)

	if a.title != "" {
		c.DrawText(a.title, x0+w/2, py0-titlePad-2, Black, AlignCenter)
	}

	if a.grid {
		for _, t := range xticks {
			c.StrokeLine(tx(t), py0, tx(t), py0+ph, 1, LightGray)
		}
		for _, t := range yticks {
			c.StrokeLine(px0, ty(t), px0+pw, ty(t), 1, LightGray)
		}
	}

	c.SetClip(px0, py0, pw+1, ph+1)
	for _, s := range a.series {
		a.renderSeries(c, s, tx, ty)
	}
	c.ClearClip()

	// Frame on top of the data.
	c.StrokeLine(px0, py0, px0+pw, py0, 1, Black)
	c.StrokeLine(px0, py0+ph, px0+pw, py0+ph, 1, Black)
	c.StrokeLine(px0, py0, px0, py0+ph, 1, Black)
	c.StrokeLine(px0+pw, py0, px0+pw, py0+ph, 1, Black)

	for _, t := range xticks {
		c.StrokeLine(tx(t), py0+ph, tx(t), py0+ph+tickLen, 1, Black)
		c.DrawText(formatTick(t, xstep), tx(t), py0+ph+tickLen+tickPad+ascent, Black, AlignCenter)
	}
	for _, t := range yticks {
		c.StrokeLine(px0-tickLen, ty(t), px0, ty(t), 1, Black)
		c.DrawText(formatTick(t, ystep), px0-tickLen-tickPad, ty(t)+ascent/2, Black, AlignRight)
	}

	if a.xlabel != "" {
		c.DrawText(a.xlabel, px0+pw/2, y0+h-labelPad, Black, AlignCenter)
	}
	if a.ylabel != "" {
		tw, _ := c.TextSize(a.ylabel)
		c.DrawTextVertical(a.ylabel, x0+2, py0+ph/2-float64(tw)/2, Black)
	}
}

// renderSeries draws one series, splitting the polyline at non-finite
// points the way the data came in.
func (a *Axes) renderSeries(c Canvas, s *Series, tx, ty func(float64) float64) {
	var pts []Point
	flush := func() {
		if len(pts) > 0 && s.lineWidth > 0 {
			c.Polyline(pts, s.lineWidth, s.color)
		}
		pts = pts[:0]
	}
	for i := range s.x {
		if !isFinite(s.x[i]) || !isFinite(s.y[i]) {
			flush()
			continue
		}
		pts = append(pts, Point{X: tx(s.x[i]), Y: ty(s.y[i])})
	}
	flush()

	if s.markerSize > 0 {
		for i := range s.x {
			if !isFinite(s.x[i]) || !isFinite(s.y[i]) {
				continue
			}
			c.FillCircle(tx(s.x[i]), ty(s.y[i]), s.markerSize, s.color)
		}
	}
}

// resolveTicks returns the tick positions to draw, dropping explicit ticks
// that fall outside the axis range.
func (a *Axes) resolveTicks(manual bool, ticks []float64, lo, hi float64) []float64 {
	if !manual {
		return autoTicks(lo, hi, 5)
	}
	kept := make([]float64, 0, len(ticks))
	for _, t := range ticks {
		if t >= lo && t <= hi {
			kept = append(kept, t)
		}
	}
	return kept
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
