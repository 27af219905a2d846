package plotkit

import (
	"image"
	"math"

	"github.com/goplot/plotkit/internal/raster"
	"github.com/goplot/plotkit/text"
)

// Point is a position in canvas pixel coordinates.
type Point struct {
	X, Y float64
}

// TextAlign controls horizontal anchoring of drawn text relative to the
// given position.
type TextAlign int

const (
	// AlignLeft anchors the text start at the position.
	AlignLeft TextAlign = iota
	// AlignCenter centers the text on the position.
	AlignCenter
	// AlignRight anchors the text end at the position.
	AlignRight
)

// Canvas is the drawing surface a rendering backend provides.
// Figures render themselves through this interface; the software
// implementation rasterizes on the CPU, GPU backends may substitute
// their own surfaces.
//
// Coordinates are pixels with the origin at the top-left. Text positions
// are baseline origins.
type Canvas interface {
	// Width returns the canvas width in pixels.
	Width() int

	// Height returns the canvas height in pixels.
	Height() int

	// Clear fills the whole canvas with a color and resets the clip.
	Clear(c RGBA)

	// FillRect fills an axis-aligned rectangle.
	FillRect(x, y, w, h float64, c RGBA)

	// StrokeLine draws a line segment with the given stroke width.
	StrokeLine(x0, y0, x1, y1, width float64, c RGBA)

	// Polyline draws connected segments through pts.
	Polyline(pts []Point, width float64, c RGBA)

	// FillCircle fills a circle, used for scatter markers.
	FillCircle(cx, cy, r float64, c RGBA)

	// DrawText draws a single line of text with its baseline at (x, y).
	DrawText(s string, x, y float64, c RGBA, align TextAlign)

	// DrawTextVertical draws text rotated 90 degrees counter-clockwise,
	// with (x, y) the top-left corner of the rotated box.
	DrawTextVertical(s string, x, y float64, c RGBA)

	// TextSize returns the advance width and line height of s in pixels.
	TextSize(s string) (w, h int)

	// SetClip restricts subsequent drawing to a rectangle.
	SetClip(x, y, w, h float64)

	// ClearClip removes the clip rectangle.
	ClearClip()

	// Pixmap returns the pixel buffer holding the rendered result.
	Pixmap() *Pixmap
}

// SoftwareCanvas is the CPU implementation of Canvas. It rasterizes into a
// Pixmap using internal/raster and draws text with the text package.
type SoftwareCanvas struct {
	pixmap *Pixmap
	face   *text.Face
	clip   image.Rectangle
}

var _ Canvas = (*SoftwareCanvas)(nil)

// NewSoftwareCanvas creates a software canvas with the given dimensions
// and the builtin text face.
func NewSoftwareCanvas(width, height int) *SoftwareCanvas {
	return &SoftwareCanvas{
		pixmap: NewPixmap(width, height),
		face:   text.Builtin(),
	}
}

// SetFace replaces the text face used by DrawText.
func (c *SoftwareCanvas) SetFace(f *text.Face) {
	if f != nil {
		c.face = f
	}
}

// Width returns the canvas width in pixels.
func (c *SoftwareCanvas) Width() int { return c.pixmap.Width() }

// Height returns the canvas height in pixels.
func (c *SoftwareCanvas) Height() int { return c.pixmap.Height() }

// Clear fills the whole canvas and resets the clip.
func (c *SoftwareCanvas) Clear(col RGBA) {
	c.clip = image.Rectangle{}
	c.pixmap.Fill(col)
}

// FillRect fills an axis-aligned rectangle.
func (c *SoftwareCanvas) FillRect(x, y, w, h float64, col RGBA) {
	r := image.Rect(round(x), round(y), round(x+w), round(y+h))
	raster.FillRect(c.pixmap.RGBA(), r, col.NRGBA(), c.clip)
}

// StrokeLine draws a line segment.
func (c *SoftwareCanvas) StrokeLine(x0, y0, x1, y1, width float64, col RGBA) {
	raster.Line(c.pixmap.RGBA(), round(x0), round(y0), round(x1), round(y1),
		strokeWidth(width), col.NRGBA(), c.clip)
}

// Polyline draws connected segments through pts.
func (c *SoftwareCanvas) Polyline(pts []Point, width float64, col RGBA) {
	if len(pts) == 0 {
		return
	}
	ipts := make([]image.Point, len(pts))
	for i, p := range pts {
		ipts[i] = image.Point{X: round(p.X), Y: round(p.Y)}
	}
	raster.Polyline(c.pixmap.RGBA(), ipts, strokeWidth(width), col.NRGBA(), c.clip)
}

// FillCircle fills a circle.
func (c *SoftwareCanvas) FillCircle(cx, cy, r float64, col RGBA) {
	raster.FillCircle(c.pixmap.RGBA(), round(cx), round(cy), round(r), col.NRGBA(), c.clip)
}

// DrawText draws a single line of text with its baseline at (x, y).
// The clip rectangle does not apply to text.
func (c *SoftwareCanvas) DrawText(s string, x, y float64, col RGBA, align TextAlign) {
	if s == "" {
		return
	}
	switch align {
	case AlignCenter:
		x -= float64(c.face.Measure(s)) / 2
	case AlignRight:
		x -= float64(c.face.Measure(s))
	}
	text.Draw(c.pixmap.RGBA(), s, round(x), round(y), col.Color(), c.face)
}

// DrawTextVertical draws text rotated 90 degrees counter-clockwise.
func (c *SoftwareCanvas) DrawTextVertical(s string, x, y float64, col RGBA) {
	text.DrawVertical(c.pixmap.RGBA(), s, round(x), round(y), col.Color(), c.face)
}

// TextSize returns the advance width and line height of s in pixels.
func (c *SoftwareCanvas) TextSize(s string) (int, int) {
	return c.face.Measure(s), c.face.Height()
}

// SetClip restricts subsequent drawing to a rectangle.
func (c *SoftwareCanvas) SetClip(x, y, w, h float64) {
	c.clip = image.Rect(round(x), round(y), round(x+w), round(y+h))
}

// ClearClip removes the clip rectangle.
func (c *SoftwareCanvas) ClearClip() {
	c.clip = image.Rectangle{}
}

// Pixmap returns the pixel buffer holding the rendered result.
func (c *SoftwareCanvas) Pixmap() *Pixmap { return c.pixmap }

func round(v float64) int {
	return int(math.Round(v))
}

// strokeWidth converts a float stroke width to a pixel stamp width, never
// below 1.
func strokeWidth(w float64) int {
	n := round(w)
	if n < 1 {
		return 1
	}
	return n
}
