// Package raster implements the small CPU rasterization kernel used by the
// software canvas: alpha-blended rect fills, Bresenham lines with optional
// thickness, polylines, and filled circle markers.
//
// All operations clip against the intersection of the destination bounds and
// the supplied clip rectangle, so callers can restrict drawing to a plot
// area without pre-clipping geometry.
package raster

import (
	"image"
	"image/color"
)

// blendPixel composites a non-premultiplied source color over the
// destination pixel (src-over).
func blendPixel(dst *image.RGBA, x, y int, c color.NRGBA) {
	if c.A == 0 {
		return
	}
	if c.A == 0xff {
		dst.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
		return
	}
	i := dst.PixOffset(x, y)
	sa := uint32(c.A)
	da := 255 - sa
	dst.Pix[i+0] = uint8((uint32(c.R)*sa + uint32(dst.Pix[i+0])*da) / 255)
	dst.Pix[i+1] = uint8((uint32(c.G)*sa + uint32(dst.Pix[i+1])*da) / 255)
	dst.Pix[i+2] = uint8((uint32(c.B)*sa + uint32(dst.Pix[i+2])*da) / 255)
	dst.Pix[i+3] = uint8(sa + uint32(dst.Pix[i+3])*da/255)
}

func clipRect(dst *image.RGBA, clip image.Rectangle) image.Rectangle {
	if clip.Empty() {
		return dst.Bounds()
	}
	return dst.Bounds().Intersect(clip)
}

// FillRect fills r with c, clipped to clip (zero clip means full bounds).
func FillRect(dst *image.RGBA, r image.Rectangle, c color.NRGBA, clip image.Rectangle) {
	r = r.Intersect(clipRect(dst, clip))
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			blendPixel(dst, x, y, c)
		}
	}
}

// stamp draws a width×width square centered on (x, y). A 1-wide stamp is a
// single pixel, which keeps thin lines crisp.
func stamp(dst *image.RGBA, x, y, width int, c color.NRGBA, clip image.Rectangle) {
	if width <= 1 {
		if (image.Point{X: x, Y: y}).In(clip) {
			blendPixel(dst, x, y, c)
		}
		return
	}
	half := width / 2
	for dy := -half; dy <= half; dy++ {
		for dx := -half; dx <= half; dx++ {
			px, py := x+dx, y+dy
			if (image.Point{X: px, Y: py}).In(clip) {
				blendPixel(dst, px, py, c)
			}
		}
	}
}

// Line draws a line segment from (x0, y0) to (x1, y1) using Bresenham's
// algorithm, stamping width-sized squares along the way.
func Line(dst *image.RGBA, x0, y0, x1, y1, width int, c color.NRGBA, clip image.Rectangle) {
	bounds := clipRect(dst, clip)

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		stamp(dst, x0, y0, width, c, bounds)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Polyline draws connected line segments through pts.
func Polyline(dst *image.RGBA, pts []image.Point, width int, c color.NRGBA, clip image.Rectangle) {
	if len(pts) == 1 {
		stamp(dst, pts[0].X, pts[0].Y, width, c, clipRect(dst, clip))
		return
	}
	for i := 1; i < len(pts); i++ {
		Line(dst, pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y, width, c, clip)
	}
}

// FillCircle fills a circle of radius r centered on (cx, cy).
func FillCircle(dst *image.RGBA, cx, cy, r int, c color.NRGBA, clip image.Rectangle) {
	bounds := clipRect(dst, clip)
	if r <= 0 {
		if (image.Point{X: cx, Y: cy}).In(bounds) {
			blendPixel(dst, cx, cy, c)
		}
		return
	}
	rr := r * r
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy > rr {
				continue
			}
			px, py := cx+dx, cy+dy
			if (image.Point{X: px, Y: py}).In(bounds) {
				blendPixel(dst, px, py, c)
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
