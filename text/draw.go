package text

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Draw renders s onto dst with the baseline origin at (x, y).
func Draw(dst draw.Image, s string, x, y int, c color.Color, f *Face) {
	if s == "" {
		return
	}
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: f.face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// DrawVertical renders s rotated 90 degrees counter-clockwise, reading
// bottom to top. (x, y) is the top-left corner of the rotated text box,
// which is f.Height() wide and f.Measure(s) tall.
func DrawVertical(dst draw.Image, s string, x, y int, c color.Color, f *Face) {
	if s == "" {
		return
	}
	w := f.Measure(s)
	h := f.Height()
	if w <= 0 || h <= 0 {
		return
	}

	tmp := image.NewRGBA(image.Rect(0, 0, w, h))
	Draw(tmp, s, 0, f.Ascent(), c, f)

	// Rotate: source (tx, ty) maps to (x+ty, y+w-1-tx), so the first glyph
	// ends up at the bottom of the column.
	for ty := range h {
		for tx := range w {
			src := tmp.RGBAAt(tx, ty)
			if src.A == 0 {
				continue
			}
			compositeOver(dst, x+ty, y+w-1-tx, src)
		}
	}
}

// compositeOver blends a premultiplied source pixel over dst at (x, y).
func compositeOver(dst draw.Image, x, y int, src color.RGBA) {
	if !(image.Point{X: x, Y: y}).In(dst.Bounds()) {
		return
	}
	if src.A == 0xff {
		dst.Set(x, y, src)
		return
	}
	dr, dg, db, da := dst.At(x, y).RGBA()
	sa := uint32(src.A)
	inv := 255 - sa
	out := color.RGBA{
		R: uint8(uint32(src.R) + uint8ShiftDown(dr)*inv/255),
		G: uint8(uint32(src.G) + uint8ShiftDown(dg)*inv/255),
		B: uint8(uint32(src.B) + uint8ShiftDown(db)*inv/255),
		A: uint8(sa + uint8ShiftDown(da)*inv/255),
	}
	dst.Set(x, y, out)
}

// uint8ShiftDown converts a 16-bit color component from RGBA() to 8 bits.
func uint8ShiftDown(v uint32) uint32 { return v >> 8 }
