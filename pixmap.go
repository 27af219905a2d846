package plotkit

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
)

// Pixmap is a rectangular RGBA pixel buffer backends render into.
// It wraps an image.RGBA so rasterization and encoding can work on the
// standard image types directly.
type Pixmap struct {
	img *image.RGBA
}

// NewPixmap creates a new pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Width returns the width of the pixmap in pixels.
func (p *Pixmap) Width() int { return p.img.Rect.Dx() }

// Height returns the height of the pixmap in pixels.
func (p *Pixmap) Height() int { return p.img.Rect.Dy() }

// RGBA returns the underlying image buffer.
func (p *Pixmap) RGBA() *image.RGBA { return p.img }

// Fill sets every pixel to the given color.
func (p *Pixmap) Fill(c RGBA) {
	// Set converts the non-premultiplied color through the RGBA model.
	n := c.NRGBA()
	b := p.img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			p.img.Set(x, y, n)
		}
	}
}

// Set sets the color of a single pixel. Out-of-bounds writes are ignored.
func (p *Pixmap) Set(x, y int, c RGBA) {
	if !(image.Point{X: x, Y: y}).In(p.img.Bounds()) {
		return
	}
	p.img.Set(x, y, c.NRGBA())
}

// Get returns the color of a single pixel.
// Out-of-bounds reads return Transparent.
func (p *Pixmap) Get(x, y int) RGBA {
	if !(image.Point{X: x, Y: y}).In(p.img.Bounds()) {
		return Transparent
	}
	return FromColor(p.img.At(x, y))
}

// WritePNG encodes the pixmap as PNG to w.
func (p *Pixmap) WritePNG(w io.Writer) error {
	return png.Encode(w, p.img)
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return p.WritePNG(f)
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color { return p.img.At(x, y) }

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle { return p.img.Bounds() }

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model { return p.img.ColorModel() }
