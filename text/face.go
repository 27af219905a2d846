// Package text renders axis labels and titles for the software canvas.
//
// Two kinds of faces are supported: the builtin bitmap face (always
// available, used for tick labels when no font is loaded) and TTF faces
// parsed from font data. TTF faces measure text through HarfBuzz shaping,
// so kerning and ligatures are reflected in label placement.
package text

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// Face is a font face that text is measured and drawn with.
// A Face is not safe for concurrent use.
type Face struct {
	face   font.Face
	shaper *shaper // non-nil for TTF faces
	size   float64
	widths *measureCache
}

// Builtin returns the builtin 7x13 bitmap face.
// It requires no font data and is the default for canvas text.
func Builtin() *Face {
	return &Face{face: basicfont.Face7x13, size: 13, widths: newMeasureCache()}
}

// ParseTTF parses TTF/OTF font data and returns a face at the given size
// (in pixels, 72 DPI).
func ParseTTF(data []byte, size float64) (*Face, error) {
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}
	xface, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("text: create face: %w", err)
	}
	sh, err := newShaper(data, size)
	if err != nil {
		return nil, fmt.Errorf("text: create shaper: %w", err)
	}
	return &Face{face: xface, shaper: sh, size: size, widths: newMeasureCache()}, nil
}

// Size returns the nominal face size in pixels.
func (f *Face) Size() float64 { return f.size }

// Height returns the line height in pixels.
func (f *Face) Height() int {
	return f.face.Metrics().Height.Ceil()
}

// Ascent returns the distance from the baseline to the top of a line.
func (f *Face) Ascent() int {
	return f.face.Metrics().Ascent.Ceil()
}

// Measure returns the advance width of s in pixels. Results are memoized
// per face.
// TTF faces measure through HarfBuzz shaping; the builtin face falls back
// to plain advance summing.
func (f *Face) Measure(s string) int {
	if s == "" {
		return 0
	}
	if w, ok := f.widths.get(s); ok {
		return w
	}
	w := -1
	if f.shaper != nil {
		if adv, ok := f.shaper.measure(s); ok {
			w = adv.Ceil()
		}
	}
	if w < 0 {
		w = font.MeasureString(f.face, s).Ceil()
	}
	f.widths.put(s, w)
	return w
}
