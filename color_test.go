package plotkit

import (
	"image/color"
	"testing"
)

func TestRGBIsOpaque(t *testing.T) {
	c := RGB(0.5, 0.25, 1)
	if c.A != 1 {
		t.Errorf("RGB(...).A = %v, want 1", c.A)
	}
}

func TestNRGBAConversion(t *testing.T) {
	cases := []struct {
		in   RGBA
		want color.NRGBA
	}{
		{White, color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{Black, color.NRGBA{A: 255}},
		{Transparent, color.NRGBA{}},
		{RGBA{R: 2, G: -1, A: 1}, color.NRGBA{R: 255, A: 255}}, // clamped
	}
	for _, c := range cases {
		if got := c.in.NRGBA(); got != c.want {
			t.Errorf("%v.NRGBA() = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestFromColorRoundTrip(t *testing.T) {
	for _, c := range []RGBA{White, Black, Red, Blue} {
		got := FromColor(c.Color())
		if got.NRGBA() != c.NRGBA() {
			t.Errorf("FromColor(%v.Color()) = %v, want same 8-bit color", c, got)
		}
	}
}

func TestWithAlpha(t *testing.T) {
	c := Red.WithAlpha(0.5)
	if c.A != 0.5 {
		t.Errorf("WithAlpha(0.5).A = %v, want 0.5", c.A)
	}
	if c.R != Red.R || c.G != Red.G || c.B != Red.B {
		t.Error("WithAlpha changed the color channels")
	}
	if Red.A != 1 {
		t.Error("WithAlpha mutated the receiver")
	}
}

func TestSeriesPaletteNonEmpty(t *testing.T) {
	if len(seriesPalette) == 0 {
		t.Fatal("seriesPalette is empty")
	}
	for i, c := range seriesPalette {
		if c.A != 1 {
			t.Errorf("seriesPalette[%d] is not opaque", i)
		}
	}
}
