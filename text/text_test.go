package text

import (
	"image"
	"image/color"
	"testing"
)

func TestBuiltinFaceMetrics(t *testing.T) {
	f := Builtin()
	if f.Height() <= 0 {
		t.Errorf("Height() = %d, want > 0", f.Height())
	}
	if f.Ascent() <= 0 {
		t.Errorf("Ascent() = %d, want > 0", f.Ascent())
	}
}

func TestMeasureEmpty(t *testing.T) {
	if got := Builtin().Measure(""); got != 0 {
		t.Errorf("Measure(\"\") = %d, want 0", got)
	}
}

func TestMeasureGrowsWithText(t *testing.T) {
	f := Builtin()
	short := f.Measure("ab")
	long := f.Measure("abcdef")
	if short <= 0 {
		t.Fatalf("Measure(ab) = %d, want > 0", short)
	}
	if long <= short {
		t.Errorf("Measure(abcdef) = %d, want > Measure(ab) = %d", long, short)
	}
}

func TestParseTTFRejectsGarbage(t *testing.T) {
	if _, err := ParseTTF([]byte("not a font"), 12); err == nil {
		t.Error("ParseTTF(garbage) should return an error")
	}
}

func TestDraw(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 100, 30))
	f := Builtin()
	Draw(dst, "Ag", 5, f.Ascent()+2, color.Black, f)

	marked := 0
	for y := range 30 {
		for x := range 100 {
			if dst.RGBAAt(x, y).A != 0 {
				marked++
			}
		}
	}
	if marked == 0 {
		t.Error("Draw() produced no pixels")
	}
}

func TestDrawEmptyIsNoop(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	Draw(dst, "", 0, 0, color.Black, Builtin())
	for y := range 10 {
		for x := range 10 {
			if dst.RGBAAt(x, y).A != 0 {
				t.Fatal("Draw(\"\") should not touch the image")
			}
		}
	}
}

func TestDrawVertical(t *testing.T) {
	f := Builtin()
	w := f.Measure("XY")
	dst := image.NewRGBA(image.Rect(0, 0, 40, 60))
	DrawVertical(dst, "XY", 2, 2, color.Black, f)

	// Pixels must land inside the rotated box: Height() wide, Measure() tall.
	inBox, outBox := 0, 0
	box := image.Rect(2, 2, 2+f.Height(), 2+w)
	for y := range 60 {
		for x := range 40 {
			if dst.RGBAAt(x, y).A == 0 {
				continue
			}
			if (image.Point{X: x, Y: y}).In(box) {
				inBox++
			} else {
				outBox++
			}
		}
	}
	if inBox == 0 {
		t.Error("DrawVertical() produced no pixels in the rotated box")
	}
	if outBox != 0 {
		t.Errorf("DrawVertical() placed %d pixels outside the rotated box", outBox)
	}
}

func TestBaseDirection(t *testing.T) {
	tests := []struct {
		text string
		want Direction
	}{
		{"", DirectionLTR},
		{"hello", DirectionLTR},
		{"123", DirectionLTR},
		{"...", DirectionLTR},
		{"שלום", DirectionRTL},
		{"مرحبا", DirectionRTL},
		{"שלום world", DirectionRTL},
		{"hello שלום", DirectionLTR},
	}
	for _, tt := range tests {
		if got := BaseDirection(tt.text); got != tt.want {
			t.Errorf("BaseDirection(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func BenchmarkMeasureBuiltin(b *testing.B) {
	f := Builtin()
	b.ReportAllocs()
	for b.Loop() {
		_ = f.Measure("0.25")
	}
}
