package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// shaper measures text through go-text/typesetting's HarfBuzz
// implementation, so advances include kerning and ligature substitution.
//
// font.Face and HarfbuzzShaper are not safe for concurrent use; a mutex
// serializes measurement calls.
type shaper struct {
	mu   sync.Mutex
	face *font.Face
	size float64
	hb   shaping.HarfbuzzShaper
}

// newShaper parses the font data for shaping. The parsed face is cached for
// the lifetime of the shaper so font data is only parsed once.
func newShaper(data []byte, size float64) (*shaper, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return &shaper{face: face, size: size}, nil
}

// measure returns the total advance of s at the given size.
func (s *shaper) measure(text string) (fixed.Int26_6, bool) {
	runes := []rune(text)
	if len(runes) == 0 {
		return 0, true
	}

	dir := di.DirectionLTR
	if BaseDirection(text) == DirectionRTL {
		dir = di.DirectionRTL
	}

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      s.face,
		Size:      floatToFixed(s.size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	s.mu.Lock()
	out := s.hb.Shape(input)
	s.mu.Unlock()

	var adv fixed.Int26_6
	for _, g := range out.Glyphs {
		adv += g.Advance
	}
	return adv, true
}

// detectScript inspects the runes and returns the script of the first
// non-space character. For mixed-script labels this is a heuristic; callers
// should split runs by script when that matters.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a float64 size to fixed.Int26_6 (6 fractional bits).
func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}
