package text

import "golang.org/x/text/unicode/bidi"

// Direction is the base writing direction of a string.
type Direction int

const (
	// DirectionLTR is left-to-right text.
	DirectionLTR Direction = iota
	// DirectionRTL is right-to-left text (Arabic, Hebrew).
	DirectionRTL
)

// BaseDirection reports the base writing direction of s according to the
// Unicode bidirectional algorithm. Mixed and neutral paragraphs report LTR.
func BaseDirection(s string) Direction {
	if s == "" {
		return DirectionLTR
	}
	var p bidi.Paragraph
	if _, err := p.SetString(s); err != nil {
		return DirectionLTR
	}
	// Direction is only defined once the paragraph has been ordered.
	o, err := p.Order()
	if err != nil || o.NumRuns() == 0 {
		return DirectionLTR
	}
	if o.Direction() == bidi.RightToLeft {
		return DirectionRTL
	}
	return DirectionLTR
}
