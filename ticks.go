package plotkit

import (
	"math"
	"strconv"
)

// autoTicks places tick values in [lo, hi] at a "nice" step (1, 2 or 5
// times a power of ten), targeting at most maxTicks intervals.
func autoTicks(lo, hi float64, maxTicks int) []float64 {
	if maxTicks < 1 {
		maxTicks = 1
	}
	span := hi - lo
	if span <= 0 || math.IsNaN(span) || math.IsInf(span, 0) {
		return nil
	}

	step := niceStep(span / float64(maxTicks))

	// First multiple of step at or above lo. Computing each tick as an
	// integer multiple of the step avoids accumulating float error.
	first := math.Ceil(lo / step)
	last := math.Floor(hi / step * (1 + 1e-12))

	var ticks []float64
	for i := first; i <= last; i++ {
		ticks = append(ticks, i*step)
	}
	return ticks
}

// niceStep rounds a raw step up to 1, 2 or 5 times a power of ten.
func niceStep(raw float64) float64 {
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	switch norm := raw / mag; {
	case norm < 1.5:
		return mag
	case norm < 3:
		return 2 * mag
	case norm < 7:
		return 5 * mag
	default:
		return 10 * mag
	}
}

// tickStep returns the spacing between ticks, or 0 for fewer than two.
func tickStep(ticks []float64) float64 {
	if len(ticks) < 2 {
		return 0
	}
	return ticks[1] - ticks[0]
}

// formatTick formats a tick value with just enough decimals for the step.
// With no usable step (single explicit tick) it falls back to shortest
// exact formatting.
func formatTick(v, step float64) string {
	if step <= 0 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	decimals := 0
	if step < 1 {
		decimals = int(math.Ceil(-math.Log10(step) - 1e-12))
	}
	if decimals < 0 {
		decimals = 0
	}
	s := strconv.FormatFloat(v, 'f', decimals, 64)
	// Avoid the "-0" label for values that round to zero.
	if s == "-0" || (len(s) > 1 && s[0] == '-' && allZero(s[1:])) {
		return s[1:]
	}
	return s
}

func allZero(s string) bool {
	for _, r := range s {
		if r != '0' && r != '.' {
			return false
		}
	}
	return true
}
