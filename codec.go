package nspell

import "math"

// Count is a nonnegative raw n-gram count, bounded by maxCount before
// packing (spec.md §3). Counts above that bound saturate silently when
// packed — acceptable per spec.md §1's non-goals ("counts beyond 2^28").
type Count uint32

const (
	maxCount    = 1 << 28 // MAX_REAL_NUM in the original source.
	maxPacked   = 1 << 16 // MAX_AVAILABLE_NUM in the original source.
	packGamma   = 0.2
	unpackGamma = 5.0
)

// packCount quantizes c into a 16-bit cell by normalizing against
// maxCount, applying a γ=0.2 power curve, and scaling into [0, maxPacked).
// This preserves small counts with near-unit fidelity and saturates large
// ones, per spec.md §4.A. c must be <= maxCount.
func packCount(c Count) uint16 {
	if c > maxCount {
		c = maxCount
	}
	r := float64(c) / float64(maxCount)
	r = math.Pow(r, packGamma)
	r *= float64(maxPacked)
	r = math.Round(r)
	if r >= float64(maxPacked) {
		return maxPacked - 1
	}
	return uint16(r)
}

// unpackCount inverts packCount with the γ=5 complement, rounding up so
// that packCount(unpackCount(p)) never under-reports a value that was
// representable at p's precision.
func unpackCount(p uint16) Count {
	r := float64(p) / float64(maxPacked)
	r = math.Pow(r, unpackGamma)
	r *= float64(maxCount)
	return Count(math.Ceil(r))
}
