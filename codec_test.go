package nspell

import "testing"

func TestCodecSmallCountsNearLossless(t *testing.T) {
	for _, c := range []Count{0, 1, 2, 5, 10, 100} {
		got := unpackCount(packCount(c))
		// documented as near-unit fidelity for small counts, not exact.
		if diff := int64(got) - int64(c); diff < -1 || diff > 2 {
			t.Errorf("pack/unpack(%d) = %d, drifted more than expected", c, got)
		}
	}
}

func TestCodecMonotone(t *testing.T) {
	var prevPacked uint16
	var prevC Count
	for _, c := range []Count{0, 1, 10, 100, 1000, 10000, 1 << 20, maxCount} {
		p := packCount(c)
		if c > prevC && p < prevPacked {
			t.Errorf("packCount not monotone: pack(%d)=%d < pack(%d)=%d", c, p, prevC, prevPacked)
		}
		prevPacked, prevC = p, c
	}
}

func TestCodecRelativeErrorLargeCounts(t *testing.T) {
	for _, c := range []Count{1000, 10000, 100000, 1 << 20} {
		got := unpackCount(packCount(c))
		diff := float64(got) - float64(c)
		if diff < 0 {
			diff = -diff
		}
		if rel := diff / float64(c); rel > 0.10 {
			t.Errorf("unpack(pack(%d)) = %d, relative error %.3f exceeds 10%%", c, got, rel)
		}
	}
}

func TestCodecSaturatesAtBound(t *testing.T) {
	if packCount(maxCount) != packCount(maxCount*2) {
		t.Error("expected counts above maxCount to saturate to the same packed value")
	}
}
