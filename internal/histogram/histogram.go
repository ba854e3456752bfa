package histogram

// Standard bin counts precomputed on every baseline. Detection reuses a
// cached histogram only when its range matches the combined range of the
// two samples being compared.
var StandardBinCounts = []int{3, 5, 10, 20}

// AdaptiveBinCount picks a bin count from the smaller of the two sample
// sizes. Histogram methods lose resolution fast on small samples, so the
// bucket count shrinks with n.
func AdaptiveBinCount(n int) int {
	switch {
	case n < 10:
		return 3
	case n < 50:
		return 5
	case n < 200:
		return 10
	default:
		return 20
	}
}

// Counts bins data into fixed-width buckets over the explicit [min, max]
// range. Values outside the range clamp into the edge bins. A degenerate
// range (max == min) puts every value in bin 0.
func Counts(data []float64, bins int, min, max float64) []uint64 {
	counts := make([]uint64, bins)
	if bins == 0 || len(data) == 0 {
		return counts
	}

	width := (max - min) / float64(bins)
	if width <= 0 {
		counts[0] = uint64(len(data))
		return counts
	}

	for _, v := range data {
		idx := int((v - min) / width)
		if idx < 0 {
			idx = 0
		}
		if idx >= bins {
			idx = bins - 1
		}
		counts[idx]++
	}
	return counts
}

// Proportions converts bin counts to proportions of the total count.
// An empty histogram returns all zeros.
func Proportions(counts []uint64) []float64 {
	props := make([]float64, len(counts))
	var total uint64
	for _, c := range counts {
		total += c
	}
	if total == 0 {
		return props
	}
	for i, c := range counts {
		props[i] = float64(c) / float64(total)
	}
	return props
}
