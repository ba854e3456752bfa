package drift

// Sample-size cutoffs for threshold scaling and the small-sample blend.
// Small samples make histogram methods noisy, so the verdict threshold
// is relaxed and PSI is dropped from the weighting entirely.
const (
	tinySampleSize  = 10
	smallSampleSize = 20

	tinyThresholdScale  = 1.75
	smallThresholdScale = 1.5
)

// EffectiveThreshold scales the base threshold for small samples.
// minN is the smaller of the two sample sizes.
func EffectiveThreshold(base float64, minN int) float64 {
	switch {
	case minN <= tinySampleSize:
		return base * tinyThresholdScale
	case minN <= smallSampleSize:
		return base * smallThresholdScale
	default:
		return base
	}
}

// WeightedScore combines the four method scores into one average.
//
// Below 20 samples with PSI as the primary method, a fixed blend of
// 0.7*ks + 0.15*jsd + 0.15*statistical is used instead: PSI's histogram
// buckets carry too few values at that size to be trusted as the lead
// signal. Otherwise the primary method gets weight 0.6 and the remaining
// 0.4 is split evenly across the other three.
func WeightedScore(scores Scores, primary Method, minN int) float64 {
	if minN < smallSampleSize && primary == MethodPSI {
		return 0.7*scores.KS + 0.15*scores.JSD + 0.15*scores.Statistical
	}

	primaryScore := scores.ByMethod(primary)
	otherSum := 0.0
	otherCount := 0
	for _, m := range Methods {
		if m == primary {
			continue
		}
		otherSum += scores.ByMethod(m)
		otherCount++
	}
	return 0.6*primaryScore + (0.4/float64(otherCount))*otherSum
}

// ClassifySeverity buckets the averaged score against the effective
// threshold. Only meaningful on a drift verdict; Aggregate forces the
// severity to none otherwise.
func ClassifySeverity(averageScore, effectiveThreshold float64) Severity {
	switch {
	case averageScore < 0.5*effectiveThreshold:
		return SeverityNone
	case averageScore < effectiveThreshold:
		return SeverityLow
	case averageScore < 2*effectiveThreshold:
		return SeverityMedium
	case averageScore < 3*effectiveThreshold:
		return SeverityHigh
	default:
		return SeverityCritical
	}
}

// Aggregate joins the four method scores into the final verdict:
// weighted average, drift flag against the size-scaled threshold, and a
// severity bucket. Per-method verdicts compare raw scores to the
// unscaled base threshold and are informational only.
func Aggregate(scores Scores, cfg Config, minN int) (avg float64, isDrift bool, severity Severity, methods map[Method]MethodVerdict) {
	avg = WeightedScore(scores, cfg.PrimaryMethod, minN)
	effective := EffectiveThreshold(cfg.DriftThreshold, minN)
	isDrift = avg > effective

	severity = SeverityNone
	if isDrift {
		severity = ClassifySeverity(avg, effective)
	}

	methods = make(map[Method]MethodVerdict, len(Methods))
	for _, m := range Methods {
		score := scores.ByMethod(m)
		methods[m] = MethodVerdict{
			Score:   score,
			IsDrift: score > cfg.DriftThreshold,
		}
	}
	return avg, isDrift, severity, methods
}
