package drift

import (
	"math"
	"testing"
)

func TestEffectiveThreshold_Scaling(t *testing.T) {
	cases := []struct {
		minN int
		want float64
	}{
		{5, 0.175},
		{8, 0.175}, // spec example: size 8 with base 0.1
		{10, 0.175},
		{11, 0.15},
		{20, 0.15},
		{21, 0.1},
		{1000, 0.1},
	}

	for _, tc := range cases {
		got := EffectiveThreshold(0.1, tc.minN)
		if math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("EffectiveThreshold(0.1, %d) = %f, want %f", tc.minN, got, tc.want)
		}
	}
}

func TestWeightedScore_SmallSampleBlendExcludesPSI(t *testing.T) {
	scores := Scores{PSI: 100, KS: 0.4, JSD: 0.2, Statistical: 0.6}

	got := WeightedScore(scores, MethodPSI, 8)
	want := 0.7*0.4 + 0.15*0.2 + 0.15*0.6

	if math.Abs(got-want) > 1e-12 {
		t.Errorf("Small-sample blend = %f, want %f", got, want)
	}
}

func TestWeightedScore_PrimaryWeighting(t *testing.T) {
	scores := Scores{PSI: 0.3, KS: 0.6, JSD: 0.1, Statistical: 0.2}

	got := WeightedScore(scores, MethodKS, 500)
	want := 0.6*0.6 + (0.4/3.0)*(0.3+0.1+0.2)

	if math.Abs(got-want) > 1e-12 {
		t.Errorf("Primary weighting = %f, want %f", got, want)
	}
}

func TestWeightedScore_SmallSampleNonPSIPrimary(t *testing.T) {
	// The fixed blend only applies when PSI is the primary method
	scores := Scores{PSI: 0.3, KS: 0.6, JSD: 0.1, Statistical: 0.2}

	got := WeightedScore(scores, MethodKS, 8)
	want := 0.6*0.6 + (0.4/3.0)*(0.3+0.1+0.2)

	if math.Abs(got-want) > 1e-12 {
		t.Errorf("Non-PSI primary must keep standard weighting, got %f want %f", got, want)
	}
}

func TestClassifySeverity_Buckets(t *testing.T) {
	threshold := 0.2
	cases := []struct {
		score float64
		want  Severity
	}{
		{0.05, SeverityNone},     // < 0.5x
		{0.15, SeverityLow},      // < 1x
		{0.3, SeverityMedium},    // < 2x
		{0.5, SeverityHigh},      // < 3x
		{0.61, SeverityCritical}, // >= 3x
	}

	for _, tc := range cases {
		if got := ClassifySeverity(tc.score, threshold); got != tc.want {
			t.Errorf("ClassifySeverity(%f, %f) = %s, want %s", tc.score, threshold, got, tc.want)
		}
	}
}

func TestAggregate_VerdictAndSeverity(t *testing.T) {
	cfg := DefaultConfig()
	scores := Scores{PSI: 0.5, KS: 0.4, JSD: 0.3, Statistical: 0.6}

	avg, isDrift, severity, methods := Aggregate(scores, cfg, 1000)

	want := 0.6*0.5 + (0.4/3.0)*(0.4+0.3+0.6)
	if math.Abs(avg-want) > 1e-12 {
		t.Errorf("Average = %f, want %f", avg, want)
	}
	if !isDrift {
		t.Error("Expected drift verdict")
	}
	if severity != SeverityCritical {
		t.Errorf("Expected critical (avg %.3f vs threshold 0.1), got %s", avg, severity)
	}
	if len(methods) != 4 {
		t.Fatalf("Expected 4 method verdicts, got %d", len(methods))
	}
	for _, m := range Methods {
		verdict := methods[m]
		if verdict.Score != scores.ByMethod(m) {
			t.Errorf("Method %s verdict score %f does not match raw score %f", m, verdict.Score, scores.ByMethod(m))
		}
		if verdict.IsDrift != (verdict.Score > cfg.DriftThreshold) {
			t.Errorf("Method %s informational flag must compare against the unscaled threshold", m)
		}
	}
}

func TestAggregate_NoDriftForcesSeverityNone(t *testing.T) {
	cfg := DefaultConfig()
	scores := Scores{PSI: 0.01, KS: 0.02, JSD: 0.01, Statistical: 0.02}

	_, isDrift, severity, _ := Aggregate(scores, cfg, 1000)

	if isDrift {
		t.Error("Expected stable verdict")
	}
	if severity != SeverityNone {
		t.Errorf("Severity must be none without drift, got %s", severity)
	}
}

func TestAggregate_SmallSampleRaisesThreshold(t *testing.T) {
	cfg := DefaultConfig() // threshold 0.1

	// Blend = 0.7*0.2 + 0.15*0.1 + 0.15*0.1 = 0.17: above the base
	// threshold but below the 1.75x small-sample threshold of 0.175.
	scores := Scores{PSI: 5, KS: 0.2, JSD: 0.1, Statistical: 0.1}

	avg, isDrift, severity, _ := Aggregate(scores, cfg, 8)

	if math.Abs(avg-0.17) > 1e-12 {
		t.Fatalf("Expected blended average 0.17, got %f", avg)
	}
	if isDrift {
		t.Error("Score below the scaled threshold must not flag drift")
	}
	if severity != SeverityNone {
		t.Errorf("Expected severity none, got %s", severity)
	}
}

func TestSeverityRank(t *testing.T) {
	order := []Severity{SeverityNone, SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}
	for i := 1; i < len(order); i++ {
		if order[i].Rank() <= order[i-1].Rank() {
			t.Errorf("Severity %s must rank above %s", order[i], order[i-1])
		}
	}
}
