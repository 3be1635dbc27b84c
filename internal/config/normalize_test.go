package config

import (
	"math"
	"testing"
)

func TestNormalizeEmptyInputYieldsDefaults(t *testing.T) {
	got := Normalize(Options{}, Defaults())
	if got != Defaults() {
		t.Fatalf("Normalize(zero) = %+v, want defaults %+v", got, Defaults())
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	in := Options{
		EnableSplitViewResizing: boolPtr(false),
		SplitViewDefaultRatio:   floatPtr(0.3),
		RenderSideBySide:        boolPtr(false),
		MaxComputationTime:      intPtr(100),
		DiffWordWrap:            "on",
		DiffAlgorithm:           "legacy",
	}
	once := Normalize(in, Defaults())
	twice := Normalize(once.Partial(), Defaults())
	if once != twice {
		t.Fatalf("re-normalizing changed the record: %+v vs %+v", once, twice)
	}
}

func TestNormalizeRatioClamp(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0.0, 0.1},
		{0.05, 0.1},
		{0.1, 0.1},
		{0.5, 0.5},
		{0.9, 0.9},
		{0.95, 0.9},
		{1.0, 0.9},
	}
	for _, tc := range cases {
		got := Normalize(Options{SplitViewDefaultRatio: floatPtr(tc.in)}, Defaults())
		if got.SplitViewDefaultRatio != tc.want {
			t.Fatalf("ratio %v normalized to %v, want %v", tc.in, got.SplitViewDefaultRatio, tc.want)
		}
	}
}

func TestNormalizeRatioNaNFallsBackToDefault(t *testing.T) {
	nan := math.NaN()
	got := Normalize(Options{SplitViewDefaultRatio: &nan}, Defaults())
	if got.SplitViewDefaultRatio != Defaults().SplitViewDefaultRatio {
		t.Fatalf("NaN ratio normalized to %v, want default %v", got.SplitViewDefaultRatio, Defaults().SplitViewDefaultRatio)
	}
}

func TestNormalizeCeilings(t *testing.T) {
	neg := int64(-1)
	huge := int64(1) << 60
	got := Normalize(Options{MaxComputationTime: &neg, MaxFileSize: &huge}, Defaults())
	if got.MaxComputationTime != Defaults().MaxComputationTime {
		t.Fatalf("negative time = %d, want default %d", got.MaxComputationTime, Defaults().MaxComputationTime)
	}
	if got.MaxFileSize != maxSafeInt {
		t.Fatalf("oversized file size = %d, want ceiling %d", got.MaxFileSize, maxSafeInt)
	}
}

func TestNormalizeAlgorithmAliases(t *testing.T) {
	cases := []struct {
		in   string
		want Algorithm
	}{
		{"smart", AlgorithmLegacy},
		{"legacy", AlgorithmLegacy},
		{"experimental", AlgorithmAdvanced},
		{"advanced", AlgorithmAdvanced},
		{"bogus", AlgorithmAdvanced}, // default
		{"", AlgorithmAdvanced},
	}
	for _, tc := range cases {
		got := Normalize(Options{DiffAlgorithm: tc.in}, Defaults())
		if got.DiffAlgorithm != tc.want {
			t.Fatalf("algorithm %q resolved to %q, want %q", tc.in, got.DiffAlgorithm, tc.want)
		}
	}
}

func TestNormalizeWordWrapRejectsUnknown(t *testing.T) {
	got := Normalize(Options{DiffWordWrap: "sometimes"}, Defaults())
	if got.DiffWordWrap != Defaults().DiffWordWrap {
		t.Fatalf("unknown wrap resolved to %q, want default %q", got.DiffWordWrap, Defaults().DiffWordWrap)
	}
	got = Normalize(Options{DiffWordWrap: "off"}, Defaults())
	if got.DiffWordWrap != WordWrapOff {
		t.Fatalf("wrap off resolved to %q", got.DiffWordWrap)
	}
}
