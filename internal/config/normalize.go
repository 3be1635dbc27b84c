package config

import "math"

// Normalize resolves a partial option set against a previous resolved
// record. It is pure and total: any input, however malformed, produces a
// record with every field in-domain. Unset fields keep the value from
// defaults; out-of-range values clamp to the nearest bound; unknown enum
// spellings fall back to the default.
func Normalize(in Options, defaults Resolved) Resolved {
	return Resolved{
		EnableSplitViewResizing: resolveBool(in.EnableSplitViewResizing, defaults.EnableSplitViewResizing),
		SplitViewDefaultRatio:   resolveRatio(in.SplitViewDefaultRatio, defaults.SplitViewDefaultRatio),
		RenderSideBySide:        resolveBool(in.RenderSideBySide, defaults.RenderSideBySide),
		RenderMarginRevertIcon:  resolveBool(in.RenderMarginRevertIcon, defaults.RenderMarginRevertIcon),
		IgnoreTrimWhitespace:    resolveBool(in.IgnoreTrimWhitespace, defaults.IgnoreTrimWhitespace),
		RenderIndicators:        resolveBool(in.RenderIndicators, defaults.RenderIndicators),
		OriginalEditable:        resolveBool(in.OriginalEditable, defaults.OriginalEditable),
		DiffCodeLens:            resolveBool(in.DiffCodeLens, defaults.DiffCodeLens),
		RenderOverviewRuler:     resolveBool(in.RenderOverviewRuler, defaults.RenderOverviewRuler),
		AccessibilityVerbose:    resolveBool(in.AccessibilityVerbose, defaults.AccessibilityVerbose),
		MaxComputationTime:      resolveCeiling(in.MaxComputationTime, defaults.MaxComputationTime),
		MaxFileSize:             resolveCeiling(in.MaxFileSize, defaults.MaxFileSize),
		DiffWordWrap:            resolveWordWrap(in.DiffWordWrap, defaults.DiffWordWrap),
		DiffAlgorithm:           resolveAlgorithm(in.DiffAlgorithm, defaults.DiffAlgorithm),
	}
}

func resolveBool(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

// resolveRatio clamps the split ratio into [0.1, 0.9]. Non-finite values
// fall back to the default rather than a bound.
func resolveRatio(v *float64, def float64) float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return def
	}
	switch {
	case *v < 0.1:
		return 0.1
	case *v > 0.9:
		return 0.9
	default:
		return *v
	}
}

// resolveCeiling keeps limits in [0, maxSafeInt]. Negative values mean
// the option was garbage, so the default wins; oversized values clamp.
func resolveCeiling(v *int64, def int64) int64 {
	if v == nil || *v < 0 {
		return def
	}
	if *v > maxSafeInt {
		return maxSafeInt
	}
	return *v
}

func resolveWordWrap(v string, def WordWrap) WordWrap {
	switch WordWrap(v) {
	case WordWrapOff, WordWrapOn, WordWrapInherit:
		return WordWrap(v)
	default:
		return def
	}
}

// resolveAlgorithm accepts the historical spellings of both families.
func resolveAlgorithm(v string, def Algorithm) Algorithm {
	switch v {
	case "legacy", "smart":
		return AlgorithmLegacy
	case "advanced", "experimental":
		return AlgorithmAdvanced
	default:
		return def
	}
}
