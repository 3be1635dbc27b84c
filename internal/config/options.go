// Package config turns a partial, loosely-typed option set into the
// fully-determined record the diff widget runs on. Loading and
// normalizing are separate: Load only rejects unreadable JSON, while
// Normalize clamps and defaults every field so the rest of the program
// never sees an out-of-domain value.
package config

// WordWrap selects line wrapping behavior for both panes.
type WordWrap string

const (
	WordWrapOff     WordWrap = "off"
	WordWrapOn      WordWrap = "on"
	WordWrapInherit WordWrap = "inherit"
)

// Algorithm names the diff algorithm family.
type Algorithm string

const (
	AlgorithmLegacy   Algorithm = "legacy"
	AlgorithmAdvanced Algorithm = "advanced"
)

// maxSafeInt is the ceiling for the numeric limits; values above it are
// clamped down, not rejected.
const maxSafeInt = int64(1)<<53 - 1

// Options is the partial input record. Nil pointer fields and empty
// strings mean "unset, use the default". The JSON shape matches the
// config file on disk.
type Options struct {
	EnableSplitViewResizing *bool    `json:"enableSplitViewResizing,omitempty"`
	SplitViewDefaultRatio   *float64 `json:"splitViewDefaultRatio,omitempty"`
	RenderSideBySide        *bool    `json:"renderSideBySide,omitempty"`
	RenderMarginRevertIcon  *bool    `json:"renderMarginRevertIcon,omitempty"`
	IgnoreTrimWhitespace    *bool    `json:"ignoreTrimWhitespace,omitempty"`
	RenderIndicators        *bool    `json:"renderIndicators,omitempty"`
	OriginalEditable        *bool    `json:"originalEditable,omitempty"`
	DiffCodeLens            *bool    `json:"diffCodeLens,omitempty"`
	RenderOverviewRuler     *bool    `json:"renderOverviewRuler,omitempty"`
	AccessibilityVerbose    *bool    `json:"accessibilityVerbose,omitempty"`
	MaxComputationTime      *int64   `json:"maxComputationTime,omitempty"`
	MaxFileSize             *int64   `json:"maxFileSize,omitempty"`
	DiffWordWrap            string   `json:"diffWordWrap,omitempty"`
	DiffAlgorithm           string   `json:"diffAlgorithm,omitempty"`
}

// Resolved is the fully-determined record. Every field is present and
// in-domain; the widget never re-validates it.
type Resolved struct {
	EnableSplitViewResizing bool
	SplitViewDefaultRatio   float64
	RenderSideBySide        bool
	RenderMarginRevertIcon  bool
	IgnoreTrimWhitespace    bool
	RenderIndicators        bool
	OriginalEditable        bool
	DiffCodeLens            bool
	RenderOverviewRuler     bool
	AccessibilityVerbose    bool
	MaxComputationTime      int64
	MaxFileSize             int64
	DiffWordWrap            WordWrap
	DiffAlgorithm           Algorithm
}

// Defaults is the record an empty Options normalizes to.
func Defaults() Resolved {
	return Resolved{
		EnableSplitViewResizing: true,
		SplitViewDefaultRatio:   0.5,
		RenderSideBySide:        true,
		RenderMarginRevertIcon:  true,
		IgnoreTrimWhitespace:    true,
		RenderIndicators:        true,
		OriginalEditable:        false,
		DiffCodeLens:            false,
		RenderOverviewRuler:     true,
		AccessibilityVerbose:    false,
		MaxComputationTime:      5000,
		MaxFileSize:             50,
		DiffWordWrap:            WordWrapInherit,
		DiffAlgorithm:           AlgorithmAdvanced,
	}
}

// Partial re-expresses the resolved record as a fully-specified Options
// value, so normalizing it again is the identity.
func (r Resolved) Partial() Options {
	return Options{
		EnableSplitViewResizing: boolPtr(r.EnableSplitViewResizing),
		SplitViewDefaultRatio:   floatPtr(r.SplitViewDefaultRatio),
		RenderSideBySide:        boolPtr(r.RenderSideBySide),
		RenderMarginRevertIcon:  boolPtr(r.RenderMarginRevertIcon),
		IgnoreTrimWhitespace:    boolPtr(r.IgnoreTrimWhitespace),
		RenderIndicators:        boolPtr(r.RenderIndicators),
		OriginalEditable:        boolPtr(r.OriginalEditable),
		DiffCodeLens:            boolPtr(r.DiffCodeLens),
		RenderOverviewRuler:     boolPtr(r.RenderOverviewRuler),
		AccessibilityVerbose:    boolPtr(r.AccessibilityVerbose),
		MaxComputationTime:      intPtr(r.MaxComputationTime),
		MaxFileSize:             intPtr(r.MaxFileSize),
		DiffWordWrap:            string(r.DiffWordWrap),
		DiffAlgorithm:           string(r.DiffAlgorithm),
	}
}

func boolPtr(v bool) *bool        { return &v }
func floatPtr(v float64) *float64 { return &v }
func intPtr(v int64) *int64       { return &v }
