package audit

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Severity ranks how urgently an issue must be acted on.
// Info < Warning < Error.
type Severity int

// Severity levels.
const (
	Info Severity = iota
	Warning
	Error
)

// String returns "INFO", "WARNING" or "ERROR".
func (s Severity) String() string {
	switch s {
	case Info:
		return "INFO"
	case Warning:
		return "WARNING"
	case Error:
		return "ERROR"
	}
	return fmt.Sprintf("Severity(%d)", int(s))
}

// Icon returns the glyph used in text reports.
func (s Severity) Icon() string {
	switch s {
	case Error:
		return "❌"
	case Warning:
		return "⚠️"
	}
	return "ℹ️"
}

// Compare returns -1, 0 or +1 as s is less, equal or more severe than o.
func (s Severity) Compare(o Severity) int { return cmp.Compare(s, o) }

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(b []byte) error {
	v, err := ParseSeverity(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ParseSeverity parses a severity name, case-insensitively.
func ParseSeverity(name string) (Severity, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "INFO":
		return Info, nil
	case "WARNING":
		return Warning, nil
	case "ERROR":
		return Error, nil
	}
	return 0, fmt.Errorf("unknown severity %q", name)
}

// IssueType identifies the kind of defect an issue reports.
type IssueType string

// Issue types.
const (
	// Legends
	RedundantLegend IssueType = "redundant_legend"
	LegendOcclusion IssueType = "legend_occlusion"
	LegendMismatch  IssueType = "legend_mismatch"

	// Annotations
	AnnotationOcclusion IssueType = "annotation_occlusion"
	BrokenAnnotation    IssueType = "broken_annotation"

	// Size and format
	NonStandardSize IssueType = "non_standard_size"
	LowDPI          IssueType = "low_dpi"

	// Fonts
	InconsistentFonts IssueType = "inconsistent_fonts"
	FontTooSmall      IssueType = "font_too_small"
	FontTooLarge      IssueType = "font_too_large"

	// Bar charts
	BarLabelCutoff  IssueType = "bar_label_cutoff"
	BarLabelOverlap IssueType = "bar_label_overlap"

	// Style
	MissingLabels      IssueType = "missing_labels"
	InconsistentColors IssueType = "inconsistent_colors"

	// Source code
	HardcodedSize      IssueType = "hardcoded_size"
	HardcodedFont      IssueType = "hardcoded_font"
	MissingTightLayout IssueType = "missing_tight_layout"
	InefficientLegend  IssueType = "inefficient_legend"
	MissingStyle       IssueType = "missing_style"
)

var issueTypes = []IssueType{
	RedundantLegend, LegendOcclusion, LegendMismatch,
	AnnotationOcclusion, BrokenAnnotation,
	NonStandardSize, LowDPI,
	InconsistentFonts, FontTooSmall, FontTooLarge,
	BarLabelCutoff, BarLabelOverlap,
	MissingLabels, InconsistentColors,
	HardcodedSize, HardcodedFont, MissingTightLayout, InefficientLegend, MissingStyle,
}

// IssueTypes returns every issue type in taxonomy order.
func IssueTypes() []IssueType { return slices.Clone(issueTypes) }

// Name returns the upper-case constant form, e.g. "REDUNDANT_LEGEND".
func (t IssueType) Name() string { return strings.ToUpper(string(t)) }

// ParseIssueType accepts either the value ("redundant_legend") or the name
// ("REDUNDANT_LEGEND") form.
func ParseIssueType(s string) (IssueType, error) {
	v := IssueType(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(issueTypes, v) {
		return v, nil
	}
	return "", fmt.Errorf("unknown issue type %q", s)
}

// UnmarshalText implements encoding.TextUnmarshaler, rejecting types outside
// the taxonomy.
func (t *IssueType) UnmarshalText(b []byte) error {
	v, err := ParseIssueType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Issue is one audit finding.
type Issue struct {
	Type       IssueType `json:"type"`
	Severity   Severity  `json:"severity"`
	Message    string    `json:"message"`
	Suggestion string    `json:"suggestion"`

	// Location is "subplot 2", "subplots 0, 1" or "line 17"; empty when the
	// issue concerns the whole figure or file.
	Location string `json:"location,omitempty"`

	AutoFixable bool `json:"auto_fixable"`

	// Fix is a code snippet or recipe that remediates the issue.
	Fix string `json:"fix,omitempty"`
}

// String renders the three-line block used in reports:
//
//	⚠️ [WARNING] missing_labels [subplot 0]
//	   Subplot 0: missing x-axis label
//	   → Add descriptive x-axis label with units
func (i Issue) String() string {
	var b strings.Builder
	b.WriteString(i.Severity.Icon())
	b.WriteString(" [")
	b.WriteString(i.Severity.String())
	b.WriteString("] ")
	b.WriteString(string(i.Type))
	if i.Location != "" {
		b.WriteString(" [" + i.Location + "]")
	}
	if i.AutoFixable {
		b.WriteString(" (auto-fixable)")
	}
	b.WriteString("\n   ")
	b.WriteString(i.Message)
	b.WriteString("\n   → ")
	b.WriteString(i.Suggestion)
	return b.String()
}

// SortBySeverity returns a copy of issues ordered errors, then warnings,
// then infos. Order within a severity is preserved.
func SortBySeverity(issues []Issue) []Issue {
	out := slices.Clone(issues)
	slices.SortStableFunc(out, func(a, b Issue) int { return b.Severity.Compare(a.Severity) })
	return out
}

// Summary counts issues by severity.
type Summary struct {
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Infos    int `json:"infos"`
}

// Summarize counts issues by severity.
func Summarize(issues []Issue) Summary {
	var s Summary
	for _, i := range issues {
		switch i.Severity {
		case Error:
			s.Errors++
		case Warning:
			s.Warnings++
		default:
			s.Infos++
		}
	}
	return s
}

// Total returns the number of issues counted.
func (s Summary) Total() int { return s.Errors + s.Warnings + s.Infos }

// Blocking reports whether the counted issues should block acceptance:
// any error, or any warning when strict.
func (s Summary) Blocking(strict bool) bool {
	return s.Errors > 0 || (strict && s.Warnings > 0)
}
