package journal

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strings"
)

// Category groups journals that share a publisher's figure guidelines.
type Category string

// Journal categories.
const (
	CategoryNature   Category = "nature"
	CategoryScience  Category = "science"
	CategoryCell     Category = "cell"
	CategoryACS      Category = "acs"
	CategoryRSC      Category = "rsc"
	CategoryElsevier Category = "elsevier"
	CategoryWiley    Category = "wiley"
	CategoryIEEE     Category = "ieee"
	CategoryCustom   Category = "custom"
)

// Width kinds accepted by [Spec.Width].
const (
	WidthSingle = "single"
	Width15Col  = "1.5col"
	WidthDouble = "double"
)

// Spec is the figure specification of one journal.
//
// Lengths are in inches, font sizes and line widths in points. A Spec obtained
// from a [Registry] is shared by every caller and must be treated as read-only;
// use [Spec.With] to derive a variant.
type Spec struct {
	Name     string   `json:"name" toml:"name"`
	Category Category `json:"category" toml:"category"`

	WidthSingle float64 `json:"width_single" toml:"width_single"`
	Width15Col  float64 `json:"width_1_5col" toml:"width_1_5col"`
	WidthDouble float64 `json:"width_double" toml:"width_double"`
	MaxHeight   float64 `json:"max_height" toml:"max_height"`

	FontAxisLabel  float64 `json:"font_axis_label" toml:"font_axis_label"`
	FontTickLabel  float64 `json:"font_tick_label" toml:"font_tick_label"`
	FontTitle      float64 `json:"font_title" toml:"font_title"`
	FontLegend     float64 `json:"font_legend" toml:"font_legend"`
	FontAnnotation float64 `json:"font_annotation" toml:"font_annotation"`
	FontFamily     string  `json:"font_family" toml:"font_family"`

	LineWidthData      float64 `json:"line_width_data" toml:"line_width_data"`
	LineWidthFit       float64 `json:"line_width_fit" toml:"line_width_fit"`
	LineWidthReference float64 `json:"line_width_reference" toml:"line_width_reference"`
	LineWidthAxis      float64 `json:"line_width_axis" toml:"line_width_axis"`

	MarkerSizeData      float64 `json:"marker_size_data" toml:"marker_size_data"`
	MarkerSizeHighlight float64 `json:"marker_size_highlight" toml:"marker_size_highlight"`

	DPI     int      `json:"dpi" toml:"dpi"`
	Formats []string `json:"formats" toml:"formats"`

	ColorCycle []string `json:"color_cycle" toml:"color_cycle"`

	Notes string `json:"notes,omitempty" toml:"notes"`
}

// defaultColorCycle is the matplotlib tab10 cycle without its last two colours.
var defaultColorCycle = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728",
	"#9467bd", "#8c564b", "#e377c2", "#7f7f7f",
}

// Defaults returns a Spec carrying the balanced defaults used when a journal
// does not override a field.
func Defaults() Spec {
	return Spec{
		Category:            CategoryCustom,
		WidthSingle:         3.5,
		Width15Col:          5.5,
		WidthDouble:         7.0,
		MaxHeight:           9.0,
		FontAxisLabel:       9,
		FontTickLabel:       8,
		FontTitle:           9,
		FontLegend:          8,
		FontAnnotation:      7,
		FontFamily:          "sans-serif",
		LineWidthData:       1.5,
		LineWidthFit:        1.5,
		LineWidthReference:  1.0,
		LineWidthAxis:       0.8,
		MarkerSizeData:      4,
		MarkerSizeHighlight: 6,
		DPI:                 600,
		Formats:             []string{"pdf", "png", "svg"},
		ColorCycle:          slices.Clone(defaultColorCycle),
	}
}

// Width returns the width in inches for a width kind: "single", "1.5col"
// (or "1.5"), "double" (or "full"). Unknown kinds resolve to the double
// column width.
func (s *Spec) Width(kind string) float64 {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case WidthSingle:
		return s.WidthSingle
	case Width15Col, "1.5":
		return s.Width15Col
	default:
		return s.WidthDouble
	}
}

// StandardWidths returns the single, 1.5-column and double-column widths.
func (s *Spec) StandardWidths() []float64 {
	return []float64{s.WidthSingle, s.Width15Col, s.WidthDouble}
}

// Colors returns a copy of the colour cycle.
func (s *Spec) Colors() []string {
	return slices.Clone(s.ColorCycle)
}

// With returns a copy of s with fn applied. Slices are cloned before fn runs
// so the variant never aliases the original.
//
//	wide := nature.With(func(s *journal.Spec) { s.WidthDouble = 7.2 })
func (s *Spec) With(fn func(*Spec)) Spec {
	c := *s
	c.Formats = slices.Clone(s.Formats)
	c.ColorCycle = slices.Clone(s.ColorCycle)
	if fn != nil {
		fn(&c)
	}
	return c
}

// WidthTolerance is the allowed deviation, in inches, between a figure width
// and a standard width.
const WidthTolerance = 0.1

// MatchesStandardWidth reports whether width is within [WidthTolerance] of
// one of the standard widths.
func (s *Spec) MatchesStandardWidth(width float64) bool {
	for _, w := range s.StandardWidths() {
		if math.Abs(width-w) < WidthTolerance {
			return true
		}
	}
	return false
}

// NearestWidth returns the standard width closest to width.
func (s *Spec) NearestWidth(width float64) float64 {
	best := s.WidthSingle
	for _, w := range s.StandardWidths() {
		if math.Abs(width-w) < math.Abs(width-best) {
			best = w
		}
	}
	return best
}

// Fingerprint returns the hex SHA-256 of the JSON encoding of s. Two specs
// share a fingerprint only when every field is equal, so edits to a custom
// journal that keeps its name still change it.
func (s *Spec) Fingerprint() string {
	data, err := json.Marshal(s)
	if err != nil {
		// NaN and infinite values from a TOML file have no JSON form.
		data = fmt.Appendf(nil, "%#v", *s)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
