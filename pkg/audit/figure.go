package audit

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/matzehuels/scifig/pkg/figure"
	"github.com/matzehuels/scifig/pkg/journal"
)

// Font size bounds, in points, outside of which single elements are flagged.
const (
	MinFontSize = 6.0
	MaxFontSize = 14.0
)

// FigureAuditor checks figures against one journal specification.
//
// The auditor keeps the issues of its last [FigureAuditor.Audit] call. It is
// not safe for concurrent use; give each goroutine its own auditor.
type FigureAuditor struct {
	spec   *journal.Spec
	cfg    config
	issues []Issue
}

// NewFigureAuditor returns an auditor for spec.
func NewFigureAuditor(spec *journal.Spec, opts ...Option) *FigureAuditor {
	return &FigureAuditor{spec: spec, cfg: newConfig(opts)}
}

// NewFigureAuditorFor looks up name in [journal.Default] and returns an
// auditor for it.
func NewFigureAuditorFor(name string, opts ...Option) (*FigureAuditor, error) {
	spec, err := journal.Get(name)
	if err != nil {
		return nil, err
	}
	return NewFigureAuditor(spec, opts...), nil
}

// Spec returns the specification audited against.
func (a *FigureAuditor) Spec() *journal.Spec { return a.spec }

// Audit runs every figure check and returns the issues found. Panels default
// to the figure's own panels. The figure is only read.
func (a *FigureAuditor) Audit(fig figure.View, panels ...figure.PanelView) []Issue {
	start := time.Now()
	a.cfg.hooks.OnAuditStart(KindFigure, a.spec.Name)

	a.issues = nil
	if len(panels) == 0 {
		panels = fig.PanelViews()
	}

	a.checkSize(fig.Size())
	a.checkRedundantLegends(panels)
	a.checkFonts(panels)
	a.checkLegendOcclusion(panels)
	a.checkMissingLabels(panels)

	a.cfg.hooks.OnAuditComplete(KindFigure, a.spec.Name, len(a.issues), time.Since(start))
	return a.Issues()
}

// Issues returns a copy of the issues from the last audit.
func (a *FigureAuditor) Issues() []Issue { return slices.Clone(a.issues) }

// Summary counts the issues from the last audit.
func (a *FigureAuditor) Summary() Summary { return Summarize(a.issues) }

// Blocking reports whether the last audit found errors, or warnings in
// strict mode.
func (a *FigureAuditor) Blocking() bool { return a.Summary().Blocking(a.cfg.strict) }

// FixSuggestions returns the fix recipes of auto-fixable issues, in order.
func (a *FigureAuditor) FixSuggestions() []string { return fixSuggestions(a.issues) }

// Report renders the last audit as text.
func (a *FigureAuditor) Report() string {
	if len(a.issues) == 0 {
		return figurePassMessage(a.spec.Name)
	}
	return RenderReport(FigureReportTitle(a.spec.Name), a.issues)
}

// Result packages the last audit as a [Report].
func (a *FigureAuditor) Result(source string) *Report {
	r := NewReport(KindFigure, a.spec.Name, source, a.Issues())
	r.Strict = a.cfg.strict
	return r
}

func (a *FigureAuditor) add(i Issue) { a.issues = append(a.issues, i) }

func (a *FigureAuditor) checkSize(width, height float64) {
	s := a.spec
	if !s.MatchesStandardWidth(width) {
		nearest := s.NearestWidth(width)
		a.add(Issue{
			Type:        NonStandardSize,
			Severity:    Info,
			Message:     fmt.Sprintf("Figure width %.2f\" doesn't match %s standards", width, s.Name),
			Suggestion:  fmt.Sprintf("Use one of: %s inches (nearest: %s)", formatWidths(s.StandardWidths()), formatNumber(nearest)),
			AutoFixable: true,
			Fix:         fmt.Sprintf("fig.set_size_inches(%s, %.2f)", formatNumber(nearest), height),
		})
	}
	if height > s.MaxHeight {
		a.add(Issue{
			Type:        NonStandardSize,
			Severity:    Warning,
			Message:     fmt.Sprintf("Figure height %.2f\" exceeds max %s\"", height, formatNumber(s.MaxHeight)),
			Suggestion:  fmt.Sprintf("Reduce height to ≤ %s\"", formatNumber(s.MaxHeight)),
			AutoFixable: true,
			Fix:         fmt.Sprintf("fig.set_size_inches(%.2f, %s)", width, formatNumber(s.MaxHeight)),
		})
	}
}

const unifiedLegendFix = `# Remove individual legends
for ax in axes:
    if ax.get_legend():
        ax.get_legend().remove()

# Add unified legend
handles, labels = axes[0].get_legend_handles_labels()
fig.legend(handles, labels, loc='lower center',
           bbox_to_anchor=(0.5, -0.02), ncol=len(labels))`

// checkRedundantLegends reports the first pair of panels whose legends share
// a label. One issue covers the whole figure.
func (a *FigureAuditor) checkRedundantLegends(panels []figure.PanelView) {
	type labelled struct {
		index  int
		labels map[string]bool
	}
	var withLegend []labelled
	for i, p := range panels {
		l, ok := p.LegendInfo()
		if !ok || len(l.Entries) == 0 {
			continue
		}
		set := make(map[string]bool, len(l.Entries))
		for _, e := range l.Entries {
			set[e.Label] = true
		}
		withLegend = append(withLegend, labelled{i, set})
	}

	for x := 0; x < len(withLegend); x++ {
		for y := x + 1; y < len(withLegend); y++ {
			p, q := withLegend[x], withLegend[y]
			var shared []string
			for label := range p.labels {
				if q.labels[label] {
					shared = append(shared, label)
				}
			}
			if len(shared) == 0 {
				continue
			}
			slices.Sort(shared)
			a.add(Issue{
				Type:        RedundantLegend,
				Severity:    Warning,
				Message:     fmt.Sprintf("Subplots %d and %d share legend items: %s", p.index, q.index, quoteList(shared)),
				Suggestion:  "Use a unified bottom legend (fig.legend) instead of one legend per panel",
				Location:    fmt.Sprintf("subplots %d, %d", p.index, q.index),
				AutoFixable: true,
				Fix:         unifiedLegendFix,
			})
			return
		}
	}
}

func (a *FigureAuditor) checkFonts(panels []figure.PanelView) {
	var titles, labels []float64
	for _, p := range panels {
		if t := p.TitleText(); !t.Empty() {
			titles = appendUnique(titles, t.Size)
		}
		for _, axis := range []figure.Axis{figure.AxisX, figure.AxisY} {
			if l := p.AxisLabel(axis); !l.Empty() {
				labels = appendUnique(labels, l.Size)
			}
		}
	}
	slices.Sort(titles)
	slices.Sort(labels)

	s := a.spec
	if len(titles) > 1 {
		a.add(Issue{
			Type:        InconsistentFonts,
			Severity:    Warning,
			Message:     "Inconsistent title font sizes: " + formatSizes(titles),
			Suggestion:  fmt.Sprintf("Use consistent size: %s pt", formatNumber(s.FontTitle)),
			AutoFixable: true,
			Fix:         fmt.Sprintf("for ax in axes: ax.title.set_fontsize(%s)", formatNumber(s.FontTitle)),
		})
	}
	if len(labels) > 1 {
		size := formatNumber(s.FontAxisLabel)
		a.add(Issue{
			Type:        InconsistentFonts,
			Severity:    Warning,
			Message:     "Inconsistent label font sizes: " + formatSizes(labels),
			Suggestion:  fmt.Sprintf("Use consistent size: %s pt", size),
			AutoFixable: true,
			Fix: fmt.Sprintf("for ax in axes:\n    ax.xaxis.label.set_fontsize(%s)\n    ax.yaxis.label.set_fontsize(%s)",
				size, size),
		})
	}

	all := appendUnique(slices.Clone(titles), labels...)
	slices.Sort(all)
	for _, size := range all {
		switch {
		case size < MinFontSize:
			a.add(Issue{
				Type:       FontTooSmall,
				Severity:   Error,
				Message:    fmt.Sprintf("Font size %s pt is too small for print", formatNumber(size)),
				Suggestion: "Minimum readable font size is 6-7 pt",
			})
		case size > MaxFontSize:
			a.add(Issue{
				Type:       FontTooLarge,
				Severity:   Info,
				Message:    fmt.Sprintf("Font size %s pt may be too large", formatNumber(size)),
				Suggestion: "Consider reducing to 9-10 pt",
			})
		}
	}
}

// checkLegendOcclusion flags legends in the upper band of a panel, where
// they most often cover data. Data density is not inspected.
func (a *FigureAuditor) checkLegendOcclusion(panels []figure.PanelView) {
	for i, p := range panels {
		l, ok := p.LegendInfo()
		if !ok || !l.Loc.Upper() {
			continue
		}
		a.add(Issue{
			Type:       LegendOcclusion,
			Severity:   Info,
			Message:    fmt.Sprintf("Subplot %d: legend in %s may occlude data", i, l.Loc),
			Suggestion: "Verify visually. Consider a unified bottom legend or moving the annotation into the title",
			Location:   fmt.Sprintf("subplot %d", i),
		})
	}
}

func (a *FigureAuditor) checkMissingLabels(panels []figure.PanelView) {
	for i, p := range panels {
		for _, axis := range []figure.Axis{figure.AxisX, figure.AxisY} {
			if !p.AxisLabel(axis).Empty() {
				continue
			}
			a.add(Issue{
				Type:       MissingLabels,
				Severity:   Warning,
				Message:    fmt.Sprintf("Subplot %d: missing %s-axis label", i, axis),
				Suggestion: fmt.Sprintf("Add descriptive %s-axis label with units", axis),
				Location:   fmt.Sprintf("subplot %d", i),
			})
		}
	}
}

func fixSuggestions(issues []Issue) []string {
	var out []string
	for _, i := range issues {
		if i.AutoFixable && i.Fix != "" {
			out = append(out, i.Fix)
		}
	}
	return out
}

func appendUnique(dst []float64, vs ...float64) []float64 {
	for _, v := range vs {
		if !slices.Contains(dst, v) {
			dst = append(dst, v)
		}
	}
	return dst
}

// formatNumber prints v with the fewest digits that round-trip.
func formatNumber(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func formatWidths(ws []float64) string {
	parts := make([]string, len(ws))
	for i, w := range ws {
		parts[i] = formatNumber(w)
	}
	return strings.Join(parts, ", ")
}

func formatSizes(sizes []float64) string { return "[" + formatWidths(sizes) + "]" }

func quoteList(ss []string) string {
	parts := make([]string, len(ss))
	for i, s := range ss {
		parts[i] = strconv.Quote(s)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
