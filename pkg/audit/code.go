package audit

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/matzehuels/scifig/pkg/errors"
	"github.com/matzehuels/scifig/pkg/journal"
)

// MinSourceDPI is the lowest resolution literal accepted in plotting code.
const MinSourceDPI = 300

var (
	legendCallRe = regexp.MustCompile(`\bax(?:e?s)?\d*(?:\[[^\]]*\])?\.legend\s*\(`)
	figsizeRe    = regexp.MustCompile(`figsize\s*=\s*\(\s*(\d+\.?\d*)\s*,\s*(\d+\.?\d*)\s*\)`)
	dpiRe        = regexp.MustCompile(`dpi\s*=\s*(\d+)`)
	savefigRe    = regexp.MustCompile(`\bsavefig\s*\(`)
)

// styleMarkers are substrings showing the script applies a journal style.
var styleMarkers = []string{"scifig", "sci_figure_toolkit", "set_style("}

// layoutMarkers are substrings showing the layout is finalised before saving.
var layoutMarkers = []string{"tight_layout", "constrained_layout"}

// lineRule is a per-line check: handle runs for each line re matches, with
// the 1-based line number and the submatches.
type lineRule struct {
	re     *regexp.Regexp
	handle func(a *CodeAuditor, line int, m []string)
}

var lineRules = []lineRule{
	{legendCallRe, (*CodeAuditor).recordLegendCall},
	{figsizeRe, (*CodeAuditor).checkFigsize},
	{dpiRe, (*CodeAuditor).checkDPI},
}

// textRules run once over the whole source after the line rules.
var textRules = []func(a *CodeAuditor, src string){
	(*CodeAuditor).checkLegendCalls,
	(*CodeAuditor).checkStyleEntryPoint,
	(*CodeAuditor).checkLayoutBeforeSave,
}

// CodeAuditor scans plotting source text for publication anti-patterns.
//
// Matching is purely textual. It is not safe for concurrent use.
type CodeAuditor struct {
	spec        *journal.Spec
	cfg         config
	issues      []Issue
	legendLines []int
}

// NewCodeAuditor returns a code auditor for spec.
func NewCodeAuditor(spec *journal.Spec, opts ...Option) *CodeAuditor {
	return &CodeAuditor{spec: spec, cfg: newConfig(opts)}
}

// NewCodeAuditorFor looks up name in [journal.Default] and returns a code
// auditor for it.
func NewCodeAuditorFor(name string, opts ...Option) (*CodeAuditor, error) {
	spec, err := journal.Get(name)
	if err != nil {
		return nil, err
	}
	return NewCodeAuditor(spec, opts...), nil
}

// Spec returns the specification audited against.
func (a *CodeAuditor) Spec() *journal.Spec { return a.spec }

// Audit scans src and returns the issues found.
func (a *CodeAuditor) Audit(src string) []Issue {
	start := time.Now()
	a.cfg.hooks.OnAuditStart(KindCode, a.spec.Name)

	a.issues = nil
	a.legendLines = nil

	for n, line := range strings.Split(src, "\n") {
		for _, r := range lineRules {
			if m := r.re.FindStringSubmatch(line); m != nil {
				r.handle(a, n+1, m)
			}
		}
	}
	for _, check := range textRules {
		check(a, src)
	}

	a.cfg.hooks.OnAuditComplete(KindCode, a.spec.Name, len(a.issues), time.Since(start))
	return a.Issues()
}

// AuditReader reads all of r and audits it.
func (a *CodeAuditor) AuditReader(r io.Reader) ([]Issue, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read source")
	}
	return a.Audit(string(b)), nil
}

// AuditFile reads the file at path once and audits its contents.
func (a *CodeAuditor) AuditFile(path string) ([]Issue, error) {
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "file not found: %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read %s", path)
	}
	return a.Audit(string(b)), nil
}

// Issues returns a copy of the issues from the last audit.
func (a *CodeAuditor) Issues() []Issue { return slices.Clone(a.issues) }

// Summary counts the issues from the last audit.
func (a *CodeAuditor) Summary() Summary { return Summarize(a.issues) }

// Blocking reports whether the last audit found errors, or warnings in
// strict mode.
func (a *CodeAuditor) Blocking() bool { return a.Summary().Blocking(a.cfg.strict) }

// FixSuggestions returns the fix snippets of auto-fixable issues, in order.
func (a *CodeAuditor) FixSuggestions() []string { return fixSuggestions(a.issues) }

// Report renders the last audit as text.
func (a *CodeAuditor) Report() string {
	if len(a.issues) == 0 {
		return codePassMessage
	}
	return RenderReport(CodeReportTitle(a.spec.Name), a.issues)
}

// Result packages the last audit as a [Report].
func (a *CodeAuditor) Result(source string) *Report {
	r := NewReport(KindCode, a.spec.Name, source, a.Issues())
	r.Strict = a.cfg.strict
	return r
}

func (a *CodeAuditor) add(i Issue) { a.issues = append(a.issues, i) }

func (a *CodeAuditor) recordLegendCall(line int, _ []string) {
	a.legendLines = append(a.legendLines, line)
}

func (a *CodeAuditor) checkFigsize(line int, m []string) {
	width, err := strconv.ParseFloat(m[1], 64)
	if err != nil || a.spec.MatchesStandardWidth(width) {
		return
	}
	a.add(Issue{
		Type:        HardcodedSize,
		Severity:    Info,
		Message:     fmt.Sprintf("Line %d: figsize width %s\" may not match journal standards", line, formatNumber(width)),
		Suggestion:  fmt.Sprintf("Use standard widths: %s inches", formatWidths(a.spec.StandardWidths())),
		Location:    fmt.Sprintf("line %d", line),
		AutoFixable: true,
	})
}

func (a *CodeAuditor) checkDPI(line int, m []string) {
	dpi, err := strconv.Atoi(m[1])
	if err != nil || dpi >= MinSourceDPI {
		return
	}
	a.add(Issue{
		Type:        LowDPI,
		Severity:    Warning,
		Message:     fmt.Sprintf("Line %d: DPI %d is too low for publication", line, dpi),
		Suggestion:  fmt.Sprintf("Use dpi=%d for publication quality", a.spec.DPI),
		Location:    fmt.Sprintf("line %d", line),
		AutoFixable: true,
		Fix:         fmt.Sprintf("dpi=%d", a.spec.DPI),
	})
}

// checkLegendCalls reports repeated per-panel legend calls once, listing
// every line.
func (a *CodeAuditor) checkLegendCalls(string) {
	if len(a.legendLines) < 2 {
		return
	}
	lines := make([]string, len(a.legendLines))
	for i, n := range a.legendLines {
		lines[i] = strconv.Itoa(n)
	}
	a.add(Issue{
		Type:       InefficientLegend,
		Severity:   Info,
		Message:    "Multiple ax.legend() calls at lines: " + strings.Join(lines, ", "),
		Suggestion: "Consider a unified bottom legend with fig.legend()",
	})
}

func (a *CodeAuditor) checkStyleEntryPoint(src string) {
	if containsAny(src, styleMarkers) {
		return
	}
	key := journal.Normalize(a.spec.Name)
	a.add(Issue{
		Type:        MissingStyle,
		Severity:    Info,
		Message:     "No journal style applied (scifig style entry point not found)",
		Suggestion:  fmt.Sprintf("Apply the journal style before plotting: set_style('%s')", key),
		AutoFixable: true,
		Fix:         fmt.Sprintf("from sci_figure_toolkit import set_style\nset_style('%s')", key),
	})
}

func (a *CodeAuditor) checkLayoutBeforeSave(src string) {
	if !savefigRe.MatchString(src) || containsAny(src, layoutMarkers) {
		return
	}
	a.add(Issue{
		Type:        MissingTightLayout,
		Severity:    Warning,
		Message:     "No tight_layout() call before savefig()",
		Suggestion:  "Add plt.tight_layout() or use constrained_layout=True",
		AutoFixable: true,
		Fix:         "plt.tight_layout()",
	})
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
