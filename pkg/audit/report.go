package audit

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const reportWidth = 70

// RenderReport renders issues as a bordered text report under title. Issues
// are listed errors first, then warnings, then infos, each followed by a
// blank line.
func RenderReport(title string, issues []Issue) string {
	border := strings.Repeat("=", reportWidth)
	s := Summarize(issues)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(border + "\n")
	b.WriteString(title + "\n")
	b.WriteString(border + "\n\n")
	fmt.Fprintf(&b, "Found %d issues: %d errors, %d warnings, %d infos\n\n",
		s.Total(), s.Errors, s.Warnings, s.Infos)
	for _, i := range SortBySeverity(issues) {
		b.WriteString(i.String())
		b.WriteString("\n\n")
	}
	b.WriteString(border)
	return b.String()
}

// FigureReportTitle is the report title for figure audits against journal.
func FigureReportTitle(journal string) string {
	return fmt.Sprintf("FIGURE AUDIT REPORT (%s Standards)", journal)
}

// CodeReportTitle is the report title for code audits against journal.
func CodeReportTitle(journal string) string {
	return fmt.Sprintf("CODE AUDIT REPORT (%s)", journal)
}

// Report kinds.
const (
	KindFigure = "figure"
	KindCode   = "code"
)

// Report is the serializable record of one audit run.
type Report struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Journal   string    `json:"journal"`
	Source    string    `json:"source,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	Strict    bool      `json:"strict,omitempty"`
	Summary   Summary   `json:"summary"`
	Issues    []Issue   `json:"issues"`
}

// NewReport records issues found by an audit of the given kind.
func NewReport(kind, journal, source string, issues []Issue) *Report {
	if issues == nil {
		issues = []Issue{}
	}
	return &Report{
		ID:        uuid.NewString(),
		Kind:      kind,
		Journal:   journal,
		Source:    source,
		CreatedAt: time.Now().UTC(),
		Summary:   Summarize(issues),
		Issues:    issues,
	}
}

// Blocking reports whether the report should fail a submission check.
func (r *Report) Blocking() bool { return r.Summary.Blocking(r.Strict) }

// Text renders the report in the bordered text form, or the pass message
// when there are no issues.
func (r *Report) Text() string {
	if len(r.Issues) == 0 {
		if r.Kind == KindCode {
			return codePassMessage
		}
		return figurePassMessage(r.Journal)
	}
	if r.Kind == KindCode {
		return RenderReport(CodeReportTitle(r.Journal), r.Issues)
	}
	return RenderReport(FigureReportTitle(r.Journal), r.Issues)
}

const codePassMessage = "✅ Code follows best practices!"

func figurePassMessage(journal string) string {
	return fmt.Sprintf("✅ Figure passed all %s checks!", journal)
}
