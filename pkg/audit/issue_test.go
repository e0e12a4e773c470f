package audit

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestSeverityOrder(t *testing.T) {
	if !(Info.Compare(Warning) < 0 && Warning.Compare(Error) < 0 && Error.Compare(Info) > 0) {
		t.Error("severity order must be Info < Warning < Error")
	}
	if Error.Compare(Error) != 0 {
		t.Error("Compare with itself must be 0")
	}
	for _, s := range []Severity{Info, Warning, Error} {
		got, err := ParseSeverity(strings.ToLower(s.String()))
		if err != nil || got != s {
			t.Errorf("ParseSeverity(%q) = %v, %v", s, got, err)
		}
	}
	if _, err := ParseSeverity("fatal"); err == nil {
		t.Error("expected error for unknown severity")
	}
}

func TestIssueTypeNames(t *testing.T) {
	if got := RedundantLegend.Name(); got != "REDUNDANT_LEGEND" {
		t.Errorf("Name() = %q", got)
	}
	for _, it := range IssueTypes() {
		for _, form := range []string{string(it), it.Name()} {
			got, err := ParseIssueType(form)
			if err != nil || got != it {
				t.Errorf("ParseIssueType(%q) = %v, %v", form, got, err)
			}
		}
	}
	if _, err := ParseIssueType("sloppy_axes"); err == nil {
		t.Error("expected error for unknown issue type")
	}
	if len(IssueTypes()) != 19 {
		t.Errorf("taxonomy has %d members, want 19", len(IssueTypes()))
	}
}

func TestIssueString(t *testing.T) {
	tests := []struct {
		name  string
		issue Issue
		want  string
	}{
		{
			name: "full",
			issue: Issue{
				Type: MissingLabels, Severity: Warning,
				Message: "Subplot 0: missing x-axis label", Suggestion: "Add a label",
				Location: "subplot 0", AutoFixable: true,
			},
			want: "⚠️ [WARNING] missing_labels [subplot 0] (auto-fixable)\n   Subplot 0: missing x-axis label\n   → Add a label",
		},
		{
			name:  "bare",
			issue: Issue{Type: FontTooSmall, Severity: Error, Message: "m", Suggestion: "s"},
			want:  "❌ [ERROR] font_too_small\n   m\n   → s",
		},
		{
			name:  "info",
			issue: Issue{Type: LowDPI, Severity: Info, Message: "m", Suggestion: "s", Location: "line 3"},
			want:  "ℹ️ [INFO] low_dpi [line 3]\n   m\n   → s",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.issue.String(); got != tt.want {
				t.Errorf("String() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestIssueJSON(t *testing.T) {
	in := Issue{Type: LowDPI, Severity: Warning, Message: "m", Suggestion: "s", Fix: "dpi=600", AutoFixable: true}
	b, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), `"severity":"WARNING"`) || !strings.Contains(string(b), `"type":"low_dpi"`) {
		t.Errorf("json = %s", b)
	}
	var out Issue
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatal(err)
	}
	if out != in {
		t.Errorf("decoded %+v, want %+v", out, in)
	}

	if err := json.Unmarshal([]byte(`{"type":"nope","severity":"INFO"}`), &out); err == nil {
		t.Error("expected error for unknown type")
	}
}

func TestSortBySeverity(t *testing.T) {
	issues := []Issue{
		{Severity: Info, Message: "i1"},
		{Severity: Warning, Message: "w1"},
		{Severity: Error, Message: "e1"},
		{Severity: Info, Message: "i2"},
		{Severity: Warning, Message: "w2"},
	}
	sorted := SortBySeverity(issues)
	var got []string
	for _, i := range sorted {
		got = append(got, i.Message)
	}
	if strings.Join(got, ",") != "e1,w1,w2,i1,i2" {
		t.Errorf("order = %v", got)
	}
	if issues[0].Message != "i1" {
		t.Error("SortBySeverity must not reorder its input")
	}
}

func TestSummaryBlocking(t *testing.T) {
	tests := []struct {
		s      Summary
		strict bool
		want   bool
	}{
		{Summary{}, false, false},
		{Summary{Infos: 3}, true, false},
		{Summary{Warnings: 1}, false, false},
		{Summary{Warnings: 1}, true, true},
		{Summary{Errors: 1}, false, true},
	}
	for _, tt := range tests {
		if got := tt.s.Blocking(tt.strict); got != tt.want {
			t.Errorf("%+v.Blocking(%v) = %v", tt.s, tt.strict, got)
		}
	}
}

func TestRenderReport(t *testing.T) {
	issues := []Issue{
		{Type: LegendOcclusion, Severity: Info, Message: "info", Suggestion: "s"},
		{Type: FontTooSmall, Severity: Error, Message: "error", Suggestion: "s"},
		{Type: MissingLabels, Severity: Warning, Message: "warning", Suggestion: "s"},
	}
	got := RenderReport(FigureReportTitle("Nature"), issues)

	border := strings.Repeat("=", 70)
	if !strings.HasPrefix(got, "\n"+border+"\nFIGURE AUDIT REPORT (Nature Standards)\n"+border+"\n") {
		t.Errorf("bad header:\n%s", got)
	}
	if !strings.HasSuffix(got, "\n"+border) {
		t.Error("report must end with a border")
	}
	if !strings.Contains(got, "Found 3 issues: 1 errors, 1 warnings, 1 infos") {
		t.Errorf("missing summary line:\n%s", got)
	}
	e, w, i := strings.Index(got, "   error"), strings.Index(got, "   warning"), strings.Index(got, "   info")
	if !(e < w && w < i) || e < 0 {
		t.Errorf("issues not ordered errors, warnings, infos: %d %d %d", e, w, i)
	}
}

func TestReport(t *testing.T) {
	r := NewReport(KindCode, "Nature", "plot.py", nil)
	if r.ID == "" || r.Issues == nil {
		t.Errorf("NewReport = %+v", r)
	}
	if r.Text() != "✅ Code follows best practices!" {
		t.Errorf("Text() = %q", r.Text())
	}
	other := NewReport(KindFigure, "Cell", "", nil)
	if other.ID == r.ID {
		t.Error("report IDs must be unique")
	}
	if other.Text() != "✅ Figure passed all Cell checks!" {
		t.Errorf("Text() = %q", other.Text())
	}

	w := NewReport(KindCode, "Nature", "", []Issue{{Type: LowDPI, Severity: Warning, Message: "m", Suggestion: "s"}})
	if w.Blocking() {
		t.Error("warning should not block by default")
	}
	w.Strict = true
	if !w.Blocking() {
		t.Error("warning should block in strict mode")
	}
	if !strings.Contains(w.Text(), "CODE AUDIT REPORT (Nature)") {
		t.Errorf("Text() = %s", w.Text())
	}
}
