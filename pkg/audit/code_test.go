package audit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/scifig/pkg/errors"
)

// styled prefixes src with the style entry point so only the rule under
// test fires.
func styled(src string) string { return "from sci_figure_toolkit import set_style\n" + src }

func TestCodeDPI(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want int
	}{
		{"low", "plt.savefig('f.png', dpi=72)\nplt.tight_layout()", 1},
		{"publication", "plt.savefig('f.png', dpi=600)\nplt.tight_layout()", 0},
		{"boundary", "fig = plt.figure(dpi = 300)", 0},
		{"two lines", "a(dpi=100)\nb(dpi=150)", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := ofType(NewCodeAuditor(nature()).Audit(styled(tt.src)), LowDPI)
			if len(issues) != tt.want {
				t.Fatalf("got %d low_dpi issues, want %d: %v", len(issues), tt.want, issues)
			}
			for _, i := range issues {
				if i.Severity != Warning || !i.AutoFixable || i.Suggestion != "Use dpi=600 for publication quality" {
					t.Errorf("issue = %+v", i)
				}
			}
		})
	}

	issues := ofType(NewCodeAuditor(nature()).Audit("x = 1\nsave(dpi=72)"), LowDPI)
	if len(issues) != 1 || issues[0].Location != "line 2" || issues[0].Message != "Line 2: DPI 72 is too low for publication" {
		t.Errorf("issues = %v", issues)
	}
}

func TestCodeLegendCalls(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		wantIssue bool
		wantLines string
	}{
		{"none", "fig.legend(handles, labels)", false, ""},
		{"one", "ax.legend()", false, ""},
		// Line numbers count the style import added by styled.
		{"two", "ax1.legend()\nx = 1\nax2.legend(loc='best')", true, "2, 4"},
		{"indexed", "axes[0].legend()\naxs[1].legend()\naxes[0, 1].legend ()", true, "2, 3, 4"},
		{"same line once", "ax.legend(); ax.legend()", false, ""},
		{"not an axes", "max.legend()\nrelax.legend()", false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := ofType(NewCodeAuditor(nature()).Audit(styled(tt.src)), InefficientLegend)
			if !tt.wantIssue {
				if len(issues) != 0 {
					t.Errorf("unexpected issues: %v", issues)
				}
				return
			}
			if len(issues) != 1 {
				t.Fatalf("got %d inefficient_legend issues, want 1", len(issues))
			}
			if !strings.HasSuffix(issues[0].Message, "lines: "+tt.wantLines) || issues[0].Severity != Info {
				t.Errorf("issue = %+v, want lines %s", issues[0], tt.wantLines)
			}
		})
	}
}

func TestCodeFigsize(t *testing.T) {
	tests := []struct {
		src  string
		want int
	}{
		{"fig, ax = plt.subplots(figsize=(7.0, 3))", 0},
		{"fig, ax = plt.subplots(figsize=(3.5,2.5))", 0},
		{"fig, ax = plt.subplots(figsize=(10, 6))", 1},
		{"fig, ax = plt.subplots(figsize = ( 6.2 , 4.0 ))", 1},
		{"fig, ax = plt.subplots(figsize=(w, h))", 0},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			issues := ofType(NewCodeAuditor(nature()).Audit(styled(tt.src)), HardcodedSize)
			if len(issues) != tt.want {
				t.Fatalf("got %v", issues)
			}
			for _, i := range issues {
				if i.Severity != Info || !i.AutoFixable || i.Fix != "" || i.Location != "line 2" {
					t.Errorf("issue = %+v", i)
				}
			}
		})
	}
}

func TestCodeStyleEntryPoint(t *testing.T) {
	for _, src := range []string{"import scifig", "from sci_figure_toolkit import *", "set_style('cell')"} {
		if issues := ofType(NewCodeAuditor(nature()).Audit(src), MissingStyle); len(issues) != 0 {
			t.Errorf("%q flagged: %v", src, issues)
		}
	}
	issues := ofType(NewCodeAuditor(nature()).Audit("import matplotlib.pyplot as plt"), MissingStyle)
	if len(issues) != 1 || issues[0].Severity != Info || !issues[0].AutoFixable || !strings.Contains(issues[0].Fix, "set_style('nature')") {
		t.Errorf("issues = %v", issues)
	}
}

func TestCodeTightLayout(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want bool
	}{
		{"no save", "plt.plot(x)", false},
		{"save without layout", "plt.plot(x)\nplt.savefig('a.pdf')", true},
		{"fig save without layout", "fig.savefig('a.pdf')", true},
		{"tight", "plt.tight_layout()\nplt.savefig('a.pdf')", false},
		{"constrained", "fig, ax = plt.subplots(constrained_layout=True)\nfig.savefig('a.pdf')", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := ofType(NewCodeAuditor(nature()).Audit(styled(tt.src)), MissingTightLayout)
			if (len(issues) == 1) != tt.want {
				t.Fatalf("issues = %v", issues)
			}
			if tt.want && (issues[0].Severity != Warning || issues[0].Fix != "plt.tight_layout()") {
				t.Errorf("issue = %+v", issues[0])
			}
		})
	}
}

const badScript = `import matplotlib.pyplot as plt

fig, axes = plt.subplots(1, 3, figsize=(12, 4))
for ax in axes:
    ax.plot([0, 1], [0, 1], label="data")
    ax.legend()
axes[0].legend()
plt.savefig("out.png", dpi=150)
`

func TestCodeAuditorOrderAndReport(t *testing.T) {
	a := NewCodeAuditor(nature())
	issues := a.Audit(badScript)

	var types []string
	for _, i := range issues {
		types = append(types, string(i.Type))
	}
	want := "hardcoded_size,low_dpi,inefficient_legend,missing_style,missing_tight_layout"
	if strings.Join(types, ",") != want {
		t.Errorf("types = %v, want %s", types, want)
	}
	if !strings.Contains(issues[2].Message, "lines: 6, 7") {
		t.Errorf("legend message = %q", issues[2].Message)
	}

	report := a.Report()
	if !strings.Contains(report, "CODE AUDIT REPORT (Nature)") {
		t.Errorf("report title missing:\n%s", report)
	}
	if strings.Index(report, "low_dpi") > strings.Index(report, "hardcoded_size") {
		t.Error("warnings must be listed before infos")
	}
	if got := len(a.FixSuggestions()); got != 3 {
		t.Errorf("FixSuggestions() = %d, want 3", got)
	}

	clean := NewCodeAuditor(nature())
	clean.Audit("import scifig\n")
	if clean.Report() != "✅ Code follows best practices!" {
		t.Errorf("Report() = %q", clean.Report())
	}
}

func TestAuditFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plot.py")
	if err := os.WriteFile(path, []byte(badScript), 0o644); err != nil {
		t.Fatal(err)
	}
	a := NewCodeAuditor(nature())
	fromFile, err := a.AuditFile(path)
	if err != nil {
		t.Fatal(err)
	}
	fromReader, err := a.AuditReader(strings.NewReader(badScript))
	if err != nil {
		t.Fatal(err)
	}
	if len(fromFile) != len(fromReader) || len(fromFile) != len(a.Audit(badScript)) {
		t.Error("file, reader and string audits must agree")
	}

	_, err = a.AuditFile(filepath.Join(t.TempDir(), "missing.py"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestCodeStrict(t *testing.T) {
	a := NewCodeAuditor(nature(), Strict())
	a.Audit(styled("plt.savefig('x', dpi=72)"))
	if !a.Blocking() {
		t.Error("warnings should block in strict mode")
	}
	b := NewCodeAuditor(nature())
	b.Audit(styled("plt.savefig('x', dpi=72)"))
	if b.Blocking() {
		t.Error("warnings should not block by default")
	}
}
