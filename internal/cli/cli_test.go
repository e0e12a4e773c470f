package cli

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/scifig/pkg/audit"
	"github.com/matzehuels/scifig/pkg/errors"
	scio "github.com/matzehuels/scifig/pkg/io"
	"github.com/matzehuels/scifig/pkg/journal"
)

const (
	cleanScript = `import scifig
import matplotlib.pyplot as plt

fig, ax = plt.subplots()
ax.plot([1, 2, 3])
plt.tight_layout()
plt.savefig("out.pdf", dpi=300)
`
	lowDPIScript = `import scifig
import matplotlib.pyplot as plt

fig, ax = plt.subplots()
ax.plot([1, 2, 3])
plt.tight_layout()
plt.savefig("out.png", dpi=72)
`
)

// isolate points every directory the CLI touches at t's temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv(envJournal, "")
	t.Setenv(envJournals, "")
	t.Setenv(envRedisURL, "")
	return dir
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := New(io.Discard, LogInfo).RootCommand()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(io.Discard)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestAuditCommand(t *testing.T) {
	dir := isolate(t)
	clean := writeFile(t, dir, "clean.py", cleanScript)
	lowDPI := writeFile(t, dir, "low_dpi.py", lowDPIScript)

	tests := []struct {
		name     string
		args     []string
		wantCode errors.Code
		wantExit bool
		contains string
	}{
		{"clean script", []string{"audit", clean, "--no-cache"}, "", false, "No issues found"},
		{"warning passes", []string{"audit", lowDPI, "--no-cache"}, "", false, "[LOW_DPI]"},
		{"strict blocks warnings", []string{"audit", lowDPI, "--no-cache", "--strict"}, "", true, "WARNINGS (1):"},
		{"report format", []string{"audit", lowDPI, "--no-cache", "-f", "report"}, "", false, "low_dpi"},
		{"missing file", []string{"audit", filepath.Join(dir, "nope.py")}, errors.ErrCodeFileNotFound, false, ""},
		{"no file", []string{"audit"}, errors.ErrCodeInvalidInput, false, ""},
		{"bad format", []string{"audit", clean, "-f", "xml"}, errors.ErrCodeInvalidFormat, false, ""},
		{"unknown journal", []string{"audit", clean, "-j", "unknown"}, errors.ErrCodeJournalNotFound, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)

			var exit *ExitError
			switch {
			case tt.wantCode != "":
				if got := errors.GetCode(err); got != tt.wantCode {
					t.Fatalf("error code = %q (%v), want %q", got, err, tt.wantCode)
				}
			case tt.wantExit:
				if !stderrors.As(err, &exit) || exit.Code != 1 {
					t.Fatalf("error = %v, want exit status 1", err)
				}
			case err != nil:
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.contains != "" && !strings.Contains(out, tt.contains) {
				t.Errorf("output missing %q:\n%s", tt.contains, out)
			}
		})
	}
}

func TestAuditJSONOutput(t *testing.T) {
	dir := isolate(t)
	src := writeFile(t, dir, "low_dpi.py", lowDPIScript)
	reportPath := filepath.Join(dir, "report.json")

	out, err := execute(t, "audit", src, "--no-cache", "-f", "json", "-j", "science", "-o", reportPath)
	if err != nil {
		t.Fatalf("audit: %v", err)
	}

	rep, err := scio.ReadReport(strings.NewReader(out))
	if err != nil {
		t.Fatalf("stdout is not a report: %v", err)
	}
	if rep.Kind != audit.KindCode || rep.Journal != "Science" || rep.Source != src {
		t.Errorf("report = %s/%s/%s", rep.Kind, rep.Journal, rep.Source)
	}
	if rep.Summary.Warnings == 0 {
		t.Error("expected a low DPI warning")
	}

	saved, err := scio.ImportReport(reportPath)
	if err != nil {
		t.Fatalf("ImportReport: %v", err)
	}
	if saved.ID != rep.ID {
		t.Errorf("saved report ID = %s, want %s", saved.ID, rep.ID)
	}
}

func TestAuditCachedReport(t *testing.T) {
	dir := isolate(t)
	src := writeFile(t, dir, "low_dpi.py", lowDPIScript)

	var ids []string
	for range 2 {
		out, err := execute(t, "audit", src, "-f", "json")
		if err != nil {
			t.Fatalf("audit: %v", err)
		}
		rep, err := scio.ReadReport(strings.NewReader(out))
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, rep.ID)
	}
	if ids[0] != ids[1] {
		t.Errorf("second run produced a new report %s, want cached %s", ids[1], ids[0])
	}

	out, err := execute(t, "cache", "path")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "cache", appName); strings.TrimSpace(out) != want {
		t.Errorf("cache path = %q, want %q", out, want)
	}
}

func TestAuditListJournals(t *testing.T) {
	isolate(t)
	out, err := execute(t, "audit", "--list-journals")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Available Journal Standards:", "  - Nature", "  - Science"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestJournalsCommand(t *testing.T) {
	isolate(t)

	out, err := execute(t, "journals")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range journal.List() {
		if !strings.Contains(out, name) {
			t.Errorf("table missing %q", name)
		}
	}

	out, err = execute(t, "journals", "nature")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Nature") {
		t.Errorf("spec output missing journal name:\n%s", out)
	}

	if _, err := execute(t, "journals", "unknown"); errors.GetCode(err) != errors.ErrCodeJournalNotFound {
		t.Errorf("error = %v, want JOURNAL_NOT_FOUND", err)
	}
}

func TestCustomJournalsFile(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "journals.toml", `
[[journal]]
key = "my-journal"
name = "My Journal"
width_single = 3.0
width_double = 6.0
dpi = 600
`)

	out, err := execute(t, "--journals-file", path, "journals", "--names")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "My Journal") {
		t.Errorf("custom journal not listed:\n%s", out)
	}
}

func TestAuditCacheFollowsJournalEdits(t *testing.T) {
	dir := isolate(t)
	src := writeFile(t, dir, "plot.py", `import scifig
fig, ax = plt.subplots(figsize=(4.0, 3))
plt.tight_layout()
`)
	journalsFile := func(name string, widthSingle string) string {
		return writeFile(t, dir, name, `
[[journal]]
key = "edited"
name = "Edited Journal"
width_single = `+widthSingle+`
width_1_5col = 5.0
width_double = 6.5
`)
	}
	wide := journalsFile("wide.toml", "4.0")
	narrow := journalsFile("narrow.toml", "3.0")

	hardcoded := func(journals string, extra ...string) bool {
		t.Helper()
		args := append([]string{"audit", src, "-j", "edited", "-f", "json", "--journals-file", journals}, extra...)
		out, err := execute(t, args...)
		if err != nil {
			t.Fatalf("audit %v: %v", args, err)
		}
		rep, err := scio.ReadReport(strings.NewReader(out))
		if err != nil {
			t.Fatal(err)
		}
		for _, is := range rep.Issues {
			if is.Type == audit.HardcodedSize {
				return true
			}
		}
		return false
	}

	if hardcoded(wide) {
		t.Fatal("4.0 inches matches the single column width of the first definition")
	}
	if !hardcoded(narrow) {
		t.Error("edited journal served the report cached for its old widths")
	}
	if !hardcoded(narrow, "--no-cache") {
		t.Error("uncached audit against the edited journal missed the hardcoded size")
	}
}

func TestFigureCommandFix(t *testing.T) {
	dir := isolate(t)
	in := filepath.Join(dir, "figure.json")
	if err := scio.ExportFigure(demoFigureBefore(), in); err != nil {
		t.Fatal(err)
	}
	fixed := filepath.Join(dir, "fixed.json")

	out, err := execute(t, "figure", in, "--fix", "--fixed-output", fixed, "-f", "json")
	var exit *ExitError
	if err != nil && !stderrors.As(err, &exit) {
		t.Fatalf("figure: %v", err)
	}

	rep, err := scio.ReadReport(strings.NewReader(out))
	if err != nil {
		t.Fatal(err)
	}
	for _, is := range rep.Issues {
		if is.Type == audit.RedundantLegend || is.Type == audit.NonStandardSize {
			t.Errorf("issue %s survived --fix", is.Type)
		}
	}

	fig, err := scio.ImportFigure(fixed)
	if err != nil {
		t.Fatal(err)
	}
	if len(fig.Legends) != 1 {
		t.Errorf("figure legends = %d, want 1", len(fig.Legends))
	}
	for i, p := range fig.Panels {
		if p.Legend() != nil {
			t.Errorf("panel %d still has a legend", i)
		}
	}
	spec := journal.Default.MustGet("nature")
	if !spec.MatchesStandardWidth(fig.Width) {
		t.Errorf("width %.2f is not a standard width", fig.Width)
	}
}

func TestFigureCommandMissingFile(t *testing.T) {
	dir := isolate(t)
	_, err := execute(t, "figure", filepath.Join(dir, "missing.json"))
	if errors.GetCode(err) != errors.ErrCodeFileNotFound {
		t.Errorf("error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestAutofix(t *testing.T) {
	spec := journal.Default.MustGet("nature")
	fig := demoFigureBefore()

	a := audit.NewFigureAuditor(spec)
	applied := autofix(fig, spec, a.Audit(fig))

	want := map[string]bool{"unified legend": true, "journal font sizes": true, "standard size": true}
	for _, fix := range applied {
		delete(want, fix)
	}
	for fix := range want {
		t.Errorf("fix %q not applied (applied: %v)", fix, applied)
	}
	if fig.Height > spec.MaxHeight {
		t.Errorf("height %.2f exceeds max %.2f", fig.Height, spec.MaxHeight)
	}
}

func TestDemoFigures(t *testing.T) {
	spec := journal.Default.MustGet("nature")

	before := audit.NewFigureAuditor(spec)
	before.Audit(demoFigureBefore())
	after := audit.NewFigureAuditor(spec)
	after.Audit(demoFigureAfter(spec))

	count := func(issues []audit.Issue, typ audit.IssueType) int {
		n := 0
		for _, is := range issues {
			if is.Type == typ {
				n++
			}
		}
		return n
	}

	for _, typ := range []audit.IssueType{audit.RedundantLegend, audit.NonStandardSize} {
		if count(before.Issues(), typ) == 0 {
			t.Errorf("demo figure should show %s before fixing", typ)
		}
		if count(after.Issues(), typ) != 0 {
			t.Errorf("demo figure still shows %s after fixing", typ)
		}
	}
}

func TestDemoCommand(t *testing.T) {
	dir := isolate(t)
	out := filepath.Join(dir, "demo")

	if _, err := execute(t, "demo", "-o", out, "--formats", "svg"); err != nil {
		t.Fatalf("demo: %v", err)
	}
	for _, name := range []string{"before.svg", "before.json", "after.svg", "after.json"} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
}

func TestIssueListModel(t *testing.T) {
	rep := &audit.Report{
		Kind:    audit.KindFigure,
		Journal: "Nature",
		Issues: []audit.Issue{
			{Type: audit.RedundantLegend, Severity: audit.Warning, Message: "3 panels have legends", Suggestion: "Use one legend"},
			{Type: audit.LowDPI, Severity: audit.Error, Message: "DPI too low", Fix: "dpi=300"},
		},
	}

	var m tea.Model = newIssueListModel(rep)
	key := func(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

	m, _ = m.Update(key("j"))
	m, _ = m.Update(key("j"))
	if got := m.(IssueListModel).Cursor; got != 1 {
		t.Errorf("cursor = %d, want 1 (clamped)", got)
	}

	if strings.Contains(m.View(), "dpi=300") {
		t.Error("fix shown before expanding")
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	view := m.View()
	for _, want := range []string{"LOW_DPI", "DPI too low", "dpi=300"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	if _, cmd := m.Update(key("q")); cmd == nil {
		t.Error("q should quit")
	}
}
