package io

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/scifig/pkg/audit"
	"github.com/matzehuels/scifig/pkg/figure"
)

func TestReportRoundTrip(t *testing.T) {
	issues := []audit.Issue{
		{Type: audit.LowDPI, Severity: audit.Warning, Message: "Line 3: DPI 72", Suggestion: "Use dpi=600",
			Location: "line 3", AutoFixable: true, Fix: "dpi=600"},
		{Type: audit.MissingStyle, Severity: audit.Info, Message: "m", Suggestion: "s"},
	}
	in := audit.NewReport(audit.KindCode, "Nature", "plot.py", issues)

	var buf bytes.Buffer
	if err := WriteReport(in, &buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"severity": "WARNING"`) {
		t.Errorf("severity not written by name:\n%s", buf.String())
	}

	out, err := ReadReport(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if out.ID != in.ID || out.Journal != "Nature" || out.Source != "plot.py" {
		t.Errorf("header = %+v", out)
	}
	if len(out.Issues) != 2 || out.Issues[0] != issues[0] {
		t.Errorf("issues = %+v", out.Issues)
	}
	if out.Summary != (audit.Summary{Warnings: 1, Infos: 1}) {
		t.Errorf("summary = %+v", out.Summary)
	}
	if !out.CreatedAt.Equal(in.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", out.CreatedAt, in.CreatedAt)
	}
}

func TestReadReportRecomputesSummary(t *testing.T) {
	doc := `{"id":"x","kind":"figure","journal":"Cell","summary":{"errors":9},
		"issues":[{"type":"font_too_small","severity":"ERROR","message":"m","suggestion":"s"}]}`
	r, err := ReadReport(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	if r.Summary.Errors != 1 {
		t.Errorf("Summary.Errors = %d, want 1", r.Summary.Errors)
	}
}

func TestReadReportInvalid(t *testing.T) {
	tests := []string{
		`{`,
		`{"issues":[{"type":"made_up","severity":"INFO"}]}`,
		`{"issues":[{"type":"low_dpi","severity":"CRITICAL"}]}`,
	}
	for _, doc := range tests {
		if _, err := ReadReport(strings.NewReader(doc)); err == nil {
			t.Errorf("ReadReport(%s) succeeded", doc)
		}
	}
}

func TestReportFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	in := audit.NewReport(audit.KindFigure, "Science", "", nil)
	if err := ExportReport(in, path); err != nil {
		t.Fatal(err)
	}
	out, err := ImportReport(path)
	if err != nil {
		t.Fatal(err)
	}
	if out.ID != in.ID || len(out.Issues) != 0 {
		t.Errorf("imported %+v", out)
	}
	if _, err := ImportReport(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func sampleFigure() *figure.Figure {
	fig := figure.New(7, 2.5, 1, 2)
	fig.Suptitle = figure.Text{Text: "Response", Size: 10}
	a, b := fig.Panels[0], fig.Panels[1]
	a.SetTitle("(a)")
	a.SetXLabel("Time (s)")
	a.Plot([]float64{0, 1, 2}, []float64{0, 1, 4}, "quadratic")
	a.AxHLine(2, "red", true)
	a.AddLegend(figure.LocUpperLeft)
	a.SetYLim(-1, 5)
	b.BarChart([]float64{0, 1}, []float64{0.85, -0.08}, 0.6, "")
	b.AddText(figure.Text{Text: "+0.850", X: 0, Y: 0.9, HAlign: figure.AlignCenter, VAlign: figure.AlignBottom})
	fig.AddLegend(&figure.Legend{Entries: []figure.LegendEntry{{Label: "quadratic"}}, Loc: figure.LocLowerCenter,
		Anchor: &figure.Point{X: 0.5, Y: -0.02}, Columns: 3})
	return fig
}

func TestFigureRoundTrip(t *testing.T) {
	in := sampleFigure()

	var buf bytes.Buffer
	if err := WriteFigure(in, &buf); err != nil {
		t.Fatal(err)
	}
	out, err := ReadFigure(&buf)
	if err != nil {
		t.Fatal(err)
	}

	if out.Width != 7 || out.Height != 2.5 || out.Rows != 1 || out.Cols != 2 {
		t.Errorf("size/grid = %v x %v, %dx%d", out.Width, out.Height, out.Rows, out.Cols)
	}
	if out.Suptitle.Text != "Response" {
		t.Errorf("Suptitle = %+v", out.Suptitle)
	}
	a, b := out.Panels[0], out.Panels[1]
	if a.Title.Text != "(a)" || a.XLabel.Text != "Time (s)" || a.YLabel.Text != "" {
		t.Errorf("panel a text = %+v %+v %+v", a.Title, a.XLabel, a.YLabel)
	}
	if len(a.Series) != 2 || a.Series[1].Kind != figure.KindHLine || !a.Series[1].Dashed {
		t.Errorf("panel a series = %+v", a.Series)
	}
	l := a.Legend()
	if l == nil || l.Loc != figure.LocUpperLeft || len(l.Entries) != 1 {
		t.Fatalf("panel a legend = %+v", l)
	}
	if l.Entries[0].Handle != a.Series[0] {
		t.Error("legend entry should link back to its series")
	}
	if lo, hi := a.YLim(); lo != -1 || hi != 5 {
		t.Errorf("YLim = (%v, %v)", lo, hi)
	}
	if bars := b.Series[0].Bars(); len(bars) != 2 || bars[0].Width != 0.6 {
		t.Errorf("bars = %+v", bars)
	}
	if len(b.Texts) != 1 || b.Texts[0].VAlign != figure.AlignBottom {
		t.Errorf("texts = %+v", b.Texts)
	}
	if len(out.Legends) != 1 || out.Legends[0].Anchor.Y != -0.02 || out.Legends[0].Frame {
		t.Errorf("figure legends = %+v", out.Legends)
	}

	// The audit sees the same figure.
	spec := "nature"
	x, _ := audit.NewFigureAuditorFor(spec)
	y, _ := audit.NewFigureAuditorFor(spec)
	if got, want := len(x.Audit(out)), len(y.Audit(in)); got != want {
		t.Errorf("audit of imported figure found %d issues, original %d", got, want)
	}
}

func TestReadFigureDefaults(t *testing.T) {
	doc := `{"width": 3.5, "height": 2, "panels": [
		{"xlabel": {"text": "x"}, "legend": {"labels": ["a"]}},
		{"title": {"text": "t", "size": 20}}
	]}`
	fig, err := ReadFigure(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	if fig.Rows != 1 || fig.Cols != 2 {
		t.Errorf("grid = %dx%d, want 1x2", fig.Rows, fig.Cols)
	}
	p := fig.Panels[0]
	if p.XLabel.Size != 10 {
		t.Errorf("XLabel.Size = %v, want default 10", p.XLabel.Size)
	}
	if l := p.Legend(); l == nil || l.Loc != figure.LocBest || l.Entries[0].Handle != nil || !l.Frame {
		t.Errorf("legend = %+v", l)
	}
	if fig.Panels[1].Title.Size != 20 {
		t.Errorf("Title.Size = %v", fig.Panels[1].Title.Size)
	}
}

func TestReadFigureInvalid(t *testing.T) {
	tests := map[string]string{
		"malformed":     `{"panels": [`,
		"no panels":     `{"width": 7}`,
		"grid mismatch": `{"rows": 2, "cols": 2, "panels": [{}]}`,
		"bad kind":      `{"panels": [{"series": [{"kind": "pie"}]}]}`,
		"bad loc":       `{"panels": [{"legend": {"loc": "middle earth"}}]}`,
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := ReadFigure(strings.NewReader(doc)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestFigureFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fig.json")
	if err := ExportFigure(sampleFigure(), path); err != nil {
		t.Fatal(err)
	}
	fig, err := ImportFigure(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(fig.Panels) != 2 {
		t.Errorf("len(Panels) = %d", len(fig.Panels))
	}
}
