package style

import (
	"testing"

	"github.com/matzehuels/scifig/pkg/figure"
	"github.com/matzehuels/scifig/pkg/journal"
)

func TestParamsFor(t *testing.T) {
	spec := journal.Default.MustGet("nature")
	tests := []struct {
		ctx       string
		wantLabel float64
	}{
		{"paper", 9},
		{"notebook", 10.8},
		{"talk", 13.5},
		{"poster", 18},
		{"unknown", 9},
	}
	for _, tt := range tests {
		t.Run(tt.ctx, func(t *testing.T) {
			p := ParamsFor(spec, tt.ctx, false)
			if diff := p.LabelSize - tt.wantLabel; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("LabelSize = %v, want %v", p.LabelSize, tt.wantLabel)
			}
			if p.SaveDPI != 600 || p.FigureDPI != 100 {
				t.Errorf("dpi = %d/%d", p.SaveDPI, p.FigureDPI)
			}
			if p.TickDirection != "out" || p.MajorTickLen != 4 || p.MinorTickLen != 2 {
				t.Errorf("ticks = %s %v %v", p.TickDirection, p.MajorTickLen, p.MinorTickLen)
			}
		})
	}

	p := ParamsFor(spec, "paper", true)
	p.ColorCycle[0] = "#ffffff"
	if spec.ColorCycle[0] == "#ffffff" {
		t.Error("ParamsFor must not alias the spec colour cycle")
	}
	if !p.UseTeX {
		t.Error("UseTeX not set")
	}
}

func TestSetAndReset(t *testing.T) {
	t.Cleanup(Reset)

	spec, err := Set("science", WithContext("talk"))
	if err != nil {
		t.Fatal(err)
	}
	if spec.Name != "Science" {
		t.Errorf("Set returned %q", spec.Name)
	}
	if got := Current().TitleSize; got != 12 {
		t.Errorf("TitleSize = %v, want 12 (8pt * 1.5)", got)
	}

	if _, err := Set("nope"); err == nil {
		t.Error("expected lookup error")
	}
	if got := Current().TitleSize; got != 12 {
		t.Error("failed Set must not change the current style")
	}

	Reset()
	if got := Current().TitleSize; got != 9 {
		t.Errorf("after Reset TitleSize = %v, want 9", got)
	}
}

func TestSetWithRegistry(t *testing.T) {
	t.Cleanup(Reset)

	r := journal.NewRegistry()
	d := journal.Defaults()
	r.Register("tiny", d.With(func(s *journal.Spec) {
		s.Name = "Tiny"
		s.FontTitle = 5
	}))
	if _, err := Set("tiny", WithRegistry(r)); err != nil {
		t.Fatal(err)
	}
	if got := Current().TitleSize; got != 5 {
		t.Errorf("TitleSize = %v, want 5", got)
	}
}

func TestFigureSize(t *testing.T) {
	spec := journal.Default.MustGet("nature")
	tests := []struct {
		width      string
		ratio      float64
		rows, cols int
		wantW      float64
		wantH      float64
	}{
		{"double", 0.6, 1, 1, 7.0, 4.2},
		{"double", 0.6, 1, 2, 7.0, 2.1},
		{"single", 1.0, 2, 1, 3.5, 7.0},
		{"double", 1.0, 3, 1, 7.0, 9.0}, // clamped
	}
	for _, tt := range tests {
		w, h := FigureSize(spec, tt.width, tt.ratio, tt.rows, tt.cols)
		if w != tt.wantW || (h-tt.wantH) > 1e-9 || (tt.wantH-h) > 1e-9 {
			t.Errorf("FigureSize(%s, %v, %d, %d) = (%v, %v), want (%v, %v)",
				tt.width, tt.ratio, tt.rows, tt.cols, w, h, tt.wantW, tt.wantH)
		}
	}
}

func TestNewFigureUsesCurrentStyle(t *testing.T) {
	t.Cleanup(Reset)

	spec := Cell()
	fig := NewFigure(1, 2, "single", 0.6, spec)
	if fig.Width != 3.35 {
		t.Errorf("Width = %v, want 3.35", fig.Width)
	}
	for i, p := range fig.Panels {
		if p.Title.Size != 8 || p.XLabel.Size != 8 || p.TickSize != 7 {
			t.Errorf("panel %d sizes = %v/%v/%v", i, p.Title.Size, p.XLabel.Size, p.TickSize)
		}
		if len(p.ColorCycle) != 8 {
			t.Errorf("panel %d colour cycle = %v", i, p.ColorCycle)
		}
	}
}

func TestApplyToFigure(t *testing.T) {
	fig := figure.New(7, 3, 1, 2)
	for _, p := range fig.Panels {
		p.Title.Size = 16
		p.Plot([]float64{0, 1}, []float64{2, 3}, "data")
		p.AddLegend(figure.LocUpperRight)
	}
	spec := journal.Default.MustGet("ieee")

	ApplyToFigure(fig, spec, fig.Panels[0])

	first, second := fig.Panels[0], fig.Panels[1]
	if first.Title.Size != 10 || first.XLabel.Size != 10 || first.TickSize != 9 {
		t.Errorf("first panel not restyled: %+v", first.Title)
	}
	if first.Legend().FontSize != 9 {
		t.Errorf("legend font = %v, want 9", first.Legend().FontSize)
	}
	if second.Title.Size != 16 {
		t.Error("only the requested panel should be restyled")
	}
	if y := first.Series[0].Y; y[0] != 2 || y[1] != 3 {
		t.Error("series data must not change")
	}
	if fig.FontFamily != "serif" {
		t.Errorf("FontFamily = %q", fig.FontFamily)
	}

	ApplyToFigure(fig, spec)
	if second.Title.Size != 10 {
		t.Error("no panels argument should restyle every panel")
	}
}

func TestColorblindPalette(t *testing.T) {
	if got := ColorblindPalette(3); len(got) != 3 || got[0] != "#0072B2" {
		t.Errorf("ColorblindPalette(3) = %v", got)
	}
	if got := ColorblindPalette(20); len(got) != 8 {
		t.Errorf("ColorblindPalette(20) returned %d colours", len(got))
	}
	if got := ColorblindPalette(-1); len(got) != 0 {
		t.Errorf("ColorblindPalette(-1) = %v", got)
	}
	p := ColorblindPalette(1)
	p[0] = "#ffffff"
	if wong[0] != "#0072B2" {
		t.Error("palette must be copied")
	}
}
