package cli

import (
	"fmt"
	"math"
	"math/rand/v2"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/scifig/pkg/audit"
	"github.com/matzehuels/scifig/pkg/figure"
	scio "github.com/matzehuels/scifig/pkg/io"
	"github.com/matzehuels/scifig/pkg/journal"
	"github.com/matzehuels/scifig/pkg/patterns"
	"github.com/matzehuels/scifig/pkg/render"
	"github.com/matzehuels/scifig/pkg/style"
)

// demoCommand creates the demo command: it builds a figure with common
// defects, audits it, repairs it with the pattern library and saves both
// versions.
func (c *CLI) demoCommand() *cobra.Command {
	var (
		journalName string
		outDir      string
		formats     []string
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Build, audit and fix an example figure",
		Long: `Build a three-panel example figure with typical defects (one legend per
panel, a non-standard width, mixed font sizes), audit it, repair it with the
pattern library and audit it again. Both versions are rendered and written
as JSON figure descriptions.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := style.Set(journalName)
			if err != nil {
				return err
			}
			defer style.Reset()
			if len(formats) == 0 {
				formats = spec.Formats
			}

			before := demoFigureBefore()
			a := audit.NewFigureAuditor(spec)
			a.Audit(before)
			fmt.Fprintln(cmd.OutOrStdout(), a.Report())
			if err := c.saveDemo(before, filepath.Join(outDir, "before"), formats, spec.DPI); err != nil {
				return err
			}

			after := demoFigureAfter(spec)
			a.Audit(after)
			fmt.Fprintln(cmd.OutOrStdout(), a.Report())
			if err := c.saveDemo(after, filepath.Join(outDir, "after"), formats, spec.DPI); err != nil {
				return err
			}

			printSuccess("Demo figures written to %s", outDir)
			return nil
		},
	}
	cmd.Flags().StringVarP(&journalName, "journal", "j", envOr(envJournal, defaultJournal), "target journal")
	cmd.Flags().StringVarP(&outDir, "output", "o", "scifig-demo", "output directory")
	cmd.Flags().StringSliceVar(&formats, "formats", nil, "output formats (default: the journal's formats)")
	_ = cmd.RegisterFlagCompletionFunc("journal", completeJournals)
	return cmd
}

func (c *CLI) saveDemo(fig *figure.Figure, base string, formats []string, dpi int) error {
	paths, err := render.Save(fig, base, formats, dpi)
	if err != nil {
		return err
	}
	if err := scio.ExportFigure(fig, base+".json"); err != nil {
		return err
	}
	for _, p := range append(paths, base+".json") {
		printFile(p)
	}
	c.Logger.Debug("saved demo figure", "base", base, "formats", formats)
	return nil
}

var demoFrequencies = []struct {
	label string
	k     float64
}{
	{"0.1 Hz", 1}, {"1.0 Hz", 2}, {"10.0 Hz", 3},
}

type demoSeries struct {
	x, y, fit []float64
}

// demoData returns deterministic noisy sine series, one per frequency.
func demoData() []demoSeries {
	rng := rand.New(rand.NewPCG(42, 0))
	out := make([]demoSeries, len(demoFrequencies))
	for i, f := range demoFrequencies {
		var s demoSeries
		for j := range 50 {
			x := 10 * float64(j) / 49
			s.x = append(s.x, x)
			s.fit = append(s.fit, math.Sin(f.k*x))
			s.y = append(s.y, math.Sin(f.k*x)+rng.NormFloat64()*0.1)
		}
		out[i] = s
	}
	return out
}

// demoFigureBefore reproduces the usual mistakes: a 10 inch wide figure,
// a legend in every panel and mismatched label sizes.
func demoFigureBefore() *figure.Figure {
	fig := figure.New(10, 3, 1, 3)
	for i, d := range demoData() {
		p := fig.Panels[i]
		p.ColorCycle = []string{"blue", "red", "green"}
		s := p.Scatter(d.x, d.y, "Data")
		s.MarkerSize = 4
		p.Plot(d.x, d.fit, "Fit")
		p.SetXLabel("Time (s)")
		p.XLabel.Size = 12
		p.SetYLabel("Amplitude")
		p.YLabel.Size = 10
		p.SetTitle(demoFrequencies[i].label)
		p.Title.Size = 12 + float64(i)
		p.AddLegend(figure.LocBest)
	}
	return fig
}

// demoFigureAfter builds the same figure with the journal style and the
// pattern library applied.
func demoFigureAfter(spec *journal.Spec) *figure.Figure {
	fig := style.NewFigure(1, 3, journal.WidthDouble, 0.35, spec)
	palette := style.ColorblindPalette(3)

	for i, d := range demoData() {
		p := fig.Panels[i]
		p.ColorCycle = []string{palette[i]}
		s := p.Scatter(d.x, d.y, "Data")
		s.MarkerSize = spec.MarkerSizeData
		fit := p.Plot(d.x, d.fit, "Fit")
		fit.Color = "black"
		fit.LineWidth = spec.LineWidthFit
		p.SetXLabel("Time (s)")
		p.SetYLabel("Amplitude")
		patterns.ApplyTitle(p, demoFrequencies[i].label, spec.FontTitle,
			patterns.KV{Key: "R2", Value: 0.99 - 0.01*float64(i)})
		patterns.AddThreshold(p, 0.8, "limit")
		p.AddLegend(figure.LocUpperRight)
	}

	patterns.UnifyLegend(fig, fig.Panels, patterns.WithColumns(2), patterns.WithFontSize(spec.FontLegend))
	patterns.PanelLetters(fig.Panels)
	return fig
}
