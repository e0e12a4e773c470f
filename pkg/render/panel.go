package render

import (
	"fmt"
	"image/color"
	"math"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	"github.com/matzehuels/scifig/pkg/figure"
)

var dashes = []vg.Length{vg.Points(4), vg.Points(2)}

// thumbs maps series to the plotters drawn for them so figure legends can
// reuse the same swatches.
type thumbs map[*figure.Series]plot.Thumbnailer

// panelPlot converts one panel into a plot. Limits are fixed to the
// panel's limits so axes-fraction text positions resolve the same way they
// would in the figure model.
func panelPlot(p *figure.Panel, family string, th thumbs) (*plot.Plot, error) {
	pl := plot.New()

	setText(&pl.Title.TextStyle, p.Title, family)
	pl.Title.Text = p.Title.Text
	setText(&pl.X.Label.TextStyle, p.XLabel, family)
	pl.X.Label.Text = p.XLabel.Text
	setText(&pl.Y.Label.TextStyle, p.YLabel, family)
	pl.Y.Label.Text = p.YLabel.Text

	for _, ax := range []*plot.Axis{&pl.X, &pl.Y} {
		ax.Tick.Label.Font.Size = vg.Points(p.TickSize)
		ax.LineStyle.Width = vg.Points(p.SpineWidth)
		ax.Tick.LineStyle.Width = vg.Points(p.SpineWidth)
	}

	pl.X.Min, pl.X.Max = p.XLim()
	pl.Y.Min, pl.Y.Max = p.YLim()

	for _, s := range p.Series {
		ps, err := seriesPlotters(s, pl)
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", s.Label, err)
		}
		pl.Add(ps...)
		if len(ps) > 0 {
			th[s] = ps[0].(plot.Thumbnailer)
		}
	}

	for _, t := range p.Texts {
		l, err := textLabel(t, pl, family)
		if err != nil {
			return nil, err
		}
		pl.Add(l)
	}

	if l := p.Legend(); l != nil {
		pl.Legend.Top = l.Loc.Upper() || l.Loc == figure.LocCenter
		pl.Legend.Left = l.Loc == figure.LocUpperLeft || l.Loc == figure.LocLowerLeft || l.Loc == figure.LocCenterLeft
		if l.FontSize > 0 {
			pl.Legend.TextStyle.Font.Size = vg.Points(l.FontSize)
		}
		for _, e := range l.Entries {
			if t, ok := th[e.Handle]; ok {
				pl.Legend.Add(e.Label, t)
			} else {
				pl.Legend.Add(e.Label)
			}
		}
	}
	return pl, nil
}

// seriesPlotters returns the plotters drawing s. The first one, when
// present, doubles as the legend thumbnail.
func seriesPlotters(s *figure.Series, pl *plot.Plot) ([]plot.Plotter, error) {
	c := colorOr(s.Color, color.Black)

	switch s.Kind {
	case figure.KindScatter:
		sc, err := plotter.NewScatter(xys(s.X, s.Y))
		if err != nil {
			return nil, err
		}
		sc.GlyphStyle.Color = c
		sc.GlyphStyle.Radius = vg.Points(s.MarkerSize / 2)
		return []plot.Plotter{sc}, nil

	case figure.KindBar:
		var out []plot.Plotter
		for _, b := range s.Bars() {
			poly, err := plotter.NewPolygon(plotter.XYs{
				{X: b.X, Y: 0}, {X: b.X + b.Width, Y: 0},
				{X: b.X + b.Width, Y: b.Height}, {X: b.X, Y: b.Height},
			})
			if err != nil {
				return nil, err
			}
			poly.Color = c
			poly.LineStyle.Width = 0
			out = append(out, poly)
		}
		return out, nil

	case figure.KindHLine, figure.KindVLine:
		var pts plotter.XYs
		if s.Kind == figure.KindHLine && len(s.Y) > 0 {
			pts = plotter.XYs{{X: pl.X.Min, Y: s.Y[0]}, {X: pl.X.Max, Y: s.Y[0]}}
		} else if len(s.X) > 0 {
			pts = plotter.XYs{{X: s.X[0], Y: pl.Y.Min}, {X: s.X[0], Y: pl.Y.Max}}
		} else {
			return nil, nil
		}
		return lineOf(pts, c, s)

	default:
		return lineOf(xys(s.X, s.Y), c, s)
	}
}

func lineOf(pts plotter.XYs, c color.Color, s *figure.Series) ([]plot.Plotter, error) {
	if len(pts) == 0 {
		return nil, nil
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	l.LineStyle.Color = c
	l.LineStyle.Width = vg.Points(s.LineWidth)
	if s.Dashed {
		l.LineStyle.Dashes = dashes
	}
	return []plot.Plotter{l}, nil
}

func xys(x, y []float64) plotter.XYs {
	n := min(len(x), len(y))
	pts := make(plotter.XYs, 0, n)
	for i := range n {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		pts = append(pts, plotter.XY{X: x[i], Y: y[i]})
	}
	return pts
}

// textLabel places an annotation in data coordinates, converting axes
// fractions through the plot limits.
func textLabel(t *figure.Text, pl *plot.Plot, family string) (*plotter.Labels, error) {
	x, y := t.X, t.Y
	fx := func(f float64) float64 { return pl.X.Min + f*(pl.X.Max-pl.X.Min) }
	fy := func(f float64) float64 { return pl.Y.Min + f*(pl.Y.Max-pl.Y.Min) }
	switch t.Coords {
	case figure.CoordsAxes:
		x, y = fx(x), fy(y)
	case figure.CoordsYAxis:
		x = fx(x)
	case figure.CoordsXAxis:
		y = fy(y)
	}

	l, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: x, Y: y}},
		Labels: []string{t.Text},
	})
	if err != nil {
		return nil, err
	}
	sty := &l.TextStyle[0]
	setText(sty, *t, family)
	sty.XAlign = xAlign(t.HAlign)
	sty.YAlign = yAlign(t.VAlign)
	sty.Rotation = t.Rotation * math.Pi / 180
	return l, nil
}

func setText(sty *text.Style, t figure.Text, family string) {
	if t.Size > 0 {
		sty.Font.Size = vg.Points(t.Size)
	}
	if family == "serif" {
		sty.Font.Variant = "Serif"
	}
	if t.Bold {
		sty.Font.Weight = xfont.WeightBold
	}
	if t.Color != "" {
		sty.Color = colorOr(t.Color, color.Black)
	}
}

func xAlign(a figure.HAlign) text.XAlignment {
	switch a {
	case figure.AlignCenter:
		return text.XCenter
	case figure.AlignRight:
		return text.XRight
	}
	return text.XLeft
}

func yAlign(a figure.VAlign) text.YAlignment {
	switch a {
	case figure.AlignTop:
		return text.YTop
	case figure.AlignMiddle:
		return text.YCenter
	}
	return text.YBottom
}
