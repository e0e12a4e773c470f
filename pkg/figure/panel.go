package figure

import "math"

// Axis names one of a panel's two axes.
type Axis int

// Panel axes.
const (
	AxisX Axis = iota
	AxisY
)

// String returns "x" or "y".
func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// autoscaleMargin is the fraction of the data range added on each side of
// autoscaled limits.
const autoscaleMargin = 0.05

// Panel is one plotting area of a figure.
type Panel struct {
	Title  Text
	XLabel Text
	YLabel Text

	TickSize   float64 // tick label font size in points
	SpineWidth float64 // axis line width in points
	LineWidth  float64 // default series line width
	MarkerSize float64 // default scatter marker size

	// ColorCycle supplies colours for series added without one.
	ColorCycle []string

	Series []*Series
	Texts  []*Text

	legend *Legend
	xlim   *[2]float64
	ylim   *[2]float64
	next   int
}

// NewPanel returns an empty panel with matplotlib-like defaults.
func NewPanel() *Panel {
	return &Panel{
		Title:      Text{Size: 12},
		XLabel:     Text{Size: 10},
		YLabel:     Text{Size: 10},
		TickSize:   10,
		SpineWidth: 0.8,
		LineWidth:  1.5,
		MarkerSize: 6,
	}
}

// SetTitle sets the title text, keeping its size.
func (p *Panel) SetTitle(s string) { p.Title.Text = s }

// SetXLabel sets the x-axis label text, keeping its size.
func (p *Panel) SetXLabel(s string) { p.XLabel.Text = s }

// SetYLabel sets the y-axis label text, keeping its size.
func (p *Panel) SetYLabel(s string) { p.YLabel.Text = s }

// Add appends s, assigning the next cycle colour and the panel's default
// widths when they are unset.
func (p *Panel) Add(s *Series) *Series {
	if s.Color == "" && len(p.ColorCycle) > 0 && s.Kind != KindHLine && s.Kind != KindVLine {
		s.Color = p.ColorCycle[p.next%len(p.ColorCycle)]
		p.next++
	}
	if s.Color == "" {
		s.Color = "#000000"
	}
	if s.LineWidth == 0 {
		s.LineWidth = p.LineWidth
	}
	if s.MarkerSize == 0 && s.Kind == KindScatter {
		s.MarkerSize = p.MarkerSize
	}
	p.Series = append(p.Series, s)
	return s
}

// Plot adds a labelled line series.
func (p *Panel) Plot(x, y []float64, label string) *Series {
	return p.Add(&Series{Kind: KindLine, X: x, Y: y, Label: label})
}

// Scatter adds a labelled scatter series.
func (p *Panel) Scatter(x, y []float64, label string) *Series {
	return p.Add(&Series{Kind: KindScatter, X: x, Y: y, Label: label})
}

// BarChart adds a bar series centred on x and returns its bars.
func (p *Panel) BarChart(x, heights []float64, width float64, label string) []Bar {
	if width <= 0 {
		width = 0.8
	}
	s := p.Add(&Series{Kind: KindBar, X: x, Y: heights, BarWidth: width, Label: label})
	return s.Bars()
}

// AxHLine adds a horizontal reference line spanning the panel at y.
func (p *Panel) AxHLine(y float64, color string, dashed bool) *Series {
	return p.Add(&Series{Kind: KindHLine, Y: []float64{y}, Color: color, Dashed: dashed})
}

// AxVLine adds a vertical reference line spanning the panel at x.
func (p *Panel) AxVLine(x float64, color string, dashed bool) *Series {
	return p.Add(&Series{Kind: KindVLine, X: []float64{x}, Color: color, Dashed: dashed})
}

// AddText appends an annotation and returns it.
func (p *Panel) AddText(t Text) *Text {
	tp := &t
	p.Texts = append(p.Texts, tp)
	return tp
}

// LegendHandles returns one entry per labelled series, in plotting order.
func (p *Panel) LegendHandles() []LegendEntry {
	var out []LegendEntry
	for _, s := range p.Series {
		if s.legendable() {
			out = append(out, LegendEntry{Label: s.Label, Handle: s})
		}
	}
	return out
}

// AddLegend builds a legend from the panel's labelled series and places it
// at loc. It returns nil, leaving the panel unchanged, when no series is
// labelled.
func (p *Panel) AddLegend(loc Location) *Legend {
	entries := p.LegendHandles()
	if len(entries) == 0 {
		return nil
	}
	p.legend = &Legend{Entries: entries, Loc: loc, Columns: 1, Frame: true}
	return p.legend
}

// SetLegend installs l as the panel legend. A nil l removes the legend.
func (p *Panel) SetLegend(l *Legend) { p.legend = l }

// Legend returns the panel legend, or nil.
func (p *Panel) Legend() *Legend { return p.legend }

// RemoveLegend detaches the panel legend and reports whether there was one.
func (p *Panel) RemoveLegend() bool {
	had := p.legend != nil
	p.legend = nil
	return had
}

// SetXLim fixes the x-axis limits.
func (p *Panel) SetXLim(lo, hi float64) { p.xlim = &[2]float64{lo, hi} }

// SetYLim fixes the y-axis limits.
func (p *Panel) SetYLim(lo, hi float64) { p.ylim = &[2]float64{lo, hi} }

// FixedLimits returns the explicitly set limits of axis a, if any.
func (p *Panel) FixedLimits(a Axis) ([2]float64, bool) {
	lim := p.xlim
	if a == AxisY {
		lim = p.ylim
	}
	if lim == nil {
		return [2]float64{}, false
	}
	return *lim, true
}

// XLim returns the x-axis limits: explicit ones when set, otherwise the
// data range plus a 5% margin.
func (p *Panel) XLim() (lo, hi float64) {
	if p.xlim != nil {
		return p.xlim[0], p.xlim[1]
	}
	return p.autoscale(AxisX)
}

// YLim returns the y-axis limits: explicit ones when set, otherwise the
// data range plus a 5% margin.
func (p *Panel) YLim() (lo, hi float64) {
	if p.ylim != nil {
		return p.ylim[0], p.ylim[1]
	}
	return p.autoscale(AxisY)
}

func (p *Panel) autoscale(a Axis) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	grow := func(vs ...float64) {
		for _, v := range vs {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			lo, hi = math.Min(lo, v), math.Max(hi, v)
		}
	}

	for _, s := range p.Series {
		switch s.Kind {
		case KindHLine:
			if a == AxisY {
				grow(s.Y...)
			}
		case KindVLine:
			if a == AxisX {
				grow(s.X...)
			}
		case KindBar:
			for _, b := range s.Bars() {
				if a == AxisX {
					grow(b.X, b.X+b.Width)
				} else {
					grow(0, b.Height)
				}
			}
		default:
			if a == AxisX {
				grow(s.X...)
			} else {
				grow(s.Y...)
			}
		}
	}

	if lo > hi {
		return 0, 1
	}
	if lo == hi {
		return lo - 1, hi + 1
	}
	m := (hi - lo) * autoscaleMargin
	return lo - m, hi + m
}

// TitleText implements [PanelView].
func (p *Panel) TitleText() Text { return p.Title }

// AxisLabel implements [PanelView].
func (p *Panel) AxisLabel(a Axis) Text {
	if a == AxisY {
		return p.YLabel
	}
	return p.XLabel
}

// LegendInfo implements [PanelView].
func (p *Panel) LegendInfo() (Legend, bool) {
	if p.legend == nil {
		return Legend{}, false
	}
	return *p.legend, true
}
