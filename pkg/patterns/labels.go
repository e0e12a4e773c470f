package patterns

import (
	"fmt"

	"github.com/matzehuels/scifig/pkg/figure"
)

// Side selects where an inline label sits relative to its line.
type Side int

// Label sides. Right and Left apply to horizontal lines, Top and Bottom to
// vertical ones.
const (
	SideRight Side = iota
	SideLeft
	SideTop
	SideBottom
)

// Corner selects a panel corner for [PanelLetters].
type Corner int

// Panel corners.
const (
	UpperLeft Corner = iota
	UpperRight
	LowerLeft
	LowerRight
)

type labelOptions struct {
	size      float64
	color     string
	offset    float64
	side      Side
	format    string
	showPlus  bool
	posOffset float64
	negOffset float64
	corner    Corner
	start     rune
}

// LabelOption configures the text-placing patterns.
type LabelOption func(*labelOptions)

// WithSize sets the label font size in points.
func WithSize(pt float64) LabelOption { return func(o *labelOptions) { o.size = pt } }

// WithColor sets the text colour (and the line colour for [AddThreshold]).
func WithColor(c string) LabelOption { return func(o *labelOptions) { o.color = c } }

// WithOffset sets the distance from the line as an axes fraction.
func WithOffset(f float64) LabelOption { return func(o *labelOptions) { o.offset = f } }

// WithSide places an inline label on the given side of its line.
func WithSide(s Side) LabelOption { return func(o *labelOptions) { o.side = s } }

// WithFormat sets the fmt verb for bar values ("%.3f") or panel letters
// ("(%c)").
func WithFormat(f string) LabelOption { return func(o *labelOptions) { o.format = f } }

// WithoutPlus drops the explicit "+" on non-negative bar values.
func WithoutPlus() LabelOption { return func(o *labelOptions) { o.showPlus = false } }

// WithBarOffsets sets the label gap above positive and below negative bars
// as fractions of the visible y range.
func WithBarOffsets(pos, neg float64) LabelOption {
	return func(o *labelOptions) { o.posOffset, o.negOffset = pos, neg }
}

// WithCorner places panel letters in the given corner.
func WithCorner(c Corner) LabelOption { return func(o *labelOptions) { o.corner = c } }

// WithStart sets the first panel letter.
func WithStart(r rune) LabelOption { return func(o *labelOptions) { o.start = r } }

func newLabelOptions(defaults labelOptions, opts []LabelOption) labelOptions {
	o := defaults
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// LineAxis is the orientation of a reference line.
type LineAxis int

// Reference line orientations.
const (
	Horizontal LineAxis = iota
	Vertical
)

// Line identifies a reference line: y=Value for Horizontal, x=Value for
// Vertical.
type Line struct {
	Axis  LineAxis
	Value float64
}

// InlineLabel writes text next to a reference line instead of giving it a
// legend entry. Horizontal lines are labelled at the right (default) or left
// edge; vertical lines at the bottom (default) or top, rotated 90 degrees.
// The label is offset by a fraction of the axis span (0.02 by default) and
// never boxed.
func InlineLabel(p *figure.Panel, line Line, text string, opts ...LabelOption) *figure.Text {
	o := newLabelOptions(labelOptions{size: 7, color: "black", offset: 0.02, side: SideRight}, opts)

	t := figure.Text{Size: o.size, Color: o.color}
	if line.Axis == Horizontal {
		t.Coords = figure.CoordsYAxis
		t.Y = line.Value
		t.VAlign = figure.AlignMiddle
		if o.side == SideLeft {
			t.X, t.Text, t.HAlign = o.offset, text+" ", figure.AlignLeft
		} else {
			t.X, t.Text, t.HAlign = 1-o.offset, " "+text, figure.AlignRight
		}
	} else {
		t.Coords = figure.CoordsXAxis
		t.X = line.Value
		t.Text = text
		t.HAlign = figure.AlignCenter
		t.Rotation = 90
		if o.side == SideTop {
			t.Y, t.VAlign = 1-o.offset, figure.AlignTop
		} else {
			t.Y, t.VAlign = o.offset, figure.AlignBottom
		}
	}
	return p.AddText(t)
}

// AddThreshold draws a dashed horizontal line at value and labels it inline.
// The colour defaults to red for both line and label.
func AddThreshold(p *figure.Panel, value float64, text string, opts ...LabelOption) *figure.Text {
	o := newLabelOptions(labelOptions{color: "red"}, opts)
	s := p.AxHLine(value, o.color, true)
	s.LineWidth = 1.0
	return InlineLabel(p, Line{Axis: Horizontal, Value: value}, text, append([]LabelOption{WithColor(o.color)}, opts...)...)
}

// SmartBarLabels labels each bar with its value: above the bar, bottom
// aligned, for values >= 0; below it, top aligned, for negative values.
// The gap is a fraction of the current y range (0.03 by default). Labels are
// never placed inside the bar body.
func SmartBarLabels(p *figure.Panel, bars []figure.Bar, values []float64, opts ...LabelOption) []*figure.Text {
	o := newLabelOptions(labelOptions{
		size: 7, color: "black", format: "%.3f", showPlus: true,
		posOffset: 0.03, negOffset: 0.03,
	}, opts)

	lo, hi := p.YLim()
	span := hi - lo

	n := min(len(bars), len(values))
	out := make([]*figure.Text, 0, n)
	for i := range n {
		v := values[i]
		t := figure.Text{
			X:      bars[i].Center(),
			Size:   o.size,
			Color:  o.color,
			HAlign: figure.AlignCenter,
		}
		if v >= 0 {
			t.Y = v + span*o.posOffset
			t.VAlign = figure.AlignBottom
			t.Text = fmt.Sprintf(o.format, v)
			if o.showPlus {
				t.Text = "+" + t.Text
			}
		} else {
			t.Y = v - span*o.negOffset
			t.VAlign = figure.AlignTop
			t.Text = fmt.Sprintf(o.format, v)
		}
		out = append(out, p.AddText(t))
	}
	return out
}

// DefaultLabelPadding is the y-range padding fraction used by callers of
// [ExtendYLimForLabels] that have no better value.
const DefaultLabelPadding = 0.15

// ExtendYLimForLabels grows the y limits so labels on the extreme values
// fit: a negative minimum extends the bottom to min*(1+padding), a positive
// maximum extends the top to max*(1+padding). Limits never shrink. Empty
// values change nothing.
func ExtendYLimForLabels(p *figure.Panel, values []float64, padding float64) {
	if len(values) == 0 {
		return
	}
	lo, hi := p.YLim()
	dmin, dmax := values[0], values[0]
	for _, v := range values[1:] {
		dmin, dmax = min(dmin, v), max(dmax, v)
	}
	if dmin < 0 {
		lo = min(lo, dmin*(1+padding))
	}
	if dmax > 0 {
		hi = max(hi, dmax*(1+padding))
	}
	p.SetYLim(lo, hi)
}

var corners = map[Corner]struct {
	x, y float64
	ha   figure.HAlign
	va   figure.VAlign
}{
	UpperLeft:  {0.02, 0.98, figure.AlignLeft, figure.AlignTop},
	UpperRight: {0.98, 0.98, figure.AlignRight, figure.AlignTop},
	LowerLeft:  {0.02, 0.02, figure.AlignLeft, figure.AlignBottom},
	LowerRight: {0.98, 0.02, figure.AlignRight, figure.AlignBottom},
}

// PanelLetters adds bold (a), (b), ... markers to panels in order, in axes
// coordinates at the chosen corner (upper left by default).
func PanelLetters(panels []*figure.Panel, opts ...LabelOption) []*figure.Text {
	o := newLabelOptions(labelOptions{size: 9, format: "(%c)", start: 'a', corner: UpperLeft}, opts)
	c, ok := corners[o.corner]
	if !ok {
		c = corners[UpperLeft]
	}

	out := make([]*figure.Text, 0, len(panels))
	for i, p := range panels {
		out = append(out, p.AddText(figure.Text{
			Text:   fmt.Sprintf(o.format, o.start+rune(i)),
			Size:   o.size,
			Color:  o.color,
			Bold:   true,
			X:      c.x,
			Y:      c.y,
			Coords: figure.CoordsAxes,
			HAlign: c.ha,
			VAlign: c.va,
		}))
	}
	return out
}
