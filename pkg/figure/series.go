package figure

import "fmt"

// SeriesKind identifies how a series is drawn.
type SeriesKind int

// Series kinds.
const (
	KindLine SeriesKind = iota
	KindScatter
	KindBar
	KindHLine // horizontal reference line at Y[0]
	KindVLine // vertical reference line at X[0]
)

var kindNames = [...]string{
	KindLine:    "line",
	KindScatter: "scatter",
	KindBar:     "bar",
	KindHLine:   "hline",
	KindVLine:   "vline",
}

// String returns the kind name, e.g. "scatter".
func (k SeriesKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("SeriesKind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseSeriesKind converts a kind name back to its value. The empty string
// is a line.
func ParseSeriesKind(s string) (SeriesKind, error) {
	if s == "" {
		return KindLine, nil
	}
	for i, name := range kindNames {
		if name == s {
			return SeriesKind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown series kind %q", s)
}

// Series is one plotted data set.
type Series struct {
	Kind  SeriesKind
	Label string
	X, Y  []float64
	Color string

	LineWidth  float64
	Dashed     bool
	MarkerSize float64

	// BarWidth is the bar width in data units for KindBar.
	BarWidth float64
}

// Bar is the geometry of one bar of a bar series.
type Bar struct {
	X      float64 // left edge
	Width  float64
	Height float64
}

// Center returns the x coordinate of the bar's centre.
func (b Bar) Center() float64 { return b.X + b.Width/2 }

// Bars returns the bars of a KindBar series, or nil for other kinds.
func (s *Series) Bars() []Bar {
	if s.Kind != KindBar {
		return nil
	}
	n := min(len(s.X), len(s.Y))
	out := make([]Bar, n)
	for i := range n {
		out[i] = Bar{X: s.X[i] - s.BarWidth/2, Width: s.BarWidth, Height: s.Y[i]}
	}
	return out
}

// legendable reports whether the series contributes a legend entry.
// Labels starting with an underscore are hidden, as in matplotlib.
func (s *Series) legendable() bool {
	return s.Label != "" && s.Label[0] != '_'
}
