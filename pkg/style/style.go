package style

import (
	"slices"
	"sync"

	"github.com/matzehuels/scifig/pkg/figure"
	"github.com/matzehuels/scifig/pkg/journal"
)

var (
	mu      sync.RWMutex
	current = defaultParams()
)

func defaultParams() Params {
	d := journal.Defaults()
	return ParamsFor(&d, ContextPaper, false)
}

type options struct {
	context  string
	useTeX   bool
	registry *journal.Registry
}

// Option configures [Set].
type Option func(*options)

// WithContext scales fonts for "paper", "notebook", "talk" or "poster".
func WithContext(ctx string) Option { return func(o *options) { o.context = ctx } }

// WithTeX enables TeX text rendering.
func WithTeX(on bool) Option { return func(o *options) { o.useTeX = on } }

// WithRegistry resolves the journal name in r instead of [journal.Default].
func WithRegistry(r *journal.Registry) Option { return func(o *options) { o.registry = r } }

// Set makes the named journal's parameters the current process-wide style
// and returns the resolved specification. On a lookup error the current
// style is left unchanged.
func Set(name string, opts ...Option) (*journal.Spec, error) {
	o := options{context: ContextPaper, registry: journal.Default}
	for _, opt := range opts {
		opt(&o)
	}
	spec, err := o.registry.Get(name)
	if err != nil {
		return nil, err
	}

	p := ParamsFor(spec, o.context, o.useTeX)
	mu.Lock()
	current = p
	mu.Unlock()
	return spec, nil
}

// Current returns a copy of the current process-wide style.
func Current() Params {
	mu.RLock()
	defer mu.RUnlock()
	p := current
	p.ColorCycle = slices.Clone(current.ColorCycle)
	return p
}

// Reset restores the built-in default style.
func Reset() {
	mu.Lock()
	current = defaultParams()
	mu.Unlock()
}

// ApplyToFigure overwrites the title, axis-label, tick-label and legend font
// sizes and the spine widths of the given panels (all panels when none are
// passed) to match spec. Series data is left untouched.
func ApplyToFigure(fig *figure.Figure, spec *journal.Spec, panels ...*figure.Panel) {
	if len(panels) == 0 {
		panels = fig.Panels
	}
	for _, p := range panels {
		p.Title.Size = spec.FontTitle
		p.XLabel.Size = spec.FontAxisLabel
		p.YLabel.Size = spec.FontAxisLabel
		p.TickSize = spec.FontTickLabel
		p.SpineWidth = spec.LineWidthAxis
		if l := p.Legend(); l != nil {
			l.FontSize = spec.FontLegend
		}
	}
	fig.FontFamily = spec.FontFamily
}

// FigureSize returns the width and height in inches for a rows x cols grid.
// The height is width*heightRatio/cols per row, clamped to the journal's
// maximum height.
func FigureSize(spec *journal.Spec, width string, heightRatio float64, rows, cols int) (w, h float64) {
	rows, cols = max(rows, 1), max(cols, 1)
	w = spec.Width(width)
	h = min(w*heightRatio/float64(cols)*float64(rows), spec.MaxHeight)
	return w, h
}

// NewFigure creates a figure sized for spec whose panels are initialised
// from the current process-wide style.
func NewFigure(rows, cols int, width string, heightRatio float64, spec *journal.Spec) *figure.Figure {
	w, h := FigureSize(spec, width, heightRatio, rows, cols)
	fig := figure.New(w, h, rows, cols)

	p := Current()
	fig.FontFamily = p.FontFamily
	for _, panel := range fig.Panels {
		applyParams(panel, p)
	}
	return fig
}

func applyParams(panel *figure.Panel, p Params) {
	panel.Title.Size = p.TitleSize
	panel.XLabel.Size = p.LabelSize
	panel.YLabel.Size = p.LabelSize
	panel.TickSize = p.TickSize
	panel.SpineWidth = p.AxisWidth
	panel.LineWidth = p.LineWidth
	panel.MarkerSize = p.MarkerSize
	panel.ColorCycle = slices.Clone(p.ColorCycle)
}
