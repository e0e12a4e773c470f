package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/scifig/pkg/figure"
)

type figureDoc struct {
	Width      float64      `json:"width"`
	Height     float64      `json:"height"`
	Rows       int          `json:"rows"`
	Cols       int          `json:"cols"`
	FontFamily string       `json:"font_family,omitempty"`
	Suptitle   *figure.Text `json:"suptitle,omitempty"`
	LayoutRect *[4]float64  `json:"layout_rect,omitempty"`
	Panels     []panelDoc   `json:"panels"`
	Legends    []legendDoc  `json:"legends,omitempty"`
}

type panelDoc struct {
	Title      figure.Text   `json:"title"`
	XLabel     figure.Text   `json:"xlabel"`
	YLabel     figure.Text   `json:"ylabel"`
	TickSize   float64       `json:"tick_size,omitempty"`
	SpineWidth float64       `json:"spine_width,omitempty"`
	ColorCycle []string      `json:"color_cycle,omitempty"`
	Series     []seriesDoc   `json:"series,omitempty"`
	Texts      []figure.Text `json:"texts,omitempty"`
	Legend     *legendDoc    `json:"legend,omitempty"`
	XLim       *[2]float64   `json:"xlim,omitempty"`
	YLim       *[2]float64   `json:"ylim,omitempty"`
}

type seriesDoc struct {
	Kind       string    `json:"kind,omitempty"`
	Label      string    `json:"label,omitempty"`
	X          []float64 `json:"x,omitempty"`
	Y          []float64 `json:"y,omitempty"`
	Color      string    `json:"color,omitempty"`
	LineWidth  float64   `json:"line_width,omitempty"`
	Dashed     bool      `json:"dashed,omitempty"`
	MarkerSize float64   `json:"marker_size,omitempty"`
	BarWidth   float64   `json:"bar_width,omitempty"`
}

type legendDoc struct {
	Loc      string        `json:"loc"`
	Labels   []string      `json:"labels"`
	Anchor   *figure.Point `json:"anchor,omitempty"`
	Columns  int           `json:"columns,omitempty"`
	FontSize float64       `json:"font_size,omitempty"`
	Frame    *bool         `json:"frame,omitempty"`
}

// WriteFigure encodes fig as indented JSON to w.
func WriteFigure(fig *figure.Figure, w io.Writer) error {
	doc := figureDoc{
		Width:      fig.Width,
		Height:     fig.Height,
		Rows:       fig.Rows,
		Cols:       fig.Cols,
		FontFamily: fig.FontFamily,
		LayoutRect: &fig.LayoutRect,
		Panels:     make([]panelDoc, len(fig.Panels)),
	}
	if !fig.Suptitle.Empty() {
		doc.Suptitle = &fig.Suptitle
	}
	for i, p := range fig.Panels {
		doc.Panels[i] = exportPanel(p)
	}
	for _, l := range fig.Legends {
		doc.Legends = append(doc.Legends, exportLegend(l))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func exportPanel(p *figure.Panel) panelDoc {
	pd := panelDoc{
		Title:      p.Title,
		XLabel:     p.XLabel,
		YLabel:     p.YLabel,
		TickSize:   p.TickSize,
		SpineWidth: p.SpineWidth,
		ColorCycle: p.ColorCycle,
	}
	for _, s := range p.Series {
		pd.Series = append(pd.Series, seriesDoc{
			Kind:       s.Kind.String(),
			Label:      s.Label,
			X:          s.X,
			Y:          s.Y,
			Color:      s.Color,
			LineWidth:  s.LineWidth,
			Dashed:     s.Dashed,
			MarkerSize: s.MarkerSize,
			BarWidth:   s.BarWidth,
		})
	}
	for _, t := range p.Texts {
		pd.Texts = append(pd.Texts, *t)
	}
	if l := p.Legend(); l != nil {
		ld := exportLegend(l)
		pd.Legend = &ld
	}
	if lim, ok := p.FixedLimits(figure.AxisX); ok {
		pd.XLim = &lim
	}
	if lim, ok := p.FixedLimits(figure.AxisY); ok {
		pd.YLim = &lim
	}
	return pd
}

func exportLegend(l *figure.Legend) legendDoc {
	frame := l.Frame
	return legendDoc{
		Loc:      l.Loc.String(),
		Labels:   l.Labels(),
		Anchor:   l.Anchor,
		Columns:  l.Columns,
		FontSize: l.FontSize,
		Frame:    &frame,
	}
}

// ReadFigure decodes a figure description from r.
//
// Missing sizes keep the defaults of [figure.NewPanel]. Rows and cols
// default to one row holding every panel.
func ReadFigure(r io.Reader) (*figure.Figure, error) {
	var doc figureDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if len(doc.Panels) == 0 {
		return nil, fmt.Errorf("figure has no panels")
	}
	if doc.Rows == 0 && doc.Cols == 0 {
		doc.Rows, doc.Cols = 1, len(doc.Panels)
	}
	if doc.Rows*doc.Cols != len(doc.Panels) {
		return nil, fmt.Errorf("figure has %d panels, want rows*cols = %d", len(doc.Panels), doc.Rows*doc.Cols)
	}

	fig := figure.New(doc.Width, doc.Height, doc.Rows, doc.Cols)
	if doc.FontFamily != "" {
		fig.FontFamily = doc.FontFamily
	}
	if doc.Suptitle != nil {
		fig.Suptitle = *doc.Suptitle
	}
	if doc.LayoutRect != nil {
		fig.LayoutRect = *doc.LayoutRect
	}

	for i, pd := range doc.Panels {
		if err := importPanel(fig.Panels[i], pd); err != nil {
			return nil, fmt.Errorf("panel %d: %w", i, err)
		}
	}
	for i, ld := range doc.Legends {
		l, err := importLegend(ld, nil)
		if err != nil {
			return nil, fmt.Errorf("figure legend %d: %w", i, err)
		}
		fig.AddLegend(l)
	}
	return fig, nil
}

func importPanel(p *figure.Panel, pd panelDoc) error {
	mergeText(&p.Title, pd.Title)
	mergeText(&p.XLabel, pd.XLabel)
	mergeText(&p.YLabel, pd.YLabel)
	if pd.TickSize > 0 {
		p.TickSize = pd.TickSize
	}
	if pd.SpineWidth > 0 {
		p.SpineWidth = pd.SpineWidth
	}
	p.ColorCycle = pd.ColorCycle

	for i, sd := range pd.Series {
		kind, err := figure.ParseSeriesKind(sd.Kind)
		if err != nil {
			return fmt.Errorf("series %d: %w", i, err)
		}
		p.Add(&figure.Series{
			Kind:       kind,
			Label:      sd.Label,
			X:          sd.X,
			Y:          sd.Y,
			Color:      sd.Color,
			LineWidth:  sd.LineWidth,
			Dashed:     sd.Dashed,
			MarkerSize: sd.MarkerSize,
			BarWidth:   sd.BarWidth,
		})
	}
	for _, t := range pd.Texts {
		p.AddText(t)
	}
	if pd.Legend != nil {
		l, err := importLegend(*pd.Legend, p.Series)
		if err != nil {
			return fmt.Errorf("legend: %w", err)
		}
		p.SetLegend(l)
	}
	if pd.XLim != nil {
		p.SetXLim(pd.XLim[0], pd.XLim[1])
	}
	if pd.YLim != nil {
		p.SetYLim(pd.YLim[0], pd.YLim[1])
	}
	return nil
}

func importLegend(ld legendDoc, series []*figure.Series) (*figure.Legend, error) {
	loc := figure.LocBest
	if ld.Loc != "" {
		var err error
		if loc, err = figure.ParseLocation(ld.Loc); err != nil {
			return nil, err
		}
	}

	l := &figure.Legend{
		Loc:      loc,
		Anchor:   ld.Anchor,
		Columns:  ld.Columns,
		FontSize: ld.FontSize,
		Frame:    ld.Frame == nil || *ld.Frame,
	}
	for _, label := range ld.Labels {
		e := figure.LegendEntry{Label: label}
		for _, s := range series {
			if s.Label == label {
				e.Handle = s
				break
			}
		}
		l.Entries = append(l.Entries, e)
	}
	return l, nil
}

// mergeText copies src over dst, keeping dst's size when src has none.
func mergeText(dst *figure.Text, src figure.Text) {
	size := dst.Size
	*dst = src
	if dst.Size == 0 {
		dst.Size = size
	}
}

// ExportFigure writes fig to a JSON file at path.
func ExportFigure(fig *figure.Figure, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteFigure(fig, f)
}

// ImportFigure reads a figure description from the JSON file at path.
func ImportFigure(path string) (*figure.Figure, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadFigure(f)
}
