package patterns

import (
	"slices"

	"github.com/matzehuels/scifig/pkg/figure"
)

// Placement is where a unified legend is anchored.
type Placement int

// Unified legend placements.
const (
	Bottom Placement = iota
	Top
	Right
)

type placement struct {
	loc    figure.Location
	anchor figure.Point
	rect   [4]float64
}

var placements = map[Placement]placement{
	Bottom: {figure.LocLowerCenter, figure.Point{X: 0.5, Y: -0.02}, [4]float64{0, 0.08, 1, 1}},
	Top:    {figure.LocUpperCenter, figure.Point{X: 0.5, Y: 1.02}, [4]float64{0, 0, 1, 0.92}},
	Right:  {figure.LocCenterLeft, figure.Point{X: 1.02, Y: 0.5}, [4]float64{0, 0, 0.88, 1}},
}

type legendOptions struct {
	columns        int
	placement      Placement
	anchor         *figure.Point
	keepIndividual bool
	rect           *[4]float64
	fontSize       float64
}

// LegendOption configures [UnifyLegend].
type LegendOption func(*legendOptions)

// WithColumns sets the number of legend columns (default 3).
func WithColumns(n int) LegendOption { return func(o *legendOptions) { o.columns = n } }

// WithPlacement anchors the legend at the bottom (default), top or right.
func WithPlacement(p Placement) LegendOption { return func(o *legendOptions) { o.placement = p } }

// WithAnchor overrides the placement's default anchor point.
func WithAnchor(x, y float64) LegendOption {
	return func(o *legendOptions) { o.anchor = &figure.Point{X: x, Y: y} }
}

// KeepIndividual leaves the per-panel legends in place.
func KeepIndividual() LegendOption { return func(o *legendOptions) { o.keepIndividual = true } }

// WithLayoutRect overrides the layout rectangle reserved for the panels.
func WithLayoutRect(rect [4]float64) LegendOption { return func(o *legendOptions) { o.rect = &rect } }

// WithFontSize sets the legend font size in points (default 8).
func WithFontSize(pt float64) LegendOption { return func(o *legendOptions) { o.fontSize = pt } }

// UnifyLegend collects the entries of every panel legend, deduplicated by
// label with the first occurrence kept, removes the panel legends and adds a
// single figure legend. The figure's layout rectangle is shrunk to leave room
// for it. panels defaults to all panels of fig.
//
// Nothing changes when no panel has legend entries, or when fig already
// carries a figure legend with the same labels. The return value reports
// whether fig was modified.
func UnifyLegend(fig *figure.Figure, panels []*figure.Panel, opts ...LegendOption) bool {
	o := legendOptions{columns: 3, placement: Bottom, fontSize: 8}
	for _, opt := range opts {
		opt(&o)
	}
	if panels == nil {
		panels = fig.Panels
	}

	entries := legendEntries(panels)
	if len(entries) == 0 {
		return false
	}

	if !o.keepIndividual {
		RemoveIndividual(panels)
	}

	labels := labelsOf(entries)
	for _, l := range fig.Legends {
		if slices.Equal(l.Labels(), labels) {
			return !o.keepIndividual
		}
	}

	pl, ok := placements[o.placement]
	if !ok {
		pl = placements[Bottom]
	}
	anchor := pl.anchor
	if o.anchor != nil {
		anchor = *o.anchor
	}
	fig.AddLegend(&figure.Legend{
		Entries:  entries,
		Loc:      pl.loc,
		Anchor:   &anchor,
		Columns:  o.columns,
		FontSize: o.fontSize,
		Frame:    true,
	})

	fig.LayoutRect = pl.rect
	if o.rect != nil {
		fig.LayoutRect = *o.rect
	}
	return true
}

// legendEntries gathers the entries of existing panel legends, deduplicated.
func legendEntries(panels []*figure.Panel) []figure.LegendEntry {
	var all []figure.LegendEntry
	for _, p := range panels {
		if l := p.Legend(); l != nil {
			all = append(all, l.Entries...)
		}
	}
	return dedupe(all)
}

// CollectEntries gathers the labelled series handles of every panel, with
// or without a legend. With dedupe set, later entries repeating a label are
// dropped.
func CollectEntries(panels []*figure.Panel, deduplicate bool) []figure.LegendEntry {
	var all []figure.LegendEntry
	for _, p := range panels {
		all = append(all, p.LegendHandles()...)
	}
	if deduplicate {
		return dedupe(all)
	}
	return all
}

// RemoveIndividual removes every panel legend and returns how many there
// were.
func RemoveIndividual(panels []*figure.Panel) int {
	n := 0
	for _, p := range panels {
		if p.RemoveLegend() {
			n++
		}
	}
	return n
}

func dedupe(entries []figure.LegendEntry) []figure.LegendEntry {
	seen := make(map[string]bool, len(entries))
	out := entries[:0:0]
	for _, e := range entries {
		if seen[e.Label] {
			continue
		}
		seen[e.Label] = true
		out = append(out, e)
	}
	return out
}

func labelsOf(entries []figure.LegendEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Label
	}
	return out
}
