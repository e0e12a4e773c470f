package style

import (
	"strings"

	"github.com/matzehuels/scifig/pkg/journal"
)

// Params is the full set of presentation parameters derived from a journal
// specification.
type Params struct {
	FigWidth  float64 `json:"fig_width"`
	FigHeight float64 `json:"fig_height"`
	FigureDPI int     `json:"figure_dpi"`
	SaveDPI   int     `json:"save_dpi"`

	FontSize   float64 `json:"font_size"`
	FontFamily string  `json:"font_family"`
	LabelSize  float64 `json:"label_size"`
	TitleSize  float64 `json:"title_size"`
	TickSize   float64 `json:"tick_size"`
	LegendSize float64 `json:"legend_size"`

	TickDirection string  `json:"tick_direction"`
	MajorTickLen  float64 `json:"major_tick_len"`
	MinorTickLen  float64 `json:"minor_tick_len"`
	TickWidth     float64 `json:"tick_width"`
	AxisWidth     float64 `json:"axis_width"`

	LegendFrame     bool    `json:"legend_frame"`
	LegendAlpha     float64 `json:"legend_alpha"`
	LegendFancyBox  bool    `json:"legend_fancybox"`
	LegendEdgeColor string  `json:"legend_edge_color"`

	LineWidth  float64 `json:"line_width"`
	MarkerSize float64 `json:"marker_size"`
	PatchWidth float64 `json:"patch_width"`

	GridWidth float64 `json:"grid_width"`
	GridAlpha float64 `json:"grid_alpha"`

	ColorCycle []string `json:"color_cycle"`
	UseTeX     bool     `json:"use_tex"`
}

// Context names accepted by [WithContext] and [ParamsFor].
const (
	ContextPaper    = "paper"
	ContextNotebook = "notebook"
	ContextTalk     = "talk"
	ContextPoster   = "poster"
)

var contextScales = map[string]float64{
	ContextPaper:    1.0,
	ContextNotebook: 1.2,
	ContextTalk:     1.5,
	ContextPoster:   2.0,
}

// Scale returns the font scale factor for a context. Unknown contexts scale
// by 1.
func Scale(ctx string) float64 {
	if s, ok := contextScales[strings.ToLower(ctx)]; ok {
		return s
	}
	return 1.0
}

// ParamsFor derives presentation parameters from spec for a context. It
// has no side effects.
func ParamsFor(spec *journal.Spec, ctx string, useTeX bool) Params {
	scale := Scale(ctx)
	return Params{
		FigWidth:  spec.WidthDouble,
		FigHeight: spec.WidthDouble * 0.6,
		FigureDPI: 100,
		SaveDPI:   spec.DPI,

		FontSize:   spec.FontAxisLabel * scale,
		FontFamily: spec.FontFamily,
		LabelSize:  spec.FontAxisLabel * scale,
		TitleSize:  spec.FontTitle * scale,
		TickSize:   spec.FontTickLabel * scale,
		LegendSize: spec.FontLegend * scale,

		TickDirection: "out",
		MajorTickLen:  4,
		MinorTickLen:  2,
		TickWidth:     spec.LineWidthAxis,
		AxisWidth:     spec.LineWidthAxis,

		LegendFrame:     true,
		LegendAlpha:     0.9,
		LegendFancyBox:  false,
		LegendEdgeColor: "0.8",

		LineWidth:  spec.LineWidthData,
		MarkerSize: spec.MarkerSizeData,
		PatchWidth: spec.LineWidthAxis,

		GridWidth: 0.5,
		GridAlpha: 0.3,

		ColorCycle: spec.Colors(),
		UseTeX:     useTeX,
	}
}
