package figure

// View is the read-only figure surface inspected by auditors.
type View interface {
	// Size returns the figure width and height in inches.
	Size() (width, height float64)
	// PanelViews returns the panels in row-major order.
	PanelViews() []PanelView
}

// PanelView is the read-only panel surface inspected by auditors.
type PanelView interface {
	TitleText() Text
	AxisLabel(Axis) Text
	// LegendInfo returns a copy of the panel legend and whether one exists.
	LegendInfo() (Legend, bool)
}

// Views adapts panels to the [PanelView] interface.
func Views(panels []*Panel) []PanelView {
	out := make([]PanelView, len(panels))
	for i, p := range panels {
		out[i] = p
	}
	return out
}

var (
	_ View      = (*Figure)(nil)
	_ PanelView = (*Panel)(nil)
)
