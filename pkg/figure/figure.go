package figure

// Figure is the top-level container: a grid of panels plus figure-level
// decorations. Sizes are in inches.
type Figure struct {
	Width, Height float64
	Rows, Cols    int

	Panels   []*Panel
	Suptitle Text

	// Legends holds figure-level legends, anchored in figure fractions.
	Legends []*Legend

	// LayoutRect is the [left, bottom, right, top] region, in figure
	// fractions, the panel grid is laid out in. Room outside it is reserved
	// for figure legends.
	LayoutRect [4]float64

	FontFamily string
}

// New returns a figure of the given size with rows*cols empty panels in
// row-major order. Non-positive grid dimensions are treated as 1.
func New(width, height float64, rows, cols int) *Figure {
	rows, cols = max(rows, 1), max(cols, 1)
	f := &Figure{
		Width:      width,
		Height:     height,
		Rows:       rows,
		Cols:       cols,
		LayoutRect: [4]float64{0, 0, 1, 1},
		FontFamily: "sans-serif",
	}
	for range rows * cols {
		f.Panels = append(f.Panels, NewPanel())
	}
	return f
}

// Panel returns the panel at row r, column c.
func (f *Figure) Panel(r, c int) *Panel { return f.Panels[r*f.Cols+c] }

// SetSize changes the figure size.
func (f *Figure) SetSize(width, height float64) { f.Width, f.Height = width, height }

// AddLegend attaches a figure-level legend.
func (f *Figure) AddLegend(l *Legend) { f.Legends = append(f.Legends, l) }

// Size implements [View].
func (f *Figure) Size() (width, height float64) { return f.Width, f.Height }

// PanelViews implements [View].
func (f *Figure) PanelViews() []PanelView { return Views(f.Panels) }
