package figure

// Coords selects the coordinate system a [Text] position is expressed in.
type Coords int

const (
	// CoordsData places text in data units on both axes.
	CoordsData Coords = iota
	// CoordsAxes places text in axes fractions (0..1) on both axes.
	CoordsAxes
	// CoordsYAxis blends an axes-fraction x with a data-unit y. It anchors
	// labels on horizontal reference lines.
	CoordsYAxis
	// CoordsXAxis blends a data-unit x with an axes-fraction y. It anchors
	// labels on vertical reference lines.
	CoordsXAxis
	// CoordsFigure places text in figure fractions.
	CoordsFigure
)

// HAlign is the horizontal alignment of text relative to its anchor.
type HAlign string

// Horizontal alignments.
const (
	AlignLeft   HAlign = "left"
	AlignCenter HAlign = "center"
	AlignRight  HAlign = "right"
)

// VAlign is the vertical alignment of text relative to its anchor.
type VAlign string

// Vertical alignments.
const (
	AlignTop      VAlign = "top"
	AlignMiddle   VAlign = "center"
	AlignBottom   VAlign = "bottom"
	AlignBaseline VAlign = "baseline"
)

// Text is a piece of text with its typography and placement. Titles and
// axis labels use only Text and Size; annotations use the position fields
// too.
type Text struct {
	Text   string  `json:"text"`
	Size   float64 `json:"size"`
	Color  string  `json:"color,omitempty"`
	Bold   bool    `json:"bold,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Coords Coords  `json:"coords,omitempty"`
	HAlign HAlign  `json:"ha,omitempty"`
	VAlign VAlign  `json:"va,omitempty"`

	// Rotation in degrees, counter-clockwise.
	Rotation float64 `json:"rotation,omitempty"`

	// Boxed draws a background box behind the text. Floating boxes are
	// what occlude data most often.
	Boxed bool `json:"boxed,omitempty"`
}

// Empty reports whether the text has no content.
func (t Text) Empty() bool { return t.Text == "" }
