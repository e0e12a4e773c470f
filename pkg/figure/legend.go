package figure

import (
	"fmt"
	"strings"
)

// Location is a legend placement code. The numbering matches the one used
// by matplotlib so fix recipes can be pasted into plotting scripts.
type Location int

// Legend locations.
const (
	LocBest Location = iota
	LocUpperRight
	LocUpperLeft
	LocLowerLeft
	LocLowerRight
	LocRight
	LocCenterLeft
	LocCenterRight
	LocLowerCenter
	LocUpperCenter
	LocCenter
)

var locationNames = [...]string{
	LocBest:        "best",
	LocUpperRight:  "upper right",
	LocUpperLeft:   "upper left",
	LocLowerLeft:   "lower left",
	LocLowerRight:  "lower right",
	LocRight:       "right",
	LocCenterLeft:  "center left",
	LocCenterRight: "center right",
	LocLowerCenter: "lower center",
	LocUpperCenter: "upper center",
	LocCenter:      "center",
}

// String returns the placement name, e.g. "upper right".
func (l Location) String() string {
	if l < 0 || int(l) >= len(locationNames) {
		return fmt.Sprintf("Location(%d)", int(l))
	}
	return locationNames[l]
}

// ParseLocation converts a placement name back to its code.
func ParseLocation(s string) (Location, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range locationNames {
		if name == s {
			return Location(i), nil
		}
	}
	return 0, fmt.Errorf("unknown legend location %q", s)
}

// Upper reports whether the placement sits in the top band of the panel,
// counting "best" since it usually resolves to upper right.
func (l Location) Upper() bool {
	switch l {
	case LocBest, LocUpperRight, LocUpperLeft, LocUpperCenter:
		return true
	}
	return false
}

// LegendEntry is one row of a legend: a label and the series it describes.
// Handle may be nil for entries built from labels alone.
type LegendEntry struct {
	Label  string  `json:"label"`
	Handle *Series `json:"-"`
}

// Legend is a panel or figure legend.
type Legend struct {
	Entries []LegendEntry `json:"entries"`
	Loc     Location      `json:"loc"`

	// Anchor, when set, is the bbox_to_anchor point in axes (panel
	// legends) or figure (figure legends) fractions.
	Anchor *Point `json:"anchor,omitempty"`

	Columns  int     `json:"columns,omitempty"`
	FontSize float64 `json:"font_size,omitempty"`
	Frame    bool    `json:"frame"`
}

// Labels returns the entry labels in order.
func (l *Legend) Labels() []string {
	out := make([]string, len(l.Entries))
	for i, e := range l.Entries {
		out[i] = e.Label
	}
	return out
}

// Point is a 2D position.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}
