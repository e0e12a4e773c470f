package style

import "github.com/matzehuels/scifig/pkg/journal"

// Nature sets the Nature style.
func Nature() *journal.Spec { return mustSet("nature") }

// Science sets the Science style.
func Science() *journal.Spec { return mustSet("science") }

// Cell sets the Cell style.
func Cell() *journal.Spec { return mustSet("cell") }

// ACS sets the ACS style.
func ACS() *journal.Spec { return mustSet("acs") }

func mustSet(name string) *journal.Spec {
	spec, err := Set(name)
	if err != nil {
		panic(err)
	}
	return spec
}

// wong is the colour-blind safe palette from Wong, Nature Methods 8, 441 (2011).
var wong = []string{
	"#0072B2", // blue
	"#D55E00", // vermillion
	"#009E73", // bluish green
	"#CC79A7", // reddish purple
	"#F0E442", // yellow
	"#56B4E9", // sky blue
	"#E69F00", // orange
	"#000000", // black
}

// ColorblindPalette returns the first n colours of the Wong palette. n is
// clamped to [0, 8].
func ColorblindPalette(n int) []string {
	n = min(max(n, 0), len(wong))
	out := make([]string, n)
	copy(out, wong)
	return out
}
