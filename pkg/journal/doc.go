// Package journal holds per-journal figure specifications and the registry
// that resolves journal names to them.
//
// # Specifications
//
// A [Spec] records what a publisher's author guidelines require of a figure:
// column widths, the maximum height, font sizes per text role, line widths,
// marker sizes, output resolution, accepted formats and a colour cycle. The
// auditors in [audit] treat a Spec as ground truth.
//
// # Registry
//
// [Registry] maps keys to specs. Keys are normalized with [Normalize], so
// "Nature Communications", "nature-communications" and "NATURE_COMMUNICATIONS"
// all resolve to the same *Spec:
//
//	spec, err := journal.Get("nature communications")
//	if err != nil {
//	    // err lists every available journal
//	}
//	fmt.Println(spec.WidthSingle) // 3.5
//
// The package-level [Default] registry is populated with the built-in
// publishers (Nature, Science, Cell, ACS, RSC, Elsevier, Wiley, IEEE and the
// "Default SCI" fallback). Custom journals are added with [Register] or read
// from a TOML file with [LoadFile].
//
// [audit]: github.com/matzehuels/scifig/pkg/audit
package journal
