// Package pkg provides the libraries behind scifig, a quality checker for
// scientific figures.
//
// # Overview
//
// scifig checks figures against the figure guidelines of scientific journals
// and repairs the most common defects. The pkg directory is organized into
// these areas:
//
//  1. [journal] - Journal figure specifications and the registry
//  2. [figure] - The figure model: panels, series, text and legends
//  3. [audit] - Static audits of plotting code and live audits of figures
//  4. [style] and [patterns] - Journal styling and repair helpers
//  5. [render] - Rasterized and vector output
//  6. [io], [cache] and [server] - Serialization, report caching and the HTTP API
//
// # Architecture
//
// The typical data flow through scifig:
//
//	plotting script / figure JSON
//	         ↓
//	    [journal] package (resolve the target journal)
//	         ↓
//	    [audit] package (collect issues, decide whether they block)
//	         ↓
//	    [patterns] package (unify legends, fix sizes and fonts)
//	         ↓
//	    [render] package (PNG/TIFF/SVG/PDF/EPS output)
//
// # Quick Start
//
// Audit a figure and fix redundant legends:
//
//	spec, _ := style.Set("nature")
//	fig := style.NewFigure(1, 3, journal.WidthDouble, 0.35, spec)
//	// ... plot into fig.Panels ...
//
//	a := audit.NewFigureAuditor(spec)
//	for _, is := range a.Audit(fig) {
//	    if is.Type == audit.RedundantLegend {
//	        patterns.UnifyLegend(fig, nil)
//	    }
//	}
//	render.Save(fig, "figure1", spec.Formats, spec.DPI)
//
// [journal]: https://pkg.go.dev/github.com/matzehuels/scifig/pkg/journal
// [figure]: https://pkg.go.dev/github.com/matzehuels/scifig/pkg/figure
// [audit]: https://pkg.go.dev/github.com/matzehuels/scifig/pkg/audit
// [style]: https://pkg.go.dev/github.com/matzehuels/scifig/pkg/style
// [patterns]: https://pkg.go.dev/github.com/matzehuels/scifig/pkg/patterns
// [render]: https://pkg.go.dev/github.com/matzehuels/scifig/pkg/render
// [io]: https://pkg.go.dev/github.com/matzehuels/scifig/pkg/io
// [cache]: https://pkg.go.dev/github.com/matzehuels/scifig/pkg/cache
// [server]: https://pkg.go.dev/github.com/matzehuels/scifig/pkg/server
package pkg
