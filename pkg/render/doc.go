// Package render encodes figures to image files.
//
// # Overview
//
// Figures from [figure] are drawn with gonum.org/v1/plot: every panel
// becomes a *plot.Plot and the panels are aligned on a grid inside the
// figure's layout rectangle. Figure-level legends and the suptitle are drawn
// in the space the layout rectangle leaves free.
//
//	paths, err := render.Save(fig, "out/figure1", spec.Formats, spec.DPI)
//
// # Formats
//
// Raster formats (png, jpg, jpeg, tif, tiff) are rasterized at the requested
// resolution. Vector formats (svg, pdf, eps) are resolution independent and
// ignore it. Any other format is rejected with an INVALID_FORMAT error.
//
// # Colours
//
// Colours accept "#rrggbb" hex, a grey level between "0" and "1" as
// matplotlib does ("0.8"), and a handful of basic names. Unparseable colours
// fall back to black.
package render
