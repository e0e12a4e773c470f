// Package figure is the in-memory model of a multi-panel scientific figure.
//
// A [Figure] owns a grid of [Panel] values. Each panel carries its title,
// axis labels, tick and spine settings, plotted [Series], free [Text]
// annotations and an optional [Legend]. Figure-level decorations (a
// suptitle and shared legends) live on the Figure itself.
//
// The model is deliberately passive: it stores what a plotting call asked
// for and computes autoscaled axis limits, nothing more. Styling lives in
// style, remediation in patterns, encoding to image files in render.
//
// # Views
//
// Auditors never see the concrete types. They consume the read-only [View]
// and [PanelView] interfaces, which expose exactly what the checks inspect:
// figure size, title and axis-label text and sizes, and legend contents and
// placement. *Figure and *Panel implement them.
package figure
