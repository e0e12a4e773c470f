// Package patterns implements remediation transformations for figures.
//
// Each function mutates the figure or panels passed in and reads no global
// state:
//
//   - [UnifyLegend] replaces per-panel legends with one shared figure legend
//   - [FormatTitle] and [ApplyTitle] move annotation values into the title
//   - [InlineLabel] and [AddThreshold] label reference lines in place
//   - [SmartBarLabels] and [ExtendYLimForLabels] place value labels outside
//     bars, above positive and below negative values
//   - [PanelLetters] adds (a), (b), ... markers
//
// None of these functions are safe for concurrent use on the same figure.
package patterns
