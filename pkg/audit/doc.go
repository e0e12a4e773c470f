// Package audit is the rule engine that checks figures and plotting code
// against a journal specification.
//
// # Findings
//
// Every check produces zero or more [Issue] values. An Issue has exactly one
// [IssueType] from a closed taxonomy and a [Severity]:
//
//   - [Error]: must be fixed before submission
//   - [Warning]: should be fixed
//   - [Info]: optional improvement
//
// Findings are values, never errors. Only lookup and I/O failures are
// returned as errors.
//
// # Figure Auditor
//
// [FigureAuditor] inspects a rendered figure through the read-only
// [figure.View] interface. Checks run in a fixed order: size, redundant
// legends, font consistency, legend occlusion, missing labels. A redundant
// legend is reported once per figure however many panels share entries.
//
//	a := audit.NewFigureAuditor(journal.Default.MustGet("nature"))
//	issues := a.Audit(fig)
//	fmt.Print(a.Report())
//
// # Code Auditor
//
// [CodeAuditor] scans plotting source text line by line with regular
// expressions: hard-coded figure sizes, low DPI and repeated per-panel
// legend calls, followed by whole-text checks for the style entry point and
// a layout call before saving. It does no parsing, so commented-out code
// still matches.
//
// # Strict mode
//
// [Strict] does not change which issues are produced. It only changes
// [FigureAuditor.Blocking]: warnings block as well as errors.
package audit
