// Package io provides JSON import and export for audit reports and figure
// descriptions.
//
// # Reports
//
// [WriteReport] and [ReadReport] serialize an [audit.Report], the record of
// one audit run with its ID, journal, summary and issues:
//
//	{
//	  "id": "0b6c8e8e-5a0e-4f7b-9a62-6d1f0b0c8b1e",
//	  "kind": "code",
//	  "journal": "Nature",
//	  "summary": {"errors": 0, "warnings": 1, "infos": 2},
//	  "issues": [
//	    {"type": "low_dpi", "severity": "WARNING", "message": "...", ...}
//	  ]
//	}
//
// Severities are written by name and issue types by value; unknown values
// are rejected on import.
//
// # Figures
//
// [WriteFigure] and [ReadFigure] serialize a [figure.Figure] so that a
// figure produced elsewhere can be audited with the figure auditor:
//
//	{
//	  "width": 7, "height": 2.5, "rows": 1, "cols": 2,
//	  "panels": [
//	    {
//	      "title": {"text": "(a)", "size": 9},
//	      "xlabel": {"text": "Time (s)", "size": 9},
//	      "series": [{"kind": "line", "label": "A", "x": [0, 1], "y": [0, 1]}],
//	      "legend": {"loc": "upper right", "labels": ["A"]}
//	    },
//	    ...
//	  ]
//	}
//
// Legend labels are linked back to the panel series carrying the same label.
// Panel count must equal rows*cols.
//
// # Files
//
// [ImportReport], [ExportReport], [ImportFigure] and [ExportFigure] are file
// wrappers around the reader and writer functions.
package io
