package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/scifig/pkg/audit"
)

// WriteReport encodes r as indented JSON to w.
func WriteReport(r *audit.Report, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ReadReport decodes a report from r. The summary is recomputed from the
// issues so a hand-edited file cannot disagree with its contents.
func ReadReport(r io.Reader) (*audit.Report, error) {
	var rep audit.Report
	if err := json.NewDecoder(r).Decode(&rep); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if rep.Issues == nil {
		rep.Issues = []audit.Issue{}
	}
	rep.Summary = audit.Summarize(rep.Issues)
	return &rep, nil
}

// ExportReport writes r to a JSON file at path.
func ExportReport(r *audit.Report, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteReport(r, f)
}

// ImportReport reads a report from the JSON file at path.
func ImportReport(path string) (*audit.Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadReport(f)
}
