package cli

import (
	"bytes"
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/scifig/pkg/audit"
	"github.com/matzehuels/scifig/pkg/cache"
	"github.com/matzehuels/scifig/pkg/errors"
	"github.com/matzehuels/scifig/pkg/figure"
	scio "github.com/matzehuels/scifig/pkg/io"
	"github.com/matzehuels/scifig/pkg/journal"
	"github.com/matzehuels/scifig/pkg/patterns"
	"github.com/matzehuels/scifig/pkg/render"
	"github.com/matzehuels/scifig/pkg/style"
)

// figureCommand creates the figure command, which audits a JSON figure
// description and optionally repairs and renders it.
func (c *CLI) figureCommand() *cobra.Command {
	var (
		opts    auditOpts
		fix     bool
		saveAs  string
		fixedTo string
	)

	cmd := &cobra.Command{
		Use:   "figure <figure.json>",
		Short: "Audit a figure description against a journal",
		Long: `Audit a JSON figure description (as written by the demo command or the
HTTP API) for size, legend, font and label issues.

With --fix, auto-fixable issues are repaired: per-panel legends become one
unified legend, fonts are reset to the journal sizes and the width snaps to
the nearest standard width. The repaired figure is audited again.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			return c.runFigureAudit(cmd.Context(), cmd.OutOrStdout(), args[0], opts, fix, fixedTo, saveAs)
		},
	}
	opts.bind(cmd)
	cmd.Flags().BoolVar(&fix, "fix", false, "apply automatic fixes and audit again")
	cmd.Flags().StringVar(&fixedTo, "fixed-output", "", "write the fixed figure description to this file")
	cmd.Flags().StringVar(&saveAs, "save", "", "render the figure to this base path in the journal's formats")
	return cmd
}

func (c *CLI) runFigureAudit(ctx context.Context, w io.Writer, path string, opts auditOpts, fix bool, fixedTo, saveAs string) error {
	spec, err := journal.Get(opts.journal)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return errors.New(errors.ErrCodeFileNotFound, "file not found: %s", path)
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "read %s", path)
	}
	fig, err := scio.ReadFigure(bytes.NewReader(data))
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "parse %s", path)
	}

	ch := c.newCache(ctx, opts.noCache)
	defer ch.Close()

	var rep *audit.Report
	cached := false
	if fix {
		a := audit.NewFigureAuditor(spec, opts.auditorOptions()...)
		for _, applied := range autofix(fig, spec, a.Audit(fig)) {
			c.Logger.Info("applied fix", "fix", applied)
		}
		a.Audit(fig)
		rep = a.Result(path)
	} else {
		key := cache.NewDefaultKeyer().FigureAuditKey(spec.Fingerprint(), data)
		rep, cached = c.cachedReport(ctx, ch, key, func() *audit.Report {
			a := audit.NewFigureAuditor(spec, opts.auditorOptions()...)
			a.Audit(fig)
			return a.Result(path)
		})
	}
	rep.Source = path
	rep.Strict = opts.strict

	if fixedTo != "" {
		if err := scio.ExportFigure(fig, fixedTo); err != nil {
			return err
		}
		printFile(fixedTo)
	}
	if saveAs != "" {
		paths, err := render.Save(fig, saveAs, spec.Formats, spec.DPI)
		if err != nil {
			return err
		}
		for _, p := range paths {
			printFile(p)
		}
	}

	return c.finish(w, rep, cached, opts)
}

// autofix repairs the auto-fixable issues it knows how to handle and
// returns a description of each applied fix.
func autofix(fig *figure.Figure, spec *journal.Spec, issues []audit.Issue) []string {
	var applied []string
	seen := map[audit.IssueType]bool{}
	for _, i := range issues {
		if !i.AutoFixable || seen[i.Type] {
			continue
		}
		seen[i.Type] = true

		switch i.Type {
		case audit.RedundantLegend:
			if patterns.UnifyLegend(fig, fig.Panels) {
				applied = append(applied, "unified legend")
			}
		case audit.InconsistentFonts:
			style.ApplyToFigure(fig, spec)
			applied = append(applied, "journal font sizes")
		case audit.NonStandardSize:
			fig.SetSize(spec.NearestWidth(fig.Width), min(fig.Height, spec.MaxHeight))
			applied = append(applied, "standard size")
		}
	}
	return applied
}
