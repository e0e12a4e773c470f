package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/scifig/pkg/audit"
	"github.com/matzehuels/scifig/pkg/cache"
	"github.com/matzehuels/scifig/pkg/errors"
	scio "github.com/matzehuels/scifig/pkg/io"
	"github.com/matzehuels/scifig/pkg/journal"
)

// Output formats of the audit commands.
const (
	formatText   = "text"
	formatReport = "report"
	formatJSON   = "json"
)

var auditFormats = []string{formatText, formatReport, formatJSON}

// auditOpts holds the flags shared by the audit and figure commands.
type auditOpts struct {
	journal      string
	listJournals bool
	strict       bool
	format       string
	output       string
	interactive  bool
	noCache      bool
	fixes        bool
}

func (o *auditOpts) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.journal, "journal", "j", envOr(envJournal, defaultJournal),
		"target journal (env "+envJournal+")")
	cmd.Flags().BoolVar(&o.listJournals, "list-journals", false, "list available journals and exit")
	cmd.Flags().BoolVar(&o.strict, "strict", false, "treat warnings as blocking")
	cmd.Flags().StringVarP(&o.format, "format", "f", formatText, "output format: text, report, json")
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "also write the JSON report to this file")
	cmd.Flags().BoolVarP(&o.interactive, "interactive", "i", false, "browse issues interactively")
	cmd.Flags().BoolVar(&o.noCache, "no-cache", false, "disable the audit cache")
	cmd.Flags().BoolVar(&o.fixes, "fixes", false, "print the fix snippets of auto-fixable issues")
	_ = cmd.RegisterFlagCompletionFunc("journal", completeJournals)
}

func (o *auditOpts) validate() error {
	return errors.ValidateFormat(o.format, auditFormats)
}

func (o *auditOpts) auditorOptions() []audit.Option {
	if o.strict {
		return []audit.Option{audit.Strict()}
	}
	return nil
}

// auditCommand creates the audit command for plotting scripts.
func (c *CLI) auditCommand() *cobra.Command {
	var opts auditOpts

	cmd := &cobra.Command{
		Use:   "audit [file]",
		Short: "Audit a plotting script for publication issues",
		Long: `Audit a plotting script for publication issues before the figure is rendered.

The scan is line based: hardcoded figure sizes, low save resolutions, one
legend call per panel, a missing journal style and a missing layout call
before saving are reported with suggested fixes.

Exits with status 1 when errors are found, or warnings with --strict.`,
		Example: `  scifig audit plots.py
  scifig audit plots.py --journal science -v
  scifig audit --list-journals`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.listJournals {
				printJournalNames(cmd.OutOrStdout())
				return nil
			}
			if len(args) == 0 {
				return errors.New(errors.ErrCodeInvalidInput, "a source file is required (or use --list-journals)")
			}
			if err := opts.validate(); err != nil {
				return err
			}
			return c.runCodeAudit(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}
	opts.bind(cmd)
	return cmd
}

func (c *CLI) runCodeAudit(ctx context.Context, w io.Writer, path string, opts auditOpts) error {
	warning, err := errors.ValidateSourcePath(path)
	if err != nil {
		return err
	}
	if warning != "" {
		printWarning("%s", warning)
	}

	spec, err := journal.Get(opts.journal)
	if err != nil {
		return err
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "read %s", path)
	}

	ch := c.newCache(ctx, opts.noCache)
	defer ch.Close()

	key := cache.NewDefaultKeyer().CodeAuditKey(spec.Fingerprint(), string(src))
	rep, cached := c.cachedReport(ctx, ch, key, func() *audit.Report {
		a := audit.NewCodeAuditor(spec, opts.auditorOptions()...)
		a.Audit(string(src))
		return a.Result(path)
	})
	rep.Source = path
	rep.Strict = opts.strict

	return c.finish(w, rep, cached, opts)
}

// cachedReport returns the cached report under key, or runs the audit and
// caches its result. Cache failures only cost the cache.
func (c *CLI) cachedReport(ctx context.Context, ch cache.Cache, key string, run func() *audit.Report) (*audit.Report, bool) {
	data, ok, err := ch.Get(ctx, key)
	if err != nil {
		c.Logger.Debug("cache read failed", "err", err)
	}
	if ok {
		if rep, err := scio.ReadReport(bytes.NewReader(data)); err == nil {
			c.Logger.Debug("using cached report", "id", rep.ID)
			return rep, true
		}
	}

	rep := run()
	var buf bytes.Buffer
	if err := scio.WriteReport(rep, &buf); err == nil {
		if err := ch.Set(ctx, key, buf.Bytes(), cache.AuditTTL); err != nil {
			c.Logger.Debug("cache write failed", "err", err)
		}
	}
	return rep, false
}

// finish prints rep in the requested format, writes the optional JSON file,
// runs the issue browser and turns blocking findings into an exit status.
func (c *CLI) finish(w io.Writer, rep *audit.Report, cached bool, opts auditOpts) error {
	switch opts.format {
	case formatJSON:
		if err := scio.WriteReport(rep, w); err != nil {
			return err
		}
	case formatReport:
		fmt.Fprintln(w, rep.Text())
	default:
		printListing(w, rep, cached, c.verbose)
	}

	if opts.fixes {
		for _, i := range rep.Issues {
			if i.AutoFixable && i.Fix != "" {
				fmt.Fprintf(w, "# %s\n%s\n\n", i.Type.Name(), i.Fix)
			}
		}
	}

	if opts.output != "" {
		if err := scio.ExportReport(rep, opts.output); err != nil {
			return err
		}
		c.Logger.Info("wrote report", "file", opts.output)
	}

	if opts.interactive && len(rep.Issues) > 0 {
		if _, err := tea.NewProgram(newIssueListModel(rep)).Run(); err != nil {
			return fmt.Errorf("issue browser: %w", err)
		}
	}

	if rep.Blocking() {
		return &ExitError{Code: 1}
	}
	return nil
}
