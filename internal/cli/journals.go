package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/scifig/pkg/journal"
	"github.com/matzehuels/scifig/pkg/units"
)

// journalsCommand creates the journals command: a comparison table of all
// journals, or the full specification of one.
func (c *CLI) journalsCommand() *cobra.Command {
	var namesOnly bool

	cmd := &cobra.Command{
		Use:   "journals [name]",
		Short: "List journal specifications",
		Example: `  scifig journals
  scifig journals nature-communications
  scifig journals --names`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if len(args) == 1 {
				spec, err := journal.Get(args[0])
				if err != nil {
					return err
				}
				printSpec(w, spec)
				return nil
			}
			if namesOnly {
				printJournalNames(w)
				return nil
			}
			fmt.Fprintln(w, journalTable(journal.Default.Specs()))
			return nil
		},
	}
	cmd.Flags().BoolVar(&namesOnly, "names", false, "print display names only")
	return cmd
}

// printJournalNames prints the sorted display names.
func printJournalNames(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available Journal Standards:")
	fmt.Fprintln(w, strings.Repeat("-", 30))
	for _, name := range journal.List() {
		fmt.Fprintf(w, "  - %s\n", name)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: scifig audit file.py --journal <name>")
	fmt.Fprintln(w)
}

func journalTable(specs []*journal.Spec) string {
	rows := make([][]string, 0, len(specs))
	for _, s := range specs {
		rows = append(rows, []string{
			s.Name,
			string(s.Category),
			fmt.Sprintf("%.1f\" (%.0f mm)", s.WidthSingle, units.InchesToMM(s.WidthSingle)),
			fmt.Sprintf("%.1f\" (%.0f mm)", s.WidthDouble, units.InchesToMM(s.WidthDouble)),
			fmt.Sprintf("%s pt", formatPt(s.FontAxisLabel)),
			strconv.Itoa(s.DPI),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Journal", "Category", "Single", "Double", "Font", "DPI").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 0 {
				return lipgloss.NewStyle().Foreground(colorCyan)
			}
			return lipgloss.NewStyle()
		}).
		Render()
}

// printSpec prints every field of one specification.
func printSpec(w io.Writer, s *journal.Spec) {
	key := lipgloss.NewStyle().Foreground(colorGray).Width(16)
	line := func(k, v string) { fmt.Fprintln(w, key.Render(k)+" "+v) }

	fmt.Fprintln(w, StyleTitle.Render(s.Name))
	line("Category", string(s.Category))
	line("Widths", fmt.Sprintf("%s / %s / %s in", formatPt(s.WidthSingle), formatPt(s.Width15Col), formatPt(s.WidthDouble)))
	line("Max height", fmt.Sprintf("%s in (%.0f mm)", formatPt(s.MaxHeight), units.InchesToMM(s.MaxHeight)))
	line("Fonts", fmt.Sprintf("label %s, tick %s, title %s, legend %s, annotation %s pt (%s)",
		formatPt(s.FontAxisLabel), formatPt(s.FontTickLabel), formatPt(s.FontTitle),
		formatPt(s.FontLegend), formatPt(s.FontAnnotation), s.FontFamily))
	line("Line widths", fmt.Sprintf("data %s, fit %s, reference %s, axis %s pt",
		formatPt(s.LineWidthData), formatPt(s.LineWidthFit), formatPt(s.LineWidthReference), formatPt(s.LineWidthAxis)))
	line("Markers", fmt.Sprintf("data %s, highlight %s", formatPt(s.MarkerSizeData), formatPt(s.MarkerSizeHighlight)))
	line("DPI", strconv.Itoa(s.DPI))
	line("Formats", strings.Join(s.Formats, ", "))
	line("Colors", strings.Join(s.ColorCycle, " "))
	if s.Notes != "" {
		line("Notes", s.Notes)
	}
}

func formatPt(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
