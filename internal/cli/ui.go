package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/scifig/pkg/audit"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - infos
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)
)

var severityStyles = map[audit.Severity]lipgloss.Style{
	audit.Error:   lipgloss.NewStyle().Bold(true).Foreground(colorRed),
	audit.Warning: lipgloss.NewStyle().Bold(true).Foreground(colorYellow),
	audit.Info:    lipgloss.NewStyle().Bold(true).Foreground(colorBlue),
}

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	iconCached  = "cached"
	iconFresh   = "fresh"
)

// =============================================================================
// Status Output
// =============================================================================

func printSuccess(format string, args ...any) {
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...any) {
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) {
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + fmt.Sprintf(format, args...))
}

func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// =============================================================================
// Audit Listing
// =============================================================================

const listingRule = 60

var severityGroups = []struct {
	severity audit.Severity
	title    string
	icon     string
}{
	{audit.Error, "ERRORS", "🔴"},
	{audit.Warning, "WARNINGS", "🟡"},
	{audit.Info, "INFO", "🔵"},
}

// printListing writes the flat issue listing of rep grouped by severity.
// Suggestions are included when verbose.
func printListing(w io.Writer, rep *audit.Report, cached, verbose bool) {
	rule := strings.Repeat("=", listingRule)

	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, StyleTitle.Render("Figure Audit Report"))
	fmt.Fprintln(w, rule)
	if rep.Source != "" {
		fmt.Fprintf(w, "File:    %s\n", rep.Source)
	}
	fmt.Fprintf(w, "Journal: %s\n", rep.Journal)
	status := styleComputed.Render(iconFresh)
	if cached {
		status = styleCached.Render(iconCached)
	}
	fmt.Fprintf(w, "Result:  %s\n", status)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)

	if len(rep.Issues) == 0 {
		fmt.Fprintln(w, "✅ No issues found! Publication-ready.")
		fmt.Fprintln(w)
		return
	}

	for _, g := range severityGroups {
		var group []audit.Issue
		for _, i := range rep.Issues {
			if i.Severity == g.severity {
				group = append(group, i)
			}
		}
		if len(group) == 0 {
			continue
		}
		fmt.Fprintf(w, "%s %s\n", g.icon, severityStyles[g.severity].Render(fmt.Sprintf("%s (%d):", g.title, len(group))))
		for _, i := range group {
			fmt.Fprintf(w, "   [%s] %s\n", i.Type.Name(), i.Message)
			if i.Location != "" {
				fmt.Fprintf(w, "      Location: %s\n", i.Location)
			}
			if verbose && i.Suggestion != "" {
				fmt.Fprintf(w, "      Fix: %s\n", i.Suggestion)
			}
		}
		fmt.Fprintln(w)
	}

	s := rep.Summary
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Summary: %d errors, %d warnings, %d info\n", s.Errors, s.Warnings, s.Infos)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)
}
