package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/scifig/pkg/audit"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	detailBoxStyle    = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim).
				Padding(0, 1)
)

// IssueListModel is the bubbletea model for browsing the issues of a report.
type IssueListModel struct {
	Report   *audit.Report
	Cursor   int
	Expanded bool
	Height   int
	Offset   int
}

func newIssueListModel(rep *audit.Report) IssueListModel {
	return IssueListModel{Report: rep, Height: 12}
}

func (m IssueListModel) Init() tea.Cmd {
	return nil
}

func (m IssueListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	n := len(m.Report.Issues)
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < n-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter", " ":
			m.Expanded = !m.Expanded
		}
	case tea.WindowSizeMsg:
		// Leave room for the header and the detail box.
		m.Height = max(msg.Height-14, 5)
	}
	return m, nil
}

func (m IssueListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("%s audit · %s", m.Report.Kind, m.Report.Journal)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ details  q quit"))
	b.WriteString("\n\n")

	issues := m.Report.Issues
	if len(issues) == 0 {
		b.WriteString(styleIconSuccess.Render(iconSuccess) + " No issues found\n")
		return b.String()
	}

	end := min(m.Offset+m.Height, len(issues))
	rows := make([][]string, 0, end-m.Offset)
	for i := m.Offset; i < end; i++ {
		is := issues[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		loc := is.Location
		if loc == "" {
			loc = "—"
		}
		rows = append(rows, []string{cursor, is.Severity.String(), is.Type.Name(), loc})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Severity", "Issue", "Location").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			idx := m.Offset + row
			if idx >= len(issues) {
				return lipgloss.NewStyle()
			}
			if col == 1 {
				return severityStyles[issues[idx].Severity]
			}
			if idx == m.Cursor {
				return listSelectedStyle
			}
			return lipgloss.NewStyle()
		})
	b.WriteString(t.Render())
	b.WriteString("\n")

	cur := issues[m.Cursor]
	detail := cur.Message
	if m.Expanded {
		if cur.Suggestion != "" {
			detail += "\n\n" + StyleDim.Render("Suggestion: ") + cur.Suggestion
		}
		if cur.Fix != "" {
			detail += "\n\n" + StyleDim.Render("Fix:") + "\n" + cur.Fix
		}
	}
	b.WriteString(detailBoxStyle.Render(detail))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(issues))))

	return b.String()
}
