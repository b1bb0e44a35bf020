package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// TableColumn defines a table column header and the style of its cells.
type TableColumn struct {
	Title string
	Style lipgloss.Style
}

// RenderTable renders a titled, rounded-border table. The title is centered
// above the table. A table with no rows still shows its headers.
func RenderTable(title string, columns []TableColumn, rows [][]string) string {
	headers := make([]string, len(columns))
	for i, c := range columns {
		headers[i] = c.Title
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(BorderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return HeaderStyle.Padding(0, 1)
			}
			if col < len(columns) {
				return columns[col].Style.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	body := t.String()
	if title == "" {
		return body
	}

	width := lipgloss.Width(body)
	heading := TitleStyle.Width(width).Align(lipgloss.Center).Render(title)
	return lipgloss.JoinVertical(lipgloss.Left, heading, body)
}

// JoinSections stacks rendered blocks with a blank line between them.
func JoinSections(sections ...string) string {
	return strings.Join(sections, "\n\n")
}
