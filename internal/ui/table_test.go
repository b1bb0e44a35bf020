package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestRenderTable(t *testing.T) {
	columns := []TableColumn{
		{Title: "Property", Style: KeyStyle},
		{Title: "Value", Style: ValueStyle},
	}
	rows := [][]string{
		{"GPU Name", "Apple M1"},
		{"GPU Memory", "8 GB"},
	}

	out := RenderTable("M1 GPU Statistics", columns, rows)

	assert.Contains(t, out, "M1 GPU Statistics")
	assert.Contains(t, out, "Property")
	assert.Contains(t, out, "Value")
	assert.Contains(t, out, "Apple M1")
	assert.Contains(t, out, "8 GB")
	assert.Contains(t, out, "╭", "should use a rounded border")
	assert.Contains(t, out, "╯")

	lines := strings.Split(out, "\n")
	assert.Contains(t, lines[0], "M1 GPU Statistics", "title goes above the table")
}

func TestRenderTable_RowOrder(t *testing.T) {
	columns := []TableColumn{{Title: "Engine"}, {Title: "Usage"}}
	rows := [][]string{{"Zeta", "1.00%"}, {"Alpha", "2.00%"}}

	out := RenderTable("", columns, rows)

	assert.Less(t, strings.Index(out, "Zeta"), strings.Index(out, "Alpha"))
}

func TestRenderTable_EmptyRows(t *testing.T) {
	columns := []TableColumn{{Title: "PID"}, {Title: "CPU Usage"}, {Title: "Process Name"}}

	out := RenderTable("Top GPU Processes", columns, nil)

	assert.Contains(t, out, "Top GPU Processes")
	assert.Contains(t, out, "PID")
	assert.Contains(t, out, "Process Name")
}

func TestRenderTable_NoTitle(t *testing.T) {
	out := RenderTable("", []TableColumn{{Title: "A", Style: lipgloss.NewStyle()}}, [][]string{{"x"}})

	lines := strings.Split(out, "\n")
	assert.True(t, strings.HasPrefix(lines[0], "╭"))
}

func TestJoinSections(t *testing.T) {
	assert.Equal(t, "a\n\nb\n\nc", JoinSections("a", "b", "c"))
	assert.Equal(t, "a", JoinSections("a"))
}
