package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	tableCellMaxWidth = 50
	tableCellEllipsis = "..."
	tableColumnGap    = 2
)

// TableBuilder collects rows and renders a formatted table.
type TableBuilder struct {
	headers []string
	rows    [][]string
}

// NewTableBuilder returns a builder with preallocated rows.
func NewTableBuilder(headers []string, capacity int) *TableBuilder {
	return &TableBuilder{headers: headers, rows: make([][]string, 0, capacity)}
}

// AddRow appends a row to the table.
func (builder *TableBuilder) AddRow(row []string) {
	builder.rows = append(builder.rows, row)
}

// String renders the table output.
func (builder *TableBuilder) String() string {
	return FormatTable(builder.headers, builder.rows)
}

// tableViewportWidth bounds rendered lines. Zero means unbounded.
var tableViewportWidth = func() int {
	return TerminalWidth(0)
}

// FormatTable renders headers and rows as left-aligned columns separated by
// two spaces. Cell widths ignore ANSI styling. When stdout is a terminal, the
// last column is truncated so lines fit its width.
func FormatTable(headers []string, rows [][]string) string {
	lines := make([][]string, 0, len(rows)+1)
	lines = append(lines, normalizeRow(headers))
	for _, row := range rows {
		lines = append(lines, normalizeRow(row))
	}

	widths := make([]int, len(headers))
	for _, line := range lines {
		for i, cell := range line {
			if i < len(widths) {
				widths[i] = max(widths[i], displayWidth(cell))
			}
		}
	}

	lastWidth := 0
	if viewport := tableViewportWidth(); viewport > 0 && len(widths) > 0 {
		used := 0
		for _, width := range widths[:len(widths)-1] {
			used += width + tableColumnGap
		}
		lastWidth = max(viewport-used, 1)
	}

	var b strings.Builder
	for _, line := range lines {
		for i, cell := range line {
			if i == len(line)-1 {
				b.WriteString(fitCell(cell, lastWidth))
				break
			}
			b.WriteString(cell)
			padding := tableColumnGap
			if i < len(widths) {
				padding += widths[i] - displayWidth(cell)
			}
			b.WriteString(strings.Repeat(" ", padding))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func normalizeRow(row []string) []string {
	normalized := make([]string, len(row))
	for i, cell := range row {
		normalized[i] = normalizeTableCell(cell)
	}
	return normalized
}

// fitCell truncates value to width visible cells, ending in an ellipsis.
// Zero means no limit.
func fitCell(value string, width int) string {
	if width <= 0 || displayWidth(value) <= width {
		return value
	}
	if width <= len(tableCellEllipsis) {
		return ansi.Truncate(value, width, "")
	}
	return ansi.Truncate(value, width, tableCellEllipsis)
}

// TruncateTableCell limits cell width while preserving visible characters.
func TruncateTableCell(value string) string {
	return fitCell(normalizeTableCell(value), tableCellMaxWidth)
}

func displayWidth(value string) int {
	return lipgloss.Width(value)
}

func normalizeTableCell(value string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ").Replace(value)
}
