// Package table renders rows of values as a terminal table
package table

import (
	"fmt"
	"strings"
	"time"

	// Packages
	lipgloss "github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Data is implemented by anything which can be shown as a table
type Data interface {
	// Header returns the column labels
	Header() []string

	// Len returns the number of rows
	Len() int

	// Row returns the cells for row i, or nil to skip the row
	Row(i int) []any
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	borderStyle = lipgloss.NewStyle().Faint(true)
)

const (
	empty = "-"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Render returns the table as a string. When width is positive and the
// table is wider, columns are wrapped to fit.
func Render(data Data, width int) string {
	t := lgtable.New().
		Headers(data.Header()...).
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Wrap(true).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == lgtable.HeaderRow {
				return headerStyle
			}
			return lipgloss.NewStyle()
		})
	for i := range data.Len() {
		if row := data.Row(i); row != nil {
			cells := make([]string, len(row))
			for j, v := range row {
				cells[j] = Cell(v)
			}
			t.Row(cells...)
		}
	}

	result := t.Render()
	if width > 0 && lipgloss.Width(result) > width {
		result = t.Width(width).Render()
	}
	return result
}

// Cell returns the text for a value. Empty and zero values are shown as
// a dash.
func Cell(v any) string {
	switch v := v.(type) {
	case nil:
		return empty
	case string:
		if strings.TrimSpace(v) == "" {
			return empty
		}
		return v
	case time.Time:
		if v.IsZero() {
			return empty
		}
		return v.Format(time.DateOnly)
	case []string:
		if len(v) == 0 {
			return empty
		}
		return strings.Join(v, ", ")
	case int, int64, uint, uint64, float64:
		if fmt.Sprint(v) == "0" {
			return empty
		}
		return fmt.Sprint(v)
	default:
		if s := fmt.Sprint(v); s != "" {
			return s
		}
		return empty
	}
}
