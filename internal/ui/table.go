package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const maxColumnWidth = 48

// Table is a box-drawn table. Column widths follow the content, capped at
// maxColumnWidth.
type Table struct {
	Headers []string
	Rows    [][]string
	Styles  []lipgloss.Style // per column; ValueStyle when missing
	Summary string           // printed under the table when set
}

func (t *Table) widths() []int {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range t.Rows {
		for i := range widths {
			if i < len(row) {
				widths[i] = max(widths[i], runewidth.StringWidth(row[i]))
			}
		}
	}
	for i := range widths {
		widths[i] = min(widths[i], maxColumnWidth)
	}
	return widths
}

func (t *Table) style(col int) lipgloss.Style {
	if col < len(t.Styles) {
		return t.Styles[col]
	}
	return ValueStyle
}

func border(sb *strings.Builder, widths []int, left, mid, right string) {
	sb.WriteString(BorderStyle.Render(left))
	for i, w := range widths {
		sb.WriteString(BorderStyle.Render(strings.Repeat(Horizontal, w+2)))
		if i < len(widths)-1 {
			sb.WriteString(BorderStyle.Render(mid))
		}
	}
	sb.WriteString(BorderStyle.Render(right))
	sb.WriteString("\n")
}

// Render returns the table as a string
func (t *Table) Render() string {
	widths := t.widths()
	var sb strings.Builder

	border(&sb, widths, TopLeft, TopT, TopRight)

	// Header row
	sb.WriteString(BorderStyle.Render(Vertical))
	for i, h := range t.Headers {
		sb.WriteString(HeaderStyle.Render(" " + padRight(h, widths[i]) + " "))
		sb.WriteString(BorderStyle.Render(Vertical))
	}
	sb.WriteString("\n")

	border(&sb, widths, LeftT, Cross, RightT)

	// Data rows
	for _, row := range t.Rows {
		sb.WriteString(BorderStyle.Render(Vertical))
		for i := range widths {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			sb.WriteString(t.style(i).Render(" " + padRight(cell, widths[i]) + " "))
			sb.WriteString(BorderStyle.Render(Vertical))
		}
		sb.WriteString("\n")
	}

	border(&sb, widths, BottomLeft, BottomT, BottomRight)

	if t.Summary != "" {
		sb.WriteString("  " + t.Summary + "\n")
	}
	return sb.String()
}

// Write prints the table to w
func (t *Table) Write(w io.Writer) error {
	_, err := fmt.Fprint(w, t.Render())
	return err
}
