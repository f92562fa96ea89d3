package ui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	listHeight       = 8
	detailLabelWidth = 12
	minWidth         = 60
	maxWidth         = 120
)

// ErrSelectionCancelled is returned when the user quits a selector
var ErrSelectionCancelled = errors.New("selection cancelled")

// Cell is one styled column of a selector row
type Cell struct {
	Text  string
	Style lipgloss.Style
}

// Detail is one labelled line of the details panel
type Detail struct {
	Label string
	Value string
	Style lipgloss.Style
}

// Item is one selectable row
type Item struct {
	Key     string // returned on selection
	Marked  bool   // shown with a * marker
	Cells   []Cell
	Details []Detail
}

func (it Item) matches(query string) bool {
	if strings.Contains(strings.ToLower(it.Key), query) {
		return true
	}
	for _, c := range it.Cells {
		if strings.Contains(strings.ToLower(c.Text), query) {
			return true
		}
	}
	return false
}

// Model is the bubbletea model shared by the interactive selectors
type Model struct {
	title        string // details panel header
	noun         string // plural shown in the status bar
	items        []Item
	filtered     []Item
	cursor       int
	offset       int // for scrolling
	search       string
	selected     *Item
	quitting     bool
	cancelled    bool
	termWidth    int
	contentWidth int   // width inside the box (excluding borders)
	colWidths    []int // one per cell, the last one stretches
	detailRows   int
}

// NewModel creates a selector over items
func NewModel(title, noun string, items []Item) Model {
	m := Model{
		title:     title,
		noun:      noun,
		items:     items,
		filtered:  items,
		termWidth: 80, // default
	}
	for _, it := range items {
		m.detailRows = max(m.detailRows, len(it.Details))
	}
	m.calculateWidths()
	return m
}

// calculateWidths computes responsive column widths based on terminal size
func (m *Model) calculateWidths() {
	m.contentWidth = m.termWidth - 2
	if m.contentWidth < minWidth {
		m.contentWidth = minWidth
	}
	if m.contentWidth > maxWidth {
		m.contentWidth = maxWidth
	}

	cols := 0
	for _, it := range m.items {
		cols = max(cols, len(it.Cells))
	}
	m.colWidths = make([]int, cols)
	for _, it := range m.items {
		for i, c := range it.Cells {
			m.colWidths[i] = max(m.colWidths[i], runewidth.StringWidth(c.Text))
		}
	}
	if cols == 0 {
		return
	}

	// cursor(3) + columns separated by 2 spaces; the last column takes the rest
	fixed := 3
	for i := 0; i < cols-1; i++ {
		fixed += m.colWidths[i] + 2
	}
	m.colWidths[cols-1] = max(m.contentWidth-fixed, 10)
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.WindowSize()
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.calculateWidths()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			m.cancelled = true
			return m, tea.Quit

		case tea.KeyEnter:
			if len(m.filtered) > 0 {
				m.selected = &m.filtered[m.cursor]
				m.quitting = true
				return m, tea.Quit
			}

		case tea.KeyUp:
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}

		case tea.KeyDown:
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
				if m.cursor >= m.offset+listHeight {
					m.offset = m.cursor - listHeight + 1
				}
			}

		case tea.KeyBackspace:
			if len(m.search) > 0 {
				m.search = m.search[:len(m.search)-1]
				m.filterItems()
			}

		case tea.KeyRunes:
			m.search += string(msg.Runes)
			m.filterItems()
		}
	}

	return m, nil
}

// filterItems filters the items based on the search query
func (m *Model) filterItems() {
	if m.search == "" {
		m.filtered = m.items
	} else {
		query := strings.ToLower(m.search)
		m.filtered = nil
		for _, it := range m.items {
			if it.matches(query) {
				m.filtered = append(m.filtered, it)
			}
		}
	}
	// Reset cursor if out of bounds
	if m.cursor >= len(m.filtered) {
		if len(m.filtered) > 0 {
			m.cursor = len(m.filtered) - 1
		} else {
			m.cursor = 0
		}
	}
	m.offset = 0
}

func (m Model) blankLine() string {
	return BorderStyle.Render(Vertical) + strings.Repeat(" ", m.contentWidth) + BorderStyle.Render(Vertical) + "\n"
}

func (m Model) rule(left, right string) string {
	return BorderStyle.Render(left) + BorderStyle.Render(strings.Repeat(Horizontal, m.contentWidth)) + BorderStyle.Render(right) + "\n"
}

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	w := m.contentWidth

	sb.WriteString(m.rule(TopLeft, TopRight))

	// Search input
	sb.WriteString(BorderStyle.Render(Vertical))
	sb.WriteString(NameStyle.Render(padRight(" > "+m.search, w)))
	sb.WriteString(BorderStyle.Render(Vertical))
	sb.WriteString("\n")
	sb.WriteString(m.blankLine())

	visibleEnd := min(m.offset+listHeight, len(m.filtered))
	for i := m.offset; i < visibleEnd; i++ {
		sb.WriteString(m.renderRow(i))
	}
	for i := visibleEnd; i < m.offset+listHeight; i++ {
		sb.WriteString(m.blankLine())
	}

	sb.WriteString(m.blankLine())
	sb.WriteString(m.rule(LeftT, RightT))
	sb.WriteString(m.renderDetailsPanel())
	sb.WriteString(m.rule(BottomLeft, BottomRight))
	sb.WriteString(m.renderStatusBar())

	return sb.String()
}

func (m Model) renderRow(idx int) string {
	it := m.filtered[idx]
	w := m.contentWidth

	var line strings.Builder
	plainWidth := 0

	// 3-char prefix: space + cursor(>) + marker(*)
	cursor := " "
	if idx == m.cursor {
		cursor = ">"
	}
	marker := " "
	if it.Marked {
		marker = "*"
	}
	line.WriteString(" " + cursor + marker)
	plainWidth += 3

	for i, width := range m.colWidths {
		if i > 0 {
			line.WriteString("  ")
			plainWidth += 2
		}
		var c Cell
		if i < len(it.Cells) {
			c = it.Cells[i]
		}
		line.WriteString(c.Style.Render(padRight(c.Text, width)))
		plainWidth += width
	}

	if plainWidth < w {
		line.WriteString(strings.Repeat(" ", w-plainWidth))
	}

	return BorderStyle.Render(Vertical) + line.String() + BorderStyle.Render(Vertical) + "\n"
}

func (m Model) renderDetailsPanel() string {
	var sb strings.Builder
	w := m.contentWidth

	sb.WriteString(BorderStyle.Render(Vertical))
	sb.WriteString(HeaderStyle.Render(padRight(" "+m.title, w)))
	sb.WriteString(BorderStyle.Render(Vertical))
	sb.WriteString("\n")

	sb.WriteString(BorderStyle.Render(Vertical))
	sb.WriteString(MutedStyle.Render(padRight(" "+strings.Repeat(Horizontal, 20), w)))
	sb.WriteString(BorderStyle.Render(Vertical))
	sb.WriteString("\n")

	written := 0
	if len(m.filtered) == 0 {
		sb.WriteString(BorderStyle.Render(Vertical))
		sb.WriteString(MutedStyle.Render(padRight(" No "+m.noun+" found", w)))
		sb.WriteString(BorderStyle.Render(Vertical))
		sb.WriteString("\n")
		written = 1
	} else {
		for _, d := range m.filtered[m.cursor].Details {
			sb.WriteString(m.renderDetail(d))
			written++
		}
	}

	// Keep the panel height stable while the cursor moves
	for ; written < m.detailRows; written++ {
		sb.WriteString(m.blankLine())
	}
	sb.WriteString(m.blankLine())

	return sb.String()
}

func (m Model) renderDetail(d Detail) string {
	w := m.contentWidth

	labelText := padRight(d.Label, detailLabelWidth)
	valueText := d.Value
	maxValueWidth := w - 1 - detailLabelWidth
	if runewidth.StringWidth(valueText) > maxValueWidth {
		valueText = runewidth.Truncate(valueText, maxValueWidth, "...")
	}

	plainWidth := 1 + detailLabelWidth + runewidth.StringWidth(valueText)
	line := MutedStyle.Render(" "+labelText) + d.Style.Render(valueText)
	if plainWidth < w {
		line += strings.Repeat(" ", w-plainWidth)
	}

	return BorderStyle.Render(Vertical) + line + BorderStyle.Render(Vertical) + "\n"
}

func (m Model) renderStatusBar() string {
	var sb strings.Builder
	w := m.contentWidth + 2 // include border width for status bar

	countInfo := fmt.Sprintf("  %d/%d %s", len(m.filtered), len(m.items), m.noun)
	hintsPlain := "[Enter:select] [Esc:cancel]"

	padding := w - runewidth.StringWidth(countInfo) - runewidth.StringWidth(hintsPlain)

	sb.WriteString(countInfo)
	if padding > 0 {
		sb.WriteString(strings.Repeat(" ", padding))
	}
	sb.WriteString(HintStyle.Render(hintsPlain))
	sb.WriteString("\n")

	return sb.String()
}

// Select runs the selector and returns the key of the chosen item. The
// cursor starts on the first marked item.
func Select(title, noun string, items []Item) (string, error) {
	if len(items) == 0 {
		return "", fmt.Errorf("no %s available", noun)
	}

	m := NewModel(title, noun, items)
	for i, it := range items {
		if it.Marked {
			m.cursor = i
			m.offset = max(0, i-listHeight+1)
			break
		}
	}

	finalModel, err := tea.NewProgram(m).Run()
	if err != nil {
		return "", fmt.Errorf("error running selector: %w", err)
	}

	result := finalModel.(Model)
	if result.cancelled || result.selected == nil {
		return "", ErrSelectionCancelled
	}
	return result.selected.Key, nil
}
