package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/vietdv277/chimectl/internal/config"
)

func contextItems(contexts map[string]*config.Context, current string) []Item {
	names := config.ContextNames(contexts)
	items := make([]Item, 0, len(names))
	for _, name := range names {
		ctx := contexts[name]
		nameStyle := NameStyle
		if name == current {
			nameStyle = OKStyle
		}
		items = append(items, Item{
			Key:    name,
			Marked: name == current,
			Cells: []Cell{
				{Text: name, Style: nameStyle},
				{Text: formatOptional(ctx.Profile), Style: MutedStyle},
				{Text: formatOptional(ctx.Region), Style: ValueStyle},
			},
			Details: []Detail{
				{Label: "Context:", Value: name, Style: NameStyle},
				{Label: "Profile:", Value: formatOptional(ctx.Profile), Style: MutedStyle},
				{Label: "Region:", Value: formatOptional(ctx.Region), Style: ValueStyle},
			},
		})
	}
	return items
}

// SelectContext runs the interactive context selector and returns the chosen
// context name. The current context is pre-highlighted.
func SelectContext(contexts map[string]*config.Context, current string) (string, error) {
	return Select("Context Details", "contexts", contextItems(contexts, current))
}

// ContextTable lists contexts, marking the current one
func ContextTable(contexts map[string]*config.Context, current string) *Table {
	t := &Table{
		Headers: []string{"", "Context", "Profile", "Region"},
		Styles:  []lipgloss.Style{OKStyle, NameStyle, MutedStyle, ValueStyle},
	}
	for _, name := range config.ContextNames(contexts) {
		ctx := contexts[name]
		marker := ""
		if name == current {
			marker = "*"
		}
		t.Rows = append(t.Rows, []string{marker, name, formatOptional(ctx.Profile), formatOptional(ctx.Region)})
	}
	t.Summary = fmt.Sprintf("%d contexts configured", len(contexts))
	if current != "" {
		t.Summary += ", current: " + OKStyle.Render(current)
	}
	return t
}
