package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/vietdv277/chimectl/internal/aws"
)

// SelectProfile runs the interactive profile selector, pre-highlighting the
// active profile.
func SelectProfile(profiles []aws.Profile, active string) (string, error) {
	items := make([]Item, 0, len(profiles))
	for _, p := range profiles {
		items = append(items, Item{
			Key:    p.Name,
			Marked: p.Name == active,
			Cells: []Cell{
				{Text: p.Name, Style: NameStyle},
				{Text: formatOptional(p.Region), Style: ValueStyle},
				{Text: p.Source, Style: MutedStyle},
			},
			Details: []Detail{
				{Label: "Profile:", Value: p.Name, Style: NameStyle},
				{Label: "Region:", Value: formatOptional(p.Region), Style: ValueStyle},
				{Label: "Source:", Value: p.Source, Style: MutedStyle},
			},
		})
	}
	return Select("Profile Details", "profiles", items)
}

// ProfileTable lists AWS profiles, marking the active one
func ProfileTable(profiles []aws.Profile, active string) *Table {
	t := &Table{
		Headers: []string{"", "Profile", "Region", "Source"},
		Styles:  []lipgloss.Style{OKStyle, NameStyle, ValueStyle, MutedStyle},
	}
	for _, p := range profiles {
		marker := ""
		if p.Name == active {
			marker = "*"
		}
		t.Rows = append(t.Rows, []string{marker, p.Name, formatOptional(p.Region), p.Source})
	}
	t.Summary = fmt.Sprintf("%d profiles", len(profiles))
	return t
}
