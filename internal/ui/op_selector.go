package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vietdv277/chimectl/internal/operation"
)

func opKey(d *operation.Descriptor) string {
	return d.Service + "/" + d.Name
}

// Usage returns the command line synopsis of an operation
func Usage(binary string, d *operation.Descriptor) string {
	parts := []string{binary, d.Service, d.CommandName()}
	for _, p := range d.Positional() {
		arg := "<" + p.Flag() + ">"
		if !p.Required {
			arg = "[" + arg + "]"
		}
		parts = append(parts, arg)
	}
	for _, p := range d.Params {
		if p.Position == 0 && p.Required {
			parts = append(parts, "--"+p.Flag()+" <"+p.Kind.String()+">")
		}
	}
	return strings.Join(parts, " ") + " [flags]"
}

func paramNames(d *operation.Descriptor) string {
	names := make([]string, 0, len(d.Params))
	for _, p := range d.Params {
		name := p.Name
		if p.Required {
			name += "*"
		}
		names = append(names, name)
	}
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}

// SelectOperation runs the interactive operation browser
func SelectOperation(descs []*operation.Descriptor) (*operation.Descriptor, error) {
	byKey := make(map[string]*operation.Descriptor, len(descs))
	items := make([]Item, 0, len(descs))
	for _, d := range descs {
		byKey[opKey(d)] = d
		items = append(items, Item{
			Key: opKey(d),
			Cells: []Cell{
				{Text: d.Service, Style: ServiceStyle},
				{Text: d.CommandName(), Style: NameStyle},
				{Text: d.Summary, Style: MutedStyle},
			},
			Details: []Detail{
				{Label: "Operation:", Value: d.Name, Style: NameStyle},
				{Label: "Binding:", Value: d.Method + " " + d.Path, Style: ValueStyle},
				{Label: "Params:", Value: paramNames(d), Style: ValueStyle},
				{Label: "Select:", Value: d.SelectOrDefault(), Style: IDStyle},
				{Label: "Impact:", Value: d.Impact.String(), Style: ImpactStyle(d.Impact)},
				{Label: "Usage:", Value: Usage("chimectl", d), Style: HintStyle},
			},
		})
	}

	key, err := Select("Operation Details", "operations", items)
	if err != nil {
		return nil, err
	}
	return byKey[key], nil
}

// OperationTable lists operations one per row
func OperationTable(descs []*operation.Descriptor) *Table {
	t := &Table{
		Headers: []string{"Service", "Command", "Operation", "Impact", "Summary"},
		Styles:  []lipgloss.Style{ServiceStyle, NameStyle, ValueStyle, MutedStyle, MutedStyle},
	}
	for _, d := range descs {
		t.Rows = append(t.Rows, []string{d.Service, d.CommandName(), d.Name, d.Impact.String(), d.Summary})
	}
	t.Summary = fmt.Sprintf("%d operations", len(descs))
	return t
}

// DescribeOperation prints an operation's binding and parameters
func DescribeOperation(w io.Writer, d *operation.Descriptor) error {
	fmt.Fprintf(w, "%s  %s\n", HeaderStyle.Render(d.Name), MutedStyle.Render(d.Summary))
	fmt.Fprintf(w, "  %s %s\n", padRight("Service:", detailLabelWidth), ServiceStyle.Render(d.Service))
	fmt.Fprintf(w, "  %s %s %s\n", padRight("Binding:", detailLabelWidth), d.Method, d.Path)
	fmt.Fprintf(w, "  %s %s\n", padRight("Select:", detailLabelWidth), IDStyle.Render(d.SelectOrDefault()))
	fmt.Fprintf(w, "  %s %s\n", padRight("Impact:", detailLabelWidth), ImpactStyle(d.Impact).Render(d.Impact.String()))
	fmt.Fprintf(w, "  %s %s\n\n", padRight("Usage:", detailLabelWidth), HintStyle.Render(Usage("chimectl", d)))

	if len(d.Params) == 0 {
		_, err := fmt.Fprintln(w, MutedStyle.Render("  no parameters"))
		return err
	}

	t := &Table{
		Headers: []string{"Flag", "Field", "Kind", "Required", "Position", "Description"},
		Styles:  []lipgloss.Style{NameStyle, ValueStyle, MutedStyle, RequiredStyle, ValueStyle, MutedStyle},
	}
	for _, p := range d.Params {
		required, position := "", ""
		if p.Required {
			required = "yes"
		}
		if p.Position > 0 {
			position = fmt.Sprint(p.Position)
			if p.Pipeline {
				position += " (pipe)"
			}
		} else if p.Pipeline {
			position = "pipe"
		}
		desc := p.Description
		if len(p.Values) > 0 {
			desc = strings.TrimSpace(desc + " [" + strings.Join(p.Values, "|") + "]")
		}
		t.Rows = append(t.Rows, []string{"--" + p.Flag(), p.Name, p.Kind.String(), required, position, desc})
	}
	return t.Write(w)
}
