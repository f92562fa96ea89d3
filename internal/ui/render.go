package ui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Output formats
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Formats lists the accepted --output values
var Formats = []string{FormatTable, FormatJSON, FormatYAML}

// CheckFormat validates an --output value
func CheckFormat(format string) error {
	for _, f := range Formats {
		if f == format {
			return nil
		}
	}
	return fmt.Errorf("unknown output format %q (want %s)", format, strings.Join(Formats, ", "))
}

// normalize turns an SDK value into plain maps, slices and scalars, dropping
// the SDK's ResultMetadata.
func normalize(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode output: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode output: %w", err)
	}
	if m, ok := out.(map[string]any); ok {
		delete(m, "ResultMetadata")
	}
	return numbers(out), nil
}

// numbers replaces json.Number values with int64 where they fit, float64
// otherwise, so YAML sees numbers rather than strings.
func numbers(v any) any {
	switch val := v.(type) {
	case json.Number:
		if n, err := val.Int64(); err == nil {
			return n
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	case map[string]any:
		for k, item := range val {
			val[k] = numbers(item)
		}
		return val
	case []any:
		for i, item := range val {
			val[i] = numbers(item)
		}
		return val
	default:
		return v
	}
}

// Render writes v to w in the given format
func Render(w io.Writer, format string, v any) error {
	n, err := normalize(v)
	if err != nil {
		return err
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(n)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(n); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return enc.Close()
	case FormatTable:
		return renderTable(w, n)
	default:
		return CheckFormat(format)
	}
}

func renderTable(w io.Writer, v any) error {
	switch val := v.(type) {
	case nil:
		return nil
	case map[string]any:
		if len(val) == 0 {
			return nil
		}
		return detailTable(val).Write(w)
	case []any:
		if len(val) == 0 {
			_, err := fmt.Fprintln(w, MutedStyle.Render("  0 items"))
			return err
		}
		return listTable(val).Write(w)
	default:
		_, err := fmt.Fprintln(w, cellText(val))
		return err
	}
}

func detailTable(m map[string]any) *Table {
	t := &Table{
		Headers: []string{"Field", "Value"},
		Styles:  []lipgloss.Style{MutedStyle, ValueStyle},
	}
	for _, k := range sortedKeys(m) {
		t.Rows = append(t.Rows, []string{k, cellText(m[k])})
	}
	return t
}

func listTable(items []any) *Table {
	var rows []map[string]any
	scalar := false
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			scalar = true
			break
		}
		rows = append(rows, m)
	}

	if scalar {
		t := &Table{Headers: []string{"Value"}}
		for _, item := range items {
			t.Rows = append(t.Rows, []string{cellText(item)})
		}
		t.Summary = fmt.Sprintf("%d items", len(items))
		return t
	}

	columns := listColumns(rows)
	t := &Table{Headers: columns, Summary: fmt.Sprintf("%d items", len(items))}
	for _, c := range columns {
		t.Styles = append(t.Styles, columnStyle(c))
	}
	for _, m := range rows {
		row := make([]string, len(columns))
		for i, c := range columns {
			row[i] = cellText(m[c])
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// listColumns picks the scalar fields present in any row, IDs first, then
// names, then the rest alphabetically.
func listColumns(rows []map[string]any) []string {
	seen := make(map[string]bool)
	for _, m := range rows {
		for k, v := range m {
			switch v.(type) {
			case map[string]any, []any:
				continue
			}
			seen[k] = true
		}
	}
	cols := make([]string, 0, len(seen))
	for k := range seen {
		cols = append(cols, k)
	}
	sort.Slice(cols, func(i, j int) bool {
		ri, rj := columnRank(cols[i]), columnRank(cols[j])
		if ri != rj {
			return ri < rj
		}
		return cols[i] < cols[j]
	})
	return cols
}

func columnRank(name string) int {
	switch {
	case strings.HasSuffix(name, "Id"):
		return 0
	case strings.HasSuffix(name, "Name") || name == "Email":
		return 1
	default:
		return 2
	}
}

func columnStyle(name string) lipgloss.Style {
	switch columnRank(name) {
	case 0:
		return IDStyle
	case 1:
		return NameStyle
	default:
		return ValueStyle
	}
}

func cellText(v any) string {
	switch val := v.(type) {
	case nil:
		return "-"
	case string:
		return formatOptional(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case json.Number:
		return val.String()
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(val); err != nil {
			return fmt.Sprint(val)
		}
		return strings.TrimSpace(buf.String())
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
