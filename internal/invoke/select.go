package invoke

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/vietdv277/chimectl/internal/operation"
)

// SelectKind is the shape a Select expression projects to.
type SelectKind int

const (
	SelectAll   SelectKind = iota // "*": the whole response
	SelectField                   // "Field" or "Field.Nested": a response member
	SelectEcho                    // "^Param": the bound input value
)

// Selector is a parsed Select expression.
type Selector struct {
	Kind  SelectKind
	Path  []string
	Param string
}

// ParseSelect parses expr for the given operation. Echo expressions must name
// one of the operation's parameters.
func ParseSelect(expr string, d *operation.Descriptor) (Selector, error) {
	expr = strings.TrimSpace(expr)
	switch {
	case expr == "":
		return ParseSelect(d.SelectOrDefault(), d)
	case expr == "*":
		return Selector{Kind: SelectAll}, nil
	case strings.HasPrefix(expr, "^"):
		name := strings.TrimSpace(expr[1:])
		if name == "" {
			return Selector{}, fmt.Errorf("%w: %q names no parameter", ErrInvalidSelect, expr)
		}
		p, ok := d.Param(name)
		if !ok {
			return Selector{}, fmt.Errorf("%w: %s has no parameter %q", ErrInvalidSelect, d.Name, name)
		}
		return Selector{Kind: SelectEcho, Param: p.Name}, nil
	default:
		parts := strings.Split(expr, ".")
		for _, part := range parts {
			if part == "" {
				return Selector{}, fmt.Errorf("%w: malformed field path %q", ErrInvalidSelect, expr)
			}
		}
		return Selector{Kind: SelectField, Path: parts}, nil
	}
}

func (s Selector) String() string {
	switch s.Kind {
	case SelectAll:
		return "*"
	case SelectEcho:
		return "^" + s.Param
	default:
		return strings.Join(s.Path, ".")
	}
}

// Apply projects a response. Echo selectors return the bound value, or nil
// when the parameter was not bound.
func (s Selector) Apply(response any, bound map[string]any) (any, error) {
	switch s.Kind {
	case SelectAll:
		return response, nil
	case SelectEcho:
		v, _ := lookupBound(bound, s.Param)
		return v, nil
	}

	v := reflect.ValueOf(response)
	for i, name := range s.Path {
		for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
			if v.IsNil() {
				return nil, nil
			}
			v = v.Elem()
		}
		if !v.IsValid() {
			return nil, nil
		}

		switch v.Kind() {
		case reflect.Struct:
			f, ok := fieldFold(v, name)
			if !ok {
				return nil, fmt.Errorf("%w: %s has no field %q", ErrInvalidSelect, describePath(v.Type(), s.Path[:i]), name)
			}
			v = f
		case reflect.Map:
			if v.Type().Key().Kind() != reflect.String {
				return nil, fmt.Errorf("%w: cannot select %q from %s", ErrInvalidSelect, name, v.Type())
			}
			f, ok := keyFold(v, name)
			if !ok {
				return nil, nil
			}
			v = f
		default:
			return nil, fmt.Errorf("%w: cannot select %q from %s", ErrInvalidSelect, name, v.Type())
		}
	}

	if !v.IsValid() || !v.CanInterface() {
		return nil, nil
	}
	return v.Interface(), nil
}

func fieldFold(v reflect.Value, name string) (reflect.Value, bool) {
	t := v.Type()
	if sf, ok := t.FieldByName(name); ok && sf.IsExported() {
		return v.FieldByIndex(sf.Index), true
	}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.IsExported() && strings.EqualFold(sf.Name, name) {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}

func keyFold(v reflect.Value, name string) (reflect.Value, bool) {
	iter := v.MapRange()
	for iter.Next() {
		if strings.EqualFold(iter.Key().String(), name) {
			return iter.Value(), true
		}
	}
	return reflect.Value{}, false
}

func describePath(t reflect.Type, path []string) string {
	if len(path) == 0 {
		return t.Name()
	}
	return strings.Join(path, ".")
}

// Check validates a field path against the response type before any call is
// made. Paths into maps or interfaces are only checked up to that point; any
// segment past another non-struct type is rejected.
func (s Selector) Check(t reflect.Type) error {
	if s.Kind != SelectField || t == nil {
		return nil
	}
	for i, name := range s.Path {
		for t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		switch t.Kind() {
		case reflect.Struct:
		case reflect.Map, reflect.Interface:
			return nil
		default:
			return fmt.Errorf("%w: cannot select %q from %s", ErrInvalidSelect, name, t)
		}
		found := false
		for j := 0; j < t.NumField(); j++ {
			sf := t.Field(j)
			if sf.IsExported() && strings.EqualFold(sf.Name, name) {
				t = sf.Type
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: %s has no field %q", ErrInvalidSelect, describePath(t, s.Path[:i]), name)
		}
	}
	return nil
}
