package invoke

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/vietdv277/chimectl/internal/operation"
)

// RequiredWarning is the warning recorded for a required parameter the
// caller left unbound. The call still goes ahead.
func RequiredWarning(param string) string {
	return fmt.Sprintf("parameter %s is marked as required but was not supplied; "+
		"sending the request without it", param)
}

// Bind builds a fresh request for d holding exactly the bound parameters.
// Unbound fields keep their zero value so the SDK's own defaults apply.
func Bind(d *operation.Descriptor, bound map[string]any) (any, []string, error) {
	var warnings []string

	for name := range bound {
		if _, ok := d.Param(name); !ok {
			return nil, nil, fmt.Errorf("%w: %s has no parameter %q", ErrUnknownParameter, d.Name, name)
		}
	}

	req := d.NewRequest()
	if req == nil {
		return nil, nil, fmt.Errorf("operation %s has no request type", d.Name)
	}
	rv := reflect.ValueOf(req).Elem()

	for _, p := range d.Params {
		val, ok := lookupBound(bound, p.Name)
		if !ok {
			if p.Required {
				warnings = append(warnings, RequiredWarning(p.Name))
			}
			continue
		}
		field := rv.FieldByName(p.Name)
		if !field.IsValid() || !field.CanSet() {
			return nil, nil, fmt.Errorf("%w: %s is not settable on %s", ErrUnknownParameter, p.Name, rv.Type())
		}
		if err := assign(field, p, val); err != nil {
			return nil, nil, fmt.Errorf("%w: %s: %v", ErrInvalidValue, p.Name, err)
		}
	}

	return req, warnings, nil
}

func lookupBound(bound map[string]any, name string) (any, bool) {
	if v, ok := bound[name]; ok {
		return v, true
	}
	for k, v := range bound {
		if strings.EqualFold(k, name) || operation.FlagName(name) == k {
			return v, true
		}
	}
	return nil, false
}

func assign(field reflect.Value, p operation.Param, val any) error {
	switch p.Kind {
	case operation.KindString:
		s, err := asString(val)
		if err != nil {
			return err
		}
		return store(field, reflect.ValueOf(s))

	case operation.KindEnum:
		s, err := asString(val)
		if err != nil {
			return err
		}
		return store(field, reflect.ValueOf(canonicalEnum(s, p.Values)))

	case operation.KindInt:
		n, err := asInt(val)
		if err != nil {
			return err
		}
		return storeInt(field, n)

	case operation.KindBool:
		b, err := asBool(val)
		if err != nil {
			return err
		}
		return store(field, reflect.ValueOf(b))

	case operation.KindStringList:
		list, err := asList(val)
		if err != nil {
			return err
		}
		slice := reflect.MakeSlice(field.Type(), len(list), len(list))
		for i, s := range list {
			slice.Index(i).SetString(s)
		}
		field.Set(slice)
		return nil

	case operation.KindTimestamp:
		ts, err := asTime(val)
		if err != nil {
			return err
		}
		return store(field, reflect.ValueOf(ts))

	case operation.KindJSON:
		var data []byte
		switch v := val.(type) {
		case string:
			data = []byte(v)
		case []byte:
			data = v
		default:
			b, err := json.Marshal(v)
			if err != nil {
				return err
			}
			data = b
		}
		target := reflect.New(field.Type())
		if err := json.Unmarshal(data, target.Interface()); err != nil {
			return fmt.Errorf("invalid JSON: %w", err)
		}
		field.Set(target.Elem())
		return nil
	}
	return fmt.Errorf("unsupported parameter kind %s", p.Kind)
}

// store writes val into field, allocating when the field is a pointer and
// converting to named types such as SDK enums.
func store(field reflect.Value, val reflect.Value) error {
	t := field.Type()
	if t.Kind() == reflect.Pointer {
		elem := t.Elem()
		if !val.Type().ConvertibleTo(elem) {
			return fmt.Errorf("cannot store %s in %s", val.Type(), t)
		}
		ptr := reflect.New(elem)
		ptr.Elem().Set(val.Convert(elem))
		field.Set(ptr)
		return nil
	}
	if !val.Type().ConvertibleTo(t) {
		return fmt.Errorf("cannot store %s in %s", val.Type(), t)
	}
	field.Set(val.Convert(t))
	return nil
}

func storeInt(field reflect.Value, n int64) error {
	t := field.Type()
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if reflect.Zero(t).OverflowInt(n) {
		return fmt.Errorf("%d overflows %s", n, t)
	}
	return store(field, reflect.ValueOf(n))
}

func asString(val any) (string, error) {
	switch v := val.(type) {
	case string:
		return v, nil
	case fmt.Stringer:
		return v.String(), nil
	case []string:
		if len(v) == 1 {
			return v[0], nil
		}
	}
	return "", fmt.Errorf("expected a string, got %T", val)
}

func asInt(val any) (int64, error) {
	switch v := val.(type) {
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("expected an integer, got %q", v)
		}
		return n, nil
	}
	return 0, fmt.Errorf("expected an integer, got %T", val)
}

func asBool(val any) (bool, error) {
	switch v := val.(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return false, fmt.Errorf("expected true or false, got %q", v)
		}
		return b, nil
	}
	return false, fmt.Errorf("expected a boolean, got %T", val)
}

func asList(val any) ([]string, error) {
	switch v := val.(type) {
	case []string:
		return v, nil
	case string:
		if v == "" {
			return []string{}, nil
		}
		parts := strings.Split(v, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts, nil
	}
	return nil, fmt.Errorf("expected a list of strings, got %T", val)
}

func asTime(val any) (time.Time, error) {
	switch v := val.(type) {
	case time.Time:
		return v, nil
	case string:
		ts, err := time.Parse(time.RFC3339, strings.TrimSpace(v))
		if err != nil {
			return time.Time{}, fmt.Errorf("expected an RFC 3339 timestamp, got %q", v)
		}
		return ts, nil
	}
	return time.Time{}, fmt.Errorf("expected a timestamp, got %T", val)
}

func canonicalEnum(s string, values []string) string {
	for _, v := range values {
		if strings.EqualFold(v, s) {
			return v
		}
	}
	return s
}
