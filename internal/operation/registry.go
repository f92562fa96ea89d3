package operation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
)

// Common errors
var (
	ErrInvalidDescriptor = errors.New("invalid operation descriptor")
	ErrDuplicate         = errors.New("operation already registered")
	ErrUnknownOperation  = errors.New("unknown operation")
)

// ReservedFlags are the flag names the command layer defines itself; no
// parameter may map onto one of them.
var ReservedFlags = []string{"select", "force", "profile", "region", "context", "output", "verbose", "help"}

// DescriptorError wraps a validation failure of one descriptor.
type DescriptorError struct {
	Operation string
	Msg       string
}

func (e *DescriptorError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s: %s", ErrInvalidDescriptor.Error(), e.Operation, e.Msg)
}

func (e *DescriptorError) Unwrap() error { return ErrInvalidDescriptor }

func invalidf(op, format string, args ...any) error {
	return &DescriptorError{Operation: op, Msg: fmt.Sprintf(format, args...)}
}

// Registry holds the known operation descriptors.
type Registry struct {
	mu    sync.RWMutex
	byKey map[string]*Descriptor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byKey: make(map[string]*Descriptor)}
}

// Register validates and adds descriptors.
func (r *Registry) Register(descs ...*Descriptor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, d := range descs {
		if err := Validate(d); err != nil {
			return err
		}
		key := registryKey(d.Service, d.Name)
		if _, ok := r.byKey[key]; ok {
			return fmt.Errorf("%w: %s.%s", ErrDuplicate, d.Service, d.Name)
		}
		r.byKey[key] = d
	}
	return nil
}

// MustRegister is Register for package-level tables; it panics on error.
func (r *Registry) MustRegister(descs ...*Descriptor) *Registry {
	if err := r.Register(descs...); err != nil {
		panic(err)
	}
	return r
}

// Lookup finds an operation of a service by operation name or command name.
func (r *Registry) Lookup(service, name string) (*Descriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if d, ok := r.byKey[registryKey(service, name)]; ok {
		return d, nil
	}
	for _, d := range r.byKey {
		if d.Service == service && (d.CommandName() == name || strings.EqualFold(d.Name, name)) {
			return d, nil
		}
	}
	return nil, fmt.Errorf("%w: %s %s", ErrUnknownOperation, service, name)
}

// Find looks an operation up across all services.
func (r *Registry) Find(name string) (*Descriptor, error) {
	var matches []*Descriptor
	for _, d := range r.List() {
		if d.CommandName() == name || strings.EqualFold(d.Name, name) {
			matches = append(matches, d)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: %s", ErrUnknownOperation, name)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("operation %q exists in several services; qualify it as <service>/<operation>", name)
	}
}

// List returns all descriptors sorted by service, then name.
func (r *Registry) List() []*Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Descriptor, 0, len(r.byKey))
	for _, d := range r.byKey {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Service != out[j].Service {
			return out[i].Service < out[j].Service
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// ByService returns the descriptors of one service.
func (r *Registry) ByService(service string) []*Descriptor {
	var out []*Descriptor
	for _, d := range r.List() {
		if d.Service == service {
			out = append(out, d)
		}
	}
	return out
}

// Services returns the distinct service keys, sorted.
func (r *Registry) Services() []string {
	seen := make(map[string]bool)
	var out []string
	for _, d := range r.List() {
		if !seen[d.Service] {
			seen[d.Service] = true
			out = append(out, d.Service)
		}
	}
	return out
}

func registryKey(service, name string) string {
	return service + "/" + name
}

// Validate checks a descriptor against its request type.
func Validate(d *Descriptor) error {
	if d == nil {
		return fmt.Errorf("%w: nil descriptor", ErrInvalidDescriptor)
	}
	if d.Name == "" || d.Service == "" {
		return invalidf(d.Name, "name and service are required")
	}
	if d.requestType == nil || d.call == nil {
		return invalidf(d.Name, "missing request type or call binding")
	}
	if d.requestType.Kind() != reflect.Struct {
		return invalidf(d.Name, "request type %s is not a struct", d.requestType)
	}

	names := make(map[string]bool)
	flags := make(map[string]bool)
	positions := make(map[int]string)
	pipelines := 0

	for _, p := range d.Params {
		if names[p.Name] {
			return invalidf(d.Name, "duplicate parameter %s", p.Name)
		}
		names[p.Name] = true

		flag := p.Flag()
		if flags[flag] {
			return invalidf(d.Name, "parameters collide on flag --%s", flag)
		}
		flags[flag] = true
		for _, reserved := range ReservedFlags {
			if flag == reserved {
				return invalidf(d.Name, "parameter %s maps to reserved flag --%s", p.Name, flag)
			}
		}

		field, ok := d.requestType.FieldByName(p.Name)
		if !ok || !field.IsExported() {
			return invalidf(d.Name, "parameter %s is not a field of %s", p.Name, d.requestType)
		}
		if err := checkKind(p, field.Type); err != nil {
			return invalidf(d.Name, "parameter %s: %v", p.Name, err)
		}

		if p.Position < 0 {
			return invalidf(d.Name, "parameter %s has negative position", p.Name)
		}
		if p.Position > 0 {
			if other, dup := positions[p.Position]; dup {
				return invalidf(d.Name, "parameters %s and %s share position %d", other, p.Name, p.Position)
			}
			positions[p.Position] = p.Name
		}
		if p.Pipeline {
			pipelines++
		}
		if p.Kind == KindEnum && len(p.Values) == 0 {
			return invalidf(d.Name, "enum parameter %s has no values", p.Name)
		}
	}

	for pos := 1; pos <= len(positions); pos++ {
		if _, ok := positions[pos]; !ok {
			return invalidf(d.Name, "positions are not contiguous, missing %d", pos)
		}
	}
	if pipelines > 1 {
		return invalidf(d.Name, "more than one pipeline parameter")
	}
	if d.Target != "" && !names[d.Target] {
		return invalidf(d.Name, "confirmation target %s is not a parameter", d.Target)
	}
	sel := d.SelectOrDefault()
	if err := validSelect(sel); err != nil {
		return invalidf(d.Name, "default select: %v", err)
	}
	if strings.HasPrefix(sel, "^") {
		if _, ok := d.Param(sel[1:]); !ok {
			return invalidf(d.Name, "default select echoes unknown parameter %s", sel[1:])
		}
	}
	return nil
}

// checkKind verifies the parameter kind can be stored in the field type.
func checkKind(p Param, t reflect.Type) error {
	base := t
	if base.Kind() == reflect.Pointer {
		base = base.Elem()
	}
	ok := true
	switch p.Kind {
	case KindString, KindEnum:
		ok = base.Kind() == reflect.String
	case KindInt:
		switch base.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		default:
			ok = false
		}
	case KindBool:
		ok = base.Kind() == reflect.Bool
	case KindStringList:
		ok = base.Kind() == reflect.Slice && base.Elem().Kind() == reflect.String
	case KindTimestamp:
		ok = base.PkgPath() == "time" && base.Name() == "Time"
	case KindJSON:
		switch base.Kind() {
		case reflect.Struct, reflect.Slice, reflect.Map:
		default:
			ok = false
		}
	}
	if !ok {
		return fmt.Errorf("kind %s cannot be stored in %s", p.Kind, t)
	}
	return nil
}

// validSelect performs the syntactic check of a Select expression. The full
// parser lives with the executor; descriptors only need to be well formed.
func validSelect(expr string) error {
	switch {
	case expr == "*":
		return nil
	case expr == "" || expr == "^":
		return fmt.Errorf("empty select expression")
	case strings.HasPrefix(expr, "^"):
		return nil
	case strings.Contains(expr, "..") || strings.HasPrefix(expr, ".") || strings.HasSuffix(expr, "."):
		return fmt.Errorf("malformed field path %q", expr)
	default:
		return nil
	}
}
