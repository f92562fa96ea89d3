package operation

import (
	"context"
	"errors"
	"fmt"
	"reflect"
)

// Kind is the value type a parameter accepts on the command line.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindBool
	KindStringList
	KindEnum
	KindTimestamp
	KindJSON
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindStringList:
		return "string-list"
	case KindEnum:
		return "enum"
	case KindTimestamp:
		return "timestamp"
	case KindJSON:
		return "json"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Impact rates how destructive an operation is. Operations at or above the
// configured threshold ask for confirmation unless forced.
type Impact int

const (
	ImpactNone Impact = iota
	ImpactLow
	ImpactMedium
	ImpactHigh
)

func (i Impact) String() string {
	switch i {
	case ImpactNone:
		return "none"
	case ImpactLow:
		return "low"
	case ImpactMedium:
		return "medium"
	case ImpactHigh:
		return "high"
	default:
		return fmt.Sprintf("impact(%d)", int(i))
	}
}

// ParseImpact parses an impact level name.
func ParseImpact(s string) (Impact, error) {
	switch s {
	case "none":
		return ImpactNone, nil
	case "low":
		return ImpactLow, nil
	case "medium":
		return ImpactMedium, nil
	case "high", "":
		return ImpactHigh, nil
	default:
		return ImpactHigh, fmt.Errorf("unknown impact level %q (want none, low, medium or high)", s)
	}
}

// Param describes one request field exposed as a command-line parameter.
type Param struct {
	Name        string   // request field name, e.g. "AccountId"
	Kind        Kind     // value type
	Required    bool     // marked required by the service model
	Position    int      // 1-based positional index, 0 when named only
	Pipeline    bool     // may be bound from stdin lines
	Values      []string // allowed values for KindEnum
	Description string
}

// Flag returns the flag name of the parameter.
func (p Param) Flag() string {
	return FlagName(p.Name)
}

// CallFunc invokes the remote operation with a client for the descriptor's
// service and a request built by NewRequest.
type CallFunc func(ctx context.Context, client any, request any) (any, error)

// Descriptor is the declarative definition of one remote operation.
type Descriptor struct {
	Name          string // operation name, e.g. "GetAccount"
	Service       string // service key the executor resolves a client for
	Method        string // HTTP method of the REST binding
	Path          string // HTTP path of the REST binding
	Summary       string
	Params        []Param
	DefaultSelect string // "*" when empty
	Impact        Impact
	Target        string // param whose value names the confirmation target

	requestType  reflect.Type
	responseType reflect.Type
	call         CallFunc
}

// ErrClientMismatch is returned when a call receives a client of the wrong type.
var ErrClientMismatch = errors.New("client does not serve this operation")

// New builds a descriptor around an SDK method expression, e.g.
// New("chime", "GetAccount", ChimeAPI.GetAccount). The request type and call
// function are derived from the method signature.
func New[C, In, Out, O any](service, name string, fn func(C, context.Context, *In, ...func(*O)) (*Out, error)) *Descriptor {
	return &Descriptor{
		Name:         name,
		Service:      service,
		requestType:  reflect.TypeOf((*In)(nil)).Elem(),
		responseType: reflect.TypeOf((*Out)(nil)).Elem(),
		call: func(ctx context.Context, client any, request any) (any, error) {
			c, ok := client.(C)
			if !ok {
				return nil, fmt.Errorf("%w: %s.%s got %T", ErrClientMismatch, service, name, client)
			}
			in, ok := request.(*In)
			if !ok {
				return nil, fmt.Errorf("%s.%s: unexpected request type %T", service, name, request)
			}
			out, err := fn(c, ctx, in)
			if err != nil {
				return nil, err
			}
			return out, nil
		},
	}
}

// Binding sets the HTTP binding.
func (d *Descriptor) Binding(method, path string) *Descriptor {
	d.Method = method
	d.Path = path
	return d
}

// Describe sets the one-line summary.
func (d *Descriptor) Describe(summary string) *Descriptor {
	d.Summary = summary
	return d
}

// With appends parameters.
func (d *Descriptor) With(params ...Param) *Descriptor {
	d.Params = append(d.Params, params...)
	return d
}

// Select sets the default Select expression.
func (d *Descriptor) Select(expr string) *Descriptor {
	d.DefaultSelect = expr
	return d
}

// Confirm marks the operation as state-changing with the given impact and
// confirmation target parameter.
func (d *Descriptor) Confirm(impact Impact, target string) *Descriptor {
	d.Impact = impact
	d.Target = target
	return d
}

// NewRequest returns a zero request value (a pointer to the SDK input struct).
func (d *Descriptor) NewRequest() any {
	if d.requestType == nil {
		return nil
	}
	return reflect.New(d.requestType).Interface()
}

// RequestType returns the SDK input struct type.
func (d *Descriptor) RequestType() reflect.Type {
	return d.requestType
}

// ResponseType returns the SDK output struct type.
func (d *Descriptor) ResponseType() reflect.Type {
	return d.responseType
}

// Call performs the remote call.
func (d *Descriptor) Call(ctx context.Context, client any, request any) (any, error) {
	if d.call == nil {
		return nil, fmt.Errorf("operation %s has no call binding", d.Name)
	}
	return d.call(ctx, client, request)
}

// CommandName returns the verb-noun command name.
func (d *Descriptor) CommandName() string {
	return CommandName(d.Name)
}

// Param looks up a parameter by field name or flag name, case-insensitively.
func (d *Descriptor) Param(name string) (Param, bool) {
	for _, p := range d.Params {
		if equalFold(p.Name, name) || p.Flag() == name {
			return p, true
		}
	}
	return Param{}, false
}

// Positional returns the positional parameters ordered by position.
func (d *Descriptor) Positional() []Param {
	var out []Param
	for pos := 1; ; pos++ {
		found := false
		for _, p := range d.Params {
			if p.Position == pos {
				out = append(out, p)
				found = true
				break
			}
		}
		if !found {
			return out
		}
	}
}

// PipelineParam returns the parameter bound from pipeline input, if any.
func (d *Descriptor) PipelineParam() (Param, bool) {
	for _, p := range d.Params {
		if p.Pipeline {
			return p, true
		}
	}
	return Param{}, false
}

// SelectOrDefault returns the default Select expression.
func (d *Descriptor) SelectOrDefault() string {
	if d.DefaultSelect == "" {
		return "*"
	}
	return d.DefaultSelect
}
