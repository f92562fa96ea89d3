package invoke

import (
	"context"
	"fmt"
	"io"
	"regexp"

	"github.com/charmbracelet/log"

	"github.com/vietdv277/chimectl/internal/operation"
)

// Confirmer asks whether a state-changing operation should proceed.
type Confirmer interface {
	Confirm(operation, target string) (bool, error)
}

// ReferenceResolver looks up the value behind a {{resolve:scheme:key}}
// reference.
type ReferenceResolver interface {
	Resolve(ctx context.Context, scheme, key string) (string, error)
}

// Invocation is one request to run an operation.
type Invocation struct {
	Descriptor *operation.Descriptor
	Bound      map[string]any // parameter name -> value, only what the caller supplied
	Select     string         // empty means the descriptor default
	Force      bool           // skip the confirmation prompt
}

// Result is the outcome of one invocation. Err is set exactly when State is
// StateFailed.
type Result struct {
	Operation string
	State     State
	Request   any
	Output    any
	Warnings  []string
	Err       *InvocationError
}

// Executor runs invocations against service clients.
type Executor struct {
	Clients   map[string]any // service key -> SDK client
	Region    string
	Resolver  ReferenceResolver
	Confirmer Confirmer
	Threshold operation.Impact // impact at or above which confirmation is asked
	Logger    *log.Logger
}

// Invoke runs one invocation: bind, confirm, make exactly one remote call,
// project. Failures are returned on the result, never panicked or thrown.
func (e *Executor) Invoke(ctx context.Context, inv Invocation) *Result {
	d := inv.Descriptor
	res := &Result{Operation: d.Name, State: StateUnbound}
	logger := e.logger().With("operation", d.Name)

	fail := func(ie *InvocationError) *Result {
		res.advance(StateFailed)
		res.Err = ie
		logger.Debug("invocation failed", "kind", ie.Kind, "err", ie.Message)
		return res
	}

	sel, err := ParseSelect(inv.Select, d)
	if err == nil {
		err = sel.Check(d.ResponseType())
	}
	if err != nil {
		return fail(validationError(d.Name, err))
	}

	bound, err := e.resolveReferences(ctx, inv.Bound)
	if err != nil {
		return fail(validationError(d.Name, err))
	}

	req, warnings, err := Bind(d, bound)
	if err != nil {
		return fail(validationError(d.Name, err))
	}
	res.Request = req
	res.Warnings = warnings
	for _, w := range warnings {
		logger.Warn(w)
	}
	res.advance(StateBound)

	if ok, err := e.confirm(d, inv); err != nil {
		return fail(validationError(d.Name, err))
	} else if !ok {
		res.advance(StateDeclined)
		logger.Debug("invocation declined")
		return res
	}

	client, ok := e.Clients[d.Service]
	if !ok || client == nil {
		return fail(validationError(d.Name, fmt.Errorf("%w: %s", ErrNoClient, d.Service)))
	}

	res.advance(StateRequested)
	logger.Debug("calling service", "service", d.Service, "select", sel.String())

	resp, err := d.Call(ctx, client, req)
	if err != nil {
		return fail(Classify(d.Name, e.Region, err))
	}

	out, err := sel.Apply(resp, inv.Bound)
	if err != nil {
		return fail(validationError(d.Name, err))
	}
	res.Output = out
	res.advance(StateSucceeded)
	return res
}

func (e *Executor) confirm(d *operation.Descriptor, inv Invocation) (bool, error) {
	if inv.Force || d.Impact == operation.ImpactNone || d.Impact < e.Threshold || e.Confirmer == nil {
		return true, nil
	}
	target := d.Name
	if d.Target != "" {
		if v, ok := lookupBound(inv.Bound, d.Target); ok {
			target = fmt.Sprint(v)
		}
	}
	return e.Confirmer.Confirm(d.Name, target)
}

var referenceRe = regexp.MustCompile(`^\{\{resolve:([a-z0-9-]+):(.+)\}\}$`)

// ParseReference splits a {{resolve:scheme:key}} value.
func ParseReference(s string) (scheme, key string, ok bool) {
	m := referenceRe.FindStringSubmatch(s)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// resolveReferences returns a copy of bound with string and list values
// that are references replaced by their resolved value.
func (e *Executor) resolveReferences(ctx context.Context, bound map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(bound))
	for name, val := range bound {
		switch v := val.(type) {
		case string:
			s, err := e.resolveOne(ctx, v)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			out[name] = s
		case []string:
			list := make([]string, len(v))
			for i, item := range v {
				s, err := e.resolveOne(ctx, item)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", name, err)
				}
				list[i] = s
			}
			out[name] = list
		default:
			out[name] = val
		}
	}
	return out, nil
}

func (e *Executor) resolveOne(ctx context.Context, s string) (string, error) {
	scheme, key, ok := ParseReference(s)
	if !ok {
		return s, nil
	}
	if e.Resolver == nil {
		return "", fmt.Errorf("%w: %s (no resolver configured)", ErrUnresolvedRef, s)
	}
	v, err := e.Resolver.Resolve(ctx, scheme, key)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrUnresolvedRef, s, err)
	}
	return v, nil
}

func (e *Executor) logger() *log.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return log.New(io.Discard)
}
