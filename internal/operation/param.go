package operation

// ParamOption adjusts a parameter declaration.
type ParamOption func(*Param)

// Required marks a parameter as required by the service model.
func Required(p *Param) { p.Required = true }

// Piped lets the parameter be bound from stdin lines.
func Piped(p *Param) { p.Pipeline = true }

// At sets the 1-based positional index.
func At(pos int) ParamOption {
	return func(p *Param) { p.Position = pos }
}

// Help sets the parameter description.
func Help(s string) ParamOption {
	return func(p *Param) { p.Description = s }
}

func param(name string, kind Kind, opts []ParamOption) Param {
	p := Param{Name: name, Kind: kind}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Str declares a string parameter.
func Str(name string, opts ...ParamOption) Param { return param(name, KindString, opts) }

// Int declares an integer parameter.
func Int(name string, opts ...ParamOption) Param { return param(name, KindInt, opts) }

// Bool declares a boolean parameter.
func Bool(name string, opts ...ParamOption) Param { return param(name, KindBool, opts) }

// List declares a string list parameter.
func List(name string, opts ...ParamOption) Param { return param(name, KindStringList, opts) }

// Time declares an RFC 3339 timestamp parameter.
func Time(name string, opts ...ParamOption) Param { return param(name, KindTimestamp, opts) }

// JSON declares a structured parameter supplied as a JSON document.
func JSON(name string, opts ...ParamOption) Param { return param(name, KindJSON, opts) }

// Enum declares a parameter restricted to values.
func Enum(name string, values []string, opts ...ParamOption) Param {
	p := param(name, KindEnum, opts)
	p.Values = values
	return p
}

// EnumValues converts SDK enum values to strings.
func EnumValues[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
