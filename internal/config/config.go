package config

import (
	"fmt"
	"os"
)

// Source names where a resolved setting came from
type Source string

const (
	SourceFlag    Source = "flag"    // --profile/--region or CHIMECTL_* env
	SourceContext Source = "context" // selected context in the config file
	SourceAWSEnv  Source = "aws-env" // AWS_PROFILE, AWS_REGION, AWS_DEFAULT_REGION
	SourceSDK     Source = "sdk"     // left to the shared AWS config files
)

// Settings are the effective connection settings of one run
type Settings struct {
	Profile       string
	ProfileSource Source
	Region        string
	RegionSource  Source
	Context       string // selected context name, empty when none
	Output        string
	Threshold     string
}

// Overrides are the values given on the command line or through CHIMECTL_*
// environment variables. Empty fields are unset.
type Overrides struct {
	Profile string
	Region  string
	Context string
	Output  string
}

// Resolve computes the effective settings. Precedence is override, then the
// selected context, then the standard AWS environment variables. When none
// applies the SDK falls back to the shared config files.
func Resolve(o Overrides) (*Settings, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	s := &Settings{
		Output:    cfg.Defaults.Output,
		Threshold: cfg.Defaults.ConfirmThreshold,
	}
	if o.Output != "" {
		s.Output = o.Output
	}

	var selected *Context
	name := o.Context
	if name == "" {
		name = cfg.CurrentContext
	}
	if name != "" {
		ctx, ok := cfg.Contexts[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrContextNotFound, name)
		}
		selected = ctx
		s.Context = name
	}

	s.Profile, s.ProfileSource = pick(o.Profile, contextValue(selected, func(c *Context) string { return c.Profile }),
		os.Getenv("AWS_PROFILE"))
	s.Region, s.RegionSource = pick(o.Region, contextValue(selected, func(c *Context) string { return c.Region }),
		firstNonEmpty(os.Getenv("AWS_REGION"), os.Getenv("AWS_DEFAULT_REGION")))

	return s, nil
}

func pick(override, fromContext, fromEnv string) (string, Source) {
	switch {
	case override != "":
		return override, SourceFlag
	case fromContext != "":
		return fromContext, SourceContext
	case fromEnv != "":
		return fromEnv, SourceAWSEnv
	default:
		return "", SourceSDK
	}
}

func contextValue(c *Context, get func(*Context) string) string {
	if c == nil {
		return ""
	}
	return get(c)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
