package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vietdv277/chimectl/internal/aws"
	"github.com/vietdv277/chimectl/internal/config"
	"github.com/vietdv277/chimectl/internal/invoke"
	"github.com/vietdv277/chimectl/internal/operation"
	"github.com/vietdv277/chimectl/internal/ui"
)

var serviceTitles = map[string]string{
	"chime":    "Amazon Chime account, user, bot, room and phone number operations",
	"meetings": "Amazon Chime SDK Meetings meeting and attendee operations",
}

// newServiceCmd groups the operation commands of one service
func newServiceCmd(service string, descs []*operation.Descriptor) *cobra.Command {
	short := serviceTitles[service]
	if short == "" {
		short = service + " operations"
	}
	cmd := &cobra.Command{
		Use:   service,
		Short: short,
		Long: fmt.Sprintf(`%s.

Run 'chimectl ops list --service %s' for a summary of every command.`, short, service),
	}
	for _, d := range descs {
		cmd.AddCommand(newOperationCmd(d))
	}
	return cmd
}

func newOperationCmd(d *operation.Descriptor) *cobra.Command {
	use := []string{d.CommandName()}
	for _, p := range d.Positional() {
		use = append(use, "["+p.Flag()+"]")
	}

	long := d.Summary + "\n\nBinding: " + d.Method + " " + d.Path
	if p, ok := d.PipelineParam(); ok {
		long += fmt.Sprintf("\n\nWhen stdin is not a terminal and --%s is not given, each\nnon-empty input line is bound to it, one call per line.", p.Flag())
	}

	cmd := &cobra.Command{
		Use:     strings.Join(use, " "),
		Short:   d.Summary,
		Long:    long,
		Example: "  " + ui.Usage("chimectl", d),
		Args:    cobra.MaximumNArgs(len(d.Positional())),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperation(cmd, d, args)
		},
	}

	addParamFlags(cmd.Flags(), d)
	cmd.Flags().String("select", "", fmt.Sprintf("part of the response to print: *, a field path or ^Param (default %q)", d.SelectOrDefault()))
	cmd.Flags().Bool("force", false, "skip the confirmation prompt")
	return cmd
}

// addParamFlags declares one typed flag per request parameter
func addParamFlags(flags *pflag.FlagSet, d *operation.Descriptor) {
	for _, p := range d.Params {
		usage := p.Description
		if p.Required {
			usage = strings.TrimSpace(usage + " (required)")
		}
		switch p.Kind {
		case operation.KindInt:
			flags.Int64(p.Flag(), 0, usage)
		case operation.KindBool:
			flags.Bool(p.Flag(), false, usage)
		case operation.KindStringList:
			flags.StringSlice(p.Flag(), nil, usage)
		case operation.KindEnum:
			flags.String(p.Flag(), "", strings.TrimSpace(usage+" ["+strings.Join(p.Values, "|")+"]"))
		case operation.KindTimestamp:
			flags.String(p.Flag(), "", strings.TrimSpace(usage+" (RFC 3339)"))
		case operation.KindJSON:
			flags.String(p.Flag(), "", strings.TrimSpace(usage+" (JSON)"))
		default:
			flags.String(p.Flag(), "", usage)
		}
	}
}

// boundParams collects the parameters the caller supplied, positional
// arguments first. Flags left at their zero value are not bound.
func boundParams(flags *pflag.FlagSet, d *operation.Descriptor, args []string) (map[string]any, error) {
	bound := make(map[string]any)

	positional := d.Positional()
	if len(args) > len(positional) {
		return nil, fmt.Errorf("%s takes at most %d arguments, got %d", d.CommandName(), len(positional), len(args))
	}
	for i, arg := range args {
		p := positional[i]
		if flags.Changed(p.Flag()) {
			return nil, fmt.Errorf("%s given both as argument %d and --%s", p.Name, i+1, p.Flag())
		}
		if err := checkEnum(p, arg); err != nil {
			return nil, err
		}
		bound[p.Name] = arg
	}

	for _, p := range d.Params {
		if !flags.Changed(p.Flag()) {
			continue
		}
		v, err := flagValue(flags, p)
		if err != nil {
			return nil, err
		}
		bound[p.Name] = v
	}
	return bound, nil
}

func flagValue(flags *pflag.FlagSet, p operation.Param) (any, error) {
	switch p.Kind {
	case operation.KindInt:
		return flags.GetInt64(p.Flag())
	case operation.KindBool:
		return flags.GetBool(p.Flag())
	case operation.KindStringList:
		return flags.GetStringSlice(p.Flag())
	default:
		s, err := flags.GetString(p.Flag())
		if err != nil {
			return nil, err
		}
		if err := checkEnum(p, s); err != nil {
			return nil, err
		}
		return s, nil
	}
}

// checkEnum rejects values outside an enum's set. Matching ignores case;
// value references are checked once resolved by the service.
func checkEnum(p operation.Param, s string) error {
	if p.Kind != operation.KindEnum || len(p.Values) == 0 {
		return nil
	}
	if _, _, ok := invoke.ParseReference(s); ok {
		return nil
	}
	for _, v := range p.Values {
		if strings.EqualFold(v, s) {
			return nil
		}
	}
	return fmt.Errorf("%w: --%s must be one of %s, got %q",
		invoke.ErrInvalidValue, p.Flag(), strings.Join(p.Values, ", "), s)
}

// pipelineLines reads the non-empty lines of r, trimmed.
func pipelineLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read pipeline input: %w", err)
	}
	return lines, nil
}

// isPipeline reports whether in carries pipeline input rather than a terminal
func isPipeline(in io.Reader) bool {
	if f, ok := in.(*os.File); ok {
		return !ui.IsTerminal(f)
	}
	return in != nil
}

// buildInvocations expands one command line into invocations. Each pipeline
// line becomes one invocation; empty input still makes one.
func buildInvocations(d *operation.Descriptor, bound map[string]any, in io.Reader, sel string, force bool) ([]invoke.Invocation, error) {
	base := invoke.Invocation{Descriptor: d, Bound: bound, Select: sel, Force: force}

	p, ok := d.PipelineParam()
	if !ok || !isPipeline(in) {
		return []invoke.Invocation{base}, nil
	}
	if _, set := bound[p.Name]; set {
		return []invoke.Invocation{base}, nil
	}

	lines, err := pipelineLines(in)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return []invoke.Invocation{base}, nil
	}

	invs := make([]invoke.Invocation, 0, len(lines))
	for _, line := range lines {
		item := make(map[string]any, len(bound)+1)
		for k, v := range bound {
			item[k] = v
		}
		item[p.Name] = line
		inv := base
		inv.Bound = item
		invs = append(invs, inv)
	}
	return invs, nil
}

// runInvocations runs invocations in order, writing results to out and
// failures to errOut. It returns the number of failures.
func runInvocations(ctx context.Context, exec *invoke.Executor, invs []invoke.Invocation, format string, out, errOut io.Writer) int {
	failed := 0
	for _, inv := range invs {
		res := exec.Invoke(ctx, inv)

		switch res.State {
		case invoke.StateSucceeded:
			if err := ui.Render(out, format, res.Output); err != nil {
				logger.Error("failed to render output", "operation", res.Operation, "err", err)
				failed++
			}
		case invoke.StateDeclined:
			fmt.Fprintln(errOut, ui.MutedStyle.Render(res.Operation+" declined, nothing was sent"))
		default:
			failed++
			if err := ui.RenderError(errOut, format, res.Err); err != nil {
				logger.Error("failed to render error", "operation", res.Operation, "err", err)
			}
			if res.Err != nil && res.Err.Kind == invoke.KindCanceled {
				return failed
			}
		}
	}
	return failed
}

func runOperation(cmd *cobra.Command, d *operation.Descriptor, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	settings, err := config.Resolve(overrides())
	if err != nil {
		return fmt.Errorf("failed to resolve settings: %w", err)
	}
	if err := ui.CheckFormat(settings.Output); err != nil {
		return err
	}
	threshold, err := operation.ParseImpact(settings.Threshold)
	if err != nil {
		return fmt.Errorf("invalid confirm_threshold in %s: %w", config.GetConfigPath(), err)
	}

	errOut := cmd.ErrOrStderr()

	bound, err := boundParams(cmd.Flags(), d, args)
	if err != nil {
		ie := &invoke.InvocationError{Operation: d.Name, Kind: invoke.KindValidation, Message: err.Error(), Err: err}
		_ = ui.RenderError(errOut, settings.Output, ie)
		return errInvocationsFailed
	}

	sel, _ := cmd.Flags().GetString("select")
	force, _ := cmd.Flags().GetBool("force")
	invs, err := buildInvocations(d, bound, cmd.InOrStdin(), sel, force)
	if err != nil {
		return err
	}

	client, err := aws.NewClient(ctx, aws.WithProfile(settings.Profile), aws.WithRegion(settings.Region))
	if err != nil {
		return err
	}
	logger.Debug("resolved settings",
		"profile", settings.Profile, "profile_source", settings.ProfileSource,
		"region", client.Region(), "region_source", settings.RegionSource,
		"context", settings.Context)

	prompt := ui.NewPrompt(os.Stdin, errOut)
	defer prompt.Close()

	exec := &invoke.Executor{
		Clients:   client.Services(),
		Region:    client.Region(),
		Resolver:  client.Resolver(),
		Confirmer: prompt,
		Threshold: threshold,
		Logger:    logger,
	}

	if failed := runInvocations(ctx, exec, invs, settings.Output, cmd.OutOrStdout(), errOut); failed > 0 {
		logger.Debug("invocations failed", "failed", failed, "total", len(invs))
		return errInvocationsFailed
	}
	return nil
}
