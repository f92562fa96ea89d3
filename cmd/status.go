package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vietdv277/chimectl/internal/aws"
	"github.com/vietdv277/chimectl/internal/config"
	"github.com/vietdv277/chimectl/internal/ui"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show current context and authentication status",
	Long: `Display the effective profile and region, where each one came from,
and verify the credentials with STS.

Examples:
  chimectl status
  chimectl status --context prod`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := cmd.OutOrStdout()

	settings, err := config.Resolve(overrides())
	if err != nil {
		return fmt.Errorf("failed to resolve settings: %w", err)
	}

	fmt.Fprintln(out, "Current Status")
	fmt.Fprintln(out, ui.MutedStyle.Render("─────────────────────────────────"))
	fmt.Fprintln(out)

	if settings.Context != "" {
		fmt.Fprintf(out, "Context:  %s\n", ui.HeaderStyle.Render(settings.Context))
	} else {
		fmt.Fprintf(out, "Context:  %s\n", ui.MutedStyle.Render("(not set)"))
	}
	fmt.Fprintf(out, "Profile:  %s %s\n", displayValue(settings.Profile, "(default)"), sourceHint(settings.ProfileSource))

	client, err := aws.NewClient(ctx, aws.WithProfile(settings.Profile), aws.WithRegion(settings.Region))
	if err != nil {
		fmt.Fprintf(out, "Region:   %s %s\n", displayValue(settings.Region, "(unset)"), sourceHint(settings.RegionSource))
		fmt.Fprintln(out)
		printAuthFailure(out, settings.Profile, err)
		return nil
	}
	fmt.Fprintf(out, "Region:   %s %s\n", displayValue(client.Region(), "(unset)"), sourceHint(settings.RegionSource))
	fmt.Fprintf(out, "Output:   %s\n", settings.Output)
	fmt.Fprintln(out)

	// Try to get caller identity
	identity, err := client.CallerIdentity(ctx)
	if err != nil {
		printAuthFailure(out, settings.Profile, err)
		return nil
	}

	fmt.Fprintf(out, "Auth:     %s\n", ui.OKStyle.Render("✓ Authenticated"))
	fmt.Fprintf(out, "Account:  %s\n", identity.Account)
	fmt.Fprintf(out, "User:     %s\n", identity.UserID)
	if identity.Arn != "" {
		fmt.Fprintf(out, "ARN:      %s\n", ui.MutedStyle.Render(identity.Arn))
	}
	return nil
}

func printAuthFailure(out io.Writer, profile string, err error) {
	fmt.Fprintf(out, "Auth:     %s\n", ui.DangerStyle.Render("✗ Not authenticated"))
	fmt.Fprintf(out, "          %s\n", ui.MutedStyle.Render(err.Error()))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "To authenticate:")
	if profile != "" {
		fmt.Fprintf(out, "  aws sso login --profile %s\n", profile)
	} else {
		fmt.Fprintln(out, "  aws configure")
	}
}

func displayValue(v, placeholder string) string {
	if v == "" {
		return ui.MutedStyle.Render(placeholder)
	}
	return v
}

func sourceHint(source config.Source) string {
	return ui.MutedStyle.Render("[" + string(source) + "]")
}
