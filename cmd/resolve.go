package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vietdv277/chimectl/internal/aws"
	"github.com/vietdv277/chimectl/internal/config"
	"github.com/vietdv277/chimectl/internal/invoke"
	"github.com/vietdv277/chimectl/internal/ui"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <reference>...",
	Short: "Resolve value references",
	Long: `Resolve {{resolve:...}} value references the way operation commands do
before binding them, and print the results.

References:
  {{resolve:ssm:<parameter-name>}}                      # SSM Parameter Store, decrypted
  {{resolve:secretsmanager:<secret-id>}}                # Secrets Manager SecretString
  {{resolve:secretsmanager:<secret-id>:SecretString:<key>}}  # one key of a JSON secret

Values are masked unless --reveal is given.

Examples:
  chimectl resolve '{{resolve:ssm:/chime/prod/account-id}}'
  chimectl resolve --reveal '{{resolve:secretsmanager:chime/bot:SecretString:token}}'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runResolve,
}

var resolveReveal bool

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().BoolVar(&resolveReveal, "reveal", false, "print resolved values instead of masking them")
}

func runResolve(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	for _, ref := range args {
		if _, _, ok := invoke.ParseReference(ref); !ok {
			return fmt.Errorf("%w: %q is not a {{resolve:scheme:key}} reference", invoke.ErrUnresolvedRef, ref)
		}
	}

	settings, err := config.Resolve(overrides())
	if err != nil {
		return fmt.Errorf("failed to resolve settings: %w", err)
	}
	client, err := aws.NewClient(ctx, aws.WithProfile(settings.Profile), aws.WithRegion(settings.Region))
	if err != nil {
		return err
	}
	resolver := client.Resolver()

	t := &ui.Table{
		Headers: []string{"Reference", "Value"},
		Styles:  []lipgloss.Style{ui.NameStyle, ui.ValueStyle},
	}
	for _, ref := range args {
		scheme, key, _ := invoke.ParseReference(ref)
		value, err := resolver.Resolve(ctx, scheme, key)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", ref, err)
		}
		if !resolveReveal {
			value = maskValue(value)
		}
		t.Rows = append(t.Rows, []string{ref, value})
	}
	return t.Write(cmd.OutOrStdout())
}

// maskValue keeps the last four characters of values long enough to hide
func maskValue(v string) string {
	if len(v) <= 8 {
		return "********"
	}
	return "****" + v[len(v)-4:]
}
