package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vietdv277/chimectl/internal/aws"
	"github.com/vietdv277/chimectl/internal/config"
	"github.com/vietdv277/chimectl/internal/ui"
)

var useCmd = &cobra.Command{
	Use:   "use [context-name]",
	Short: "Set the active context",
	Long: `Set the active context for subsequent commands.

A context is a named AWS profile and region pair. Once set, every
operation command uses it unless --profile, --region or --context
say otherwise. Without an argument an interactive selector opens.

Examples:
  chimectl use prod          # Switch to the prod context
  chimectl use               # Pick a context interactively`,
	Args: cobra.MaximumNArgs(1),
	RunE: runUse,
}

var useAddCmd = &cobra.Command{
	Use:   "add <context-name>",
	Short: "Add a new context",
	Long: `Add a new context, or replace an existing one with the same name.

Examples:
  chimectl use add prod --profile chime-admin --region us-east-1
  chimectl use add lab --profile sandbox`,
	Args: cobra.ExactArgs(1),
	RunE: runUseAdd,
}

var useDeleteCmd = &cobra.Command{
	Use:   "delete <context-name>",
	Short: "Delete a context",
	Long: `Delete a context configuration.

Examples:
  chimectl use delete old-lab`,
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"rm", "remove"},
	RunE:    runUseDelete,
}

var (
	// Flags for use add
	useAddProfile string
	useAddRegion  string
)

func init() {
	rootCmd.AddCommand(useCmd)
	useCmd.AddCommand(useAddCmd)
	useCmd.AddCommand(useDeleteCmd)

	// Flags for use add
	useAddCmd.Flags().StringVar(&useAddProfile, "profile", "", "AWS profile name")
	useAddCmd.Flags().StringVar(&useAddRegion, "region", "", "AWS region")
}

func runUse(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	contexts, current, err := config.ListContexts()
	if err != nil {
		return fmt.Errorf("failed to list contexts: %w", err)
	}

	var contextName string
	if len(args) == 1 {
		contextName = args[0]
	} else {
		if len(contexts) == 0 {
			printNoContexts(cmd)
			return nil
		}
		contextName, err = ui.SelectContext(contexts, current)
		if errors.Is(err, ui.ErrSelectionCancelled) {
			return nil
		}
		if err != nil {
			return err
		}
	}

	if err := config.SetCurrentContext(contextName); err != nil {
		if !errors.Is(err, config.ErrContextNotFound) {
			return err
		}

		fmt.Fprintf(out, "Context %q not found.\n\n", contextName)
		if len(contexts) == 0 {
			printNoContexts(cmd)
			return nil
		}
		fmt.Fprintln(out, "Available contexts:")
		for _, name := range config.ContextNames(contexts) {
			marker := "  "
			if name == current {
				marker = "* "
			}
			fmt.Fprintf(out, "  %s%s\n", marker, name)
		}
		return nil
	}

	ctx := contexts[contextName]
	fmt.Fprintf(out, "Switched to context: %s\n", ui.OKStyle.Render(contextName))
	if ctx.Profile != "" {
		fmt.Fprintf(out, "  Profile:  %s\n", ctx.Profile)
	}
	if ctx.Region != "" {
		fmt.Fprintf(out, "  Region:   %s\n", ctx.Region)
	}

	return nil
}

func runUseAdd(cmd *cobra.Command, args []string) error {
	contextName := args[0]
	out := cmd.OutOrStdout()

	if useAddProfile == "" && useAddRegion == "" {
		return fmt.Errorf("a context needs --profile, --region or both")
	}
	if useAddProfile != "" && !aws.ValidateProfile(useAddProfile) {
		return fmt.Errorf("profile %q not found in the shared AWS config files", useAddProfile)
	}

	ctx := &config.Context{
		Profile: useAddProfile,
		Region:  useAddRegion,
	}
	if err := config.AddContext(contextName, ctx); err != nil {
		return fmt.Errorf("failed to add context: %w", err)
	}

	fmt.Fprintf(out, "Context added: %s\n", contextName)
	fmt.Fprintln(out, "\nTo use this context:")
	fmt.Fprintf(out, "  chimectl use %s\n", contextName)

	return nil
}

func runUseDelete(cmd *cobra.Command, args []string) error {
	contextName := args[0]

	if err := config.DeleteContext(contextName); err != nil {
		return fmt.Errorf("failed to delete context: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Context deleted: %s\n", contextName)
	return nil
}

func printNoContexts(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "No contexts configured. Add one with:")
	fmt.Fprintln(out, "  chimectl use add <name> --profile <profile> --region <region>")
}
