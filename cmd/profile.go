package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vietdv277/chimectl/internal/aws"
	"github.com/vietdv277/chimectl/internal/config"
	"github.com/vietdv277/chimectl/internal/ui"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage AWS profiles",
	Long: `Manage the AWS profile chimectl signs requests with.

When run without subcommands, shows an interactive selector to choose a
profile. The choice is stored on the current context.

Examples:
  chimectl profile                    # Interactive profile selector
  chimectl profile ls                 # List all available profiles
  chimectl profile set chime-admin    # Set a specific profile`,
	Args: cobra.NoArgs,
	RunE: runProfileInteractive,
}

var profileLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List available AWS profiles",
	Long: `List all available AWS profiles from ~/.aws/credentials and ~/.aws/config.

AWS_SHARED_CREDENTIALS_FILE and AWS_CONFIG_FILE are honored.

Examples:
  chimectl profile ls`,
	Args: cobra.NoArgs,
	RunE: runProfileList,
}

var profileSetCmd = &cobra.Command{
	Use:   "set <profile-name>",
	Short: "Set the active AWS profile",
	Long: `Set a specific AWS profile on the current context.

Without a current context the matching export line is printed instead.

Examples:
  chimectl profile set chime-admin`,
	Args: cobra.ExactArgs(1),
	RunE: runProfileSet,
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileLsCmd)
	profileCmd.AddCommand(profileSetCmd)
}

func runProfileInteractive(cmd *cobra.Command, args []string) error {
	profiles, err := aws.ListProfiles()
	if err != nil {
		return fmt.Errorf("failed to list profiles: %w", err)
	}

	if len(profiles) == 0 {
		printNoProfiles(cmd)
		return nil
	}

	selected, err := ui.SelectProfile(profiles, activeProfile())
	if errors.Is(err, ui.ErrSelectionCancelled) {
		return nil
	}
	if err != nil {
		return err
	}

	return saveProfile(cmd, selected)
}

func runProfileList(cmd *cobra.Command, args []string) error {
	profiles, err := aws.ListProfiles()
	if err != nil {
		return fmt.Errorf("failed to list profiles: %w", err)
	}

	if len(profiles) == 0 {
		printNoProfiles(cmd)
		return nil
	}

	return ui.ProfileTable(profiles, activeProfile()).Write(cmd.OutOrStdout())
}

func runProfileSet(cmd *cobra.Command, args []string) error {
	profileName := args[0]

	if !aws.ValidateProfile(profileName) {
		return fmt.Errorf("profile %q not found", profileName)
	}

	return saveProfile(cmd, profileName)
}

// saveProfile stores the profile on the current context, or prints the
// export line when no context is selected
func saveProfile(cmd *cobra.Command, profileName string) error {
	out := cmd.OutOrStdout()

	ctx, ctxName, err := config.GetCurrentContext()
	if err != nil {
		return err
	}
	if ctx == nil {
		fmt.Fprintf(out, "No current context; profile %s was not saved.\n\n", profileName)
		fmt.Fprintln(out, "To use this profile in your current shell, run:")
		fmt.Fprintf(out, "  export AWS_PROFILE=%s\n", profileName)
		return nil
	}

	updated := *ctx
	updated.Profile = profileName
	if err := config.AddContext(ctxName, &updated); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	fmt.Fprintf(out, "Profile set to: %s\n", ui.NameStyle.Render(profileName))
	fmt.Fprintf(out, "Context:        %s\n", ctxName)
	fmt.Fprintf(out, "Saved to:       %s\n", config.GetConfigPath())
	return nil
}

// activeProfile returns the profile operation commands would use
func activeProfile() string {
	settings, err := config.Resolve(overrides())
	if err != nil {
		logger.Debug("failed to resolve settings", "err", err)
		return ""
	}
	return settings.Profile
}

func printNoProfiles(cmd *cobra.Command) {
	fmt.Fprintln(cmd.OutOrStdout(), "No AWS profiles found")
	fmt.Fprintln(cmd.OutOrStdout(), "Create profiles in ~/.aws/credentials or ~/.aws/config")
}
