package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vietdv277/chimectl/internal/config"
	"github.com/vietdv277/chimectl/internal/ui"
)

var contextsCmd = &cobra.Command{
	Use:     "contexts",
	Aliases: []string{"ctx"},
	Short:   "List all configured contexts",
	Long: `List all configured contexts.

The current active context is marked with an asterisk (*).

Examples:
  chimectl contexts
  chimectl ctx`,
	Args: cobra.NoArgs,
	RunE: runContexts,
}

func init() {
	rootCmd.AddCommand(contextsCmd)
}

func runContexts(cmd *cobra.Command, args []string) error {
	contexts, current, err := config.ListContexts()
	if err != nil {
		return fmt.Errorf("failed to list contexts: %w", err)
	}

	if len(contexts) == 0 {
		printNoContexts(cmd)
		return nil
	}

	return ui.ContextTable(contexts, current).Write(cmd.OutOrStdout())
}
