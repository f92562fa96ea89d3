package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vietdv277/chimectl/internal/ui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse operations interactively",
	Long: `Open an interactive picker over every operation. Type to filter,
use the arrow keys to move and Enter to show the chosen operation.

Examples:
  chimectl browse`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	d, err := ui.SelectOperation(registry.List())
	if err != nil {
		if errors.Is(err, ui.ErrSelectionCancelled) {
			return nil
		}
		return err
	}

	out := cmd.OutOrStdout()
	if err := ui.DescribeOperation(out, d); err != nil {
		return err
	}
	fmt.Fprintf(out, "\nRun it with:\n  %s\n", ui.Usage("chimectl", d))
	return nil
}
