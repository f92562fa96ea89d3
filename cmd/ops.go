package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vietdv277/chimectl/internal/operation"
	"github.com/vietdv277/chimectl/internal/ui"
)

var opsCmd = &cobra.Command{
	Use:   "ops",
	Short: "List and describe operations",
	Long: `List and describe the operations chimectl can run.

Examples:
  chimectl ops list
  chimectl ops list --service meetings
  chimectl ops describe delete-account
  chimectl ops describe chime/GetUser`,
}

var opsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List operations",
	Args:    cobra.NoArgs,
	RunE:    runOpsList,
}

var opsDescribeCmd = &cobra.Command{
	Use:   "describe <operation>",
	Short: "Show an operation's binding and parameters",
	Long: `Show an operation's REST binding, default selection, confirmation
impact and parameters.

The operation may be given as a command name (get-user), an operation
name (GetUser) or qualified with its service (chime/get-user).`,
	Args: cobra.ExactArgs(1),
	RunE: runOpsDescribe,
}

var opsService string

func init() {
	rootCmd.AddCommand(opsCmd)
	opsCmd.AddCommand(opsListCmd)
	opsCmd.AddCommand(opsDescribeCmd)

	opsListCmd.Flags().StringVar(&opsService, "service", "", "only list operations of this service ("+strings.Join(registry.Services(), ", ")+")")
}

// findOperation looks an operation up by name, optionally qualified as
// <service>/<operation>
func findOperation(name string) (*operation.Descriptor, error) {
	if service, op, ok := strings.Cut(name, "/"); ok {
		return registry.Lookup(service, op)
	}
	return registry.Find(name)
}

func runOpsList(cmd *cobra.Command, args []string) error {
	descs := registry.List()
	if opsService != "" {
		descs = registry.ByService(opsService)
		if len(descs) == 0 {
			return fmt.Errorf("unknown service %q (known: %s)", opsService, strings.Join(registry.Services(), ", "))
		}
	}
	return ui.OperationTable(descs).Write(cmd.OutOrStdout())
}

func runOpsDescribe(cmd *cobra.Command, args []string) error {
	d, err := findOperation(args[0])
	if err != nil {
		return err
	}
	return ui.DescribeOperation(cmd.OutOrStdout(), d)
}
