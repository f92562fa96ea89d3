package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vietdv277/chimectl/internal/catalog"
	"github.com/vietdv277/chimectl/internal/config"
	"github.com/vietdv277/chimectl/internal/operation"
)

var (
	// Global flags
	profile     string
	region      string
	contextName string
	output      string
	verbose     bool
)

// errInvocationsFailed is returned after failures were already written to
// stderr, so Execute only sets the exit code.
var errInvocationsFailed = errors.New("one or more invocations failed")

var (
	registry = operation.NewRegistry().MustRegister(catalog.Descriptors()...)

	logger = log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "chimectl",
		Level:  log.WarnLevel,
	})
)

var rootCmd = &cobra.Command{
	Use:   "chimectl",
	Short: "chimectl - operate Amazon Chime and Chime SDK Meetings from the shell",
	Long: `chimectl exposes every Amazon Chime and Chime SDK Meetings operation as a
command. Each command binds its flags onto the request, makes exactly one
call and prints the selected part of the response.

Operation Commands:
  chimectl chime get-account <account-id>
  chimectl chime list-users <account-id> --user-type PrivateUser -o json
  chimectl meetings create-attendee <meeting-id> --external-user-id alice
  cat ids.txt | chimectl chime delete-room <account-id> --force

Context-Aware Commands:
  chimectl use prod            # Switch to the prod context
  chimectl status              # Show current context and auth status
  chimectl contexts            # List all configured contexts

Discovery:
  chimectl ops list            # List every operation
  chimectl ops describe get-user
  chimectl browse              # Interactive operation browser`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

// Execute runs the root command. SIGINT cancels the call in flight.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	rootCmd.SetArgs(expandAlias(os.Args[1:], config.ResolveAlias))
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		if !errors.Is(err, errInvocationsFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&profile, "profile", "p", "", "AWS profile to use")
	rootCmd.PersistentFlags().StringVarP(&region, "region", "r", "", "AWS region to use")
	rootCmd.PersistentFlags().StringVarP(&contextName, "context", "c", "", "context to use instead of the current one")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "output format: table, json or yaml")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	// Bind flags to viper
	for _, name := range []string{"profile", "region", "context", "output", "verbose"} {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}

	for _, service := range registry.Services() {
		rootCmd.AddCommand(newServiceCmd(service, registry.ByService(service)))
	}
}

func initConfig() {
	// CHIMECTL_PROFILE, CHIMECTL_REGION, CHIMECTL_CONTEXT, CHIMECTL_OUTPUT
	viper.SetEnvPrefix("CHIMECTL")
	viper.AutomaticEnv()

	verbose = viper.GetBool("verbose")
}

// overrides collects the flag and CHIMECTL_* values for config.Resolve
func overrides() config.Overrides {
	return config.Overrides{
		Profile: viper.GetString("profile"),
		Region:  viper.GetString("region"),
		Context: viper.GetString("context"),
		Output:  viper.GetString("output"),
	}
}

// expandAlias rewrites a leading operation alias from the config file into
// its service and command words.
func expandAlias(args []string, resolve func(string) (string, error)) []string {
	if len(args) == 0 {
		return args
	}
	if found, _, err := rootCmd.Find(args[:1]); err == nil && found != rootCmd {
		return args
	}

	target, err := resolve(args[0])
	if err != nil || target == args[0] {
		return args
	}

	d, err := findOperation(target)
	if err != nil {
		logger.Warn("ignoring alias", "alias", args[0], "target", target, "err", err)
		return args
	}
	logger.Debug("expanded alias", "alias", args[0], "operation", d.Name)

	expanded := []string{d.Service, d.CommandName()}
	return append(expanded, args[1:]...)
}
