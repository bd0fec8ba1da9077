package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/skyline93/deque/internal/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var version = "0.3.0"

// GlobalOptions hold all global options for the deque command.
type GlobalOptions struct {
	Verbose bool
}

var globalOptions GlobalOptions

// env holds overrides read from DEQUE_* environment variables.
var env = viper.New()

// cmdRoot is the base command when no other command has been specified.
var cmdRoot = &cobra.Command{
	Use:   "deque",
	Short: "Exercise a block deque",
	Long: `
deque drives a double-ended queue that stores its elements in fixed-size
blocks. It replays operation scripts and runs verified stress workloads.

Every flag can also be set through the environment: --workers is read from
DEQUE_WORKERS, --continue-on-error from DEQUE_CONTINUE_ON_ERROR and so on.
Flags given on the command line take precedence.
`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	DisableAutoGenTag: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := applyEnv(cmd.Flags()); err != nil {
			return err
		}

		if globalOptions.Verbose {
			log.SetLevel(log.DebugLevel)
		}
		return nil
	},

	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var cmdVersion = &cobra.Command{
	Use:               "version",
	Short:             "Print version information",
	DisableAutoGenTag: true,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "deque %s\n", version)
	},
}

func init() {
	env.SetEnvPrefix("DEQUE")
	env.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	env.AutomaticEnv()

	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	log.SetLevel(log.InfoLevel)

	cmdRoot.AddCommand(cmdVersion)

	f := cmdRoot.PersistentFlags()
	f.BoolVarP(&globalOptions.Verbose, "verbose", "v", false, "print debug messages")
}

// applyEnv sets every flag the user did not pass explicitly from its
// DEQUE_* environment variable, if present.
func applyEnv(flags *pflag.FlagSet) error {
	var err error
	flags.VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Changed || !env.IsSet(f.Name) {
			return
		}

		if serr := flags.Set(f.Name, env.GetString(f.Name)); serr != nil {
			err = errors.Fatalf("invalid value for %v from environment: %v", f.Name, serr)
		}
	})
	return err
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cmdRoot.ExecuteContext(ctx)
	stop()

	switch {
	case err == nil:
		return
	case errors.IsFatal(err):
		fmt.Fprintln(os.Stderr, err)
	default:
		fmt.Fprintf(os.Stderr, "%+v\n", err)
	}
	os.Exit(1)
}
