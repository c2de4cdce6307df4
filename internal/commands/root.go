package commands

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/allyledger/ally2ledger/internal/buildinfo"
)

// NewRootCommand creates the CLI. The root command itself performs the
// conversion (account, input, output as positional arguments); init and
// log are auxiliary subcommands.
func NewRootCommand() *cobra.Command {
	opts := &convertOptions{}
	var verbose bool

	rootCmd := &cobra.Command{
		Use:     "ally2ledger <account> <input> <output>",
		Short:   "Convert an Ally Bank CSV export to a Ledger-compatible file",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		Args:    cobra.ExactArgs(3),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.account = args[0]
			opts.input = args[1]
			opts.output = args[2]
			return runConvert(newLogger(verbose), opts)
		},
	}

	rootCmd.Flags().StringVar(&opts.format, "format", "ally", "input CSV format")
	rootCmd.Flags().StringVar(&opts.ledgerBin, "ledger", "", "ledger binary to invoke (default from config, ALLY2LEDGER_BIN, or PATH)")
	rootCmd.Flags().StringVar(&opts.dateFormat, "date-format", "", "input date format passed to ledger convert")
	rootCmd.Flags().StringVar(&opts.configPath, "config", defaultConfigPath, "path to ally2ledger.yaml")
	rootCmd.Flags().BoolVar(&opts.keepTemp, "keep-temp", false, "keep the intermediate CSV for debugging")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newLogCommand())

	return rootCmd
}

func newLogger(verbose bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "ally2ledger"})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
