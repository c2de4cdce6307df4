package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/allyledger/ally2ledger/internal/config"
	"github.com/allyledger/ally2ledger/internal/runlog"
)

func newLogCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show recorded conversion runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLog(configPath)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", defaultConfigPath, "path to ally2ledger.yaml")

	return cmd
}

func runLog(configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	path := cfg.Log.Path
	if path == "" {
		path = config.Default().Log.Path
	}

	entries, err := runlog.Read(path)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("no recorded runs")
		return nil
	}

	for _, e := range entries {
		fmt.Printf("%s  %-24s %5d rows  net %10s  %s -> %s\n",
			e.Timestamp.Format("2006-01-02 15:04"),
			e.Account, e.Rows, e.Net, e.Input, e.Output)
	}
	return nil
}
