package commands

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/allyledger/ally2ledger/internal/config"
	"github.com/allyledger/ally2ledger/internal/importer"
	"github.com/allyledger/ally2ledger/internal/ledgercli"
	"github.com/allyledger/ally2ledger/internal/ledgercsv"
	"github.com/allyledger/ally2ledger/internal/model"
	"github.com/allyledger/ally2ledger/internal/runlog"
)

// defaultConfigPath is where the optional config file is looked up.
const defaultConfigPath = "ally2ledger.yaml"

// binEnvVar overrides the ledger binary when neither the flag nor the
// config file name one.
const binEnvVar = "ALLY2LEDGER_BIN"

type convertOptions struct {
	account string
	input   string
	output  string

	format     string
	ledgerBin  string
	dateFormat string
	configPath string
	keepTemp   bool
}

// runConvert is the whole pipeline: parse the bank export, write the
// intermediate CSV, run ledger convert against it, persist its stdout.
// Any stage failure aborts the run; nothing is retried.
func runConvert(logger *log.Logger, opts *convertOptions) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	bin := resolveBin(opts.ledgerBin, cfg)
	dateFormat := resolveDateFormat(opts.dateFormat, cfg)
	account := cfg.ResolveAccount(opts.account)

	parser := importer.DefaultRegistry().Get(opts.format)
	if parser == nil {
		return fmt.Errorf("unknown input format %q", opts.format)
	}

	in, err := os.Open(opts.input)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	txns, err := parser.Parse(in)
	in.Close()
	if err != nil {
		return err
	}

	summary := model.Summarize(txns)
	logger.Debug("parsed input", "format", parser.Format(), "rows", summary.Count, "unparsed_amounts", summary.Unparsed)

	tmp, err := ledgercsv.WriteTemp(txns)
	if err != nil {
		return err
	}
	if opts.keepTemp {
		logger.Info("keeping intermediate CSV", "path", tmp)
	} else {
		defer os.Remove(tmp)
	}

	logger.Debug("running external converter", "bin", bin, "account", account, "date_format", dateFormat)
	out, err := ledgercli.Convert(bin, tmp, dateFormat, account)
	if err != nil {
		return err
	}

	if err := os.WriteFile(opts.output, out, 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	logger.Info("converted", "account", account, "rows", summary.Count, "net", summary.Net.StringFixed(2), "output", opts.output)

	if cfg.Log.Enabled {
		entry := runlog.Entry{
			Timestamp: time.Now(),
			Account:   account,
			Input:     opts.input,
			Output:    opts.output,
			Rows:      summary.Count,
			Net:       summary.Net.StringFixed(2),
		}
		if err := runlog.Append(cfg.Log.Path, []runlog.Entry{entry}); err != nil {
			logger.Warn("failed to write run log", "error", err)
		}
	}

	return nil
}

// loadConfig reads the config file at path. A missing file is not an
// error; resolution falls through to env and built-in defaults.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &config.Config{}, nil
		}
		return nil, err
	}
	return cfg, nil
}

func resolveBin(flagBin string, cfg *config.Config) string {
	if flagBin != "" {
		return flagBin
	}
	if cfg.Ledger.Bin != "" {
		return cfg.Ledger.Bin
	}
	if bin := os.Getenv(binEnvVar); bin != "" {
		return bin
	}
	return ledgercli.DefaultBin
}

func resolveDateFormat(flagFormat string, cfg *config.Config) string {
	if flagFormat != "" {
		return flagFormat
	}
	if cfg.Ledger.DateFormat != "" {
		return cfg.Ledger.DateFormat
	}
	return ledgercli.DefaultDateFormat
}
