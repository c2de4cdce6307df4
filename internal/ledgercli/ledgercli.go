// Package ledgercli invokes the external ledger binary.
package ledgercli

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// DefaultBin is the external binary resolved on PATH when no override is
// configured.
const DefaultBin = "ledger"

// DefaultDateFormat is the strftime-style date format passed to ledger
// convert, matching the dates in an Ally export.
const DefaultDateFormat = "%Y-%m-%d"

// Convert runs `<bin> convert <csvPath> --input-date-format <dateFormat>
// --account <account>` and returns its stdout. The argv is passed as a
// discrete slice, so account names containing spaces stay one argument.
// A nonzero exit or unresolvable binary is returned as an error with any
// stderr output folded in; there is no timeout.
func Convert(bin, csvPath, dateFormat, account string) ([]byte, error) {
	cmd := exec.Command(bin, "convert", csvPath,
		"--input-date-format", dateFormat,
		"--account", account)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%s convert: %s: %w", bin, msg, err)
		}
		return nil, fmt.Errorf("%s convert: %w", bin, err)
	}

	return stdout.Bytes(), nil
}
