// Package ledgercsv writes the intermediate CSV consumed by the external
// ledger convert command.
package ledgercsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/allyledger/ally2ledger/internal/model"
)

// Header is the CSV header the ledger convert command expects.
const Header = "amount,date,description,note"

const (
	numFields = 4
	colAmount = 0
	colDate   = 1
	colDesc   = 2
	colNote   = 3
)

// Marshal converts a Transaction to an output CSV row. The bank's type
// field becomes the note; the time-of-day field is dropped.
func Marshal(txn model.Transaction) []string {
	row := make([]string, numFields)
	row[colAmount] = txn.Amount
	row[colDate] = txn.Date
	row[colDesc] = txn.Description
	row[colNote] = txn.Type
	return row
}

// Write writes a header row followed by one row per transaction.
func Write(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, txn := range txns {
		if err := cw.Write(Marshal(txn)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// WriteTemp writes txns to a uniquely named temporary CSV file and returns
// its path. Concurrent invocations never collide. The caller owns the file
// and is responsible for removing it.
func WriteTemp(txns []model.Transaction) (string, error) {
	f, err := os.CreateTemp("", "ledger-*.csv")
	if err != nil {
		return "", fmt.Errorf("creating temp CSV: %w", err)
	}

	if err := Write(f, txns); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}

	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("closing temp CSV: %w", err)
	}

	return f.Name(), nil
}
