package importer

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/allyledger/ally2ledger/internal/model"
)

// AllyParser parses Ally Bank CSV exports.
type AllyParser struct{}

const (
	allyNumFields = 5
	allyColDate   = 0
	allyColTime   = 1
	allyColAmount = 2
	allyColType   = 3
	allyColDesc   = 4
)

// Format returns the parser name.
func (p *AllyParser) Format() string { return "ally" }

// Parse reads an Ally CSV and returns Transactions oldest first.
// The first row is discarded unconditionally as the header; field values
// are passed through verbatim.
func (p *AllyParser) Parse(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = allyNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading ally CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	txns := make([]model.Transaction, 0, len(records)-1)
	for _, rec := range records[1:] {
		txns = append(txns, model.Transaction{
			Date:        rec[allyColDate],
			Time:        rec[allyColTime],
			Amount:      rec[allyColAmount],
			Type:        rec[allyColType],
			Description: rec[allyColDesc],
		})
	}

	// Ally exports newest first; the ledger tool wants chronological order.
	for i, j := 0, len(txns)-1; i < j; i, j = i+1, j-1 {
		txns[i], txns[j] = txns[j], txns[i]
	}

	return txns, nil
}
