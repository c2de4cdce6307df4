package model

import "github.com/shopspring/decimal"

// Transaction represents one row of an Ally Bank CSV export. Fields are
// kept verbatim from the source file; the external ledger tool is the
// authority on parsing them, so this program never coerces or validates.
type Transaction struct {
	Date        string
	Time        string
	Amount      string // signed decimal string, e.g. "-4.00"
	Type        string // bank transaction type (Withdrawal, Deposit, etc.)
	Description string
}

// Summary describes a batch of transactions for reporting purposes.
type Summary struct {
	Count    int
	Net      decimal.Decimal // sum of amounts that parse as decimals
	Unparsed int             // rows whose amount did not parse
}

// Summarize totals the amounts of txns. Rows whose amount does not parse
// as a decimal are counted in Unparsed and excluded from Net; they are
// never an error here since the fields are passed through verbatim.
func Summarize(txns []Transaction) Summary {
	s := Summary{Count: len(txns)}
	for _, txn := range txns {
		amt, err := decimal.NewFromString(txn.Amount)
		if err != nil {
			s.Unparsed++
			continue
		}
		s.Net = s.Net.Add(amt)
	}
	return s
}
