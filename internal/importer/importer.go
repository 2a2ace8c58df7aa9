// Package importer turns uploaded CSV files into unsaved ledger transactions.
package importer

import (
	"context"
	"io"

	"github.com/MrJamesThe3rd/moneymate/internal/transaction"
)

type Format string

const (
	// FormatLedger is MoneyMate's own comma-separated export layout.
	FormatLedger Format = "ledger"
	// FormatBank is a semicolon-separated bank statement with signed amounts.
	FormatBank Format = "bank"
)

type Parser interface {
	Parse(r io.Reader) ([]transaction.Transaction, error)
}

// Ledger is where parsed transactions end up.
type Ledger interface {
	AddAll(ctx context.Context, txs []transaction.Transaction) ([]transaction.Transaction, []error)
}
