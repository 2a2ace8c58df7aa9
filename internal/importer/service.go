package importer

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/MrJamesThe3rd/moneymate/internal/encoding"
	"github.com/MrJamesThe3rd/moneymate/internal/importer/bank"
	"github.com/MrJamesThe3rd/moneymate/internal/importer/ledgercsv"
	"github.com/MrJamesThe3rd/moneymate/internal/transaction"
)

// RowResult is the outcome of adding one parsed transaction.
type RowResult struct {
	Transaction transaction.Transaction `json:"-"`
	ID          string                  `json:"id,omitempty"`
	Description string                  `json:"description"`
	Error       string                  `json:"error,omitempty"`
}

type Result struct {
	Charset string      `json:"charset"`
	Added   int         `json:"added"`
	Failed  int         `json:"failed"`
	Rows    []RowResult `json:"rows"`
}

type Service struct {
	ledger  Ledger
	parsers map[Format]Parser
}

func NewService(ledger Ledger) *Service {
	return &Service{
		ledger: ledger,
		parsers: map[Format]Parser{
			FormatLedger: ledgercsv.NewParser(),
			FormatBank:   bank.NewParser(),
		},
	}
}

// Parse decodes r to UTF-8 and parses it with format's parser.
func (s *Service) Parse(format Format, r io.Reader) ([]transaction.Transaction, string, error) {
	parser, ok := s.parsers[format]
	if !ok {
		return nil, "", fmt.Errorf("unknown import format: %s", format)
	}

	utf8r, charset, err := encoding.NewUTF8Reader(r)
	if err != nil {
		return nil, "", fmt.Errorf("detecting encoding: %w", err)
	}

	txs, err := parser.Parse(utf8r)
	if err != nil {
		return nil, charset, fmt.Errorf("parsing %s file: %w", format, err)
	}

	return txs, charset, nil
}

// Import parses r and adds every transaction to the ledger in file order.
// Rows the ledger rejects are reported, not fatal.
func (s *Service) Import(ctx context.Context, format Format, r io.Reader) (*Result, error) {
	txs, charset, err := s.Parse(format, r)
	if err != nil {
		return nil, err
	}

	added, errs := s.ledger.AddAll(ctx, txs)

	res := &Result{Charset: charset, Rows: make([]RowResult, len(txs))}

	for i, tx := range txs {
		row := RowResult{Transaction: tx, Description: tx.Description}

		if errs[i] != nil {
			row.Error = errs[i].Error()
			res.Failed++
		} else {
			row.Transaction = added[i]
			row.ID = added[i].ID
			res.Added++
		}

		res.Rows[i] = row
	}

	slog.Info("import finished", "format", format, "charset", charset, "added", res.Added, "failed", res.Failed)

	return res, nil
}
