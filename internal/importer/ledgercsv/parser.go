// Package ledgercsv parses MoneyMate's own CSV layout:
//
//	type,date,category,description,amount[,detail[,recurring]]
//
// detail is the source of an income or the payment method of an expense.
package ledgercsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/moneymate/internal/transaction"
)

const (
	colType = iota
	colDate
	colCategory
	colDescription
	colAmount
	colDetail
	colRecurring

	minCols = colAmount + 1
)

var dateLayouts = []string{time.DateOnly, "02/01/2006"}

var ErrBadRow = errors.New("malformed row")

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Parse reads every row. An optional header whose first cell is "type" is
// skipped, as are blank lines and lines starting with '#'.
func (p *Parser) Parse(r io.Reader) ([]transaction.Transaction, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	var txs []transaction.Transaction

	for line := 1; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}

		if line == 1 && strings.EqualFold(strings.TrimSpace(row[0]), "type") {
			continue
		}

		tx, err := parseRow(row)
		if err != nil {
			rowNum, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		txs = append(txs, tx)
	}

	return txs, nil
}

func parseRow(row []string) (transaction.Transaction, error) {
	if len(row) < minCols {
		return transaction.Transaction{}, fmt.Errorf("%w: want at least %d columns, got %d", ErrBadRow, minCols, len(row))
	}

	kind, err := transaction.ParseKind(row[colType])
	if err != nil {
		return transaction.Transaction{}, err
	}

	date, err := parseDate(cell(row, colDate))
	if err != nil {
		return transaction.Transaction{}, err
	}

	amount, err := decimal.NewFromString(cell(row, colAmount))
	if err != nil {
		return transaction.Transaction{}, fmt.Errorf("%w: amount %q", ErrBadRow, cell(row, colAmount))
	}

	if kind == transaction.KindIncome {
		return transaction.NewIncome(transaction.IncomeParams{
			Amount:      amount,
			Description: cell(row, colDescription),
			Date:        date,
			Category:    cell(row, colCategory),
			Source:      cell(row, colDetail),
		}), nil
	}

	recurring := false
	if s := cell(row, colRecurring); s != "" {
		recurring, err = strconv.ParseBool(s)
		if err != nil {
			return transaction.Transaction{}, fmt.Errorf("%w: recurring %q", ErrBadRow, s)
		}
	}

	return transaction.NewExpense(transaction.ExpenseParams{
		Amount:        amount,
		Description:   cell(row, colDescription),
		Date:          date,
		Category:      cell(row, colCategory),
		PaymentMethod: cell(row, colDetail),
		Recurring:     recurring,
	}), nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: date %q", ErrBadRow, s)
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
