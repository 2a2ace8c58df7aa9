package bank

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/moneymate/internal/transaction"
)

// PaymentMethod is recorded on every imported expense.
const PaymentMethod = "Bank transfer"

var dateLayouts = []string{"02-01-2006", "02/01/2006", "2006-01-02"}

// Parser reads semicolon-separated bank statements. The header row may be
// preceded by any number of preamble lines; the first row matching a known
// profile is taken as the header.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]transaction.Transaction, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	if len(rows) == 0 {
		return nil, nil
	}

	profile, cols, headerIdx := detectProfile(rows)
	if profile == nil {
		return nil, fmt.Errorf("no matching bank statement layout found")
	}

	return parseRows(profile, cols, rows[headerIdx+1:], headerIdx+1)
}

type colIndex map[string]int

func detectProfile(rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			if name := strings.TrimSpace(cell); name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

// parseRows skips rows without a date or amount (footers, totals) but fails
// on a dated row with no description. headerRow is the 1-based line of the header.
func parseRows(p *Profile, cols colIndex, rows [][]string, headerRow int) ([]transaction.Transaction, error) {
	dateIdx := cols[p.DateCol]
	descIdx := cols[p.DescCol]

	var txs []transaction.Transaction

	for i, row := range rows {
		rowNum := headerRow + i + 1

		date, ok := parseDate(cellValue(row, dateIdx))
		if !ok {
			continue
		}

		desc := cellValue(row, descIdx)
		if desc == "" {
			return nil, fmt.Errorf("row %d: missing description", rowNum)
		}

		amount, kind, ok := parseAmount(p, cols, row)
		if !ok {
			continue
		}

		switch kind {
		case transaction.KindIncome:
			txs = append(txs, transaction.NewIncome(transaction.IncomeParams{
				Amount:      amount,
				Description: desc,
				Date:        date,
				Source:      PaymentMethod,
			}))
		case transaction.KindExpense:
			txs = append(txs, transaction.NewExpense(transaction.ExpenseParams{
				Amount:        amount,
				Description:   desc,
				Date:          date,
				PaymentMethod: PaymentMethod,
			}))
		}
	}

	return txs, nil
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

func parseAmount(p *Profile, cols colIndex, row []string) (decimal.Decimal, transaction.Kind, bool) {
	switch p.AmountMode {
	case amountSingle:
		return parseSingleAmount(cellValue(row, cols[p.AmountCol]))
	case amountSplit:
		return parseSplitAmount(cellValue(row, cols[p.DebitCol]), cellValue(row, cols[p.CreditCol]))
	}

	return decimal.Zero, "", false
}

// parseSingleAmount maps the sign to the kind: negative is an expense.
func parseSingleAmount(s string) (decimal.Decimal, transaction.Kind, bool) {
	if s == "" {
		return decimal.Zero, "", false
	}

	d, err := parseEuropeanAmount(s)
	if err != nil || d.IsZero() {
		return decimal.Zero, "", false
	}

	if d.IsNegative() {
		return d.Neg(), transaction.KindExpense, true
	}

	return d, transaction.KindIncome, true
}

func parseSplitAmount(debit, credit string) (decimal.Decimal, transaction.Kind, bool) {
	if debit != "" {
		d, err := parseEuropeanAmount(debit)
		if err == nil && !d.IsZero() {
			return d.Abs(), transaction.KindExpense, true
		}
	}

	if credit != "" {
		d, err := parseEuropeanAmount(credit)
		if err == nil && !d.IsZero() {
			return d.Abs(), transaction.KindIncome, true
		}
	}

	return decimal.Zero, "", false
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
