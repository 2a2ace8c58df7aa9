// Package report derives monthly totals and category breakdowns from a
// snapshot of ledger transactions.
package report

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/moneymate/internal/transaction"
)

var hundred = decimal.NewFromInt(100)

// Report is read-only. It never observes ledger changes made after New.
type Report struct {
	period transaction.Period
	txs    []transaction.Transaction
}

// Share is one category's part of an income or expense total.
type Share struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Percent  decimal.Decimal `json:"percent"` // 0-100, one decimal place
}

// New keeps the transactions of txs that fall inside period.
func New(txs []transaction.Transaction, period transaction.Period) *Report {
	r := &Report{period: period}

	for _, tx := range txs {
		if period.Contains(tx.Date) {
			r.txs = append(r.txs, tx)
		}
	}

	return r
}

func (r *Report) Period() transaction.Period {
	return r.period
}

// Transactions returns the transactions inside the period.
func (r *Report) Transactions() []transaction.Transaction {
	return slices.Clone(r.txs)
}

func (r *Report) TotalIncome() decimal.Decimal {
	return r.total(transaction.KindIncome)
}

func (r *Report) TotalExpense() decimal.Decimal {
	return r.total(transaction.KindExpense)
}

// Balance is income minus expenses within the period. The ledger's initial
// balance is not part of it.
func (r *Report) Balance() decimal.Decimal {
	return r.TotalIncome().Sub(r.TotalExpense())
}

func (r *Report) ExpenseByCategory() map[string]decimal.Decimal {
	return r.byCategory(transaction.KindExpense)
}

func (r *Report) IncomeByCategory() map[string]decimal.Decimal {
	return r.byCategory(transaction.KindIncome)
}

// Breakdown lists kind's categories by amount, largest first, with their
// share of the kind's total. It is empty when that total is zero.
func (r *Report) Breakdown(kind transaction.Kind) []Share {
	total := r.total(kind)
	if total.IsZero() {
		return nil
	}

	byCat := r.byCategory(kind)
	shares := make([]Share, 0, len(byCat))

	for cat, amount := range byCat {
		shares = append(shares, Share{
			Category: cat,
			Amount:   amount,
			Percent:  amount.Div(total).Mul(hundred).Round(1),
		})
	}

	slices.SortFunc(shares, func(a, b Share) int {
		if c := b.Amount.Cmp(a.Amount); c != 0 {
			return c
		}

		return cmp.Compare(a.Category, b.Category)
	})

	return shares
}

func (r *Report) total(kind transaction.Kind) decimal.Decimal {
	total := decimal.Zero

	for _, tx := range r.txs {
		if tx.Kind == kind {
			total = total.Add(tx.Amount)
		}
	}

	return total
}

func (r *Report) byCategory(kind transaction.Kind) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal)

	for _, tx := range r.txs {
		if tx.Kind == kind {
			out[tx.Category] = out[tx.Category].Add(tx.Amount)
		}
	}

	return out
}
