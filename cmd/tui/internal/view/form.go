package view

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/moneymate/internal/category"
	"github.com/MrJamesThe3rd/moneymate/internal/transaction"
)

// txFields holds the form bindings. It lives on the heap so huh keeps
// writing to the same values while the bubbletea model is copied around.
type txFields struct {
	kind        transaction.Kind
	amount      string
	description string
	date        string
	category    string
	detail      string
	recurring   bool
}

func fieldsFrom(tx transaction.Transaction) *txFields {
	f := &txFields{
		kind:        tx.Kind,
		amount:      tx.Amount.StringFixed(2),
		description: tx.Description,
		date:        FormatDate(tx.Date),
		category:    tx.Category,
	}

	if tx.IsIncome() {
		f.detail = tx.Income.Source
	} else {
		f.detail = tx.Expense.PaymentMethod
		f.recurring = tx.Expense.Recurring
	}

	return f
}

func newFields(now time.Time) *txFields {
	return &txFields{kind: transaction.KindExpense, date: FormatDate(now)}
}

func (f *txFields) transaction() (transaction.Transaction, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(f.amount))
	if err != nil {
		return transaction.Transaction{}, fmt.Errorf("invalid amount %q", f.amount)
	}

	date, err := time.Parse(time.DateOnly, strings.TrimSpace(f.date))
	if err != nil {
		return transaction.Transaction{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", f.date)
	}

	if f.kind == transaction.KindIncome {
		return transaction.NewIncome(transaction.IncomeParams{
			Amount:      amount,
			Description: f.description,
			Date:        date,
			Category:    f.category,
			Source:      f.detail,
		}), nil
	}

	return transaction.NewExpense(transaction.ExpenseParams{
		Amount:        amount,
		Description:   f.description,
		Date:          date,
		Category:      f.category,
		PaymentMethod: f.detail,
		Recurring:     f.recurring,
	}), nil
}

func categoryNames() []string {
	all := category.All()
	names := make([]string, len(all))

	for i, c := range all {
		names[i] = c.Name
	}

	return names
}

func validateAmount(s string) error {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return errors.New("not a number")
	}

	if !d.IsPositive() {
		return transaction.ErrInvalidAmount
	}

	return nil
}

func validateDate(s string) error {
	if _, err := time.Parse(time.DateOnly, strings.TrimSpace(s)); err != nil {
		return errors.New("use YYYY-MM-DD")
	}

	return nil
}

// newTxForm builds the add/edit form. The kind cannot change while editing.
func newTxForm(f *txFields, editing bool) *huh.Form {
	kind := huh.NewSelect[transaction.Kind]().
		Key("kind").
		Title("Type").
		Options(
			huh.NewOption("Expense", transaction.KindExpense),
			huh.NewOption("Income", transaction.KindIncome),
		).
		Value(&f.kind)

	details := []huh.Field{
		huh.NewInput().
			Key("amount").
			Title("Amount").
			Value(&f.amount).
			Validate(validateAmount),
		huh.NewInput().
			Key("description").
			Title("Description").
			Value(&f.description).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return transaction.ErrEmptyDescription
				}
				return nil
			}),
		huh.NewInput().
			Key("date").
			Title("Date").
			Placeholder("YYYY-MM-DD").
			Value(&f.date).
			Validate(validateDate),
		huh.NewInput().
			Key("category").
			Title("Category").
			Description("Blank files it under Other").
			Suggestions(categoryNames()).
			Value(&f.category),
	}

	groups := []*huh.Group{huh.NewGroup(details...)}
	if !editing {
		groups = append([]*huh.Group{huh.NewGroup(kind)}, groups...)
	}

	groups = append(groups,
		huh.NewGroup(
			huh.NewInput().
				Key("detail").
				Title("Source").
				Value(&f.detail),
		).WithHideFunc(func() bool { return f.kind != transaction.KindIncome }),
		huh.NewGroup(
			huh.NewInput().
				Key("detail").
				Title("Payment method").
				Placeholder(transaction.DefaultPaymentMethod).
				Value(&f.detail),
			huh.NewConfirm().
				Key("recurring").
				Title("Recurring?").
				Value(&f.recurring),
		).WithHideFunc(func() bool { return f.kind != transaction.KindExpense }),
	)

	return huh.NewForm(groups...).WithWidth(50).WithShowHelp(false)
}
