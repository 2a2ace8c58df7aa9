package transaction

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/moneymate/internal/category"
)

// Kind represents the type of transaction (income or expense).
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

const (
	DefaultSource        = "unspecified"
	DefaultPaymentMethod = "Cash"
)

var (
	ErrInvalidAmount    = errors.New("amount must be greater than zero")
	ErrEmptyDescription = errors.New("description cannot be empty")
	ErrUnknownKind      = errors.New("unknown transaction kind")
)

// ParseKind accepts "income" and "expense" in any case.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindIncome:
		return KindIncome, nil
	case KindExpense:
		return KindExpense, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Income holds the fields only an income carries.
type Income struct {
	Source string
}

// Expense holds the fields only an expense carries.
type Expense struct {
	PaymentMethod string
	Recurring     bool
}

// Transaction is a single income or expense record. Kind selects which of
// Income or Expense is meaningful; the other is left zero.
type Transaction struct {
	ID          string
	Kind        Kind
	Amount      decimal.Decimal
	Description string
	Date        time.Time // UTC midnight
	Category    string

	Income  Income
	Expense Expense
}

type IncomeParams struct {
	ID          string // empty for new transactions
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	Category    string
	Source      string
}

type ExpenseParams struct {
	ID            string // empty for new transactions
	Amount        decimal.Decimal
	Description   string
	Date          time.Time
	Category      string
	PaymentMethod string
	Recurring     bool
}

func NewIncome(p IncomeParams) Transaction {
	source := strings.TrimSpace(p.Source)
	if source == "" {
		source = DefaultSource
	}

	return Transaction{
		ID:          p.ID,
		Kind:        KindIncome,
		Amount:      p.Amount,
		Description: strings.TrimSpace(p.Description),
		Date:        DateOf(p.Date),
		Category:    category.Normalize(p.Category, true),
		Income:      Income{Source: source},
	}
}

func NewExpense(p ExpenseParams) Transaction {
	method := strings.TrimSpace(p.PaymentMethod)
	if method == "" {
		method = DefaultPaymentMethod
	}

	return Transaction{
		ID:          p.ID,
		Kind:        KindExpense,
		Amount:      p.Amount,
		Description: strings.TrimSpace(p.Description),
		Date:        DateOf(p.Date),
		Category:    category.Normalize(p.Category, false),
		Expense:     Expense{PaymentMethod: method, Recurring: p.Recurring},
	}
}

// WithID returns a copy of the transaction carrying id. It is the only way an
// existing transaction changes identity.
func (t Transaction) WithID(id string) Transaction {
	t.ID = id
	return t
}

// Validate reports why a transaction cannot enter a ledger.
func (t Transaction) Validate() error {
	if t.Kind != KindIncome && t.Kind != KindExpense {
		return fmt.Errorf("%w: %q", ErrUnknownKind, t.Kind)
	}

	if !t.Amount.IsPositive() {
		return ErrInvalidAmount
	}

	if strings.TrimSpace(t.Description) == "" {
		return ErrEmptyDescription
	}

	return nil
}

func (t Transaction) Valid() bool {
	return t.Validate() == nil
}

func (t Transaction) IsIncome() bool  { return t.Kind == KindIncome }
func (t Transaction) IsExpense() bool { return t.Kind == KindExpense }

// Effect is the signed change the transaction applies to a balance.
func (t Transaction) Effect() decimal.Decimal {
	if t.Kind == KindExpense {
		return t.Amount.Neg()
	}

	return t.Amount
}

// Period returns the calendar month the transaction falls in.
func (t Transaction) Period() Period {
	return PeriodOf(t.Date)
}

func (t Transaction) String() string {
	detail := ""

	switch t.Kind {
	case KindIncome:
		detail = "source: " + t.Income.Source
	case KindExpense:
		detail = "payment: " + t.Expense.PaymentMethod
		if t.Expense.Recurring {
			detail += " [recurring]"
		}
	}

	return fmt.Sprintf("[%s] %s %s: %s (%s) - %s | %s",
		t.ID, t.Kind, t.Date.Format(time.DateOnly), t.Amount.StringFixed(2), t.Category, t.Description, detail)
}

// DateOf drops the time of day, keeping the calendar date as seen in t's location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
