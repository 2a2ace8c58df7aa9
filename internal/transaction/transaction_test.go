package transaction_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/moneymate/internal/transaction"
)

func TestNewIncome_Defaults(t *testing.T) {
	tx := transaction.NewIncome(transaction.IncomeParams{
		Amount:      decimal.NewFromInt(500),
		Description: "  salary  ",
		Date:        time.Date(2024, 3, 15, 18, 30, 0, 0, time.UTC),
		Category:    "salary",
	})

	assert.Equal(t, transaction.KindIncome, tx.Kind)
	assert.Empty(t, tx.ID)
	assert.Equal(t, "salary", tx.Description)
	assert.Equal(t, "Salary", tx.Category)
	assert.Equal(t, transaction.DefaultSource, tx.Income.Source)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), tx.Date)
}

func TestNewExpense_Defaults(t *testing.T) {
	tx := transaction.NewExpense(transaction.ExpenseParams{
		Amount:      decimal.NewFromInt(200),
		Description: "lunch",
		Date:        time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
	})

	assert.Equal(t, transaction.KindExpense, tx.Kind)
	assert.Equal(t, "Other Expense", tx.Category)
	assert.Equal(t, transaction.DefaultPaymentMethod, tx.Expense.PaymentMethod)
	assert.False(t, tx.Expense.Recurring)
}

func TestTransaction_Validate(t *testing.T) {
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	type testCase struct {
		name    string
		tx      transaction.Transaction
		wantErr error
	}

	tests := []testCase{
		{
			name: "Valid",
			tx: transaction.NewExpense(transaction.ExpenseParams{
				Amount: decimal.RequireFromString("0.01"), Description: "gum", Date: date,
			}),
		},
		{
			name: "ZeroAmount",
			tx: transaction.NewExpense(transaction.ExpenseParams{
				Amount: decimal.Zero, Description: "gum", Date: date,
			}),
			wantErr: transaction.ErrInvalidAmount,
		},
		{
			name: "NegativeAmount",
			tx: transaction.NewIncome(transaction.IncomeParams{
				Amount: decimal.NewFromInt(-5), Description: "refund", Date: date,
			}),
			wantErr: transaction.ErrInvalidAmount,
		},
		{
			name: "BlankDescription",
			tx: transaction.NewIncome(transaction.IncomeParams{
				Amount: decimal.NewFromInt(5), Description: "   ", Date: date,
			}),
			wantErr: transaction.ErrEmptyDescription,
		},
		{
			name:    "ZeroValue",
			tx:      transaction.Transaction{},
			wantErr: transaction.ErrUnknownKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tx.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				assert.True(t, tt.tx.Valid())

				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
			assert.False(t, tt.tx.Valid())
		})
	}
}

func TestTransaction_WithIDKeepsFields(t *testing.T) {
	tx := transaction.NewExpense(transaction.ExpenseParams{
		ID:            "old",
		Amount:        decimal.NewFromInt(10),
		Description:   "bus",
		Date:          time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Category:      "transportation",
		PaymentMethod: "Card",
		Recurring:     true,
	})

	got := tx.WithID("new")

	assert.Equal(t, "new", got.ID)
	assert.Equal(t, "old", tx.ID)
	assert.Equal(t, tx.Expense, got.Expense)
	assert.True(t, tx.Amount.Equal(got.Amount))
}

func TestTransaction_Effect(t *testing.T) {
	in := transaction.NewIncome(transaction.IncomeParams{Amount: decimal.NewFromInt(3), Description: "x"})
	out := transaction.NewExpense(transaction.ExpenseParams{Amount: decimal.NewFromInt(3), Description: "x"})

	assert.True(t, in.Effect().Equal(decimal.NewFromInt(3)))
	assert.True(t, out.Effect().Equal(decimal.NewFromInt(-3)))
}

func TestParseKind(t *testing.T) {
	k, err := transaction.ParseKind(" Income ")
	require.NoError(t, err)
	assert.Equal(t, transaction.KindIncome, k)

	_, err = transaction.ParseKind("transfer")
	assert.ErrorIs(t, err, transaction.ErrUnknownKind)
}

func TestPeriod(t *testing.T) {
	p, err := transaction.ParsePeriod("2024-03")
	require.NoError(t, err)

	assert.Equal(t, transaction.NewPeriod(2024, time.March), p)
	assert.Equal(t, "2024-03", p.String())
	assert.Equal(t, "March 2024", p.Title())
	assert.True(t, p.Contains(time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)))
	assert.False(t, p.Contains(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), p.End())

	_, err = transaction.ParsePeriod("03/2024")
	assert.Error(t, err)
}

func TestPeriod_PrevNext(t *testing.T) {
	jan := transaction.NewPeriod(2024, time.January)

	assert.Equal(t, transaction.NewPeriod(2023, time.December), jan.Prev())
	assert.Equal(t, transaction.NewPeriod(2024, time.February), jan.Next())
	assert.Equal(t, jan, jan.Next().Prev())
}
