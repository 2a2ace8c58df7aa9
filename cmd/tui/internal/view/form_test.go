package view

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/moneymate/internal/transaction"
)

func TestTxFields_Transaction(t *testing.T) {
	type testCase struct {
		name    string
		fields  txFields
		want    transaction.Transaction
		wantErr bool
	}

	date := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)

	tests := []testCase{
		{
			name: "Expense",
			fields: txFields{
				kind: transaction.KindExpense, amount: " 12.50 ", description: "lunch",
				date: "2024-03-05", category: "food", recurring: true,
			},
			want: transaction.NewExpense(transaction.ExpenseParams{
				Amount: decimal.RequireFromString("12.50"), Description: "lunch", Date: date,
				Category: "Food", Recurring: true,
			}),
		},
		{
			name: "Income",
			fields: txFields{
				kind: transaction.KindIncome, amount: "1000", description: "pay",
				date: "2024-03-05", detail: "ACME",
			},
			want: transaction.NewIncome(transaction.IncomeParams{
				Amount: decimal.NewFromInt(1000), Description: "pay", Date: date, Source: "ACME",
			}),
		},
		{
			name:    "BadAmount",
			fields:  txFields{kind: transaction.KindExpense, amount: "ten", date: "2024-03-05"},
			wantErr: true,
		},
		{
			name:    "BadDate",
			fields:  txFields{kind: transaction.KindExpense, amount: "10", date: "05/03/2024"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fields.transaction()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want.Kind, got.Kind)
			assert.True(t, tt.want.Amount.Equal(got.Amount))
			assert.Equal(t, tt.want.Category, got.Category)
			assert.Equal(t, tt.want.Date, got.Date)
			assert.Equal(t, tt.want.Income, got.Income)
			assert.Equal(t, tt.want.Expense, got.Expense)
		})
	}
}

func TestFieldsFrom_RoundTrip(t *testing.T) {
	tx := transaction.NewExpense(transaction.ExpenseParams{
		ID:            "tx-1",
		Amount:        decimal.RequireFromString("99.9"),
		Description:   "internet",
		Date:          time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
		Category:      "bills",
		PaymentMethod: "Card",
		Recurring:     true,
	})

	got, err := fieldsFrom(tx).transaction()
	require.NoError(t, err)

	assert.True(t, tx.Amount.Equal(got.Amount))
	assert.Equal(t, tx.Description, got.Description)
	assert.Equal(t, tx.Date, got.Date)
	assert.Equal(t, tx.Category, got.Category)
	assert.Equal(t, tx.Expense, got.Expense)
	assert.Empty(t, got.ID)
}

func TestValidateAmount(t *testing.T) {
	assert.NoError(t, validateAmount("0.01"))
	assert.Error(t, validateAmount("0"))
	assert.Error(t, validateAmount("-3"))
	assert.Error(t, validateAmount("abc"))
}
