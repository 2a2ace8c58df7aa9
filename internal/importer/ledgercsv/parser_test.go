package ledgercsv_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/moneymate/internal/importer/ledgercsv"
	"github.com/MrJamesThe3rd/moneymate/internal/transaction"
)

func TestParser_Parse(t *testing.T) {
	csv := `type,date,category,description,amount,detail,recurring
income,2024-03-01,salary,March salary,5000,Employer
# rent is paid by transfer
expense,05/03/2024,Bills,Rent,1200.50,Bank transfer,true
expense,2024-03-07,,Snacks,3.20
`

	txs, err := ledgercsv.NewParser().Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txs, 3)

	assert.Equal(t, transaction.KindIncome, txs[0].Kind)
	assert.Equal(t, "Salary", txs[0].Category)
	assert.Equal(t, "Employer", txs[0].Income.Source)
	assert.True(t, txs[0].Amount.Equal(decimal.NewFromInt(5000)))

	assert.Equal(t, transaction.KindExpense, txs[1].Kind)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), txs[1].Date)
	assert.Equal(t, transaction.Expense{PaymentMethod: "Bank transfer", Recurring: true}, txs[1].Expense)

	assert.Equal(t, "Other Expense", txs[2].Category)
	assert.Equal(t, transaction.DefaultPaymentMethod, txs[2].Expense.PaymentMethod)
	assert.Empty(t, txs[2].ID)
}

func TestParser_Errors(t *testing.T) {
	type testCase struct {
		name    string
		csv     string
		wantErr string
	}

	tests := []testCase{
		{name: "TooFewColumns", csv: "income,2024-03-01,Salary\n", wantErr: "row 1"},
		{name: "UnknownKind", csv: "transfer,2024-03-01,Salary,x,1\n", wantErr: "unknown transaction kind"},
		{name: "BadDate", csv: "income,March 1,Salary,x,1\n", wantErr: "date"},
		{name: "BadAmount", csv: "income,2024-03-01,Salary,x,ten\n", wantErr: "amount"},
		{name: "BadRecurring", csv: "expense,2024-03-01,Food,x,1,Cash,sometimes\n", wantErr: "recurring"},
		{name: "LineNumber", csv: "type,date,category,description,amount\nincome,2024-03-01,Salary,x,1\nincome,bad,Salary,x,1\n", wantErr: "row 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ledgercsv.NewParser().Parse(strings.NewReader(tt.csv))
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestParser_InvalidValuesPassThrough(t *testing.T) {
	// Validation is the ledger's job: a zero amount parses fine.
	txs, err := ledgercsv.NewParser().Parse(strings.NewReader("expense,2024-03-01,Food,Free lunch,0\n"))
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.False(t, txs[0].Valid())
}
