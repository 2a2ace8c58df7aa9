package importer_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/moneymate/internal/importer"
	"github.com/MrJamesThe3rd/moneymate/internal/transaction"
)

// fakeLedger accepts incomes and rejects expenses.
type fakeLedger struct {
	got []transaction.Transaction
}

func (f *fakeLedger) AddAll(_ context.Context, txs []transaction.Transaction) ([]transaction.Transaction, []error) {
	f.got = append(f.got, txs...)

	added := make([]transaction.Transaction, len(txs))
	errs := make([]error, len(txs))

	for i, tx := range txs {
		if tx.IsExpense() {
			errs[i] = errors.New("insufficient balance")
			continue
		}

		added[i] = tx.WithID(fmt.Sprintf("id-%d", i))
	}

	return added, errs
}

func TestService_Import(t *testing.T) {
	type testCase struct {
		name       string
		format     importer.Format
		content    string
		wantAdded  int
		wantFailed int
		wantErr    bool
	}

	tests := []testCase{
		{
			name:       "Ledger",
			format:     importer.FormatLedger,
			content:    "income,2024-03-01,Salary,Pay,100\nexpense,2024-03-02,Food,Lunch,20\n",
			wantAdded:  1,
			wantFailed: 1,
		},
		{
			name:      "Bank",
			format:    importer.FormatBank,
			content:   "Data mov.;Descrição;Montante\n30-01-2026;TFI Wise;50,00\n",
			wantAdded: 1,
		},
		{
			name:    "UnknownFormat",
			format:  importer.Format("ofx"),
			content: "x",
			wantErr: true,
		},
		{
			name:    "ParseError",
			format:  importer.FormatLedger,
			content: "income,not-a-date,Salary,Pay,100\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := &fakeLedger{}
			svc := importer.NewService(ledger)

			res, err := svc.Import(context.Background(), tt.format, strings.NewReader(tt.content))
			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, ledger.got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantAdded, res.Added)
			assert.Equal(t, tt.wantFailed, res.Failed)
			assert.Len(t, res.Rows, tt.wantAdded+tt.wantFailed)
			assert.Equal(t, "UTF-8", res.Charset)
		})
	}
}

func TestService_ImportRowDetails(t *testing.T) {
	svc := importer.NewService(&fakeLedger{})

	res, err := svc.Import(context.Background(), importer.FormatLedger,
		strings.NewReader("income,2024-03-01,Salary,Pay,100\nexpense,2024-03-02,Food,Lunch,20\n"))
	require.NoError(t, err)

	assert.Equal(t, "id-0", res.Rows[0].ID)
	assert.Empty(t, res.Rows[0].Error)
	assert.Empty(t, res.Rows[1].ID)
	assert.Equal(t, "Lunch", res.Rows[1].Description)
	assert.Equal(t, "insufficient balance", res.Rows[1].Error)
}
