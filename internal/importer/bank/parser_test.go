package bank_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/moneymate/internal/importer/bank"
	"github.com/MrJamesThe3rd/moneymate/internal/transaction"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestParser_Account(t *testing.T) {
	csv := `Consultar saldos e movimentos à ordem - 31-01-2026;"=""0000"""
Nome cliente;JOHN DOE
Saldo contabilístico;1.000,00 EUR

Data mov.;Data-valor;Descrição;Montante;Saldo contabilístico após movimento
30-01-2026;30-01-2026;INSTITUTO GESTAO FINA;-588,74;48.825,46
09-01-2026;09-01-2026;TFI Wise;8.608,52;52.532,78
`

	txs, err := bank.NewParser().Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txs, 2)

	assert.Equal(t, date(2026, 1, 30), txs[0].Date)
	assert.Equal(t, "INSTITUTO GESTAO FINA", txs[0].Description)
	assert.True(t, txs[0].Amount.Equal(amount("588.74")))
	assert.Equal(t, transaction.KindExpense, txs[0].Kind)
	assert.Equal(t, bank.PaymentMethod, txs[0].Expense.PaymentMethod)
	assert.Equal(t, "Other Expense", txs[0].Category)

	assert.Equal(t, date(2026, 1, 9), txs[1].Date)
	assert.True(t, txs[1].Amount.Equal(amount("8608.52")))
	assert.Equal(t, transaction.KindIncome, txs[1].Kind)
	assert.Equal(t, "Other Income", txs[1].Category)
}

func TestParser_Statement(t *testing.T) {
	csv := `Consultar extrato - 15-02-2026 : 0829015676030
Intervalo de ;01-02-2026 a 14-02-2026

Data mov. ;Data valor ;Origem ;Descrição ;Movimento ;Estorno ;Saldo contabilístico após movimento ;
13-02-2026;13-02-2026;"=""0003""";PAGAMENTO TSU ;-608,13;  ;41.393,66;
04-02-2026;04-02-2026;SIBS ;TFI Wise ;4.324,06;  ;51.302,85;
`

	txs, err := bank.NewParser().Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txs, 2)

	assert.Equal(t, "PAGAMENTO TSU", txs[0].Description)
	assert.True(t, txs[0].Amount.Equal(amount("608.13")))
	assert.Equal(t, transaction.KindExpense, txs[0].Kind)
	assert.True(t, txs[1].Amount.Equal(amount("4324.06")))
	assert.Equal(t, transaction.KindIncome, txs[1].Kind)
}

func TestParser_Card(t *testing.T) {
	csv := `Conta cartão ;4163 **** **** 8016 - EUR - Business Débito
Desde ;15/12/2025

Data ;Data valor ;Descrição ;Débito ;Crédito ;
16-12-2025 ;14-12-2025 ;PA GONDOMAR ;64,00 ; ;
16-12-2025 ;14-12-2025 ;REFUND AMAZON ;  ;25,00 ;
 ; ; ; ;Página 1/2 ;
`

	txs, err := bank.NewParser().Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txs, 2)

	assert.Equal(t, transaction.KindExpense, txs[0].Kind)
	assert.True(t, txs[0].Amount.Equal(amount("64")))
	assert.Equal(t, transaction.KindIncome, txs[1].Kind)
	assert.True(t, txs[1].Amount.Equal(amount("25")))
}

func TestParser_GenericEnglish(t *testing.T) {
	csv := `Date;Description;Amount
2024-03-01;Coffee;-3,50
01/03/2024;Refund;1.200,00
`

	txs, err := bank.NewParser().Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txs, 2)

	assert.Equal(t, date(2024, 3, 1), txs[0].Date)
	assert.Equal(t, date(2024, 3, 1), txs[1].Date)
	assert.True(t, txs[1].Amount.Equal(amount("1200")))
}

func TestParser_EdgeCases(t *testing.T) {
	type testCase struct {
		name    string
		csv     string
		wantLen int
		wantErr string
	}

	tests := []testCase{
		{
			name: "Empty",
			csv:  "",
		},
		{
			name:    "UnknownLayout",
			csv:     "foo;bar\n1;2\n",
			wantErr: "no matching bank statement layout",
		},
		{
			name: "HeaderOnly",
			csv:  "Data mov.;Data-valor;Descrição;Montante",
		},
		{
			name:    "DifferentColumnOrder",
			csv:     "Random;MetaData\nMontante;Descrição;Data mov.;Ignored\n-10,00;TEST_ORDER;30-01-2026;XXX\n",
			wantLen: 1,
		},
		{
			name:    "MissingDescription",
			csv:     "Data mov.;Descrição;Montante\n30-01-2026;;-10,00\n",
			wantErr: "row 2: missing description",
		},
		{
			name:    "MissingDescriptionAfterPreamble",
			csv:     "Conta;123\nData mov.;Descrição;Montante\n30-01-2026;OK;-1,00\n31-01-2026;;-10,00\n",
			wantErr: "row 4: missing description",
		},
		{
			name:    "SkipsFooterAndZero",
			csv:     "Data mov.;Descrição;Montante\n30-01-2026;TEST;-10,00\n30-01-2026;NOTHING;0,00\nTotais;;;;\n",
			wantLen: 1,
		},
		{
			name:    "LargeAmount",
			csv:     "Data mov.;Descrição;Montante\n30-01-2026;BIG TRANSFER;-1.234.567,89\n",
			wantLen: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txs, err := bank.NewParser().Parse(strings.NewReader(tt.csv))
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Len(t, txs, tt.wantLen)
		})
	}
}
