package transaction

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/moneymate/internal/transaction"
)

type transactionResponse struct {
	ID            string           `json:"id"`
	Type          transaction.Kind `json:"type"`
	Amount        decimal.Decimal  `json:"amount"`
	Description   string           `json:"description"`
	Date          string           `json:"date"`
	Category      string           `json:"category"`
	Source        string           `json:"source,omitempty"`
	PaymentMethod string           `json:"payment_method,omitempty"`
	Recurring     bool             `json:"recurring,omitempty"`
}

func toResponse(tx transaction.Transaction) transactionResponse {
	resp := transactionResponse{
		ID:          tx.ID,
		Type:        tx.Kind,
		Amount:      tx.Amount,
		Description: tx.Description,
		Date:        tx.Date.Format(time.DateOnly),
		Category:    tx.Category,
	}

	switch tx.Kind {
	case transaction.KindIncome:
		resp.Source = tx.Income.Source
	case transaction.KindExpense:
		resp.PaymentMethod = tx.Expense.PaymentMethod
		resp.Recurring = tx.Expense.Recurring
	}

	return resp
}

func toResponseList(txs []transaction.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}
