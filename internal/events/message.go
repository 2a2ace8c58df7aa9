package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/moneymate/internal/ledger"
)

// Message is the JSON body published for every ledger mutation.
type Message struct {
	Type          string          `json:"type"`
	UserID        string          `json:"user_id"`
	TransactionID string          `json:"transaction_id"`
	Kind          string          `json:"kind"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	Date          string          `json:"date"`
	OccurredAt    time.Time       `json:"occurred_at"`
}

func NewMessage(ev ledger.Event) Message {
	return Message{
		Type:          string(ev.Type),
		UserID:        ev.UserID,
		TransactionID: ev.Transaction.ID,
		Kind:          string(ev.Transaction.Kind),
		Amount:        ev.Transaction.Amount,
		Category:      ev.Transaction.Category,
		Date:          ev.Transaction.Date.Format(time.DateOnly),
		OccurredAt:    ev.OccurredAt,
	}
}

// RoutingKey is "transaction.<type>", e.g. "transaction.added".
func (m Message) RoutingKey() string {
	return "transaction." + m.Type
}

func (m Message) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func MessageFromJSON(data []byte) (Message, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return Message{}, fmt.Errorf("decoding message: %w", err)
	}

	return msg, nil
}
