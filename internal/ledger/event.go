package ledger

import (
	"time"

	"github.com/MrJamesThe3rd/moneymate/internal/transaction"
)

type EventType string

const (
	EventAdded   EventType = "added"
	EventUpdated EventType = "updated"
	EventDeleted EventType = "deleted"
)

// Event describes a stored mutation. For deletions Transaction is the removed record.
type Event struct {
	Type        EventType
	UserID      string
	Transaction transaction.Transaction
	OccurredAt  time.Time
}

func newEvent(typ EventType, userID string, tx transaction.Transaction) Event {
	return Event{
		Type:        typ,
		UserID:      userID,
		Transaction: tx,
		OccurredAt:  time.Now().UTC(),
	}
}
