package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/moneymate/internal/ledger"
	"github.com/MrJamesThe3rd/moneymate/internal/transaction"
)

type published struct {
	exchange, key string
	msg           amqp091.Publishing
}

type fakeChannel struct {
	declareErr error
	publishErr error
	closeErr   error
	declared   []string
	sent       []published
	closed     bool
}

func (f *fakeChannel) ExchangeDeclare(name, kind string, durable, _, _, _ bool, _ amqp091.Table) error {
	f.declared = append(f.declared, name+":"+kind)
	if !durable {
		return errors.New("expected durable exchange")
	}

	return f.declareErr
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp091.Publishing) error {
	if f.publishErr != nil {
		return f.publishErr
	}

	f.sent = append(f.sent, published{exchange: exchange, key: key, msg: msg})

	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return f.closeErr
}

func sampleEvent() ledger.Event {
	return ledger.Event{
		Type:   ledger.EventAdded,
		UserID: "alice",
		Transaction: transaction.NewExpense(transaction.ExpenseParams{
			ID:          "tx-1",
			Amount:      decimal.RequireFromString("12.50"),
			Description: "lunch",
			Date:        time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
			Category:    "food",
		}),
		OccurredAt: time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC),
	}
}

func TestPublisher_Publish(t *testing.T) {
	ch := &fakeChannel{}

	p, err := newPublisher(ch, "moneymate.ledger")
	require.NoError(t, err)
	assert.Equal(t, []string{"moneymate.ledger:topic"}, ch.declared)

	require.NoError(t, p.Publish(context.Background(), sampleEvent()))
	require.Len(t, ch.sent, 1)

	sent := ch.sent[0]
	assert.Equal(t, "moneymate.ledger", sent.exchange)
	assert.Equal(t, "transaction.added", sent.key)
	assert.Equal(t, "application/json", sent.msg.ContentType)
	assert.Equal(t, amqp091.Persistent, sent.msg.DeliveryMode)

	msg, err := MessageFromJSON(sent.msg.Body)
	require.NoError(t, err)
	assert.Equal(t, "tx-1", msg.TransactionID)
	assert.Equal(t, "expense", msg.Kind)
	assert.Equal(t, "Food", msg.Category)
	assert.Equal(t, "2024-03-05", msg.Date)
	assert.True(t, msg.Amount.Equal(decimal.RequireFromString("12.5")))
}

func TestPublisher_Errors(t *testing.T) {
	t.Run("DeclareFails", func(t *testing.T) {
		ch := &fakeChannel{declareErr: errors.New("access refused")}

		_, err := newPublisher(ch, "x")
		assert.Error(t, err)
		assert.True(t, ch.closed)
	})

	t.Run("PublishFails", func(t *testing.T) {
		ch := &fakeChannel{publishErr: errors.New("channel closed")}

		p, err := newPublisher(ch, "x")
		require.NoError(t, err)

		err = p.Publish(context.Background(), sampleEvent())
		assert.ErrorContains(t, err, "transaction.added")
	})
}

func TestPublisher_CloseReportsChannelError(t *testing.T) {
	ch := &fakeChannel{closeErr: errors.New("channel already closed")}

	p, err := newPublisher(ch, "x")
	require.NoError(t, err)

	err = p.Close()
	assert.ErrorContains(t, err, "channel already closed")
	assert.True(t, ch.closed)
}

func TestMessageFromJSON_Invalid(t *testing.T) {
	_, err := MessageFromJSON([]byte("{"))
	assert.Error(t, err)
}
