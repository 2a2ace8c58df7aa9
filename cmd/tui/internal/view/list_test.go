package view

import (
	"context"
	"log/slog"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/moneymate/internal/ledger"
	"github.com/MrJamesThe3rd/moneymate/internal/ledger/memory"
	"github.com/MrJamesThe3rd/moneymate/internal/transaction"
)

func TestListModel_ReloadKey(t *testing.T) {
	store := memory.New()

	m, err := ledger.NewManager(context.Background(), store, ledger.Config{
		UserID: "alice",
		Logger: slog.New(slog.DiscardHandler),
	})
	require.NoError(t, err)

	list := NewListModel(m)
	assert.Empty(t, list.txs)

	require.NoError(t, store.Save(context.Background(), "alice", transaction.NewIncome(transaction.IncomeParams{
		ID:          "external",
		Amount:      decimal.NewFromInt(25),
		Description: "refund",
		Date:        time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
	})))

	next, cmd := list.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	require.NotNil(t, cmd)
	assert.Equal(t, LedgerChangedMsg{}, cmd())

	list = next.(ListModel)
	require.Len(t, list.txs, 1)
	assert.Equal(t, "external", list.txs[0].ID)
	assert.True(t, m.TotalBalance().Equal(decimal.NewFromInt(25)))
}
