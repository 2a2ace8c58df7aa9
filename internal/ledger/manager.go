package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/moneymate/internal/report"
	"github.com/MrJamesThe3rd/moneymate/internal/transaction"
)

// DefaultUserID is the user a ledger starts with when none is configured.
const DefaultUserID = "DEFAULT_USER"

var ErrEmptyUserID = errors.New("user id cannot be empty")

//go:generate mockgen -source=manager.go -destination=repository_mock.go -package=ledger

// Repository is the durable store behind a ledger. Every call is scoped to userID.
type Repository interface {
	Save(ctx context.Context, userID string, tx transaction.Transaction) error
	Update(ctx context.Context, userID string, tx transaction.Transaction) error
	Delete(ctx context.Context, userID, id string) error
	// FindByID returns nil, nil when the transaction does not exist.
	FindByID(ctx context.Context, userID, id string) (*transaction.Transaction, error)
	// FindAll returns the user's transactions, most recent first.
	FindAll(ctx context.Context, userID string) ([]transaction.Transaction, error)
	FindByMonth(ctx context.Context, userID string, period transaction.Period) ([]transaction.Transaction, error)
	DeleteAll(ctx context.Context, userID string) error
}

// Notifier is told about every mutation after it has been stored.
type Notifier interface {
	Publish(ctx context.Context, ev Event) error
}

type Config struct {
	UserID         string
	InitialBalance decimal.Decimal
	// NewID generates transaction IDs. Defaults to random UUIDs.
	NewID    func() string
	Notifier Notifier
	Logger   *slog.Logger
}

// Manager owns the in-memory transactions of the active user. All mutations go
// through the repository first and only then touch memory.
type Manager struct {
	repo     Repository
	notifier Notifier
	newID    func() string
	log      *slog.Logger

	mu             sync.RWMutex
	userID         string
	initialBalance decimal.Decimal
	txs            []transaction.Transaction // most recent first
}

// NewManager builds a manager and loads the configured user's transactions.
func NewManager(ctx context.Context, repo Repository, cfg Config) (*Manager, error) {
	m := &Manager{
		repo:           repo,
		notifier:       cfg.Notifier,
		newID:          cfg.NewID,
		log:            cfg.Logger,
		userID:         strings.TrimSpace(cfg.UserID),
		initialBalance: cfg.InitialBalance,
	}

	if m.newID == nil {
		m.newID = uuid.NewString
	}

	if m.log == nil {
		m.log = slog.Default()
	}

	if m.userID == "" {
		m.userID = DefaultUserID
	}

	txs, err := m.load(ctx, m.userID)
	if err != nil {
		return nil, &LedgerUnavailableError{Op: "loading", UserID: m.userID, Err: err}
	}

	m.txs = txs

	return m, nil
}

// Add validates tx, checks the balance for expenses, stores it and appends it
// to the ledger. An empty ID is replaced by a generated one.
func (m *Manager) Add(ctx context.Context, tx transaction.Transaction) (transaction.Transaction, error) {
	ev, err := m.add(ctx, tx)
	if err != nil {
		return transaction.Transaction{}, err
	}

	m.publish(ctx, ev)

	return ev.Transaction, nil
}

func (m *Manager) add(ctx context.Context, tx transaction.Transaction) (Event, error) {
	if err := tx.Validate(); err != nil {
		return Event{}, &InvalidTransactionError{Reason: "validation failed", Err: err}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if tx.ID != "" && m.indexOf(tx.ID) >= 0 {
		return Event{}, &InvalidTransactionError{Reason: fmt.Sprintf("duplicate id %q", tx.ID)}
	}

	if tx.IsExpense() {
		balance := m.balance()
		if balance.LessThan(tx.Amount) {
			return Event{}, &InsufficientBalanceError{Balance: balance, Requested: tx.Amount}
		}
	}

	if tx.ID == "" {
		tx = tx.WithID(m.newID())
	}

	if err := m.repo.Save(ctx, m.userID, tx); err != nil {
		return Event{}, &InvalidTransactionError{Reason: "saving transaction", Err: storeErr("save", err)}
	}

	m.insert(tx)
	m.log.Info("transaction added", "user_id", m.userID, "id", tx.ID, "kind", tx.Kind, "amount", tx.Amount.String())

	return newEvent(EventAdded, m.userID, tx), nil
}

// AddAll adds txs in order. errs[i] is nil when txs[i] was stored as added[i].
func (m *Manager) AddAll(ctx context.Context, txs []transaction.Transaction) ([]transaction.Transaction, []error) {
	added := make([]transaction.Transaction, len(txs))
	errs := make([]error, len(txs))

	for i, tx := range txs {
		added[i], errs[i] = m.Add(ctx, tx)
	}

	return added, errs
}

// Delete removes the transaction from the repository and then from memory.
func (m *Manager) Delete(ctx context.Context, id string) error {
	ev, err := m.delete(ctx, id)
	if err != nil {
		return err
	}

	m.publish(ctx, ev)

	return nil
}

func (m *Manager) delete(ctx context.Context, id string) (Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.indexOf(id)
	if idx < 0 {
		return Event{}, &NotFoundError{ID: id}
	}

	if err := m.repo.Delete(ctx, m.userID, id); err != nil {
		return Event{}, &NotFoundError{ID: id, Err: storeErr("delete", err)}
	}

	removed := m.txs[idx]
	m.txs = slices.Delete(m.txs, idx, idx+1)
	m.log.Info("transaction deleted", "user_id", m.userID, "id", id)

	return newEvent(EventDeleted, m.userID, removed), nil
}

// Update replaces the transaction stored under id with tx. The replacement
// always keeps id, whatever ID tx was built with.
func (m *Manager) Update(ctx context.Context, id string, tx transaction.Transaction) (transaction.Transaction, error) {
	ev, err := m.update(ctx, id, tx)
	if err != nil {
		return transaction.Transaction{}, err
	}

	m.publish(ctx, ev)

	return ev.Transaction, nil
}

func (m *Manager) update(ctx context.Context, id string, tx transaction.Transaction) (Event, error) {
	if err := tx.Validate(); err != nil {
		return Event{}, &InvalidTransactionError{Reason: "validation failed", Err: err}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.indexOf(id)
	if idx < 0 {
		return Event{}, &NotFoundError{ID: id}
	}

	tx = tx.WithID(id)

	// A replacement may not push the balance below zero, unless the ledger
	// was already negative and the change does not make it worse.
	current := m.balance()
	base := current.Sub(m.txs[idx].Effect())

	next := base.Add(tx.Effect())
	if next.IsNegative() && next.LessThan(current) {
		return Event{}, &InsufficientBalanceError{Balance: base, Requested: tx.Amount}
	}

	if err := m.repo.Update(ctx, m.userID, tx); err != nil {
		return Event{}, &InvalidTransactionError{Reason: "updating transaction", Err: storeErr("update", err)}
	}

	m.txs = slices.Delete(m.txs, idx, idx+1)
	m.insert(tx)
	m.log.Info("transaction updated", "user_id", m.userID, "id", id)

	return newEvent(EventUpdated, m.userID, tx), nil
}

// Clear deletes every transaction of the active user.
func (m *Manager) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.repo.DeleteAll(ctx, m.userID); err != nil {
		return &LedgerUnavailableError{Op: "clearing", UserID: m.userID, Err: storeErr("delete all", err)}
	}

	m.txs = nil
	m.log.Info("ledger cleared", "user_id", m.userID)

	return nil
}

// FindByID looks the transaction up in memory.
func (m *Manager) FindByID(id string) (transaction.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	idx := m.indexOf(id)
	if idx < 0 {
		return transaction.Transaction{}, &NotFoundError{ID: id}
	}

	return m.txs[idx], nil
}

func (m *Manager) List() []transaction.Transaction {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Clone(m.txs)
}

func (m *Manager) ListByKind(kind transaction.Kind) []transaction.Transaction {
	return m.filter(func(tx transaction.Transaction) bool {
		return tx.Kind == kind
	})
}

// ListByCategory matches the category name case-insensitively.
func (m *Manager) ListByCategory(name string) []transaction.Transaction {
	name = strings.TrimSpace(name)

	return m.filter(func(tx transaction.Transaction) bool {
		return strings.EqualFold(tx.Category, name)
	})
}

func (m *Manager) ListByDate(date time.Time) []transaction.Transaction {
	day := transaction.DateOf(date)

	return m.filter(func(tx transaction.Transaction) bool {
		return tx.Date.Equal(day)
	})
}

func (m *Manager) ListByMonth(period transaction.Period) []transaction.Transaction {
	return m.filter(func(tx transaction.Transaction) bool {
		return period.Contains(tx.Date)
	})
}

func (m *Manager) filter(keep func(transaction.Transaction) bool) []transaction.Transaction {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []transaction.Transaction

	for _, tx := range m.txs {
		if keep(tx) {
			out = append(out, tx)
		}
	}

	return out
}

func (m *Manager) TotalIncome() decimal.Decimal {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return sum(m.txs, transaction.KindIncome)
}

func (m *Manager) TotalExpense() decimal.Decimal {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return sum(m.txs, transaction.KindExpense)
}

// TotalBalance is initial balance + income - expenses.
func (m *Manager) TotalBalance() decimal.Decimal {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.balance()
}

func (m *Manager) InitialBalance() decimal.Decimal {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.initialBalance
}

func (m *Manager) SetInitialBalance(balance decimal.Decimal) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.initialBalance = balance
}

func (m *Manager) CurrentUser() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.userID
}

// SetCurrentUser switches the ledger to userID and reloads its transactions.
// When loading fails the previous user stays active.
func (m *Manager) SetCurrentUser(ctx context.Context, userID string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ErrEmptyUserID
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if userID == m.userID {
		return nil
	}

	txs, err := m.load(ctx, userID)
	if err != nil {
		return &LedgerUnavailableError{Op: "switching", UserID: userID, Err: err}
	}

	m.userID = userID
	m.txs = txs
	m.log.Info("switched user", "user_id", userID, "transactions", len(txs))

	return nil
}

// Reload replaces memory with the repository's view of the active user.
func (m *Manager) Reload(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	txs, err := m.load(ctx, m.userID)
	if err != nil {
		return &LedgerUnavailableError{Op: "reloading", UserID: m.userID, Err: err}
	}

	m.txs = txs
	m.log.Info("ledger reloaded", "user_id", m.userID, "transactions", len(txs))

	return nil
}

// Report builds a report over a snapshot of the ledger.
func (m *Manager) Report(period transaction.Period) *report.Report {
	return report.New(m.List(), period)
}

func (m *Manager) load(ctx context.Context, userID string) ([]transaction.Transaction, error) {
	txs, err := m.repo.FindAll(ctx, userID)
	if err != nil {
		return nil, storeErr("find all", err)
	}

	slices.SortStableFunc(txs, func(a, b transaction.Transaction) int {
		return b.Date.Compare(a.Date)
	})

	return txs, nil
}

// insert keeps m.txs ordered by date, most recent first.
func (m *Manager) insert(tx transaction.Transaction) {
	idx := slices.IndexFunc(m.txs, func(e transaction.Transaction) bool {
		return e.Date.Before(tx.Date)
	})
	if idx < 0 {
		m.txs = append(m.txs, tx)
		return
	}

	m.txs = slices.Insert(m.txs, idx, tx)
}

func (m *Manager) indexOf(id string) int {
	return slices.IndexFunc(m.txs, func(tx transaction.Transaction) bool {
		return tx.ID == id
	})
}

func (m *Manager) balance() decimal.Decimal {
	return m.initialBalance.
		Add(sum(m.txs, transaction.KindIncome)).
		Sub(sum(m.txs, transaction.KindExpense))
}

func (m *Manager) publish(ctx context.Context, ev Event) {
	if m.notifier == nil {
		return
	}

	if err := m.notifier.Publish(ctx, ev); err != nil {
		m.log.Warn("failed to publish ledger event", "type", ev.Type, "id", ev.Transaction.ID, "error", err)
	}
}

func sum(txs []transaction.Transaction, kind transaction.Kind) decimal.Decimal {
	total := decimal.Zero

	for _, tx := range txs {
		if tx.Kind == kind {
			total = total.Add(tx.Amount)
		}
	}

	return total
}
