package memory

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/MrJamesThe3rd/moneymate/internal/transaction"
)

var (
	ErrNotFound  = errors.New("transaction not found")
	ErrDuplicate = errors.New("transaction already exists")
)

// Store is an in-process ledger.Repository. It is safe for concurrent use and
// loses everything on restart.
type Store struct {
	mu    sync.RWMutex
	users map[string][]transaction.Transaction // insertion order
}

func New() *Store {
	return &Store{users: make(map[string][]transaction.Transaction)}
}

func (s *Store) Save(_ context.Context, userID string, tx transaction.Transaction) error {
	if tx.ID == "" {
		return fmt.Errorf("transaction id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.index(userID, tx.ID) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicate, tx.ID)
	}

	s.users[userID] = append(s.users[userID], tx)

	return nil
}

func (s *Store) Update(_ context.Context, userID string, tx transaction.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.index(userID, tx.ID)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, tx.ID)
	}

	s.users[userID][idx] = tx

	return nil
}

func (s *Store) Delete(_ context.Context, userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.index(userID, id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	s.users[userID] = slices.Delete(s.users[userID], idx, idx+1)

	return nil
}

func (s *Store) FindByID(_ context.Context, userID, id string) (*transaction.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.index(userID, id)
	if idx < 0 {
		return nil, nil
	}

	tx := s.users[userID][idx]

	return &tx, nil
}

func (s *Store) FindAll(_ context.Context, userID string) ([]transaction.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return sortByDateDesc(slices.Clone(s.users[userID])), nil
}

func (s *Store) FindByMonth(_ context.Context, userID string, period transaction.Period) ([]transaction.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []transaction.Transaction

	for _, tx := range s.users[userID] {
		if period.Contains(tx.Date) {
			out = append(out, tx)
		}
	}

	return sortByDateDesc(out), nil
}

func (s *Store) DeleteAll(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.users, userID)

	return nil
}

func (s *Store) index(userID, id string) int {
	return slices.IndexFunc(s.users[userID], func(tx transaction.Transaction) bool {
		return tx.ID == id
	})
}

func sortByDateDesc(txs []transaction.Transaction) []transaction.Transaction {
	slices.SortStableFunc(txs, func(a, b transaction.Transaction) int {
		return b.Date.Compare(a.Date)
	})

	return txs
}
