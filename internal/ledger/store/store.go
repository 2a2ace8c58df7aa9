package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/moneymate/internal/transaction"
)

var ErrNotFound = errors.New("transaction not found")

// Store is the PostgreSQL implementation of ledger.Repository.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanTransaction rebuilds a transaction through the same constructors used for
// new ones, so stored rows get the same defaults and normalisation.
// Expected column order: id, kind, amount, description, date, category, source, payment_method, is_recurring
func scanTransaction(s scanner) (*transaction.Transaction, error) {
	var (
		id, kindStr, description, cat string
		amount                        decimal.Decimal
		date                          time.Time
		source, paymentMethod         sql.NullString
		recurring                     bool
	)

	if err := s.Scan(
		&id, &kindStr, &amount, &description, &date, &cat,
		&source, &paymentMethod, &recurring,
	); err != nil {
		return nil, err
	}

	kind, err := transaction.ParseKind(kindStr)
	if err != nil {
		return nil, err
	}

	var tx transaction.Transaction

	switch kind {
	case transaction.KindIncome:
		tx = transaction.NewIncome(transaction.IncomeParams{
			ID:          id,
			Amount:      amount,
			Description: description,
			Date:        date,
			Category:    cat,
			Source:      source.String,
		})
	case transaction.KindExpense:
		tx = transaction.NewExpense(transaction.ExpenseParams{
			ID:            id,
			Amount:        amount,
			Description:   description,
			Date:          date,
			Category:      cat,
			PaymentMethod: paymentMethod.String,
			Recurring:     recurring,
		})
	}

	return &tx, nil
}

const selectTransactionColumns = `
	id, kind, amount, description, date, category, source, payment_method, is_recurring
`

// detailColumns splits the kind-specific fields into nullable columns.
func detailColumns(tx transaction.Transaction) (source, paymentMethod sql.NullString, recurring bool) {
	switch tx.Kind {
	case transaction.KindIncome:
		source = sql.NullString{String: tx.Income.Source, Valid: true}
	case transaction.KindExpense:
		paymentMethod = sql.NullString{String: tx.Expense.PaymentMethod, Valid: true}
		recurring = tx.Expense.Recurring
	}

	return source, paymentMethod, recurring
}

func (s *Store) Save(ctx context.Context, userID string, tx transaction.Transaction) error {
	query := `
		INSERT INTO transactions (id, user_id, kind, amount, description, date, category, source, payment_method, is_recurring, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
	`

	source, paymentMethod, recurring := detailColumns(tx)

	_, err := s.db.ExecContext(ctx, query,
		tx.ID,
		userID,
		string(tx.Kind),
		tx.Amount,
		tx.Description,
		tx.Date,
		tx.Category,
		source,
		paymentMethod,
		recurring,
	)
	if err != nil {
		return fmt.Errorf("saving transaction: %w", err)
	}

	return nil
}

func (s *Store) Update(ctx context.Context, userID string, tx transaction.Transaction) error {
	query := `
		UPDATE transactions
		SET kind = $1, amount = $2, description = $3, date = $4, category = $5,
			source = $6, payment_method = $7, is_recurring = $8, updated_at = NOW()
		WHERE user_id = $9 AND id = $10
	`

	source, paymentMethod, recurring := detailColumns(tx)

	res, err := s.db.ExecContext(ctx, query,
		string(tx.Kind),
		tx.Amount,
		tx.Description,
		tx.Date,
		tx.Category,
		source,
		paymentMethod,
		recurring,
		userID,
		tx.ID,
	)
	if err != nil {
		return fmt.Errorf("updating transaction: %w", err)
	}

	return expectOneRow(res, tx.ID)
}

func (s *Store) Delete(ctx context.Context, userID, id string) error {
	query := `DELETE FROM transactions WHERE user_id = $1 AND id = $2`

	res, err := s.db.ExecContext(ctx, query, userID, id)
	if err != nil {
		return fmt.Errorf("deleting transaction: %w", err)
	}

	return expectOneRow(res, id)
}

func expectOneRow(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}

	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	return nil
}

func (s *Store) FindByID(ctx context.Context, userID, id string) (*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions
		WHERE user_id = $1 AND id = $2`

	tx, err := scanTransaction(s.db.QueryRowContext(ctx, query, userID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("getting transaction: %w", err)
	}

	return tx, nil
}

func (s *Store) FindAll(ctx context.Context, userID string) ([]transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions
		WHERE user_id = $1
		ORDER BY date DESC, created_at ASC`

	return s.list(ctx, query, userID)
}

func (s *Store) FindByMonth(ctx context.Context, userID string, period transaction.Period) ([]transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions
		WHERE user_id = $1 AND date >= $2 AND date < $3
		ORDER BY date DESC, created_at ASC`

	return s.list(ctx, query, userID, period.Start(), period.End())
}

func (s *Store) list(ctx context.Context, query string, args ...any) ([]transaction.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []transaction.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, *tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transaction rows: %w", err)
	}

	return txs, nil
}

func (s *Store) DeleteAll(ctx context.Context, userID string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("deleting transactions: %w", err)
	}

	return nil
}
