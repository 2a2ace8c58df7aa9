package ledger

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidTransaction  = errors.New("invalid transaction")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrNotFound            = errors.New("transaction not found")
	ErrLedgerUnavailable   = errors.New("ledger unavailable")
	// ErrStore marks failures that came from the repository. It is always
	// wrapped inside one of the errors above.
	ErrStore = errors.New("store failure")
)

// InvalidTransactionError is returned when a transaction fails validation or
// could not be written by the repository.
type InvalidTransactionError struct {
	Reason string
	Err    error
}

func (e *InvalidTransactionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid transaction: %s: %v", e.Reason, e.Err)
	}

	return "invalid transaction: " + e.Reason
}

func (e *InvalidTransactionError) Is(target error) bool { return target == ErrInvalidTransaction }
func (e *InvalidTransactionError) Unwrap() error        { return e.Err }

// InsufficientBalanceError carries the balance the expense was checked against.
type InsufficientBalanceError struct {
	Balance   decimal.Decimal
	Requested decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: current %s, requested %s",
		e.Balance.StringFixed(2), e.Requested.StringFixed(2))
}

func (e *InsufficientBalanceError) Is(target error) bool { return target == ErrInsufficientBalance }

// NotFoundError reports an ID absent from the active ledger. A delete that
// failed in the repository is reported the same way, with Err set.
type NotFoundError struct {
	ID  string
	Err error
}

func (e *NotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transaction %q not found: %v", e.ID, e.Err)
	}

	return fmt.Sprintf("transaction %q not found", e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }
func (e *NotFoundError) Unwrap() error        { return e.Err }

// LedgerUnavailableError reports that a user's whole ledger could not be
// loaded or cleared. Memory is left as it was.
type LedgerUnavailableError struct {
	Op     string
	UserID string
	Err    error
}

func (e *LedgerUnavailableError) Error() string {
	return fmt.Sprintf("ledger unavailable: %s for user %s: %v", e.Op, e.UserID, e.Err)
}

func (e *LedgerUnavailableError) Is(target error) bool { return target == ErrLedgerUnavailable }
func (e *LedgerUnavailableError) Unwrap() error        { return e.Err }

func storeErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStore, op, err)
}
