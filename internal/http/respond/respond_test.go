package respond_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/moneymate/internal/http/respond"
	"github.com/MrJamesThe3rd/moneymate/internal/ledger"
)

func TestError(t *testing.T) {
	storeFailure := fmt.Errorf("%w: delete: %w", ledger.ErrStore, errors.New("conn reset"))

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"Invalid", &ledger.InvalidTransactionError{Reason: "validation failed"}, http.StatusBadRequest},
		{"Insufficient", &ledger.InsufficientBalanceError{Balance: decimal.Zero, Requested: decimal.NewFromInt(1)}, http.StatusUnprocessableEntity},
		{"NotFound", &ledger.NotFoundError{ID: "x"}, http.StatusNotFound},
		{"NotFoundFromStore", &ledger.NotFoundError{ID: "x", Err: storeFailure}, http.StatusInternalServerError},
		{"InvalidFromStore", &ledger.InvalidTransactionError{Reason: "saving transaction", Err: storeFailure}, http.StatusInternalServerError},
		{"LedgerUnavailable", &ledger.LedgerUnavailableError{Op: "reloading", UserID: "alice", Err: storeFailure}, http.StatusServiceUnavailable},
		{"Unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			respond.Error(rec, tt.err)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	respond.JSON(rec, http.StatusCreated, map[string]string{"ok": "yes"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"ok":"yes"}`, rec.Body.String())
}
