// Package respond holds the response helpers shared by the API handlers.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/MrJamesThe3rd/moneymate/internal/ledger"
)

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Error maps ledger errors to status codes. A ledger that cannot be loaded or
// cleared is 503; other store failures are 500 whatever domain error carries them.
func Error(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ledger.ErrLedgerUnavailable):
		slog.Error("ledger unavailable", "error", err)
		http.Error(w, "ledger unavailable", http.StatusServiceUnavailable)
	case errors.Is(err, ledger.ErrStore):
		slog.Error("ledger store failure", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	case errors.Is(err, ledger.ErrInvalidTransaction):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ledger.ErrInsufficientBalance):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, ledger.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		slog.Error("unexpected error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
