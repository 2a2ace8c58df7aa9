package account

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/moneymate/internal/category"
	"github.com/MrJamesThe3rd/moneymate/internal/http/respond"
	"github.com/MrJamesThe3rd/moneymate/internal/ledger"
)

// Handler serves the active user, their balance and the category catalog.
type Handler struct {
	ledger *ledger.Manager
}

func NewHandler(m *ledger.Manager) *Handler {
	return &Handler{ledger: m}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/session", h.session)
	r.Put("/session", h.switchUser)
	r.Post("/session/reload", h.reload)
	r.Get("/balance", h.balance)
	r.Get("/categories", h.categories)
}

type sessionRequest struct {
	UserID         string           `json:"user_id"`
	InitialBalance *decimal.Decimal `json:"initial_balance,omitempty"`
}

type sessionResponse struct {
	UserID string `json:"user_id"`
	balanceResponse
}

type balanceResponse struct {
	InitialBalance decimal.Decimal `json:"initial_balance"`
	TotalIncome    decimal.Decimal `json:"total_income"`
	TotalExpense   decimal.Decimal `json:"total_expense"`
	TotalBalance   decimal.Decimal `json:"total_balance"`
}

func (h *Handler) currentBalance() balanceResponse {
	return balanceResponse{
		InitialBalance: h.ledger.InitialBalance(),
		TotalIncome:    h.ledger.TotalIncome(),
		TotalExpense:   h.ledger.TotalExpense(),
		TotalBalance:   h.ledger.TotalBalance(),
	}
}

func (h *Handler) session(w http.ResponseWriter, _ *http.Request) {
	respond.JSON(w, http.StatusOK, sessionResponse{
		UserID:          h.ledger.CurrentUser(),
		balanceResponse: h.currentBalance(),
	})
}

func (h *Handler) switchUser(w http.ResponseWriter, r *http.Request) {
	var req sessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.ledger.SetCurrentUser(r.Context(), req.UserID); err != nil {
		if errors.Is(err, ledger.ErrEmptyUserID) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		respond.Error(w, err)

		return
	}

	if req.InitialBalance != nil {
		h.ledger.SetInitialBalance(*req.InitialBalance)
	}

	h.session(w, r)
}

// reload re-reads the active user's transactions from the store.
func (h *Handler) reload(w http.ResponseWriter, r *http.Request) {
	if err := h.ledger.Reload(r.Context()); err != nil {
		respond.Error(w, err)
		return
	}

	h.session(w, r)
}

func (h *Handler) balance(w http.ResponseWriter, _ *http.Request) {
	respond.JSON(w, http.StatusOK, h.currentBalance())
}

type categoriesResponse struct {
	Income  []category.Category `json:"income"`
	Expense []category.Category `json:"expense"`
}

func (h *Handler) categories(w http.ResponseWriter, _ *http.Request) {
	respond.JSON(w, http.StatusOK, categoriesResponse{
		Income:  category.Income(),
		Expense: category.Expenses(),
	})
}
