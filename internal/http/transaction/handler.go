package transaction

import (
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/moneymate/internal/http/respond"
	"github.com/MrJamesThe3rd/moneymate/internal/ledger"
	"github.com/MrJamesThe3rd/moneymate/internal/transaction"
)

type Handler struct {
	ledger *ledger.Manager
	now    func() time.Time
}

func NewHandler(m *ledger.Manager) *Handler {
	return &Handler{ledger: m, now: time.Now}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Delete("/", h.clear)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type transactionRequest struct {
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	Date          string          `json:"date"` // YYYY-MM-DD, today when empty
	Category      string          `json:"category"`
	Source        string          `json:"source"`
	PaymentMethod string          `json:"payment_method"`
	Recurring     bool            `json:"recurring"`
}

func (req transactionRequest) toTransaction(now time.Time) (transaction.Transaction, error) {
	kind, err := transaction.ParseKind(req.Type)
	if err != nil {
		return transaction.Transaction{}, err
	}

	date := now
	if req.Date != "" {
		date, err = time.Parse(time.DateOnly, req.Date)
		if err != nil {
			return transaction.Transaction{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", req.Date)
		}
	}

	if kind == transaction.KindIncome {
		return transaction.NewIncome(transaction.IncomeParams{
			Amount:      req.Amount,
			Description: req.Description,
			Date:        date,
			Category:    req.Category,
			Source:      req.Source,
		}), nil
	}

	return transaction.NewExpense(transaction.ExpenseParams{
		Amount:        req.Amount,
		Description:   req.Description,
		Date:          date,
		Category:      req.Category,
		PaymentMethod: req.PaymentMethod,
		Recurring:     req.Recurring,
	}), nil
}

func (h *Handler) decode(r *http.Request) (transaction.Transaction, error) {
	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return transaction.Transaction{}, err
	}

	return req.toTransaction(h.now())
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	tx, err := h.decode(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	added, err := h.ledger.Add(r.Context(), tx)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(added))
}

// list applies every given filter; results keep the ledger's most-recent-first order.
func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	txs := h.ledger.List()

	if s := q.Get("kind"); s != "" {
		kind, err := transaction.ParseKind(s)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		txs = intersect(txs, h.ledger.ListByKind(kind))
	}

	if s := q.Get("category"); s != "" {
		txs = intersect(txs, h.ledger.ListByCategory(s))
	}

	if s := q.Get("date"); s != "" {
		date, err := time.Parse(time.DateOnly, s)
		if err != nil {
			http.Error(w, "invalid date: want YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		txs = intersect(txs, h.ledger.ListByDate(date))
	}

	if s := q.Get("month"); s != "" {
		period, err := transaction.ParsePeriod(s)
		if err != nil {
			http.Error(w, "invalid month: want YYYY-MM", http.StatusBadRequest)
			return
		}

		txs = intersect(txs, h.ledger.ListByMonth(period))
	}

	respond.JSON(w, http.StatusOK, toResponseList(txs))
}

func intersect(txs, keep []transaction.Transaction) []transaction.Transaction {
	return slices.DeleteFunc(txs, func(tx transaction.Transaction) bool {
		return !slices.ContainsFunc(keep, func(k transaction.Transaction) bool { return k.ID == tx.ID })
	})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	tx, err := h.ledger.FindByID(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(tx))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	tx, err := h.decode(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.ledger.Update(r.Context(), chi.URLParam(r, "id"), tx)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(updated))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.ledger.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respond.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) clear(w http.ResponseWriter, r *http.Request) {
	if err := h.ledger.Clear(r.Context()); err != nil {
		respond.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
