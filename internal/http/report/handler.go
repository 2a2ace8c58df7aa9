package report

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/moneymate/internal/http/respond"
	"github.com/MrJamesThe3rd/moneymate/internal/ledger"
	"github.com/MrJamesThe3rd/moneymate/internal/report"
	"github.com/MrJamesThe3rd/moneymate/internal/transaction"
)

type Handler struct {
	ledger *ledger.Manager
}

func NewHandler(m *ledger.Manager) *Handler {
	return &Handler{ledger: m}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/{period}", h.get)
	r.Get("/{period}/chart", h.chart)
	r.Get("/{period}/pdf", h.pdf)
}

type reportResponse struct {
	Period            string                     `json:"period"`
	Title             string                     `json:"title"`
	TotalIncome       decimal.Decimal            `json:"total_income"`
	TotalExpense      decimal.Decimal            `json:"total_expense"`
	Balance           decimal.Decimal            `json:"balance"`
	ExpenseByCategory map[string]decimal.Decimal `json:"expense_by_category"`
	IncomeByCategory  map[string]decimal.Decimal `json:"income_by_category"`
	ExpenseBreakdown  []report.Share             `json:"expense_breakdown"`
	IncomeBreakdown   []report.Share             `json:"income_breakdown"`
	Transactions      int                        `json:"transactions"`
	Summary           string                     `json:"summary"`
}

// build returns nil after writing a 400 when the period is malformed.
func (h *Handler) build(w http.ResponseWriter, r *http.Request) *report.Report {
	period, err := transaction.ParsePeriod(chi.URLParam(r, "period"))
	if err != nil {
		http.Error(w, "invalid period: want YYYY-MM", http.StatusBadRequest)
		return nil
	}

	return h.ledger.Report(period)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	rep := h.build(w, r)
	if rep == nil {
		return
	}

	respond.JSON(w, http.StatusOK, reportResponse{
		Period:            rep.Period().String(),
		Title:             rep.Period().Title(),
		TotalIncome:       rep.TotalIncome(),
		TotalExpense:      rep.TotalExpense(),
		Balance:           rep.Balance(),
		ExpenseByCategory: rep.ExpenseByCategory(),
		IncomeByCategory:  rep.IncomeByCategory(),
		ExpenseBreakdown:  rep.Breakdown(transaction.KindExpense),
		IncomeBreakdown:   rep.Breakdown(transaction.KindIncome),
		Transactions:      len(rep.Transactions()),
		Summary:           rep.Summary(),
	})
}

// chart renders ?kind=income|expense, expenses by default.
func (h *Handler) chart(w http.ResponseWriter, r *http.Request) {
	kind := transaction.KindExpense

	if s := r.URL.Query().Get("kind"); s != "" {
		k, err := transaction.ParseKind(s)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		kind = k
	}

	rep := h.build(w, r)
	if rep == nil {
		return
	}

	png, err := report.RenderChart(rep, kind)
	if err != nil {
		if errors.Is(err, report.ErrNoData) {
			http.Error(w, fmt.Sprintf("no %s transactions in %s", kind, rep.Period()), http.StatusNotFound)
			return
		}

		respond.Error(w, err)

		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}

func (h *Handler) pdf(w http.ResponseWriter, r *http.Request) {
	rep := h.build(w, r)
	if rep == nil {
		return
	}

	doc, err := report.RenderPDF(rep)
	if err != nil {
		respond.Error(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="moneymate-%s.pdf"`, rep.Period()))
	_, _ = w.Write(doc)
}
