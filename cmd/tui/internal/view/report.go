package view

import (
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/moneymate/internal/ledger"
	"github.com/MrJamesThe3rd/moneymate/internal/report"
	"github.com/MrJamesThe3rd/moneymate/internal/transaction"
)

// ReportModel shows the monthly summary and writes it out as PDF or chart.
type ReportModel struct {
	ledger *ledger.Manager
	period transaction.Period
	status string
}

func NewReportModel(m *ledger.Manager) ReportModel {
	return ReportModel{ledger: m, period: transaction.PeriodOf(time.Now())}
}

func (m ReportModel) Title() string { return "Monthly Report" }

func (m ReportModel) ShortHelp() string {
	return "Esc: back | ←/→: month | p: save PDF | c: save expense chart | i: save income chart"
}

func (m ReportModel) Init() tea.Cmd {
	return nil
}

func (m ReportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		return m, Back
	case "left", "h":
		m.period = m.period.Prev()
		m.status = ""
	case "right", "l":
		m.period = m.period.Next()
		m.status = ""
	case "p":
		m.status = m.save(fmt.Sprintf("moneymate-%s.pdf", m.period), report.RenderPDF)
	case "c":
		m.status = m.save(fmt.Sprintf("moneymate-%s-expense.png", m.period), chartOf(transaction.KindExpense))
	case "i":
		m.status = m.save(fmt.Sprintf("moneymate-%s-income.png", m.period), chartOf(transaction.KindIncome))
	}

	return m, nil
}

func chartOf(kind transaction.Kind) func(*report.Report) ([]byte, error) {
	return func(r *report.Report) ([]byte, error) {
		return report.RenderChart(r, kind)
	}
}

func (m ReportModel) save(path string, render func(*report.Report) ([]byte, error)) string {
	data, err := render(m.ledger.Report(m.period))
	if err != nil {
		if errors.Is(err, report.ErrNoData) {
			return errorStyle.Render("Nothing to chart for " + m.period.Title())
		}

		return errorStyle.Render(err.Error())
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errorStyle.Render(err.Error())
	}

	return successStyle.Render("Saved " + path)
}

func (m ReportModel) View() string {
	body := m.ledger.Report(m.period).Summary()
	if m.status != "" {
		body += "\n" + m.status
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(body + "\n\n" + helpStyle.Render(m.ShortHelp()))
}
