package view

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/moneymate/internal/ledger"
	"github.com/MrJamesThe3rd/moneymate/internal/transaction"
)

type listState int

const (
	listStateBrowse listState = iota
	listStateForm
	listStateConfirmDelete
)

var (
	kindLabels  = []string{"All", "Income", "Expense"}
	monthLabels = []string{"All Time", "This Month", "Last Month"}
)

type ListModel struct {
	ledger *ledger.Manager

	state  listState
	table  table.Model
	txs    []transaction.Transaction
	form   *huh.Form
	fields *txFields

	// editingID is empty while adding.
	editingID string

	kindFilterIdx  int
	monthFilterIdx int

	status string
}

func NewListModel(m *ledger.Manager) ListModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Type", Width: 8},
		{Title: "Category", Width: 16},
		{Title: "Amount", Width: 14},
		{Title: "Description", Width: 40},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	lm := ListModel{ledger: m, table: t}
	lm.reload()

	return lm
}

func (m ListModel) Title() string { return "Transactions" }

func (m ListModel) ShortHelp() string {
	switch m.state {
	case listStateForm:
		return "Enter/Tab: navigate form | Esc: cancel"
	case listStateConfirmDelete:
		return "y: delete | n: keep"
	}

	return "Esc: back | a: add | e: edit | x: delete | r: reload | k: type filter | m: month filter"
}

func (m ListModel) Init() tea.Cmd {
	return nil
}

func (m ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.table.SetHeight(size.Height - 12)
		return m, nil
	}

	switch m.state {
	case listStateForm:
		return m.updateForm(msg)
	case listStateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	return m.updateBrowse(msg)
}

func (m ListModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "a":
			return m.openForm(newFields(time.Now()), "")
		case "e":
			if tx, ok := m.selected(); ok {
				return m.openForm(fieldsFrom(tx), tx.ID)
			}

			return m, nil
		case "x":
			if _, ok := m.selected(); ok {
				m.state = listStateConfirmDelete
			}

			return m, nil
		case "r":
			return m.reloadLedger()
		case "k":
			m.kindFilterIdx = (m.kindFilterIdx + 1) % len(kindLabels)
			m.reload()

			return m, nil
		case "m":
			m.monthFilterIdx = (m.monthFilterIdx + 1) % len(monthLabels)
			m.reload()

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

// reloadLedger picks up changes other clients made to the store.
func (m ListModel) reloadLedger() (tea.Model, tea.Cmd) {
	ctx, cancel := DbCtx()
	defer cancel()

	if err := m.ledger.Reload(ctx); err != nil {
		m.status = errorStyle.Render(err.Error())
		return m, nil
	}

	m.status = successStyle.Render("Reloaded")
	m.reload()

	return m, ledgerChanged
}

func (m ListModel) openForm(f *txFields, id string) (tea.Model, tea.Cmd) {
	m.fields = f
	m.editingID = id
	m.form = newTxForm(f, id != "")
	m.state = listStateForm
	m.status = ""
	m.table.Blur()

	return m, m.form.Init()
}

func (m ListModel) closeForm() ListModel {
	m.state = listStateBrowse
	m.form = nil
	m.fields = nil
	m.editingID = ""
	m.table.Focus()

	return m
}

func (m ListModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m.closeForm(), nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	err := m.save()
	m = m.closeForm()
	m.reload()

	if err != nil {
		m.status = errorStyle.Render(err.Error())
		return m, nil
	}

	return m, ledgerChanged
}

func (m ListModel) save() error {
	tx, err := m.fields.transaction()
	if err != nil {
		return err
	}

	ctx, cancel := DbCtx()
	defer cancel()

	if m.editingID == "" {
		_, err = m.ledger.Add(ctx, tx)
		return err
	}

	_, err = m.ledger.Update(ctx, m.editingID, tx)

	return err
}

func (m ListModel) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	m.state = listStateBrowse

	if keyMsg.String() != "y" {
		return m, nil
	}

	tx, ok := m.selected()
	if !ok {
		return m, nil
	}

	ctx, cancel := DbCtx()
	defer cancel()

	if err := m.ledger.Delete(ctx, tx.ID); err != nil {
		m.status = errorStyle.Render(err.Error())
		return m, nil
	}

	m.status = successStyle.Render("Deleted " + tx.Description)
	m.reload()

	return m, ledgerChanged
}

func (m ListModel) selected() (transaction.Transaction, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.txs) {
		return transaction.Transaction{}, false
	}

	return m.txs[idx], true
}

func (m ListModel) View() string {
	header := fmt.Sprintf(
		"User: %s | Filter: [k] Type: %s | [m] Month: %s",
		m.ledger.CurrentUser(),
		activeStyle(kindLabels[m.kindFilterIdx]),
		activeStyle(monthLabels[m.monthFilterIdx]),
	)

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	footer := fmt.Sprintf("Income %s | Expense %s | Balance %s",
		FormatAmount(m.ledger.TotalIncome()),
		FormatAmount(m.ledger.TotalExpense()),
		FormatAmount(m.ledger.TotalBalance()),
	)

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
		footer,
	)

	switch m.state {
	case listStateForm:
		title := "Add Transaction"
		if m.editingID != "" {
			title = "Edit Transaction"
		}

		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(54).
			Render(title + "\n\n" + m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	case listStateConfirmDelete:
		if tx, ok := m.selected(); ok {
			content += "\n\n" + errorStyle.Render(fmt.Sprintf("Delete %q (%s)? y/n", tx.Description, FormatAmount(tx.Amount)))
		}
	}

	if m.status != "" {
		content = m.status + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content + "\n" + helpStyle.Render(m.ShortHelp()))
}

// reload re-reads the ledger with the active filters applied.
func (m *ListModel) reload() {
	var txs []transaction.Transaction

	now := time.Now()

	switch m.monthFilterIdx {
	case 1:
		txs = m.ledger.ListByMonth(transaction.PeriodOf(now))
	case 2:
		txs = m.ledger.ListByMonth(transaction.PeriodOf(now.AddDate(0, 0, -now.Day())))
	default:
		txs = m.ledger.List()
	}

	if m.kindFilterIdx > 0 {
		kind := transaction.KindIncome
		if m.kindFilterIdx == 2 {
			kind = transaction.KindExpense
		}

		filtered := txs[:0]

		for _, tx := range txs {
			if tx.Kind == kind {
				filtered = append(filtered, tx)
			}
		}

		txs = filtered
	}

	m.txs = txs

	rows := make([]table.Row, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, table.Row{
			FormatDate(tx.Date),
			string(tx.Kind),
			tx.Category,
			FormatAmount(tx.Amount),
			tx.Description,
		})
	}

	m.table.SetRows(rows)
}
