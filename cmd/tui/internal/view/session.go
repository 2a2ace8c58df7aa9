package view

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/moneymate/internal/ledger"
)

type sessionFields struct {
	userID         string
	initialBalance string
}

// SessionModel switches the active user and sets their opening balance.
type SessionModel struct {
	ledger *ledger.Manager
	fields *sessionFields
	form   *huh.Form
	err    error
}

func NewSessionModel(m *ledger.Manager) SessionModel {
	f := &sessionFields{
		userID:         m.CurrentUser(),
		initialBalance: m.InitialBalance().StringFixed(2),
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("user_id").
				Title("User").
				Value(&f.userID).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return ledger.ErrEmptyUserID
					}
					return nil
				}),
			huh.NewInput().
				Key("initial_balance").
				Title("Initial balance").
				Value(&f.initialBalance).
				Validate(func(s string) error {
					_, err := decimal.NewFromString(strings.TrimSpace(s))
					return err
				}),
		),
	).WithWidth(45).WithShowHelp(false)

	return SessionModel{ledger: m, fields: f, form: form}
}

func (m SessionModel) Title() string     { return "Switch User" }
func (m SessionModel) ShortHelp() string { return "Enter: confirm | Esc: cancel" }

func (m SessionModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m, Back
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	ctx, cancel := DbCtx()
	defer cancel()

	if err := m.ledger.SetCurrentUser(ctx, m.fields.userID); err != nil {
		m.err = err
		return m, nil
	}

	if balance, err := decimal.NewFromString(strings.TrimSpace(m.fields.initialBalance)); err == nil {
		m.ledger.SetInitialBalance(balance)
	}

	return m, tea.Batch(ledgerChanged, Back)
}

func (m SessionModel) View() string {
	body := m.form.View()
	if m.err != nil {
		body = errorStyle.Render(m.err.Error()) + "\n\n" + helpStyle.Render("Esc to go back")
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(m.Title() + "\n\n" + body)
}
