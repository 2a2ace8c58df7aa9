package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/moneymate/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/moneymate/internal/app"
	"github.com/MrJamesThe3rd/moneymate/internal/config"
	"github.com/MrJamesThe3rd/moneymate/internal/importer"
	"github.com/MrJamesThe3rd/moneymate/internal/ledger"
)

type model struct {
	appName       string
	ledger        *ledger.Manager
	importService *importer.Service

	currentView View

	listView    view.ListModel
	reportView  view.ReportModel
	importView  view.ImportModel
	sessionView view.SessionModel
}

type View int

const (
	ViewMenu    View = 0
	ViewList    View = 1
	ViewReport  View = 2
	ViewImport  View = 3
	ViewSession View = 4
)

func newModel(appName string, m *ledger.Manager) model {
	return model{
		appName:       appName,
		ledger:        m,
		importService: importer.NewService(m),
		currentView:   ViewMenu,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.currentView == ViewMenu {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewList
				m.listView = view.NewListModel(m.ledger)

				return m, m.listView.Init()
			case "2":
				m.currentView = ViewReport
				m.reportView = view.NewReportModel(m.ledger)

				return m, m.reportView.Init()
			case "3":
				m.currentView = ViewImport
				m.importView = view.NewImportModel(m.importService)

				return m, m.importView.Init()
			case "4":
				m.currentView = ViewSession
				m.sessionView = view.NewSessionModel(m.ledger)

				return m, m.sessionView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	case view.LedgerChangedMsg:
		// Totals are read straight from the ledger on render.
		return m, nil
	}

	switch m.currentView {
	case ViewList:
		var newModel tea.Model
		newModel, cmd = m.listView.Update(msg)
		m.listView = newModel.(view.ListModel)
	case ViewReport:
		var newModel tea.Model
		newModel, cmd = m.reportView.Update(msg)
		m.reportView = newModel.(view.ReportModel)
	case ViewImport:
		var newModel tea.Model
		newModel, cmd = m.importView.Update(msg)
		m.importView = newModel.(view.ImportModel)
	case ViewSession:
		var newModel tea.Model
		newModel, cmd = m.sessionView.Update(msg)
		m.sessionView = newModel.(view.SessionModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			fmt.Sprintf("%s\n\nUser: %s | Balance: %s\n\n", m.appName, m.ledger.CurrentUser(), view.FormatAmount(m.ledger.TotalBalance())) +
				"1. Transactions\n" +
				"2. Monthly Report\n" +
				"3. Import CSV\n" +
				"4. Switch User\n\n" +
				"q. Quit",
		)
	case ViewList:
		return m.listView.View()
	case ViewReport:
		return m.reportView.View()
	case ViewImport:
		return m.importView.View()
	case ViewSession:
		return m.sessionView.View()
	}

	return "Unknown View"
}

// logger keeps log output off the terminal the TUI draws on. Set DEBUG to
// write it to moneymate-tui.log instead.
func logger() *slog.Logger {
	if os.Getenv("DEBUG") == "" {
		return slog.New(slog.DiscardHandler)
	}

	f, err := tea.LogToFile("moneymate-tui.log", "")
	if err != nil {
		return slog.New(slog.DiscardHandler)
	}

	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	book, err := app.OpenLedger(context.Background(), cfg, logger())
	if err != nil {
		slog.Error("failed to open ledger", "error", err)
		os.Exit(1)
	}
	defer book.Close()

	p := tea.NewProgram(newModel(cfg.App.Name, book.Manager))
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
