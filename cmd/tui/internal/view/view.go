package view

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// View is the interface that all TUI screens implement.
type View interface {
	tea.Model
	Title() string
	ShortHelp() string
}

type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}

// LedgerChangedMsg tells the menu to refresh its balance line.
type LedgerChangedMsg struct{}

func ledgerChanged() tea.Msg {
	return LedgerChangedMsg{}
}

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	helpStyle    = lipgloss.NewStyle().Faint(true)
)

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(s)
}

var (
	_ View = ListModel{}
	_ View = ReportModel{}
	_ View = ImportModel{}
	_ View = SessionModel{}
)
