package view

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/arboretum/internal/dashboard"
	"github.com/MrJamesThe3rd/arboretum/internal/export"
	"github.com/MrJamesThe3rd/arboretum/internal/record"
)

type accountsState int

const (
	accountsStatePeriod accountsState = iota
	accountsStateLedger
)

type AccountsModel struct {
	CommonModel
	deps Deps

	state   accountsState
	picker  PeriodPicker
	period  dashboard.Period
	summary dashboard.Summary

	income   table.Model
	expenses table.Model
	focus    int

	exportStatus string
}

func ledgerColumns() []table.Column {
	return []table.Column{
		{Title: "Date", Width: 11},
		{Title: "Description", Width: 30},
		{Title: "Category", Width: 14},
		{Title: "Amount", Width: 13},
		{Title: "Status", Width: 8},
	}
}

func NewAccountsModel(deps Deps) AccountsModel {
	m := AccountsModel{
		deps:     deps,
		picker:   NewPeriodPicker(deps.Today()),
		income:   newTable(ledgerColumns(), 8),
		expenses: newTable(ledgerColumns(), 8),
	}
	m.expenses.Blur()

	return m
}

func (m AccountsModel) Title() string { return "Accounts" }

func (m AccountsModel) ShortHelp() string {
	if m.state == accountsStatePeriod {
		return "Enter: select | Esc: back"
	}

	return "Esc: back | Tab: switch ledger | p: change period | e: export"
}

func (m AccountsModel) Init() tea.Cmd {
	return m.picker.Init()
}

func (m *AccountsModel) load(period dashboard.Period) {
	txs := m.deps.Dataset.Snapshot().Transactions

	m.period = period
	m.summary = dashboard.FinancialSummary(txs, period)

	income, expenses := dashboard.SplitTransactions(txs, period)
	m.income.SetRows(ledgerRows(income))
	m.expenses.SetRows(ledgerRows(expenses))
}

func ledgerRows(txs []record.Transaction) []table.Row {
	rows := make([]table.Row, 0, len(txs))
	for _, t := range txs {
		rows = append(rows, table.Row{
			FormatDate(t.Date),
			t.Description,
			t.Category,
			FormatMoney(t.Amount),
			string(t.Status),
		})
	}

	return rows
}

func (m AccountsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case PeriodSelectedMsg:
		m.load(msg.Period)
		m.state = accountsStateLedger
		m.exportStatus = ""

		return m, nil
	case exportDoneMsg:
		if msg.err != nil {
			m.exportStatus = errorStyle.Render("Export failed: " + msg.err.Error())
		} else {
			m.exportStatus = okStyle.Render("Wrote " + msg.path)
		}

		return m, nil
	}

	if m.state == accountsStatePeriod {
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" && m.picker.IsSelecting() {
			return m, Back
		}

		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)

		return m, cmd
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "p":
			m.picker.Reset(m.deps.Today())
			m.state = accountsStatePeriod

			return m, nil
		case "e":
			return m, m.exportCmd()
		case "tab":
			m.focus = (m.focus + 1) % 2
			if m.focus == 0 {
				m.income.Focus()
				m.expenses.Blur()
			} else {
				m.income.Blur()
				m.expenses.Focus()
			}

			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.income, cmd = m.income.Update(msg)
	} else {
		m.expenses, cmd = m.expenses.Update(msg)
	}

	return m, cmd
}

func (m AccountsModel) View() string {
	if m.state == accountsStatePeriod {
		return lipgloss.NewStyle().Padding(2).Render(m.picker.View())
	}

	s := m.summary
	net := FormatMoney(s.Net)
	if s.Net < 0 {
		net = errorStyle.Render(net)
	} else {
		net = okStyle.Render(net)
	}

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		card("Revenue", FormatMoney(s.Revenue)),
		card("Pending", FormatMoney(s.Pending)),
		card("Expenses", FormatMoney(s.Expenses)),
		cardStyle.Render(mutedStyle.Render("Net")+"\n"+net),
	)

	return lipgloss.NewStyle().Padding(1).Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(fmt.Sprintf("Accounts: %s", m.period.Label())),
		cards,
		"",
		borderStyle.Render("Income\n"+m.income.View()),
		borderStyle.Render("Expenses\n"+m.expenses.View()),
		m.exportStatus,
	))
}

type exportDoneMsg struct {
	path string
	err  error
}

// exportCmd writes the period's ledger archive into the working directory.
func (m AccountsModel) exportCmd() tea.Cmd {
	snap := m.deps.Dataset.Snapshot()
	period := m.period

	return func() tea.Msg {
		svc := export.NewService()
		path := export.Filename(period)

		f, err := os.Create(path)
		if err != nil {
			return exportDoneMsg{err: err}
		}

		if err := svc.WriteArchive(f, svc.Items(snap, period), period); err != nil {
			f.Close()
			return exportDoneMsg{err: err}
		}

		return exportDoneMsg{path: path, err: f.Close()}
	}
}
