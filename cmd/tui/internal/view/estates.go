package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/arboretum/internal/dashboard"
	"github.com/MrJamesThe3rd/arboretum/internal/record"
)

type EstatesModel struct {
	CommonModel
	deps Deps

	table   table.Model
	clients []record.Client
	counts  map[record.Tier]int

	// tierFilter indexes record.Tiers; -1 shows every tier.
	tierFilter int
	detail     bool
}

func NewEstatesModel(deps Deps) EstatesModel {
	m := EstatesModel{
		deps: deps,
		table: newTable([]table.Column{
			{Title: "Estate", Width: 24},
			{Title: "Owner", Width: 18},
			{Title: "Tier", Width: 12},
			{Title: "Acres", Width: 7},
			{Title: "Retainer", Width: 12},
			{Title: "Balance", Width: 11},
			{Title: "Last Visit", Width: 11},
		}, 12),
		tierFilter: -1,
	}
	m.refresh()

	return m
}

func (m EstatesModel) Title() string { return "Estates" }

func (m EstatesModel) ShortHelp() string {
	return "Esc: back | f: tier filter | Enter: details"
}

func (m EstatesModel) Init() tea.Cmd {
	return nil
}

func (m *EstatesModel) refresh() {
	all := m.deps.Dataset.Snapshot().Clients
	m.counts = dashboard.CountByTier(all)

	m.clients = all
	if m.tierFilter >= 0 {
		tier := record.Tiers[m.tierFilter]
		m.clients = make([]record.Client, 0, m.counts[tier])

		for _, c := range all {
			if c.Tier == tier {
				m.clients = append(m.clients, c)
			}
		}
	}

	rows := make([]table.Row, 0, len(m.clients))
	for _, c := range m.clients {
		rows = append(rows, table.Row{
			c.EstateName,
			c.Name,
			string(c.Tier),
			c.Acreage.StringFixed(1),
			FormatMoney(c.RetainerValue),
			FormatMoney(c.AccountBalance),
			FormatDate(c.LastVisit),
		})
	}

	m.table.SetRows(rows)
	m.table.SetCursor(0)
}

func (m EstatesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			if m.detail {
				m.detail = false
				return m, nil
			}

			return m, Back
		case "f":
			m.tierFilter++
			if m.tierFilter >= len(record.Tiers) {
				m.tierFilter = -1
			}

			m.detail = false
			m.refresh()

			return m, nil
		case "enter":
			m.detail = !m.detail
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m EstatesModel) View() string {
	filter := "All"
	if m.tierFilter >= 0 {
		filter = string(record.Tiers[m.tierFilter])
	}

	header := fmt.Sprintf("Filter: [f] Tier: %s | Foundation %d · Stewardship %d · Legacy %d",
		activeStyle(filter),
		m.counts[record.TierFoundation], m.counts[record.TierStewardship], m.counts[record.TierLegacy],
	)

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		borderStyle.Render(m.table.View()),
	)

	idx := m.table.Cursor()
	if m.detail && idx >= 0 && idx < len(m.clients) {
		c := m.clients[idx]
		panel := cardStyle.Width(44).Render(fmt.Sprintf(
			"%s\n%s\n\n%s\n%s\n%s\n\nClient since %s\n\n%s",
			titleStyle.Render(c.EstateName), c.Name, c.Address, c.Phone, c.Email,
			FormatDate(c.JoinDate), mutedStyle.Render(c.Notes),
		))
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}
