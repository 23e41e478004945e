package view

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/arboretum/internal/dashboard"
	"github.com/MrJamesThe3rd/arboretum/internal/record"
)

type OverviewModel struct {
	CommonModel
	deps Deps

	overview dashboard.Overview
	clients  []record.Client
	today    table.Model
	upcoming table.Model
	focus    int

	status string
	err    error
}

func NewOverviewModel(deps Deps) OverviewModel {
	m := OverviewModel{
		deps: deps,
		today: newTable([]table.Column{
			{Title: "Time", Width: 6},
			{Title: "Estate", Width: 24},
			{Title: "Service", Width: 26},
			{Title: "Status", Width: 12},
		}, 6),
		upcoming: newTable([]table.Column{
			{Title: "Due", Width: 11},
			{Title: "Task", Width: 32},
			{Title: "Priority", Width: 9},
			{Title: "", Width: 8},
		}, 6),
	}
	m.upcoming.Blur()
	m.refresh()

	return m
}

func (m OverviewModel) Title() string { return "Overview" }

func (m OverviewModel) ShortHelp() string {
	return "Esc: back | Tab: switch table | r: reload data"
}

func (m OverviewModel) Init() tea.Cmd {
	return nil
}

func (m *OverviewModel) refresh() {
	snap := m.deps.Dataset.Snapshot()
	today := m.deps.Today()

	m.clients = snap.Clients
	m.overview = dashboard.Build(snap, today, dashboard.MonthContaining(today), m.deps.UpcomingLimit)

	rows := make([]table.Row, 0, len(m.overview.Today))
	for _, a := range m.overview.Today {
		rows = append(rows, table.Row{a.Time.String(), estateName(m.clients, a), a.Service, string(a.Status)})
	}

	m.today.SetRows(rows)

	rows = make([]table.Row, 0, len(m.overview.Upcoming))
	for _, t := range m.overview.Upcoming {
		flag := ""
		if t.Overdue {
			flag = "overdue"
		}

		rows = append(rows, table.Row{FormatDate(t.DueDate), t.Title, string(t.Priority), flag})
	}

	m.upcoming.SetRows(rows)
}

// estateName falls back to a placeholder for appointments whose client is gone.
func estateName(clients []record.Client, a record.Appointment) string {
	if c, ok := dashboard.ResolveClient(clients, a.ClientID); ok {
		return c.EstateName
	}

	return "(unknown estate)"
}

func (m OverviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case reloadMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.status = "Data reloaded."
		m.refresh()

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.status = "Reloading..."
			return m, reloadCmd(m.deps)
		case "tab":
			m.focus = (m.focus + 1) % 2
			if m.focus == 0 {
				m.today.Focus()
				m.upcoming.Blur()
			} else {
				m.today.Blur()
				m.upcoming.Focus()
			}

			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.today, cmd = m.today.Update(msg)
	} else {
		m.upcoming, cmd = m.upcoming.Update(msg)
	}

	return m, cmd
}

func (m OverviewModel) View() string {
	ov := m.overview
	st := ov.Stats

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		card("Active Estates", fmt.Sprintf("%d (%d Legacy)", st.ActiveEstates, st.LegacyEstates)),
		card("Scheduled", fmt.Sprintf("%d (%d today)", st.ScheduledAppointments, st.AppointmentsToday)),
		card("Open Tasks", fmt.Sprintf("%d (%d priority)", st.ActiveTasks, st.PriorityTasks)),
		card("Revenue "+ov.Finances.Period.Label(), FormatMoney(ov.Finances.Revenue)),
		card("Pending", FormatMoney(ov.Finances.Pending)),
	)

	portfolio := ""
	for _, c := range ov.Portfolio {
		portfolio += fmt.Sprintf("%-26s %-12s %s\n", c.EstateName, c.Tier, FormatMoney(c.RetainerValue))
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Today, "+ov.Reference.Format("Monday, January 2")),
		cards,
		"",
		lipgloss.JoinHorizontal(lipgloss.Top,
			borderStyle.Render("Today's Schedule\n"+m.today.View()),
			borderStyle.Render("Upcoming Tasks ("+strconv.Itoa(st.DueThisWeek)+" due this week)\n"+m.upcoming.View()),
		),
		"",
		mutedStyle.Render("Estate Portfolio"),
		portfolio,
	)

	if m.err != nil {
		content = errorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n" + content
	} else if m.status != "" {
		content = mutedStyle.Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

type reloadMsg struct {
	err error
}

func reloadCmd(deps Deps) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := LoadCtx()
		defer cancel()

		_, err := deps.Dataset.Reload(ctx)

		return reloadMsg{err: err}
	}
}
