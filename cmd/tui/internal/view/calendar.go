package view

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/arboretum/internal/dashboard"
	"github.com/MrJamesThe3rd/arboretum/internal/record"
)

type calendarState int

const (
	calendarStateWeek calendarState = iota
	calendarStateGoto
)

type CalendarModel struct {
	CommonModel
	deps Deps

	state calendarState
	ref   time.Time
	week  []dashboard.DayAppointments
	form  *huh.Form

	// Form bindings
	formDate string
}

func NewCalendarModel(deps Deps) CalendarModel {
	m := CalendarModel{deps: deps, ref: deps.Today()}
	m.refresh()

	return m
}

func (m CalendarModel) Title() string { return "Calendar" }

func (m CalendarModel) ShortHelp() string {
	if m.state == calendarStateGoto {
		return "Enter: go | Esc: cancel"
	}

	return "Esc: back | ←/→: week | t: today | g: go to date"
}

func (m CalendarModel) Init() tea.Cmd {
	return nil
}

func (m *CalendarModel) refresh() {
	m.week = dashboard.AppointmentsInWeek(m.deps.Dataset.Snapshot().Appointments, m.ref)
}

func (m CalendarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state == calendarStateGoto {
		return m.updateGoto(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		return m, Back
	case "left", "h":
		m.ref = m.ref.AddDate(0, 0, -7)
	case "right", "l":
		m.ref = m.ref.AddDate(0, 0, 7)
	case "t":
		m.ref = m.deps.Today()
	case "g":
		return m.enterGoto()
	default:
		return m, nil
	}

	m.refresh()

	return m, nil
}

func (m CalendarModel) enterGoto() (tea.Model, tea.Cmd) {
	m.formDate = FormatDate(m.ref)
	loc := m.deps.Location

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("date").
				Title("Go to date").
				Placeholder("YYYY-MM-DD").
				Value(&m.formDate).
				Validate(func(s string) error {
					if _, err := time.ParseInLocation(time.DateOnly, strings.TrimSpace(s), loc); err != nil {
						return fmt.Errorf("use YYYY-MM-DD")
					}

					return nil
				}),
		),
	).WithWidth(30).WithShowHelp(false)

	m.state = calendarStateGoto

	return m, m.form.Init()
}

func (m CalendarModel) updateGoto(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = calendarStateWeek
		m.form = nil

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if ref, err := time.ParseInLocation(time.DateOnly, strings.TrimSpace(m.formDate), m.deps.Location); err == nil {
		m.ref = ref
	}

	m.state = calendarStateWeek
	m.form = nil
	m.refresh()

	return m, nil
}

const dayColumnWidth = 22

func (m CalendarModel) View() string {
	today := m.deps.Today()
	clients := m.deps.Dataset.Snapshot().Clients

	columns := make([]string, 0, len(m.week))
	for _, d := range m.week {
		header := d.Day.Format("Mon Jan 2")
		if record.SameDay(d.Day, today) {
			header = activeStyle(header)
		}

		var b strings.Builder
		b.WriteString(header + "\n\n")

		if len(d.Appointments) == 0 {
			b.WriteString(mutedStyle.Render("-"))
		}

		for _, a := range d.Appointments {
			fmt.Fprintf(&b, "%s %s\n%s\n%s\n\n",
				a.Time, FormatHours(a.Duration),
				truncate(estateName(clients, a), dayColumnWidth-2),
				mutedStyle.Render(truncate(a.Service, dayColumnWidth-2)),
			)
		}

		columns = append(columns, borderStyle.Width(dayColumnWidth).Render(b.String()))
	}

	heading := titleStyle.Render(fmt.Sprintf("Week of %s", dashboard.StartOfWeek(m.ref).Format("January 2, 2006")))
	content := lipgloss.JoinVertical(lipgloss.Left, heading, "", lipgloss.JoinHorizontal(lipgloss.Top, columns...))

	if m.state == calendarStateGoto && m.form != nil {
		content = lipgloss.JoinVertical(lipgloss.Left, content, "", cardStyle.Render(m.form.View()))
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}

	return string(r[:n-1]) + "…"
}
