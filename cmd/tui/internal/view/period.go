package view

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MrJamesThe3rd/arboretum/internal/dashboard"
)

// PeriodChoice is a predefined or custom reporting period.
type PeriodChoice int

const (
	PeriodThisMonth PeriodChoice = iota
	PeriodLastMonth
	PeriodAllTime
	PeriodCustom
)

func (p PeriodChoice) String() string {
	switch p {
	case PeriodThisMonth:
		return "This Month"
	case PeriodLastMonth:
		return "Last Month"
	case PeriodAllTime:
		return "All Time"
	case PeriodCustom:
		return "Custom Month"
	}

	return "Unknown"
}

// Resolve turns a predefined choice into a period relative to today.
func (p PeriodChoice) Resolve(today time.Time) dashboard.Period {
	switch p {
	case PeriodLastMonth:
		return dashboard.MonthContaining(today).Previous()
	case PeriodAllTime:
		return dashboard.AllTime
	}

	return dashboard.MonthContaining(today)
}

// PeriodSelectedMsg is emitted when the user has picked a period.
type PeriodSelectedMsg struct {
	Period dashboard.Period
}

type periodState int

const (
	periodStateSelect periodState = iota
	periodStateCustom
)

// PeriodPicker is a reusable component for selecting a reporting period.
type PeriodPicker struct {
	state    periodState
	selected PeriodChoice
	today    time.Time

	monthInput textinput.Model

	err error
}

func NewPeriodPicker(today time.Time) PeriodPicker {
	mi := textinput.New()
	mi.Placeholder = "YYYY-MM"
	mi.CharLimit = 7
	mi.Width = 9
	mi.Prompt = "Month: "

	return PeriodPicker{
		state:      periodStateSelect,
		selected:   PeriodThisMonth,
		today:      today,
		monthInput: mi,
	}
}

func (m PeriodPicker) Init() tea.Cmd {
	return nil
}

func (m PeriodPicker) Update(msg tea.Msg) (PeriodPicker, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch m.state {
		case periodStateSelect:
			return m.updateSelect(msg)
		case periodStateCustom:
			return m.updateCustom(msg)
		}
	}

	if m.state == periodStateCustom {
		var cmd tea.Cmd
		m.monthInput, cmd = m.monthInput.Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m PeriodPicker) updateSelect(msg tea.KeyMsg) (PeriodPicker, tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp:
		if m.selected > PeriodThisMonth {
			m.selected--
		}
	case tea.KeyDown:
		if m.selected < PeriodCustom {
			m.selected++
		}
	case tea.KeyEnter:
		if m.selected == PeriodCustom {
			m.state = periodStateCustom
			m.monthInput.Focus()

			return m, textinput.Blink
		}

		period := m.selected.Resolve(m.today)

		return m, func() tea.Msg {
			return PeriodSelectedMsg{Period: period}
		}
	}

	return m, nil
}

func (m PeriodPicker) updateCustom(msg tea.KeyMsg) (PeriodPicker, tea.Cmd) {
	switch msg.String() {
	case "enter":
		period, err := dashboard.ParseMonth(m.monthInput.Value(), m.today.Location())
		if err != nil {
			m.err = fmt.Errorf("invalid month (YYYY-MM)")
			return m, nil
		}

		m.err = nil

		return m, func() tea.Msg {
			return PeriodSelectedMsg{Period: period}
		}

	case "esc":
		m.state = periodStateSelect
		m.err = nil
		m.monthInput.Blur()

		return m, nil
	}

	var cmd tea.Cmd
	m.monthInput, cmd = m.monthInput.Update(msg)

	return m, cmd
}

func (m PeriodPicker) View() string {
	errStr := ""
	if m.err != nil {
		errStr = errorStyle.Render(fmt.Sprintf("\n\nError: %v", m.err))
	}

	if m.state == periodStateCustom {
		return fmt.Sprintf(
			"Enter Month:\n\n%s\n\n(Enter to confirm, Esc to back)%s",
			m.monthInput.View(),
			errStr,
		)
	}

	s := "Select Period:\n\n"
	for i := PeriodThisMonth; i <= PeriodCustom; i++ {
		cursor := " "
		if m.selected == i {
			cursor = ">"
		}

		s += fmt.Sprintf("%s %s\n", cursor, i.String())
	}

	s += "\n(Enter to select, Esc to back)"

	return s + errStr
}

// IsSelecting reports whether the picker is on the choice list rather than
// the custom month input.
func (m PeriodPicker) IsSelecting() bool {
	return m.state == periodStateSelect
}

// Reset returns the picker to its initial selection state.
func (m *PeriodPicker) Reset(today time.Time) {
	m.state = periodStateSelect
	m.selected = PeriodThisMonth
	m.today = today
	m.err = nil
	m.monthInput.SetValue("")
	m.monthInput.Blur()
}
