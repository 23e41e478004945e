package view

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/arboretum/internal/dashboard"
)

var today = time.Date(2025, 11, 5, 0, 0, 0, 0, time.UTC)

func TestPeriodChoice_Resolve(t *testing.T) {
	type testCase struct {
		name   string
		choice PeriodChoice
		want   dashboard.Period
	}

	tests := []testCase{
		{name: "ThisMonth", choice: PeriodThisMonth, want: dashboard.MonthOf(2025, time.November, time.UTC)},
		{name: "LastMonth", choice: PeriodLastMonth, want: dashboard.MonthOf(2025, time.October, time.UTC)},
		{name: "AllTime", choice: PeriodAllTime, want: dashboard.AllTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.choice.Resolve(today))
		})
	}
}

func selected(t *testing.T, cmd tea.Cmd) dashboard.Period {
	t.Helper()
	require.NotNil(t, cmd)

	msg, ok := cmd().(PeriodSelectedMsg)
	require.True(t, ok)

	return msg.Period
}

func TestPeriodPicker_Select(t *testing.T) {
	p := NewPeriodPicker(today)

	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyDown})
	p, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, dashboard.MonthOf(2025, time.October, time.UTC), selected(t, cmd))
}

func TestPeriodPicker_Custom(t *testing.T) {
	p := NewPeriodPicker(today)

	for range 3 {
		p, _ = p.Update(tea.KeyMsg{Type: tea.KeyDown})
	}

	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.False(t, p.IsSelecting())

	p.monthInput.SetValue("nope")
	p, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Error(t, p.err)

	p.monthInput.SetValue("2025-09")
	_, cmd = p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, dashboard.MonthOf(2025, time.September, time.UTC), selected(t, cmd))
}
