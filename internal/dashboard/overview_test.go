package dashboard_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/arboretum/internal/dashboard"
	"github.com/MrJamesThe3rd/arboretum/internal/record"
)

func client(name string, tier record.Tier) record.Client {
	return record.Client{ID: uuid.New(), Name: name, EstateName: name + " Estate", Tier: tier}
}

func TestResolveClient(t *testing.T) {
	a := client("Ashford", record.TierLegacy)
	b := client("Brook", record.TierFoundation)
	clients := []record.Client{a, b}

	got, ok := dashboard.ResolveClient(clients, b.ID)
	require.True(t, ok)
	assert.Equal(t, b, got)

	got, ok = dashboard.ResolveClient(clients, uuid.New())
	assert.False(t, ok)
	assert.Equal(t, record.Client{}, got)

	_, ok = dashboard.ResolveClient(nil, a.ID)
	assert.False(t, ok)

	_, ok = dashboard.ResolveOptionalClient(clients, nil)
	assert.False(t, ok)

	got, ok = dashboard.ResolveOptionalClient(clients, &a.ID)
	require.True(t, ok)
	assert.Equal(t, a, got)
}

func TestCountByTier(t *testing.T) {
	counts := dashboard.CountByTier([]record.Client{
		client("a", record.TierLegacy),
		client("b", record.TierLegacy),
		client("c", record.TierStewardship),
	})

	assert.Equal(t, map[record.Tier]int{
		record.TierFoundation:  0,
		record.TierStewardship: 1,
		record.TierLegacy:      2,
	}, counts)
}

func TestBuild(t *testing.T) {
	ref := day(2025, 11, 3)

	clients := []record.Client{
		client("a", record.TierLegacy),
		client("b", record.TierStewardship),
		client("c", record.TierLegacy),
		client("d", record.TierFoundation),
		client("e", record.TierFoundation),
	}

	urgent := task("urgent", record.TaskPending, day(2025, 11, 4), "Maintenance")
	urgent.Priority = record.PriorityUrgent

	s := &record.Snapshot{
		Clients: clients,
		Appointments: []record.Appointment{
			appt(day(2025, 11, 3), 9, record.AppointmentScheduled),
			appt(day(2025, 11, 6), 9, record.AppointmentScheduled),
			appt(day(2025, 11, 1), 9, record.AppointmentCompleted),
		},
		Tasks: []record.Task{
			urgent,
			task("done", record.TaskCompleted, day(2025, 11, 1), "Planning"),
			task("later", record.TaskPending, day(2025, 11, 20), "Planning"),
		},
		Transactions: []record.Transaction{
			tx(record.TypeIncome, record.StatusCleared, 500000, day(2025, 11, 3)),
			tx(record.TypeIncome, record.StatusPending, 120000, day(2025, 11, 12)),
			tx(record.TypeExpense, record.StatusCleared, 80000, day(2025, 11, 7)),
		},
	}

	o := dashboard.Build(s, ref, november, 5)

	assert.Equal(t, dashboard.Stats{
		ActiveEstates:         5,
		LegacyEstates:         2,
		ScheduledAppointments: 2,
		AppointmentsToday:     1,
		ActiveTasks:           2,
		PriorityTasks:         1,
		DueThisWeek:           1,
	}, o.Stats)

	assert.Len(t, o.Today, 1)
	require.Len(t, o.Upcoming, 2)
	assert.Equal(t, "urgent", o.Upcoming[0].Title)
	assert.Equal(t, record.Money(420000), o.Finances.Net)
	assert.Equal(t, clients[:dashboard.PortfolioSize], o.Portfolio)
}

func TestBuild_EmptySnapshot(t *testing.T) {
	o := dashboard.Build(&record.Snapshot{}, day(2025, 11, 3), november, 0)

	assert.Equal(t, dashboard.Stats{}, o.Stats)
	assert.Empty(t, o.Today)
	assert.Empty(t, o.Upcoming)
	assert.Empty(t, o.Portfolio)
	assert.Zero(t, o.Finances.Net)
}
