package dashboard

import (
	"time"

	"github.com/MrJamesThe3rd/arboretum/internal/record"
)

// PortfolioSize is the number of estates shown on the overview.
const PortfolioSize = 4

// Stats are the headline counters of the overview page.
type Stats struct {
	ActiveEstates         int
	LegacyEstates         int
	ScheduledAppointments int
	AppointmentsToday     int
	ActiveTasks           int
	PriorityTasks         int
	DueThisWeek           int
}

// Overview is everything the landing page shows, computed from one snapshot.
type Overview struct {
	Reference time.Time
	Stats     Stats
	Today     []record.Appointment
	Upcoming  []UpcomingTask
	Finances  Summary
	Portfolio []record.Client
}

// Build assembles the overview for ref. Monthly figures cover period.
func Build(s *record.Snapshot, ref time.Time, period Period, limit int) Overview {
	today := TodaysAppointments(s.Appointments, ref)

	portfolio := s.Clients
	if len(portfolio) > PortfolioSize {
		portfolio = portfolio[:PortfolioSize]
	}

	return Overview{
		Reference: ref,
		Stats: Stats{
			ActiveEstates:         len(s.Clients),
			LegacyEstates:         CountByTier(s.Clients)[record.TierLegacy],
			ScheduledAppointments: CountAppointmentsByStatus(s.Appointments, record.AppointmentScheduled),
			AppointmentsToday:     len(today),
			ActiveTasks:           ActiveTaskCount(s.Tasks),
			PriorityTasks:         PriorityTaskCount(s.Tasks),
			DueThisWeek:           DueWithin(s.Tasks, ref, daysPerWeek),
		},
		Today:     today,
		Upcoming:  UpcomingTasks(s.Tasks, ref, limit),
		Finances:  FinancialSummary(s.Transactions, period),
		Portfolio: portfolio,
	}
}
