package dashboard

import (
	"time"

	"github.com/MrJamesThe3rd/arboretum/internal/record"
)

// WeekStart is the first day of a calendar week.
const WeekStart = time.Sunday

const daysPerWeek = 7

// DayAppointments is one column of the weekly calendar.
type DayAppointments struct {
	Day          time.Time
	Appointments []record.Appointment
}

// TodaysAppointments returns the appointments on ref's calendar day, in input order.
func TodaysAppointments(appts []record.Appointment, ref time.Time) []record.Appointment {
	out := make([]record.Appointment, 0)

	for _, a := range appts {
		if record.SameDay(a.Date, ref) {
			out = append(out, a)
		}
	}

	return out
}

// StartOfWeek returns midnight of the WeekStart day on or before ref.
func StartOfWeek(ref time.Time) time.Time {
	day := record.DayOf(ref)
	offset := (int(day.Weekday()) - int(WeekStart) + daysPerWeek) % daysPerWeek

	return day.AddDate(0, 0, -offset)
}

// AppointmentsInWeek buckets appointments into the seven days of ref's week.
// The result always has seven entries, ordered from WeekStart.
func AppointmentsInWeek(appts []record.Appointment, ref time.Time) []DayAppointments {
	start := StartOfWeek(ref)

	week := make([]DayAppointments, daysPerWeek)
	for i := range week {
		week[i] = DayAppointments{
			Day:          start.AddDate(0, 0, i),
			Appointments: make([]record.Appointment, 0),
		}
	}

	origin := record.CivilDay(start, time.UTC)

	for _, a := range appts {
		idx := int(record.CivilDay(a.Date, time.UTC).Sub(origin) / (24 * time.Hour))
		if idx < 0 || idx >= daysPerWeek {
			continue
		}

		week[idx].Appointments = append(week[idx].Appointments, a)
	}

	return week
}

// CountAppointmentsByStatus counts appointments in the given lifecycle state.
func CountAppointmentsByStatus(appts []record.Appointment, status record.AppointmentStatus) int {
	n := 0

	for _, a := range appts {
		if a.Status == status {
			n++
		}
	}

	return n
}
