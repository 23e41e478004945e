package record

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus is the lifecycle state of an appointment.
type AppointmentStatus string

const (
	AppointmentScheduled  AppointmentStatus = "Scheduled"
	AppointmentInProgress AppointmentStatus = "In Progress"
	AppointmentCompleted  AppointmentStatus = "Completed"
	AppointmentCancelled  AppointmentStatus = "Cancelled"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentScheduled, AppointmentInProgress, AppointmentCompleted, AppointmentCancelled:
		return true
	}

	return false
}

// Clock is a time of day with minute precision.
type Clock struct {
	Hour   int
	Minute int
}

var clockLayouts = []string{"15:04", "3:04 PM", "3:04PM", "03:04 PM"}

// ParseClock accepts 24-hour ("14:30") and 12-hour ("2:30 PM") notation.
func ParseClock(s string) (Clock, error) {
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Clock{Hour: t.Hour(), Minute: t.Minute()}, nil
		}
	}

	return Clock{}, fmt.Errorf("%q: %w", s, ErrInvalidClock)
}

func (c Clock) Valid() bool {
	return c.Hour >= 0 && c.Hour < 24 && c.Minute >= 0 && c.Minute < 60
}

// Offset returns the clock as a duration since midnight.
func (c Clock) Offset() time.Duration {
	return time.Duration(c.Hour)*time.Hour + time.Duration(c.Minute)*time.Minute
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Appointment is a site visit booked against a client's estate.
// ClientID is a weak reference: it may not resolve to a loaded client.
type Appointment struct {
	ID       uuid.UUID
	ClientID uuid.UUID
	Service  string
	Date     time.Time // calendar day; time-of-day lives in Time
	Time     Clock
	Duration time.Duration
	Status   AppointmentStatus
	Notes    string
}

// Start combines Date and Time in the date's location.
func (a Appointment) Start() time.Time {
	return DayOf(a.Date).Add(a.Time.Offset())
}

func (a Appointment) Validate() error {
	if a.ID == uuid.Nil {
		return ErrMissingID
	}

	if a.Date.IsZero() {
		return fmt.Errorf("appointment %s: %w", a.ID, ErrZeroDate)
	}

	if !a.Time.Valid() {
		return fmt.Errorf("appointment %s: %w", a.ID, ErrInvalidClock)
	}

	if a.Duration <= 0 {
		return fmt.Errorf("appointment %s: %w", a.ID, ErrInvalidDuration)
	}

	if !a.Status.Valid() {
		return fmt.Errorf("appointment %s: %w %q", a.ID, ErrUnknownStatus, a.Status)
	}

	return nil
}
