package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/arboretum/internal/record"
)

// Period is a half-open reporting window [Start, End). The zero Period
// covers all dates.
type Period struct {
	Start time.Time
	End   time.Time
}

// AllTime matches every date.
var AllTime = Period{}

// MonthOf returns the calendar month containing the given year and month in loc.
func MonthOf(year int, month time.Month, loc *time.Location) Period {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return Period{Start: start, End: start.AddDate(0, 1, 0)}
}

// MonthContaining returns the calendar month of t in t's location.
func MonthContaining(t time.Time) Period {
	return MonthOf(t.Year(), t.Month(), t.Location())
}

// ParseMonth parses "YYYY-MM" into a calendar month, or "all" into AllTime.
func ParseMonth(s string, loc *time.Location) (Period, error) {
	if strings.EqualFold(s, "all") {
		return AllTime, nil
	}

	t, err := time.ParseInLocation("2006-01", s, loc)
	if err != nil {
		return Period{}, fmt.Errorf("invalid month %q (YYYY-MM): %w", s, err)
	}

	return MonthOf(t.Year(), t.Month(), loc), nil
}

func (p Period) IsAllTime() bool {
	return p.Start.IsZero() && p.End.IsZero()
}

// Contains compares calendar days: t's date is read in its own location and
// placed on the period's calendar.
func (p Period) Contains(t time.Time) bool {
	if p.IsAllTime() {
		return true
	}

	day := record.CivilDay(t, p.Start.Location())

	return !day.Before(p.Start) && day.Before(p.End)
}

// Previous returns the period of equal calendar length immediately before p.
func (p Period) Previous() Period {
	if p.IsAllTime() {
		return p
	}

	return MonthOf(p.Start.Year(), p.Start.Month()-1, p.Start.Location())
}

// Label renders the period for headings, e.g. "November 2025".
func (p Period) Label() string {
	if p.IsAllTime() {
		return "All time"
	}

	return p.Start.Format("January 2006")
}
