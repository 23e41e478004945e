package dashboard

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/MrJamesThe3rd/arboretum/internal/dashboard"
)

var errBadQuery = errors.New("invalid query parameter")

type query struct {
	ref    time.Time
	period dashboard.Period
	limit  int
}

// parseQuery reads date, month and limit. date defaults to today in the
// handler's location, month to the month of date.
func (h *Handler) parseQuery(r *http.Request) (query, error) {
	q := query{limit: h.limit}
	values := r.URL.Query()

	if s := values.Get("date"); s != "" {
		t, err := time.ParseInLocation(time.DateOnly, s, h.loc)
		if err != nil {
			return query{}, fmt.Errorf("%w: date %q (YYYY-MM-DD)", errBadQuery, s)
		}

		q.ref = t
	} else {
		now := h.now().In(h.loc)
		q.ref = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, h.loc)
	}

	if s := values.Get("month"); s != "" {
		p, err := dashboard.ParseMonth(s, h.loc)
		if err != nil {
			return query{}, fmt.Errorf("%w: %w", errBadQuery, err)
		}

		q.period = p
	} else {
		q.period = dashboard.MonthContaining(q.ref)
	}

	if s := values.Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return query{}, fmt.Errorf("%w: limit %q", errBadQuery, s)
		}

		if n > 0 {
			q.limit = n
		}
	}

	return q, nil
}
