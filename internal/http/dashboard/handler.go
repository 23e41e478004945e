package dashboard

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/arboretum/internal/dashboard"
	"github.com/MrJamesThe3rd/arboretum/internal/http/render"
	"github.com/MrJamesThe3rd/arboretum/internal/record"
)

// SnapshotSource hands out the current snapshot. Each request reads exactly one.
type SnapshotSource interface {
	Snapshot() *record.Snapshot
}

type Handler struct {
	src   SnapshotSource
	loc   *time.Location
	limit int
	now   func() time.Time
}

func NewHandler(src SnapshotSource, loc *time.Location, upcomingLimit int) *Handler {
	if loc == nil {
		loc = time.Local
	}

	return &Handler{src: src, loc: loc, limit: upcomingLimit, now: time.Now}
}

// WithClock overrides the handler's notion of "now".
func (h *Handler) WithClock(now func() time.Time) *Handler {
	h.now = now
	return h
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/overview", h.overview)
	r.Get("/appointments/today", h.appointmentsToday)
	r.Get("/appointments/week", h.appointmentsWeek)
	r.Get("/tasks/upcoming", h.upcomingTasks)
	r.Get("/tasks/by-category", h.tasksByCategory)
	r.Get("/finances/summary", h.financeSummary)
	r.Get("/finances/transactions", h.financeTransactions)
}

func (h *Handler) overview(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	snap := h.src.Snapshot()
	ov := dashboard.Build(snap, q.ref, q.period, q.limit)

	render.JSON(w, http.StatusOK, overviewResponse{
		Date: render.Day(q.ref),
		Stats: statsResponse{
			ActiveEstates:         ov.Stats.ActiveEstates,
			LegacyEstates:         ov.Stats.LegacyEstates,
			ScheduledAppointments: ov.Stats.ScheduledAppointments,
			AppointmentsToday:     ov.Stats.AppointmentsToday,
			ActiveTasks:           ov.Stats.ActiveTasks,
			PriorityTasks:         ov.Stats.PriorityTasks,
			DueThisWeek:           ov.Stats.DueThisWeek,
		},
		Today:     render.Appointments(ov.Today, snap.Clients),
		Upcoming:  toUpcomingList(ov.Upcoming),
		Finances:  toSummary(ov.Finances),
		Portfolio: render.Clients(ov.Portfolio),
	})
}

func (h *Handler) appointmentsToday(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	snap := h.src.Snapshot()

	render.JSON(w, http.StatusOK, todayResponse{
		Date:         render.Day(q.ref),
		Appointments: render.Appointments(dashboard.TodaysAppointments(snap.Appointments, q.ref), snap.Clients),
	})
}

func (h *Handler) appointmentsWeek(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	snap := h.src.Snapshot()
	days := dashboard.AppointmentsInWeek(snap.Appointments, q.ref)

	resp := weekResponse{
		WeekStart: render.Day(dashboard.StartOfWeek(q.ref)),
		Days:      make([]dayResponse, len(days)),
	}
	for i, d := range days {
		resp.Days[i] = dayResponse{
			Date:         render.Day(d.Day),
			Weekday:      d.Day.Weekday().String(),
			Appointments: render.Appointments(d.Appointments, snap.Clients),
		}
	}

	render.JSON(w, http.StatusOK, resp)
}

func (h *Handler) upcomingTasks(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	snap := h.src.Snapshot()

	render.JSON(w, http.StatusOK, upcomingResponse{
		Date:  render.Day(q.ref),
		Tasks: toUpcomingList(dashboard.UpcomingTasks(snap.Tasks, q.ref, q.limit)),
	})
}

func (h *Handler) tasksByCategory(w http.ResponseWriter, _ *http.Request) {
	groups := dashboard.TasksByCategory(h.src.Snapshot().Tasks)

	resp := categoriesResponse{Categories: make([]categoryResponse, len(groups))}
	for i, g := range groups {
		resp.Categories[i] = categoryResponse{Category: g.Category, Tasks: render.Tasks(g.Tasks)}
	}

	render.JSON(w, http.StatusOK, resp)
}

func (h *Handler) financeSummary(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	render.JSON(w, http.StatusOK, toSummary(dashboard.FinancialSummary(h.src.Snapshot().Transactions, q.period)))
}

func (h *Handler) financeTransactions(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	income, expenses := dashboard.SplitTransactions(h.src.Snapshot().Transactions, q.period)

	render.JSON(w, http.StatusOK, ledgerResponse{
		Period:   toPeriod(q.period),
		Income:   render.Transactions(income),
		Expenses: render.Transactions(expenses),
	})
}
