package dashboard

import (
	"github.com/MrJamesThe3rd/arboretum/internal/dashboard"
	"github.com/MrJamesThe3rd/arboretum/internal/http/render"
)

type statsResponse struct {
	ActiveEstates         int `json:"active_estates"`
	LegacyEstates         int `json:"legacy_estates"`
	ScheduledAppointments int `json:"scheduled_appointments"`
	AppointmentsToday     int `json:"appointments_today"`
	ActiveTasks           int `json:"active_tasks"`
	PriorityTasks         int `json:"priority_tasks"`
	DueThisWeek           int `json:"due_this_week"`
}

type periodResponse struct {
	Label string `json:"label"`
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

type summaryResponse struct {
	Period   periodResponse `json:"period"`
	Revenue  int64          `json:"revenue"`
	Pending  int64          `json:"pending"`
	Expenses int64          `json:"expenses"`
	Net      int64          `json:"net"`
}

type overviewResponse struct {
	Date      string                       `json:"date"`
	Stats     statsResponse                `json:"stats"`
	Today     []render.AppointmentResponse `json:"today"`
	Upcoming  []render.TaskResponse        `json:"upcoming"`
	Finances  summaryResponse              `json:"finances"`
	Portfolio []render.ClientResponse      `json:"portfolio"`
}

type todayResponse struct {
	Date         string                       `json:"date"`
	Appointments []render.AppointmentResponse `json:"appointments"`
}

type dayResponse struct {
	Date         string                       `json:"date"`
	Weekday      string                       `json:"weekday"`
	Appointments []render.AppointmentResponse `json:"appointments"`
}

type weekResponse struct {
	WeekStart string        `json:"week_start"`
	Days      []dayResponse `json:"days"`
}

type upcomingResponse struct {
	Date  string                `json:"date"`
	Tasks []render.TaskResponse `json:"tasks"`
}

type categoryResponse struct {
	Category string                `json:"category"`
	Tasks    []render.TaskResponse `json:"tasks"`
}

type categoriesResponse struct {
	Categories []categoryResponse `json:"categories"`
}

type ledgerResponse struct {
	Period   periodResponse               `json:"period"`
	Income   []render.TransactionResponse `json:"income"`
	Expenses []render.TransactionResponse `json:"expenses"`
}

func toPeriod(p dashboard.Period) periodResponse {
	resp := periodResponse{Label: p.Label()}
	if !p.IsAllTime() {
		resp.Start = render.Day(p.Start)
		resp.End = render.Day(p.End)
	}

	return resp
}

func toSummary(s dashboard.Summary) summaryResponse {
	return summaryResponse{
		Period:   toPeriod(s.Period),
		Revenue:  int64(s.Revenue),
		Pending:  int64(s.Pending),
		Expenses: int64(s.Expenses),
		Net:      int64(s.Net),
	}
}

func toUpcomingList(tasks []dashboard.UpcomingTask) []render.TaskResponse {
	resp := make([]render.TaskResponse, len(tasks))
	for i, t := range tasks {
		resp[i] = render.Task(t.Task)
		resp[i].Overdue = t.Overdue
	}

	return resp
}
