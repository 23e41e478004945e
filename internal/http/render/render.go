// Package render holds the JSON shapes shared by the API handlers. Money is
// rendered as integer cents and calendar days as YYYY-MM-DD.
package render

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/arboretum/internal/dashboard"
	"github.com/MrJamesThe3rd/arboretum/internal/record"
)

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func Day(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.Format(time.DateOnly)
}

type ClientResponse struct {
	ID             uuid.UUID   `json:"id"`
	Name           string      `json:"name"`
	EstateName     string      `json:"estate_name"`
	Address        string      `json:"address"`
	Phone          string      `json:"phone"`
	Email          string      `json:"email"`
	Tier           record.Tier `json:"tier"`
	Acreage        string      `json:"acreage"`
	JoinDate       string      `json:"join_date,omitempty"`
	LastVisit      string      `json:"last_visit,omitempty"`
	Notes          string      `json:"notes,omitempty"`
	AccountBalance int64       `json:"account_balance"`
	RetainerValue  int64       `json:"retainer_value"`
}

func Client(c record.Client) ClientResponse {
	return ClientResponse{
		ID:             c.ID,
		Name:           c.Name,
		EstateName:     c.EstateName,
		Address:        c.Address,
		Phone:          c.Phone,
		Email:          c.Email,
		Tier:           c.Tier,
		Acreage:        c.Acreage.String(),
		JoinDate:       Day(c.JoinDate),
		LastVisit:      Day(c.LastVisit),
		Notes:          c.Notes,
		AccountBalance: int64(c.AccountBalance),
		RetainerValue:  int64(c.RetainerValue),
	}
}

func Clients(cs []record.Client) []ClientResponse {
	resp := make([]ClientResponse, len(cs))
	for i, c := range cs {
		resp[i] = Client(c)
	}

	return resp
}

type AppointmentResponse struct {
	ID              uuid.UUID                `json:"id"`
	ClientID        uuid.UUID                `json:"client_id"`
	ClientName      string                   `json:"client_name,omitempty"`
	EstateName      string                   `json:"estate_name,omitempty"`
	Service         string                   `json:"service"`
	Date            string                   `json:"date"`
	Time            string                   `json:"time"`
	DurationMinutes int64                    `json:"duration_minutes"`
	Status          record.AppointmentStatus `json:"status"`
	Notes           string                   `json:"notes,omitempty"`
}

// Appointment renders a with its client's names when the client is known.
func Appointment(a record.Appointment, clients []record.Client) AppointmentResponse {
	resp := AppointmentResponse{
		ID:              a.ID,
		ClientID:        a.ClientID,
		Service:         a.Service,
		Date:            Day(a.Date),
		Time:            a.Time.String(),
		DurationMinutes: int64(a.Duration / time.Minute),
		Status:          a.Status,
		Notes:           a.Notes,
	}

	if c, ok := dashboard.ResolveClient(clients, a.ClientID); ok {
		resp.ClientName = c.Name
		resp.EstateName = c.EstateName
	}

	return resp
}

func Appointments(appts []record.Appointment, clients []record.Client) []AppointmentResponse {
	resp := make([]AppointmentResponse, len(appts))
	for i, a := range appts {
		resp[i] = Appointment(a, clients)
	}

	return resp
}

type TaskResponse struct {
	ID               uuid.UUID         `json:"id"`
	Title            string            `json:"title"`
	Description      string            `json:"description,omitempty"`
	Priority         record.Priority   `json:"priority"`
	Status           record.TaskStatus `json:"status"`
	DueDate          string            `json:"due_date"`
	Category         string            `json:"category"`
	ClientID         *uuid.UUID        `json:"client_id,omitempty"`
	EstimatedMinutes int64             `json:"estimated_minutes"`
	ActualMinutes    *int64            `json:"actual_minutes,omitempty"`
	Overdue          bool              `json:"overdue,omitempty"`
}

func Task(t record.Task) TaskResponse {
	resp := TaskResponse{
		ID:               t.ID,
		Title:            t.Title,
		Description:      t.Description,
		Priority:         t.Priority,
		Status:           t.Status,
		DueDate:          Day(t.DueDate),
		Category:         t.Category,
		ClientID:         t.ClientID,
		EstimatedMinutes: int64(t.EstimatedHours / time.Minute),
	}

	if t.ActualHours != nil {
		resp.ActualMinutes = new(int64(*t.ActualHours / time.Minute))
	}

	return resp
}

func Tasks(ts []record.Task) []TaskResponse {
	resp := make([]TaskResponse, len(ts))
	for i, t := range ts {
		resp[i] = Task(t)
	}

	return resp
}

type TransactionResponse struct {
	ID            uuid.UUID                `json:"id"`
	Type          record.TransactionType   `json:"type"`
	Amount        int64                    `json:"amount"`
	Status        record.TransactionStatus `json:"status"`
	Date          string                   `json:"date"`
	Category      string                   `json:"category,omitempty"`
	Description   string                   `json:"description"`
	ClientID      *uuid.UUID               `json:"client_id,omitempty"`
	InvoiceNumber string                   `json:"invoice_number,omitempty"`
}

func Transaction(t record.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:            t.ID,
		Type:          t.Type,
		Amount:        int64(t.Amount),
		Status:        t.Status,
		Date:          Day(t.Date),
		Category:      t.Category,
		Description:   t.Description,
		ClientID:      t.ClientID,
		InvoiceNumber: t.InvoiceNumber,
	}
}

func Transactions(txs []record.Transaction) []TransactionResponse {
	resp := make([]TransactionResponse, len(txs))
	for i, t := range txs {
		resp[i] = Transaction(t)
	}

	return resp
}
