package seed

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/arboretum/internal/record"
)

type document struct {
	Clients      []clientDTO      `json:"clients"`
	Appointments []appointmentDTO `json:"appointments"`
	Tasks        []taskDTO        `json:"tasks"`
	Transactions []transactionDTO `json:"transactions"`
}

// date is a YYYY-MM-DD calendar day.
type date struct {
	time.Time
}

func (d *date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}

	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return fmt.Errorf("date %q: expected YYYY-MM-DD", s)
	}

	d.Time = t

	return nil
}

type clientDTO struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	EstateName     string          `json:"estate_name"`
	Address        string          `json:"address"`
	Phone          string          `json:"phone"`
	Email          string          `json:"email"`
	Tier           record.Tier     `json:"tier"`
	Acreage        decimal.Decimal `json:"acreage"`
	JoinDate       date            `json:"join_date"`
	LastVisit      date            `json:"last_visit"`
	Notes          string          `json:"notes"`
	AccountBalance decimal.Decimal `json:"account_balance"`
	RetainerValue  decimal.Decimal `json:"retainer_value"`
}

type appointmentDTO struct {
	ID            uuid.UUID                `json:"id"`
	ClientID      uuid.UUID                `json:"client_id"`
	Service       string                   `json:"service"`
	Date          date                     `json:"date"`
	Time          string                   `json:"time"`
	DurationHours decimal.Decimal          `json:"duration_hours"`
	Status        record.AppointmentStatus `json:"status"`
	Notes         string                   `json:"notes"`
}

type taskDTO struct {
	ID             uuid.UUID         `json:"id"`
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	Priority       record.Priority   `json:"priority"`
	Status         record.TaskStatus `json:"status"`
	DueDate        date              `json:"due_date"`
	Category       string            `json:"category"`
	ClientID       *uuid.UUID        `json:"client_id,omitempty"`
	EstimatedHours decimal.Decimal   `json:"estimated_hours"`
	ActualHours    *decimal.Decimal  `json:"actual_hours,omitempty"`
}

type transactionDTO struct {
	ID            uuid.UUID                `json:"id"`
	Type          record.TransactionType   `json:"type"`
	Amount        decimal.Decimal          `json:"amount"`
	Status        record.TransactionStatus `json:"status"`
	Date          date                     `json:"date"`
	Category      string                   `json:"category"`
	Description   string                   `json:"description"`
	ClientID      *uuid.UUID               `json:"client_id,omitempty"`
	InvoiceNumber string                   `json:"invoice_number,omitempty"`
}

var secondsPerHour = decimal.NewFromInt(int64(time.Hour / time.Second))

func hours(d decimal.Decimal) time.Duration {
	return time.Duration(d.Mul(secondsPerHour).Round(0).IntPart()) * time.Second
}

func (doc document) toSnapshot(loadedAt time.Time) (*record.Snapshot, error) {
	snap := &record.Snapshot{
		Clients:      make([]record.Client, 0, len(doc.Clients)),
		Appointments: make([]record.Appointment, 0, len(doc.Appointments)),
		Tasks:        make([]record.Task, 0, len(doc.Tasks)),
		Transactions: make([]record.Transaction, 0, len(doc.Transactions)),
		LoadedAt:     loadedAt,
	}

	for i, c := range doc.Clients {
		client, err := c.toRecord()
		if err != nil {
			return nil, fmt.Errorf("clients[%d]: %w", i, err)
		}

		snap.Clients = append(snap.Clients, client)
	}

	for i, a := range doc.Appointments {
		appt, err := a.toRecord()
		if err != nil {
			return nil, fmt.Errorf("appointments[%d]: %w", i, err)
		}

		snap.Appointments = append(snap.Appointments, appt)
	}

	for _, t := range doc.Tasks {
		snap.Tasks = append(snap.Tasks, t.toRecord())
	}

	for i, t := range doc.Transactions {
		tx, err := t.toRecord()
		if err != nil {
			return nil, fmt.Errorf("transactions[%d]: %w", i, err)
		}

		snap.Transactions = append(snap.Transactions, tx)
	}

	return snap, nil
}

func (c clientDTO) toRecord() (record.Client, error) {
	balance, err := record.MoneyFromDecimal(c.AccountBalance)
	if err != nil {
		return record.Client{}, fmt.Errorf("account_balance: %w", err)
	}

	retainer, err := record.MoneyFromDecimal(c.RetainerValue)
	if err != nil {
		return record.Client{}, fmt.Errorf("retainer_value: %w", err)
	}

	return record.Client{
		ID:             c.ID,
		Name:           c.Name,
		EstateName:     c.EstateName,
		Address:        c.Address,
		Phone:          c.Phone,
		Email:          c.Email,
		Tier:           c.Tier,
		Acreage:        c.Acreage,
		JoinDate:       c.JoinDate.Time,
		LastVisit:      c.LastVisit.Time,
		Notes:          c.Notes,
		AccountBalance: balance,
		RetainerValue:  retainer,
	}, nil
}

func (a appointmentDTO) toRecord() (record.Appointment, error) {
	clock, err := record.ParseClock(a.Time)
	if err != nil {
		return record.Appointment{}, fmt.Errorf("time: %w", err)
	}

	return record.Appointment{
		ID:       a.ID,
		ClientID: a.ClientID,
		Service:  a.Service,
		Date:     a.Date.Time,
		Time:     clock,
		Duration: hours(a.DurationHours),
		Status:   a.Status,
		Notes:    a.Notes,
	}, nil
}

func (t taskDTO) toRecord() record.Task {
	task := record.Task{
		ID:             t.ID,
		Title:          t.Title,
		Description:    t.Description,
		Priority:       t.Priority,
		Status:         t.Status,
		DueDate:        t.DueDate.Time,
		Category:       t.Category,
		ClientID:       t.ClientID,
		EstimatedHours: hours(t.EstimatedHours),
	}

	if t.ActualHours != nil {
		task.ActualHours = new(hours(*t.ActualHours))
	}

	return task
}

func (t transactionDTO) toRecord() (record.Transaction, error) {
	amount, err := record.MoneyFromDecimal(t.Amount)
	if err != nil {
		return record.Transaction{}, fmt.Errorf("amount: %w", err)
	}

	return record.Transaction{
		ID:            t.ID,
		Type:          t.Type,
		Amount:        amount,
		Status:        t.Status,
		Date:          t.Date.Time,
		Category:      t.Category,
		Description:   t.Description,
		ClientID:      t.ClientID,
		InvoiceNumber: t.InvoiceNumber,
	}, nil
}
