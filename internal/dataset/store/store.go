package store

import (
	"context"
	"database/sql"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/arboretum/internal/record"
)

// Store reads snapshots from Postgres. All four collections are read inside
// one repeatable-read transaction so the snapshot is consistent.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

func New(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func (s *Store) Load(ctx context.Context) (*record.Snapshot, error) {
	dbTx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("beginning load tx: %w", err)
	}
	defer dbTx.Rollback()

	snap := &record.Snapshot{LoadedAt: s.now()}

	if snap.Clients, err = queryAll(ctx, dbTx, selectClients, scanClient); err != nil {
		return nil, fmt.Errorf("listing clients: %w", err)
	}

	if snap.Appointments, err = queryAll(ctx, dbTx, selectAppointments, scanAppointment); err != nil {
		return nil, fmt.Errorf("listing appointments: %w", err)
	}

	if snap.Tasks, err = queryAll(ctx, dbTx, selectTasks, scanTask); err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}

	if snap.Transactions, err = queryAll(ctx, dbTx, selectTransactions, scanTransaction); err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return nil, fmt.Errorf("committing load tx: %w", err)
	}

	return snap, nil
}

func queryAll[T any](ctx context.Context, tx *sql.Tx, query string, scan func(scanner) (T, error)) ([]T, error) {
	rows, err := tx.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []T

	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}

		out = append(out, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return out, nil
}

const selectClients = `
	SELECT id, name, estate_name, address, phone, email, tier, acreage::text,
		join_date, last_visit, notes, account_balance, retainer_value
	FROM clients
	ORDER BY name ASC`

func scanClient(s scanner) (record.Client, error) {
	var c record.Client

	var tier, acreage string

	var joinDate, lastVisit sql.NullTime

	if err := s.Scan(
		&c.ID, &c.Name, &c.EstateName, &c.Address, &c.Phone, &c.Email, &tier, &acreage,
		&joinDate, &lastVisit, &c.Notes, &c.AccountBalance, &c.RetainerValue,
	); err != nil {
		return record.Client{}, err
	}

	acres, err := decimal.NewFromString(acreage)
	if err != nil {
		return record.Client{}, fmt.Errorf("client %s acreage: %w", c.ID, err)
	}

	c.Tier = record.Tier(tier)
	c.Acreage = acres
	c.JoinDate = joinDate.Time
	c.LastVisit = lastVisit.Time

	return c, nil
}

const selectAppointments = `
	SELECT id, client_id, service, date, to_char(start_time, 'HH24:MI'),
		duration_minutes, status, notes
	FROM appointments
	ORDER BY date ASC, start_time ASC`

func scanAppointment(s scanner) (record.Appointment, error) {
	var a record.Appointment

	var clock, status string

	var minutes int64

	if err := s.Scan(&a.ID, &a.ClientID, &a.Service, &a.Date, &clock, &minutes, &status, &a.Notes); err != nil {
		return record.Appointment{}, err
	}

	c, err := record.ParseClock(clock)
	if err != nil {
		return record.Appointment{}, fmt.Errorf("appointment %s: %w", a.ID, err)
	}

	a.Time = c
	a.Duration = time.Duration(minutes) * time.Minute
	a.Status = record.AppointmentStatus(status)

	return a, nil
}

const selectTasks = `
	SELECT id, title, description, priority, status, due_date, category,
		client_id, estimated_minutes, actual_minutes
	FROM tasks
	ORDER BY due_date ASC, id ASC`

func scanTask(s scanner) (record.Task, error) {
	var t record.Task

	var priority, status string

	var estimated int64

	var actual sql.NullInt64

	if err := s.Scan(
		&t.ID, &t.Title, &t.Description, &priority, &status, &t.DueDate, &t.Category,
		&t.ClientID, &estimated, &actual,
	); err != nil {
		return record.Task{}, err
	}

	t.Priority = record.Priority(priority)
	t.Status = record.TaskStatus(status)
	t.EstimatedHours = time.Duration(estimated) * time.Minute

	if actual.Valid {
		t.ActualHours = new(time.Duration(actual.Int64) * time.Minute)
	}

	return t, nil
}

const selectTransactions = `
	SELECT id, type, amount, status, date, category, description, client_id, invoice_number
	FROM transactions
	ORDER BY date ASC, created_at ASC`

func scanTransaction(s scanner) (record.Transaction, error) {
	var tx record.Transaction

	var typeStr, statusStr string

	if err := s.Scan(
		&tx.ID, &typeStr, &tx.Amount, &statusStr, &tx.Date, &tx.Category, &tx.Description,
		&tx.ClientID, &tx.InvoiceNumber,
	); err != nil {
		return record.Transaction{}, err
	}

	tx.Type = record.TransactionType(typeStr)
	tx.Status = record.TransactionStatus(statusStr)

	return tx, nil
}

func importLockKey(minDate, maxDate time.Time) int64 {
	h := fnv.New64a()
	h.Write([]byte(minDate.Format(time.DateOnly)))
	h.Write([]byte{0})
	h.Write([]byte(maxDate.Format(time.DateOnly)))

	return int64(h.Sum64())
}

// SaveTransactions inserts imported transactions in one database transaction.
// Imports overlapping the same date range are serialised with an advisory lock.
func (s *Store) SaveTransactions(ctx context.Context, txs []record.Transaction) error {
	if len(txs) == 0 {
		return nil
	}

	minDate, maxDate := txs[0].Date, txs[0].Date
	for _, t := range txs {
		if t.Date.Before(minDate) {
			minDate = t.Date
		}

		if t.Date.After(maxDate) {
			maxDate = t.Date
		}
	}

	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning import tx: %w", err)
	}
	defer dbTx.Rollback()

	if _, err := dbTx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", importLockKey(minDate, maxDate)); err != nil {
		return fmt.Errorf("acquiring import lock: %w", err)
	}

	query := `
		INSERT INTO transactions (id, type, amount, status, date, category, description, client_id, invoice_number)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	for _, t := range txs {
		id := t.ID
		if id == uuid.Nil {
			id = uuid.New()
		}

		if _, err := dbTx.ExecContext(ctx, query,
			id,
			string(t.Type),
			int64(t.Amount),
			string(t.Status),
			t.Date,
			t.Category,
			t.Description,
			t.ClientID,
			t.InvoiceNumber,
		); err != nil {
			return fmt.Errorf("creating transaction: %w", err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing import tx: %w", err)
	}

	return nil
}
