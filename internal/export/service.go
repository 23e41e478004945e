// Package export produces accountant-facing ledger extracts for a period.
package export

import (
	"archive/zip"
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/arboretum/internal/dashboard"
	"github.com/MrJamesThe3rd/arboretum/internal/record"
)

// Item is a single exported transaction with its client resolved.
type Item struct {
	Transaction record.Transaction
	ClientName  string
}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Items returns the period's transactions ordered by date. Transactions on the
// same day keep snapshot order.
func (s *Service) Items(snap *record.Snapshot, period dashboard.Period) []Item {
	names := make(map[uuid.UUID]string, len(snap.Clients))
	for _, c := range snap.Clients {
		names[c.ID] = c.Name
	}

	items := make([]Item, 0)

	for _, t := range snap.Transactions {
		if !period.Contains(t.Date) {
			continue
		}

		item := Item{Transaction: t}
		if t.ClientID != nil {
			item.ClientName = names[*t.ClientID]
		}

		items = append(items, item)
	}

	slices.SortStableFunc(items, func(a, b Item) int {
		return record.DayOf(a.Transaction.Date).Compare(record.DayOf(b.Transaction.Date))
	})

	return items
}

var csvHeader = []string{"date", "type", "status", "category", "description", "client", "invoice", "amount"}

// WriteCSV writes items as comma-separated rows. Expenses carry a negative amount.
func (s *Service) WriteCSV(w io.Writer, items []Item) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, item := range items {
		t := item.Transaction

		row := []string{
			t.Date.Format(time.DateOnly),
			string(t.Type),
			string(t.Status),
			t.Category,
			t.Description,
			item.ClientName,
			t.InvoiceNumber,
			signed(t).String(),
		}

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing transaction %s: %w", t.ID, err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// Statement renders a plain-text summary suitable for pasting into an email.
func (s *Service) Statement(items []Item, period dashboard.Period) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Statement: %s\n\n", period.Label())

	txs := make([]record.Transaction, len(items))

	for i, item := range items {
		t := item.Transaction
		txs[i] = t

		ref := "No invoice"
		if t.InvoiceNumber != "" {
			ref = t.InvoiceNumber
		}

		desc := t.Description
		if item.ClientName != "" {
			desc += " (" + item.ClientName + ")"
		}

		fmt.Fprintf(&sb, "* %s | %s | %s | %s | %s\n",
			t.Date.Format(time.DateOnly), desc, signedLabel(t), t.Status, ref)
	}

	sum := dashboard.FinancialSummary(txs, dashboard.AllTime)

	fmt.Fprintf(&sb, "\nRevenue: %s\nPending: %s\nExpenses: %s\nNet: %s\n",
		sum.Revenue, sum.Pending, sum.Expenses, sum.Net)

	return sb.String()
}

// WriteArchive writes a zip holding ledger.csv and statement.txt.
func (s *Service) WriteArchive(w io.Writer, items []Item, period dashboard.Period) error {
	zw := zip.NewWriter(w)

	ledger, err := zw.Create("ledger.csv")
	if err != nil {
		return fmt.Errorf("creating ledger entry: %w", err)
	}

	if err := s.WriteCSV(ledger, items); err != nil {
		return err
	}

	statement, err := zw.Create("statement.txt")
	if err != nil {
		return fmt.Errorf("creating statement entry: %w", err)
	}

	if _, err := io.WriteString(statement, s.Statement(items, period)); err != nil {
		return fmt.Errorf("writing statement: %w", err)
	}

	return zw.Close()
}

// Filename returns the archive name for period, e.g. "ledger_2025-11.zip".
func Filename(period dashboard.Period) string {
	if period.IsAllTime() {
		return "ledger_all.zip"
	}

	return "ledger_" + period.Start.Format("2006-01") + ".zip"
}

func signed(t record.Transaction) record.Money {
	if t.Type == record.TypeExpense {
		return -t.Amount
	}

	return t.Amount
}

func signedLabel(t record.Transaction) string {
	if t.Type == record.TypeExpense {
		return "-" + t.Amount.String()
	}

	return "+" + t.Amount.String()
}
