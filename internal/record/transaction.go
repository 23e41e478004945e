package record

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TransactionType represents the type of transaction (income or expense).
type TransactionType string

const (
	TypeIncome  TransactionType = "Income"
	TypeExpense TransactionType = "Expense"
)

func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// TransactionStatus is the clearance state of a transaction.
type TransactionStatus string

const (
	StatusPending TransactionStatus = "Pending"
	StatusCleared TransactionStatus = "Cleared"
)

func (s TransactionStatus) Valid() bool {
	return s == StatusPending || s == StatusCleared
}

// Transaction represents a financial transaction.
type Transaction struct {
	ID            uuid.UUID
	Type          TransactionType
	Amount        Money // always non-negative; Type carries the sign
	Status        TransactionStatus
	Date          time.Time
	Category      string
	Description   string
	ClientID      *uuid.UUID
	InvoiceNumber string
}

func (t Transaction) Validate() error {
	if t.ID == uuid.Nil {
		return ErrMissingID
	}

	if !t.Type.Valid() {
		return fmt.Errorf("transaction %s: %w %q", t.ID, ErrUnknownType, t.Type)
	}

	if !t.Status.Valid() {
		return fmt.Errorf("transaction %s: %w %q", t.ID, ErrUnknownStatus, t.Status)
	}

	if t.Amount < 0 {
		return fmt.Errorf("transaction %s: %w", t.ID, ErrNegativeAmount)
	}

	if t.Date.IsZero() {
		return fmt.Errorf("transaction %s: %w", t.ID, ErrZeroDate)
	}

	return nil
}
