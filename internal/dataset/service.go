package dataset

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/arboretum/internal/record"
)

var ErrInvalidSnapshot = errors.New("invalid snapshot")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=dataset
type Repository interface {
	Load(ctx context.Context) (*record.Snapshot, error)
}

// TransactionWriter is implemented by repositories that persist imported
// transactions. Repositories without it keep imports in memory only.
type TransactionWriter interface {
	SaveTransactions(ctx context.Context, txs []record.Transaction) error
}

// Service owns the current snapshot. Readers get a consistent, immutable
// snapshot without locking; writers build a replacement and swap it in.
type Service struct {
	repo Repository
	now  func() time.Time

	mu      sync.Mutex // serialises writers
	current atomic.Pointer[record.Snapshot]
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Snapshot returns the published snapshot, or an empty one before the first
// successful Reload.
func (s *Service) Snapshot() *record.Snapshot {
	if snap := s.current.Load(); snap != nil {
		return snap
	}

	return &record.Snapshot{}
}

// Reload fetches a fresh snapshot from the repository, validates it and
// publishes it. On failure the previous snapshot stays in place.
func (s *Service) Reload(ctx context.Context) (*record.Snapshot, error) {
	snap, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}

	if err := snap.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}

	for _, ref := range snap.DanglingReferences() {
		slog.Warn("dangling client reference",
			"kind", ref.Kind, "id", ref.RecordID, "client_id", ref.ClientID)
	}

	if snap.LoadedAt.IsZero() {
		snap.LoadedAt = s.now()
	}

	s.mu.Lock()
	s.current.Store(snap)
	s.mu.Unlock()

	slog.Info("snapshot published",
		"clients", len(snap.Clients),
		"appointments", len(snap.Appointments),
		"tasks", len(snap.Tasks),
		"transactions", len(snap.Transactions),
	)

	return snap, nil
}

type ImportResult struct {
	Imported  []record.Transaction
	Conflicts []Conflict
}

// Conflict pairs an incoming transaction with the existing one it duplicates.
type Conflict struct {
	Incoming record.Transaction
	Existing record.Transaction
}

type dupKey struct {
	Date        string
	Amount      record.Money
	Type        record.TransactionType
	Description string
}

func keyOf(t record.Transaction) dupKey {
	return dupKey{
		Date:        t.Date.Format(time.DateOnly),
		Amount:      t.Amount,
		Type:        t.Type,
		Description: t.Description,
	}
}

// ImportTransactions publishes a new snapshot with txs appended. Incoming
// rows matching an existing transaction on day, amount, type and description
// are reported as conflicts and left out. Transactions without an id get one.
// When the repository is a TransactionWriter the new rows are saved before
// the snapshot is published.
func (s *Service) ImportTransactions(ctx context.Context, txs []record.Transaction) (*ImportResult, error) {
	if len(txs) == 0 {
		return &ImportResult{}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	base := s.Snapshot()

	lookup := make(map[dupKey]record.Transaction, len(base.Transactions))
	for _, t := range base.Transactions {
		lookup[keyOf(t)] = t
	}

	var (
		fresh     []record.Transaction
		conflicts []Conflict
	)

	for _, t := range txs {
		if existing, found := lookup[keyOf(t)]; found {
			conflicts = append(conflicts, Conflict{Incoming: t, Existing: existing})
			continue
		}

		if t.ID == uuid.Nil {
			t.ID = uuid.New()
		}

		fresh = append(fresh, t)
	}

	if len(fresh) == 0 {
		return &ImportResult{Conflicts: conflicts}, nil
	}

	next := base.WithTransactions(fresh, s.now())
	if err := next.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}

	if w, ok := s.repo.(TransactionWriter); ok {
		if err := w.SaveTransactions(ctx, fresh); err != nil {
			return nil, fmt.Errorf("saving imported transactions: %w", err)
		}
	}

	s.current.Store(next)

	slog.Info("transactions imported", "imported", len(fresh), "conflicts", len(conflicts))

	return &ImportResult{Imported: fresh, Conflicts: conflicts}, nil
}
