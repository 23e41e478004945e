package record

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Snapshot is an immutable point-in-time copy of every record collection.
// Once published, neither the slices nor their elements are modified;
// changes produce a new Snapshot.
type Snapshot struct {
	Clients      []Client
	Appointments []Appointment
	Tasks        []Task
	Transactions []Transaction
	LoadedAt     time.Time
}

// Validate checks every record and id uniqueness per collection. All
// problems are reported together.
func (s *Snapshot) Validate() error {
	var errs []error

	seen := make(map[uuid.UUID]struct{}, len(s.Clients))
	for _, c := range s.Clients {
		errs = append(errs, c.Validate(), checkUnique(seen, "client", c.ID))
	}

	seen = make(map[uuid.UUID]struct{}, len(s.Appointments))
	for _, a := range s.Appointments {
		errs = append(errs, a.Validate(), checkUnique(seen, "appointment", a.ID))
	}

	seen = make(map[uuid.UUID]struct{}, len(s.Tasks))
	for _, t := range s.Tasks {
		errs = append(errs, t.Validate(), checkUnique(seen, "task", t.ID))
	}

	seen = make(map[uuid.UUID]struct{}, len(s.Transactions))
	for _, t := range s.Transactions {
		errs = append(errs, t.Validate(), checkUnique(seen, "transaction", t.ID))
	}

	return errors.Join(errs...)
}

func checkUnique(seen map[uuid.UUID]struct{}, kind string, id uuid.UUID) error {
	if id == uuid.Nil {
		return nil
	}

	if _, ok := seen[id]; ok {
		return fmt.Errorf("%s %s: %w", kind, id, ErrDuplicateID)
	}

	seen[id] = struct{}{}

	return nil
}

// Reference is a foreign client id held by another record.
type Reference struct {
	Kind     string
	RecordID uuid.UUID
	ClientID uuid.UUID
}

// DanglingReferences lists client references that do not resolve. They are
// tolerated by every consumer and reported for diagnostics only.
func (s *Snapshot) DanglingReferences() []Reference {
	known := make(map[uuid.UUID]struct{}, len(s.Clients))
	for _, c := range s.Clients {
		known[c.ID] = struct{}{}
	}

	var refs []Reference

	check := func(kind string, recordID uuid.UUID, clientID *uuid.UUID) {
		if clientID == nil {
			return
		}

		if _, ok := known[*clientID]; !ok {
			refs = append(refs, Reference{Kind: kind, RecordID: recordID, ClientID: *clientID})
		}
	}

	for _, a := range s.Appointments {
		check("appointment", a.ID, &a.ClientID)
	}

	for _, t := range s.Tasks {
		check("task", t.ID, t.ClientID)
	}

	for _, t := range s.Transactions {
		check("transaction", t.ID, t.ClientID)
	}

	return refs
}

// WithTransactions returns a copy of the snapshot with txs appended. The
// receiver is left untouched.
func (s *Snapshot) WithTransactions(txs []Transaction, loadedAt time.Time) *Snapshot {
	merged := make([]Transaction, 0, len(s.Transactions)+len(txs))
	merged = append(merged, s.Transactions...)
	merged = append(merged, txs...)

	return &Snapshot{
		Clients:      s.Clients,
		Appointments: s.Appointments,
		Tasks:        s.Tasks,
		Transactions: merged,
		LoadedAt:     loadedAt,
	}
}

// DayOf truncates t to midnight in its own location.
func DayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay compares the calendar fields of a and b, each read in its own
// location.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()

	return ay == by && am == bm && ad == bd
}

// CivilDay maps t onto the same calendar day in loc.
func CivilDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
