package record_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/arboretum/internal/record"
)

func validClient(id uuid.UUID) record.Client {
	return record.Client{
		ID:            id,
		Name:          "Eleanor Whitmore",
		EstateName:    "Whitmore Hall",
		Tier:          record.TierLegacy,
		Acreage:       decimal.RequireFromString("45.5"),
		RetainerValue: 4800000,
	}
}

func TestSnapshot_Validate(t *testing.T) {
	clientID := uuid.New()
	day := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)

	t.Run("Valid", func(t *testing.T) {
		s := &record.Snapshot{
			Clients: []record.Client{validClient(clientID)},
			Appointments: []record.Appointment{{
				ID: uuid.New(), ClientID: clientID, Date: day,
				Time: record.Clock{Hour: 9}, Duration: 2 * time.Hour, Status: record.AppointmentScheduled,
			}},
			Tasks: []record.Task{{
				ID: uuid.New(), Title: "Soil analysis", Priority: record.PriorityHigh,
				Status: record.TaskPending, DueDate: day, Category: "Analysis",
			}},
			Transactions: []record.Transaction{{
				ID: uuid.New(), Type: record.TypeIncome, Amount: 500000,
				Status: record.StatusCleared, Date: day,
			}},
		}

		assert.NoError(t, s.Validate())
	})

	t.Run("ReportsEveryProblem", func(t *testing.T) {
		dup := uuid.New()
		bad := validClient(dup)
		bad.Tier = "Platinum"

		s := &record.Snapshot{
			Clients: []record.Client{validClient(dup), bad},
			Appointments: []record.Appointment{{
				ID: uuid.New(), Date: day, Duration: -time.Hour, Status: record.AppointmentScheduled,
			}},
			Transactions: []record.Transaction{{
				ID: uuid.New(), Type: record.TypeExpense, Amount: -1,
				Status: record.StatusCleared, Date: day,
			}},
		}

		err := s.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, record.ErrUnknownTier)
		assert.ErrorIs(t, err, record.ErrDuplicateID)
		assert.ErrorIs(t, err, record.ErrInvalidDuration)
		assert.ErrorIs(t, err, record.ErrNegativeAmount)
	})

	t.Run("Empty", func(t *testing.T) {
		assert.NoError(t, (&record.Snapshot{}).Validate())
	})
}

func TestSnapshot_DanglingReferences(t *testing.T) {
	known := uuid.New()
	missing := uuid.New()
	taskID := uuid.New()

	s := &record.Snapshot{
		Clients: []record.Client{validClient(known)},
		Appointments: []record.Appointment{
			{ID: uuid.New(), ClientID: known},
		},
		Tasks: []record.Task{
			{ID: uuid.New()},
			{ID: taskID, ClientID: &missing},
		},
		Transactions: []record.Transaction{
			{ID: uuid.New(), ClientID: &known},
		},
	}

	refs := s.DanglingReferences()
	require.Len(t, refs, 1)
	assert.Equal(t, record.Reference{Kind: "task", RecordID: taskID, ClientID: missing}, refs[0])
}

func TestSnapshot_WithTransactions(t *testing.T) {
	original := &record.Snapshot{
		Transactions: []record.Transaction{{ID: uuid.New()}},
	}

	added := record.Transaction{ID: uuid.New()}
	next := original.WithTransactions([]record.Transaction{added}, time.Now())

	assert.Len(t, original.Transactions, 1)
	require.Len(t, next.Transactions, 2)
	assert.Equal(t, added.ID, next.Transactions[1].ID)
}

func TestParseClock(t *testing.T) {
	for _, in := range []string{"09:30", "9:30", "9:30 AM"} {
		c, err := record.ParseClock(in)
		require.NoError(t, err, in)
		assert.Equal(t, "09:30", c.String())
	}

	c, err := record.ParseClock("2:15 PM")
	require.NoError(t, err)
	assert.Equal(t, record.Clock{Hour: 14, Minute: 15}, c)

	_, err = record.ParseClock("25:00")
	assert.ErrorIs(t, err, record.ErrInvalidClock)
}

func TestSameDay(t *testing.T) {
	a := time.Date(2025, 11, 3, 23, 30, 0, 0, time.UTC)
	b := time.Date(2025, 11, 3, 0, 5, 0, 0, time.FixedZone("EST", -5*3600))

	assert.True(t, record.SameDay(a, b))
	assert.False(t, record.SameDay(a, a.AddDate(0, 0, 1)))
}

func TestTier_Rank(t *testing.T) {
	assert.Less(t, record.TierFoundation.Rank(), record.TierStewardship.Rank())
	assert.Less(t, record.TierStewardship.Rank(), record.TierLegacy.Rank())
	assert.Equal(t, -1, record.Tier("Gold").Rank())
}
