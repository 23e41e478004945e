package seed_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/arboretum/internal/dashboard"
	"github.com/MrJamesThe3rd/arboretum/internal/dataset/seed"
	"github.com/MrJamesThe3rd/arboretum/internal/importer"
	"github.com/MrJamesThe3rd/arboretum/internal/record"
)

func TestSource_LoadDefault(t *testing.T) {
	src := seed.New("", "", importer.NewService())

	snap, err := src.Load(context.Background())
	require.NoError(t, err)

	assert.Len(t, snap.Clients, 6)
	assert.Len(t, snap.Appointments, 8)
	assert.Len(t, snap.Tasks, 10)
	assert.Len(t, snap.Transactions, 10)
	require.NoError(t, snap.Validate())
	assert.Empty(t, snap.DanglingReferences())

	november := dashboard.MonthOf(2025, time.November, time.UTC)
	summary := dashboard.FinancialSummary(snap.Transactions, november)
	assert.Equal(t, record.Money(2940000), summary.Revenue)
	assert.Equal(t, record.Money(1350000), summary.Pending)
	assert.Equal(t, record.Money(501625), summary.Expenses)
	assert.Equal(t, record.Money(2438375), summary.Net)

	first := snap.Appointments[0]
	assert.Equal(t, record.Clock{Hour: 9}, first.Time)
	assert.Equal(t, 2*time.Hour, first.Duration)
	assert.Equal(t, 90*time.Minute, snap.Appointments[1].Duration)

	require.NotNil(t, snap.Tasks[0].ActualHours)
	assert.Equal(t, 150*time.Minute, *snap.Tasks[0].ActualHours)
	assert.Nil(t, snap.Tasks[2].ActualHours)
}

func TestSource_LoadWithLedger(t *testing.T) {
	dir := t.TempDir()
	ledgerPath := filepath.Join(dir, "ledger.csv")
	ledgerCSV := "Date;Description;Amount\n2025-11-14;Pruning - Hale Gardens;450,00\n2025-11-15;Compost;-120,00\n"
	require.NoError(t, os.WriteFile(ledgerPath, []byte(ledgerCSV), 0o600))

	src := seed.New("", ledgerPath, importer.NewService())

	snap, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, snap.Transactions, 12)
	require.NoError(t, snap.Validate())

	merged := snap.Transactions[10]
	assert.Equal(t, "Pruning - Hale Gardens", merged.Description)
	assert.Equal(t, record.Money(45000), merged.Amount)
	assert.NotZero(t, merged.ID)

	again, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, merged.ID, again.Transactions[10].ID)
}

func TestSource_LoadErrors(t *testing.T) {
	t.Run("MissingFile", func(t *testing.T) {
		src := seed.New(filepath.Join(t.TempDir(), "nope.json"), "", importer.NewService())

		_, err := src.Load(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("MissingLedger", func(t *testing.T) {
		src := seed.New("", filepath.Join(t.TempDir(), "nope.csv"), importer.NewService())

		_, err := src.Load(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "opening ledger")
	})

	t.Run("Cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := seed.New("", "", importer.NewService()).Load(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestDecode(t *testing.T) {
	type args struct {
		doc string
	}

	type testCase struct {
		name    string
		args    args
		wantErr string
	}

	tests := []testCase{
		{
			name: "Empty",
			args: args{doc: `{}`},
		},
		{
			name:    "UnknownField",
			args:    args{doc: `{"clients": [], "invoices": []}`},
			wantErr: `unknown field "invoices"`,
		},
		{
			name: "SubCentAmount",
			args: args{doc: `{"transactions": [{
				"id": "e1000000-0000-4000-8000-000000000001", "type": "Income",
				"amount": "10.005", "status": "Cleared", "date": "2025-11-01"}]}`},
			wantErr: "transactions[0]: amount",
		},
		{
			name: "BadTime",
			args: args{doc: `{"appointments": [{
				"id": "a1000000-0000-4000-8000-000000000001",
				"client_id": "c1000000-0000-4000-8000-000000000001",
				"date": "2025-11-03", "time": "quarter past nine", "duration_hours": 1,
				"status": "Scheduled"}]}`},
			wantErr: "appointments[0]: time",
		},
		{
			name:    "BadDate",
			args:    args{doc: `{"tasks": [{"id": "d1000000-0000-4000-8000-000000000001", "due_date": "03/11/2025"}]}`},
			wantErr: "expected YYYY-MM-DD",
		},
		{
			name:    "BadUUID",
			args:    args{doc: `{"clients": [{"id": "client-1"}]}`},
			wantErr: "decoding seed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap, err := seed.Decode(strings.NewReader(tt.args.doc))

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.NotNil(t, snap)
			assert.False(t, snap.LoadedAt.IsZero())
		})
	}
}
