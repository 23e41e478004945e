package dashboard_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/arboretum/internal/dashboard"
	"github.com/MrJamesThe3rd/arboretum/internal/record"
)

var november = dashboard.MonthOf(2025, time.November, time.UTC)

func tx(typ record.TransactionType, status record.TransactionStatus, amount record.Money, date time.Time) record.Transaction {
	return record.Transaction{
		ID:     uuid.New(),
		Type:   typ,
		Status: status,
		Amount: amount,
		Date:   date,
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFinances_Scenario(t *testing.T) {
	txs := []record.Transaction{
		tx(record.TypeIncome, record.StatusCleared, 500000, day(2025, 11, 3)),
		tx(record.TypeIncome, record.StatusPending, 120000, day(2025, 11, 12)),
		tx(record.TypeExpense, record.StatusCleared, 80000, day(2025, 11, 7)),
	}

	assert.Equal(t, record.Money(500000), dashboard.MonthlyRevenue(txs, november))
	assert.Equal(t, record.Money(120000), dashboard.PendingIncome(txs, november))
	assert.Equal(t, record.Money(80000), dashboard.MonthlyExpenses(txs, november))
	assert.Equal(t, record.Money(420000), dashboard.NetRevenue(txs, november))

	assert.Equal(t, dashboard.Summary{
		Period:   november,
		Revenue:  500000,
		Pending:  120000,
		Expenses: 80000,
		Net:      420000,
	}, dashboard.FinancialSummary(txs, november))
}

func TestFinances_Empty(t *testing.T) {
	for _, txs := range [][]record.Transaction{nil, {}} {
		assert.Zero(t, dashboard.MonthlyRevenue(txs, november))
		assert.Zero(t, dashboard.PendingIncome(txs, november))
		assert.Zero(t, dashboard.MonthlyExpenses(txs, november))
		assert.Zero(t, dashboard.NetRevenue(txs, november))
	}
}

func TestFinances_PeriodFiltering(t *testing.T) {
	txs := []record.Transaction{
		tx(record.TypeIncome, record.StatusCleared, 100, day(2025, 10, 31)),
		tx(record.TypeIncome, record.StatusCleared, 200, day(2025, 11, 1)),
		tx(record.TypeIncome, record.StatusCleared, 400, day(2025, 11, 30)),
		tx(record.TypeIncome, record.StatusCleared, 800, day(2025, 12, 1)),
	}

	assert.Equal(t, record.Money(600), dashboard.MonthlyRevenue(txs, november))
	assert.Equal(t, record.Money(1500), dashboard.MonthlyRevenue(txs, dashboard.AllTime))
}

func TestFinances_PeriodInOtherZone(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata unavailable")
	}

	// Stored as a UTC calendar day; must still land in November on a New York calendar.
	txs := []record.Transaction{tx(record.TypeExpense, record.StatusCleared, 999, day(2025, 11, 1))}

	assert.Equal(t, record.Money(999), dashboard.MonthlyExpenses(txs, dashboard.MonthOf(2025, time.November, ny)))
	assert.Zero(t, dashboard.MonthlyExpenses(txs, dashboard.MonthOf(2025, time.October, ny)))
}

func TestNetRevenue_CanBeNegative(t *testing.T) {
	txs := []record.Transaction{
		tx(record.TypeIncome, record.StatusCleared, 1000, day(2025, 11, 3)),
		tx(record.TypeExpense, record.StatusPending, 2500, day(2025, 11, 4)),
	}

	assert.Equal(t, record.Money(-1500), dashboard.NetRevenue(txs, november))
}

func TestNetRevenue_Identity(t *testing.T) {
	sets := [][]record.Transaction{
		nil,
		{tx(record.TypeIncome, record.StatusPending, 1, day(2025, 11, 1))},
		{
			tx(record.TypeIncome, record.StatusCleared, 1999, day(2025, 11, 1)),
			tx(record.TypeIncome, record.StatusCleared, 1, day(2025, 11, 2)),
			tx(record.TypeExpense, record.StatusCleared, 333, day(2025, 11, 3)),
			tx(record.TypeExpense, record.StatusPending, 334, day(2025, 11, 4)),
			tx(record.TypeIncome, record.StatusCleared, 10, day(2025, 9, 4)),
		},
	}

	for _, txs := range sets {
		for _, p := range []dashboard.Period{november, dashboard.AllTime} {
			assert.Equal(t,
				dashboard.MonthlyRevenue(txs, p)-dashboard.MonthlyExpenses(txs, p),
				dashboard.NetRevenue(txs, p),
			)

			s := dashboard.FinancialSummary(txs, p)
			assert.Equal(t, dashboard.MonthlyRevenue(txs, p), s.Revenue)
			assert.Equal(t, dashboard.PendingIncome(txs, p), s.Pending)
			assert.Equal(t, dashboard.MonthlyExpenses(txs, p), s.Expenses)
			assert.Equal(t, dashboard.NetRevenue(txs, p), s.Net)
		}
	}
}

func TestFinances_ExactCents(t *testing.T) {
	// 0.10 + 0.20 ten times is exactly 3.00 in cents.
	var txs []record.Transaction
	for range 10 {
		txs = append(txs,
			tx(record.TypeIncome, record.StatusCleared, 10, day(2025, 11, 5)),
			tx(record.TypeIncome, record.StatusCleared, 20, day(2025, 11, 5)),
		)
	}

	assert.Equal(t, "3.00", dashboard.MonthlyRevenue(txs, november).String())
}

func TestSplitTransactions(t *testing.T) {
	in1 := tx(record.TypeIncome, record.StatusCleared, 1, day(2025, 11, 9))
	ex1 := tx(record.TypeExpense, record.StatusCleared, 2, day(2025, 11, 2))
	in2 := tx(record.TypeIncome, record.StatusPending, 3, day(2025, 11, 1))
	old := tx(record.TypeExpense, record.StatusCleared, 4, day(2025, 8, 1))

	income, expenses := dashboard.SplitTransactions([]record.Transaction{in1, ex1, in2, old}, november)

	assert.Equal(t, []record.Transaction{in1, in2}, income)
	assert.Equal(t, []record.Transaction{ex1}, expenses)
}

func TestParseMonth(t *testing.T) {
	p, err := dashboard.ParseMonth("2025-11", time.UTC)
	assert.NoError(t, err)
	assert.Equal(t, november, p)
	assert.Equal(t, "November 2025", p.Label())
	assert.Equal(t, dashboard.MonthOf(2025, time.October, time.UTC), p.Previous())

	p, err = dashboard.ParseMonth("ALL", time.UTC)
	assert.NoError(t, err)
	assert.True(t, p.IsAllTime())
	assert.Equal(t, "All time", p.Label())

	_, err = dashboard.ParseMonth("November", time.UTC)
	assert.Error(t, err)
}
