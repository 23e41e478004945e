package dashboard

import (
	"github.com/MrJamesThe3rd/arboretum/internal/record"
)

// Summary holds the money figures of one reporting period.
type Summary struct {
	Period   Period
	Revenue  record.Money // cleared income
	Pending  record.Money // income awaiting clearance
	Expenses record.Money // all expenses, any status
	Net      record.Money // Revenue - Expenses
}

// MonthlyRevenue sums cleared income within the period.
func MonthlyRevenue(txs []record.Transaction, period Period) record.Money {
	return sum(txs, period, func(t record.Transaction) bool {
		return t.Type == record.TypeIncome && t.Status == record.StatusCleared
	})
}

// PendingIncome sums income within the period that has not cleared yet.
func PendingIncome(txs []record.Transaction, period Period) record.Money {
	return sum(txs, period, func(t record.Transaction) bool {
		return t.Type == record.TypeIncome && t.Status == record.StatusPending
	})
}

// MonthlyExpenses sums every expense within the period, cleared or not.
func MonthlyExpenses(txs []record.Transaction, period Period) record.Money {
	return sum(txs, period, func(t record.Transaction) bool {
		return t.Type == record.TypeExpense
	})
}

// NetRevenue is MonthlyRevenue minus MonthlyExpenses. It may be negative.
func NetRevenue(txs []record.Transaction, period Period) record.Money {
	return MonthlyRevenue(txs, period) - MonthlyExpenses(txs, period)
}

// FinancialSummary computes every figure of Summary in one pass.
func FinancialSummary(txs []record.Transaction, period Period) Summary {
	s := Summary{Period: period}

	for _, t := range txs {
		if !period.Contains(t.Date) {
			continue
		}

		switch {
		case t.Type == record.TypeExpense:
			s.Expenses += t.Amount
		case t.Status == record.StatusCleared:
			s.Revenue += t.Amount
		case t.Status == record.StatusPending:
			s.Pending += t.Amount
		}
	}

	s.Net = s.Revenue - s.Expenses

	return s
}

// SplitTransactions separates the period's income and expense ledgers,
// keeping input order within each.
func SplitTransactions(txs []record.Transaction, period Period) (income, expenses []record.Transaction) {
	income = make([]record.Transaction, 0)
	expenses = make([]record.Transaction, 0)

	for _, t := range txs {
		if !period.Contains(t.Date) {
			continue
		}

		switch t.Type {
		case record.TypeIncome:
			income = append(income, t)
		case record.TypeExpense:
			expenses = append(expenses, t)
		}
	}

	return income, expenses
}

func sum(txs []record.Transaction, period Period, match func(record.Transaction) bool) record.Money {
	var total record.Money

	for _, t := range txs {
		if period.Contains(t.Date) && match(t) {
			total += t.Amount
		}
	}

	return total
}
