package ledger

// amountMode determines how amounts are extracted from a row.
type amountMode int

const (
	// amountSigned means one signed column; negative values are expenses.
	amountSigned amountMode = iota
	// amountSplit means separate debit (expense) and credit (income) columns.
	amountSplit
)

// Optional columns, matched case-insensitively like the required ones.
const (
	colStatus   = "status"
	colCategory = "category"
	colClient   = "client"
	colInvoice  = "invoice"
)

// Profile describes the column layout of a ledger export.
type Profile struct {
	Name       string
	DateCol    string
	DescCol    string
	AmountMode amountMode
	AmountCol  string // amountSigned
	DebitCol   string // amountSplit
	CreditCol  string // amountSplit
}

func (p Profile) requiredCols() []string {
	cols := []string{p.DateCol, p.DescCol}

	switch p.AmountMode {
	case amountSigned:
		cols = append(cols, p.AmountCol)
	case amountSplit:
		cols = append(cols, p.DebitCol, p.CreditCol)
	}

	return cols
}

// profiles is tried in order; the more specific layout comes first.
var profiles = []Profile{
	{
		Name:       "split",
		DateCol:    "date",
		DescCol:    "description",
		AmountMode: amountSplit,
		DebitCol:   "debit",
		CreditCol:  "credit",
	},
	{
		Name:       "signed",
		DateCol:    "date",
		DescCol:    "description",
		AmountMode: amountSigned,
		AmountCol:  "amount",
	},
}
