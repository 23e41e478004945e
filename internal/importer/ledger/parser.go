package ledger

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	enc "github.com/MrJamesThe3rd/arboretum/internal/encoding"
	"github.com/MrJamesThe3rd/arboretum/internal/record"
)

var ErrNoProfile = errors.New("no matching ledger layout: expected date, description and amount (or debit/credit) columns")

var dateLayouts = []string{time.DateOnly, "02-01-2006", "02/01/2006", "2006/01/02"}

// Parser reads ledger CSV exports. The delimiter (';' or ',') and the column
// layout are detected from the header row.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]record.Transaction, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	data, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, fmt.Errorf("read ledger: %w", err)
	}

	for _, comma := range []rune{';', ','} {
		rows, err := readRows(data, comma)
		if err != nil {
			continue
		}

		profile, cols, headerIdx := detectProfile(rows)
		if profile == nil {
			continue
		}

		return parseRows(profile, cols, rows[headerIdx+1:], headerIdx+1)
	}

	return nil, ErrNoProfile
}

func readRows(data []byte, comma rune) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	return rows, nil
}

// colIndex maps lower-cased column names to their index in the row.
type colIndex map[string]int

func detectProfile(rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.ToLower(strings.TrimSpace(cell))
			if name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

// parseRows converts data rows into transactions. Rows without a parseable
// date are treated as footer noise and skipped; any other malformed cell is
// an error naming its 1-based row number.
func parseRows(p *Profile, cols colIndex, rows [][]string, headerRowNum int) ([]record.Transaction, error) {
	var txs []record.Transaction

	for i, row := range rows {
		rowNum := headerRowNum + i + 1

		date, ok := parseDate(cellValue(row, cols[p.DateCol]))
		if !ok {
			continue
		}

		desc := cellValue(row, cols[p.DescCol])
		if desc == "" {
			return nil, fmt.Errorf("row %d: missing description", rowNum)
		}

		amount, txType, ok, err := parseAmount(p, cols, row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		if !ok {
			continue
		}

		tx := record.Transaction{
			Type:          txType,
			Amount:        amount,
			Status:        record.StatusCleared,
			Date:          date,
			Description:   desc,
			Category:      optionalCell(row, cols, colCategory),
			InvoiceNumber: optionalCell(row, cols, colInvoice),
		}

		if s := optionalCell(row, cols, colStatus); s != "" {
			status, err := parseStatus(s)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", rowNum, err)
			}

			tx.Status = status
		}

		if c := optionalCell(row, cols, colClient); c != "" {
			id, err := uuid.Parse(c)
			if err != nil {
				return nil, fmt.Errorf("row %d: client: %w", rowNum, err)
			}

			tx.ClientID = &id
		}

		txs = append(txs, tx)
	}

	return txs, nil
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// parseAmount returns ok=false for rows that carry no amount at all.
func parseAmount(p *Profile, cols colIndex, row []string) (record.Money, record.TransactionType, bool, error) {
	switch p.AmountMode {
	case amountSigned:
		raw := cellValue(row, cols[p.AmountCol])
		if raw == "" {
			return 0, "", false, nil
		}

		amount, err := record.ParseMoney(raw)
		if err != nil {
			return 0, "", false, err
		}

		if amount < 0 {
			return -amount, record.TypeExpense, true, nil
		}

		return amount, record.TypeIncome, true, nil

	case amountSplit:
		if raw := cellValue(row, cols[p.DebitCol]); raw != "" {
			amount, err := record.ParseMoney(raw)
			if err != nil {
				return 0, "", false, fmt.Errorf("debit: %w", err)
			}

			return abs(amount), record.TypeExpense, true, nil
		}

		if raw := cellValue(row, cols[p.CreditCol]); raw != "" {
			amount, err := record.ParseMoney(raw)
			if err != nil {
				return 0, "", false, fmt.Errorf("credit: %w", err)
			}

			return abs(amount), record.TypeIncome, true, nil
		}
	}

	return 0, "", false, nil
}

func parseStatus(s string) (record.TransactionStatus, error) {
	switch strings.ToLower(s) {
	case "cleared":
		return record.StatusCleared, nil
	case "pending":
		return record.StatusPending, nil
	}

	return "", fmt.Errorf("%w %q", record.ErrUnknownStatus, s)
}

func abs(m record.Money) record.Money {
	if m < 0 {
		return -m
	}

	return m
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

func optionalCell(row []string, cols colIndex, name string) string {
	idx, ok := cols[name]
	if !ok {
		return ""
	}

	return cellValue(row, idx)
}
