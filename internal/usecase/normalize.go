package usecase

import (
	"strconv"
	"strings"
	"time"

	"cheque-splitter/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Column positions of the fixed input layout.
const (
	colDate = iota
	colType
	colParticulars
	colBank
	colInstrumentNo
	colInstrumentDate
	colStatus
	colAmount
)

// Excel serials outside this range are not dates (1900-01-01 .. 9999-12-31).
const (
	minExcelSerial = 1
	maxExcelSerial = 2958465
)

// textDateLayouts are tried in order for dates stored as text.
// Slash dates are read month-first.
var textDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
	"02-Jan-06",
	"02-Jan-2006",
	"2-Jan-2006",
	"02 Jan 2006",
	"2 Jan 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"01/02/2006",
	"1/2/2006",
	"1/2/06",
	"2006/01/02",
	"01-02-06",
	"01-02-2006",
	"2006.01.02",
}

// sheetNormalization is the result of normalizing one raw sheet.
type sheetNormalization struct {
	Transactions      []domain.Transaction
	DateParseFailures int
}

// normalizeSheet drops the three header rows of a raw sheet and maps the rest
// positionally onto transactions. Unparseable dates become nil.
func normalizeSheet(sheet domain.RawSheet) (sheetNormalization, error) {
	if len(sheet.Rows) < domain.HeaderRows {
		return sheetNormalization{}, &domain.SchemaError{Sheet: sheet.Name, Rows: len(sheet.Rows)}
	}

	var result sheetNormalization
	body := sheet.Rows[domain.HeaderRows:]
	result.Transactions = make([]domain.Transaction, 0, len(body))
	for i, row := range body {
		date, ok := parseDateCell(cellAt(row, colDate))
		if !ok {
			result.DateParseFailures++
		}
		instrumentDate, ok := parseDateCell(cellAt(row, colInstrumentDate))
		if !ok {
			result.DateParseFailures++
		}

		result.Transactions = append(result.Transactions, domain.Transaction{
			Date:           date,
			Type:           domain.TransactionType(textCell(cellAt(row, colType))),
			Particulars:    textCell(cellAt(row, colParticulars)),
			Bank:           textCell(cellAt(row, colBank)),
			InstrumentNo:   textCell(cellAt(row, colInstrumentNo)),
			InstrumentDate: instrumentDate,
			Status:         textCell(cellAt(row, colStatus)),
			Amount:         parseAmountCell(cellAt(row, colAmount)),
			Sheet:          sheet.Name,
			Row:            i,
		})
	}
	return result, nil
}

func cellAt(row []domain.Cell, i int) domain.Cell {
	if i < len(row) {
		return row[i]
	}
	return domain.Cell{}
}

func textCell(c domain.Cell) string {
	return strings.TrimSpace(c.Raw)
}

// parseDateCell returns the date held by c. ok is false only when the cell had
// a value that could not be read as a date; an empty cell is a nil date with ok.
func parseDateCell(c domain.Cell) (t *time.Time, ok bool) {
	raw := strings.TrimSpace(c.Raw)
	if c.IsEmpty() || raw == "" {
		return nil, true
	}

	if serial, err := strconv.ParseFloat(raw, 64); err == nil {
		if serial < minExcelSerial || serial > maxExcelSerial {
			return nil, false
		}
		d, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return nil, false
		}
		d = truncateToDay(d)
		return &d, true
	}

	for _, layout := range textDateLayouts {
		if d, err := time.Parse(layout, raw); err == nil {
			d = truncateToDay(d)
			return &d, true
		}
	}
	return nil, false
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// parseAmountCell reads a plain decimal amount, tolerating thousands separators.
// Blank or unreadable amounts are returned as invalid and left out of totals.
func parseAmountCell(c domain.Cell) decimal.NullDecimal {
	raw := strings.TrimSpace(c.Raw)
	if raw == "" {
		return decimal.NullDecimal{}
	}
	raw = strings.ReplaceAll(raw, ",", "")
	raw = strings.ReplaceAll(raw, " ", "")
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}
