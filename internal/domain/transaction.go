package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the direction of a cheque. Any string is accepted,
// only Received and Issued are counted in summaries.
type TransactionType string

const (
	TransactionTypeReceived TransactionType = "Received"
	TransactionTypeIssued   TransactionType = "Issued"
)

// Canonical column labels, in input order.
const (
	ColumnDate           = "Date"
	ColumnType           = "Type"
	ColumnParticulars    = "Particulars"
	ColumnBank           = "Bank"
	ColumnInstrumentNo   = "Instrument no."
	ColumnInstrumentDate = "Instrument date"
	ColumnStatus         = "Status"
	ColumnAmount         = "Amount"
	ColumnNoCheques      = "No. cheques"
)

// TransactionColumns is the fixed positional layout of every input sheet.
var TransactionColumns = []string{
	ColumnDate,
	ColumnType,
	ColumnParticulars,
	ColumnBank,
	ColumnInstrumentNo,
	ColumnInstrumentDate,
	ColumnStatus,
	ColumnAmount,
}

// Transaction is one normalized cheque row.
type Transaction struct {
	Date           *time.Time
	Type           TransactionType
	Particulars    string
	Bank           string
	InstrumentNo   string
	InstrumentDate *time.Time
	Status         string
	Amount         decimal.NullDecimal

	// Source position, kept for diagnostics and stable ordering.
	Sheet string
	Row   int
}

// DisplayDateLayout renders dates as DD-Mon-YY.
const DisplayDateLayout = "02-Jan-06"

// FormatDate renders t with DisplayDateLayout, or "" for a missing date.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DisplayDateLayout)
}
