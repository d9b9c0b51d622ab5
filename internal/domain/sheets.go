package domain

import "github.com/shopspring/decimal"

// SummaryKind tags the three synthetic rows appended to a month sheet.
type SummaryKind int

const (
	SummaryReceived SummaryKind = iota
	SummaryIssued
	SummaryNet
)

// Label is the Particulars text written for the summary row.
func (k SummaryKind) Label() string {
	switch k {
	case SummaryReceived:
		return "Total Cheques Received DR"
	case SummaryIssued:
		return "Total Cheques Paid CR"
	case SummaryNet:
		return "Net Balance Receivable / (Payable)"
	default:
		return ""
	}
}

// SummaryRow is one total line of a month sheet.
type SummaryRow struct {
	Kind   SummaryKind
	Amount decimal.Decimal
	Count  int
}

// MonthSummary holds the three summary rows of a month, addressed by kind.
type MonthSummary struct {
	Received SummaryRow
	Issued   SummaryRow
	Net      SummaryRow
}

// Rows returns the summary rows in output order.
func (s MonthSummary) Rows() []SummaryRow {
	return []SummaryRow{s.Received, s.Issued, s.Net}
}

// MonthSheet is the per-month output: sorted transactions followed by totals.
type MonthSheet struct {
	Name         string
	Key          MonthKey
	Transactions []Transaction
	Summary      MonthSummary
}

// AggregateRow is one line of the Summary sheet.
type AggregateRow struct {
	Label          string
	ReceivedAmount decimal.Decimal
	IssuedAmount   decimal.Decimal
	NetAmount      decimal.Decimal
	ReceivedCount  int
	IssuedCount    int
	NetCount       int
}

// AggregateSheet is the cross-month roll-up with its trailing Total row.
type AggregateSheet struct {
	Months []AggregateRow
	Total  AggregateRow
}

// LoadStats describes what happened while loading a workbook.
type LoadStats struct {
	SheetsRead          int `json:"sheets_read"`
	RowsRead            int `json:"rows_read"`
	DateParseFailures   int `json:"date_parse_failures"`
	RowsWithoutMonth    int `json:"rows_without_month"`
	OverwrittenMonths   int `json:"overwritten_months"`
	TransactionsGrouped int `json:"transactions_grouped"`
}

// ProcessedWorkbook is the result of a load, ready to be saved.
type ProcessedWorkbook struct {
	Source  string
	Months  []MonthSheet
	Summary AggregateSheet
	Stats   LoadStats
}

// SummarySheetName is the name of the trailing aggregate sheet.
const SummarySheetName = "Summary"

// TotalLabel is the Month cell of the aggregate's last row.
const TotalLabel = "Total"
