package usecase

import (
	"cheque-splitter/internal/domain"

	"github.com/shopspring/decimal"
)

var monthSheetHeader = append(append([]string{}, domain.TransactionColumns...), domain.ColumnNoCheques)

var summarySheetHeader = []string{
	"Month",
	domain.SummaryReceived.Label(),
	domain.SummaryIssued.Label(),
	domain.SummaryNet.Label(),
	"Total Received Cheques",
	"Total Issued Cheques",
	"Net Cheques",
}

// renderTables lays the processed workbook out as writer tables:
// one per month in order, then the Summary sheet.
func renderTables(wb *domain.ProcessedWorkbook) []domain.Table {
	tables := make([]domain.Table, 0, len(wb.Months)+1)
	for _, m := range wb.Months {
		tables = append(tables, renderMonthSheet(m))
	}
	return append(tables, renderSummarySheet(wb.Summary))
}

func renderMonthSheet(m domain.MonthSheet) domain.Table {
	rows := make([][]interface{}, 0, len(m.Transactions)+3)
	for _, tx := range m.Transactions {
		rows = append(rows, []interface{}{
			blankIfEmpty(domain.FormatDate(tx.Date)),
			blankIfEmpty(string(tx.Type)),
			blankIfEmpty(tx.Particulars),
			blankIfEmpty(tx.Bank),
			blankIfEmpty(tx.InstrumentNo),
			blankIfEmpty(domain.FormatDate(tx.InstrumentDate)),
			blankIfEmpty(tx.Status),
			nullableAmount(tx.Amount),
			nil,
		})
	}
	for _, s := range m.Summary.Rows() {
		rows = append(rows, []interface{}{
			nil, nil, s.Kind.Label(), nil, nil, nil, nil,
			amountValue(s.Amount),
			s.Count,
		})
	}
	return domain.Table{Name: m.Name, Header: monthSheetHeader, Rows: rows}
}

func renderSummarySheet(agg domain.AggregateSheet) domain.Table {
	rows := make([][]interface{}, 0, len(agg.Months)+1)
	for _, r := range append(append([]domain.AggregateRow{}, agg.Months...), agg.Total) {
		rows = append(rows, []interface{}{
			r.Label,
			amountValue(r.ReceivedAmount),
			amountValue(r.IssuedAmount),
			amountValue(r.NetAmount),
			r.ReceivedCount,
			r.IssuedCount,
			r.NetCount,
		})
	}
	return domain.Table{Name: domain.SummarySheetName, Header: summarySheetHeader, Rows: rows}
}

func blankIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func amountValue(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

func nullableAmount(d decimal.NullDecimal) interface{} {
	if !d.Valid {
		return nil
	}
	return amountValue(d.Decimal)
}
