package usecase

import (
	"testing"
	"time"

	"cheque-splitter/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func text(s string) domain.Cell { return domain.Cell{Kind: domain.CellText, Raw: s} }
func num(s string) domain.Cell  { return domain.Cell{Kind: domain.CellNumber, Raw: s} }

var headerRows = [][]domain.Cell{
	{text("Cheque Register 2024")},
	{},
	{text("Date"), text("Type"), text("Particulars"), text("Bank"), text("Instrument no."), text("Instrument date"), text("Status"), text("Amount")},
}

func row(date, typ, particulars, instrumentDate, amount string) []domain.Cell {
	return []domain.Cell{text(date), text(typ), text(particulars), text("HBL"), num("100200"), text(instrumentDate), text("Cleared"), num(amount)}
}

func sheetWith(name string, rows ...[]domain.Cell) domain.RawSheet {
	return domain.RawSheet{Name: name, Rows: append(append([][]domain.Cell{}, headerRows...), rows...)}
}

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func tx(typ domain.TransactionType, particulars string, instrumentDate *time.Time, amount int64) domain.Transaction {
	return domain.Transaction{
		Type:           typ,
		Particulars:    particulars,
		InstrumentDate: instrumentDate,
		Amount:         decimal.NewNullDecimal(decimal.NewFromInt(amount)),
	}
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}

func particularsOf(txs []domain.Transaction) []string {
	out := make([]string, 0, len(txs))
	for _, t := range txs {
		out = append(out, t.Particulars)
	}
	return out
}
