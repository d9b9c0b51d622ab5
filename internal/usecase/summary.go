package usecase

import (
	"cheque-splitter/internal/domain"

	"github.com/shopspring/decimal"
)

// summarizeMonth computes the Received, Issued and Net rows of a month.
// Rows with another type, or without an amount value, add nothing to the amounts.
func summarizeMonth(transactions []domain.Transaction) domain.MonthSummary {
	received := domain.SummaryRow{Kind: domain.SummaryReceived, Amount: decimal.Zero}
	issued := domain.SummaryRow{Kind: domain.SummaryIssued, Amount: decimal.Zero}

	for _, tx := range transactions {
		var row *domain.SummaryRow
		switch tx.Type {
		case domain.TransactionTypeReceived:
			row = &received
		case domain.TransactionTypeIssued:
			row = &issued
		default:
			continue
		}
		row.Count++
		if tx.Amount.Valid {
			row.Amount = row.Amount.Add(tx.Amount.Decimal)
		}
	}

	return domain.MonthSummary{
		Received: received,
		Issued:   issued,
		Net: domain.SummaryRow{
			Kind:   domain.SummaryNet,
			Amount: received.Amount.Sub(issued.Amount),
			Count:  received.Count - issued.Count,
		},
	}
}

// buildMonthSheet sorts a month group and attaches its summary.
func buildMonthSheet(g monthGroup) domain.MonthSheet {
	return domain.MonthSheet{
		Name:         g.Name,
		Key:          g.Key,
		Transactions: sortGroup(g.Transactions),
		Summary:      summarizeMonth(g.Transactions),
	}
}

// aggregate rolls the month summaries up into the Summary sheet, in sheet order.
func aggregate(months []domain.MonthSheet) domain.AggregateSheet {
	agg := domain.AggregateSheet{
		Months: make([]domain.AggregateRow, 0, len(months)),
		Total: domain.AggregateRow{
			Label:          domain.TotalLabel,
			ReceivedAmount: decimal.Zero,
			IssuedAmount:   decimal.Zero,
			NetAmount:      decimal.Zero,
		},
	}

	for _, m := range months {
		row := domain.AggregateRow{
			Label:          m.Name,
			ReceivedAmount: m.Summary.Received.Amount,
			IssuedAmount:   m.Summary.Issued.Amount,
			NetAmount:      m.Summary.Net.Amount,
			ReceivedCount:  m.Summary.Received.Count,
			IssuedCount:    m.Summary.Issued.Count,
			NetCount:       m.Summary.Net.Count,
		}
		agg.Months = append(agg.Months, row)

		agg.Total.ReceivedAmount = agg.Total.ReceivedAmount.Add(row.ReceivedAmount)
		agg.Total.IssuedAmount = agg.Total.IssuedAmount.Add(row.IssuedAmount)
		agg.Total.NetAmount = agg.Total.NetAmount.Add(row.NetAmount)
		agg.Total.ReceivedCount += row.ReceivedCount
		agg.Total.IssuedCount += row.IssuedCount
		agg.Total.NetCount += row.NetCount
	}
	return agg
}
