package main

import "cheque-splitter/internal/domain"

type summaryLine struct {
	Month                string `json:"month"`
	TotalReceivedAmount  string `json:"total_cheques_received_dr"`
	TotalIssuedAmount    string `json:"total_cheques_paid_cr"`
	NetAmount            string `json:"net_balance_receivable_payable"`
	TotalReceivedCheques int    `json:"total_received_cheques"`
	TotalIssuedCheques   int    `json:"total_issued_cheques"`
	NetCheques           int    `json:"net_cheques"`
}

// summaryReport is the JSON form of the Summary sheet.
type summaryReport struct {
	Source string           `json:"source"`
	Months []summaryLine    `json:"months"`
	Total  summaryLine      `json:"total"`
	Stats  domain.LoadStats `json:"stats"`
}

func newSummaryReport(wb *domain.ProcessedWorkbook) summaryReport {
	report := summaryReport{
		Source: wb.Source,
		Months: make([]summaryLine, 0, len(wb.Summary.Months)),
		Total:  toSummaryLine(wb.Summary.Total),
		Stats:  wb.Stats,
	}
	for _, r := range wb.Summary.Months {
		report.Months = append(report.Months, toSummaryLine(r))
	}
	return report
}

func toSummaryLine(r domain.AggregateRow) summaryLine {
	return summaryLine{
		Month:                r.Label,
		TotalReceivedAmount:  r.ReceivedAmount.String(),
		TotalIssuedAmount:    r.IssuedAmount.String(),
		NetAmount:            r.NetAmount.String(),
		TotalReceivedCheques: r.ReceivedCount,
		TotalIssuedCheques:   r.IssuedCount,
		NetCheques:           r.NetCount,
	}
}
