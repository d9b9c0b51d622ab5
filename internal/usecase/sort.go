package usecase

import (
	"sort"
	"time"

	"cheque-splitter/internal/domain"
)

// sortGroup orders a month's rows by type descending, then instrument date
// ascending. Equal rows keep their input order.
func sortGroup(transactions []domain.Transaction) []domain.Transaction {
	sorted := make([]domain.Transaction, len(transactions))
	copy(sorted, transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Type != b.Type {
			return a.Type > b.Type
		}
		return dateBefore(a.InstrumentDate, b.InstrumentDate)
	})
	return sorted
}

// dateBefore sorts missing dates last.
func dateBefore(a, b *time.Time) bool {
	switch {
	case a == nil:
		return false
	case b == nil:
		return true
	default:
		return a.Before(*b)
	}
}
