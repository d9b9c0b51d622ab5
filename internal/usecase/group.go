package usecase

import (
	"fmt"
	"sort"

	"cheque-splitter/internal/domain"
)

// CollisionPolicy decides what happens when two years share a month name.
type CollisionPolicy string

const (
	// CollisionOverwrite keeps only the later year under the month's sheet.
	CollisionOverwrite CollisionPolicy = "overwrite"
	// CollisionSplit gives each year its own "Mon YYYY" sheet.
	CollisionSplit CollisionPolicy = "split"
)

// ParseCollisionPolicy validates a policy name.
func ParseCollisionPolicy(s string) (CollisionPolicy, error) {
	switch CollisionPolicy(s) {
	case CollisionOverwrite, CollisionSplit:
		return CollisionPolicy(s), nil
	default:
		return "", fmt.Errorf("unknown month collision policy %q (want %q or %q)", s, CollisionOverwrite, CollisionSplit)
	}
}

// monthGroup is the set of transactions sharing an instrument-date month.
type monthGroup struct {
	Name         string
	Key          domain.MonthKey
	Transactions []domain.Transaction
}

// groupByMonth partitions transactions by the year and month of their
// instrument date. Rows without an instrument date are dropped.
func groupByMonth(transactions []domain.Transaction) (groups map[domain.MonthKey][]domain.Transaction, dropped int) {
	groups = make(map[domain.MonthKey][]domain.Transaction)
	for _, tx := range transactions {
		if tx.InstrumentDate == nil {
			dropped++
			continue
		}
		key := domain.KeyOf(*tx.InstrumentDate)
		groups[key] = append(groups[key], tx)
	}
	return groups, dropped
}

// nameGroups turns keyed groups into named sheets ordered Jan..Dec.
// Under CollisionOverwrite a later year replaces an earlier one with the same
// month name; the replaced keys are returned.
func nameGroups(groups map[domain.MonthKey][]domain.Transaction, policy CollisionPolicy) (named []monthGroup, overwritten []domain.MonthKey) {
	keys := make([]domain.MonthKey, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Before(keys[j]) })

	byName := make(map[string]monthGroup, len(keys))
	for _, k := range keys {
		name := k.Month.String()
		if policy == CollisionSplit {
			name = fmt.Sprintf("%s %d", k.Month, k.Year)
		}
		if prev, ok := byName[name]; ok {
			overwritten = append(overwritten, prev.Key)
		}
		byName[name] = monthGroup{Name: name, Key: k, Transactions: groups[k]}
	}

	named = make([]monthGroup, 0, len(byName))
	for _, g := range byName {
		named = append(named, g)
	}
	sort.Slice(named, func(i, j int) bool {
		a, b := named[i].Key, named[j].Key
		if a.Month.Rank() != b.Month.Rank() {
			return a.Month.Rank() < b.Month.Rank()
		}
		return a.Year < b.Year
	})
	return named, overwritten
}
