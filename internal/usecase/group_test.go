package usecase

import (
	"testing"
	"time"

	"cheque-splitter/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByMonth(t *testing.T) {
	transactions := []domain.Transaction{
		tx(domain.TransactionTypeReceived, "a", day(2024, time.March, 3), 10),
		tx(domain.TransactionTypeIssued, "b", nil, 20),
		tx(domain.TransactionTypeIssued, "c", day(2024, time.January, 31), 30),
		tx(domain.TransactionTypeReceived, "d", day(2024, time.March, 1), 40),
	}
	// The posting date never decides the month.
	transactions[2].Date = day(2024, time.March, 1)

	groups, dropped := groupByMonth(transactions)
	assert.Equal(t, 1, dropped)
	require.Len(t, groups, 2)
	assert.Equal(t, []string{"c"}, particularsOf(groups[domain.MonthKey{Year: 2024, Month: domain.Jan}]))
	assert.Equal(t, []string{"a", "d"}, particularsOf(groups[domain.MonthKey{Year: 2024, Month: domain.Mar}]))
}

func TestNameGroups_CalendarOrder(t *testing.T) {
	groups := map[domain.MonthKey][]domain.Transaction{
		{Year: 2024, Month: domain.Dec}: {tx(domain.TransactionTypeReceived, "dec", day(2024, time.December, 1), 1)},
		{Year: 2025, Month: domain.Feb}: {tx(domain.TransactionTypeReceived, "feb", day(2025, time.February, 1), 1)},
		{Year: 2024, Month: domain.Jul}: {tx(domain.TransactionTypeReceived, "jul", day(2024, time.July, 1), 1)},
	}

	named, overwritten := nameGroups(groups, CollisionOverwrite)
	assert.Empty(t, overwritten)

	var names []string
	for _, g := range named {
		names = append(names, g.Name)
	}
	// Calendar order, not chronological: Feb 2025 comes before Dec 2024.
	assert.Equal(t, []string{"Feb", "Jul", "Dec"}, names)
}

func TestNameGroups_Collision(t *testing.T) {
	groups := map[domain.MonthKey][]domain.Transaction{
		{Year: 2024, Month: domain.Jan}: {tx(domain.TransactionTypeReceived, "jan24", day(2024, time.January, 2), 1)},
		{Year: 2023, Month: domain.Jan}: {tx(domain.TransactionTypeReceived, "jan23", day(2023, time.January, 2), 1)},
		{Year: 2023, Month: domain.Feb}: {tx(domain.TransactionTypeReceived, "feb23", day(2023, time.February, 2), 1)},
	}

	t.Run("overwrite keeps the later year", func(t *testing.T) {
		named, overwritten := nameGroups(groups, CollisionOverwrite)
		require.Len(t, named, 2)
		assert.Equal(t, "Jan", named[0].Name)
		assert.Equal(t, []string{"jan24"}, particularsOf(named[0].Transactions))
		assert.Equal(t, "Feb", named[1].Name)
		assert.Equal(t, []domain.MonthKey{{Year: 2023, Month: domain.Jan}}, overwritten)
	})

	t.Run("split keeps both years", func(t *testing.T) {
		named, overwritten := nameGroups(groups, CollisionSplit)
		assert.Empty(t, overwritten)
		require.Len(t, named, 3)
		assert.Equal(t, "Jan 2023", named[0].Name)
		assert.Equal(t, "Jan 2024", named[1].Name)
		assert.Equal(t, "Feb 2023", named[2].Name)
	})
}

func TestParseCollisionPolicy(t *testing.T) {
	p, err := ParseCollisionPolicy("split")
	require.NoError(t, err)
	assert.Equal(t, CollisionSplit, p)

	_, err = ParseCollisionPolicy("merge")
	assert.Error(t, err)
}
