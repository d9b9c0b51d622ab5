package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthRankTable(t *testing.T) {
	for m := time.January; m <= time.December; m++ {
		month := MonthOf(m)
		assert.Equal(t, int(m)-1, month.Rank())
		assert.Equal(t, m.String()[:3], month.String())
	}

	assert.Equal(t, "Month(12)", Month(12).String())
}

func TestMonthKey(t *testing.T) {
	key := KeyOf(time.Date(2024, time.February, 29, 15, 0, 0, 0, time.UTC))
	assert.Equal(t, MonthKey{Year: 2024, Month: Feb}, key)
	assert.Equal(t, "Feb 2024", key.String())

	assert.True(t, MonthKey{Year: 2023, Month: Dec}.Before(MonthKey{Year: 2024, Month: Jan}))
	assert.True(t, MonthKey{Year: 2024, Month: Jan}.Before(MonthKey{Year: 2024, Month: Feb}))
	assert.False(t, MonthKey{Year: 2024, Month: Feb}.Before(MonthKey{Year: 2024, Month: Feb}))
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "05-Jan-24", FormatDate(&d))
	assert.Equal(t, "", FormatDate(nil))
}

func TestErrors(t *testing.T) {
	schema := &SchemaError{Sheet: "Sheet2", Rows: 2}
	assert.Equal(t, `sheet "Sheet2" has 2 rows, at least 3 required`, schema.Error())

	read := &ReadError{Path: "in.xlsx", Err: ErrNoSheets}
	assert.ErrorIs(t, read, ErrNoSheets)
	assert.Equal(t, "read in.xlsx: workbook has no sheets", read.Error())

	write := &WriteError{Path: "out.xlsx", Err: ErrNoSheets}
	assert.ErrorIs(t, write, ErrNoSheets)
}
