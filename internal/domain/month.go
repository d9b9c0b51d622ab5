package domain

import (
	"fmt"
	"time"
)

// Month is a calendar month. Its value is the sheet ordering rank (Jan=0 … Dec=11).
type Month int

const (
	Jan Month = iota
	Feb
	Mar
	Apr
	May
	Jun
	Jul
	Aug
	Sep
	Oct
	Nov
	Dec
)

var monthAbbreviations = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// MonthOf maps a time.Month onto the ranked Month enum.
func MonthOf(m time.Month) Month {
	return Month(m - time.January)
}

// Rank is the position of the month in output sheet order.
func (m Month) Rank() int {
	return int(m)
}

// String returns the 3-letter English abbreviation.
func (m Month) String() string {
	if m < Jan || m > Dec {
		return fmt.Sprintf("Month(%d)", int(m))
	}
	return monthAbbreviations[m]
}

// MonthKey identifies a (year, month) grouping bucket.
type MonthKey struct {
	Year  int
	Month Month
}

// KeyOf returns the bucket a date belongs to.
func KeyOf(t time.Time) MonthKey {
	return MonthKey{Year: t.Year(), Month: MonthOf(t.Month())}
}

// Before orders keys chronologically.
func (k MonthKey) Before(o MonthKey) bool {
	if k.Year != o.Year {
		return k.Year < o.Year
	}
	return k.Month < o.Month
}

func (k MonthKey) String() string {
	return fmt.Sprintf("%s %d", k.Month, k.Year)
}
