package deadline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthGrid_LeadingBlanksMatchWeekdayOfDayOne(t *testing.T) {
	cases := []struct {
		year    int
		month   time.Month
		leading int
		days    int
	}{
		{2024, time.December, 0, 31}, // Dec 1 2024 is a Sunday
		{2024, time.February, 4, 29}, // leap year
		{2023, time.February, 3, 28},
		{2024, time.September, 0, 30},
		{2025, time.March, 6, 31}, // Mar 1 2025 is a Saturday
		{2024, time.January, 1, 31},
	}
	for _, c := range cases {
		g := MonthGrid(c.year, c.month)
		assert.Equal(t, c.leading, g.Leading, "%d-%02d leading", c.year, c.month)
		assert.Equal(t, c.days, g.Days, "%d-%02d days", c.year, c.month)
	}
}

func TestMonthGrid_CellsLayout(t *testing.T) {
	g := MonthGrid(2023, time.February)
	cells := g.Cells()

	assert.Len(t, cells, g.Leading+g.Days)
	for i := 0; i < g.Leading; i++ {
		assert.Zero(t, cells[i])
	}
	assert.Equal(t, 1, cells[g.Leading])
	assert.Equal(t, g.Days, cells[len(cells)-1])
}

func TestGridHighlighting(t *testing.T) {
	g := MonthGrid(2024, time.December)
	now := time.Date(2024, time.December, 10, 9, 0, 0, 0, time.UTC)

	assert.True(t, g.IsToday(10, now))
	assert.False(t, g.IsToday(11, now))
	assert.False(t, MonthGrid(2025, time.December).IsToday(10, now))

	assert.True(t, g.IsSelected(15, "2024-12-15"))
	assert.False(t, g.IsSelected(15, "2024-11-15"))
	assert.False(t, g.IsSelected(15, ""))
	assert.False(t, g.IsSelected(15, "garbage"))
}
