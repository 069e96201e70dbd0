package deadline

import "time"

// Grid describes one month of calendar cells. Leading is the number of
// empty placeholder cells before day 1 on a Sunday-first week; Days is the
// month's day count.
type Grid struct {
	Year    int
	Month   time.Month
	Leading int
	Days    int
}

func MonthGrid(year int, month time.Month) Grid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	// Day zero of the next month is the last day of this one.
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
	return Grid{
		Year:    year,
		Month:   month,
		Leading: int(first.Weekday()),
		Days:    last.Day(),
	}
}

// Cells returns the grid as a flat slice: zeros for the leading
// placeholders, then 1..Days.
func (g Grid) Cells() []int {
	cells := make([]int, 0, g.Leading+g.Days)
	for i := 0; i < g.Leading; i++ {
		cells = append(cells, 0)
	}
	for d := 1; d <= g.Days; d++ {
		cells = append(cells, d)
	}
	return cells
}

// IsToday reports whether the given day of this grid's month is the
// current date.
func (g Grid) IsToday(day int, now time.Time) bool {
	return g.Year == now.Year() && g.Month == now.Month() && day == now.Day()
}

// IsSelected reports whether the given day matches the date fragment.
// An empty or malformed fragment selects nothing.
func (g Grid) IsSelected(day int, dateFragment string) bool {
	t, err := time.Parse(DateLayout, dateFragment)
	if err != nil {
		return false
	}
	return g.Year == t.Year() && g.Month == t.Month() && day == t.Day()
}
