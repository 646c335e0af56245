package calendar

import (
	"masjid-events/model"
	"time"
)

// Cell is one day slot in a month grid. Blank cells pad the first week so
// day 1 lands on its weekday column; there is no trailing padding.
type Cell struct {
	Day      int
	Date     time.Time
	Blank    bool
	Today    bool
	HasEvent bool
}

// MonthGrid lays out the month containing the given time as a Monday-first
// sequence of cells. Its length is always leadingBlanks + daysInMonth, with
// leadingBlanks in [0,6].
func MonthGrid(month time.Time, events []model.Event, now time.Time) []Cell {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	leading := (int(first.Weekday()) + 6) % 7
	days := first.AddDate(0, 1, -1).Day()

	cells := make([]Cell, 0, leading+days)
	for i := 0; i < leading; i++ {
		cells = append(cells, Cell{Blank: true})
	}

	for d := 1; d <= days; d++ {
		date := first.AddDate(0, 0, d-1)
		cells = append(cells, Cell{
			Day:      d,
			Date:     date,
			Today:    sameDay(date, now),
			HasEvent: anyEventOn(events, date),
		})
	}

	return cells
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func anyEventOn(events []model.Event, day time.Time) bool {
	for _, ev := range events {
		if ev.OnDay(day) {
			return true
		}
	}
	return false
}
