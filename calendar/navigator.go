package calendar

import (
	"masjid-events/model"
	"time"
)

type MonthView struct {
	Month      time.Time
	Cells      []Cell
	HijriLabel string
}

// Navigator tracks the displayed month. Step navigation and the direct
// month/year picker both land in View, so there is a single grid
// computation path.
type Navigator struct {
	current time.Time
	TimeNow func() time.Time
}

func NewNavigator(timeNow func() time.Time) *Navigator {
	if timeNow == nil {
		timeNow = time.Now
	}

	now := timeNow()
	return &Navigator{
		current: time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()),
		TimeNow: timeNow,
	}
}

func (n *Navigator) Current() time.Time {
	return n.current
}

func (n *Navigator) Next() {
	n.current = n.current.AddDate(0, 1, 0)
}

func (n *Navigator) Prev() {
	n.current = n.current.AddDate(0, -1, 0)
}

func (n *Navigator) Jump(year int, month time.Month) {
	n.current = time.Date(year, month, 1, 0, 0, 0, 0, n.current.Location())
}

func (n *Navigator) View(events []model.Event) MonthView {
	return MonthView{
		Month:      n.current,
		Cells:      MonthGrid(n.current, events, n.TimeNow()),
		HijriLabel: HijriLabel(n.current),
	}
}
