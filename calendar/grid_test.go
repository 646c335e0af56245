package calendar

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"masjid-events/model"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthGridLayout(t *testing.T) {
	tests := []struct {
		name            string
		month           time.Time
		expectedLeading int
		expectedDays    int
	}{
		{
			name:            "month starting on monday has no padding",
			month:           date(2025, time.September, 1),
			expectedLeading: 0,
			expectedDays:    30,
		},
		{
			name:            "month starting on sunday has six blanks",
			month:           date(2025, time.June, 1),
			expectedLeading: 6,
			expectedDays:    30,
		},
		{
			name:            "month starting on saturday",
			month:           date(2025, time.February, 1),
			expectedLeading: 5,
			expectedDays:    28,
		},
		{
			name:            "leap year february",
			month:           date(2024, time.February, 1),
			expectedLeading: 3,
			expectedDays:    29,
		},
		{
			name:            "31 day month",
			month:           date(2025, time.July, 1),
			expectedLeading: 1,
			expectedDays:    31,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cells := MonthGrid(tc.month, nil, date(2025, time.January, 1))

			require.Len(t, cells, tc.expectedLeading+tc.expectedDays)

			for i := 0; i < tc.expectedLeading; i++ {
				assert.True(t, cells[i].Blank, "cell %d should be blank", i)
			}

			assert.Equal(t, 1, cells[tc.expectedLeading].Day)
			assert.Equal(t, tc.expectedDays, cells[len(cells)-1].Day)
			assert.False(t, cells[len(cells)-1].Blank, "no trailing padding")
		})
	}
}

func TestMonthGridLayoutHoldsAcrossMonths(t *testing.T) {
	month := date(2024, time.January, 1)
	now := date(2025, time.March, 10)

	for i := 0; i < 36; i++ {
		cells := MonthGrid(month, nil, now)

		first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
		leading := 0
		for leading < len(cells) && cells[leading].Blank {
			leading++
		}

		days := first.AddDate(0, 1, -1).Day()

		assert.GreaterOrEqual(t, leading, 0, "%s", month.Format("2006-01"))
		assert.LessOrEqual(t, leading, 6, "%s", month.Format("2006-01"))
		assert.Len(t, cells, leading+days, "%s", month.Format("2006-01"))

		month = month.AddDate(0, 1, 0)
	}
}

func TestMonthGridMarks(t *testing.T) {
	now := date(2025, time.June, 15)
	events := []model.Event{
		{Id: "ev-1", Title: "Conference", Date: time.Date(2025, time.June, 20, 18, 30, 0, 0, time.UTC)},
		{Id: "ev-2", Title: "Other month", Date: date(2025, time.July, 20)},
	}

	cells := MonthGrid(date(2025, time.June, 1), events, now)

	var today, marked []int
	for _, cell := range cells {
		if cell.Today {
			today = append(today, cell.Day)
		}
		if cell.HasEvent {
			marked = append(marked, cell.Day)
		}
	}

	assert.Equal(t, []int{15}, today)
	assert.Equal(t, []int{20}, marked, "event time of day must not affect the day mark")
}

func TestMonthGridTodayOutsideMonth(t *testing.T) {
	cells := MonthGrid(date(2025, time.June, 1), nil, date(2025, time.July, 15))

	for _, cell := range cells {
		assert.False(t, cell.Today)
	}
}
