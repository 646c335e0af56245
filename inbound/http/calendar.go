package http

import (
	"masjid-events/calendar"
	"masjid-events/catalog"
	"masjid-events/common/errs"
	"masjid-events/model"
	"net/http"
	"strconv"
	"time"
)

type CalendarHttp struct {
	Catalog *catalog.Store

	TimeNow func() time.Time
}

func RegisterCalendarHttp(mux *http.ServeMux, cat *catalog.Store) *CalendarHttp {
	in := &CalendarHttp{
		Catalog: cat,
		TimeNow: time.Now,
	}

	mux.HandleFunc("GET /api/calendar", in.month)

	return in
}

// month renders one month grid. Without parameters it shows the current
// month; ?year=&month= drives the direct picker and ?shift=1 / ?shift=-1
// the arrow buttons, relative to the picked month. All paths go through
// the same navigator view.
func (in *CalendarHttp) month(w http.ResponseWriter, r *http.Request) {
	nav := calendar.NewNavigator(in.TimeNow)

	yearParam := r.URL.Query().Get("year")
	monthParam := r.URL.Query().Get("month")

	if yearParam != "" || monthParam != "" {
		year, err := strconv.Atoi(yearParam)
		if err != nil || year < 1 {
			writeErrorResponse(w, &errs.HttpError{Code: http.StatusBadRequest, Message: "Invalid year"})
			return
		}

		monthNum, err := strconv.Atoi(monthParam)
		if err != nil || monthNum < 1 || monthNum > 12 {
			writeErrorResponse(w, &errs.HttpError{Code: http.StatusBadRequest, Message: "Invalid month"})
			return
		}

		nav.Jump(year, time.Month(monthNum))
	}

	if shiftParam := r.URL.Query().Get("shift"); shiftParam != "" {
		switch shiftParam {
		case "1":
			nav.Next()
		case "-1":
			nav.Prev()
		default:
			writeErrorResponse(w, &errs.HttpError{Code: http.StatusBadRequest, Message: "Invalid shift"})
			return
		}
	}

	view := nav.View(in.Catalog.Events())

	cells := make([]model.CalendarCell, 0, len(view.Cells))
	for _, cell := range view.Cells {
		if cell.Blank {
			cells = append(cells, model.CalendarCell{Blank: true})
			continue
		}

		cells = append(cells, model.CalendarCell{
			Day:      cell.Day,
			Date:     cell.Date.Format(time.DateOnly),
			Today:    cell.Today,
			HasEvent: cell.HasEvent,
		})
	}

	writeJSONResponse(w, http.StatusOK, model.CalendarMonthResponse{
		Year:       view.Month.Year(),
		Month:      int(view.Month.Month()),
		Label:      view.Month.Format("January 2006"),
		HijriLabel: view.HijriLabel,
		Cells:      cells,
	})
}
