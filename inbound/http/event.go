package http

import (
	"masjid-events/catalog"
	"masjid-events/common/errs"
	"masjid-events/model"
	"net/http"
	"time"
)

type EventHttp struct {
	Catalog *catalog.Store

	TimeNow func() time.Time
}

func RegisterEventHttp(mux *http.ServeMux, cat *catalog.Store) *EventHttp {
	in := &EventHttp{
		Catalog: cat,
		TimeNow: time.Now,
	}

	mux.HandleFunc("GET /api/events", in.list)
	mux.HandleFunc("GET /api/events/{id}", in.get)

	return in
}

func (in *EventHttp) list(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, http.StatusOK, model.ListEventsResponse{
		Events:   in.Catalog.Events(),
		Featured: in.Catalog.Featured(in.TimeNow()),
	})
}

func (in *EventHttp) get(w http.ResponseWriter, r *http.Request) {
	ev, ok := in.Catalog.Find(r.PathValue("id"))
	if !ok {
		writeErrorResponse(w, errs.ErrEventNotFound)
		return
	}

	writeJSONResponse(w, http.StatusOK, ev)
}
