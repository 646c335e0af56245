package http

import (
	"encoding/json"
	"github.com/go-playground/validator/v10"
	"log/slog"
	"masjid-events/booking"
	"masjid-events/common"
	"masjid-events/common/constant"
	"masjid-events/common/errs"
	"masjid-events/common/otel"
	"masjid-events/model"
	"net/http"
)

type BookingHttp struct {
	Machine  *booking.Machine
	Validate *validator.Validate
}

func RegisterBookingHttp(mux *http.ServeMux, machine *booking.Machine, validate *validator.Validate) *BookingHttp {
	in := &BookingHttp{
		Machine:  machine,
		Validate: validate,
	}

	mux.HandleFunc("POST /api/bookings", in.open)
	mux.HandleFunc("PATCH /api/bookings/{id}", in.adjust)
	mux.HandleFunc("POST /api/bookings/{id}/submit", in.submit)
	mux.HandleFunc("DELETE /api/bookings/{id}", in.close)

	return in
}

func (in *BookingHttp) open(w http.ResponseWriter, r *http.Request) {
	var req model.OpenBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusBadRequest, Message: "Invalid request"})
		return
	}

	if err := in.Validate.Struct(req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	ctx, span := otel.Tracer.Start(r.Context(), "BookingHttp.open")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	slog.InfoContext(ctx, "open booking receive request", slog.Any(constant.LogFieldPayload, req), traceIdAttr)

	sess, err := in.Machine.Open(ctx, req.EventId)
	if err != nil {
		writeErrorResponse(w, err)
		return
	}

	writeJSONResponse(w, http.StatusCreated, sess.Response())
}

func (in *BookingHttp) adjust(w http.ResponseWriter, r *http.Request) {
	var req model.AdjustBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusBadRequest, Message: "Invalid request"})
		return
	}

	if err := in.Validate.Struct(req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	ctx := r.Context()
	id := r.PathValue("id")

	sess, err := in.Machine.AdjustSession(ctx, id, req)
	if err != nil {
		writeErrorResponse(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, sess.Response())
}

func (in *BookingHttp) submit(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer.Start(r.Context(), "BookingHttp.submit")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	id := r.PathValue("id")
	slog.InfoContext(ctx, "submit booking receive request", slog.String("session_id", id), traceIdAttr)

	sess, err := in.Machine.Submit(ctx, id, r.Header.Get("Authorization"))
	if err != nil {
		writeErrorResponse(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, sess.Response())
}

func (in *BookingHttp) close(w http.ResponseWriter, r *http.Request) {
	if err := in.Machine.Close(r.Context(), r.PathValue("id")); err != nil {
		writeErrorResponse(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, nil)
}
