package http

import (
	"encoding/json"
	"errors"
	"github.com/go-playground/validator/v10"
	"masjid-events/common/errs"
	"masjid-events/model"
	"net/http"
)

func writeJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if data == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func writeErrorResponse(w http.ResponseWriter, err error) {
	if err == nil {
		return
	}

	w.Header().Set("Content-Type", "application/json")

	var message string
	var data any

	var httpErr *errs.HttpError
	var validationErr validator.ValidationErrors
	var subErr *errs.SubmissionError

	switch {
	case errors.As(err, &httpErr):
		message = httpErr.Message
		data = httpErr.Data
		w.WriteHeader(httpErr.Code)
	case errors.As(err, &validationErr):
		message = "Validation failed"
		w.WriteHeader(http.StatusBadRequest)

		validationErrors := make(map[string]string)
		for _, fieldErr := range validationErr {
			validationErrors[fieldErr.Field()] = fieldErr.Tag()
		}

		data = validationErrors
	case errors.Is(err, errs.ErrUnauthenticated):
		message = "Unauthenticated"
		w.WriteHeader(http.StatusUnauthorized)
	case errors.As(err, &subErr):
		message = subErr.Message
		w.WriteHeader(http.StatusBadGateway)
	case errors.Is(err, errs.ErrEventNotFound):
		message = "Event not found"
		w.WriteHeader(http.StatusNotFound)
	case errors.Is(err, errs.ErrSessionNotFound):
		message = "Booking session not found"
		w.WriteHeader(http.StatusNotFound)
	case errors.Is(err, errs.ErrTicketingClosed):
		message = "Ticketing is not active for this event"
		w.WriteHeader(http.StatusConflict)
	case errors.Is(err, errs.ErrSubmitInFlight):
		message = "Submission already in progress"
		w.WriteHeader(http.StatusConflict)
	case errors.Is(err, errs.ErrPhaseConflict):
		message = "Operation not allowed in current phase"
		w.WriteHeader(http.StatusConflict)
	default:
		message = "Internal Server Error"
		w.WriteHeader(http.StatusInternalServerError)
	}

	errorResponse := model.ErrorResponse{Error: message, Data: data}
	if err := json.NewEncoder(w).Encode(errorResponse); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
