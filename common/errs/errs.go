package errs

import (
	"errors"
	"fmt"
)

type HttpError struct {
	Code    int
	Message string
	Data    any
}

func (e *HttpError) Error() string {
	return fmt.Sprintf("code %d: %s, data: %v", e.Code, e.Message, e.Data)
}

// Booking error taxonomy. Unauthenticated is fatal for the current booking
// attempt (the caller redirects to login); SubmissionError is soft and
// returns the session to the selection phase with a visible message.
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrEventNotFound   = errors.New("event not found")
	ErrSessionNotFound = errors.New("booking session not found")
	ErrTicketingClosed = errors.New("ticketing is not active for this event")
	ErrPhaseConflict   = errors.New("operation not allowed in current phase")
	ErrSubmitInFlight  = errors.New("submission already in progress")
)

type SubmissionError struct {
	Message string
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("order submission failed: %s", e.Message)
}
