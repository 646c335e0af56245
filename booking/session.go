package booking

import (
	"masjid-events/common/constant"
	"masjid-events/model"
	"time"
)

// Session is the transient, client-owned state of one in-progress ticket
// purchase. It exists from the moment the booking view opens until the
// view closes, whatever the phase.
type Session struct {
	Id            string                   `json:"id"`
	EventId       string                   `json:"event_id"`
	Quantity      int                      `json:"quantity"`
	PaymentMethod model.PaymentMethod      `json:"payment_method"`
	Phase         model.BookingPhase       `json:"phase"`
	Message       string                   `json:"message,omitempty"`
	Confirmation  *model.OrderConfirmation `json:"confirmation,omitempty"`
	CreatedAt     time.Time                `json:"created_at"`
}

// ClampQuantity saturates to the allowed range instead of rejecting, so a
// quantity change can never fail.
func ClampQuantity(q int) int {
	if q < constant.MinTicketQuantity {
		return constant.MinTicketQuantity
	}
	if q > constant.MaxTicketQuantity {
		return constant.MaxTicketQuantity
	}
	return q
}

func (s *Session) Response() model.BookingResponse {
	return model.BookingResponse{
		Id:            s.Id,
		EventId:       s.EventId,
		Quantity:      s.Quantity,
		PaymentMethod: s.PaymentMethod,
		Phase:         s.Phase,
		Message:       s.Message,
		Confirmation:  s.Confirmation,
	}
}
