package model

type BookingPhase string

const (
	BookingPhaseSelection  BookingPhase = "selection"
	BookingPhaseProcessing BookingPhase = "processing"
	BookingPhaseSuccess    BookingPhase = "success"
)

type PaymentMethod string

const (
	PaymentMethodWave        PaymentMethod = "wave"
	PaymentMethodOrangeMoney PaymentMethod = "orange_money"
)

type OpenBookingRequest struct {
	EventId string `json:"event_id" validate:"required"`
}

// AdjustBookingRequest carries partial updates to a selection-phase session.
// Absent fields are left untouched.
type AdjustBookingRequest struct {
	Quantity      *int           `json:"quantity,omitempty"`
	PaymentMethod *PaymentMethod `json:"payment_method,omitempty" validate:"omitempty,oneof=wave orange_money"`
}

type BookingResponse struct {
	Id            string             `json:"id"`
	EventId       string             `json:"event_id"`
	Quantity      int                `json:"quantity"`
	PaymentMethod PaymentMethod      `json:"payment_method"`
	Phase         BookingPhase       `json:"phase"`
	Message       string             `json:"message,omitempty"`
	Confirmation  *OrderConfirmation `json:"confirmation,omitempty"`
}
