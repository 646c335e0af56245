package model

type OrderItem struct {
	Type      string `json:"type" validate:"required,eq=ticket"`
	EventRef  string `json:"eventRef" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1,max=10"`
	UnitPrice int64  `json:"unitPrice" validate:"min=0"`
}

// OrderRequest is the outbound POST /orders payload. TotalAmount must equal
// UnitPrice times Quantity of the single ticket item, exact integer
// arithmetic, no rounding.
type OrderRequest struct {
	BuyerId       string        `json:"buyerId" validate:"required"`
	Items         []OrderItem   `json:"items" validate:"required,len=1,dive"`
	TotalAmount   int64         `json:"totalAmount" validate:"min=0"`
	PaymentMethod PaymentMethod `json:"paymentMethod" validate:"required,oneof=wave orange_money"`
	ContactPhone  string        `json:"contactPhone,omitempty"`
}

// OrderConfirmation is opaque to this service; it only drives the success
// phase of a booking session.
type OrderConfirmation struct {
	Id        string `json:"id"`
	Reference string `json:"reference,omitempty"`
}
