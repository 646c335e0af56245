package model

// TicketNotifyEventMessage is published after a successful order submission
// and consumed by the notify queue worker.
type TicketNotifyEventMessage struct {
	To            string        `json:"to"`
	Name          string        `json:"name"`
	EventTitle    string        `json:"event_title"`
	EventDate     string        `json:"event_date"`
	Quantity      int           `json:"quantity"`
	TotalAmount   int64         `json:"total_amount"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Reference     string        `json:"reference"`
}
