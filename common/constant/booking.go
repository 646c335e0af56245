package constant

const (
	MinTicketQuantity = 1
	MaxTicketQuantity = 10
)
