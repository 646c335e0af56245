package model

type DeeplinkResolveResponse struct {
	Deferred   bool   `json:"deferred,omitempty"`
	Matched    bool   `json:"matched"`
	OpenTicket bool   `json:"open_ticket,omitempty"`
	Event      *Event `json:"event,omitempty"`
	CleanUrl   string `json:"clean_url,omitempty"`
}
