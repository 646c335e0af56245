package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// EventID is the server-owned event identifier. The CMS serializes it
// inconsistently: plain string, bare number, or an object wrapping the id.
// All forms normalize to a string so deep-link candidates compare cleanly.
type EventID string

func (id *EventID) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case string:
		*id = EventID(v)
	case float64:
		*id = EventID(strconv.FormatInt(int64(v), 10))
	case map[string]any:
		for _, key := range []string{"id", "_id", "$oid"} {
			if inner, ok := v[key].(string); ok {
				*id = EventID(inner)
				return nil
			}
		}
		return fmt.Errorf("event id object has no recognizable id field")
	case nil:
		*id = ""
	default:
		return fmt.Errorf("unsupported event id type %T", raw)
	}

	return nil
}

func (id EventID) String() string {
	return string(id)
}

type Event struct {
	Id          EventID   `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	Date        time.Time `json:"date"`
	HasTicket   bool      `json:"hasTicket"`
	Price       *int64    `json:"price,omitempty"`
	TicketPrice *int64    `json:"ticketPrice,omitempty"`
	TicketStock int32     `json:"ticketStock,omitempty"`
	Image       string    `json:"image,omitempty"`
	DocumentUrl string    `json:"documentUrl,omitempty"`
}

// TicketActive reports whether ticketing applies to the event, signaled by
// either the flag or a positive price field.
func (e Event) TicketActive() bool {
	if e.HasTicket {
		return true
	}
	if e.Price != nil && *e.Price > 0 {
		return true
	}
	if e.TicketPrice != nil && *e.TicketPrice > 0 {
		return true
	}
	return false
}

// UnitPrice resolves price, then ticketPrice, then zero.
func (e Event) UnitPrice() int64 {
	if e.Price != nil {
		return *e.Price
	}
	if e.TicketPrice != nil {
		return *e.TicketPrice
	}
	return 0
}

// OnDay reports whether the event falls on the given calendar day,
// ignoring time of day.
func (e Event) OnDay(day time.Time) bool {
	y1, m1, d1 := e.Date.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

type ListEventsResponse struct {
	Events   []Event `json:"events"`
	Featured *Event  `json:"featured,omitempty"`
}

type CatalogRefreshEventMessage struct {
	Reason string `json:"reason,omitempty"`
}
