package model

import (
	"encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func TestEventIDUnmarshal(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    EventID
		expectError bool
	}{
		{
			name:     "plain string",
			input:    `"ev-123"`,
			expected: "ev-123",
		},
		{
			name:     "bare number",
			input:    `42`,
			expected: "42",
		},
		{
			name:     "object with id",
			input:    `{"id": "ev-123"}`,
			expected: "ev-123",
		},
		{
			name:     "object with underscore id",
			input:    `{"_id": "64f1a2"}`,
			expected: "64f1a2",
		},
		{
			name:     "object with oid",
			input:    `{"$oid": "64f1a2b3c4"}`,
			expected: "64f1a2b3c4",
		},
		{
			name:     "null",
			input:    `null`,
			expected: "",
		},
		{
			name:        "object without id field",
			input:       `{"ref": "ev-123"}`,
			expectError: true,
		},
		{
			name:        "unsupported type",
			input:       `true`,
			expectError: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var id EventID
			err := json.Unmarshal([]byte(tc.input), &id)

			if tc.expectError {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, id)
		})
	}
}

func TestEventUnmarshalNormalizesId(t *testing.T) {
	payload := `{"id": {"_id": "ev-9"}, "title": "Annual Conference", "date": "2025-06-20T18:00:00Z", "hasTicket": true}`

	var ev Event
	require.NoError(t, json.Unmarshal([]byte(payload), &ev))

	assert.Equal(t, "ev-9", ev.Id.String())
	assert.Equal(t, "Annual Conference", ev.Title)
	assert.True(t, ev.HasTicket)
}

func TestEventUnitPrice(t *testing.T) {
	price := int64(5000)
	ticketPrice := int64(3000)

	tests := []struct {
		name     string
		event    Event
		expected int64
	}{
		{
			name:     "price wins over ticket price",
			event:    Event{Price: &price, TicketPrice: &ticketPrice},
			expected: 5000,
		},
		{
			name:     "ticket price fallback",
			event:    Event{TicketPrice: &ticketPrice},
			expected: 3000,
		},
		{
			name:     "no price at all",
			event:    Event{},
			expected: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.event.UnitPrice())
		})
	}
}

func TestEventTicketActive(t *testing.T) {
	positive := int64(5000)
	zero := int64(0)

	assert.True(t, Event{HasTicket: true}.TicketActive())
	assert.True(t, Event{Price: &positive}.TicketActive())
	assert.True(t, Event{TicketPrice: &positive}.TicketActive())
	assert.False(t, Event{Price: &zero}.TicketActive())
	assert.False(t, Event{}.TicketActive())
}

func TestEventOnDay(t *testing.T) {
	ev := Event{Date: time.Date(2025, time.June, 20, 18, 30, 0, 0, time.UTC)}

	assert.True(t, ev.OnDay(time.Date(2025, time.June, 20, 0, 0, 0, 0, time.UTC)))
	assert.False(t, ev.OnDay(time.Date(2025, time.June, 21, 0, 0, 0, 0, time.UTC)))
}
