package event

import (
	"context"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"masjid-events/model"
	"testing"
	"time"
)

func TestSendHandlerInvalidJson(t *testing.T) {
	notifyEvent := NotifyEvent{
		CfaFormatter: message.NewPrinter(language.French),
		Timeout:      10 * time.Second,
	}

	err := notifyEvent.SendHandler(context.Background(), []byte(`{invalid`))

	assert.NoError(t, err, "a malformed message is dropped, not redelivered")
}

func TestBuildConfirmationBody(t *testing.T) {
	notifyEvent := NotifyEvent{
		CfaFormatter: message.NewPrinter(language.French),
	}

	body := notifyEvent.buildConfirmationBody(model.TicketNotifyEventMessage{
		To:            "awa@example.org",
		Name:          "Awa Diop",
		EventTitle:    "Annual Conference",
		EventDate:     "2025-06-20T18:00:00Z",
		Quantity:      3,
		TotalAmount:   15000,
		PaymentMethod: model.PaymentMethodWave,
		Reference:     "REF-1",
	})

	assert.Contains(t, body, "Awa Diop")
	assert.Contains(t, body, "REF-1")
	assert.Contains(t, body, "Annual Conference")
	assert.Contains(t, body, "3")
	assert.Contains(t, body, "FCFA")
	assert.Contains(t, body, "Wave")
}

func TestBuildConfirmationBodyOrangeMoney(t *testing.T) {
	notifyEvent := NotifyEvent{
		CfaFormatter: message.NewPrinter(language.French),
	}

	body := notifyEvent.buildConfirmationBody(model.TicketNotifyEventMessage{
		Name:          "Awa Diop",
		TotalAmount:   5000,
		PaymentMethod: model.PaymentMethodOrangeMoney,
		Reference:     "REF-2",
	})

	assert.Contains(t, body, "Orange Money")
}
