package event

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/oklog/ulid/v2"
	"golang.org/x/text/message"
	"log/slog"
	"masjid-events/common/constant"
	"masjid-events/model"
	emailOutbound "masjid-events/outbound/email"
	"time"
)

type NotifyEvent struct {
	EmailOutbound emailOutbound.EmailOutbound
	CfaFormatter  *message.Printer
	Timeout       time.Duration
}

func (in NotifyEvent) SendHandler(ctx context.Context, msg []byte) error {
	ctx, cancel := context.WithTimeout(ctx, in.Timeout)
	defer cancel()

	var req model.TicketNotifyEventMessage
	err := json.Unmarshal(msg, &req)
	if err != nil {
		slog.WarnContext(ctx, "ticket notification event unmarshal error", slog.Any(constant.LogFieldErr, err))
		return nil
	}

	traceIdAttr := slog.String(constant.LogFieldTraceId, ulid.Make().String())
	reqAttr := slog.Any(constant.LogFieldPayload, string(msg))

	err = in.EmailOutbound.Send([]string{req.To}, "Ticket Confirmation", in.buildConfirmationBody(req))
	if err != nil {
		slog.ErrorContext(ctx, "ticket notification send error", slog.Any(constant.LogFieldErr, err), reqAttr, traceIdAttr)
		return err
	}

	slog.DebugContext(ctx, "ticket notification sent", reqAttr, traceIdAttr)

	return nil
}

func (in NotifyEvent) buildConfirmationBody(req model.TicketNotifyEventMessage) string {
	totalFormatted := in.CfaFormatter.Sprintf("%d FCFA", req.TotalAmount)

	paymentLabel := "Wave"
	if req.PaymentMethod == model.PaymentMethodOrangeMoney {
		paymentLabel = "Orange Money"
	}

	return fmt.Sprintf(constant.EmailTicketConfirmationTemplate,
		req.Name,
		req.Reference,
		req.EventTitle,
		req.EventDate,
		req.Quantity,
		totalFormatted,
		paymentLabel,
	)
}
