package booking

import (
	"context"
	"errors"
	"github.com/go-playground/validator/v10"
	"log/slog"
	"masjid-events/common"
	"masjid-events/common/constant"
	"masjid-events/common/errs"
	"masjid-events/common/otel"
	"masjid-events/model"
)

type IdentityResolver interface {
	CurrentIdentity(ctx context.Context, token string) (model.Identity, error)
}

type OrderPoster interface {
	CreateOrder(ctx context.Context, token string, req model.OrderRequest) (model.OrderConfirmation, error)
}

type SubmitResult struct {
	Confirmation model.OrderConfirmation
	Buyer        model.Identity
	Request      model.OrderRequest
}

// OrderSubmitter turns a booking session into an order. Implemented by
// Submitter; the interface keeps the state machine testable without HTTP.
type OrderSubmitter interface {
	Submit(ctx context.Context, sess *Session, ev model.Event, token string) (SubmitResult, error)
}

type Submitter struct {
	Auth     IdentityResolver
	Orders   OrderPoster
	Validate *validator.Validate
}

// Submit resolves the buyer identity, then posts the order; the identity
// fetch must complete first because the payload needs the buyer id. The
// unit price comes from the event as loaded right now, not from anything
// cached when the session opened.
//
// Failure taxonomy: errs.ErrUnauthenticated when the identity cannot be
// resolved (no order POST is attempted), *errs.SubmissionError for
// everything else.
func (s *Submitter) Submit(ctx context.Context, sess *Session, ev model.Event, token string) (SubmitResult, error) {
	ctx, span := otel.Tracer.Start(ctx, "booking.Submit")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	identity, err := s.Auth.CurrentIdentity(ctx, token)
	if err != nil {
		common.UtilSpanError(span, err)
		if errors.Is(err, errs.ErrUnauthenticated) {
			slog.WarnContext(ctx, "order submission without valid identity", traceIdAttr)
			return SubmitResult{}, errs.ErrUnauthenticated
		}

		slog.ErrorContext(ctx, "identity resolution failed", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		return SubmitResult{}, &errs.SubmissionError{Message: "Could not verify your account, please try again"}
	}

	unitPrice := ev.UnitPrice()
	req := model.OrderRequest{
		BuyerId: identity.Id,
		Items: []model.OrderItem{{
			Type:      "ticket",
			EventRef:  ev.Id.String(),
			Quantity:  sess.Quantity,
			UnitPrice: unitPrice,
		}},
		TotalAmount:   unitPrice * int64(sess.Quantity),
		PaymentMethod: sess.PaymentMethod,
		ContactPhone:  identity.Phone,
	}

	if err := s.Validate.Struct(req); err != nil {
		slog.ErrorContext(ctx, "order request failed validation", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		return SubmitResult{}, &errs.SubmissionError{Message: "Order could not be built"}
	}

	conf, err := s.Orders.CreateOrder(ctx, token, req)
	if err != nil {
		common.UtilSpanError(span, err)
		if errors.Is(err, errs.ErrUnauthenticated) {
			return SubmitResult{}, errs.ErrUnauthenticated
		}

		var subErr *errs.SubmissionError
		if errors.As(err, &subErr) {
			return SubmitResult{}, subErr
		}

		slog.ErrorContext(ctx, "order submission failed", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		return SubmitResult{}, &errs.SubmissionError{Message: "Order submission failed, please try again"}
	}

	slog.InfoContext(ctx, "order submitted", traceIdAttr, slog.Any(constant.LogFieldResponse, conf.Id))

	return SubmitResult{Confirmation: conf, Buyer: identity, Request: req}, nil
}
