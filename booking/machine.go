package booking

import (
	"context"
	"errors"
	"fmt"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/oklog/ulid/v2"
	"github.com/redis/go-redis/v9"
	"log/slog"
	"masjid-events/catalog"
	"masjid-events/common"
	"masjid-events/common/constant"
	"masjid-events/common/errs"
	"masjid-events/common/otel"
	"masjid-events/model"
	"time"
)

// Machine drives the selection -> processing -> success lifecycle of one
// booking session at a time. The processing phase is guarded by an explicit
// Redis lock, not by UI disablement: a second submit while one is in flight
// never reaches the order service.
type Machine struct {
	Catalog   *catalog.Store
	Sessions  SessionStore
	Cache     *redis.Client
	Submitter OrderSubmitter
	Publisher jetstream.Publisher

	TimeNow func() time.Time
	NewId   func() string
}

func NewMachine(
	cat *catalog.Store,
	sessions SessionStore,
	cache *redis.Client,
	submitter OrderSubmitter,
	publisher jetstream.Publisher,
) *Machine {
	return &Machine{
		Catalog:   cat,
		Sessions:  sessions,
		Cache:     cache,
		Submitter: submitter,
		Publisher: publisher,
		TimeNow:   time.Now,
		NewId:     func() string { return ulid.Make().String() },
	}
}

// Open creates a fresh selection-phase session for a ticketed event.
func (m *Machine) Open(ctx context.Context, eventId string) (*Session, error) {
	ev, ok := m.Catalog.Find(eventId)
	if !ok {
		return nil, errs.ErrEventNotFound
	}

	if !ev.TicketActive() {
		return nil, errs.ErrTicketingClosed
	}

	sess := &Session{
		Id:            m.NewId(),
		EventId:       ev.Id.String(),
		Quantity:      constant.MinTicketQuantity,
		PaymentMethod: model.PaymentMethodWave,
		Phase:         model.BookingPhaseSelection,
		CreatedAt:     m.TimeNow(),
	}

	if err := m.Sessions.Save(ctx, sess); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "booking session opened",
		slog.String("session_id", sess.Id),
		slog.String("event_id", sess.EventId))

	return sess, nil
}

// AdjustQuantity saturates the requested quantity into [1,10]. Only valid
// in the selection phase.
func (m *Machine) AdjustQuantity(ctx context.Context, id string, quantity int) (*Session, error) {
	return m.mutateSelection(ctx, id, func(sess *Session) {
		sess.Quantity = ClampQuantity(quantity)
	})
}

func (m *Machine) ChoosePayment(ctx context.Context, id string, method model.PaymentMethod) (*Session, error) {
	return m.mutateSelection(ctx, id, func(sess *Session) {
		sess.PaymentMethod = method
	})
}

// AdjustSession applies a partial update in one round trip; absent fields
// stay untouched.
func (m *Machine) AdjustSession(ctx context.Context, id string, req model.AdjustBookingRequest) (*Session, error) {
	return m.mutateSelection(ctx, id, func(sess *Session) {
		if req.Quantity != nil {
			sess.Quantity = ClampQuantity(*req.Quantity)
		}
		if req.PaymentMethod != nil {
			sess.PaymentMethod = *req.PaymentMethod
		}
	})
}

func (m *Machine) mutateSelection(ctx context.Context, id string, apply func(*Session)) (*Session, error) {
	sess, err := m.Sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if sess.Phase != model.BookingPhaseSelection {
		return nil, errs.ErrPhaseConflict
	}

	apply(sess)
	if err := m.Sessions.Save(ctx, sess); err != nil {
		return nil, err
	}

	return sess, nil
}

// Submit runs the sequential processing pipeline: identity resolution, then
// the order POST. On success the session reaches its terminal phase; on
// submission failure it returns to selection with the message surfaced; on
// an authentication failure the session is abandoned and the error bubbles
// so the caller can redirect to login.
func (m *Machine) Submit(ctx context.Context, id, token string) (*Session, error) {
	ctx, span := otel.Tracer.Start(ctx, "Machine.Submit")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	sess, err := m.Sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	switch sess.Phase {
	case model.BookingPhaseSuccess:
		return nil, errs.ErrPhaseConflict
	case model.BookingPhaseProcessing:
		return nil, errs.ErrSubmitInFlight
	}

	lockKey := fmt.Sprintf(constant.BookingProcessingLock, sess.Id)
	acquired, err := m.Cache.SetNX(ctx, lockKey, true, constant.BookingProcessingLockTTL).Result()
	if err != nil {
		slog.ErrorContext(ctx, "failed to set processing lock", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		return nil, err
	}

	if !acquired {
		slog.DebugContext(ctx, "duplicate submit rejected", traceIdAttr, slog.String("session_id", sess.Id))
		return nil, errs.ErrSubmitInFlight
	}

	defer func() {
		if delErr := m.Cache.Del(context.WithoutCancel(ctx), lockKey).Err(); delErr != nil {
			slog.ErrorContext(ctx, "failed to release processing lock", traceIdAttr, slog.Any(constant.LogFieldErr, delErr))
		}
	}()

	// The price is read from the catalog at submission time, never cached
	// at open, so a catalog refresh mid-session cannot go stale here.
	ev, ok := m.Catalog.Find(sess.EventId)
	if !ok {
		sess.Message = "This event is no longer available"
		if saveErr := m.Sessions.Save(ctx, sess); saveErr != nil {
			return nil, saveErr
		}
		return sess, nil
	}

	sess.Phase = model.BookingPhaseProcessing
	sess.Message = ""
	if err := m.Sessions.Save(ctx, sess); err != nil {
		return nil, err
	}

	result, submitErr := m.Submitter.Submit(ctx, sess, ev, token)

	// The modal may have been closed while the submission was in flight;
	// a late result for a torn-down session is discarded.
	exists, existsErr := m.Sessions.Exists(ctx, sess.Id)
	if existsErr == nil && !exists {
		slog.InfoContext(ctx, "session closed mid submission, discarding result", traceIdAttr,
			slog.String("session_id", sess.Id))
		return nil, errs.ErrSessionNotFound
	}

	if errors.Is(submitErr, errs.ErrUnauthenticated) {
		if delErr := m.Sessions.Delete(ctx, sess.Id); delErr != nil {
			slog.ErrorContext(ctx, "failed to abandon session", traceIdAttr, slog.Any(constant.LogFieldErr, delErr))
		}
		return nil, errs.ErrUnauthenticated
	}

	if submitErr != nil {
		sess.Phase = model.BookingPhaseSelection
		sess.Message = "Order submission failed, please try again"

		var subErr *errs.SubmissionError
		if errors.As(submitErr, &subErr) && subErr.Message != "" {
			sess.Message = subErr.Message
		}

		if err := m.Sessions.Save(ctx, sess); err != nil {
			return nil, err
		}

		return sess, nil
	}

	sess.Phase = model.BookingPhaseSuccess
	sess.Message = ""
	sess.Confirmation = &result.Confirmation
	if err := m.Sessions.Save(ctx, sess); err != nil {
		return nil, err
	}

	m.publishConfirmation(ctx, ev, result)

	return sess, nil
}

// Close tears the session down, whatever its phase.
func (m *Machine) Close(ctx context.Context, id string) error {
	return m.Sessions.Delete(ctx, id)
}

func (m *Machine) publishConfirmation(ctx context.Context, ev model.Event, result SubmitResult) {
	if m.Publisher == nil || result.Buyer.Email == "" {
		return
	}

	msg := model.TicketNotifyEventMessage{
		To:            result.Buyer.Email,
		Name:          result.Buyer.Name,
		EventTitle:    ev.Title,
		EventDate:     ev.Date.Format(time.RFC3339),
		Quantity:      result.Request.Items[0].Quantity,
		TotalAmount:   result.Request.TotalAmount,
		PaymentMethod: result.Request.PaymentMethod,
		Reference:     result.Confirmation.Reference,
	}

	// Best effort: the order already exists server-side, a lost
	// notification must not fail the booking.
	if err := common.PublishMessage(ctx, m.Publisher, constant.SubjectSendTicketNotification, msg); err != nil {
		slog.ErrorContext(ctx, "failed to publish ticket notification", slog.Any(constant.LogFieldErr, err))
	}
}
