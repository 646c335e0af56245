package deeplink

import (
	"context"
	"fmt"
	"github.com/redis/go-redis/v9"
	"log/slog"
	"masjid-events/catalog"
	"masjid-events/common"
	"masjid-events/common/constant"
	"masjid-events/common/otel"
	"masjid-events/model"
	"net/url"
	"strings"
)

// Param is the query parameter that carries the deep-linked event id,
// planted by the push-notification payload.
const Param = "id"

type Outcome struct {
	// Deferred means the catalog is not ready yet; resolution has not been
	// consumed and should be attempted again.
	Deferred   bool
	Matched    bool
	OpenTicket bool
	Event      *model.Event
}

// Resolver reconciles an inbound event id against the loaded catalog.
// Each (visitor, candidate) pair resolves at most once; a Redis SetNX
// latch enforces that across repeated page loads.
type Resolver struct {
	Catalog *catalog.Store
	Cache   *redis.Client
}

func (r *Resolver) Resolve(ctx context.Context, visitorId, candidateId string) (Outcome, error) {
	ctx, span := otel.Tracer.Start(ctx, "deeplink.Resolve")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	candidateId = strings.TrimSpace(candidateId)
	if candidateId == "" {
		return Outcome{}, nil
	}

	// Never resolve against a partially loaded catalog. An empty snapshot
	// counts as not ready: a failed initial load must not burn the latch.
	if r.Catalog.State() != catalog.StateReady || len(r.Catalog.Events()) == 0 {
		slog.DebugContext(ctx, "deep link resolution deferred", traceIdAttr, slog.String("candidate_id", candidateId))
		return Outcome{Deferred: true}, nil
	}

	latchKey := fmt.Sprintf(constant.DeeplinkResolvedKey, visitorId, candidateId)
	acquired, err := r.Cache.SetNX(ctx, latchKey, true, constant.DeeplinkResolvedDefaultTTL).Result()
	if err != nil {
		slog.ErrorContext(ctx, "failed to set deep link latch", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		return Outcome{}, err
	}

	if !acquired {
		slog.DebugContext(ctx, "deep link already resolved", traceIdAttr, slog.String("candidate_id", candidateId))
		return Outcome{}, nil
	}

	ev, ok := r.Catalog.Find(candidateId)
	if !ok {
		// Stale or malformed deep link; reported, not swallowed.
		slog.WarnContext(ctx, "deep link target not found", traceIdAttr, slog.String("candidate_id", candidateId))
		return Outcome{}, nil
	}

	slog.InfoContext(ctx, "deep link resolved", traceIdAttr,
		slog.String("candidate_id", candidateId),
		slog.Bool("open_ticket", ev.TicketActive()))

	return Outcome{
		Matched:    true,
		OpenTicket: ev.TicketActive(),
		Event:      &ev,
	}, nil
}

// ScrubURL removes the deep-link parameter from a page URL. The caller
// applies the result with a history replace, never a push, so back
// navigation and refreshes cannot re-trigger resolution.
func ScrubURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	q := u.Query()
	q.Del(Param)
	u.RawQuery = q.Encode()

	return u.String(), nil
}
