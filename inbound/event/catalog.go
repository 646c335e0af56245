package event

import (
	"context"
	"encoding/json"
	"log/slog"
	"masjid-events/catalog"
	"masjid-events/common"
	"masjid-events/common/constant"
	"masjid-events/common/otel"
	"masjid-events/model"
	"time"
)

// CatalogEvent reloads the event catalog when the admin CMS publishes a
// refresh message. Each message is one explicit Load invocation; the load
// itself is fail soft, so the message is always consumable.
type CatalogEvent struct {
	Store   *catalog.Store
	Timeout time.Duration
}

func (in CatalogEvent) RefreshHandler(ctx context.Context, msg []byte) error {
	ctx, cancel := context.WithTimeout(ctx, in.Timeout)
	defer cancel()

	var req model.CatalogRefreshEventMessage
	err := json.Unmarshal(msg, &req)
	if err != nil {
		slog.WarnContext(ctx, "catalog refresh event unmarshal error", slog.Any(constant.LogFieldErr, err))
		return nil
	}

	ctx, span := otel.Tracer.Start(ctx, "CatalogEvent.RefreshHandler")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	slog.InfoContext(ctx, "catalog refresh event receive request", slog.Any(constant.LogFieldPayload, req), traceIdAttr)

	in.Store.Load(ctx)

	return nil
}
