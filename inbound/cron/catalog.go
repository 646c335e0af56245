package cron

import (
	"context"
	"github.com/spf13/viper"
	"log/slog"
	"masjid-events/catalog"
	"time"
)

// CatalogCron re-invokes the catalog load on an interval. This is the
// application-level refresh policy; each tick is one explicit, fail-soft
// snapshot reload.
type CatalogCron struct {
	Cfg   *viper.Viper
	Store *catalog.Store
}

func (in CatalogCron) Start(ctx context.Context) {
	refreshTicker := time.NewTicker(in.Cfg.GetDuration("cron.catalog.refresh.interval"))
	defer refreshTicker.Stop()

	// Run initial load
	in.refresh(ctx)

	slog.Info("catalog cron started")

	for {
		select {
		case <-refreshTicker.C:
			in.refresh(ctx)
		case <-ctx.Done():
			slog.Info("catalog cron stopped")
			return
		}
	}
}

func (in CatalogCron) refresh(ctx context.Context) {
	timeout := in.Cfg.GetDuration("cron.catalog.refresh.timeout")
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	in.Store.Load(ctx)
}
