package cmd

import (
	"context"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/nats-io/nats.go"
	"log"
	"log/slog"
	"masjid-events/booking"
	"masjid-events/catalog"
	"masjid-events/common/constant"
	"masjid-events/deeplink"
	inboundCron "masjid-events/inbound/cron"
	inboundEvent "masjid-events/inbound/event"
	inboundHttp "masjid-events/inbound/http"
	"net/http"
	"os"
	"runtime/pprof"
	"time"
)

func runHttpServerCmd(ctx context.Context) {
	cfg := newCfg("env")

	if cfg.GetString("env") == "dev" {
		cpu, err := os.Create("http-cpu.prof")
		if err != nil {
			log.Fatalf("could not create CPU profile: %v", err)
		}
		defer cpu.Close()

		err = pprof.StartCPUProfile(cpu)
		if err != nil {
			log.Fatalf("could not start CPU profile: %v", err)
		}
		defer pprof.StopCPUProfile()

		mem, err := os.Create("http-mem.prof")
		if err != nil {
			log.Fatalf("could not create memory profile: %v", err)
		}
		defer mem.Close()

		err = pprof.WriteHeapProfile(mem)
		if err != nil {
			log.Fatalf("could not write memory profile: %v", err)
		}
	}

	shutdownTracer := initTracer(ctx, cfg)
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			slog.Error("unable to shutdown tracer", slog.Any("err", err))
		}
	}()

	validate := validator.New()

	cacheClient := newRedis(cfg)
	defer cacheClient.Close()

	natsConn := newNats(cfg)
	defer natsConn.Close()

	js := newJs(natsConn)
	createStreamWorkQueue(ctx, js)

	siteClient := newSiteClient(cfg)

	catalogStore := catalog.NewStore(siteClient)

	catalogEvent := inboundEvent.CatalogEvent{
		Store:   catalogStore,
		Timeout: cfg.GetDuration("queue.catalog.timeout"),
	}

	// The snapshot lives in this process, so a CMS refresh must land on every
	// serving instance. A plain subscription fans out; the work-queue stream
	// would deliver each refresh to a single subscriber.
	refreshSub, err := natsConn.Subscribe(constant.SubjectCatalogRefresh, func(msg *nats.Msg) {
		if err := catalogEvent.RefreshHandler(ctx, msg.Data); err != nil {
			slog.ErrorContext(ctx, "catalog refresh failed", slog.Any(constant.LogFieldErr, err))
		}
	})
	if err != nil {
		log.Fatalln("unable to subscribe to catalog refresh", err)
	}
	defer refreshSub.Unsubscribe()

	sessions := booking.NewRedisSessionStore(cacheClient, cfg.GetDuration("booking.session_ttl"))
	submitter := &booking.Submitter{
		Auth:     siteClient,
		Orders:   siteClient,
		Validate: validate,
	}
	machine := booking.NewMachine(catalogStore, sessions, cacheClient, submitter, js)

	resolver := &deeplink.Resolver{
		Catalog: catalogStore,
		Cache:   cacheClient,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		slog.DebugContext(r.Context(), "health check")
		w.WriteHeader(http.StatusOK)
	})

	timeoutMiddleware := inboundHttp.TimeoutMiddleware(20 * time.Second)

	inboundHttp.RegisterEventHttp(mux, catalogStore)
	inboundHttp.RegisterCalendarHttp(mux, catalogStore)
	inboundHttp.RegisterDeeplinkHttp(mux, resolver)
	inboundHttp.RegisterBookingHttp(mux, machine, validate)

	catalogCron := &inboundCron.CatalogCron{
		Cfg:   cfg,
		Store: catalogStore,
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.GetInt("server.port")),
		Handler:           timeoutMiddleware(inboundHttp.CorsMiddleware(mux)),
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalln("unable to start server", err)
		}
	}()

	slog.Info("http server started")

	go func() {
		catalogCron.Start(ctx)
	}()

	<-ctx.Done()

	ctxShutDown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutDown); err != nil {
		log.Fatalln("unable to shutdown server", err)
	}

	slog.Info("http server stopped")
}
