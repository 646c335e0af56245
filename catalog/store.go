package catalog

import (
	"context"
	"log/slog"
	"masjid-events/common"
	"masjid-events/common/constant"
	"masjid-events/common/otel"
	"masjid-events/model"
	"sort"
	"sync/atomic"
	"time"
)

type State int32

const (
	StateIdle State = iota
	StateLoading
	StateReady
)

type Lister interface {
	ListEvents(ctx context.Context) ([]model.Event, error)
}

// Store holds the point-in-time event catalog snapshot. The snapshot is
// read-mostly and swapped atomically, so readers never block; it changes
// only through an explicit Load.
type Store struct {
	Api Lister

	state    atomic.Int32
	snapshot atomic.Pointer[[]model.Event]
}

func NewStore(api Lister) *Store {
	return &Store{Api: api}
}

// Load fetches the full event collection, sorts it ascending by date and
// publishes it as the new snapshot. Fail soft: a transport failure is
// logged and the previous snapshot (initially empty) stays in place; the
// caller never sees an error.
func (s *Store) Load(ctx context.Context) {
	ctx, span := otel.Tracer.Start(ctx, "catalog.Load")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	s.state.CompareAndSwap(int32(StateIdle), int32(StateLoading))

	events, err := s.Api.ListEvents(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "catalog load failed", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		s.state.Store(int32(StateReady))
		return
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})

	s.snapshot.Store(&events)
	s.state.Store(int32(StateReady))

	slog.InfoContext(ctx, "catalog loaded", traceIdAttr, slog.Int("count", len(events)))
}

func (s *Store) State() State {
	return State(s.state.Load())
}

// Events returns the current ordered snapshot.
func (s *Store) Events() []model.Event {
	ptr := s.snapshot.Load()
	if ptr == nil {
		return nil
	}
	return *ptr
}

// Find looks an event up by its normalized id.
func (s *Store) Find(id string) (model.Event, bool) {
	for _, ev := range s.Events() {
		if ev.Id.String() == id {
			return ev, true
		}
	}
	return model.Event{}, false
}

// Featured returns the earliest event dated now or later, falling back to
// the latest event overall. Nil only for an empty catalog.
func (s *Store) Featured(now time.Time) *model.Event {
	events := s.Events()
	if len(events) == 0 {
		return nil
	}

	for i := range events {
		if !events[i].Date.Before(now) {
			return &events[i]
		}
	}

	return &events[len(events)-1]
}
