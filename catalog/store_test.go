package catalog

import (
	"context"
	"fmt"
	"github.com/stretchr/testify/suite"
	"log/slog"
	"masjid-events/model"
	"testing"
	"time"
)

type stubLister struct {
	events []model.Event
	err    error
}

func (s *stubLister) ListEvents(ctx context.Context) ([]model.Event, error) {
	return s.events, s.err
}

type StoreTestSuite struct {
	suite.Suite

	lister *stubLister
	store  *Store
}

func (s *StoreTestSuite) SetupTest() {
	s.lister = &stubLister{}
	s.store = NewStore(s.lister)

	slog.SetLogLoggerLevel(slog.LevelDebug)
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func event(id string, date time.Time) model.Event {
	return model.Event{Id: model.EventID(id), Title: id, Date: date, HasTicket: true}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *StoreTestSuite) TestLoadSortsByDate() {
	s.lister.events = []model.Event{
		event("ev-late", day(2025, time.March, 1)),
		event("ev-early", day(2025, time.January, 10)),
		event("ev-mid", day(2025, time.February, 5)),
	}

	s.store.Load(context.Background())

	s.Equal(StateReady, s.store.State())

	events := s.store.Events()
	s.Require().Len(events, 3)
	s.Equal("ev-early", events[0].Id.String())
	s.Equal("ev-mid", events[1].Id.String())
	s.Equal("ev-late", events[2].Id.String())
}

func (s *StoreTestSuite) TestLoadFailSoft() {
	s.lister.events = []model.Event{event("ev-1", day(2025, time.January, 10))}
	s.store.Load(context.Background())
	s.Require().Len(s.store.Events(), 1)

	s.lister.events = nil
	s.lister.err = fmt.Errorf("upstream down")
	s.store.Load(context.Background())

	s.Equal(StateReady, s.store.State(), "a failed refresh still ends ready")
	s.Len(s.store.Events(), 1, "previous snapshot survives a failed refresh")
}

func (s *StoreTestSuite) TestStateProgression() {
	s.Equal(StateIdle, s.store.State())

	s.store.Load(context.Background())

	s.Equal(StateReady, s.store.State())
}

func (s *StoreTestSuite) TestFind() {
	s.lister.events = []model.Event{
		event("ev-1", day(2025, time.January, 10)),
		event("ev-2", day(2025, time.February, 5)),
	}
	s.store.Load(context.Background())

	ev, ok := s.store.Find("ev-2")
	s.True(ok)
	s.Equal("ev-2", ev.Id.String())

	_, ok = s.store.Find("ev-404")
	s.False(ok)
}

func (s *StoreTestSuite) TestFeatured() {
	now := day(2025, time.February, 1)

	tests := []struct {
		name       string
		events     []model.Event
		expectedId string
		expectNil  bool
	}{
		{
			name: "earliest upcoming wins",
			events: []model.Event{
				event("ev-past", day(2025, time.January, 10)),
				event("ev-next", day(2025, time.February, 15)),
				event("ev-later", day(2025, time.March, 1)),
			},
			expectedId: "ev-next",
		},
		{
			name: "event exactly now counts as upcoming",
			events: []model.Event{
				event("ev-past", day(2025, time.January, 10)),
				event("ev-today", now),
			},
			expectedId: "ev-today",
		},
		{
			name: "all past falls back to latest",
			events: []model.Event{
				event("ev-old", day(2024, time.November, 1)),
				event("ev-recent", day(2025, time.January, 20)),
			},
			expectedId: "ev-recent",
		},
		{
			name:      "empty catalog",
			events:    nil,
			expectNil: true,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.lister.events = tc.events
			s.lister.err = nil
			s.store = NewStore(s.lister)
			s.store.Load(context.Background())

			featured := s.store.Featured(now)

			if tc.expectNil {
				s.Nil(featured)
				return
			}

			s.Require().NotNil(featured)
			s.Equal(tc.expectedId, featured.Id.String())
		})
	}
}
