package http

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/suite"
	"masjid-events/catalog"
	"masjid-events/common/constant"
	"masjid-events/deeplink"
	"masjid-events/model"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"
)

type DeeplinkHttpTestSuite struct {
	suite.Suite

	lister    *stubLister
	store     *catalog.Store
	CacheMock redismock.ClientMock

	deeplinkHttp *DeeplinkHttp
}

func (s *DeeplinkHttpTestSuite) SetupTest() {
	rdb, mock := redismock.NewClientMock()
	s.CacheMock = mock

	s.lister = &stubLister{}
	s.store = catalog.NewStore(s.lister)

	s.deeplinkHttp = RegisterDeeplinkHttp(http.NewServeMux(), &deeplink.Resolver{
		Catalog: s.store,
		Cache:   rdb,
	})
}

func TestDeeplinkHttpTestSuite(t *testing.T) {
	suite.Run(t, new(DeeplinkHttpTestSuite))
}

func (s *DeeplinkHttpTestSuite) resolve(target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()

	s.deeplinkHttp.resolve(w, req)

	return w
}

func (s *DeeplinkHttpTestSuite) TestMissingId() {
	w := s.resolve("/api/deeplink?visitor=v-1")

	s.Equal(http.StatusBadRequest, w.Code)
	s.JSONEq(`{"error":"Missing deep link id"}`, w.Body.String())
}

func (s *DeeplinkHttpTestSuite) TestMissingVisitor() {
	w := s.resolve("/api/deeplink?id=ev-1")

	s.Equal(http.StatusBadRequest, w.Code)
	s.JSONEq(`{"error":"Missing visitor id"}`, w.Body.String())
}

func (s *DeeplinkHttpTestSuite) TestDeferredKeepsUrlIntact() {
	pageUrl := url.QueryEscape("https://example.org/events?id=ev-1")
	w := s.resolve("/api/deeplink?id=ev-1&visitor=v-1&url=" + pageUrl)

	s.Equal(http.StatusOK, w.Code)

	var resp model.DeeplinkResolveResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))

	s.True(resp.Deferred)
	s.False(resp.Matched)
	s.Empty(resp.CleanUrl, "a deferred resolution keeps the parameter for the retry")
	s.NoError(s.CacheMock.ExpectationsWereMet())
}

func (s *DeeplinkHttpTestSuite) TestResolvedWithScrubbedUrl() {
	s.lister.events = []model.Event{ticketedEvent("ev-1", day(2025, time.June, 20))}
	s.store.Load(context.Background())

	s.CacheMock.ExpectSetNX(
		fmt.Sprintf(constant.DeeplinkResolvedKey, "v-1", "ev-1"),
		true,
		constant.DeeplinkResolvedDefaultTTL,
	).SetVal(true)

	pageUrl := url.QueryEscape("https://example.org/events?id=ev-1&lang=fr")
	w := s.resolve("/api/deeplink?id=ev-1&visitor=v-1&url=" + pageUrl)

	s.Equal(http.StatusOK, w.Code)

	var resp model.DeeplinkResolveResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))

	s.True(resp.Matched)
	s.True(resp.OpenTicket)
	s.Require().NotNil(resp.Event)
	s.Equal("ev-1", resp.Event.Id.String())
	s.Equal("https://example.org/events?lang=fr", resp.CleanUrl)
	s.NoError(s.CacheMock.ExpectationsWereMet())
}

func (s *DeeplinkHttpTestSuite) TestAlreadyResolved() {
	s.lister.events = []model.Event{ticketedEvent("ev-1", day(2025, time.June, 20))}
	s.store.Load(context.Background())

	s.CacheMock.ExpectSetNX(
		fmt.Sprintf(constant.DeeplinkResolvedKey, "v-1", "ev-1"),
		true,
		constant.DeeplinkResolvedDefaultTTL,
	).SetVal(false)

	w := s.resolve("/api/deeplink?id=ev-1&visitor=v-1")

	s.Equal(http.StatusOK, w.Code)

	var resp model.DeeplinkResolveResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))

	s.False(resp.Matched)
	s.False(resp.Deferred)
}
