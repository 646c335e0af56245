package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"masjid-events/common/constant"
	"masjid-events/common/errs"
	"masjid-events/model"
	"testing"
	"time"
)

type RedisSessionStoreTestSuite struct {
	suite.Suite

	Cache     *redis.Client
	CacheMock redismock.ClientMock

	store *RedisSessionStore
}

func (s *RedisSessionStoreTestSuite) SetupTest() {
	rdb, mock := redismock.NewClientMock()
	s.Cache = rdb
	s.CacheMock = mock

	s.store = NewRedisSessionStore(rdb, 30*time.Minute)
}

func TestRedisSessionStoreTestSuite(t *testing.T) {
	suite.Run(t, new(RedisSessionStoreTestSuite))
}

func (s *RedisSessionStoreTestSuite) sampleSession() *Session {
	return &Session{
		Id:            "sess-1",
		EventId:       "ev-1",
		Quantity:      2,
		PaymentMethod: model.PaymentMethodWave,
		Phase:         model.BookingPhaseSelection,
		CreatedAt:     time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC),
	}
}

func (s *RedisSessionStoreTestSuite) TestSave() {
	sess := s.sampleSession()

	data, err := json.Marshal(sess)
	s.Require().NoError(err)

	s.CacheMock.ExpectSet(fmt.Sprintf(constant.BookingSessionKey, "sess-1"), data, 30*time.Minute).
		SetVal("OK")

	s.NoError(s.store.Save(context.Background(), sess))
	s.NoError(s.CacheMock.ExpectationsWereMet())
}

func (s *RedisSessionStoreTestSuite) TestGet() {
	sess := s.sampleSession()

	data, err := json.Marshal(sess)
	s.Require().NoError(err)

	s.CacheMock.ExpectGet(fmt.Sprintf(constant.BookingSessionKey, "sess-1")).
		SetVal(string(data))

	got, err := s.store.Get(context.Background(), "sess-1")

	s.Require().NoError(err)
	s.Equal(sess, got)
}

func (s *RedisSessionStoreTestSuite) TestGetMissing() {
	s.CacheMock.ExpectGet(fmt.Sprintf(constant.BookingSessionKey, "sess-404")).
		RedisNil()

	_, err := s.store.Get(context.Background(), "sess-404")

	s.ErrorIs(err, errs.ErrSessionNotFound)
}

func (s *RedisSessionStoreTestSuite) TestGetCacheError() {
	s.CacheMock.ExpectGet(fmt.Sprintf(constant.BookingSessionKey, "sess-1")).
		SetErr(redis.ErrClosed)

	_, err := s.store.Get(context.Background(), "sess-1")

	s.Error(err)
	s.NotErrorIs(err, errs.ErrSessionNotFound)
}

func (s *RedisSessionStoreTestSuite) TestDelete() {
	s.CacheMock.ExpectDel(fmt.Sprintf(constant.BookingSessionKey, "sess-1")).
		SetVal(1)

	s.NoError(s.store.Delete(context.Background(), "sess-1"))
	s.NoError(s.CacheMock.ExpectationsWereMet())
}

func (s *RedisSessionStoreTestSuite) TestExists() {
	s.CacheMock.ExpectExists(fmt.Sprintf(constant.BookingSessionKey, "sess-1")).
		SetVal(1)

	exists, err := s.store.Exists(context.Background(), "sess-1")

	s.NoError(err)
	s.True(exists)

	s.CacheMock.ExpectExists(fmt.Sprintf(constant.BookingSessionKey, "sess-2")).
		SetVal(0)

	exists, err = s.store.Exists(context.Background(), "sess-2")

	s.NoError(err)
	s.False(exists)
}

func (s *RedisSessionStoreTestSuite) TestDefaultTTL() {
	store := NewRedisSessionStore(s.Cache, 0)

	s.Equal(constant.BookingSessionDefaultTTL, store.Ttl)
}
