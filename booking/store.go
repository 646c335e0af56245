package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/redis/go-redis/v9"
	"masjid-events/common/constant"
	"masjid-events/common/errs"
	"time"
)

// SessionStore owns booking-session lifecycle. The interface exists so the
// state machine can be exercised without Redis in tests.
type SessionStore interface {
	Save(ctx context.Context, sess *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
}

// RedisSessionStore keeps sessions as JSON values with a TTL, replacing the
// browser-local session flags the site previously scattered around.
type RedisSessionStore struct {
	Cache *redis.Client
	Ttl   time.Duration
}

func NewRedisSessionStore(cache *redis.Client, ttl time.Duration) *RedisSessionStore {
	if ttl <= 0 {
		ttl = constant.BookingSessionDefaultTTL
	}
	return &RedisSessionStore{Cache: cache, Ttl: ttl}
}

func (s *RedisSessionStore) Save(ctx context.Context, sess *Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	return s.Cache.Set(ctx, fmt.Sprintf(constant.BookingSessionKey, sess.Id), data, s.Ttl).Err()
}

func (s *RedisSessionStore) Get(ctx context.Context, id string) (*Session, error) {
	data, err := s.Cache.Get(ctx, fmt.Sprintf(constant.BookingSessionKey, id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, errs.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, err
	}

	return &sess, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	return s.Cache.Del(ctx, fmt.Sprintf(constant.BookingSessionKey, id)).Err()
}

func (s *RedisSessionStore) Exists(ctx context.Context, id string) (bool, error) {
	n, err := s.Cache.Exists(ctx, fmt.Sprintf(constant.BookingSessionKey, id)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
