package session

import (
	"context"
	"errors"
	"time"

	sessionerrors "elms-portal/internal/session/errors"
	"elms-portal/internal/shared/apperror"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisStore keeps each session as a hash under session:<sid>.
type RedisStore struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration, logger ...*zap.Logger) *RedisStore {
	l := zap.L().Named("session.redis")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("session.redis")
	}
	return &RedisStore{rdb: rdb, ttl: ttl, logger: l}
}

func Key(sid string) string {
	return "session:" + sid
}

func (s *RedisStore) Get(ctx context.Context, sid, key string) (string, bool, error) {
	v, err := s.rdb.HGet(ctx, Key(sid), key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		s.logger.Error("hget failed", zap.String("sid", sid), zap.String("key", key), zap.Error(err))
		return "", false, apperror.Wrap(err, sessionerrors.ErrStoreUnavailable.Code, sessionerrors.ErrStoreUnavailable.Message, sessionerrors.ErrStoreUnavailable.HTTPStatus)
	}
	return v, true, nil
}

func (s *RedisStore) Set(ctx context.Context, sid, key, value string) error {
	if err := s.rdb.HSet(ctx, Key(sid), key, value).Err(); err != nil {
		s.logger.Error("hset failed", zap.String("sid", sid), zap.String("key", key), zap.Error(err))
		return apperror.Wrap(err, sessionerrors.ErrStoreUnavailable.Code, sessionerrors.ErrStoreUnavailable.Message, sessionerrors.ErrStoreUnavailable.HTTPStatus)
	}
	if s.ttl > 0 {
		if err := s.rdb.Expire(ctx, Key(sid), s.ttl).Err(); err != nil {
			s.logger.Warn("expire failed", zap.String("sid", sid), zap.Error(err))
		}
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context, sid string) error {
	if err := s.rdb.Del(ctx, Key(sid)).Err(); err != nil {
		s.logger.Error("del failed", zap.String("sid", sid), zap.Error(err))
		return apperror.Wrap(err, sessionerrors.ErrStoreUnavailable.Code, sessionerrors.ErrStoreUnavailable.Message, sessionerrors.ErrStoreUnavailable.HTTPStatus)
	}
	return nil
}
