package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/SergeyKozhin/reminder-bot/internal/conversation"
	"github.com/gomodule/redigo/redis"
	"go.uber.org/zap"
)

const sessionKeyPrefix = "session:"

// SessionRepository keeps conversation sessions in Redis. Every save resets
// the key's TTL, so abandoned conversations disappear on their own.
type SessionRepository struct {
	pool   *redis.Pool
	ttl    time.Duration
	logger *zap.SugaredLogger
}

func NewSessionRepository(pool *redis.Pool, ttl time.Duration, logger *zap.SugaredLogger) *SessionRepository {
	return &SessionRepository{
		pool:   pool,
		ttl:    ttl,
		logger: logger,
	}
}

func sessionKey(ownerID int64) string {
	return sessionKeyPrefix + strconv.FormatInt(ownerID, 10)
}

func (r *SessionRepository) Get(ctx context.Context, ownerID int64) (*conversation.Session, error) {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	data, err := redis.Bytes(conn.Do("GET", sessionKey(ownerID)))
	if errors.Is(err, redis.ErrNil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GET: %w", err)
	}

	var s conversation.Session
	if err := json.Unmarshal(data, &s); err != nil {
		r.logger.Warnw("dropping unreadable session", "owner_id", ownerID, "err", err)
		return nil, nil
	}

	return &s, nil
}

func (r *SessionRepository) Save(ctx context.Context, s *conversation.Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	args := []interface{}{sessionKey(s.OwnerID), data}
	if r.ttl > 0 {
		args = append(args, "PX", r.ttl.Milliseconds())
	}

	if _, err := conn.Do("SET", args...); err != nil {
		return fmt.Errorf("SET: %w", err)
	}

	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, ownerID int64) error {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	if _, err := conn.Do("DEL", sessionKey(ownerID)); err != nil {
		return fmt.Errorf("DEL: %w", err)
	}

	return nil
}
