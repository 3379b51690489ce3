package session

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "alumnet:session:"

// RedisStore keeps sessions as Redis hashes that expire after ttl
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisStore creates a new RedisStore
func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func sessionKey(id string) string {
	return keyPrefix + id
}

// TTL returns how long a session lives
func (s *RedisStore) TTL() time.Duration {
	return s.ttl
}

// Create stores a new session bound to personID and role
func (s *RedisStore) Create(ctx context.Context, personID int64, role Role) (Session, error) {
	if !role.Valid() {
		return Session{}, fmt.Errorf("invalid session role %q", role)
	}

	id := uuid.New().String()
	key := sessionKey(id)

	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, "person_id", personID, "role", string(role))
		pipe.Expire(ctx, key, s.ttl)
		return nil
	})
	if err != nil {
		return Session{}, fmt.Errorf("failed to store session: %w", err)
	}

	return New(id, personID, role), nil
}

// Get loads a session by id
func (s *RedisStore) Get(ctx context.Context, id string) (Session, error) {
	if id == "" {
		return Session{}, ErrSessionNotFound
	}

	values, err := s.rdb.HGetAll(ctx, sessionKey(id)).Result()
	if err != nil {
		return Session{}, fmt.Errorf("failed to load session: %w", err)
	}
	if len(values) == 0 {
		return Session{}, ErrSessionNotFound
	}

	personID, err := strconv.ParseInt(values["person_id"], 10, 64)
	if err != nil || personID <= 0 {
		return Session{}, ErrSessionNotFound
	}
	role := Role(values["role"])
	if !role.Valid() {
		return Session{}, ErrSessionNotFound
	}

	return New(id, personID, role), nil
}

// Delete removes a session; deleting an unknown id is not an error
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	if err := s.rdb.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
