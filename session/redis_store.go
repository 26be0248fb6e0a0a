package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// ErrRedisUnavailable wraps connectivity failures from the Redis store so
// callers can distinguish "no session" from "cannot reach storage".
var ErrRedisUnavailable = errors.New("session redis unavailable")

// RedisStore keeps the session record in a Redis hash, one field per
// storage key with roles JSON-encoded, mirroring the localStorage schema.
// Useful when the SDK runs inside a service that already carries a Redis
// connection and wants sessions shared across replicas.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore returns a store writing under prefix (defaults to
// "catalogkit") at the hash key "<prefix>:session".
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "catalogkit"
	}
	return &RedisStore{client: client, key: prefix + ":session"}
}

// Load implements [Store].
func (s *RedisStore) Load(ctx context.Context) (Record, error) {
	fields, err := s.client.HGetAll(ctx, s.key).Result()
	if err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	if len(fields) == 0 {
		return Record{}, nil
	}

	rec := Record{
		Token:    fields[keyToken],
		Username: fields[keyUserName],
	}
	if raw, ok := fields[keyRoles]; ok && raw != "" {
		if err := json.Unmarshal([]byte(raw), &rec.Roles); err != nil {
			return Record{}, fmt.Errorf("parsing roles field: %w", err)
		}
	}
	return rec, nil
}

// Save implements [Store]. The hash is replaced in one MULTI/EXEC so
// readers never observe a partial record.
func (s *RedisStore) Save(ctx context.Context, rec Record) error {
	roles, err := json.Marshal(rec.Roles)
	if err != nil {
		return fmt.Errorf("encoding roles field: %w", err)
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, s.key)
		pipe.HSet(ctx, s.key,
			keyToken, rec.Token,
			keyRoles, string(roles),
			keyUserName, rec.Username,
		)
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return nil
}

// Clear implements [Store].
func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return nil
}
