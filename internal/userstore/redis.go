package userstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "user:"

// RedisStore is a Store backed by Redis. Users are stored as JSON under
// "user:<id>".
type RedisStore struct {
	redis *redis.Client
}

// NewRedisStore wraps an existing client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{redis: client}
}

// OpenRedis connects to the server at url (redis://...) and checks it
// answers.
func OpenRedis(ctx context.Context, url string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return NewRedisStore(client), nil
}

func (s *RedisStore) key(id uuid.UUID) string {
	return keyPrefix + id.String()
}

// Get implements Store.
func (s *RedisStore) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	data, err := s.redis.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("could not load user %s: %w", id, err)
	}

	var user User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("could not decode user %s: %w", id, err)
	}
	return &user, nil
}

// Put implements Store.
func (s *RedisStore) Put(ctx context.Context, user *User) error {
	if user == nil || user.ID == uuid.Nil {
		return errors.New("user id is required")
	}

	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("could not encode user %s: %w", user.ID, err)
	}
	if err := s.redis.Set(ctx, s.key(user.ID), data, 0).Err(); err != nil {
		return fmt.Errorf("could not store user %s: %w", user.ID, err)
	}
	return nil
}

// Close closes the underlying client.
func (s *RedisStore) Close() error {
	return s.redis.Close()
}
