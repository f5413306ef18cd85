package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/caloria-app/backend/internal/models"
)

// RedisStore keeps the profile document as a JSON blob under StorageKey.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a store backed by the given Redis client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Load() models.UserProfile {
	data, err := s.client.Get(context.Background(), StorageKey).Bytes()
	if err != nil {
		return models.DefaultProfile()
	}

	return decodeProfile(data)
}

func (s *RedisStore) Save(profile models.UserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	if err := s.client.Set(context.Background(), StorageKey, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save profile to Redis: %w", err)
	}

	return nil
}

// Close closes the underlying Redis client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
