package storage

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"weathertext.app/internal/config"
	"weathertext.app/pkg/errors"
)

// RedisSettingsStore keeps the settings blob under a single Redis key
type RedisSettingsStore struct {
	client *redis.Client
	key    string
}

// NewRedisSettingsStore connects to Redis and verifies the connection
func NewRedisSettingsStore(cfg *config.RedisConfig, key string) (*RedisSettingsStore, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("redis config cannot be nil", nil)
	}
	if key == "" {
		return nil, errors.NewConfigurationError("settings redis key cannot be empty", nil)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  time.Duration(cfg.DialTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.NewStorageError("failed to connect to Redis", err)
	}

	return &RedisSettingsStore{client: client, key: key}, nil
}

// Load returns the stored blob, or nil when the key is absent
func (s *RedisSettingsStore) Load(ctx context.Context) ([]byte, error) {
	val, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, errors.NewStorageError("redis get operation failed", err)
	}
	return val, nil
}

// Save stores the blob without expiry
func (s *RedisSettingsStore) Save(ctx context.Context, data []byte) error {
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return errors.NewStorageError("redis set operation failed", err)
	}
	return nil
}

// GetStoreName returns the name of this store
func (s *RedisSettingsStore) GetStoreName() string {
	return "redis"
}

// Ping checks if Redis connection is alive
func (s *RedisSettingsStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return errors.NewStorageError("Redis ping failed", err)
	}
	return nil
}

// Close closes the Redis client connection
func (s *RedisSettingsStore) Close() error {
	if err := s.client.Close(); err != nil {
		return errors.NewStorageError("failed to close Redis connection", err)
	}
	return nil
}
