package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	rd "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"orderflow/internal/apperr"
	"orderflow/internal/logger"
)

const catalogKey = "CATALOG"

// RedisConfig configures the redis-backed catalog store.
type RedisConfig struct {
	Addrs     []string
	Namespace string
}

// Redis stores the catalog in a redis hash, one JSON-encoded restaurant
// per lowercased name, under a namespaced key.
type Redis struct {
	client    rd.UniversalClient
	namespace string
}

// NewRedis connects a Redis store.
func NewRedis(conf RedisConfig) *Redis {
	client := rd.NewUniversalClient(&rd.UniversalOptions{
		Addrs: conf.Addrs,
	})
	return &Redis{
		client:    client,
		namespace: conf.Namespace,
	}
}

func (s *Redis) key() string {
	return fmt.Sprintf("%s:%s", s.namespace, catalogKey)
}

// Find implements Store.
func (s *Redis) Find(ctx context.Context, name string) (*Restaurant, error) {
	val, err := s.client.HGet(ctx, s.key(), strings.ToLower(name)).Result()
	if err == rd.Nil {
		return nil, fmt.Errorf("catalog: %q: %w", name, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("catalog: redis get: %w", err)
	}
	var r Restaurant
	if err := json.Unmarshal([]byte(val), &r); err != nil {
		return nil, fmt.Errorf("catalog: decode %q: %w", name, err)
	}
	return &r, nil
}

// SeedIfEmpty populates the hash with the given restaurants when the
// namespace holds no catalog yet.
func (s *Redis) SeedIfEmpty(ctx context.Context, restaurants []Restaurant) error {
	n, err := s.client.HLen(ctx, s.key()).Result()
	if err != nil {
		return fmt.Errorf("catalog: redis len: %w", err)
	}
	if n > 0 {
		return nil
	}
	fields := make([]string, 0, 2*len(restaurants))
	for _, r := range restaurants {
		data, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("catalog: encode %q: %w", r.Name, err)
		}
		fields = append(fields, strings.ToLower(r.Name), string(data))
	}
	if err := s.client.HSet(ctx, s.key(), fields).Err(); err != nil {
		return fmt.Errorf("catalog: redis seed: %w", err)
	}
	logger.Info("seeded catalog", zap.Int("restaurants", len(restaurants)))
	return nil
}

// Close releases the redis connection.
func (s *Redis) Close() error {
	return s.client.Close()
}
