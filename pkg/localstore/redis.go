package localstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/emberandoak/storefront-core/pkg/config"
	"github.com/redis/go-redis/v9"
)

const (
	keyNamespace = "sfc"
	recordPrefix = "record"
)

// Redis is a Storage holding each record as one namespaced redis string.
type Redis struct {
	raw *redis.Client
}

// NewRedis bootstraps a redis-backed Storage and verifies connectivity.
func NewRedis(ctx context.Context, cfg config.RedisConfig) (*Redis, error) {
	opts, err := optionsFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	raw := redis.NewClient(opts)
	if err := raw.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &Redis{raw: raw}, nil
}

func optionsFromConfig(cfg config.RedisConfig) (*redis.Options, error) {
	if cfg.URL == "" && cfg.Address == "" {
		return nil, errors.New("redis url or address is required")
	}
	var opts *redis.Options
	if cfg.URL != "" {
		parsed, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("parsing redis url: %w", err)
		}
		opts = parsed
	} else {
		opts = &redis.Options{
			Addr:     cfg.Address,
			Password: cfg.Password,
			DB:       cfg.DB,
		}
	}
	if opts.DB == 0 {
		opts.DB = cfg.DB
	}
	if opts.PoolSize == 0 {
		opts.PoolSize = cfg.PoolSize
	}
	if opts.MinIdleConns == 0 {
		opts.MinIdleConns = cfg.MinIdleConns
	}
	if opts.DialTimeout == 0 {
		opts.DialTimeout = cfg.DialTimeout
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = cfg.ReadTimeout
	}
	if opts.WriteTimeout == 0 {
		opts.WriteTimeout = cfg.WriteTimeout
	}
	return opts, nil
}

func (r *Redis) Read(ctx context.Context, key string) ([]byte, error) {
	if r.raw == nil {
		return nil, errors.New("redis client not initialized")
	}
	data, err := r.raw.Get(ctx, buildKey(recordPrefix, key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

func (r *Redis) Write(ctx context.Context, key string, data []byte) error {
	if r.raw == nil {
		return errors.New("redis client not initialized")
	}
	// Records are durable client state; no TTL.
	return r.raw.Set(ctx, buildKey(recordPrefix, key), data, 0).Err()
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	if r.raw == nil {
		return errors.New("redis client not initialized")
	}
	return r.raw.Del(ctx, buildKey(recordPrefix, key)).Err()
}

// Ping verifies the connection.
func (r *Redis) Ping(ctx context.Context) error {
	if r.raw == nil {
		return errors.New("redis client not initialized")
	}
	return r.raw.Ping(ctx).Err()
}

// Close shuts down the underlying client if available.
func (r *Redis) Close() error {
	if r.raw == nil {
		return nil
	}
	return r.raw.Close()
}

func buildKey(parts ...string) string {
	clean := []string{keyNamespace}
	for _, part := range parts {
		if part == "" {
			continue
		}
		clean = append(clean, strings.TrimSpace(part))
	}
	return strings.Join(clean, ":")
}
