// Package cache guarda en Redis el reporte de avance de metas (meta vs venta real).
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/Metas-api/internal/application/dto"
	"github.com/jhoicas/Metas-api/internal/application/targets"
	"github.com/jhoicas/Metas-api/pkg/config"
)

const (
	progressKeyPrefix = "metas:progress:"
	defaultTTL        = 5 * time.Minute
	pingTimeout       = 5 * time.Second
)

var (
	_ targets.ProgressCache = (*redisProgressCache)(nil)
	_ targets.ProgressCache = noopProgressCache{}
)

type redisProgressCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopProgressCache struct{}

// NewProgressCache devuelve la caché Redis si está habilitada; si no, una que nunca encuentra nada.
// Falla si Redis no responde al ping inicial.
func NewProgressCache(cfg config.CacheConfig) (targets.ProgressCache, func() error, error) {
	if !cfg.Enabled {
		return noopProgressCache{}, func() error { return nil }, nil
	}
	opts, err := buildRedisOptions(cfg)
	if err != nil {
		return nil, nil, err
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("redis ping failed: %w", err)
	}

	ttl := cfg.TTL()
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &redisProgressCache{client: client, ttl: ttl}, client.Close, nil
}

// NewNoopProgressCache caché deshabilitada.
func NewNoopProgressCache() targets.ProgressCache { return noopProgressCache{} }

func (c *redisProgressCache) GetProgress(ctx context.Context, targetID string) (*dto.TargetProgressDTO, bool, error) {
	payload, err := c.client.Get(ctx, progressKey(targetID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}
	var p dto.TargetProgressDTO
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, false, fmt.Errorf("decode progress cache: %w", err)
	}
	return &p, true, nil
}

func (c *redisProgressCache) SetProgress(ctx context.Context, targetID string, progress *dto.TargetProgressDTO) error {
	payload, err := json.Marshal(progress)
	if err != nil {
		return fmt.Errorf("encode progress cache: %w", err)
	}
	if err := c.client.Set(ctx, progressKey(targetID), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (c *redisProgressCache) InvalidateTarget(ctx context.Context, targetID string) error {
	if err := c.client.Del(ctx, progressKey(targetID)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func (noopProgressCache) GetProgress(context.Context, string) (*dto.TargetProgressDTO, bool, error) {
	return nil, false, nil
}

func (noopProgressCache) SetProgress(context.Context, string, *dto.TargetProgressDTO) error {
	return nil
}

func (noopProgressCache) InvalidateTarget(context.Context, string) error { return nil }

func buildRedisOptions(cfg config.CacheConfig) (*redis.Options, error) {
	if cfg.URL != "" {
		opt, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("invalid redis url: %w", err)
		}
		return opt, nil
	}
	host := cfg.Host
	if host == "" {
		host = "127.0.0.1"
	}
	port := cfg.Port
	if port == 0 {
		port = 6379
	}
	return &redis.Options{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		Password: cfg.Password,
		DB:       cfg.DB,
	}, nil
}

func progressKey(targetID string) string {
	return progressKeyPrefix + targetID
}
