package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Metas-api/internal/application/dto"
	"github.com/jhoicas/Metas-api/pkg/config"
)

func TestNewProgressCache_DeshabilitadaEsNula(t *testing.T) {
	c, closeFn, err := NewProgressCache(config.CacheConfig{Enabled: false})
	require.NoError(t, err)
	require.NoError(t, closeFn())

	ctx := context.Background()
	require.NoError(t, c.SetProgress(ctx, "t-1", &dto.TargetProgressDTO{TargetID: "t-1"}))
	got, ok, err := c.GetProgress(ctx, "t-1")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
	assert.NoError(t, c.InvalidateTarget(ctx, "t-1"))
}

func TestBuildRedisOptions(t *testing.T) {
	opts, err := buildRedisOptions(config.CacheConfig{URL: "redis://:clave@cache:6380/3"})
	require.NoError(t, err)
	assert.Equal(t, "cache:6380", opts.Addr)
	assert.Equal(t, "clave", opts.Password)
	assert.Equal(t, 3, opts.DB)

	opts, err = buildRedisOptions(config.CacheConfig{Host: "redis", Port: 6379, DB: 1})
	require.NoError(t, err)
	assert.Equal(t, "redis:6379", opts.Addr)
	assert.Equal(t, 1, opts.DB)

	_, err = buildRedisOptions(config.CacheConfig{URL: "http://no-es-redis"})
	assert.Error(t, err)
}

func TestProgressKey(t *testing.T) {
	assert.Equal(t, "metas:progress:abc", progressKey("abc"))
}
