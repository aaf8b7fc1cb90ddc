package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/southsideweekly/contributor-hub/internal/domain"
	"go.uber.org/zap"
)

const (
	viewKeyPrefix = "pitch:view:"
	viewTTL       = 5 * time.Minute
	pingTimeout   = 5 * time.Second
)

// ViewCache is the read-through cache for aggregated pitch views. A cache
// problem is never fatal: callers fall back to recomputing the view.
type ViewCache interface {
	Get(ctx context.Context, pitchId string) (*domain.AggregatedPitch, bool)
	Set(ctx context.Context, pitchId string, view *domain.AggregatedPitch)
	Invalidate(ctx context.Context, pitchId string)
}

type RedisViewCache struct {
	rdb *redis.Client
	log *zap.Logger
}

func NewRedisViewCache(addr, password string, db int, log *zap.Logger) (*RedisViewCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisViewCache{rdb: rdb, log: log}, nil
}

func (c *RedisViewCache) Get(ctx context.Context, pitchId string) (*domain.AggregatedPitch, bool) {
	raw, err := c.rdb.Get(ctx, viewKeyPrefix+pitchId).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("view cache read failed", zap.String("pitch_id", pitchId), zap.Error(err))
		}
		return nil, false
	}

	view := &domain.AggregatedPitch{}
	if err := json.Unmarshal(raw, view); err != nil {
		c.log.Warn("view cache entry corrupt, dropping", zap.String("pitch_id", pitchId), zap.Error(err))
		c.rdb.Del(ctx, viewKeyPrefix+pitchId)
		return nil, false
	}
	return view, true
}

func (c *RedisViewCache) Set(ctx context.Context, pitchId string, view *domain.AggregatedPitch) {
	raw, err := json.Marshal(view)
	if err != nil {
		c.log.Warn("view cache marshal failed", zap.String("pitch_id", pitchId), zap.Error(err))
		return
	}
	if err := c.rdb.Set(ctx, viewKeyPrefix+pitchId, raw, viewTTL).Err(); err != nil {
		c.log.Warn("view cache write failed", zap.String("pitch_id", pitchId), zap.Error(err))
	}
}

func (c *RedisViewCache) Invalidate(ctx context.Context, pitchId string) {
	if err := c.rdb.Del(ctx, viewKeyPrefix+pitchId).Err(); err != nil {
		c.log.Warn("view cache invalidate failed", zap.String("pitch_id", pitchId), zap.Error(err))
	}
}

// NoopViewCache satisfies ViewCache without a backing store, for tests and
// deployments without redis.
type NoopViewCache struct{}

func NewNoopViewCache() *NoopViewCache { return &NoopViewCache{} }

func (*NoopViewCache) Get(context.Context, string) (*domain.AggregatedPitch, bool) { return nil, false }
func (*NoopViewCache) Set(context.Context, string, *domain.AggregatedPitch)        {}
func (*NoopViewCache) Invalidate(context.Context, string)                          {}
