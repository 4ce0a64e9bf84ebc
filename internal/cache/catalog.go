package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"linguagraph.app/insight/internal/model"
	"linguagraph.app/insight/internal/store"
)

const catalogKey = "insight:grammar_features:v1"

// Client is the slice of the redis API the cache uses; *redis.Client
// satisfies it.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// CatalogCache is a read-through cache over the grammar-feature store.
// The full catalog is small and changes rarely, so one JSON snapshot
// with a TTL is enough. Redis failures degrade to a direct store read
// and are logged, never surfaced.
type CatalogCache struct {
	inner  store.FeatureStore
	client Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewCatalogCache(inner store.FeatureStore, client Client, ttl time.Duration, logger *slog.Logger) *CatalogCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogCache{
		inner:  inner,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *CatalogCache) ListAll(ctx context.Context) ([]model.GrammarFeature, error) {
	if c.client != nil {
		raw, err := c.client.Get(ctx, catalogKey).Bytes()
		if err == nil {
			var features []model.GrammarFeature
			if err := json.Unmarshal(raw, &features); err == nil {
				return features, nil
			}
			c.logger.WarnContext(ctx, "discarding unreadable catalog snapshot", "key", catalogKey)
		} else if !errors.Is(err, redis.Nil) {
			c.logger.WarnContext(ctx, "catalog cache read failed", "error", err)
		}
	}

	features, err := c.inner.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	c.put(ctx, features)
	return features, nil
}

// GetByID is a passthrough; single-feature lookups are cheap enough to
// hit the store directly.
func (c *CatalogCache) GetByID(ctx context.Context, id string) (*model.GrammarFeature, error) {
	return c.inner.GetByID(ctx, id)
}

func (c *CatalogCache) put(ctx context.Context, features []model.GrammarFeature) {
	if c.client == nil {
		return
	}
	raw, err := json.Marshal(features)
	if err != nil {
		c.logger.WarnContext(ctx, "marshalling catalog snapshot failed", "error", err)
		return
	}
	if err := c.client.Set(ctx, catalogKey, raw, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "catalog cache write failed", "error", err)
	}
}
