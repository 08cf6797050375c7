package ufcdata

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"
	"github.com/riskibarqy/fightcard/internal/platform/logging"
)

const defaultRedisKey = "fightcard:ufcdata:document"

type cachedDocument struct {
	FetchedAt time.Time       `json:"fetchedAt"`
	Payload   json.RawMessage `json:"payload"`
}

// RedisCache shares the fetched document between service instances. Redis
// errors never fail a fetch; the wrapped source is used instead.
type RedisCache struct {
	client *redis.Client
	next   Source
	key    string
	ttl    time.Duration
	logger *logging.Logger
}

type RedisCacheConfig struct {
	Key    string
	TTL    time.Duration
	Logger *logging.Logger
}

func NewRedisCache(client *redis.Client, next Source, cfg RedisCacheConfig) *RedisCache {
	key := cfg.Key
	if key == "" {
		key = defaultRedisKey
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	return &RedisCache{
		client: client,
		next:   next,
		key:    key,
		ttl:    ttl,
		logger: logger.Named("ufcdata.redis"),
	}
}

// NewRedisClient builds a client from a redis:// URL.
func NewRedisClient(rawURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, crerr.Wrap(err, "parse REDIS_URL")
	}
	return redis.NewClient(opts), nil
}

func (c *RedisCache) Fetch(ctx context.Context) ([]byte, error) {
	if payload, ok := c.get(ctx); ok {
		return payload, nil
	}

	payload, err := c.next.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	c.set(ctx, payload)
	return payload, nil
}

// Invalidate drops the shared copy and anything the wrapped source caches.
func (c *RedisCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, c.key).Err(); err != nil {
		return crerr.Wrapf(err, "delete redis key %s", c.key)
	}
	if inv, ok := c.next.(interface{ Invalidate(context.Context) error }); ok {
		return inv.Invalidate(ctx)
	}
	return nil
}

func (c *RedisCache) get(ctx context.Context) ([]byte, bool) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if !stderrors.Is(err, redis.Nil) {
			c.logger.WarnContext(ctx, "redis read failed, fetching upstream", "key", c.key, "error", err)
		}
		return nil, false
	}

	var doc cachedDocument
	if err := sonic.Unmarshal(data, &doc); err != nil || len(doc.Payload) == 0 {
		c.logger.WarnContext(ctx, "discarding unreadable redis entry", "key", c.key, "error", err)
		return nil, false
	}
	c.logger.DebugContext(ctx, "ufc data served from redis", "key", c.key, "fetched_at", doc.FetchedAt)
	return doc.Payload, true
}

func (c *RedisCache) set(ctx context.Context, payload []byte) {
	if !sonic.Valid(payload) {
		c.logger.WarnContext(ctx, "not caching invalid json document", "key", c.key, "bytes", len(payload))
		return
	}
	data, err := sonic.Marshal(cachedDocument{FetchedAt: time.Now().UTC(), Payload: payload})
	if err != nil {
		c.logger.WarnContext(ctx, "encode redis entry", "error", err)
		return
	}
	if err := c.client.Set(ctx, c.key, data, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "redis write failed", "key", c.key, "error", err)
	}
}

func (c *RedisCache) String() string {
	return "redis:" + c.key
}
