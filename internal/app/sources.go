package app

import (
	"github.com/redis/go-redis/v9"
	"github.com/riskibarqy/fightcard/external/ufcdata"
	"github.com/riskibarqy/fightcard/internal/config"
	"github.com/riskibarqy/fightcard/internal/platform/logging"
	"github.com/riskibarqy/fightcard/internal/platform/resilience"
)

const fightersRedisKey = "fightcard:ufcdata:fighters"

// NewRepository wires the upstream sources named in cfg into a repository.
// The returned closer releases the shared Redis client, if any.
func NewRepository(cfg config.Config, logger *logging.Logger) (*ufcdata.Repository, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	closer := func() error { return nil }

	shape, err := ufcdata.ParseShape(cfg.UFCDataShape)
	if err != nil {
		return nil, closer, err
	}

	events, err := newSource(cfg, cfg.UFCDataURL, cfg.UFCDataFile, logger)
	if err != nil {
		return nil, closer, err
	}
	fighters, err := newSource(cfg, cfg.UFCFightersURL, cfg.UFCFightersFile, logger)
	if err != nil {
		return nil, closer, err
	}

	if cfg.RedisURL != "" {
		client, err := ufcdata.NewRedisClient(cfg.RedisURL)
		if err != nil {
			return nil, closer, err
		}
		closer = client.Close
		events = wrapRedis(client, events, "", cfg, logger)
		if fighters != nil {
			fighters = wrapRedis(client, fighters, fightersRedisKey, cfg, logger)
		}
	}

	repo, err := ufcdata.NewRepository(ufcdata.RepositoryConfig{
		Events:   events,
		Fighters: fighters,
		Shape:    shape,
		Logger:   logger,
	})
	if err != nil {
		_ = closer()
		return nil, func() error { return nil }, err
	}
	return repo, closer, nil
}

// newSource returns nil when neither url nor file is set.
func newSource(cfg config.Config, url, file string, logger *logging.Logger) (ufcdata.Source, error) {
	switch {
	case url != "":
		client, err := ufcdata.NewClient(ufcdata.ClientConfig{
			URL:        url,
			Token:      cfg.UFCDataToken,
			Timeout:    cfg.UFCDataTimeout,
			MaxRetries: cfg.UFCDataMaxRetries,
			RetryDelay: cfg.UFCDataRetryDelay,
			Logger:     logger,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.UFCDataCircuitEnabled,
				FailureThreshold: cfg.UFCDataCircuitFailureCount,
				OpenTimeout:      cfg.UFCDataCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.UFCDataCircuitHalfOpenMaxReq,
			},
		})
		if err != nil {
			return nil, err
		}
		return client, nil
	case file != "":
		return ufcdata.NewFileSource(file), nil
	default:
		return nil, nil
	}
}

func wrapRedis(client *redis.Client, next ufcdata.Source, key string, cfg config.Config, logger *logging.Logger) ufcdata.Source {
	return ufcdata.NewRedisCache(client, next, ufcdata.RedisCacheConfig{
		Key:    key,
		TTL:    cfg.RedisCacheTTL,
		Logger: logger,
	})
}
