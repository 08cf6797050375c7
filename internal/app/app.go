package app

import (
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/fightcard/internal/config"
	"github.com/riskibarqy/fightcard/internal/interfaces/httpapi"
	"github.com/riskibarqy/fightcard/internal/platform/cache"
	idgen "github.com/riskibarqy/fightcard/internal/platform/id"
	"github.com/riskibarqy/fightcard/internal/platform/logging"
	"github.com/riskibarqy/fightcard/internal/usecase"
)

// Runtime is the assembled service. Close releases upstream clients after
// the server has shut down.
type Runtime struct {
	Server *http.Server
	Events *usecase.EventService

	closers []func() error
}

func NewRuntime(cfg config.Config, logger *logging.Logger) (*Runtime, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	builder, err := NewBuilder(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("build card builder: %w", err)
	}

	repo, closeRepo, err := NewRepository(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("build event repository: %w", err)
	}

	eventSvc := usecase.NewEventService(repo, builder, cache.NewStore(cfg.CacheTTL), usecase.EventServiceConfig{
		Workers: cfg.BuildWorkers,
		Logger:  logger,
	})

	handler := httpapi.NewHandler(eventSvc, logger)
	router := httpapi.NewRouter(handler, logger, httpapi.RouterConfig{
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		AdminToken:         cfg.AdminToken,
		RequestIDs:         idgen.NewUUIDGenerator(),
		SwaggerEnabled:     cfg.SwaggerEnabled,
	})

	return &Runtime{
		Server: &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		Events:  eventSvc,
		closers: []func() error{closeRepo},
	}, nil
}

func (r *Runtime) Close() error {
	var errs error
	for _, closeFn := range r.closers {
		if err := closeFn(); err != nil {
			errs = errors.CombineErrors(errs, err)
		}
	}
	return errs
}
