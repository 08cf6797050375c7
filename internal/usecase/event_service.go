package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/fightcard/internal/domain/event"
	"github.com/riskibarqy/fightcard/internal/domain/fight"
	"github.com/riskibarqy/fightcard/internal/platform/cache"
	"github.com/riskibarqy/fightcard/internal/platform/logging"
	"github.com/riskibarqy/fightcard/internal/reconcile"
	"go.opentelemetry.io/otel/attribute"
)

const (
	datasetCacheKey       = "dataset"
	directoryCachePrefix  = "directory:"
	cardCachePrefix       = "card:"
	defaultEventCacheTTL  = 5 * time.Minute
	defaultBuildWorkerCnt = 8
)

type EventServiceConfig struct {
	// Workers bounds the per-fight fan-out of one card build.
	Workers int
	// CacheTTL applies when the service creates its own cache store.
	CacheTTL time.Duration
	Logger   *logging.Logger
}

// EventService serves schedules, cards and single-fight breakdowns built
// from the upstream dataset.
type EventService struct {
	repo    event.Repository
	builder *reconcile.Builder
	cache   *cache.Store
	logger  *logging.Logger
	workers int
}

func NewEventService(repo event.Repository, builder *reconcile.Builder, store *cache.Store, cfg EventServiceConfig) *EventService {
	if builder == nil {
		builder = reconcile.NewBuilder()
	}
	if store == nil {
		ttl := cfg.CacheTTL
		if ttl <= 0 {
			ttl = defaultEventCacheTTL
		}
		store = cache.NewStore(ttl)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = defaultBuildWorkerCnt
	}

	return &EventService{
		repo:    repo,
		builder: builder,
		cache:   store,
		logger:  logger.Named("events"),
		workers: workers,
	}
}

// ListEvents returns the upstream schedule followed by the offline event.
// An upstream failure degrades to the offline event alone.
func (s *EventService) ListEvents(ctx context.Context) ([]event.Summary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.ListEvents")
	defer span.End()

	dataset, err := s.dataset(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "dataset unavailable, serving offline schedule", "error", err)
		dataset = event.Dataset{}
	}

	out := make([]event.Summary, 0, len(dataset.Events)+1)
	hasOffline := false
	for _, item := range dataset.Events {
		if item.ID == "" {
			continue
		}
		if item.ID == event.OfflineEventID {
			hasOffline = true
		}
		out = append(out, eventSummary(item))
	}
	if !hasOffline {
		out = append(out, eventSummary(event.Offline()))
	}
	span.SetAttributes(attribute.Int("events.count", len(out)))
	return out, nil
}

func (s *EventService) GetCard(ctx context.Context, eventID string) (card fight.EventCard, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.GetCard")
	defer func() { endUsecaseSpan(span, err) }()

	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return fight.EventCard{}, fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}
	span.SetAttributes(attribute.String("event.id", eventID))

	return s.card(ctx, eventID)
}

func (s *EventService) GetFight(ctx context.Context, eventID, fightKey string) (out fight.Breakdown, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.GetFight")
	defer func() { endUsecaseSpan(span, err) }()

	eventID = strings.TrimSpace(eventID)
	fightKey = strings.TrimSpace(fightKey)
	if eventID == "" {
		return fight.Breakdown{}, fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}
	if fightKey == "" {
		return fight.Breakdown{}, fmt.Errorf("%w: fight key is required", ErrInvalidInput)
	}
	span.SetAttributes(attribute.String("event.id", eventID), attribute.String("fight.key", fightKey))

	card, err := s.card(ctx, eventID)
	if err != nil {
		return fight.Breakdown{}, err
	}

	selected, ok := findFight(card, fightKey)
	if !ok {
		return fight.Breakdown{}, fmt.Errorf("%w: fight=%s event=%s", ErrNotFound, fightKey, eventID)
	}

	return fight.Breakdown{
		Event:          card.Event,
		Fight:          selected,
		WinProbability: reconcile.WinProbability(selected, s.builder.Odds()),
		Advantages:     reconcile.Advantages(selected.Fighter1, selected.Fighter2),
		Fighter1:       reconcile.AnalyzeSide(selected.Fighter1),
		Fighter2:       reconcile.AnalyzeSide(selected.Fighter2),
	}, nil
}

// Reload drops the cached dataset, directories and cards. The next read
// fetches upstream again.
func (s *EventService) Reload(ctx context.Context) (err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.Reload")
	defer func() { endUsecaseSpan(span, err) }()

	if invalidator, ok := s.repo.(event.Invalidator); ok {
		if err := invalidator.Invalidate(ctx); err != nil {
			return fmt.Errorf("%w: invalidate upstream cache: %v", ErrDependencyUnavailable, err)
		}
	}

	stats := s.cache.Stats()
	s.cache.Delete(ctx, datasetCacheKey)
	directories := s.cache.DeletePrefix(ctx, directoryCachePrefix)
	cards := s.cache.DeletePrefix(ctx, cardCachePrefix)
	s.logger.InfoContext(ctx, "event caches dropped",
		"directories", directories,
		"cards", cards,
		"cache_hits", stats.Hits,
		"cache_misses", stats.Misses,
	)
	return nil
}

func (s *EventService) card(ctx context.Context, eventID string) (fight.EventCard, error) {
	if eventID == event.OfflineEventID {
		return s.buildCard(ctx, event.Offline(), reconcile.BuildDirectory(nil))
	}

	dataset, err := s.dataset(ctx)
	if err != nil {
		return fight.EventCard{}, fmt.Errorf("%w: load dataset: %v", ErrDependencyUnavailable, err)
	}
	source, ok := dataset.Find(eventID)
	if !ok {
		return fight.EventCard{}, fmt.Errorf("%w: event=%s", ErrNotFound, eventID)
	}

	version := dataset.Version()
	return cache.Load(ctx, s.cache, cardCachePrefix+version+":"+eventID, func(ctx context.Context) (fight.EventCard, error) {
		dir, err := s.directory(ctx, dataset)
		if err != nil {
			return fight.EventCard{}, err
		}
		return s.buildCard(ctx, source, dir)
	})
}

func (s *EventService) dataset(ctx context.Context) (event.Dataset, error) {
	if s.repo == nil {
		return event.Dataset{}, errors.New("no event repository configured")
	}
	return cache.Load(ctx, s.cache, datasetCacheKey, func(ctx context.Context) (event.Dataset, error) {
		start := time.Now()
		dataset, err := s.repo.Dataset(ctx)
		if err != nil {
			return event.Dataset{}, err
		}
		s.logger.InfoContext(ctx, "dataset loaded",
			"events", len(dataset.Events),
			"fighters", len(dataset.Fighters),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return dataset, nil
	})
}

func (s *EventService) directory(ctx context.Context, dataset event.Dataset) (*reconcile.Directory, error) {
	return cache.Load(ctx, s.cache, directoryCachePrefix+dataset.Version(), func(context.Context) (*reconcile.Directory, error) {
		return reconcile.BuildDirectory(dataset.Fighters), nil
	})
}

// buildCard builds every fight on a bounded pool. Results keep source order
// so the partition is identical to a sequential build.
func (s *EventService) buildCard(ctx context.Context, source event.Source, dir *reconcile.Directory) (fight.EventCard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.buildCard",
		attribute.String("event.id", source.ID),
		attribute.Int("fights.count", len(source.Fights)),
		attribute.Int("workers", s.workers),
	)
	defer span.End()

	built := make([]*fight.Fight, len(source.Fights))
	if len(source.Fights) > 0 {
		pool, err := ants.NewPool(min(s.workers, len(source.Fights)))
		if err != nil {
			return fight.EventCard{}, fmt.Errorf("create worker pool: %w", err)
		}
		defer pool.Release()

		var workers sync.WaitGroup
		for i, payload := range source.Fights {
			i, payload := i, payload
			workers.Add(1)
			if err := pool.Submit(func() {
				defer workers.Done()
				built[i] = s.builder.BuildFight(payload, dir)
			}); err != nil {
				workers.Done()
				workers.Wait()
				return fight.EventCard{}, fmt.Errorf("submit fight build: %w", err)
			}
		}
		workers.Wait()
	}

	fights := make([]fight.Fight, 0, len(built))
	skipped := 0
	for _, f := range built {
		if f == nil {
			skipped++
			continue
		}
		fights = append(fights, *f)
	}
	if skipped > 0 {
		s.logger.DebugContext(ctx, "skipped fights without two fighters", "event_id", source.ID, "skipped", skipped)
	}
	span.SetAttributes(attribute.Int("fights.built", len(fights)), attribute.Int("fights.skipped", skipped))

	split := reconcile.SplitCard(fights)
	return fight.EventCard{
		Event:    eventMeta(source),
		Main:     split.Main,
		Prelims:  split.Prelims,
		Insights: reconcile.Insights(split),
	}, nil
}

func eventSummary(source event.Source) event.Summary {
	name := strings.TrimSpace(source.Name)
	if name == "" {
		name = event.DefaultEventName
	}
	return event.Summary{ID: source.ID, Name: name, Date: source.Date}
}

func eventMeta(source event.Source) fight.EventMeta {
	summary := eventSummary(source)
	return fight.EventMeta{
		ID:       summary.ID,
		Name:     summary.Name,
		Date:     summary.Date,
		Location: reconcile.FormatLocation(source.Location),
	}
}

func findFight(card fight.EventCard, key string) (fight.Fight, bool) {
	for _, group := range [][]fight.Fight{card.Main, card.Prelims} {
		for _, f := range group {
			if f.FightKey == key || f.ID == key {
				return f, true
			}
		}
	}
	return fight.Fight{}, false
}
