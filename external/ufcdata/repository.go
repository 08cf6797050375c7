package ufcdata

import (
	"context"
	"fmt"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/fightcard/internal/domain/event"
	"github.com/riskibarqy/fightcard/internal/domain/raw"
	"github.com/riskibarqy/fightcard/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
)

type RepositoryConfig struct {
	// Events holds the schedule with per-event fights. Required.
	Events Source
	// Fighters optionally holds profiles published separately from events.
	Fighters Source
	Shape    Shape
	Logger   *logging.Logger
}

// Repository implements event.Repository over one or two upstream documents.
type Repository struct {
	events   Source
	fighters Source
	shape    Shape
	logger   *logging.Logger
}

var _ event.Repository = (*Repository)(nil)

func NewRepository(cfg RepositoryConfig) (*Repository, error) {
	if cfg.Events == nil {
		return nil, crerr.New("events source is required")
	}
	shape := cfg.Shape
	if shape == "" {
		shape = ShapeAuto
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	return &Repository{
		events:   cfg.Events,
		fighters: cfg.Fighters,
		shape:    shape,
		logger:   logger.Named("ufcdata"),
	}, nil
}

func (r *Repository) Dataset(ctx context.Context) (event.Dataset, error) {
	var eventsDoc, fightersDoc any

	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		doc, err := fetchDocument(ctx, r.events)
		if err != nil {
			return crerr.Wrap(err, "load events document")
		}
		eventsDoc = doc
		return nil
	})
	if r.fighters != nil {
		p.Go(func(ctx context.Context) error {
			doc, err := fetchDocument(ctx, r.fighters)
			if err != nil {
				return crerr.Wrap(err, "load fighters document")
			}
			fightersDoc = doc
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return event.Dataset{}, err
	}

	shape := r.shape
	if shape == ShapeAuto {
		shape = DetectShape(eventsDoc)
	}
	doc := document(eventsDoc, shape)
	if fightersDoc != nil {
		attachFighters(doc, shape, fightersDoc)
	}

	var dataset event.Dataset
	switch shape {
	case ShapeSportsData:
		dataset = FromSportsData(doc)
	default:
		dataset = FromScrape(doc)
	}
	if dataset.LastUpdated.IsZero() {
		dataset.LastUpdated = time.Now().UTC()
	}

	r.logger.InfoContext(ctx, "ufc dataset mapped",
		"shape", string(shape),
		"events", len(dataset.Events),
		"fighters", len(dataset.Fighters),
	)
	return dataset, nil
}

// Invalidate forwards to sources that keep their own copy.
func (r *Repository) Invalidate(ctx context.Context) error {
	for _, source := range []Source{r.events, r.fighters} {
		if inv, ok := source.(event.Invalidator); ok {
			if err := inv.Invalidate(ctx); err != nil {
				return err
			}
		}
	}
	return nil
}

func fetchDocument(ctx context.Context, source Source) (any, error) {
	data, err := source.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	doc, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", source, err)
	}
	return doc, nil
}

// attachFighters appends separately published profiles to the document's
// own fighter list. A wrapped {fighters: ...} document is unwrapped first.
func attachFighters(doc raw.Record, shape Shape, fightersDoc any) {
	key := "fighters"
	if shape == ShapeSportsData {
		key = "Fighters"
	}
	if wrapper, ok := raw.AsRecord(fightersDoc); ok {
		if inner := wrapper.First("fighters", "Fighters"); inner != nil {
			fightersDoc = inner
		}
	}

	combined := make([]any, 0)
	for _, item := range raw.AsRecords(doc.First("fighters", "Fighters")) {
		combined = append(combined, item)
	}
	for _, item := range raw.AsRecords(fightersDoc) {
		combined = append(combined, item)
	}
	delete(doc, "fighters")
	delete(doc, "Fighters")
	doc[key] = combined
}
