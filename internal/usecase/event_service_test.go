package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/fightcard/internal/domain/event"
	"github.com/riskibarqy/fightcard/internal/domain/raw"
	eventmock "github.com/riskibarqy/fightcard/internal/mocks/domain/event"
	"github.com/riskibarqy/fightcard/internal/platform/cache"
	"github.com/riskibarqy/fightcard/internal/platform/logging"
	"github.com/riskibarqy/fightcard/internal/reconcile"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func matchCtx(ctx context.Context) any {
	return mock.MatchedBy(func(v context.Context) bool { return v == ctx })
}

func bout(id, redID, redName, blueID, blueName string, extra raw.Record) raw.Record {
	payload := raw.Record{
		"FightId": id,
		"Fighters": []any{
			map[string]any{"FighterId": redID, "Name": redName},
			map[string]any{"FighterId": blueID, "Name": blueName},
		},
	}
	for key, value := range extra {
		payload[key] = value
	}
	return payload
}

func sampleDataset() event.Dataset {
	return event.Dataset{
		LastUpdated: time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC),
		Events: []event.Source{
			{
				Summary:  event.Summary{ID: "ufc-300", Name: "UFC 300", Date: "2024-04-13"},
				Location: map[string]any{"city": "Las Vegas", "state": "NV", "country": "USA"},
				Fights: []raw.Record{
					bout("f-prelim", "holloway-max", "Max Holloway", "gaethje-justin", "Justin Gaethje", raw.Record{"CardSegment": "Prelims"}),
					bout("f-main", "pereira-alex", "Alex Pereira", "hill-jamahal", "Jamahal Hill", raw.Record{"MainEvent": true, "TitleFight": true, "WeightClass": "Light Heavyweight"}),
					{"FightId": "f-broken", "Fighters": []any{map[string]any{"Name": "Solo Fighter"}}},
				},
			},
			{Summary: event.Summary{ID: "ufc-301"}},
		},
		Fighters: []raw.Record{
			{"FighterId": "pereira-alex", "Name": "Alex Pereira", "Wins": 9.0, "Losses": 2.0, "Country": "Brazil"},
		},
	}
}

func newTestEventService(repo event.Repository) *EventService {
	builder := reconcile.NewBuilder(reconcile.WithClock(func() time.Time {
		return time.Date(2024, 4, 13, 0, 0, 0, 0, time.UTC)
	}))
	return NewEventService(repo, builder, cache.NewStore(time.Minute), EventServiceConfig{
		Workers: 2,
		Logger:  logging.NewNop(),
	})
}

func TestEventService_ListEvents_AppendsOfflineAndCaches(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := eventmock.NewRepository(t)
	repo.On("Dataset", matchCtx(ctx)).Return(sampleDataset(), nil).Once()

	service := newTestEventService(repo)

	got, err := service.ListEvents(ctx)
	require.NoError(t, err)
	require.Equal(t, []event.Summary{
		{ID: "ufc-300", Name: "UFC 300", Date: "2024-04-13"},
		{ID: "ufc-301", Name: event.DefaultEventName},
		{ID: event.OfflineEventID, Name: event.OfflineEventName},
	}, got)

	again, err := service.ListEvents(ctx)
	require.NoError(t, err)
	require.Len(t, again, 3)
}

func TestEventService_ListEvents_DegradesToOffline(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := eventmock.NewRepository(t)
	repo.On("Dataset", matchCtx(ctx)).Return(event.Dataset{}, errors.New("upstream timeout")).Once()

	got, err := newTestEventService(repo).ListEvents(ctx)
	require.NoError(t, err)
	require.Equal(t, []event.Summary{{ID: event.OfflineEventID, Name: event.OfflineEventName}}, got)
}

func TestEventService_GetCard_BuildsAndSplits(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := eventmock.NewRepository(t)
	repo.On("Dataset", matchCtx(ctx)).Return(sampleDataset(), nil).Once()

	service := newTestEventService(repo)
	card, err := service.GetCard(ctx, " ufc-300 ")
	require.NoError(t, err)

	require.Equal(t, "UFC 300", card.Event.Name)
	require.Equal(t, "Las Vegas, NV, USA", card.Event.Location)
	require.Len(t, card.Main, 2, "the single-fighter payload is skipped")
	require.Empty(t, card.Prelims)
	require.Equal(t, "f-main", card.Main[0].ID)
	require.True(t, card.Main[0].MainEvent)
	require.Equal(t, 5, card.Main[0].Rounds)
	require.Equal(t, "9-2-0", card.Main[0].Fighter1.Record)
	require.Equal(t, "br", card.Main[0].Fighter1.FlagCode)
	require.NotEmpty(t, card.Insights)
	require.Equal(t, "Alex Pereira vs Jamahal Hill", card.Insights[0].Value)

	cached, err := service.GetCard(ctx, "ufc-300")
	require.NoError(t, err)
	require.Equal(t, card, cached)
}

func TestEventService_GetCard_Errors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("empty id", func(t *testing.T) {
		t.Parallel()
		_, err := newTestEventService(eventmock.NewRepository(t)).GetCard(ctx, "  ")
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown event", func(t *testing.T) {
		t.Parallel()
		repo := eventmock.NewRepository(t)
		repo.On("Dataset", matchCtx(ctx)).Return(sampleDataset(), nil).Once()
		_, err := newTestEventService(repo).GetCard(ctx, "ufc-999")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("upstream failure", func(t *testing.T) {
		t.Parallel()
		repo := eventmock.NewRepository(t)
		repo.On("Dataset", matchCtx(ctx)).Return(event.Dataset{}, errors.New("connection refused")).Once()
		_, err := newTestEventService(repo).GetCard(ctx, "ufc-300")
		require.ErrorIs(t, err, ErrDependencyUnavailable)
	})

	t.Run("event without fights renders empty card", func(t *testing.T) {
		t.Parallel()
		repo := eventmock.NewRepository(t)
		repo.On("Dataset", matchCtx(ctx)).Return(sampleDataset(), nil).Once()
		card, err := newTestEventService(repo).GetCard(ctx, "ufc-301")
		require.NoError(t, err)
		require.Empty(t, card.Main)
		require.Empty(t, card.Prelims)
		require.Equal(t, event.DefaultEventName, card.Event.Name)
	})
}

func TestEventService_GetCard_OfflineSkipsRepository(t *testing.T) {
	t.Parallel()

	repo := eventmock.NewRepository(t)
	card, err := newTestEventService(repo).GetCard(context.Background(), event.OfflineEventID)
	require.NoError(t, err)
	require.Len(t, card.Main, 1)
	require.Equal(t, "Steve Garcia", card.Main[0].Fighter1.Name)
	require.Equal(t, "UFC APEX, Las Vegas, NV", card.Event.Location)
	repo.AssertNotCalled(t, "Dataset", mock.Anything)
}

func TestEventService_GetFight(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := eventmock.NewRepository(t)
	repo.On("Dataset", matchCtx(ctx)).Return(sampleDataset(), nil).Once()
	service := newTestEventService(repo)

	got, err := service.GetFight(ctx, "ufc-300", "pereira-alex-hill-jamahal")
	require.NoError(t, err)
	require.Equal(t, "f-main", got.Fight.ID)
	require.Equal(t, "ufc-300", got.Event.ID)
	require.Nil(t, got.WinProbability, "no odds anywhere")
	require.Equal(t, "100%", got.Advantages.Left.Experience)

	byID, err := service.GetFight(ctx, "ufc-300", "f-prelim")
	require.NoError(t, err)
	require.Equal(t, "Max Holloway", byID.Fight.Fighter1.Name)

	_, err = service.GetFight(ctx, "ufc-300", "nobody-vs-nobody")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = service.GetFight(ctx, "ufc-300", "")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestEventService_ReloadRefetches(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := eventmock.NewRepository(t)
	first := sampleDataset()
	second := sampleDataset()
	second.LastUpdated = second.LastUpdated.Add(time.Hour)
	second.Events[0].Name = "UFC 300: Pereira vs Hill"

	repo.On("Dataset", matchCtx(ctx)).Return(first, nil).Once()
	repo.On("Dataset", matchCtx(ctx)).Return(second, nil).Once()

	service := newTestEventService(repo)
	card, err := service.GetCard(ctx, "ufc-300")
	require.NoError(t, err)
	require.Equal(t, "UFC 300", card.Event.Name)

	require.NoError(t, service.Reload(ctx))

	card, err = service.GetCard(ctx, "ufc-300")
	require.NoError(t, err)
	require.Equal(t, "UFC 300: Pereira vs Hill", card.Event.Name)
}

type invalidatingRepository struct {
	*eventmock.Repository
	err   error
	calls int
}

func (r *invalidatingRepository) Invalidate(context.Context) error {
	r.calls++
	return r.err
}

func TestEventService_ReloadInvalidatesRepository(t *testing.T) {
	t.Parallel()

	repo := &invalidatingRepository{Repository: eventmock.NewRepository(t)}
	service := newTestEventService(repo)

	require.NoError(t, service.Reload(context.Background()))
	require.Equal(t, 1, repo.calls)

	repo.err = errors.New("redis down")
	require.ErrorIs(t, service.Reload(context.Background()), ErrDependencyUnavailable)
}
