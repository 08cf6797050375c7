package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "value", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "same-key", loader)
			if err != nil {
				errCh <- err
				return
			}
			if got, _ := v.(string); got != "value" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_UsesCachedValueAfterFirstLoad(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		return "cached", nil
	}

	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("first GetOrLoad error: %v", err)
	}
	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("second GetOrLoad error: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_ExpiresEntries(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	store.Set(context.Background(), "dataset", "v1")
	if _, ok := store.Get(context.Background(), "dataset"); !ok {
		t.Fatalf("expected fresh entry")
	}

	now = now.Add(2 * time.Minute)
	if _, ok := store.Get(context.Background(), "dataset"); ok {
		t.Fatalf("expected expired entry to miss")
	}
	if store.Len() != 0 {
		t.Fatalf("expected expired entry removed, len=%d", store.Len())
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(0)
	store.Set(ctx, "directory:v1", 1)
	store.Set(ctx, "directory:v2", 2)
	store.Set(ctx, "dataset", 3)

	if removed := store.DeletePrefix(ctx, "directory:"); removed != 2 {
		t.Fatalf("expected 2 removed, got %d", removed)
	}
	if store.Len() != 1 {
		t.Fatalf("expected only dataset left, len=%d", store.Len())
	}
	if _, ok := store.Get(ctx, "dataset"); !ok {
		t.Fatalf("expected dataset kept")
	}
	if removed := store.DeletePrefix(ctx, ""); removed != 0 {
		t.Fatalf("expected empty prefix to be a no-op, removed %d", removed)
	}
}

func TestStore_Stats(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(time.Minute)
	load := func(context.Context) (any, error) { return "card", nil }

	for range 3 {
		if _, err := store.GetOrLoad(ctx, "card:ufc-323", load); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	store.Get(ctx, "card:missing")

	stats := store.Stats()
	want := Stats{Entries: 1, Hits: 2, Misses: 2, Loads: 1}
	if stats != want {
		t.Fatalf("expected %+v, got %+v", want, stats)
	}
}

func TestLoad_Typed(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(time.Minute)

	got, err := Load(ctx, store, "n", func(context.Context) (int, error) { return 42, nil })
	if err != nil || got != 42 {
		t.Fatalf("unexpected load: %v, %v", got, err)
	}

	store.Set(ctx, "s", "text")
	if _, err := Load(ctx, store, "s", func(context.Context) (int, error) { return 0, nil }); err == nil {
		t.Fatalf("expected type mismatch error")
	}

	loadErr := errors.New("upstream down")
	if _, err := Load(ctx, store, "e", func(context.Context) (int, error) { return 0, loadErr }); !errors.Is(err, loadErr) {
		t.Fatalf("expected loader error, got %v", err)
	}
	if _, ok := store.Get(ctx, "e"); ok {
		t.Fatalf("failed loads must not be cached")
	}
}

var errUnexpectedValue = errors.New("unexpected loaded value")
