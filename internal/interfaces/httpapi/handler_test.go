package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/fightcard/internal/domain/event"
	"github.com/riskibarqy/fightcard/internal/domain/fight"
	"github.com/riskibarqy/fightcard/internal/platform/logging"
	"github.com/riskibarqy/fightcard/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEventService struct {
	events    []event.Summary
	cards     map[string]fight.EventCard
	reloadErr error
	reloads   atomic.Int32
}

func (f *fakeEventService) ListEvents(context.Context) ([]event.Summary, error) {
	return f.events, nil
}

func (f *fakeEventService) GetCard(_ context.Context, eventID string) (fight.EventCard, error) {
	card, ok := f.cards[eventID]
	if !ok {
		return fight.EventCard{}, fmt.Errorf("%w: event=%s", usecase.ErrNotFound, eventID)
	}
	return card, nil
}

func (f *fakeEventService) GetFight(ctx context.Context, eventID, fightKey string) (fight.Breakdown, error) {
	card, err := f.GetCard(ctx, eventID)
	if err != nil {
		return fight.Breakdown{}, err
	}
	for _, item := range append(card.Main, card.Prelims...) {
		if item.FightKey == fightKey {
			return fight.Breakdown{Event: card.Event, Fight: item}, nil
		}
	}
	return fight.Breakdown{}, fmt.Errorf("%w: fight=%s", usecase.ErrNotFound, fightKey)
}

func (f *fakeEventService) Reload(context.Context) error {
	f.reloads.Add(1)
	return f.reloadErr
}

type fixedIDs struct{ value string }

func (g fixedIDs) NewID() (string, error) { return g.value, nil }

type envelope struct {
	APIVersion string         `json:"apiVersion"`
	Data       map[string]any `json:"data"`
	Error      *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func newTestRouter(t *testing.T, svc *fakeEventService) http.Handler {
	t.Helper()

	handler := NewHandler(svc, logging.NewNop())
	return NewRouter(handler, logging.NewNop(), RouterConfig{
		CORSAllowedOrigins: []string{"*"},
		AdminToken:         "s3cret",
		RequestIDs:         fixedIDs{value: "req-fixed"},
		SwaggerEnabled:     true,
	})
}

func newFakeService() *fakeEventService {
	return &fakeEventService{
		events: []event.Summary{{ID: "ufc-323", Name: "UFC 323", Date: "2025-12-06"}},
		cards: map[string]fight.EventCard{
			"ufc-323": {
				Event: fight.EventMeta{ID: "ufc-323", Name: "UFC 323", Location: "Las Vegas"},
				Main:  []fight.Fight{{ID: "1", FightKey: "dvalishvili-vs-yan", Rounds: 5}},
			},
		},
	}
}

func serve(t *testing.T, router http.Handler, req *http.Request) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var body envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func TestHandler_Healthz(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, newFakeService())
	rec, body := serve(t, router, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2.0", body.APIVersion)
	assert.Equal(t, "ok", body.Data["status"])
	assert.Equal(t, "req-fixed", rec.Header().Get(requestIDHeader))
}

func TestHandler_ListEvents(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, newFakeService())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/events", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []event.Summary `json:"data"`
	}
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "ufc-323", body.Data[0].ID)
}

func TestHandler_GetEventCard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantError  string
	}{
		{name: "known event", path: "/v1/events/ufc-323/card", wantStatus: http.StatusOK},
		{name: "unknown event", path: "/v1/events/ufc-999/card", wantStatus: http.StatusNotFound, wantError: "NOT_FOUND"},
		{name: "id too long", path: "/v1/events/" + strings.Repeat("x", 129) + "/card", wantStatus: http.StatusBadRequest, wantError: "INVALID_ARGUMENT"},
	}

	router := newTestRouter(t, newFakeService())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec, body := serve(t, router, httptest.NewRequest(http.MethodGet, tt.path, nil))
			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantError == "" {
				require.Nil(t, body.Error)
				meta, _ := body.Data["event"].(map[string]any)
				assert.Equal(t, "Las Vegas", meta["location"])
				return
			}
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantError, body.Error.Status)
		})
	}
}

func TestHandler_GetFight(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, newFakeService())

	rec, body := serve(t, router, httptest.NewRequest(http.MethodGet, "/v1/events/ufc-323/fights/dvalishvili-vs-yan", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	item, _ := body.Data["fight"].(map[string]any)
	assert.Equal(t, "dvalishvili-vs-yan", item["fightKey"])

	rec, body = serve(t, router, httptest.NewRequest(http.MethodGet, "/v1/events/ufc-323/fights/nobody-vs-nobody", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, body.Error)
}

func TestHandler_Reload(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		header      string
		value       string
		body        string
		reloadErr   error
		wantStatus  int
		wantReloads int32
	}{
		{name: "missing token", body: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong token", header: adminTokenHeader, value: "nope", wantStatus: http.StatusUnauthorized},
		{name: "admin header", header: adminTokenHeader, value: "s3cret", wantStatus: http.StatusAccepted, wantReloads: 1},
		{name: "bearer token", header: "Authorization", value: "Bearer s3cret", body: `{"reason":"new odds"}`, wantStatus: http.StatusAccepted, wantReloads: 1},
		{name: "bad json", header: adminTokenHeader, value: "s3cret", body: `{"reason":`, wantStatus: http.StatusBadRequest},
		{name: "reason too long", header: adminTokenHeader, value: "s3cret", body: `{"reason":"` + strings.Repeat("r", 201) + `"}`, wantStatus: http.StatusBadRequest},
		{name: "upstream down", header: adminTokenHeader, value: "s3cret", reloadErr: fmt.Errorf("%w: redis", usecase.ErrDependencyUnavailable), wantStatus: http.StatusServiceUnavailable, wantReloads: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := newFakeService()
			svc.reloadErr = tt.reloadErr
			router := newTestRouter(t, svc)

			req := httptest.NewRequest(http.MethodPost, "/v1/admin/reload", strings.NewReader(tt.body))
			if tt.header != "" {
				req.Header.Set(tt.header, tt.value)
			}
			rec, body := serve(t, router, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantReloads, svc.reloads.Load())
			if tt.wantStatus == http.StatusAccepted {
				assert.Equal(t, "reloaded", body.Data["status"])
			}
		})
	}
}

func TestHandler_ReloadWithoutConfiguredToken(t *testing.T) {
	t.Parallel()

	svc := newFakeService()
	router := NewRouter(NewHandler(svc, logging.NewNop()), logging.NewNop(), RouterConfig{})

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/reload", nil)
	req.Header.Set(adminTokenHeader, "anything")
	rec, _ := serve(t, router, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Zero(t, svc.reloads.Load())
}

func TestRouter_SwaggerToggle(t *testing.T) {
	t.Parallel()

	enabled := newTestRouter(t, newFakeService())
	rec := httptest.NewRecorder()
	enabled.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/v1/events/{eventID}/card")

	req := httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil)
	req.Header.Set("If-None-Match", rec.Header().Get("ETag"))
	cached := httptest.NewRecorder()
	enabled.ServeHTTP(cached, req)
	assert.Equal(t, http.StatusNotModified, cached.Code)
	assert.Zero(t, cached.Body.Len())

	docs := httptest.NewRecorder()
	enabled.ServeHTTP(docs, httptest.NewRequest(http.MethodGet, "/docs", nil))
	require.Equal(t, http.StatusOK, docs.Code)
	assert.Contains(t, docs.Body.String(), "<title>Fightcard API 1.0</title>")

	disabled := NewRouter(NewHandler(newFakeService(), logging.NewNop()), logging.NewNop(), RouterConfig{})
	rec = httptest.NewRecorder()
	disabled.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
	handler := RequestID(fixedIDs{value: "generated"}, next)

	req := httptest.NewRequest(http.MethodGet, "/v1/events", nil)
	req.Header.Set(requestIDHeader, "inbound-123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, "inbound-123", seen)
	assert.Equal(t, "inbound-123", rec.Header().Get(requestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/v1/events", nil)
	req.Header.Set(requestIDHeader, strings.Repeat("a", 129))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, "generated", seen)
	assert.Equal(t, "generated", rec.Header().Get(requestIDHeader))
}

func TestRecoverPanic(t *testing.T) {
	t.Parallel()

	boom := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})
	rec := httptest.NewRecorder()
	recoverPanic(logging.NewNop(), boom).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/events", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "boom")
	assert.Contains(t, rec.Body.String(), "internal server error")
}

func TestWriteError_MasksInternalErrors(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("dial tcp 10.0.0.7:6379: refused"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "10.0.0.7")
}

func TestRouter_UnknownPathUsesEnvelope(t *testing.T) {
	t.Parallel()

	rec, body := serve(t, newTestRouter(t, newFakeService()), httptest.NewRequest(http.MethodGet, "/v2/events", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "NOT_FOUND", body.Error.Status)
	assert.Contains(t, body.Error.Message, "GET /v2/events")
	assert.Equal(t, "req-fixed", rec.Header().Get(requestIDHeader))
}
