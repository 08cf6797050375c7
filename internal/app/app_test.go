package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/riskibarqy/fightcard/internal/config"
	"github.com/riskibarqy/fightcard/internal/domain/event"
	"github.com/riskibarqy/fightcard/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scrapeFixture = "../../external/ufcdata/testdata/scrape.json"

func testConfig() config.Config {
	return config.Config{
		HTTPAddr:                     ":0",
		ReadTimeout:                  time.Second,
		WriteTimeout:                 time.Second,
		CORSAllowedOrigins:           []string{"*"},
		UFCDataFile:                  scrapeFixture,
		UFCDataShape:                 "auto",
		UFCDataTimeout:               time.Second,
		UFCDataRetryDelay:            time.Millisecond,
		UFCDataCircuitEnabled:        true,
		UFCDataCircuitFailureCount:   3,
		UFCDataCircuitOpenTimeout:    time.Second,
		UFCDataCircuitHalfOpenMaxReq: 1,
		CacheTTL:                     time.Minute,
		BuildWorkers:                 2,
		DefaultFlagCode:              "us",
	}
}

func TestNewBuilder_Overrides(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	heuristics := filepath.Join(dir, "heuristics.yaml")
	require.NoError(t, os.WriteFile(heuristics, []byte("prospect_max_age: 24\n"), 0o600))
	assets := filepath.Join(dir, "assets")
	require.NoError(t, os.Mkdir(assets, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(assets, "GARCIA_STEVE_L_06-18.avif"), nil, 0o600))

	cfg := testConfig()
	cfg.HeuristicsFile = heuristics
	cfg.AssetsDir = assets

	builder, err := NewBuilder(cfg, logging.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 24.0, builder.Heuristics().ProspectMaxAge)
	assert.NotNil(t, builder.Odds())
}

func TestNewBuilder_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	badHeuristics := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(badHeuristics, []byte("standing_output_scale: 0\n"), 0o600))

	tests := map[string]func(*config.Config){
		"missing heuristics": func(c *config.Config) { c.HeuristicsFile = filepath.Join(dir, "nope.yaml") },
		"zero scale":         func(c *config.Config) { c.HeuristicsFile = badHeuristics },
		"missing odds":       func(c *config.Config) { c.OddsFile = filepath.Join(dir, "odds.yaml") },
		"missing countries":  func(c *config.Config) { c.CountriesFile = filepath.Join(dir, "countries.yaml") },
		"missing assets":     func(c *config.Config) { c.AssetsDir = filepath.Join(dir, "assets") },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg := testConfig()
			mutate(&cfg)
			_, err := NewBuilder(cfg, logging.NewNop())
			require.Error(t, err)
		})
	}
}

func TestNewRepository(t *testing.T) {
	t.Parallel()

	repo, closer, err := NewRepository(testConfig(), logging.NewNop())
	require.NoError(t, err)
	defer func() { require.NoError(t, closer()) }()

	dataset, err := repo.Dataset(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, dataset.Events)

	cfg := testConfig()
	cfg.UFCDataShape = "xml"
	_, _, err = NewRepository(cfg, logging.NewNop())
	require.Error(t, err)

	cfg = testConfig()
	cfg.UFCDataFile = ""
	cfg.UFCDataURL = "ftp://data.example.com/ufc.json"
	_, _, err = NewRepository(cfg, logging.NewNop())
	require.Error(t, err)

	cfg = testConfig()
	cfg.RedisURL = "http://not-redis"
	_, _, err = NewRepository(cfg, logging.NewNop())
	require.Error(t, err)
}

func TestNewRuntime_ServesEvents(t *testing.T) {
	t.Parallel()

	rt, err := NewRuntime(testConfig(), logging.NewNop())
	require.NoError(t, err)
	defer func() { require.NoError(t, rt.Close()) }()

	events, err := rt.Events.ListEvents(context.Background())
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(events), 2)
	assert.Equal(t, event.OfflineEventID, events[len(events)-1].ID)

	rec := httptest.NewRecorder()
	rt.Server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/events/"+event.OfflineEventID+"/card", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Onama")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestNewRuntime_RequiresAddr(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.HTTPAddr = ""
	_, err := NewRuntime(cfg, logging.NewNop())
	require.Error(t, err)
}
