package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/fightcard/internal/app"
	"github.com/riskibarqy/fightcard/internal/config"
	"github.com/riskibarqy/fightcard/internal/platform/cache"
	"github.com/riskibarqy/fightcard/internal/platform/logging"
	"github.com/riskibarqy/fightcard/internal/usecase"
)

const defaultTimeout = 30 * time.Second

func main() {
	level, err := logging.ParseLevel(envOr("APP_LOG_LEVEL", "warn"))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger := logging.NewConsole(level).Named("cardctl")
	defer func() { _ = logger.Sync() }()

	if err := run(os.Args[1:], os.Stdout, logger); err != nil {
		if errors.Is(err, errUsage) {
			printUsage()
			os.Exit(2)
		}
		logger.Error("cardctl failed", "error", err)
		os.Exit(1)
	}
}

var errUsage = errors.New("usage")

func run(args []string, out io.Writer, logger *logging.Logger) error {
	if len(args) < 2 {
		return errUsage
	}

	cmd := strings.ToLower(strings.TrimSpace(args[0]))
	want := map[string]int{"events": 2, "card": 3, "fight": 4}[cmd]
	if want == 0 || len(args) != want {
		return errUsage
	}

	cfg, err := configFromEnv(args[1])
	if err != nil {
		return err
	}
	timeout, err := time.ParseDuration(envOr("CARDCTL_TIMEOUT", defaultTimeout.String()))
	if err != nil {
		return fmt.Errorf("parse CARDCTL_TIMEOUT: %w", err)
	}

	svc, closer, err := newEventService(cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = closer() }()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var result any
	switch cmd {
	case "events":
		result, err = svc.ListEvents(ctx)
	case "card":
		result, err = svc.GetCard(ctx, args[2])
	case "fight":
		result, err = svc.GetFight(ctx, args[2], args[3])
	}
	if err != nil {
		return err
	}

	payload, err := sonic.ConfigStd.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s output: %w", cmd, err)
	}
	_, err = fmt.Fprintf(out, "%s\n", payload)
	return err
}

func newEventService(cfg config.Config, logger *logging.Logger) (*usecase.EventService, func() error, error) {
	builder, err := app.NewBuilder(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	repo, closer, err := app.NewRepository(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	svc := usecase.NewEventService(repo, builder, cache.NewStore(cfg.CacheTTL), usecase.EventServiceConfig{
		Workers: cfg.BuildWorkers,
		Logger:  logger,
	})
	return svc, closer, nil
}

// configFromEnv builds an offline configuration around a local data file.
// Only the card-building knobs are read from the environment.
func configFromEnv(dataFile string) (config.Config, error) {
	dataFile = strings.TrimSpace(dataFile)
	if dataFile == "" {
		return config.Config{}, fmt.Errorf("data file is required")
	}

	workers, err := strconv.Atoi(envOr("BUILD_WORKERS", "4"))
	if err != nil || workers < 1 {
		return config.Config{}, fmt.Errorf("invalid BUILD_WORKERS %q", os.Getenv("BUILD_WORKERS"))
	}

	return config.Config{
		UFCDataFile:     dataFile,
		UFCFightersFile: strings.TrimSpace(os.Getenv("UFC_FIGHTERS_FILE")),
		UFCDataShape:    strings.ToLower(envOr("UFC_DATA_SHAPE", "auto")),
		CacheTTL:        time.Minute,
		BuildWorkers:    workers,
		DefaultFlagCode: strings.ToLower(envOr("DEFAULT_FLAG_CODE", "us")),
		HeuristicsFile:  strings.TrimSpace(os.Getenv("HEURISTICS_FILE")),
		OddsFile:        strings.TrimSpace(os.Getenv("ODDS_FILE")),
		CountriesFile:   strings.TrimSpace(os.Getenv("COUNTRIES_FILE")),
		AssetsDir:       strings.TrimSpace(os.Getenv("ASSETS_DIR")),
	}, nil
}

func envOr(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func printUsage() {
	fmt.Println("usage:")
	fmt.Println("  cardctl events <file>")
	fmt.Println("  cardctl card <file> <eventID>")
	fmt.Println("  cardctl fight <file> <eventID> <fightKey>")
	fmt.Println()
	fmt.Println("env:")
	fmt.Println("  UFC_DATA_SHAPE=auto|scrape|sportsdata (default: auto)")
	fmt.Println("  UFC_FIGHTERS_FILE, HEURISTICS_FILE, ODDS_FILE, COUNTRIES_FILE, ASSETS_DIR")
	fmt.Println("  DEFAULT_FLAG_CODE (default: us), BUILD_WORKERS (default: 4)")
	fmt.Println("  APP_LOG_LEVEL (default: warn), CARDCTL_TIMEOUT (default: 30s)")
}
