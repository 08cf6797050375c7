package app

import (
	"fmt"
	"os"

	"github.com/riskibarqy/fightcard/external/countries"
	"github.com/riskibarqy/fightcard/external/oddsboard"
	"github.com/riskibarqy/fightcard/internal/config"
	"github.com/riskibarqy/fightcard/internal/platform/logging"
	"github.com/riskibarqy/fightcard/internal/reconcile"
)

// NewBuilder assembles the card builder from the bundled tables and any
// override files named in cfg.
func NewBuilder(cfg config.Config, logger *logging.Logger) (*reconcile.Builder, error) {
	if logger == nil {
		logger = logging.Default()
	}

	countryTable := countries.Default()
	if cfg.CountriesFile != "" {
		loaded, err := countries.Load(cfg.CountriesFile)
		if err != nil {
			return nil, err
		}
		countryTable = loaded
	}

	board, err := oddsboard.Load(cfg.OddsFile)
	if err != nil {
		return nil, err
	}

	heuristics := reconcile.DefaultHeuristics()
	if cfg.HeuristicsFile != "" {
		data, err := os.ReadFile(cfg.HeuristicsFile)
		if err != nil {
			return nil, fmt.Errorf("read heuristics %s: %w", cfg.HeuristicsFile, err)
		}
		heuristics, err = reconcile.ParseHeuristics(data)
		if err != nil {
			return nil, err
		}
	}

	assets, err := loadAssetIndex(cfg.AssetsDir)
	if err != nil {
		return nil, err
	}

	logger.Info("card builder ready",
		"countries", countryTable.Len(),
		"odds_lines", board.Len(),
		"asset_names", assets.Len(),
		"default_flag", cfg.DefaultFlagCode,
		"heuristics_file", cfg.HeuristicsFile,
	)

	return reconcile.NewBuilder(
		reconcile.WithFlagResolver(reconcile.NewFlagResolver(cfg.DefaultFlagCode)),
		reconcile.WithCountryInference(countryTable),
		reconcile.WithOddsLookup(board),
		reconcile.WithHeuristics(heuristics),
		reconcile.WithAssetIndex(assets),
	), nil
}

// loadAssetIndex indexes the image file names in dir, or the bundled list
// when dir is empty.
func loadAssetIndex(dir string) (*reconcile.AssetIndex, error) {
	if dir == "" {
		return reconcile.NewAssetIndex(), nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read assets dir %s: %w", dir, err)
	}
	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		files = append(files, entry.Name())
	}
	return reconcile.BuildAssetIndex(files), nil
}
