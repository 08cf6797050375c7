package oddsboard

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/riskibarqy/fightcard/internal/reconcile"
	"gopkg.in/yaml.v3"
)

//go:embed board.yaml
var bundled []byte

type Line struct {
	Fighter1   string  `yaml:"fighter1"`
	Fighter2   string  `yaml:"fighter2"`
	Moneyline1 float64 `yaml:"moneyline1"`
	Moneyline2 float64 `yaml:"moneyline2"`
}

type document struct {
	Fights []Line `yaml:"fights"`
}

type pair struct {
	first, second string
}

// Board is a static odds table keyed by fighter pair. Lookups do not care
// which corner a fighter is listed in.
type Board struct {
	lines map[pair]Line
}

func Default() *Board {
	board, err := Parse(bundled)
	if err != nil {
		panic(fmt.Sprintf("bundled odds board: %v", err))
	}
	return board
}

// Load reads a board from a YAML file. An empty path yields the bundled board.
func Load(path string) (*Board, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read odds board %s: %w", path, err)
	}
	board, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse odds board %s: %w", path, err)
	}
	return board, nil
}

func Parse(data []byte) (*Board, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	board := &Board{lines: make(map[pair]Line, len(doc.Fights))}
	for i, line := range doc.Fights {
		a, b := reconcile.NormalizeKey(line.Fighter1), reconcile.NormalizeKey(line.Fighter2)
		if a == "" || b == "" {
			return nil, fmt.Errorf("fight %d: both fighter names are required", i)
		}
		if line.Moneyline1 == 0 || line.Moneyline2 == 0 {
			return nil, fmt.Errorf("fight %d (%s vs %s): moneylines must be non-zero", i, line.Fighter1, line.Fighter2)
		}
		board.lines[pair{first: a, second: b}] = line
	}
	return board, nil
}

// Lookup returns the moneylines for fighter1 and fighter2 in that order.
func (b *Board) Lookup(fighter1, fighter2 string) (float64, float64, bool) {
	if b == nil {
		return 0, 0, false
	}
	x, y := reconcile.NormalizeKey(fighter1), reconcile.NormalizeKey(fighter2)
	if x == "" || y == "" {
		return 0, 0, false
	}
	if line, ok := b.lines[pair{first: x, second: y}]; ok {
		return line.Moneyline1, line.Moneyline2, true
	}
	if line, ok := b.lines[pair{first: y, second: x}]; ok {
		return line.Moneyline2, line.Moneyline1, true
	}
	return 0, 0, false
}

func (b *Board) Len() int {
	if b == nil {
		return 0
	}
	return len(b.lines)
}
