package countries

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/riskibarqy/fightcard/internal/reconcile"
	"gopkg.in/yaml.v3"
)

//go:embed fighters.yaml
var bundled []byte

// Table infers a fighter's country from their name.
type Table struct {
	byName map[string]string
}

// Default returns the bundled table.
func Default() *Table {
	table, err := Parse(bundled)
	if err != nil {
		panic(fmt.Sprintf("bundled fighter countries: %v", err))
	}
	return table
}

// Load reads a table from a YAML file and layers it over the bundled one.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fighter countries %s: %w", path, err)
	}
	extra, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse fighter countries %s: %w", path, err)
	}
	table := Default()
	for key, code := range extra.byName {
		table.byName[key] = code
	}
	return table, nil
}

// Parse decodes a name to ISO2 mapping.
func Parse(data []byte) (*Table, error) {
	var entries map[string]string
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	table := &Table{byName: make(map[string]string, len(entries))}
	for name, code := range entries {
		code = strings.ToLower(strings.TrimSpace(code))
		if len(code) != 2 {
			return nil, fmt.Errorf("fighter %q: country code %q is not ISO2", name, code)
		}
		if key := reconcile.NormalizeKey(name); key != "" {
			table.byName[key] = code
		}
	}
	return table, nil
}

// InferCountry returns the ISO2 code for a known fighter, or "".
func (t *Table) InferCountry(name string) string {
	if t == nil {
		return ""
	}
	return t.byName[reconcile.NormalizeKey(name)]
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.byName)
}
