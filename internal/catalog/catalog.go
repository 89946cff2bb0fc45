// Package catalog loads the declarative line-item catalog that drives the
// intake form: which assets, liabilities, income and expense entries exist.
// The catalog is fixed per deployment, not user-extensible.
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

//go:embed default_catalog.toml
var defaultCatalog []byte

// Item is a single named entry in the catalog.
type Item struct {
	Name string `toml:"name" json:"name"`
	Help string `toml:"help" json:"help"`
}

// Catalog holds the ordered line-item definitions for every partition of the
// intake form.
type Catalog struct {
	Assets      []Item `toml:"assets" json:"assets"`
	Liabilities []Item `toml:"liabilities" json:"liabilities"`
	Income      []Item `toml:"income" json:"income"`
	Expenses    []Item `toml:"expenses" json:"expenses"`
}

// Load reads a catalog from the given TOML file, or the embedded default
// catalog when path is empty.
func Load(path string) (*Catalog, error) {
	data := defaultCatalog
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog file: %w", err)
		}
		data = b
	}

	var c Catalog
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	partitions := map[string][]Item{
		"assets":      c.Assets,
		"liabilities": c.Liabilities,
		"income":      c.Income,
		"expenses":    c.Expenses,
	}
	for partition, items := range partitions {
		if len(items) == 0 {
			return fmt.Errorf("catalog partition %q is empty", partition)
		}
		seen := make(map[string]bool, len(items))
		for _, item := range items {
			if item.Name == "" {
				return fmt.Errorf("catalog partition %q has an item without a name", partition)
			}
			if seen[item.Name] {
				return fmt.Errorf("catalog partition %q has duplicate item %q", partition, item.Name)
			}
			seen[item.Name] = true
		}
	}
	return nil
}
