package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all gridstash configuration
type Config struct {
	Catalog     CatalogConfig     `yaml:"catalog"`
	Inventories InventoriesConfig `yaml:"inventories"`
	Spawner     SpawnerConfig     `yaml:"spawner"`
	Journal     JournalConfig     `yaml:"journal"`
}

// CatalogConfig points at the item definition catalog
type CatalogConfig struct {
	Path string `yaml:"path"` // empty uses the built-in sample catalog
}

// GridConfig holds the size of one inventory grid
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// InventoriesConfig holds the grids created for a player
type InventoriesConfig struct {
	Player GridConfig `yaml:"player"`
	Stash  GridConfig `yaml:"stash"`
}

// SpawnerConfig holds loot spawner settings
type SpawnerConfig struct {
	Seed  int64 `yaml:"seed"`
	Count int   `yaml:"count"`
}

// JournalConfig holds event journal settings
type JournalConfig struct {
	Dir    string `yaml:"dir"` // empty disables the journal
	Prefix string `yaml:"prefix"`
}

// Default returns a configuration with every default applied
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes configuration from YAML bytes
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects sizes the inventory engine cannot host
func (c *Config) Validate() error {
	grids := map[string]GridConfig{"player": c.Inventories.Player, "stash": c.Inventories.Stash}
	for name, g := range grids {
		if g.Width < 0 || g.Height < 0 {
			return fmt.Errorf("invalid %s inventory size %dx%d", name, g.Width, g.Height)
		}
	}
	if c.Spawner.Count < 0 {
		return fmt.Errorf("invalid spawner count %d", c.Spawner.Count)
	}
	return nil
}

func (c *Config) applyDefaults() {
	// Set defaults if not provided
	if c.Inventories.Player.Width == 0 {
		c.Inventories.Player.Width = 4
	}
	if c.Inventories.Player.Height == 0 {
		c.Inventories.Player.Height = 3
	}
	if c.Inventories.Stash.Width == 0 {
		c.Inventories.Stash.Width = 3
	}
	if c.Inventories.Stash.Height == 0 {
		c.Inventories.Stash.Height = 3
	}
	if c.Spawner.Seed == 0 {
		c.Spawner.Seed = 1
	}
	if c.Spawner.Count == 0 {
		c.Spawner.Count = 12
	}
	if c.Journal.Prefix == "" {
		c.Journal.Prefix = "inventory"
	}
}
