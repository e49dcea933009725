// Package config handles library configuration.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/matsen/mixology/internal/catalog"
	"github.com/matsen/mixology/internal/fuzzy"
	"github.com/matsen/mixology/internal/graph"
	"github.com/matsen/mixology/internal/similarity"
)

// Config represents library configuration stored in .mixology/config.json.
type Config struct {
	Threshold         int     `json:"threshold"`          // Minimum similarity score for an edge
	FuzzyCutoff       float64 `json:"fuzzy_cutoff"`       // Minimum ratio for name suggestions
	FuzzyLimit        int     `json:"fuzzy_limit"`        // Maximum name suggestions
	Seed              uint64  `json:"seed"`               // Random pick seed, 0 for time-seeded
	IngredientsColumn int     `json:"ingredients_column"` // Dataset column holding ingredient pairs
}

const (
	MixologyDir  = ".mixology"
	ConfigFile   = "config.json"
	CatalogFile  = "cocktails.jsonl"
	CacheDir     = "cache"
	DBFile       = "cocktails.db"
	VizFile      = "graph.html"
	EnvLogLevel  = "MIX_LOG_LEVEL"
	EnvLogFormat = "MIX_LOG_FORMAT"
)

// ErrNotLibrary is returned when no .mixology directory is found.
var ErrNotLibrary = errors.New("not in a mixology library (no .mixology directory found)")

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Keys lists the settable config keys in display order.
var Keys = []string{"threshold", "fuzzy_cutoff", "fuzzy_limit", "seed", "ingredients_column"}

// Default returns the configuration written by mix init.
func Default() *Config {
	return &Config{
		Threshold:         similarity.DefaultThreshold,
		FuzzyCutoff:       fuzzy.DefaultCutoff,
		FuzzyLimit:        fuzzy.DefaultLimit,
		IngredientsColumn: catalog.DefaultIngredientsColumn,
	}
}

// LibraryPath returns the path to the .mixology directory from a root path.
func LibraryPath(root string) string {
	return filepath.Join(root, MixologyDir)
}

// ConfigPath returns the path to config.json from a root path.
func ConfigPath(root string) string {
	return filepath.Join(root, MixologyDir, ConfigFile)
}

// CatalogPath returns the path to cocktails.jsonl from a root path.
func CatalogPath(root string) string {
	return filepath.Join(root, MixologyDir, CatalogFile)
}

// CachePath returns the path to the cache directory from a root path.
func CachePath(root string) string {
	return filepath.Join(root, MixologyDir, CacheDir)
}

// DBPath returns the path to cocktails.db from a root path.
func DBPath(root string) string {
	return filepath.Join(root, MixologyDir, CacheDir, DBFile)
}

// IsLibrary checks if the given path contains a mixology library.
func IsLibrary(root string) bool {
	info, err := os.Stat(LibraryPath(root))
	return err == nil && info.IsDir()
}

// FindLibrary walks up from the given path to find a mixology library.
// Returns the library root path or ErrNotLibrary.
func FindLibrary(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	for {
		if IsLibrary(abs) {
			return abs, nil
		}

		parent := filepath.Dir(abs)
		if parent == abs {
			return "", ErrNotLibrary
		}
		abs = parent
	}
}

// Load reads and validates configuration from the library at the given root.
// Keys missing from the file keep their defaults.
func Load(root string) (*Config, error) {
	data, err := os.ReadFile(ConfigPath(root))
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes configuration to the library at the given root.
func (c *Config) Save(root string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(ConfigPath(root), data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if err := c.GraphOptions().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.FuzzyLimit < 1 {
		return fmt.Errorf("%w: fuzzy_limit must be at least 1, got %d", ErrInvalidConfig, c.FuzzyLimit)
	}
	if c.IngredientsColumn <= catalog.ColumnRecipe {
		return fmt.Errorf("%w: ingredients_column must be greater than %d, got %d",
			ErrInvalidConfig, catalog.ColumnRecipe, c.IngredientsColumn)
	}
	return nil
}

// GraphOptions converts the config into graph construction options.
func (c *Config) GraphOptions() graph.Options {
	return graph.Options{
		Threshold:   c.Threshold,
		FuzzyLimit:  c.FuzzyLimit,
		FuzzyCutoff: c.FuzzyCutoff,
	}
}

// Schema returns the dataset schema for imports.
func (c *Config) Schema() catalog.Schema {
	return catalog.Schema{IngredientsColumn: c.IngredientsColumn}
}

// Get returns the value of a config key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "threshold":
		return strconv.Itoa(c.Threshold), nil
	case "fuzzy_cutoff":
		return strconv.FormatFloat(c.FuzzyCutoff, 'g', -1, 64), nil
	case "fuzzy_limit":
		return strconv.Itoa(c.FuzzyLimit), nil
	case "seed":
		return strconv.FormatUint(c.Seed, 10), nil
	case "ingredients_column":
		return strconv.Itoa(c.IngredientsColumn), nil
	}
	return "", fmt.Errorf("unknown config key: %s (valid: %v)", key, Keys)
}

// Set parses and assigns a config key, then validates the result. On error
// the config is left unchanged.
func (c *Config) Set(key, value string) error {
	next := *c
	var err error
	switch key {
	case "threshold":
		next.Threshold, err = strconv.Atoi(value)
	case "fuzzy_cutoff":
		next.FuzzyCutoff, err = strconv.ParseFloat(value, 64)
	case "fuzzy_limit":
		next.FuzzyLimit, err = strconv.Atoi(value)
	case "seed":
		next.Seed, err = strconv.ParseUint(value, 10, 64)
	case "ingredients_column":
		next.IngredientsColumn, err = strconv.Atoi(value)
	default:
		return fmt.Errorf("unknown config key: %s (valid: %v)", key, Keys)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, key, err)
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*c = next
	return nil
}

// ExpandPath expands ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path // Return original if we can't get home directory
	}

	return filepath.Join(home, path[1:])
}
