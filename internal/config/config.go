// Package config loads the fixture generator configuration from defaults, an
// optional TOML file, environment variables and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/Niyi08/GenerateIntoFiles/internal/fixture"
	"github.com/Niyi08/GenerateIntoFiles/internal/generator"
)

const (
	defaultDir          = "."
	defaultSalesmanName = "Juan Perez"
	defaultSalesmanID   = 1234567890
	defaultLogLevel     = "info"
)

var ErrInvalidConfig = errors.New("invalid config")

type OutputConfig struct {
	Dir              string `toml:"dir"`
	SalesmenFile     string `toml:"salesmen_file"`
	ProductsFile     string `toml:"products_file"`
	SalesFilePattern string `toml:"sales_file_pattern"`
}

type CountsConfig struct {
	Salesmen int `toml:"salesmen"`
	Products int `toml:"products"`
	Sales    int `toml:"sales"`
}

// SalesmanConfig selects the salesman whose sales file is generated
type SalesmanConfig struct {
	Name string `toml:"name"`
	ID   int64  `toml:"id"`
}

type PoolsConfig struct {
	DocumentType string    `toml:"document_type"`
	FirstNames   []string  `toml:"first_names"`
	LastNames    []string  `toml:"last_names"`
	ProductNames []string  `toml:"product_names"`
	Prices       []float64 `toml:"prices"`
}

type RunConfig struct {
	// Seed 0 means a fresh time-based seed per run
	Seed uint64 `toml:"seed"`
	// Manifest is the bbolt run ledger path; empty disables it
	Manifest string `toml:"manifest"`
	LogLevel string `toml:"log_level"`
}

type Config struct {
	Output   OutputConfig   `toml:"output"`
	Counts   CountsConfig   `toml:"counts"`
	Salesman SalesmanConfig `toml:"salesman"`
	Pools    PoolsConfig    `toml:"pools"`
	Run      RunConfig      `toml:"run"`
}

// Default returns the configuration of the reference run
func Default() Config {
	files := fixture.DefaultFiles()
	pools := generator.DefaultPools()

	return Config{
		Output: OutputConfig{
			Dir:              defaultDir,
			SalesmenFile:     files.Salesmen,
			ProductsFile:     files.Products,
			SalesFilePattern: files.SalesPattern,
		},
		Counts: CountsConfig{
			Salesmen: (&generator.SalesmanGenerator{}).DefaultCount(),
			Products: (&generator.ProductGenerator{}).DefaultCount(),
			Sales:    (&generator.SalesGenerator{}).DefaultCount(),
		},
		Salesman: SalesmanConfig{
			Name: defaultSalesmanName,
			ID:   defaultSalesmanID,
		},
		Pools: PoolsConfig{
			DocumentType: pools.DocumentType,
			FirstNames:   pools.FirstNames,
			LastNames:    pools.LastNames,
			ProductNames: pools.ProductNames,
			Prices:       pools.Prices,
		},
		Run: RunConfig{
			LogLevel: defaultLogLevel,
		},
	}
}

// Load is Read followed by Validate
func Load(path string, required bool) (Config, error) {
	cfg, err := Read(path, required)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Read builds a configuration from defaults overlaid with the TOML file at
// path and then the environment. A missing file is an error only when
// required is set. The result is not validated, so callers can apply further
// overrides (command-line flags) before calling Validate.
func Read(path string, required bool) (Config, error) {
	cfg := Default()

	if path != "" {
		exists, err := fileExists(path)
		if err != nil {
			return Config{}, err
		}
		if exists {
			if err := readFile(path, &cfg); err != nil {
				return Config{}, err
			}
		} else if required {
			return Config{}, fmt.Errorf("config file %s not found", path)
		}
	}

	if err := applyEnv(&cfg, os.Getenv); err != nil {
		return Config{}, err
	}
	cfg.setDefaults()

	return cfg, nil
}

func readFile(path string, cfg *Config) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalidConfig, path, strings.Join(keys, ", "))
	}
	return nil
}

func fileExists(f string) (bool, error) {
	info, err := os.Stat(f)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if info.IsDir() {
		return false, fmt.Errorf("%s is a directory but a file is required", f)
	}
	return true, nil
}

func (c *Config) setDefaults() {
	if c.Output.Dir == "" {
		c.Output.Dir = defaultDir
	}
	if c.Run.LogLevel == "" {
		c.Run.LogLevel = defaultLogLevel
	}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

func (c Config) Validate() error {
	if c.Counts.Salesmen < 0 {
		return invalid("[counts] salesmen must not be negative")
	}
	if c.Counts.Products < 0 {
		return invalid("[counts] products must not be negative")
	}
	if c.Counts.Sales < 0 {
		return invalid("[counts] sales must not be negative")
	}
	if c.Salesman.ID <= 0 {
		return invalid("[salesman] id must be positive")
	}
	if err := c.GeneratorPools().Validate(); err != nil {
		return invalid("[pools]: %v", err)
	}
	if err := c.Files().Validate(); err != nil {
		return invalid("[output]: %v", err)
	}
	switch strings.ToLower(c.Run.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return invalid("[run] log_level %q is not one of debug, info, warn, error", c.Run.LogLevel)
	}
	return nil
}

// GeneratorPools converts the [pools] section for the generators
func (c Config) GeneratorPools() generator.Pools {
	return generator.Pools{
		DocumentType: c.Pools.DocumentType,
		FirstNames:   c.Pools.FirstNames,
		LastNames:    c.Pools.LastNames,
		ProductNames: c.Pools.ProductNames,
		Prices:       c.Pools.Prices,
	}
}

// Files converts the [output] file names for the fixture builder
func (c Config) Files() fixture.Files {
	return fixture.Files{
		Salesmen:     c.Output.SalesmenFile,
		Products:     c.Output.ProductsFile,
		SalesPattern: c.Output.SalesFilePattern,
	}
}
