package config

import (
	"fmt"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables that override the config file
const (
	EnvOutputDir = "GENINFO_OUTPUT_DIR"
	EnvSalesmen  = "GENINFO_SALESMEN"
	EnvProducts  = "GENINFO_PRODUCTS"
	EnvSales     = "GENINFO_SALES"
	EnvSeed      = "GENINFO_SEED"
	EnvManifest  = "GENINFO_MANIFEST"
	EnvLogLevel  = "GENINFO_LOG_LEVEL"
)

// LoadDotEnv loads variables from the given .env file when it exists.
// Variables already set in the process environment take precedence.
func LoadDotEnv(path string) error {
	exists, err := fileExists(path)
	if err != nil || !exists {
		return err
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config, getenv func(string) string) error {
	if v := getenv(EnvOutputDir); v != "" {
		cfg.Output.Dir = v
	}
	if v := getenv(EnvManifest); v != "" {
		cfg.Run.Manifest = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		cfg.Run.LogLevel = v
	}

	for key, dst := range map[string]*int{
		EnvSalesmen: &cfg.Counts.Salesmen,
		EnvProducts: &cfg.Counts.Products,
		EnvSales:    &cfg.Counts.Sales,
	} {
		if err := envInt(getenv, key, dst); err != nil {
			return err
		}
	}

	if v := getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an unsigned integer", ErrInvalidConfig, EnvSeed, v)
		}
		cfg.Run.Seed = seed
	}
	return nil
}

func envInt(getenv func(string) string, key string, dst *int) error {
	v := getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, key, v)
	}
	*dst = n
	return nil
}
