// generateinfofiles writes the salesmen, products and per-salesman sales
// fixture files consumed by the sales report exercise.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"

	"github.com/Niyi08/GenerateIntoFiles/internal/config"
	"github.com/Niyi08/GenerateIntoFiles/internal/fixture"
	"github.com/Niyi08/GenerateIntoFiles/internal/generator"
	"github.com/Niyi08/GenerateIntoFiles/internal/manifest"
)

const (
	defaultConfigFile = "geninfo.toml"
	defaultEnvFile    = ".env"
)

var errStepsFailed = errors.New("one or more fixture files failed")

type options struct {
	configFile string
	envFile    string
	logJSON    bool
	progress   bool
	history    bool
	list       bool

	dir      string
	salesmen int
	products int
	sales    int
	name     string
	id       int64
	seed     uint64
	manifest string
	logLevel string
}

func parseFlags(args []string, stderr io.Writer) (*options, *flag.FlagSet, error) {
	var o options
	fs := flag.NewFlagSet("generateinfofiles", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&o.configFile, "config", defaultConfigFile, "path to TOML config file (optional unless set)")
	fs.StringVar(&o.envFile, "env", defaultEnvFile, "path to .env file (optional)")
	fs.BoolVar(&o.logJSON, "log-json", false, "log JSON lines instead of console output")
	fs.BoolVar(&o.progress, "progress", false, "show a progress bar per file")
	fs.BoolVar(&o.history, "history", false, "print the runs recorded in the manifest and exit")
	fs.BoolVar(&o.list, "list", false, "print the available generators and exit")

	fs.StringVar(&o.dir, "dir", "", "output directory")
	fs.IntVar(&o.salesmen, "salesmen", 0, "number of salesmen to generate")
	fs.IntVar(&o.products, "products", 0, "number of products to generate")
	fs.IntVar(&o.sales, "sales", 0, "number of sales to generate for the salesman")
	fs.StringVar(&o.name, "name", "", "salesman display name")
	fs.Int64Var(&o.id, "id", 0, "salesman document number")
	fs.Uint64Var(&o.seed, "seed", 0, "random seed, 0 for a time-based seed")
	fs.StringVar(&o.manifest, "manifest", "", "bbolt run manifest path, empty to disable")
	fs.StringVar(&o.logLevel, "log-level", "", "logging level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return &o, fs, nil
}

// applyFlags overrides cfg with the flags given on the command line
func applyFlags(cfg *config.Config, o *options, fs *flag.FlagSet) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dir":
			cfg.Output.Dir = o.dir
		case "salesmen":
			cfg.Counts.Salesmen = o.salesmen
		case "products":
			cfg.Counts.Products = o.products
		case "sales":
			cfg.Counts.Sales = o.sales
		case "name":
			cfg.Salesman.Name = o.name
		case "id":
			cfg.Salesman.ID = o.id
		case "seed":
			cfg.Run.Seed = o.seed
		case "manifest":
			cfg.Run.Manifest = o.manifest
		case "log-level":
			cfg.Run.LogLevel = o.logLevel
		}
	})
}

func isSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func getLoggerLevel(s string) zerolog.Level {
	switch s {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}

func newLogger(w io.Writer, level string, json bool) zerolog.Logger {
	if !json {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).With().Timestamp().Logger().Level(getLoggerLevel(level))
}

func loadConfig(o *options, fs *flag.FlagSet) (config.Config, error) {
	if err := config.LoadDotEnv(o.envFile); err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Read(o.configFile, isSet(fs, "config"))
	if err != nil {
		return config.Config{}, err
	}
	applyFlags(&cfg, o, fs)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x5851f42d4c957f2d))
}

// openStore opens the bbolt manifest at path. Without a path runs are
// recorded in memory and dropped on exit.
func openStore(path string, logger zerolog.Logger) (manifest.Store, error) {
	if path == "" {
		return manifest.NewMemoryStore(), nil
	}
	store, err := manifest.NewBboltStore(path, logger)
	if err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	return store, nil
}

// step is one generation operation of a run
type step struct {
	generator string
	count     int
	write     func() (fixture.Result, error)
	done      string
}

func run(args []string, stdout, stderr io.Writer) error {
	o, fs, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	if o.list {
		printGenerators(stdout)
		return nil
	}

	cfg, err := loadConfig(o, fs)
	if err != nil {
		return err
	}
	logger := newLogger(stderr, cfg.Run.LogLevel, o.logJSON)

	if o.history && cfg.Run.Manifest == "" {
		return errors.New("-history needs a manifest (-manifest or [run] manifest)")
	}

	store, err := openStore(cfg.Run.Manifest, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error().Err(err).Msg("closing manifest")
		}
	}()

	if o.history {
		return printHistory(stdout, store)
	}

	seed := cfg.Run.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Debug().Uint64("seed", seed).Str("dir", cfg.Output.Dir).Msg("starting run")

	bcfg := fixture.Config{
		Dir:   cfg.Output.Dir,
		Files: cfg.Files(),
		Pools: cfg.GeneratorPools(),
		Rand:  newRand(seed),
	}
	if o.progress {
		bcfg.Progress = progressBars(stderr)
	}
	b, err := fixture.NewBuilder(bcfg)
	if err != nil {
		return err
	}

	steps := []step{
		{
			generator: generator.Salesmen,
			count:     cfg.Counts.Salesmen,
			write:     func() (fixture.Result, error) { return b.SalesmenFile(cfg.Counts.Salesmen) },
			done:      "Salesman information file generated successfully.",
		},
		{
			generator: generator.Products,
			count:     cfg.Counts.Products,
			write:     func() (fixture.Result, error) { return b.ProductsFile(cfg.Counts.Products) },
			done:      "Product information file generated successfully.",
		},
		{
			generator: generator.Sales,
			count:     cfg.Counts.Sales,
			write: func() (fixture.Result, error) {
				return b.SalesFile(cfg.Counts.Sales, cfg.Salesman.Name, cfg.Salesman.ID)
			},
			done: fmt.Sprintf("Sales file for salesman %s generated successfully.", cfg.Salesman.Name),
		},
	}

	rec := manifest.NewRun(seed)
	failed := 0
	for _, s := range steps {
		res, err := s.write()
		rec.Record(s.generator, res.Path, s.count, res.Lines, res.Bytes, err)
		if err != nil {
			failed++
			logger.Error().Err(err).
				Str("generator", s.generator).
				Str("path", res.Path).
				Int("lines", res.Lines).
				Msg("fixture file incomplete")
			continue
		}
		logger.Info().
			Str("generator", s.generator).
			Str("path", res.Path).
			Int("lines", res.Lines).
			Int64("bytes", res.Bytes).
			Msg("fixture file written")
		fmt.Fprintf(stdout, "%s (%s, %d lines, %s)\n", s.done, res.Path, res.Lines, humanize.Bytes(uint64(res.Bytes)))
	}
	rec.Finish()

	if err := store.SaveRun(rec); err != nil {
		logger.Error().Err(err).Str("run", rec.ID).Msg("saving run to manifest")
	} else {
		logger.Debug().Str("run", rec.ID).Msg("run recorded")
	}

	if failed > 0 {
		fmt.Fprintf(stdout, "%d of %d files could not be generated (seed %d).\n", failed, len(steps), seed)
		return errStepsFailed
	}
	fmt.Fprintf(stdout, "All files have been generated successfully (seed %d, %s).\n", seed, humanize.Bytes(uint64(rec.TotalBytes())))
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		if !errors.Is(err, errStepsFailed) {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		}
		os.Exit(1)
	}
}
