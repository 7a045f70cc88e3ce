package fixture

import (
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"strings"

	"github.com/Niyi08/GenerateIntoFiles/internal/generator"
)

// Files names the fixture files inside the output directory
type Files struct {
	Salesmen string
	Products string
	// SalesPattern holds a single %d that receives the salesman id
	SalesPattern string
}

func DefaultFiles() Files {
	return Files{
		Salesmen:     "vendedores.txt",
		Products:     "productos.txt",
		SalesPattern: "vendedor_%d.txt",
	}
}

func (f Files) Validate() error {
	if f.Salesmen == "" || f.Products == "" || f.SalesPattern == "" {
		return fmt.Errorf("%w: file names must not be empty", ErrInvalidFiles)
	}
	if strings.Count(f.SalesPattern, "%") != 1 || strings.Count(f.SalesPattern, "%d") != 1 {
		return fmt.Errorf("%w: sales pattern %q must contain exactly one %%d", ErrInvalidFiles, f.SalesPattern)
	}
	return nil
}

// ProgressFunc is called before a file is written and returns the per-record
// callback for it, or nil.
type ProgressFunc func(label string, total int) func(n int)

// Config configures a Builder
type Config struct {
	Dir   string
	Files Files
	Pools generator.Pools
	// Rand is shared by every file the builder writes.
	// Nil means a randomly seeded source.
	Rand     *rand.Rand
	Progress ProgressFunc
}

// Builder writes the three kinds of fixture files
type Builder struct {
	dir      string
	files    Files
	pools    generator.Pools
	rand     *rand.Rand
	progress ProgressFunc
}

func NewBuilder(cfg Config) (*Builder, error) {
	if err := cfg.Pools.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Files.Validate(); err != nil {
		return nil, err
	}

	r := cfg.Rand
	if r == nil {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return &Builder{
		dir:      cfg.Dir,
		files:    cfg.Files,
		pools:    cfg.Pools,
		rand:     r,
		progress: cfg.Progress,
	}, nil
}

// SalesmenPath returns where SalesmenFile writes
func (b *Builder) SalesmenPath() string {
	return filepath.Join(b.dir, b.files.Salesmen)
}

// ProductsPath returns where ProductsFile writes
func (b *Builder) ProductsPath() string {
	return filepath.Join(b.dir, b.files.Products)
}

// SalesPath returns where SalesFile writes for the given salesman
func (b *Builder) SalesPath(id int64) string {
	return filepath.Join(b.dir, fmt.Sprintf(b.files.SalesPattern, id))
}

// SalesmenFile writes count salesmen, one per line
func (b *Builder) SalesmenFile(count int) (Result, error) {
	return b.write(generator.Salesmen, b.SalesmenPath(), count, generator.Options{Pools: b.pools})
}

// ProductsFile writes count products with IDs ID1..ID<count>
func (b *Builder) ProductsFile(count int) (Result, error) {
	return b.write(generator.Products, b.ProductsPath(), count, generator.Options{Pools: b.pools})
}

// SalesFile writes the sales file of one salesman: a header carrying id,
// then count sale lines. name is not written to the file.
func (b *Builder) SalesFile(count int, name string, id int64) (Result, error) {
	path := b.SalesPath(id)
	if id <= 0 {
		return Result{Path: path}, fmt.Errorf("%w: %d", ErrInvalidSalesmanID, id)
	}
	return b.write(generator.Sales, path, count, generator.Options{
		Pools:        b.pools,
		SalesmanName: name,
		SalesmanID:   id,
	})
}

func (b *Builder) write(name, path string, count int, opts generator.Options) (Result, error) {
	g, err := generator.Get(name, opts)
	if err != nil {
		return Result{Path: path}, err
	}
	g.Init(b.rand)

	var wopts []Option
	if b.progress != nil && count >= 0 {
		if fn := b.progress(filepath.Base(path), count); fn != nil {
			wopts = append(wopts, WithProgress(fn))
		}
	}

	return WriteFile(path, g, count, wopts...)
}
