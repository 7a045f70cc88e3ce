package generator

import (
	"errors"
	"fmt"
	"sort"
)

// Options parameterise the generators built by the registry
type Options struct {
	Pools        Pools
	SalesmanName string
	SalesmanID   int64
}

// Generator names
const (
	Salesmen = "salesmen"
	Products = "products"
	Sales    = "sales"
)

var ErrUnknownGenerator = errors.New("unknown generator")

// Registry maps generator names to factory functions.
// Factories take Options so pools and the salesman can be injected.
var Registry = map[string]func(Options) Generator{
	Salesmen: func(o Options) Generator { return &SalesmanGenerator{Pools: o.Pools} },
	Products: func(o Options) Generator { return &ProductGenerator{Pools: o.Pools} },
	Sales: func(o Options) Generator {
		return &SalesGenerator{Pools: o.Pools, SalesmanName: o.SalesmanName, SalesmanID: o.SalesmanID}
	},
}

// Get returns a generator by name
func Get(name string, opts Options) (Generator, error) {
	factory, exists := Registry[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknownGenerator, name)
	}
	return factory(opts), nil
}

// List returns all available generator names, sorted
func List() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
