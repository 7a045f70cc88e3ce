package generator

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// DocumentNumberBase and DocumentNumberSpan bound salesman document
	// numbers to [1000000000, 1900000000), always ten digits.
	DocumentNumberBase int64 = 1_000_000_000
	DocumentNumberSpan int64 = 900_000_000

	// MaxSaleProductID is the highest product index a sale line refers to.
	// It does not track how many products were generated.
	MaxSaleProductID = 10

	// MaxQuantity is the highest quantity on a sale line; the lowest is 1
	MaxQuantity = 10
)

// DefaultDocumentType is the national ID document tag written on salesman lines
const DefaultDocumentType = "CC"

// Pools holds the candidate values that fields are drawn from, with replacement
type Pools struct {
	DocumentType string
	FirstNames   []string
	LastNames    []string
	ProductNames []string
	Prices       []float64
}

var ErrEmptyPool = errors.New("empty record pool")

// DefaultPools returns the pools used by the reference run
func DefaultPools() Pools {
	return Pools{
		DocumentType: DefaultDocumentType,
		FirstNames:   []string{"Juan", "Maria", "Carlos", "Ana", "Luis", "Sofia", "Fernando", "Laura"},
		LastNames:    []string{"Perez", "Garcia", "Rodriguez", "Lopez", "Martinez", "Hernandez", "Gomez", "Diaz"},
		ProductNames: []string{"ProductA", "ProductB", "ProductC", "ProductD", "ProductE", "ProductF"},
		Prices:       []float64{20.50, 15.00, 10.00, 5.50, 7.75, 12.30},
	}
}

// Validate reports the first pool that cannot be sampled from
func (p Pools) Validate() error {
	switch {
	case p.DocumentType == "":
		return fmt.Errorf("%w: document type", ErrEmptyPool)
	case len(p.FirstNames) == 0:
		return fmt.Errorf("%w: first names", ErrEmptyPool)
	case len(p.LastNames) == 0:
		return fmt.Errorf("%w: last names", ErrEmptyPool)
	case len(p.ProductNames) == 0:
		return fmt.Errorf("%w: product names", ErrEmptyPool)
	case len(p.Prices) == 0:
		return fmt.Errorf("%w: prices", ErrEmptyPool)
	}
	for _, names := range [][]string{{p.DocumentType}, p.FirstNames, p.LastNames, p.ProductNames} {
		for _, name := range names {
			if strings.ContainsAny(name, Delimiter+"\r\n") {
				return fmt.Errorf("invalid pool value %q: contains delimiter or line break", name)
			}
		}
	}
	for _, price := range p.Prices {
		if price <= 0 {
			return fmt.Errorf("invalid price %v: must be positive", price)
		}
	}
	return nil
}

func pick[T any](r interface{ IntN(int) int }, pool []T) T {
	return pool[r.IntN(len(pool))]
}
