package generator

import (
	"io"
	"math/rand/v2"
)

// ProductGenerator generates product lines: ProductID;ProductName;UnitPrice.
// IDs are sequential from ID1, so the generator is stateful; Init restarts
// the sequence.
type ProductGenerator struct {
	Pools Pools
	rand  *rand.Rand
	next  int
}

func (g *ProductGenerator) Init(r *rand.Rand) {
	g.rand = r
	g.next = 0
}

func (g *ProductGenerator) Next() ProductRecord {
	g.next++
	return ProductRecord{
		ID:    ProductID(g.next),
		Name:  pick(g.rand, g.Pools.ProductNames),
		Price: pick(g.rand, g.Pools.Prices),
	}
}

func (g *ProductGenerator) WriteLine(w io.Writer) error {
	_, err := io.WriteString(w, g.Next().Line())
	return err
}

func (g *ProductGenerator) Description() string {
	return "Products: ProductID;ProductName;UnitPrice"
}

func (g *ProductGenerator) DefaultCount() int {
	return 5
}
