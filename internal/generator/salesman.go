package generator

import (
	"io"
	"math/rand/v2"
)

// SalesmanGenerator generates salesman lines: DocumentType;DocumentNumber;FirstName;LastName
type SalesmanGenerator struct {
	Pools Pools
	rand  *rand.Rand
}

func (g *SalesmanGenerator) Init(r *rand.Rand) {
	g.rand = r
}

// Next draws one salesman. Document numbers are not checked for collisions.
func (g *SalesmanGenerator) Next() SalesmanRecord {
	return SalesmanRecord{
		DocumentType:   g.Pools.DocumentType,
		DocumentNumber: DocumentNumberBase + g.rand.Int64N(DocumentNumberSpan),
		FirstName:      pick(g.rand, g.Pools.FirstNames),
		LastName:       pick(g.rand, g.Pools.LastNames),
	}
}

func (g *SalesmanGenerator) WriteLine(w io.Writer) error {
	_, err := io.WriteString(w, g.Next().Line())
	return err
}

func (g *SalesmanGenerator) Description() string {
	return "Salesmen: DocumentType;DocumentNumber;FirstName;LastName"
}

func (g *SalesmanGenerator) DefaultCount() int {
	return 5
}
