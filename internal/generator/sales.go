package generator

import (
	"io"
	"math/rand/v2"
)

// SalesGenerator generates the sales of a single salesman. The file starts
// with a DocumentType;DocumentNumber header followed by ProductID;QuantitySold;
// lines. Product IDs are drawn from ID1..ID10 regardless of how many products
// exist.
type SalesGenerator struct {
	Pools Pools

	// SalesmanName is carried for reporting only, it never reaches the file
	SalesmanName string
	SalesmanID   int64

	rand *rand.Rand
}

func (g *SalesGenerator) Init(r *rand.Rand) {
	g.rand = r
}

func (g *SalesGenerator) Header() SalesHeader {
	return SalesHeader{DocumentType: g.Pools.DocumentType, DocumentNumber: g.SalesmanID}
}

func (g *SalesGenerator) WriteHeader(w io.Writer) error {
	_, err := io.WriteString(w, g.Header().Line())
	return err
}

func (g *SalesGenerator) Next() SaleLine {
	return SaleLine{
		ProductID: ProductID(1 + g.rand.IntN(MaxSaleProductID)),
		Quantity:  1 + g.rand.IntN(MaxQuantity),
	}
}

func (g *SalesGenerator) WriteLine(w io.Writer) error {
	_, err := io.WriteString(w, g.Next().Line())
	return err
}

func (g *SalesGenerator) Description() string {
	return "Sales of one salesman: DocumentType;DocumentNumber header, then ProductID;QuantitySold;"
}

func (g *SalesGenerator) DefaultCount() int {
	return 10
}
