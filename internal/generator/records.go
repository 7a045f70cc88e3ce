package generator

import (
	"strconv"
	"strings"
)

// Delimiter separates the fields of every fixture line
const Delimiter = ";"

const productIDPrefix = "ID"

// SalesmanRecord is one line of the salesmen file:
// DocumentType;DocumentNumber;FirstName;LastName
type SalesmanRecord struct {
	DocumentType   string
	DocumentNumber int64
	FirstName      string
	LastName       string
}

func (r SalesmanRecord) Line() string {
	return r.DocumentType + Delimiter +
		strconv.FormatInt(r.DocumentNumber, 10) + Delimiter +
		r.FirstName + Delimiter +
		r.LastName + "\n"
}

// ProductRecord is one line of the products file: ProductID;ProductName;UnitPrice
type ProductRecord struct {
	ID    string
	Name  string
	Price float64
}

func (r ProductRecord) Line() string {
	return r.ID + Delimiter + r.Name + Delimiter + FormatPrice(r.Price) + "\n"
}

// SalesHeader is the first line of a salesman's sales file: DocumentType;DocumentNumber
type SalesHeader struct {
	DocumentType   string
	DocumentNumber int64
}

func (h SalesHeader) Line() string {
	return h.DocumentType + Delimiter + strconv.FormatInt(h.DocumentNumber, 10) + "\n"
}

// SaleLine is one sale in a salesman's sales file. The line keeps a trailing
// delimiter: ProductID;QuantitySold;
type SaleLine struct {
	ProductID string
	Quantity  int
}

func (s SaleLine) Line() string {
	return s.ProductID + Delimiter + strconv.Itoa(s.Quantity) + Delimiter + "\n"
}

// ProductID returns the identifier of the n-th product (1-based)
func ProductID(n int) string {
	return productIDPrefix + strconv.Itoa(n)
}

// FormatPrice renders a price in its shortest decimal form, always keeping at
// least one fractional digit (15 -> "15.0", 7.75 -> "7.75").
func FormatPrice(p float64) string {
	s := strconv.FormatFloat(p, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
