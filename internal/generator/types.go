package generator

import (
	"io"
	"math/rand/v2"
)

// Generator produces the record lines of one kind of fixture file
type Generator interface {
	// Init resets the generator and gives it its random source.
	// Tests pass a seeded source to get reproducible output.
	Init(r *rand.Rand)

	// WriteLine writes a single record line, newline included, to the writer
	WriteLine(w io.Writer) error

	// Description returns a human-readable description of the line format
	Description() string

	// DefaultCount returns the number of lines the reference run generates
	DefaultCount() int
}

// HeaderWriter is implemented by generators whose files begin with a header
// line that is not counted as a record.
type HeaderWriter interface {
	WriteHeader(w io.Writer) error
}
