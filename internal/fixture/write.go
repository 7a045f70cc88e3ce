package fixture

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Niyi08/GenerateIntoFiles/internal/generator"
)

var newline = []byte("\n")

// Result describes a fixture file after a write attempt.
// On failure it still reports how far the write got.
type Result struct {
	Path string
	// Lines is the number of complete records that reached the file,
	// header excluded
	Lines int
	// Bytes is the number of bytes that reached the file
	Bytes int64
}

// Option configures WriteFile
type Option func(*writeOptions)

type writeOptions struct {
	progress func(n int)
}

// WithProgress registers a callback invoked once per record written
func WithProgress(fn func(n int)) Option {
	return func(o *writeOptions) {
		o.progress = fn
	}
}

// Write streams the generator's optional header followed by count records
// to w. It returns the number of records written before any error.
func Write(w io.Writer, g generator.Generator, count int, opts ...Option) (int, error) {
	if count < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeCount, count)
	}

	var o writeOptions
	for _, opt := range opts {
		opt(&o)
	}

	if h, ok := g.(generator.HeaderWriter); ok {
		if err := h.WriteHeader(w); err != nil {
			return 0, err
		}
	}

	for i := 0; i < count; i++ {
		if err := g.WriteLine(w); err != nil {
			return i, err
		}
		if o.progress != nil {
			o.progress(1)
		}
	}
	return count, nil
}

// WriteFile creates or truncates path and writes count records from g into
// it. The file is always closed before returning; flush and close failures
// are joined with any earlier write error. A partially written file is left
// in place.
func WriteFile(path string, g generator.Generator, count int, opts ...Option) (res Result, err error) {
	res.Path = path
	if count < 0 {
		return res, fmt.Errorf("%w: %d", ErrNegativeCount, count)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return res, fmt.Errorf("%w %s: %w", ErrCreate, path, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return res, fmt.Errorf("%w %s: %w", ErrCreate, path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("%w %s: %w", ErrClose, path, cerr))
		}
	}()

	cw := &countingWriter{w: f}
	bw := bufio.NewWriter(cw)

	if _, err = Write(bw, g, count, opts...); err != nil {
		err = fmt.Errorf("%w %s: %w", ErrWrite, path, err)
	}
	if ferr := bw.Flush(); ferr != nil && err == nil {
		err = fmt.Errorf("%w %s: %w", ErrWrite, path, ferr)
	}

	// only lines whose newline reached the file count as written
	res.Lines = cw.lines
	if _, ok := g.(generator.HeaderWriter); ok && res.Lines > 0 {
		res.Lines--
	}
	res.Bytes = cw.n

	return res, err
}

// countingWriter counts the bytes and complete lines accepted by w
type countingWriter struct {
	w     io.Writer
	n     int64
	lines int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.lines += bytes.Count(p[:n], newline)
	return n, err
}
