package fixture

import (
	"bytes"
	"errors"
	"io/fs"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Niyi08/GenerateIntoFiles/internal/generator"
)

var errDiskFull = errors.New("disk full")

// shortWriter accepts limit bytes and then fails
type shortWriter struct {
	limit int
	buf   bytes.Buffer
}

func (s *shortWriter) Write(p []byte) (int, error) {
	room := s.limit - s.buf.Len()
	if room <= 0 {
		return 0, errDiskFull
	}
	if len(p) > room {
		s.buf.Write(p[:room])
		return room, errDiskFull
	}
	return s.buf.Write(p)
}

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed+1))
}

func newGenerator(t *testing.T, name string) generator.Generator {
	t.Helper()
	g, err := generator.Get(name, generator.Options{Pools: generator.DefaultPools(), SalesmanID: 1234567890})
	require.NoError(t, err)
	g.Init(seeded(7))
	return g
}

func TestWrite(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		generator string
		count     int
		wantLines int
	}{
		{name: "zero salesmen", generator: generator.Salesmen, count: 0, wantLines: 0},
		{name: "zero sales keeps header", generator: generator.Sales, count: 0, wantLines: 1},
		{name: "products", generator: generator.Products, count: 12, wantLines: 12},
		{name: "sales", generator: generator.Sales, count: 12, wantLines: 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			n, err := Write(&buf, newGenerator(t, tt.generator), tt.count)
			require.NoError(t, err)
			assert.Equal(t, tt.count, n)
			assert.Equal(t, tt.wantLines, bytes.Count(buf.Bytes(), []byte("\n")))
		})
	}
}

func TestWriteNegativeCount(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	_, err := Write(&buf, newGenerator(t, generator.Salesmen), -1)
	assert.ErrorIs(t, err, ErrNegativeCount)
	assert.Zero(t, buf.Len())
}

func TestWriteReportsProgressAndPartialCount(t *testing.T) {
	t.Parallel()

	calls := 0
	n, err := Write(&bytes.Buffer{}, newGenerator(t, generator.Products), 25, WithProgress(func(n int) { calls += n }))
	require.NoError(t, err)
	assert.Equal(t, 25, n)
	assert.Equal(t, 25, calls)

	// every product line is longer than 10 bytes, so the third line fails
	w := &shortWriter{limit: 25}
	n, err = Write(w, newGenerator(t, generator.Products), 10)
	assert.ErrorIs(t, err, errDiskFull)
	assert.Less(t, n, 10)
}

func TestWriteHeaderFailure(t *testing.T) {
	t.Parallel()

	n, err := Write(&shortWriter{limit: 0}, newGenerator(t, generator.Sales), 3)
	assert.ErrorIs(t, err, errDiskFull)
	assert.Zero(t, n)
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "dir", "productos.txt")

	res, err := WriteFile(path, newGenerator(t, generator.Products), 4)
	require.NoError(t, err)
	assert.Equal(t, path, res.Path)
	assert.Equal(t, 4, res.Lines)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, info.Size(), res.Bytes)
}

func TestWriteFileTruncatesExisting(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "vendedores.txt")
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte("stale\n"), 100), 0644))

	_, err := WriteFile(path, newGenerator(t, generator.Salesmen), 0)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestWriteFileCreateError(t *testing.T) {
	t.Parallel()

	// a directory cannot be opened for writing
	dir := t.TempDir()
	res, err := WriteFile(dir, newGenerator(t, generator.Salesmen), 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCreate)

	var pathErr *fs.PathError
	assert.True(t, errors.As(err, &pathErr))
	assert.Zero(t, res.Lines)

	// parent is a regular file
	file := filepath.Join(t.TempDir(), "plain")
	require.NoError(t, os.WriteFile(file, nil, 0644))
	_, err = WriteFile(filepath.Join(file, "out.txt"), newGenerator(t, generator.Salesmen), 3)
	assert.ErrorIs(t, err, ErrCreate)
}

func TestWriteFileNegativeCountLeavesNoFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.txt")
	_, err := WriteFile(path, newGenerator(t, generator.Salesmen), -3)
	assert.ErrorIs(t, err, ErrNegativeCount)

	_, statErr := os.Stat(path)
	assert.True(t, errors.Is(statErr, fs.ErrNotExist))
}

func TestWriteFileFlushFailureReportsNoLines(t *testing.T) {
	t.Parallel()

	const full = "/dev/full"
	if _, err := os.Stat(full); err != nil {
		t.Skipf("%s not available: %v", full, err)
	}

	res, err := WriteFile(full, newGenerator(t, generator.Salesmen), 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWrite)
	assert.Zero(t, res.Lines)
	assert.Zero(t, res.Bytes)
}

func TestCountingWriterCountsCompleteLines(t *testing.T) {
	t.Parallel()

	// "CC;1234567890\n" is 14 bytes: the header and one sale line fit,
	// the second sale line is cut short
	sw := &shortWriter{limit: 14 + len("ID1;1;\n") + 3}
	cw := &countingWriter{w: sw}

	_, err := cw.Write([]byte("CC;1234567890\nID1;1;\nID2;2;\n"))
	assert.ErrorIs(t, err, errDiskFull)
	assert.Equal(t, 2, cw.lines)
	assert.Equal(t, int64(sw.buf.Len()), cw.n)
}

func TestWriteFileCountsHeaderSeparately(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "vendedor_1234567890.txt")
	res, err := WriteFile(path, newGenerator(t, generator.Sales), 0)
	require.NoError(t, err)
	assert.Zero(t, res.Lines)
	assert.Equal(t, int64(len("CC;1234567890\n")), res.Bytes)

	res, err = WriteFile(path, newGenerator(t, generator.Sales), 6)
	require.NoError(t, err)
	assert.Equal(t, 6, res.Lines)
}
