// Package source defines the random-access byte-range contract the decode
// pipeline reads a parquet file through, plus a concrete implementation
// backed by an io.ReaderAt.
package source

import (
	"io"

	"github.com/znly/pq-core/internal/errs"
)

// Source is a random-access, file-like byte range. Implementations must be
// safe for concurrent use by multiple goroutines, though a single reader
// built from a Source (see NewReader) is used by one goroutine at a time.
type Source interface {
	// Len returns the total size of the source in bytes.
	Len() int64

	// ReadRange returns exactly length bytes starting at start. A short
	// read is reported as Eof.
	ReadRange(start, length int64) ([]byte, error)

	// NewReader returns an io.Reader over [start, start+length) suitable
	// for incremental parsing (e.g. a page header decode that needs to
	// track how many bytes it consumed).
	NewReader(start, length int64) io.Reader
}

// ReaderAtSource adapts an io.ReaderAt of known size into a Source.
type ReaderAtSource struct {
	r    io.ReaderAt
	size int64
}

// NewReaderAtSource wraps r, which must return exactly size bytes when read
// in full.
func NewReaderAtSource(r io.ReaderAt, size int64) *ReaderAtSource {
	return &ReaderAtSource{r: r, size: size}
}

func (s *ReaderAtSource) Len() int64 { return s.size }

func (s *ReaderAtSource) ReadRange(start, length int64) ([]byte, error) {
	if start < 0 || length < 0 || start+length > s.size {
		return nil, errs.New(errs.Eof, "read range [%d, %d) exceeds source length %d", start, start+length, s.size)
	}
	buf := make([]byte, length)
	n, err := io.ReadFull(io.NewSectionReader(s.r, start, length), buf)
	if err != nil {
		return nil, errs.Wrap(errs.Eof, err, "short read at offset %d: got %d of %d bytes", start, n, length)
	}
	return buf, nil
}

func (s *ReaderAtSource) NewReader(start, length int64) io.Reader {
	return io.NewSectionReader(s.r, start, length)
}
