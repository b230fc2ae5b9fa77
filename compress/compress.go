// Package compress provides the generic APIs implemented by parquet compression
// codecs.
//
// https://github.com/apache/parquet-format/blob/master/Compression.md
package compress

import (
	"io"

	"github.com/znly/pq-core/format"
)

// The Codec interface represents parquet compression codecs implemented by the
// compress sub-packages.
//
// Codec instances must be safe to use concurrently from multiple goroutines.
type Codec interface {
	// Returns a human-readable name for the codec.
	String() string

	// Returns the code of the compression codec in the parquet format.
	CompressionCodec() format.CompressionCodec

	// NewReader returns a Reader that decompresses bytes read from r. The
	// reader may be reused by calling Reset after use.
	NewReader(r io.Reader) (Reader, error)
}

type Reader interface {
	io.ReadCloser
	Reset(io.Reader) error
}
