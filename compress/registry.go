package compress

import (
	"bytes"
	"io"

	"github.com/znly/pq-core/compress/brotli"
	"github.com/znly/pq-core/compress/gzip"
	"github.com/znly/pq-core/compress/lz4"
	"github.com/znly/pq-core/compress/snappy"
	"github.com/znly/pq-core/compress/zstd"
	"github.com/znly/pq-core/internal/errs"
	"github.com/znly/pq-core/schema"
)

// BufferDecompressor is the buffer-oriented decompression contract the page
// iterator decodes against (§4.6). It deliberately does not mirror the
// streaming Codec/Reader pair in compress.go: a page body is always fully
// buffered before the iterator hands it to decode_page, so there is no
// streaming boundary to preserve, and a single append-and-return-count call
// lets the caller pre-size each page's output buffer from the page header's
// uncompressed_page_size.
type BufferDecompressor interface {
	// Decompress appends the decompressed form of input to output and
	// returns the number of bytes appended. When expectedSize is >= 0 the
	// output buffer is grown to fit it before decompression begins.
	Decompress(output *bytes.Buffer, input []byte, expectedSize int) (int, error)
}

type codecDecompressor struct {
	codec Codec
}

func (d codecDecompressor) Decompress(output *bytes.Buffer, input []byte, expectedSize int) (int, error) {
	if expectedSize >= 0 {
		output.Grow(expectedSize)
	}
	r, err := d.codec.NewReader(bytes.NewReader(input))
	if err != nil {
		return 0, errs.Wrap(errs.Io, err, "%s: opening reader", d.codec.String())
	}
	defer r.Close()

	before := output.Len()
	if _, err := io.Copy(output, r); err != nil {
		return output.Len() - before, errs.Wrap(errs.Io, err, "%s: decompressing", d.codec.String())
	}
	return output.Len() - before, nil
}

// Registry is the closed lookup from a Compression tag to its
// BufferDecompressor, keyed the way the format spec fixes it: Uncompressed
// always resolves to (nil, nil), every other tag either resolves to a
// concrete decompressor or is rejected by Lookup with Io.
type Registry struct {
	codecs map[schema.Compression]BufferDecompressor
}

// NewRegistry builds the registry wired to every codec this core ships:
// Snappy, Gzip, Brotli, Zstd, and Lz4Raw. Lzo and Lz4 (the deprecated,
// framed Lz4 variant) have no pure-Go decoder in the example pack and are
// left unregistered; Lookup reports Io for them, consistent with "the
// registry is open to implementers" (§4.6).
func NewRegistry() *Registry {
	return &Registry{
		codecs: map[schema.Compression]BufferDecompressor{
			schema.Snappy: codecDecompressor{&snappy.Codec{}},
			schema.Gzip:   codecDecompressor{&gzip.Codec{}},
			schema.Brotli: codecDecompressor{&brotli.Codec{}},
			schema.Zstd:   codecDecompressor{&zstd.Codec{}},
			schema.Lz4Raw: codecDecompressor{&lz4.Codec{}},
		},
	}
}

// Lookup returns the decompressor for c, or (nil, nil) for Uncompressed.
// An unregistered but recognized tag (Lzo, the deprecated Lz4) fails with
// Io rather than silently passing the compressed bytes through.
func (r *Registry) Lookup(c schema.Compression) (BufferDecompressor, error) {
	if c == schema.Uncompressed {
		return nil, nil
	}
	if d, ok := r.codecs[c]; ok {
		return d, nil
	}
	return nil, errs.New(errs.Io, "compression codec %s has no registered decompressor", c)
}
