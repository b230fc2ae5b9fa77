package uncompressed

import (
	"io"

	"github.com/znly/pq-core/compress"
	"github.com/znly/pq-core/format"
)

type Codec struct {
}

func (c *Codec) String() string {
	return "UNCOMPRESSED"
}

func (c *Codec) CompressionCodec() format.CompressionCodec {
	return format.Uncompressed
}

func (c *Codec) NewReader(r io.Reader) (compress.Reader, error) {
	return &reader{r}, nil
}

type reader struct{ io.Reader }

func (r *reader) Close() error             { return nil }
func (r *reader) Reset(rr io.Reader) error { r.Reader = rr; return nil }
