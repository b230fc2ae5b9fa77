package zstd

import (
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/znly/pq-core/compress"
	"github.com/znly/pq-core/format"
)

type Codec struct {
}

func (c *Codec) String() string {
	return "ZSTD"
}

func (c *Codec) CompressionCodec() format.CompressionCodec {
	return format.Zstd
}

func (c *Codec) NewReader(r io.Reader) (compress.Reader, error) {
	z, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, err
	}
	return reader{z}, nil
}

type reader struct{ *zstd.Decoder }

func (r reader) Close() error { r.Decoder.Close(); return nil }
