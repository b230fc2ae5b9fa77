// Package idl wraps the Thrift compact-protocol codec used to decode the
// cross-language structures that parquet files embed in their footer and
// page headers.
//
// This package is intentionally thin: it does not implement the compact
// protocol itself (github.com/segmentio/encoding/thrift does that), it only
// adapts it to the two things the decode pipeline needs that the raw codec
// doesn't provide by itself: decoding a length-prefixed byte slice in one
// call, and decoding a struct from a stream while reporting exactly how many
// bytes were consumed.
package idl

import (
	"io"

	"github.com/segmentio/encoding/thrift"
)

// Protocol is the Thrift compact protocol, the only wire encoding parquet
// uses for its IDL structures.
var Protocol thrift.CompactProtocol

// Unmarshal decodes a single Thrift struct from a complete byte slice, used
// to decode the footer's FileMetaData and the page-index structures, both of
// which are read in their entirety before being decoded.
func Unmarshal(data []byte, value any) error {
	return thrift.Unmarshal(&Protocol, data, value)
}

// Marshal encodes a single Thrift struct to a byte slice. Production code
// only ever decodes (this core never writes a file); Marshal exists so
// tests can build realistic compact-protocol fixtures instead of hand
// assembling wire bytes.
func Marshal(value any) ([]byte, error) {
	return thrift.Marshal(&Protocol, value)
}

// CountingReader wraps an io.Reader and reports how many bytes have been
// read through it. The page iterator uses it to learn how many bytes a page
// header occupied on the wire, since the compact protocol decoder does not
// report this itself: the protocol's Reader is wrapped once and the decoder
// sees only the wrapper, so every byte it consumes while parsing the header
// is counted.
type CountingReader struct {
	r io.Reader
	n int64
}

// NewCountingReader returns a CountingReader delegating reads to r.
func NewCountingReader(r io.Reader) *CountingReader {
	return &CountingReader{r: r}
}

func (c *CountingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

// N returns the number of bytes read so far.
func (c *CountingReader) N() int64 { return c.n }

// Reset rebinds the counting reader to r and zeroes its counter.
func (c *CountingReader) Reset(r io.Reader) {
	c.r = r
	c.n = 0
}

// Decoder decodes a sequence of Thrift structs from a stream, such as the
// page headers within a column chunk.
type Decoder struct {
	dec *thrift.Decoder
	cr  *CountingReader
}

// NewDecoder returns a Decoder that reads Thrift-encoded structs from r
// using the compact protocol, tracking the number of bytes consumed by each
// Decode call.
func NewDecoder(r io.Reader) *Decoder {
	cr := NewCountingReader(r)
	return &Decoder{
		dec: thrift.NewDecoder(Protocol.NewReader(cr)),
		cr:  cr,
	}
}

// Reset rebinds the decoder to read from r.
func (d *Decoder) Reset(r io.Reader) {
	d.cr.Reset(r)
	d.dec.Reset(Protocol.NewReader(d.cr))
}

// Decode decodes the next Thrift struct from the stream into value, and
// returns the number of bytes consumed from the underlying reader while
// doing so.
func (d *Decoder) Decode(value any) (int64, error) {
	before := d.cr.N()
	if err := d.dec.Decode(value); err != nil {
		return d.cr.N() - before, err
	}
	return d.cr.N() - before, nil
}
