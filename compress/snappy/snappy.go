package snappy

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/snappy"
	"github.com/znly/pq-core/compress"
	"github.com/znly/pq-core/format"
)

// The snappy.Reader implements snappy decoding with a framing protocol, but
// snappy requires the implementation to use the raw snappy block encoding.
// This is why we need to use snappy.Decode and ship a custom implementation
// of the decompressing reader.
type Codec struct {
}

func (c *Codec) String() string {
	return "SNAPPY"
}

func (c *Codec) CompressionCodec() format.CompressionCodec {
	return format.Snappy
}

func (c *Codec) NewReader(r io.Reader) (compress.Reader, error) {
	return &reader{input: r, offset: -1}, nil
}

type reader struct {
	input  io.Reader
	buffer bytes.Buffer
	offset int
	data   []byte
}

func (r *reader) Close() error {
	r.Reset(r.input)
	return nil
}

func (r *reader) Reset(rr io.Reader) error {
	r.input = rr
	r.buffer.Reset()
	r.offset = -1
	r.data = r.data[:0]
	return nil
}

func (r *reader) Read(b []byte) (int, error) {
	if r.offset < 0 {
		if r.input == nil {
			return 0, io.EOF
		}

		_, err := r.buffer.ReadFrom(r.input)
		if err != nil {
			return 0, err
		}

		r.data, err = snappy.Decode(r.data[:0], r.buffer.Bytes())
		if err != nil {
			return 0, err
		}

		r.offset = 0
	}

	n := copy(b, r.data[r.offset:])
	r.offset += n
	if r.offset == len(r.data) {
		return n, io.EOF
	}
	return n, nil
}
