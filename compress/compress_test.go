package compress_test

import (
	"bytes"
	"io"
	"testing"

	bbrotli "github.com/andybalholm/brotli"
	kgzip "github.com/klauspost/compress/gzip"
	ksnappy "github.com/klauspost/compress/snappy"
	kzstd "github.com/klauspost/compress/zstd"
	plz4 "github.com/pierrec/lz4/v4"

	"github.com/znly/pq-core/compress"
	"github.com/znly/pq-core/compress/brotli"
	"github.com/znly/pq-core/compress/gzip"
	"github.com/znly/pq-core/compress/lz4"
	"github.com/znly/pq-core/compress/snappy"
	"github.com/znly/pq-core/compress/uncompressed"
	"github.com/znly/pq-core/compress/zstd"
)

// TestCodecDecompress exercises each codec's NewReader against bytes
// produced by an independent encoder, since the Codec interface this core
// wires only ever decompresses (§1: compression is out of scope).
func TestCodecDecompress(t *testing.T) {
	want := bytes.Repeat([]byte("1234567890qwertyuiopasdfghjklzxcvbnm"), 1000)

	tests := []struct {
		scenario string
		codec    compress.Codec
		compress func([]byte) []byte
	}{
		{
			scenario: "uncompressed",
			codec:    new(uncompressed.Codec),
			compress: func(b []byte) []byte { return b },
		},
		{
			scenario: "snappy",
			codec:    new(snappy.Codec),
			compress: func(b []byte) []byte { return ksnappy.Encode(nil, b) },
		},
		{
			scenario: "gzip",
			codec:    new(gzip.Codec),
			compress: func(b []byte) []byte {
				var buf bytes.Buffer
				w := kgzip.NewWriter(&buf)
				if _, err := w.Write(b); err != nil {
					t.Fatal(err)
				}
				if err := w.Close(); err != nil {
					t.Fatal(err)
				}
				return buf.Bytes()
			},
		},
		{
			scenario: "brotli",
			codec:    new(brotli.Codec),
			compress: func(b []byte) []byte {
				var buf bytes.Buffer
				w := bbrotli.NewWriter(&buf)
				if _, err := w.Write(b); err != nil {
					t.Fatal(err)
				}
				if err := w.Close(); err != nil {
					t.Fatal(err)
				}
				return buf.Bytes()
			},
		},
		{
			scenario: "zstd",
			codec:    new(zstd.Codec),
			compress: func(b []byte) []byte {
				w, err := kzstd.NewWriter(nil)
				if err != nil {
					t.Fatal(err)
				}
				defer w.Close()
				return w.EncodeAll(b, nil)
			},
		},
		{
			scenario: "lz4",
			codec:    new(lz4.Codec),
			compress: func(b []byte) []byte {
				zbuf := make([]byte, plz4.CompressBlockBound(len(b)))
				var c plz4.Compressor
				n, err := c.CompressBlock(b, zbuf)
				if err != nil {
					t.Fatal(err)
				}
				return zbuf[:n]
			},
		},
	}

	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			compressed := test.compress(want)

			r, err := test.codec.NewReader(bytes.NewReader(compressed))
			if err != nil {
				t.Fatal(err)
			}
			defer r.Close()

			output, err := io.ReadAll(r)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(want, output) {
				t.Errorf("content mismatch after decompressing:\n%q\n%q", want, output)
			}
		})
	}
}
