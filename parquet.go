// Package parquet implements a reader for the columnar, self-describing
// binary format produced by Apache Parquet writers.
//
// The package exposes the decode pipeline only: locating and parsing the
// footer, materializing a typed schema tree, projecting row group and column
// chunk metadata, and iterating over the pages of a column chunk. It does
// not implement a parquet writer, value-level decoding (bit-packing, RLE,
// dictionary application), or predicate pushdown.
package parquet

import "github.com/znly/pq-core/internal/errs"

// Kind classifies a decode failure. The taxonomy is closed: Io, a failure of
// the byte source or a decompressor; InvalidFormat, bytes that violate the
// parquet format; and Eof, a read past the end of the available bytes.
type Kind = errs.Kind

const (
	Io            = errs.Io
	InvalidFormat = errs.InvalidFormat
	Eof           = errs.Eof
)

// Error is the error type returned by every exported operation in this
// module. Use errors.As to recover it, or errors.Is against ErrIo,
// ErrInvalidFormat, or ErrEof to test its Kind.
type Error = errs.Error

var (
	ErrIo            = errs.Sentinel(errs.Io)
	ErrInvalidFormat = errs.Sentinel(errs.InvalidFormat)
	ErrEof           = errs.Sentinel(errs.Eof)
)
