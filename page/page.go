// Package page implements the per-column-chunk page iterator: a state
// machine that walks a chunk's byte range, parses page headers, and yields
// decoded (optionally decompressed) pages.
package page

import (
	"github.com/znly/pq-core/schema"
	"github.com/znly/pq-core/statistics"
)

// Kind discriminates the Page sum type.
type Kind int8

const (
	DataPage Kind = iota
	DataPageV2
	DictionaryPage
)

// Page is a decoded page body plus the header fields the rest of the
// pipeline needs, without exposing the raw IDL structs.
type Page struct {
	Kind Kind

	// Buffer holds the page body: decompressed, if a decompressor was
	// applied, else the raw bytes read from the file. For DataPageV2, the
	// uncompressed rep/def-level prefix is included verbatim at the front.
	Buffer []byte

	NumValues int32
	Encoding  schema.Encoding

	// Data (v1) only, except Statistics, which DataV2 pages also carry.
	DefinitionLevelEncoding schema.Encoding
	RepetitionLevelEncoding schema.Encoding
	Statistics              *statistics.Statistics

	// DataV2 only.
	NumNulls                int32
	NumRows                 int32
	DefLevelsByteLength     int32
	RepLevelsByteLength     int32
	IsCompressed            bool

	// Dictionary only.
	IsSorted bool
}

// Metadata is what peek_next_page reports without consuming the page body
// (§4.7).
type Metadata struct {
	NumRows int32
	IsDict  bool
}
