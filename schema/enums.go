package schema

import "github.com/znly/pq-core/format"

// Encoding is the closed set of value (or level) encodings a page may use.
type Encoding int8

const (
	Plain Encoding = iota
	PlainDictionary
	Rle
	BitPacked
	DeltaBinaryPacked
	DeltaLengthByteArray
	DeltaByteArray
	RleDictionary
	ByteStreamSplit
)

func (e Encoding) String() string {
	switch e {
	case Plain:
		return "PLAIN"
	case PlainDictionary:
		return "PLAIN_DICTIONARY"
	case Rle:
		return "RLE"
	case BitPacked:
		return "BIT_PACKED"
	case DeltaBinaryPacked:
		return "DELTA_BINARY_PACKED"
	case DeltaLengthByteArray:
		return "DELTA_LENGTH_BYTE_ARRAY"
	case DeltaByteArray:
		return "DELTA_BYTE_ARRAY"
	case RleDictionary:
		return "RLE_DICTIONARY"
	case ByteStreamSplit:
		return "BYTE_STREAM_SPLIT"
	default:
		return "UNKNOWN_ENCODING"
	}
}

var encodings = [...]Encoding{
	format.Plain:                Plain,
	format.PlainDictionary:      PlainDictionary,
	format.Rle:                  Rle,
	format.BitPacked:            BitPacked,
	format.DeltaBinaryPacked:    DeltaBinaryPacked,
	format.DeltaLengthByteArray: DeltaLengthByteArray,
	format.DeltaByteArray:       DeltaByteArray,
	format.RleDictionary:        RleDictionary,
	format.ByteStreamSplit:      ByteStreamSplit,
}

// EncodingFromFormat range-checks and converts a raw IDL Encoding tag.
func EncodingFromFormat(e format.Encoding) (Encoding, error) {
	if e < 0 || int(e) >= len(encodings) {
		return 0, newEnumError("encoding", int32(e))
	}
	return encodings[e], nil
}

// Compression is the closed set of page-body compression codecs.
type Compression int8

const (
	Uncompressed Compression = iota
	Snappy
	Gzip
	Lzo
	Brotli
	Lz4
	Zstd
	Lz4Raw
)

func (c Compression) String() string {
	switch c {
	case Uncompressed:
		return "UNCOMPRESSED"
	case Snappy:
		return "SNAPPY"
	case Gzip:
		return "GZIP"
	case Lzo:
		return "LZO"
	case Brotli:
		return "BROTLI"
	case Lz4:
		return "LZ4"
	case Zstd:
		return "ZSTD"
	case Lz4Raw:
		return "LZ4_RAW"
	default:
		return "UNKNOWN_COMPRESSION"
	}
}

var compressions = [...]Compression{
	format.Uncompressed: Uncompressed,
	format.Snappy:        Snappy,
	format.Gzip:          Gzip,
	format.Lzo:           Lzo,
	format.Brotli:        Brotli,
	format.Lz4:           Lz4,
	format.Zstd:          Zstd,
	format.Lz4Raw:        Lz4Raw,
}

// CompressionFromFormat range-checks and converts a raw IDL
// CompressionCodec tag.
func CompressionFromFormat(c format.CompressionCodec) (Compression, error) {
	if c < 0 || int(c) >= len(compressions) {
		return 0, newEnumError("compression codec", int32(c))
	}
	return compressions[c], nil
}

// PageType is the closed set of page kinds a page header may introduce.
type PageType int8

const (
	DataPageV1 PageType = iota
	IndexPage
	DictionaryPage
	DataPageV2
)

func (p PageType) String() string {
	switch p {
	case DataPageV1:
		return "DATA_PAGE"
	case IndexPage:
		return "INDEX_PAGE"
	case DictionaryPage:
		return "DICTIONARY_PAGE"
	case DataPageV2:
		return "DATA_PAGE_V2"
	default:
		return "UNKNOWN_PAGE_TYPE"
	}
}

var pageTypes = [...]PageType{
	format.DataPage:       DataPageV1,
	format.IndexPage:      IndexPage,
	format.DictionaryPage: DictionaryPage,
	format.DataPageV2:     DataPageV2,
}

// PageTypeFromFormat range-checks and converts a raw IDL PageType tag. A tag
// outside the four defined values is InvalidFormat, per spec §7 ("unknown
// page type... is InvalidFormat").
func PageTypeFromFormat(p format.PageType) (PageType, error) {
	if p < 0 || int(p) >= len(pageTypes) {
		return 0, newEnumError("page type", int32(p))
	}
	return pageTypes[p], nil
}

// SortOrder is the comparison rule a leaf's statistics were computed under.
type SortOrder int8

const (
	SortUndefined SortOrder = iota
	SortSigned
	SortUnsigned
)

// ColumnOrder records, per schema leaf, whether the file declares a sort
// order and what it is.
type ColumnOrder struct {
	Defined bool
	Order   SortOrder
}
