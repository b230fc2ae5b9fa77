// Package format mirrors the structures of the parquet-format Thrift IDL,
// the cross-language wire schema that parquet files embed in their footer.
//
// These types are what a Thrift compact-protocol decoder unmarshals bytes
// into; this package does not implement that decoder (see
// github.com/segmentio/encoding/thrift, used by internal/idl), it only
// declares the shapes the decoder fills in, tagged the way generated Thrift
// Go code is tagged.
package format

// Type is the physical, on-disk representation of a primitive column's
// values.
type Type int32

const (
	Boolean Type = iota
	Int32
	Int64
	Int96
	Float
	Double
	ByteArray
	FixedLenByteArray
)

func (t Type) String() string {
	switch t {
	case Boolean:
		return "BOOLEAN"
	case Int32:
		return "INT32"
	case Int64:
		return "INT64"
	case Int96:
		return "INT96"
	case Float:
		return "FLOAT"
	case Double:
		return "DOUBLE"
	case ByteArray:
		return "BYTE_ARRAY"
	case FixedLenByteArray:
		return "FIXED_LEN_BYTE_ARRAY"
	default:
		return "UNKNOWN"
	}
}

// ConvertedType is the legacy logical-annotation enum, superseded by
// LogicalType but still emitted by many writers and always present as a
// fallback.
type ConvertedType int32

const (
	Utf8 ConvertedType = iota
	Map
	MapKeyValue
	List
	Enum
	Decimal
	Date
	TimeMillis
	TimeMicros
	TimestampMillis
	TimestampMicros
	Uint8
	Uint16
	Uint32
	Uint64
	Int8
	Int16
	Int32Converted
	Int64Converted
	Json
	Bson
	Interval
)

func (c ConvertedType) String() string {
	switch c {
	case Utf8:
		return "UTF8"
	case Map:
		return "MAP"
	case MapKeyValue:
		return "MAP_KEY_VALUE"
	case List:
		return "LIST"
	case Enum:
		return "ENUM"
	case Decimal:
		return "DECIMAL"
	case Date:
		return "DATE"
	case TimeMillis:
		return "TIME_MILLIS"
	case TimeMicros:
		return "TIME_MICROS"
	case TimestampMillis:
		return "TIMESTAMP_MILLIS"
	case TimestampMicros:
		return "TIMESTAMP_MICROS"
	case Uint8:
		return "UINT_8"
	case Uint16:
		return "UINT_16"
	case Uint32:
		return "UINT_32"
	case Uint64:
		return "UINT_64"
	case Int8:
		return "INT_8"
	case Int16:
		return "INT_16"
	case Int32Converted:
		return "INT_32"
	case Int64Converted:
		return "INT_64"
	case Json:
		return "JSON"
	case Bson:
		return "BSON"
	case Interval:
		return "INTERVAL"
	default:
		return "UNKNOWN"
	}
}

// FieldRepetitionType declares whether a schema node's value is required,
// optional, or may repeat.
type FieldRepetitionType int32

const (
	Required FieldRepetitionType = iota
	Optional
	Repeated
)

func (r FieldRepetitionType) String() string {
	switch r {
	case Required:
		return "REQUIRED"
	case Optional:
		return "OPTIONAL"
	case Repeated:
		return "REPEATED"
	default:
		return "UNKNOWN"
	}
}

// Encoding identifies how the values (or definition/repetition levels) of a
// page are laid out in its body.
type Encoding int32

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
		return "UNKNOWN"
	}
}

// CompressionCodec identifies the codec used to compress a page body.
type CompressionCodec int32

const (
	Uncompressed CompressionCodec = iota
	Snappy
	Gzip
	Lzo
	Brotli
	Lz4
	Zstd
	Lz4Raw
)

func (c CompressionCodec) String() string {
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
		return "UNKNOWN"
	}
}

// PageType discriminates the kind of page a PageHeader introduces.
type PageType int32

const (
	DataPage PageType = iota
	IndexPage
	DictionaryPage
	DataPageV2
)

func (p PageType) String() string {
	switch p {
	case DataPage:
		return "DATA_PAGE"
	case IndexPage:
		return "INDEX_PAGE"
	case DictionaryPage:
		return "DICTIONARY_PAGE"
	case DataPageV2:
		return "DATA_PAGE_V2"
	default:
		return "UNKNOWN"
	}
}

// BoundaryOrder describes the ordering of min/max values across the pages of
// a column index.
type BoundaryOrder int32

const (
	Unordered BoundaryOrder = iota
	Ascending
	Descending
)

// TimeUnit discriminates the unit carried by LogicalType's TIME and
// TIMESTAMP variants.
type TimeUnit struct {
	Millis *MilliSeconds `thrift:"1"`
	Micros *MicroSeconds `thrift:"2"`
	Nanos  *NanoSeconds  `thrift:"3"`
}

type MilliSeconds struct{}
type MicroSeconds struct{}
type NanoSeconds struct{}

// StringType, UUIDType, and the other argument-less annotations below are
// Thrift "structs" with zero fields; their sole purpose is to act as the
// discriminated tag inside a LogicalType union.
type StringType struct{}
type UUIDType struct{}
type MapType struct{}
type ListType struct{}
type EnumType struct{}
type DateType struct{}
type NullType struct{}
type JsonType struct{}
type BsonType struct{}

// DecimalType carries the parameters of the DECIMAL logical type.
type DecimalType struct {
	Scale     int32 `thrift:"1"`
	Precision int32 `thrift:"2"`
}

// TimeType carries the parameters of the TIME logical type.
type TimeType struct {
	IsAdjustedToUTC bool     `thrift:"1"`
	Unit            TimeUnit `thrift:"2"`
}

// TimestampType carries the parameters of the TIMESTAMP logical type.
type TimestampType struct {
	IsAdjustedToUTC bool     `thrift:"1"`
	Unit            TimeUnit `thrift:"2"`
}

// IntType carries the parameters of the INTEGER logical type.
type IntType struct {
	BitWidth int8 `thrift:"1"`
	IsSigned bool `thrift:"2"`
}

// LogicalType is the Thrift union carrying the modern type annotation. Only
// one field is set at a time; which one is the discriminant.
type LogicalType struct {
	String  *StringType    `thrift:"1"`
	Map     *MapType       `thrift:"2"`
	List    *ListType      `thrift:"3"`
	Enum    *EnumType      `thrift:"4"`
	Decimal *DecimalType   `thrift:"5"`
	Date    *DateType      `thrift:"6"`
	Time    *TimeType      `thrift:"7"`
	Timestamp *TimestampType `thrift:"8"`
	Integer *IntType       `thrift:"10"`
	Unknown *NullType      `thrift:"11"`
	Json    *JsonType      `thrift:"12"`
	Bson    *BsonType      `thrift:"13"`
	UUID    *UUIDType      `thrift:"14"`
}
