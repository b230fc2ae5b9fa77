package format

// SchemaElement is one entry of the flat, pre-order schema list parquet
// files store in their footer. The root of the schema tree is always
// elements[0]; every other element is reached by a depth-first walk guided
// by NumChildren.
type SchemaElement struct {
	Type           *Type                `thrift:"1"`
	TypeLength     *int32               `thrift:"2"`
	RepetitionType *FieldRepetitionType `thrift:"3"`
	Name           string               `thrift:"4"`
	NumChildren    *int32               `thrift:"5"`
	ConvertedType  *ConvertedType       `thrift:"6"`
	Scale          *int32               `thrift:"7"`
	Precision      *int32               `thrift:"8"`
	FieldID        *int32               `thrift:"9"`
	LogicalType    *LogicalType         `thrift:"10"`
}

func (s *SchemaElement) GetType() Type {
	if s.Type == nil {
		return 0
	}
	return *s.Type
}

func (s *SchemaElement) GetTypeLength() int32 {
	if s.TypeLength == nil {
		return -1
	}
	return *s.TypeLength
}

func (s *SchemaElement) GetRepetitionType() FieldRepetitionType {
	if s.RepetitionType == nil {
		return Required
	}
	return *s.RepetitionType
}

func (s *SchemaElement) GetNumChildren() int32 {
	if s.NumChildren == nil {
		return 0
	}
	return *s.NumChildren
}

func (s *SchemaElement) GetScale() int32 {
	if s.Scale == nil {
		return -1
	}
	return *s.Scale
}

func (s *SchemaElement) GetPrecision() int32 {
	if s.Precision == nil {
		return -1
	}
	return *s.Precision
}

func (s *SchemaElement) GetFieldID() int32 {
	if s.FieldID == nil {
		return 0
	}
	return *s.FieldID
}

// Statistics carries the optional min/max/null/distinct summary a writer may
// attach to a page or a column chunk. MinValue/MaxValue are the current field
// pair; Min/Max are their deprecated predecessors, kept for files written by
// older versions of the format.
type Statistics struct {
	Max           []byte `thrift:"1"`
	Min           []byte `thrift:"2"`
	NullCount     *int64 `thrift:"3"`
	DistinctCount *int64 `thrift:"4"`
	MaxValue      []byte `thrift:"5"`
	MinValue      []byte `thrift:"6"`
}

// SortingColumn records that a row group's rows are physically sorted by a
// leaf column.
type SortingColumn struct {
	ColumnIdx  int32 `thrift:"1"`
	Descending bool  `thrift:"2"`
	NullsFirst bool  `thrift:"3"`
}

// PageEncodingStats tallies how many pages of a column chunk used a given
// (page type, encoding) pair.
type PageEncodingStats struct {
	PageType PageType `thrift:"1"`
	Encoding Encoding `thrift:"2"`
	Count    int32    `thrift:"3"`
}

// ColumnMetaData is the per-column-chunk metadata embedded in the footer: the
// physical type, path, codec, encodings in use, and the byte offsets of the
// chunk's pages and auxiliary indexes within the file.
type ColumnMetaData struct {
	Type                  Type                `thrift:"1"`
	Encodings             []Encoding          `thrift:"2"`
	PathInSchema          []string            `thrift:"3"`
	Codec                 CompressionCodec    `thrift:"4"`
	NumValues             int64               `thrift:"5"`
	TotalUncompressedSize int64               `thrift:"6"`
	TotalCompressedSize   int64               `thrift:"7"`
	KeyValueMetadata      []KeyValue          `thrift:"8"`
	DataPageOffset        int64               `thrift:"9"`
	IndexPageOffset       *int64              `thrift:"10"`
	DictionaryPageOffset  *int64              `thrift:"11"`
	Statistics            *Statistics         `thrift:"12"`
	EncodingStats         []PageEncodingStats `thrift:"13"`
	BloomFilterOffset     *int64              `thrift:"14"`
	BloomFilterLength     *int32              `thrift:"15"`
}

// ColumnChunk is either an inline ColumnMetaData, or (when FilePath is set) a
// pointer to a column stored in a different file. This core only supports
// the inline form.
type ColumnChunk struct {
	FilePath            *string         `thrift:"1"`
	FileOffset           int64          `thrift:"2"`
	MetaData             *ColumnMetaData `thrift:"3"`
	OffsetIndexOffset    *int64         `thrift:"4"`
	OffsetIndexLength    *int32         `thrift:"5"`
	ColumnIndexOffset    *int64         `thrift:"6"`
	ColumnIndexLength    *int32         `thrift:"7"`
}

// RowGroup describes one horizontal slice of the file: one ColumnChunk per
// schema leaf, in the same order as the schema's leaves.
type RowGroup struct {
	Columns             []ColumnChunk   `thrift:"1"`
	TotalByteSize        int64          `thrift:"2"`
	NumRows              int64          `thrift:"3"`
	SortingColumns       []SortingColumn `thrift:"4"`
	FileOffset           *int64         `thrift:"5"`
	TotalCompressedSize  *int64         `thrift:"6"`
	Ordinal              *int16         `thrift:"7"`
}

// KeyValue is a single entry of the arbitrary application-defined metadata a
// writer may attach to a file or a column chunk.
type KeyValue struct {
	Key   string  `thrift:"1"`
	Value *string `thrift:"2"`
}

// TypeDefinedOrder and the ColumnOrder union below record, per schema leaf,
// which comparison rule a writer used to compute min/max statistics.
type TypeDefinedOrder struct{}

// ColumnOrder is a Thrift union; TypeOrder is set when the writer declares an
// ordering, and is nil for Undefined.
type ColumnOrder struct {
	TypeOrder *TypeDefinedOrder `thrift:"1"`
}

// FileMetaData is the root structure decoded from the footer: the file
// format version, schema (as a flat pre-order list), row groups, and
// optional application metadata.
type FileMetaData struct {
	Version          int32           `thrift:"1"`
	Schema           []SchemaElement `thrift:"2"`
	NumRows          int64           `thrift:"3"`
	RowGroups        []RowGroup      `thrift:"4"`
	KeyValueMetadata []KeyValue      `thrift:"5"`
	CreatedBy        *string         `thrift:"6"`
	ColumnOrders     []ColumnOrder   `thrift:"7"`
}

// DictionaryPageHeader describes the single dictionary page that may precede
// the data pages of a column chunk using a dictionary-based encoding.
type DictionaryPageHeader struct {
	NumValues int32    `thrift:"1"`
	Encoding  Encoding `thrift:"2"`
	IsSorted  *bool    `thrift:"3"`
}

func (h *DictionaryPageHeader) GetIsSorted() bool {
	return h.IsSorted != nil && *h.IsSorted
}

// DataPageHeader describes a version-1 data page: plain values interleaved
// implicitly with RLE/bit-packed repetition and definition levels at the
// front of the (possibly compressed) page body.
type DataPageHeader struct {
	NumValues               int32       `thrift:"1"`
	Encoding                Encoding    `thrift:"2"`
	DefinitionLevelEncoding Encoding    `thrift:"3"`
	RepetitionLevelEncoding Encoding    `thrift:"4"`
	Statistics              *Statistics `thrift:"5"`
}

// DataPageHeaderV2 describes a version-2 data page, whose repetition and
// definition levels are always RLE-encoded, stored uncompressed, and
// prefixed to the (optionally compressed) page body.
type DataPageHeaderV2 struct {
	NumValues                  int32       `thrift:"1"`
	NumNulls                   int32       `thrift:"2"`
	NumRows                    int32       `thrift:"3"`
	Encoding                   Encoding    `thrift:"4"`
	DefinitionLevelsByteLength int32       `thrift:"5"`
	RepetitionLevelsByteLength int32       `thrift:"6"`
	IsCompressed               *bool       `thrift:"7"`
	Statistics                 *Statistics `thrift:"8"`
}

func (h *DataPageHeaderV2) GetIsCompressed() bool {
	return h.IsCompressed == nil || *h.IsCompressed
}

// PageHeader is the small header that precedes every page body in the file.
// CompressedPageSize/UncompressedPageSize describe the body that follows;
// exactly one of the *Header fields is set, selected by Type.
type PageHeader struct {
	Type                 PageType              `thrift:"1"`
	UncompressedPageSize int32                 `thrift:"2"`
	CompressedPageSize   int32                 `thrift:"3"`
	CRC                  *int32                `thrift:"4"`
	DataPageHeader       *DataPageHeader       `thrift:"5"`
	IndexPageHeader      *struct{}             `thrift:"6"`
	DictionaryPageHeader *DictionaryPageHeader `thrift:"7"`
	DataPageHeaderV2     *DataPageHeaderV2      `thrift:"8"`
}

// PageLocation is one entry of an OffsetIndex, recording where a page begins
// and how many rows it covers. It is part of the optional page-index
// extension described in spec §4.7; this core decodes it but the
// index-driven iteration mode it enables is out of scope.
type PageLocation struct {
	Offset             int64 `thrift:"1"`
	CompressedPageSize int32 `thrift:"2"`
	FirstRowIndex      int64 `thrift:"3"`
}

// OffsetIndex is the per-column-chunk page location table.
type OffsetIndex struct {
	PageLocations []PageLocation `thrift:"1"`
}

// ColumnIndex is the per-column-chunk page statistics table.
type ColumnIndex struct {
	NullPages     []bool        `thrift:"1"`
	MinValues     [][]byte      `thrift:"2"`
	MaxValues     [][]byte      `thrift:"3"`
	BoundaryOrder BoundaryOrder `thrift:"4"`
	NullCounts    []int64       `thrift:"5"`
}
