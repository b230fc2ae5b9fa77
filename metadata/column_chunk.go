package metadata

import (
	"github.com/znly/pq-core/format"
	"github.com/znly/pq-core/internal/errs"
	"github.com/znly/pq-core/schema"
	"github.com/znly/pq-core/statistics"
)

// ColumnChunkMetadata is the per-column-chunk projection of an IDL
// ColumnChunk: everything the page iterator needs to walk one column's
// pages, plus the handful of fields callers commonly inspect without
// touching a page.
//
// Invariant: ByteRange().Offset == DictionaryPageOffset if set, else
// DataPageOffset; ByteRange().Length == TotalCompressedSize. All offsets are
// file-absolute.
type ColumnChunkMetadata struct {
	ColumnType    schema.PhysicalType
	PathInSchema  schema.ColumnPath
	ColumnDescr   *schema.ColumnDescriptor
	Encodings     []schema.Encoding
	FilePath      *string
	FileOffset    uint64
	Compression   schema.Compression
	NumValues     uint64
	TotalUncompressedSize uint64
	TotalCompressedSize   uint64
	DataPageOffset        uint64
	IndexPageOffset       *uint64
	DictionaryPageOffset  *uint64
	Statistics            *statistics.Statistics
	OffsetIndexOffset     *uint64
	OffsetIndexLength     *uint64
	ColumnIndexOffset     *uint64
	ColumnIndexLength     *uint64
	KeyValueMetadata      []format.KeyValue
}

// ByteRange is the [offset, offset+length) span of this chunk's pages
// within the file: it starts at the dictionary page when one is present,
// else at the first data page, and spans TotalCompressedSize bytes.
type ByteRange struct {
	Offset int64
	Length int64
}

func (c *ColumnChunkMetadata) ByteRange() ByteRange {
	start := c.DataPageOffset
	if c.DictionaryPageOffset != nil {
		start = *c.DictionaryPageOffset
	}
	return ByteRange{Offset: int64(start), Length: int64(c.TotalCompressedSize)}
}

// buildColumnChunk projects one IDL ColumnChunk, attaching the
// ColumnDescriptor of the schema leaf it corresponds to (by positional zip,
// per §4.5).
func buildColumnChunk(chunk *format.ColumnChunk, leaf *schema.ColumnDescriptor, skipPageIndex bool) (*ColumnChunkMetadata, error) {
	if chunk.MetaData == nil {
		return nil, errs.New(errs.InvalidFormat, "column chunk: expected column metadata")
	}
	md := chunk.MetaData

	physical, err := schema.PhysicalTypeFromFormat(md.Type)
	if err != nil {
		return nil, err
	}
	compression, err := schema.CompressionFromFormat(md.Codec)
	if err != nil {
		return nil, err
	}
	encodings := make([]schema.Encoding, len(md.Encodings))
	for i, e := range md.Encodings {
		enc, err := schema.EncodingFromFormat(e)
		if err != nil {
			return nil, err
		}
		encodings[i] = enc
	}

	fileOffset, err := nonNegative("file_offset", chunk.FileOffset)
	if err != nil {
		return nil, err
	}
	numValues, err := nonNegative("num_values", md.NumValues)
	if err != nil {
		return nil, err
	}
	totalUncompressed, err := nonNegative("total_uncompressed_size", md.TotalUncompressedSize)
	if err != nil {
		return nil, err
	}
	// The reference implementation assigns total_uncompressed_size to both
	// the compressed and uncompressed fields; that is a bug (§4.5 Note on
	// sizes) and this core reads each IDL field independently.
	totalCompressed, err := nonNegative("total_compressed_size", md.TotalCompressedSize)
	if err != nil {
		return nil, err
	}
	dataPageOffset, err := nonNegative("data_page_offset", md.DataPageOffset)
	if err != nil {
		return nil, err
	}

	indexPageOffset, err := optionalNonNegative("index_page_offset", md.IndexPageOffset)
	if err != nil {
		return nil, err
	}
	dictionaryPageOffset, err := optionalNonNegative("dictionary_page_offset", md.DictionaryPageOffset)
	if err != nil {
		return nil, err
	}
	var offsetIndexOffset, columnIndexOffset *uint64
	var offsetIndexLength, columnIndexLength *uint64
	if !skipPageIndex {
		offsetIndexOffset, err = optionalNonNegative("offset_index_offset", chunk.OffsetIndexOffset)
		if err != nil {
			return nil, err
		}
		offsetIndexLength, err = optionalNonNegative32("offset_index_length", chunk.OffsetIndexLength)
		if err != nil {
			return nil, err
		}
		columnIndexOffset, err = optionalNonNegative("column_index_offset", chunk.ColumnIndexOffset)
		if err != nil {
			return nil, err
		}
		columnIndexLength, err = optionalNonNegative32("column_index_length", chunk.ColumnIndexLength)
		if err != nil {
			return nil, err
		}
	}

	stats, err := statistics.FromFormat(md.Statistics, physical)
	if err != nil {
		return nil, err
	}

	format.SortKeyValueMetadata(md.KeyValueMetadata)

	return &ColumnChunkMetadata{
		ColumnType:            physical,
		PathInSchema:          leaf.Path,
		ColumnDescr:           leaf,
		Encodings:             encodings,
		FilePath:              chunk.FilePath,
		FileOffset:            fileOffset,
		Compression:           compression,
		NumValues:             numValues,
		TotalUncompressedSize: totalUncompressed,
		TotalCompressedSize:   totalCompressed,
		DataPageOffset:        dataPageOffset,
		IndexPageOffset:       indexPageOffset,
		DictionaryPageOffset:  dictionaryPageOffset,
		Statistics:            stats,
		OffsetIndexOffset:     offsetIndexOffset,
		OffsetIndexLength:     offsetIndexLength,
		ColumnIndexOffset:     columnIndexOffset,
		ColumnIndexLength:     columnIndexLength,
		KeyValueMetadata:      md.KeyValueMetadata,
	}, nil
}

func nonNegative(field string, v int64) (uint64, error) {
	if v < 0 {
		return 0, errs.New(errs.InvalidFormat, "%s: negative value %d", field, v)
	}
	return uint64(v), nil
}

func optionalNonNegative(field string, v *int64) (*uint64, error) {
	if v == nil {
		return nil, nil
	}
	u, err := nonNegative(field, *v)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func optionalNonNegative32(field string, v *int32) (*uint64, error) {
	if v == nil {
		return nil, nil
	}
	u, err := nonNegative(field, int64(*v))
	if err != nil {
		return nil, err
	}
	return &u, nil
}
