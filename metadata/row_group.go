package metadata

import (
	"github.com/znly/pq-core/format"
	"github.com/znly/pq-core/internal/errs"
	"github.com/znly/pq-core/schema"
)

// RowGroupMetadata is one horizontal slice of the file: one
// ColumnChunkMetadata per schema leaf, in the same order as
// SchemaDescriptor.Leaves.
type RowGroupMetadata struct {
	Columns             []*ColumnChunkMetadata
	TotalByteSize       uint64
	NumRows             uint64
	SortingColumns      []format.SortingColumn
	FileOffset          *uint64
	TotalCompressedSize *uint64
}

// buildRowGroup projects one IDL RowGroup. It requires exactly one column
// chunk per schema leaf, in leaf order (§4.5, §8: "∀ row groups:
// |columns| == |schema.leaves|").
func buildRowGroup(rg *format.RowGroup, leaves []*schema.ColumnDescriptor, skipPageIndex bool) (*RowGroupMetadata, error) {
	if len(rg.Columns) != len(leaves) {
		return nil, errs.New(errs.InvalidFormat,
			"row group: %d column chunks but schema has %d leaves", len(rg.Columns), len(leaves))
	}

	columns := make([]*ColumnChunkMetadata, len(rg.Columns))
	for i := range rg.Columns {
		chunk, err := buildColumnChunk(&rg.Columns[i], leaves[i], skipPageIndex)
		if err != nil {
			return nil, err
		}
		columns[i] = chunk
	}

	totalByteSize, err := nonNegative("total_byte_size", rg.TotalByteSize)
	if err != nil {
		return nil, err
	}
	numRows, err := nonNegative("num_rows", rg.NumRows)
	if err != nil {
		return nil, err
	}
	fileOffset, err := optionalNonNegative("file_offset", rg.FileOffset)
	if err != nil {
		return nil, err
	}
	totalCompressedSize, err := optionalNonNegative("total_compressed_size", rg.TotalCompressedSize)
	if err != nil {
		return nil, err
	}

	return &RowGroupMetadata{
		Columns:             columns,
		TotalByteSize:       totalByteSize,
		NumRows:             numRows,
		SortingColumns:      rg.SortingColumns,
		FileOffset:          fileOffset,
		TotalCompressedSize: totalCompressedSize,
	}, nil
}
