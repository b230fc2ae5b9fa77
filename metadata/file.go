// Package metadata assembles the strongly-typed FileMetadata /
// RowGroupMetadata / ColumnChunkMetadata records the rest of the decode
// pipeline consumes, from the raw IDL FileMetaData plus the materialized
// schema.
package metadata

import (
	parquet "github.com/znly/pq-core"
	"github.com/znly/pq-core/format"
	"github.com/znly/pq-core/internal/errs"
	"github.com/znly/pq-core/internal/idl"
	"github.com/znly/pq-core/schema"
	"github.com/znly/pq-core/source"
)

// FileMetadata is the root of a decoded parquet file's metadata.
type FileMetadata struct {
	Version          int32
	NumRows          uint64
	CreatedBy        *string
	KeyValueMetadata []format.KeyValue
	Schema           *schema.SchemaDescriptor
	ColumnOrders     []schema.ColumnOrder // nil unless the file declares any
	RowGroups        []*RowGroupMetadata
}

// Decode locates, decodes, and projects a file's footer into a
// FileMetadata. This is the entry point wiring together the Footer Locator,
// IDL Adapter, Schema Builder, and Metadata Assembly components (§2).
//
// options configures the decode the way FileConfig documents, e.g.
// parquet.SkipPageIndex(true) to omit the page-index byte-range fields from
// every column chunk for callers that only ever use the Values-mode page
// iterator and have no use for them.
func Decode(src source.Source, options ...parquet.FileOption) (*FileMetadata, error) {
	config := parquet.DefaultFileConfig()
	config.Apply(options...)
	if err := config.Validate(); err != nil {
		return nil, errs.Wrap(errs.InvalidFormat, err, "invalid file configuration")
	}

	offset, length, err := LocateFooterMetadata(src)
	if err != nil {
		return nil, err
	}

	raw, err := src.ReadRange(offset, length)
	if err != nil {
		return nil, err
	}

	var fmd format.FileMetaData
	if err := idl.Unmarshal(raw, &fmd); err != nil {
		return nil, errs.Wrap(errs.InvalidFormat, err, "decoding file metadata")
	}

	return build(&fmd, config.SkipPageIndex)
}

// Build projects an already-decoded IDL FileMetaData into a FileMetadata.
// It is split out from Decode so that callers who obtained a FileMetaData
// some other way (or are writing tests) can skip the footer and IDL steps.
// The page-index byte-range fields are always populated; use Decode with
// parquet.SkipPageIndex to omit them.
func Build(fmd *format.FileMetaData) (*FileMetadata, error) {
	return build(fmd, false)
}

func build(fmd *format.FileMetaData, skipPageIndex bool) (*FileMetadata, error) {
	descr, err := schema.Build(fmd.Schema)
	if err != nil {
		return nil, err
	}

	numRows, err := nonNegative("num_rows", fmd.NumRows)
	if err != nil {
		return nil, err
	}

	rowGroups := make([]*RowGroupMetadata, len(fmd.RowGroups))
	for i := range fmd.RowGroups {
		rg, err := buildRowGroup(&fmd.RowGroups[i], descr.Leaves, skipPageIndex)
		if err != nil {
			return nil, err
		}
		rowGroups[i] = rg
	}

	var columnOrders []schema.ColumnOrder
	if len(fmd.ColumnOrders) > 0 {
		if len(fmd.ColumnOrders) != len(descr.Leaves) {
			return nil, errs.New(errs.InvalidFormat,
				"column_orders: expected %d entries (one per schema leaf), got %d",
				len(descr.Leaves), len(fmd.ColumnOrders))
		}
		// The IDL's ColumnOrder is a per-leaf union; this core only derives
		// the TypeDefinedOrder variant from the schema itself (§4.3), so the
		// wire column_orders list only gates whether we emit at all.
		columnOrders = schema.ColumnOrdersFor(descr.Leaves)
	}

	format.SortKeyValueMetadata(fmd.KeyValueMetadata)

	return &FileMetadata{
		Version:          fmd.Version,
		NumRows:          numRows,
		CreatedBy:        fmd.CreatedBy,
		KeyValueMetadata: fmd.KeyValueMetadata,
		Schema:           descr,
		ColumnOrders:     columnOrders,
		RowGroups:        rowGroups,
	}, nil
}
