package metadata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/znly/pq-core/format"
	"github.com/znly/pq-core/metadata"
)

func ptr[T any](v T) *T { return &v }

func sampleFileMetaData() *format.FileMetaData {
	return &format.FileMetaData{
		Version: 2,
		NumRows: 3,
		Schema: []format.SchemaElement{
			{Name: "root", NumChildren: ptr(int32(1))},
			{Name: "id", Type: ptr(format.Int64), RepetitionType: ptr(format.Required)},
		},
		RowGroups: []format.RowGroup{
			{
				NumRows:       3,
				TotalByteSize: 42,
				Columns: []format.ColumnChunk{
					{
						FileOffset: 0,
						MetaData: &format.ColumnMetaData{
							Type:                  format.Int64,
							Codec:                 format.Uncompressed,
							Encodings:             []format.Encoding{format.Plain},
							PathInSchema:          []string{"id"},
							NumValues:             3,
							TotalUncompressedSize: 24,
							TotalCompressedSize:   24,
							DataPageOffset:        4,
						},
					},
				},
			},
		},
		ColumnOrders: []format.ColumnOrder{{TypeOrder: &format.TypeDefinedOrder{}}},
	}
}

func TestBuildFileMetadata(t *testing.T) {
	fmd, err := metadata.Build(sampleFileMetaData())
	require.NoError(t, err)

	assert.EqualValues(t, 2, fmd.Version)
	assert.EqualValues(t, 3, fmd.NumRows)
	require.Equal(t, 1, fmd.Schema.NumLeaves())
	require.Len(t, fmd.RowGroups, 1)

	rg := fmd.RowGroups[0]
	require.Len(t, rg.Columns, 1)
	col := rg.Columns[0]
	assert.Equal(t, uint64(24), col.TotalCompressedSize)
	assert.Equal(t, uint64(24), col.TotalUncompressedSize)
	assert.Equal(t, uint64(4), col.DataPageOffset)
	assert.Same(t, fmd.Schema.Leaf(0), col.ColumnDescr)

	require.Len(t, fmd.ColumnOrders, 1)
}

func TestBuildFileMetadataMissingColumnMetadata(t *testing.T) {
	fmd := sampleFileMetaData()
	fmd.RowGroups[0].Columns[0].MetaData = nil
	_, err := metadata.Build(fmd)
	require.Error(t, err)
}

func TestBuildFileMetadataColumnCountMismatch(t *testing.T) {
	fmd := sampleFileMetaData()
	fmd.RowGroups[0].Columns = append(fmd.RowGroups[0].Columns, fmd.RowGroups[0].Columns[0])
	_, err := metadata.Build(fmd)
	require.Error(t, err)
}

func TestBuildFileMetadataNoColumnOrders(t *testing.T) {
	fmd := sampleFileMetaData()
	fmd.ColumnOrders = nil
	got, err := metadata.Build(fmd)
	require.NoError(t, err)
	assert.Nil(t, got.ColumnOrders)
}

func TestBuildFileMetadataColumnOrdersCountMismatch(t *testing.T) {
	fmd := sampleFileMetaData()
	fmd.ColumnOrders = append(fmd.ColumnOrders, fmd.ColumnOrders[0])
	_, err := metadata.Build(fmd)
	require.Error(t, err)
}
