package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/znly/pq-core/format"
	"github.com/znly/pq-core/schema"
)

func TestPhysicalTypeFromFormat(t *testing.T) {
	got, err := schema.PhysicalTypeFromFormat(format.Int64)
	require.NoError(t, err)
	assert.Equal(t, schema.Int64, got)

	_, err = schema.PhysicalTypeFromFormat(format.Type(99))
	require.Error(t, err)
}

func TestRepetitionFromFormat(t *testing.T) {
	got, err := schema.RepetitionFromFormat(format.Optional)
	require.NoError(t, err)
	assert.Equal(t, schema.OptionalRepetition, got)

	_, err = schema.RepetitionFromFormat(format.FieldRepetitionType(99))
	require.Error(t, err)
}

func TestCompressionFromFormat(t *testing.T) {
	got, err := schema.CompressionFromFormat(format.Zstd)
	require.NoError(t, err)
	assert.Equal(t, schema.Zstd, got)

	_, err = schema.CompressionFromFormat(format.CompressionCodec(99))
	require.Error(t, err)
}

func TestPageTypeFromFormat(t *testing.T) {
	got, err := schema.PageTypeFromFormat(format.DataPageV2)
	require.NoError(t, err)
	assert.Equal(t, schema.DataPageV2, got)

	_, err = schema.PageTypeFromFormat(format.PageType(99))
	require.Error(t, err)
}

func TestLogicalTypeFromFormatUUID(t *testing.T) {
	lt := &format.LogicalType{UUID: &format.UUIDType{}}
	got, err := schema.LogicalTypeFromFormat(lt)
	require.NoError(t, err)
	assert.Equal(t, schema.LogicalUUID, got.Kind)
}
