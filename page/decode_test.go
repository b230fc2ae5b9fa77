package page

import (
	"bytes"
	"compress/gzip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/znly/pq-core/format"
	"github.com/znly/pq-core/schema"
)

// passthroughDecompressor copies input to output verbatim, standing in for
// a real codec in tests that only care about decodePage's own bookkeeping.
type passthroughDecompressor struct{}

func (passthroughDecompressor) Decompress(output *bytes.Buffer, input []byte, expectedSize int) (int, error) {
	return output.Write(input)
}

// gzipDecompressor exercises a real compressed round trip without pulling
// in the compress package's registry (which would make this an integration
// test of two packages at once).
type gzipDecompressor struct{}

func (gzipDecompressor) Decompress(output *bytes.Buffer, input []byte, expectedSize int) (int, error) {
	r, err := gzip.NewReader(bytes.NewReader(input))
	if err != nil {
		return 0, err
	}
	defer r.Close()
	before := output.Len()
	if _, err := output.ReadFrom(r); err != nil {
		return output.Len() - before, err
	}
	return output.Len() - before, nil
}

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestDecodePageDataV1Uncompressed(t *testing.T) {
	body := []byte("plain-encoded-values")
	header := &format.PageHeader{
		Type:                 format.DataPage,
		UncompressedPageSize: int32(len(body)),
		CompressedPageSize:   int32(len(body)),
		DataPageHeader: &format.DataPageHeader{
			NumValues:               3,
			Encoding:                format.Plain,
			DefinitionLevelEncoding: format.Rle,
			RepetitionLevelEncoding: format.Rle,
		},
	}

	got, err := decodePage(header, body, schema.ByteArray, nil)
	require.NoError(t, err)
	assert.Equal(t, DataPage, got.Kind)
	assert.Equal(t, body, got.Buffer)
	assert.EqualValues(t, 3, got.NumValues)
	assert.Equal(t, schema.Plain, got.Encoding)
}

func TestDecodePageDataV1WithStatistics(t *testing.T) {
	minBytes := []byte{1, 0, 0, 0}
	maxBytes := []byte{100, 0, 0, 0}
	header := &format.PageHeader{
		Type:                 format.DataPage,
		UncompressedPageSize: 4,
		CompressedPageSize:   4,
		DataPageHeader: &format.DataPageHeader{
			NumValues: 1,
			Encoding:  format.Plain,
			Statistics: &format.Statistics{
				MinValue: minBytes,
				MaxValue: maxBytes,
			},
		},
	}

	got, err := decodePage(header, []byte{1, 2, 3, 4}, schema.Int32, nil)
	require.NoError(t, err)
	require.NotNil(t, got.Statistics)
	assert.Equal(t, int32(1), *got.Statistics.Int32.Min)
	assert.Equal(t, int32(100), *got.Statistics.Int32.Max)
}

func TestDecodePageDictionary(t *testing.T) {
	body := []byte("dictionary-values")
	header := &format.PageHeader{
		Type:                 format.DictionaryPage,
		UncompressedPageSize: int32(len(body)),
		CompressedPageSize:   int32(len(body)),
		DictionaryPageHeader: &format.DictionaryPageHeader{
			NumValues: 5,
			Encoding:  format.Plain,
			IsSorted:  ptrBool(true),
		},
	}

	got, err := decodePage(header, body, schema.ByteArray, nil)
	require.NoError(t, err)
	assert.Equal(t, DictionaryPage, got.Kind)
	assert.EqualValues(t, 5, got.NumValues)
	assert.True(t, got.IsSorted)
}

func TestDecodePageMissingDataPageHeader(t *testing.T) {
	header := &format.PageHeader{Type: format.DataPage}
	_, err := decodePage(header, []byte{}, schema.Int32, nil)
	require.Error(t, err)
}

func TestDecodePageMissingDictionaryHeader(t *testing.T) {
	header := &format.PageHeader{Type: format.DictionaryPage}
	_, err := decodePage(header, []byte{}, schema.Int32, nil)
	require.Error(t, err)
}

func TestDecodePageMissingDataPageHeaderV2(t *testing.T) {
	header := &format.PageHeader{Type: format.DataPageV2}
	_, err := decodePage(header, []byte{}, schema.Int32, nil)
	require.Error(t, err)
}

func TestDecodePageDataV2Compressed(t *testing.T) {
	defLevels := []byte{0x01, 0x02}
	repLevels := []byte{0x03}
	values := []byte("compressed-value-bytes-repeated-for-a-real-gzip-stream")
	compressedValues := gzipBytes(t, values)

	body := append(append(append([]byte{}, defLevels...), repLevels...), compressedValues...)

	header := &format.PageHeader{
		Type:                 format.DataPageV2,
		UncompressedPageSize: int32(len(defLevels) + len(repLevels) + len(values)),
		CompressedPageSize:   int32(len(body)),
		DataPageHeaderV2: &format.DataPageHeaderV2{
			NumValues:                  7,
			NumNulls:                   1,
			NumRows:                    6,
			Encoding:                   format.Plain,
			DefinitionLevelsByteLength: int32(len(defLevels)),
			RepetitionLevelsByteLength: int32(len(repLevels)),
			IsCompressed:               ptrBool(true),
		},
	}

	got, err := decodePage(header, body, schema.ByteArray, gzipDecompressor{})
	require.NoError(t, err)
	assert.Equal(t, DataPageV2, got.Kind)
	assert.True(t, got.IsCompressed)

	want := append(append(append([]byte{}, defLevels...), repLevels...), values...)
	assert.Equal(t, want, got.Buffer)
}

func TestDecodePageDataV2Uncompressed(t *testing.T) {
	// §8 scenario 4: is_compressed=false means the body is kept verbatim
	// even though a decompressor is available.
	defLevels := []byte{0x01}
	values := []byte("raw-values")
	body := append(append([]byte{}, defLevels...), values...)

	header := &format.PageHeader{
		Type:                 format.DataPageV2,
		UncompressedPageSize: int32(len(body)),
		CompressedPageSize:   int32(len(body)),
		DataPageHeaderV2: &format.DataPageHeaderV2{
			NumValues:                  3,
			Encoding:                   format.Plain,
			DefinitionLevelsByteLength: int32(len(defLevels)),
			IsCompressed:               ptrBool(false),
		},
	}

	got, err := decodePage(header, body, schema.ByteArray, gzipDecompressor{})
	require.NoError(t, err)
	assert.Equal(t, body, got.Buffer)
	assert.False(t, got.IsCompressed)
}

func TestDecodePageDecompressedSizeMismatch(t *testing.T) {
	values := []byte("value-bytes")
	compressedValues := gzipBytes(t, values)

	header := &format.PageHeader{
		Type:                 format.DataPage,
		UncompressedPageSize: int32(len(values)) + 10, // deliberately wrong
		CompressedPageSize:   int32(len(compressedValues)),
		DataPageHeader: &format.DataPageHeader{
			NumValues: 1,
			Encoding:  format.Plain,
		},
	}

	_, err := decodePage(header, compressedValues, schema.ByteArray, gzipDecompressor{})
	require.Error(t, err)
}

func TestDecodePageBodyShorterThanLevelPrefix(t *testing.T) {
	header := &format.PageHeader{
		Type:                 format.DataPageV2,
		UncompressedPageSize: 10,
		CompressedPageSize:   2,
		DataPageHeaderV2: &format.DataPageHeaderV2{
			NumValues:                  1,
			Encoding:                   format.Plain,
			DefinitionLevelsByteLength: 5,
			IsCompressed:               ptrBool(true),
		},
	}

	_, err := decodePage(header, []byte{1, 2}, schema.ByteArray, passthroughDecompressor{})
	require.Error(t, err)
}

func TestDecodePageUnexpectedIndexPage(t *testing.T) {
	header := &format.PageHeader{Type: format.IndexPage}
	_, err := decodePage(header, []byte{}, schema.Int32, nil)
	require.Error(t, err)
}

func ptrBool(v bool) *bool { return &v }
