package metadata_test

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/znly/pq-core/metadata"
	"github.com/znly/pq-core/source"
)

type memSource struct {
	data []byte
}

func newMemSource(data []byte) *memSource { return &memSource{data: data} }

func (s *memSource) Len() int64 { return int64(len(s.data)) }

func (s *memSource) ReadRange(start, length int64) ([]byte, error) {
	if start < 0 || length < 0 || start+length > int64(len(s.data)) {
		return nil, io.ErrUnexpectedEOF
	}
	return s.data[start : start+length], nil
}

func (s *memSource) NewReader(start, length int64) io.Reader {
	return bytes.NewReader(s.data[start : start+length])
}

var _ source.Source = (*memSource)(nil)

func TestLocateFooterMetadataMinimalFile(t *testing.T) {
	// 8-byte file, metadata_length = 0, magic present: the metadata region
	// itself is empty (§8 scenario 1).
	data := make([]byte, 8)
	binary.LittleEndian.PutUint32(data[0:4], 0)
	copy(data[4:8], "PAR1")

	offset, length, err := metadata.LocateFooterMetadata(newMemSource(data))
	require.NoError(t, err)
	assert.Equal(t, int64(0), length)
	assert.Equal(t, int64(0), offset)
}

func TestLocateFooterMetadataTooSmall(t *testing.T) {
	_, _, err := metadata.LocateFooterMetadata(newMemSource([]byte{1, 2, 3}))
	require.Error(t, err)
}

func TestLocateFooterMetadataCorruptMagic(t *testing.T) {
	data := make([]byte, 8)
	binary.LittleEndian.PutUint32(data[0:4], 0)
	copy(data[4:8], "XXXX")
	_, _, err := metadata.LocateFooterMetadata(newMemSource(data))
	require.Error(t, err)
}

func TestLocateFooterMetadataLengthTooLarge(t *testing.T) {
	data := make([]byte, 8)
	binary.LittleEndian.PutUint32(data[0:4], 100)
	copy(data[4:8], "PAR1")
	_, _, err := metadata.LocateFooterMetadata(newMemSource(data))
	require.Error(t, err)
}

func TestLocateFooterMetadataValid(t *testing.T) {
	body := []byte("fake-metadata-bytes")
	data := make([]byte, len(body)+8)
	copy(data, body)
	binary.LittleEndian.PutUint32(data[len(body):len(body)+4], uint32(len(body)))
	copy(data[len(body)+4:], "PAR1")

	offset, length, err := metadata.LocateFooterMetadata(newMemSource(data))
	require.NoError(t, err)
	assert.Equal(t, int64(0), offset)
	assert.Equal(t, int64(len(body)), length)
}
