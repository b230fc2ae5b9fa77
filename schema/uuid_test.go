package schema_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/znly/pq-core/schema"
)

func TestDecodeUUID(t *testing.T) {
	want := uuid.New()

	got, err := schema.DecodeUUID(want[:])
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDecodeUUIDWrongLength(t *testing.T) {
	_, err := schema.DecodeUUID([]byte{1, 2, 3})
	require.Error(t, err)
}
