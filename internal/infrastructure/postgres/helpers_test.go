package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadataRoundTrip(t *testing.T) {
	md := map[string]interface{}{
		"transaction_id": "TXN1700000000000deadbeef",
		"amount":         100.5,
		"nested":         map[string]interface{}{"k": "v"},
	}

	encoded, err := encodeMetadata(md)
	require.NoError(t, err)
	raw, ok := encoded.([]byte)
	require.True(t, ok)

	decoded, err := decodeMetadata(raw)
	require.NoError(t, err)
	assert.Equal(t, "TXN1700000000000deadbeef", decoded["transaction_id"])
	assert.Equal(t, 100.5, decoded["amount"])
	assert.Equal(t, map[string]interface{}{"k": "v"}, decoded["nested"])
}

func TestMetadataEmptyIsNull(t *testing.T) {
	encoded, err := encodeMetadata(nil)
	require.NoError(t, err)
	assert.Nil(t, encoded)

	decoded, err := decodeMetadata(nil)
	require.NoError(t, err)
	assert.Nil(t, decoded)
}

func TestDecodeMetadataRejectsGarbage(t *testing.T) {
	_, err := decodeMetadata([]byte("{'python': 'repr'}"))
	require.Error(t, err)
}
