package pagination

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeCursor(t *testing.T) {
	createdAt := time.Date(2024, 5, 15, 14, 30, 45, 123456789, time.UTC)
	id := uuid.NewString()

	token := EncodeCursor(createdAt, id)
	assert.NotEmpty(t, token)
	assert.NotContains(t, token, "=", "token should be safe to place in a query string")

	decodedAt, decodedID, err := DecodeCursor(token)
	require.NoError(t, err)
	assert.True(t, createdAt.Equal(decodedAt))
	assert.Equal(t, id, decodedID)

	// Non-UTC times round-trip to the same instant.
	local := time.Date(2024, 1, 2, 3, 4, 5, 6, time.FixedZone("IST", 19800))
	decodedAt, _, err = DecodeCursor(EncodeCursor(local, id))
	require.NoError(t, err)
	assert.True(t, local.Equal(decodedAt))
}

func TestDecodeCursorError(t *testing.T) {
	_, _, err := DecodeCursor("this is not base64!")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")

	_, _, err = DecodeCursor(EncodeMultiFieldToken("only-one-field"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	_, _, err = DecodeCursor(EncodeMultiFieldToken("yesterday", uuid.NewString()))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "created_at parse")

	_, _, err = DecodeCursor(EncodeMultiFieldToken(time.Now().Format(timeFormat), "not-a-uuid"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "id parse")
}

func TestMultiFieldToken(t *testing.T) {
	fields := []string{"a", "b", "c"}
	parts, err := DecodeMultiFieldToken(EncodeMultiFieldToken(fields...))
	assert.NoError(t, err)
	assert.Equal(t, fields, parts)
}

func TestNormalizeLimit(t *testing.T) {
	assert.Equal(t, DefaultLimit, NormalizeLimit(0))
	assert.Equal(t, DefaultLimit, NormalizeLimit(-3))
	assert.Equal(t, 7, NormalizeLimit(7))
	assert.Equal(t, MaxLimit, NormalizeLimit(500))
}
