package kernel_test

import (
	"testing"

	"pizza/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	first := kernel.NewUUID()
	second := kernel.NewUUID()

	require.NoError(t, first.Validate())
	assert.False(t, first.IsEqual(second))
	assert.True(t, first.IsEqual(first))
}

func TestUUIDFromString(t *testing.T) {
	t.Run("round_trips_string_form", func(t *testing.T) {
		// Given
		id := kernel.NewUUID()

		// When
		parsed, err := kernel.UUIDFromString(id.String())

		// Then
		require.NoError(t, err)
		assert.True(t, parsed.IsEqual(id))
	})

	t.Run("rejects_garbage", func(t *testing.T) {
		_, err := kernel.UUIDFromString("not-a-uuid")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid UUID format")
	})

	t.Run("rejects_nil_uuid", func(t *testing.T) {
		_, err := kernel.UUIDFromString("00000000-0000-0000-0000-000000000000")

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestUUID_ZeroValue(t *testing.T) {
	var id kernel.UUID

	assert.Equal(t, kernel.ErrUUIDIsNotConstructed, id.Validate())
}
