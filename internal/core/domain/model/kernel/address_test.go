package kernel_test

import (
	"testing"

	"pizza/internal/core/domain/model/kernel"
	"pizza/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	t.Run("accepts_and_trims_valid_address", func(t *testing.T) {
		// When
		address, err := kernel.NewAddress("  Baker St 221b  ")

		// Then
		require.NoError(t, err)
		assert.Equal(t, "Baker St 221b", address.String())
		assert.True(t, address.IsSet())
	})

	t.Run("accepts_address_of_minimum_length", func(t *testing.T) {
		address, err := kernel.NewAddress("Abcde")

		require.NoError(t, err)
		assert.Equal(t, "Abcde", address.String())
	})

	t.Run("rejects_blank_address", func(t *testing.T) {
		_, err := kernel.NewAddress("   ")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_short_address", func(t *testing.T) {
		_, err := kernel.NewAddress(" Abcd ")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "4 characters is shorter than 5")
	})

	t.Run("counts_characters_not_bytes", func(t *testing.T) {
		_, err := kernel.NewAddress("Çiçek")

		require.NoError(t, err)
	})
}

func TestAddress_ZeroValue(t *testing.T) {
	var address kernel.Address

	assert.False(t, address.IsSet())
	assert.Equal(t, kernel.ErrAddressIsNotConstructed, address.Validate())
}
