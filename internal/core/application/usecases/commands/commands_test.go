package commands_test

import (
	"testing"
	"time"

	"pizza/internal/core/application/usecases/commands"
	"pizza/internal/core/domain/model/catalog"
	"pizza/internal/core/domain/model/kernel"
	"pizza/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStartSessionCommand(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewStartSessionCommand(id)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.SessionID())
	require.NoError(t, cmd.Validate())
}

func TestNewStartSessionCommand_InvalidSessionID(t *testing.T) {
	_, err := commands.NewStartSessionCommand(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestStartSessionCommand_ZeroValueIsNotConstructed(t *testing.T) {
	err := commands.StartSessionCommand{}.Validate()
	require.ErrorIs(t, err, commands.ErrStartSessionCommandIsNotConstructed)
}

func TestNewSelectItemCommand(t *testing.T) {
	id := kernel.NewUUID()

	t.Run("product_type", func(t *testing.T) {
		cmd, err := commands.NewSelectItemCommand(id, commands.ProductTypeItem, "pepperoni")
		require.NoError(t, err)
		assert.Equal(t, commands.ProductTypeItem, cmd.Kind())
		assert.Equal(t, catalog.Pepperoni, cmd.ProductType())
	})

	t.Run("base_variant", func(t *testing.T) {
		cmd, err := commands.NewSelectItemCommand(id, commands.BaseVariantItem, "THICK")
		require.NoError(t, err)
		assert.Equal(t, catalog.Thick, cmd.BaseVariant())
	})

	t.Run("add_on", func(t *testing.T) {
		cmd, err := commands.NewSelectItemCommand(id, commands.AddOnItem, "Corn")
		require.NoError(t, err)
		assert.Equal(t, catalog.Corn, cmd.AddOn())
	})

	t.Run("unknown_name", func(t *testing.T) {
		_, err := commands.NewSelectItemCommand(id, commands.AddOnItem, "pineapple")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("unknown_kind", func(t *testing.T) {
		_, err := commands.NewSelectItemCommand(id, commands.ItemKind("crust"), "thin")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("reports_every_problem", func(t *testing.T) {
		_, err := commands.NewSelectItemCommand(kernel.UUID{}, commands.ProductTypeItem, "hawaiian")
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewNavigateCommand(t *testing.T) {
	id := kernel.NewUUID()

	cmd, err := commands.NewNavigateCommand(id, commands.OpenCart)
	require.NoError(t, err)
	assert.Equal(t, commands.OpenCart, cmd.Action())

	_, err = commands.NewNavigateCommand(id, commands.NavigationAction("jump"))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewCartLineCommands(t *testing.T) {
	id := kernel.NewUUID()

	remove, err := commands.NewRemoveLineCommand(id, 2)
	require.NoError(t, err)
	assert.Equal(t, commands.RemoveLine, remove.Action())
	assert.Equal(t, 2, remove.Index())

	edit, err := commands.NewEditLineCommand(id, 0)
	require.NoError(t, err)
	assert.Equal(t, commands.EditLine, edit.Action())

	quantity, err := commands.NewChangeLineQuantityCommand(id, 1, -1)
	require.NoError(t, err)
	assert.Equal(t, commands.ChangeLineQuantity, quantity.Action())
	assert.Equal(t, -1, quantity.Delta())

	_, err = commands.NewRemoveLineCommand(id, -1)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = commands.NewChangeLineQuantityCommand(id, 0, 0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewSetAddressCommand(t *testing.T) {
	id := kernel.NewUUID()

	cmd, err := commands.NewSetAddressCommand(id, "12 Baker Street")
	require.NoError(t, err)
	assert.Equal(t, "12 Baker Street", cmd.Address())

	_, err = commands.NewSetAddressCommand(id, "   ")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewExpireSessionsCommand(t *testing.T) {
	cmd, err := commands.NewExpireSessionsCommand(30 * time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, cmd.IdleTimeout())

	_, err = commands.NewExpireSessionsCommand(0)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestUnconstructedCommandsAreRejected(t *testing.T) {
	assert.ErrorIs(t, commands.SelectItemCommand{}.Validate(), commands.ErrSelectItemCommandIsNotConstructed)
	assert.ErrorIs(t, commands.NavigateCommand{}.Validate(), commands.ErrNavigateCommandIsNotConstructed)
	assert.ErrorIs(t, commands.CartLineCommand{}.Validate(), commands.ErrCartLineCommandIsNotConstructed)
	assert.ErrorIs(t, commands.SetAddressCommand{}.Validate(), commands.ErrSetAddressCommandIsNotConstructed)
	assert.ErrorIs(t, commands.PlaceOrderCommand{}.Validate(), commands.ErrPlaceOrderCommandIsNotConstructed)
	assert.ErrorIs(t, commands.EndSessionCommand{}.Validate(), commands.ErrEndSessionCommandIsNotConstructed)
	assert.ErrorIs(t, commands.ExpireSessionsCommand{}.Validate(), commands.ErrExpireSessionsCommandIsNotConstructed)
}
