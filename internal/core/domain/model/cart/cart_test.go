package cart_test

import (
	"math/rand"
	"testing"

	"pizza/internal/core/domain/model/cart"
	"pizza/internal/core/domain/model/catalog"
	"pizza/internal/core/domain/model/selection"
	"pizza/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSelection(t *testing.T, p catalog.ProductType, v catalog.BaseVariant, addOns ...catalog.AddOn) *selection.Selection {
	t.Helper()

	s := selection.New()
	require.NoError(t, s.SelectProductType(p))
	require.NoError(t, s.SelectBaseVariant(v))
	for _, a := range addOns {
		require.NoError(t, s.ToggleAddOn(a))
	}
	return s
}

func commit(t *testing.T, c *cart.Cart, p catalog.ProductType, addOns ...catalog.AddOn) {
	t.Helper()
	require.NoError(t, c.Commit(newSelection(t, p, catalog.Thin, addOns...)))
}

func sumOfLines(c *cart.Cart) int {
	total := 0
	for _, l := range c.Lines() {
		total += l.UnitPrice() * l.Quantity()
	}
	return total
}

func TestCart_Commit(t *testing.T) {
	t.Run("appends_line_and_resets_selection", func(t *testing.T) {
		// Given
		c := cart.New()
		s := newSelection(t, catalog.Margarita, catalog.Thick, catalog.Cheese)

		// When
		err := c.Commit(s)

		// Then
		require.NoError(t, err)
		require.Equal(t, 1, c.Len())
		line, err := c.Line(0)
		require.NoError(t, err)
		assert.Equal(t, catalog.Margarita, line.ProductType())
		assert.Equal(t, catalog.Thick, line.BaseVariant())
		assert.Equal(t, []catalog.AddOn{catalog.Cheese}, line.AddOns())
		assert.Equal(t, 105, line.UnitPrice())
		assert.Equal(t, 1, line.Quantity())
		assert.Equal(t, 105, c.Total())

		assert.False(t, s.HasProductType())
		assert.Zero(t, s.UnitPrice())
		assert.Equal(t, 1, s.Quantity())
	})

	t.Run("committed_line_does_not_alias_selection", func(t *testing.T) {
		// Given
		c := cart.New()
		s := newSelection(t, catalog.Vegan, catalog.Thin, catalog.Corn)
		require.NoError(t, c.Commit(s))

		// When
		require.NoError(t, s.ToggleAddOn(catalog.Olive))
		lines := c.Lines()
		lines[0].AddOns()[0] = catalog.Tomato

		// Then
		line, _ := c.Line(0)
		assert.Equal(t, []catalog.AddOn{catalog.Corn}, line.AddOns())
	})

	t.Run("rejects_incomplete_selection", func(t *testing.T) {
		c := cart.New()
		s := selection.New()
		require.NoError(t, s.SelectProductType(catalog.Margarita))

		err := c.Commit(s)

		require.ErrorIs(t, err, cart.ErrSelectionIsIncomplete)
		assert.True(t, c.IsEmpty())
		assert.True(t, s.HasProductType())
	})
}

func TestCart_Delete(t *testing.T) {
	t.Run("removes_line_and_subtracts_subtotal", func(t *testing.T) {
		// Given
		c := cart.New()
		commit(t, c, catalog.Margarita)
		commit(t, c, catalog.Pepperoni)
		commit(t, c, catalog.Mixed)
		require.NoError(t, c.IncreaseQuantity(0))

		// When
		require.NoError(t, c.Delete(0))

		// Then
		require.Equal(t, 2, c.Len())
		first, _ := c.Line(0)
		assert.Equal(t, catalog.Pepperoni, first.ProductType())
		assert.Equal(t, 95+110, c.Total())
	})

	t.Run("out_of_range_is_reported", func(t *testing.T) {
		c := cart.New()
		commit(t, c, catalog.Margarita)

		for _, index := range []int{-1, 1, 5} {
			err := c.Delete(index)

			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			var rangeErr *errs.ValueIsOutOfRangeError
			require.ErrorAs(t, err, &rangeErr)
			assert.Equal(t, index, rangeErr.Value)
		}
		assert.Equal(t, 1, c.Len())
		assert.Equal(t, 90, c.Total())
	})
}

func TestCart_Quantity(t *testing.T) {
	t.Run("increase", func(t *testing.T) {
		// Given
		c := cart.New()
		commit(t, c, catalog.Margarita, catalog.Cheese)

		// When
		require.NoError(t, c.IncreaseQuantity(0))
		require.NoError(t, c.IncreaseQuantity(0))

		// Then
		line, _ := c.Line(0)
		assert.Equal(t, 3, line.Quantity())
		assert.Equal(t, 315, c.Total())
	})

	t.Run("decrease_floors_at_one", func(t *testing.T) {
		c := cart.New()
		commit(t, c, catalog.Vegan)

		require.NoError(t, c.DecreaseQuantity(0))

		line, _ := c.Line(0)
		assert.Equal(t, 1, line.Quantity())
		assert.Equal(t, 100, c.Total())
	})

	t.Run("decrease", func(t *testing.T) {
		c := cart.New()
		commit(t, c, catalog.Vegan)
		require.NoError(t, c.IncreaseQuantity(0))

		require.NoError(t, c.DecreaseQuantity(0))

		assert.Equal(t, 100, c.Total())
	})

	t.Run("out_of_range_is_reported", func(t *testing.T) {
		c := cart.New()

		require.ErrorIs(t, c.IncreaseQuantity(0), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, c.DecreaseQuantity(0), errs.ErrValueIsOutOfRange)
	})
}

func TestCart_Edit(t *testing.T) {
	t.Run("begin_then_commit_round_trips", func(t *testing.T) {
		// Given
		c := cart.New()
		commit(t, c, catalog.Margarita)
		commit(t, c, catalog.Pepperoni, catalog.Olive, catalog.Corn)
		commit(t, c, catalog.Mixed)
		require.NoError(t, c.IncreaseQuantity(1))
		before := c.Lines()
		total := c.Total()
		s := selection.New()

		// When
		require.NoError(t, c.BeginEdit(1, s))
		require.NoError(t, c.Commit(s))

		// Then
		assert.Equal(t, before, c.Lines())
		assert.Equal(t, total, c.Total())
		_, editing := c.EditIndex()
		assert.False(t, editing)
	})

	t.Run("begin_loads_selection_and_takes_out_subtotal", func(t *testing.T) {
		// Given
		c := cart.New()
		commit(t, c, catalog.Margarita, catalog.Cheese)
		commit(t, c, catalog.Vegan)
		s := selection.New()

		// When
		require.NoError(t, c.BeginEdit(0, s))

		// Then
		p, _ := s.ProductType()
		assert.Equal(t, catalog.Margarita, p)
		assert.Equal(t, []catalog.AddOn{catalog.Cheese}, s.AddOns())
		assert.Equal(t, 105, s.UnitPrice())
		assert.Equal(t, 100, c.Total())
		index, editing := c.EditIndex()
		assert.True(t, editing)
		assert.Zero(t, index)
	})

	t.Run("commit_replaces_in_place", func(t *testing.T) {
		// Given
		c := cart.New()
		commit(t, c, catalog.Margarita)
		commit(t, c, catalog.Vegan)
		s := selection.New()
		require.NoError(t, c.BeginEdit(0, s))

		// When
		require.NoError(t, s.SelectProductType(catalog.Mixed))
		require.NoError(t, s.ToggleAddOn(catalog.Mushroom))
		require.NoError(t, c.Commit(s))

		// Then
		require.Equal(t, 2, c.Len())
		line, _ := c.Line(0)
		assert.Equal(t, catalog.Mixed, line.ProductType())
		assert.Equal(t, 120, line.UnitPrice())
		assert.Equal(t, 120+100, c.Total())
	})

	t.Run("abort_restores_total", func(t *testing.T) {
		c := cart.New()
		commit(t, c, catalog.Margarita)
		require.NoError(t, c.BeginEdit(0, selection.New()))

		c.AbortEdit()

		assert.Equal(t, 90, c.Total())
		_, editing := c.EditIndex()
		assert.False(t, editing)
	})

	t.Run("quantity_change_skips_line_under_edit", func(t *testing.T) {
		// Given
		c := cart.New()
		commit(t, c, catalog.Margarita)
		commit(t, c, catalog.Vegan)
		s := selection.New()
		require.NoError(t, c.BeginEdit(0, s))

		// When
		require.NoError(t, c.IncreaseQuantity(1))
		require.NoError(t, c.Commit(s))

		// Then
		assert.Equal(t, 90+200, c.Total())
		assert.Equal(t, sumOfLines(c), c.Total())
	})

	t.Run("deleting_line_under_edit_drops_marker", func(t *testing.T) {
		c := cart.New()
		commit(t, c, catalog.Margarita)
		commit(t, c, catalog.Vegan)
		require.NoError(t, c.BeginEdit(1, selection.New()))

		require.NoError(t, c.Delete(1))

		_, editing := c.EditIndex()
		assert.False(t, editing)
		assert.Equal(t, 90, c.Total())
	})

	t.Run("deleting_earlier_line_shifts_marker", func(t *testing.T) {
		// Given
		c := cart.New()
		commit(t, c, catalog.Margarita)
		commit(t, c, catalog.Vegan)
		s := selection.New()
		require.NoError(t, c.BeginEdit(1, s))

		// When
		require.NoError(t, c.Delete(0))
		require.NoError(t, c.Commit(s))

		// Then
		require.Equal(t, 1, c.Len())
		line, _ := c.Line(0)
		assert.Equal(t, catalog.Vegan, line.ProductType())
		assert.Equal(t, 100, c.Total())
	})

	t.Run("out_of_range_is_reported", func(t *testing.T) {
		c := cart.New()
		commit(t, c, catalog.Margarita)

		require.ErrorIs(t, c.BeginEdit(1, selection.New()), errs.ErrValueIsOutOfRange)
		assert.Equal(t, 90, c.Total())
	})
}

func TestCart_Clear(t *testing.T) {
	c := cart.New()
	commit(t, c, catalog.Margarita)
	commit(t, c, catalog.Vegan)
	require.NoError(t, c.BeginEdit(0, selection.New()))

	c.Clear()

	assert.True(t, c.IsEmpty())
	assert.Zero(t, c.Total())
	_, editing := c.EditIndex()
	assert.False(t, editing)
}

func TestCart_TotalInvariantUnderRandomOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	c := cart.New()
	types := catalog.ProductTypes()
	addOns := catalog.AddOns()

	for i := 0; i < 500; i++ {
		switch rng.Intn(5) {
		case 0, 1:
			commit(t, c, types[rng.Intn(len(types))], addOns[rng.Intn(len(addOns))])
		case 2:
			if !c.IsEmpty() {
				require.NoError(t, c.Delete(rng.Intn(c.Len())))
			}
		case 3:
			if !c.IsEmpty() {
				require.NoError(t, c.IncreaseQuantity(rng.Intn(c.Len())))
			}
		case 4:
			if !c.IsEmpty() {
				require.NoError(t, c.DecreaseQuantity(rng.Intn(c.Len())))
			}
		}
		require.Equal(t, sumOfLines(c), c.Total(), "step %d", i)
	}
}
