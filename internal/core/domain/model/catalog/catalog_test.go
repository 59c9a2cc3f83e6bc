package catalog_test

import (
	"testing"

	"pizza/internal/core/domain/model/catalog"
	"pizza/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductType(t *testing.T) {
	t.Run("prices_and_keys", func(t *testing.T) {
		tests := []struct {
			productType catalog.ProductType
			name        string
			key         string
			price       int
		}{
			{catalog.Margarita, "MARGARITA", "pizza_type_margarita", 90},
			{catalog.Pepperoni, "PEPPERONI", "pizza_type_pepperoni", 95},
			{catalog.Mixed, "MIXED", "pizza_type_mixed", 110},
			{catalog.Vegan, "VEGAN", "pizza_type_vegan", 100},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				require.NoError(t, tt.productType.Validate())
				assert.Equal(t, tt.name, tt.productType.String())
				assert.Equal(t, tt.key, tt.productType.DisplayKey())
				assert.Equal(t, tt.price, tt.productType.Price())
			})
		}
	})

	t.Run("listing_order_is_stable", func(t *testing.T) {
		assert.Equal(t,
			[]catalog.ProductType{catalog.Margarita, catalog.Pepperoni, catalog.Mixed, catalog.Vegan},
			catalog.ProductTypes())
	})

	t.Run("unknown_is_invalid", func(t *testing.T) {
		for _, p := range []catalog.ProductType{catalog.UnknownProductType, catalog.ProductType(42)} {
			require.ErrorIs(t, p.Validate(), errs.ErrValueIsInvalid)
			assert.Equal(t, "UNKNOWN", p.String())
			assert.Zero(t, p.Price())
		}
	})

	t.Run("parse", func(t *testing.T) {
		p, err := catalog.ParseProductType("pepperoni")
		require.NoError(t, err)
		assert.Equal(t, catalog.Pepperoni, p)

		_, err = catalog.ParseProductType("calzone")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestBaseVariant(t *testing.T) {
	assert.Equal(t,
		[]catalog.BaseVariant{catalog.Thin, catalog.Thick, catalog.ExtraThick},
		catalog.BaseVariants())

	for _, v := range catalog.BaseVariants() {
		require.NoError(t, v.Validate())
		assert.Zero(t, v.Price())
	}
	assert.Equal(t, "dough_type_extra_thick", catalog.ExtraThick.DisplayKey())
	require.ErrorIs(t, catalog.UnknownBaseVariant.Validate(), errs.ErrValueIsInvalid)

	v, err := catalog.ParseBaseVariant("Extra_Thick")
	require.NoError(t, err)
	assert.Equal(t, catalog.ExtraThick, v)

	_, err = catalog.ParseBaseVariant("stuffed")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestAddOn(t *testing.T) {
	t.Run("prices", func(t *testing.T) {
		prices := map[catalog.AddOn]int{
			catalog.Corn:     5,
			catalog.Mushroom: 10,
			catalog.Olive:    8,
			catalog.Tomato:   7,
			catalog.Cheese:   15,
		}
		for addOn, price := range prices {
			assert.Equal(t, price, addOn.Price(), addOn.String())
		}
	})

	t.Run("listing_order", func(t *testing.T) {
		assert.Equal(t,
			[]catalog.AddOn{catalog.Corn, catalog.Mushroom, catalog.Olive, catalog.Cheese, catalog.Tomato},
			catalog.AddOns())
	})

	t.Run("listing_returns_fresh_slice", func(t *testing.T) {
		list := catalog.AddOns()
		list[0] = catalog.Cheese

		assert.Equal(t, catalog.Corn, catalog.AddOns()[0])
	})

	t.Run("sort", func(t *testing.T) {
		a := []catalog.AddOn{catalog.Tomato, catalog.Corn, catalog.Cheese}

		catalog.SortAddOns(a)

		assert.Equal(t, []catalog.AddOn{catalog.Corn, catalog.Cheese, catalog.Tomato}, a)
	})

	t.Run("parse", func(t *testing.T) {
		a, err := catalog.ParseAddOn("CHEESE")
		require.NoError(t, err)
		assert.Equal(t, catalog.Cheese, a)

		_, err = catalog.ParseAddOn("pineapple")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
