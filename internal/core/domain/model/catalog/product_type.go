package catalog

import (
	"fmt"
	"strings"

	"pizza/internal/pkg/errs"
)

// ProductType is the pizza type. It is the only part of a pizza with a base price.
type ProductType int

const (
	// UnknownProductType is the zero value and means "not selected".
	UnknownProductType ProductType = iota
	Margarita
	Pepperoni
	Mixed
	Vegan
)

type productTypeInfo struct {
	name       string
	displayKey string
	price      int
}

var productTypes = map[ProductType]productTypeInfo{
	Margarita: {name: "MARGARITA", displayKey: "pizza_type_margarita", price: 90},
	Pepperoni: {name: "PEPPERONI", displayKey: "pizza_type_pepperoni", price: 95},
	Mixed:     {name: "MIXED", displayKey: "pizza_type_mixed", price: 110},
	Vegan:     {name: "VEGAN", displayKey: "pizza_type_vegan", price: 100},
}

// ProductTypes returns every pizza type in listing order.
func ProductTypes() []ProductType {
	return []ProductType{Margarita, Pepperoni, Mixed, Vegan}
}

// ParseProductType looks a pizza type up by name, ignoring case.
func ParseProductType(name string) (ProductType, error) {
	for _, p := range ProductTypes() {
		if strings.EqualFold(productTypes[p].name, name) {
			return p, nil
		}
	}
	return UnknownProductType, errs.NewValueIsInvalidErrorWithCause(
		"product type",
		fmt.Errorf("%q is not a known pizza type", name),
	)
}

// Validate returns an error for UnknownProductType and out-of-range values.
func (p ProductType) Validate() error {
	if _, ok := productTypes[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"product type",
			fmt.Errorf("%d is not a valid pizza type", int(p)),
		)
	}
	return nil
}

// String returns the catalog name, or "UNKNOWN" for invalid values.
func (p ProductType) String() string {
	if info, ok := productTypes[p]; ok {
		return info.name
	}
	return "UNKNOWN"
}

// Price returns the base price, 0 for invalid values.
func (p ProductType) Price() int {
	return productTypes[p].price
}

// DisplayKey returns the display-name resource key.
func (p ProductType) DisplayKey() string {
	return productTypes[p].displayKey
}
