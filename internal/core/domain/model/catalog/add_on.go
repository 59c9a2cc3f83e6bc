package catalog

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"pizza/internal/pkg/errs"
)

// AddOn is an optional topping. Any subset of toppings may be chosen.
type AddOn int

const (
	// UnknownAddOn is the zero value.
	UnknownAddOn AddOn = iota
	Corn
	Mushroom
	Olive
	Tomato
	Cheese
)

type addOnInfo struct {
	name       string
	displayKey string
	price      int
}

var addOns = map[AddOn]addOnInfo{
	Corn:     {name: "CORN", displayKey: "topping_type_corn", price: 5},
	Mushroom: {name: "MUSHROOM", displayKey: "topping_type_mushroom", price: 10},
	Olive:    {name: "OLIVE", displayKey: "topping_type_olive", price: 8},
	Tomato:   {name: "TOMATO", displayKey: "topping_type_tomato", price: 7},
	Cheese:   {name: "CHEESE", displayKey: "topping_type_cheese", price: 15},
}

// AddOns returns every topping in listing order. Cheese is listed before tomato.
func AddOns() []AddOn {
	return []AddOn{Corn, Mushroom, Olive, Cheese, Tomato}
}

// ParseAddOn looks a topping up by name, ignoring case.
func ParseAddOn(name string) (AddOn, error) {
	for _, a := range AddOns() {
		if strings.EqualFold(addOns[a].name, name) {
			return a, nil
		}
	}
	return UnknownAddOn, errs.NewValueIsInvalidErrorWithCause(
		"add-on",
		fmt.Errorf("%q is not a known topping", name),
	)
}

// Validate returns an error for UnknownAddOn and out-of-range values.
func (a AddOn) Validate() error {
	if _, ok := addOns[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"add-on",
			fmt.Errorf("%d is not a valid topping", int(a)),
		)
	}
	return nil
}

func (a AddOn) String() string {
	if info, ok := addOns[a]; ok {
		return info.name
	}
	return "UNKNOWN"
}

// Price returns the topping surcharge, 0 for invalid values.
func (a AddOn) Price() int {
	return addOns[a].price
}

func (a AddOn) DisplayKey() string {
	return addOns[a].displayKey
}

// SortAddOns orders a in listing order, in place.
func SortAddOns(a []AddOn) {
	order := AddOns()
	slices.SortFunc(a, func(x, y AddOn) int {
		return cmp.Compare(slices.Index(order, x), slices.Index(order, y))
	})
}
