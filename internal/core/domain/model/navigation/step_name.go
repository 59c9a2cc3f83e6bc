package navigation

import (
	"fmt"

	"pizza/internal/pkg/errs"
)

// StepName identifies one screen of the ordering wizard.
//
// The ordering flow moves through the steps in declaration order:
//
//	Initial ──> ProductType ──> BaseVariant ──> AddOns ──> Summary ──> Cart ──> Address
//	               ^                                                   │
//	               └──────────── cancel / new item / edit ─────────────┘
type StepName int

const (
	// UnknownStep is the zero value and never names a configured step.
	UnknownStep StepName = iota

	// Initial is the welcome screen.
	Initial

	// ProductType is where the pizza type is chosen. It is the first selection step.
	ProductType

	// BaseVariant is where the dough type is chosen.
	BaseVariant

	// AddOns is where optional toppings are toggled.
	AddOns

	// Summary shows the configured pizza before it goes into the cart.
	Summary

	// Cart lists every committed pizza.
	Cart

	// Address collects the delivery address before the order is placed.
	Address
)

var stepNames = map[StepName]string{
	Initial:     "Initial",
	ProductType: "ProductType",
	BaseVariant: "BaseVariant",
	AddOns:      "AddOns",
	Summary:     "Summary",
	Cart:        "Cart",
	Address:     "Address",
}

// Validate returns an error for UnknownStep and out-of-range values.
func (s StepName) Validate() error {
	if _, ok := stepNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("step is invalid", fmt.Errorf("%d is not a valid step", int(s)))
	}
	return nil
}

// String returns the step name, or "Unknown" for invalid values.
func (s StepName) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return "Unknown"
}
