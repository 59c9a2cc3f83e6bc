package catalog

import (
	"fmt"
	"strings"

	"pizza/internal/pkg/errs"
)

// BaseVariant is the dough type. It has no price of its own.
type BaseVariant int

const (
	// UnknownBaseVariant is the zero value and means "not selected".
	UnknownBaseVariant BaseVariant = iota
	Thin
	Thick
	ExtraThick
)

var baseVariants = map[BaseVariant]struct{ name, displayKey string }{
	Thin:       {name: "THIN", displayKey: "dough_type_thin"},
	Thick:      {name: "THICK", displayKey: "dough_type_thick"},
	ExtraThick: {name: "EXTRA_THICK", displayKey: "dough_type_extra_thick"},
}

// BaseVariants returns every dough type in listing order.
func BaseVariants() []BaseVariant {
	return []BaseVariant{Thin, Thick, ExtraThick}
}

// ParseBaseVariant looks a dough type up by name, ignoring case.
func ParseBaseVariant(name string) (BaseVariant, error) {
	for _, v := range BaseVariants() {
		if strings.EqualFold(baseVariants[v].name, name) {
			return v, nil
		}
	}
	return UnknownBaseVariant, errs.NewValueIsInvalidErrorWithCause(
		"base variant",
		fmt.Errorf("%q is not a known dough type", name),
	)
}

// Validate returns an error for UnknownBaseVariant and out-of-range values.
func (v BaseVariant) Validate() error {
	if _, ok := baseVariants[v]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"base variant",
			fmt.Errorf("%d is not a valid dough type", int(v)),
		)
	}
	return nil
}

func (v BaseVariant) String() string {
	if info, ok := baseVariants[v]; ok {
		return info.name
	}
	return "UNKNOWN"
}

// Price is always 0; dough does not change the price of a pizza.
func (v BaseVariant) Price() int {
	return 0
}

func (v BaseVariant) DisplayKey() string {
	return baseVariants[v].displayKey
}
