package cart

import (
	"slices"

	"pizza/internal/core/domain/model/catalog"
	"pizza/internal/core/domain/model/selection"
)

// Line is one committed pizza. Everything except the quantity is fixed at
// commit time; the add-on list is a private copy.
type Line struct {
	productType catalog.ProductType
	baseVariant catalog.BaseVariant
	addOns      []catalog.AddOn
	unitPrice   int
	quantity    int
}

func newLine(snap selection.Snapshot) *Line {
	return &Line{
		productType: snap.ProductType,
		baseVariant: snap.BaseVariant,
		addOns:      slices.Clone(snap.AddOns),
		unitPrice:   snap.UnitPrice,
		quantity:    max(snap.Quantity, 1),
	}
}

// ProductType returns the pizza type.
func (l Line) ProductType() catalog.ProductType {
	return l.productType
}

// BaseVariant returns the dough type.
func (l Line) BaseVariant() catalog.BaseVariant {
	return l.baseVariant
}

// AddOns returns a copy of the toppings in listing order.
func (l Line) AddOns() []catalog.AddOn {
	return slices.Clone(l.addOns)
}

// UnitPrice returns the price of a single pizza on this line.
func (l Line) UnitPrice() int {
	return l.unitPrice
}

// Quantity returns the number of pizzas on this line, always at least 1.
func (l Line) Quantity() int {
	return l.quantity
}

// Subtotal returns UnitPrice * Quantity.
func (l Line) Subtotal() int {
	return l.unitPrice * l.quantity
}

// Snapshot returns the line as a selection snapshot, used to load it back
// into the builder for editing.
func (l Line) Snapshot() selection.Snapshot {
	return selection.Snapshot{
		ProductType: l.productType,
		BaseVariant: l.baseVariant,
		AddOns:      slices.Clone(l.addOns),
		UnitPrice:   l.unitPrice,
		Quantity:    l.quantity,
	}
}

func (l Line) clone() Line {
	l.addOns = slices.Clone(l.addOns)
	return l
}
