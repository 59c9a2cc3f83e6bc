package order

import (
	"slices"

	"pizza/internal/core/domain/model/cart"
	"pizza/internal/core/domain/model/kernel"
)

// Confirmation is the immutable receipt returned by PlaceOrder.
type Confirmation struct {
	id      kernel.UUID
	lines   []cart.Line
	total   int
	address kernel.Address
}

// ID returns the confirmation identifier.
func (c Confirmation) ID() kernel.UUID {
	return c.id
}

// Lines returns a copy of the ordered lines.
func (c Confirmation) Lines() []cart.Line {
	return slices.Clone(c.lines)
}

// Total returns the order total in minor currency units.
func (c Confirmation) Total() int {
	return c.total
}

// Address returns the delivery address.
func (c Confirmation) Address() kernel.Address {
	return c.address
}
