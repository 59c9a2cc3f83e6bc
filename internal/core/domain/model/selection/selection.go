// Package selection holds the single pizza currently being configured.
package selection

import (
	"pizza/internal/core/domain/model/catalog"
)

// Snapshot is a detached copy of a selection. Cart lines are built from
// snapshots and loaded back through them when a line is edited.
type Snapshot struct {
	ProductType catalog.ProductType
	BaseVariant catalog.BaseVariant
	AddOns      []catalog.AddOn
	UnitPrice   int
	Quantity    int
}

// Selection is the in-progress item builder.
//
// Invariant: UnitPrice() equals ProductType().Price() plus the price of every
// selected add-on. The price is maintained incrementally, so every mutator
// adjusts it together with the field it changes.
//
// Selection is not safe for concurrent use.
type Selection struct {
	productType catalog.ProductType
	baseVariant catalog.BaseVariant
	addOns      map[catalog.AddOn]struct{}
	unitPrice   int
	quantity    int
}

// New returns an empty selection with quantity 1.
func New() *Selection {
	return &Selection{
		addOns:   make(map[catalog.AddOn]struct{}),
		quantity: 1,
	}
}

// ProductType returns the selected pizza type and whether one is set.
func (s *Selection) ProductType() (catalog.ProductType, bool) {
	return s.productType, s.productType != catalog.UnknownProductType
}

// BaseVariant returns the selected dough type and whether one is set.
func (s *Selection) BaseVariant() (catalog.BaseVariant, bool) {
	return s.baseVariant, s.baseVariant != catalog.UnknownBaseVariant
}

// HasProductType reports whether a pizza type is selected.
func (s *Selection) HasProductType() bool {
	_, ok := s.ProductType()
	return ok
}

// HasBaseVariant reports whether a dough type is selected.
func (s *Selection) HasBaseVariant() bool {
	_, ok := s.BaseVariant()
	return ok
}

// HasAddOn reports whether a is selected.
func (s *Selection) HasAddOn(a catalog.AddOn) bool {
	_, ok := s.addOns[a]
	return ok
}

// AddOns returns the selected toppings in catalog listing order.
func (s *Selection) AddOns() []catalog.AddOn {
	out := make([]catalog.AddOn, 0, len(s.addOns))
	for a := range s.addOns {
		out = append(out, a)
	}
	catalog.SortAddOns(out)
	return out
}

// UnitPrice returns the price of one pizza as currently configured.
func (s *Selection) UnitPrice() int {
	return s.unitPrice
}

// Quantity returns how many pizzas of this configuration are ordered.
func (s *Selection) Quantity() int {
	return s.quantity
}

// SelectProductType replaces the pizza type. The previous type's price is
// removed and the new one added, leaving topping prices untouched.
func (s *Selection) SelectProductType(p catalog.ProductType) error {
	if err := p.Validate(); err != nil {
		return err
	}

	s.unitPrice += p.Price() - s.productType.Price()
	s.productType = p
	return nil
}

// SelectBaseVariant replaces the dough type.
func (s *Selection) SelectBaseVariant(v catalog.BaseVariant) error {
	if err := v.Validate(); err != nil {
		return err
	}

	s.baseVariant = v
	return nil
}

// ToggleAddOn adds a if absent and removes it if present, adjusting the price.
// Two consecutive calls with the same topping leave the selection unchanged.
func (s *Selection) ToggleAddOn(a catalog.AddOn) error {
	if err := a.Validate(); err != nil {
		return err
	}

	if s.HasAddOn(a) {
		delete(s.addOns, a)
		s.unitPrice -= a.Price()
		return nil
	}

	s.addOns[a] = struct{}{}
	s.unitPrice += a.Price()
	return nil
}

// ClearProductType unsets the pizza type and refunds its price.
// It does nothing when no type is selected.
func (s *Selection) ClearProductType() {
	if !s.HasProductType() {
		return
	}

	s.unitPrice -= s.productType.Price()
	s.productType = catalog.UnknownProductType
}

// ClearBaseVariant unsets the dough type.
func (s *Selection) ClearBaseVariant() {
	s.baseVariant = catalog.UnknownBaseVariant
}

// ClearAddOns removes every topping, refunding each.
func (s *Selection) ClearAddOns() {
	for a := range s.addOns {
		s.unitPrice -= a.Price()
	}
	clear(s.addOns)
}

// Reset clears everything and sets the quantity back to 1.
func (s *Selection) Reset() {
	s.ClearProductType()
	s.ClearBaseVariant()
	s.ClearAddOns()
	s.quantity = 1
}

// Snapshot returns a copy that shares no memory with the selection.
func (s *Selection) Snapshot() Snapshot {
	return Snapshot{
		ProductType: s.productType,
		BaseVariant: s.baseVariant,
		AddOns:      s.AddOns(),
		UnitPrice:   s.unitPrice,
		Quantity:    s.quantity,
	}
}

// Load replaces the selection with the contents of snap. The add-on slice is
// copied into the selection's own set.
func (s *Selection) Load(snap Snapshot) {
	s.productType = snap.ProductType
	s.baseVariant = snap.BaseVariant
	s.addOns = make(map[catalog.AddOn]struct{}, len(snap.AddOns))
	for _, a := range snap.AddOns {
		s.addOns[a] = struct{}{}
	}
	s.unitPrice = snap.UnitPrice
	s.quantity = max(snap.Quantity, 1)
}
