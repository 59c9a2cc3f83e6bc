package commands

import (
	"errors"
	"fmt"

	"pizza/internal/core/domain/model/catalog"
	"pizza/internal/core/domain/model/kernel"
	"pizza/internal/pkg/errs"
	"pizza/internal/pkg/guard"
)

var ErrSelectItemCommandIsNotConstructed = errors.New(
	"SelectItemCommand must be created via NewSelectItemCommand constructor",
)

// ItemKind says which part of the pizza a SelectItemCommand changes.
type ItemKind string

const (
	ProductTypeItem ItemKind = "product-type"
	BaseVariantItem ItemKind = "base-variant"
	AddOnItem       ItemKind = "add-on"
)

// SelectItemCommand picks a pizza type or dough type, or toggles a topping,
// by catalog name.
type SelectItemCommand struct {
	sessionID   kernel.UUID
	kind        ItemKind
	productType catalog.ProductType
	baseVariant catalog.BaseVariant
	addOn       catalog.AddOn

	guard guard.ConstructorGuard
}

// NewSelectItemCommand resolves name against the catalog for the given kind.
// Unknown kinds and names are reported as errs.ValueIsInvalidError.
func NewSelectItemCommand(sessionID kernel.UUID, kind ItemKind, name string) (SelectItemCommand, error) {
	cmd := SelectItemCommand{
		sessionID: sessionID,
		kind:      kind,
		guard:     guard.NewConstructorGuard(),
	}

	var err error
	switch kind {
	case ProductTypeItem:
		cmd.productType, err = catalog.ParseProductType(name)
	case BaseVariantItem:
		cmd.baseVariant, err = catalog.ParseBaseVariant(name)
	case AddOnItem:
		cmd.addOn, err = catalog.ParseAddOn(name)
	default:
		err = errs.NewValueIsInvalidErrorWithCause("item kind", fmt.Errorf("%q is not a known item kind", kind))
	}

	if err = errors.Join(sessionID.Validate(), err); err != nil {
		return SelectItemCommand{}, err
	}
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SelectItemCommand) Validate() error {
	return c.guard.Validate(ErrSelectItemCommandIsNotConstructed)
}

// SessionID returns the target session.
func (c SelectItemCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// Kind returns what is being selected.
func (c SelectItemCommand) Kind() ItemKind {
	return c.kind
}

// ProductType returns the chosen pizza type for ProductTypeItem commands.
func (c SelectItemCommand) ProductType() catalog.ProductType {
	return c.productType
}

// BaseVariant returns the chosen dough type for BaseVariantItem commands.
func (c SelectItemCommand) BaseVariant() catalog.BaseVariant {
	return c.baseVariant
}

// AddOn returns the topping to toggle for AddOnItem commands.
func (c SelectItemCommand) AddOn() catalog.AddOn {
	return c.addOn
}
