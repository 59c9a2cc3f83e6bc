package commands

import (
	"errors"
	"fmt"

	"pizza/internal/core/domain/model/kernel"
	"pizza/internal/pkg/errs"
	"pizza/internal/pkg/guard"
)

var ErrCartLineCommandIsNotConstructed = errors.New(
	"CartLineCommand must be created via one of the CartLineCommand constructors",
)

// CartLineAction is an operation on one cart position.
type CartLineAction int

const (
	RemoveLine CartLineAction = iota + 1
	EditLine
	ChangeLineQuantity
)

// CartLineCommand removes, edits or re-counts the cart line at an index.
// The index is checked against the cart only when the command is handled,
// since the cart may change between building and handling it.
type CartLineCommand struct {
	sessionID kernel.UUID
	action    CartLineAction
	index     int
	delta     int

	guard guard.ConstructorGuard
}

// NewRemoveLineCommand creates a command deleting the line at index.
func NewRemoveLineCommand(sessionID kernel.UUID, index int) (CartLineCommand, error) {
	return newCartLineCommand(sessionID, RemoveLine, index, 0)
}

// NewEditLineCommand creates a command that starts editing the line at index.
func NewEditLineCommand(sessionID kernel.UUID, index int) (CartLineCommand, error) {
	return newCartLineCommand(sessionID, EditLine, index, 0)
}

// NewChangeLineQuantityCommand creates a command adding delta pizzas to the
// line at index. delta may be negative but not zero.
func NewChangeLineQuantityCommand(sessionID kernel.UUID, index, delta int) (CartLineCommand, error) {
	if delta == 0 {
		return CartLineCommand{}, errs.NewValueIsInvalidErrorWithCause("delta", errors.New("0 changes nothing"))
	}
	return newCartLineCommand(sessionID, ChangeLineQuantity, index, delta)
}

func newCartLineCommand(sessionID kernel.UUID, action CartLineAction, index, delta int) (CartLineCommand, error) {
	var indexErr error
	if index < 0 {
		indexErr = errs.NewValueIsOutOfRangeErrorWithCause(
			"cart line index", index, 0, "cart size",
			fmt.Errorf("%d is negative", index),
		)
	}

	if err := errors.Join(sessionID.Validate(), indexErr); err != nil {
		return CartLineCommand{}, err
	}

	return CartLineCommand{
		sessionID: sessionID,
		action:    action,
		index:     index,
		delta:     delta,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through a constructor.
func (c CartLineCommand) Validate() error {
	return c.guard.Validate(ErrCartLineCommandIsNotConstructed)
}

// SessionID returns the target session.
func (c CartLineCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// Action returns the line operation.
func (c CartLineCommand) Action() CartLineAction {
	return c.action
}

// Index returns the cart position.
func (c CartLineCommand) Index() int {
	return c.index
}

// Delta returns the quantity change for ChangeLineQuantity commands.
func (c CartLineCommand) Delta() int {
	return c.delta
}
