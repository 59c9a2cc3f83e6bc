package commands

import (
	"errors"

	"pizza/internal/core/domain/model/kernel"
	"pizza/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand finalises the cart of a session.
type PlaceOrderCommand struct {
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates the command.
func NewPlaceOrderCommand(sessionID kernel.UUID) (PlaceOrderCommand, error) {
	if err := sessionID.Validate(); err != nil {
		return PlaceOrderCommand{}, err
	}

	return PlaceOrderCommand{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// SessionID returns the target session.
func (c PlaceOrderCommand) SessionID() kernel.UUID {
	return c.sessionID
}
