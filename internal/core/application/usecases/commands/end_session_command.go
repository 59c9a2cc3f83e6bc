package commands

import (
	"errors"

	"pizza/internal/core/domain/model/kernel"
	"pizza/internal/pkg/guard"
)

var ErrEndSessionCommandIsNotConstructed = errors.New(
	"EndSessionCommand must be created via NewEndSessionCommand constructor",
)

// EndSessionCommand discards a session and everything in it.
type EndSessionCommand struct {
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewEndSessionCommand creates the command.
func NewEndSessionCommand(sessionID kernel.UUID) (EndSessionCommand, error) {
	if err := sessionID.Validate(); err != nil {
		return EndSessionCommand{}, err
	}

	return EndSessionCommand{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c EndSessionCommand) Validate() error {
	return c.guard.Validate(ErrEndSessionCommandIsNotConstructed)
}

// SessionID returns the session to end.
func (c EndSessionCommand) SessionID() kernel.UUID {
	return c.sessionID
}
