package commands

import (
	"errors"

	"pizza/internal/core/domain/model/kernel"
	"pizza/internal/pkg/guard"
)

var ErrStartSessionCommandIsNotConstructed = errors.New(
	"StartSessionCommand must be created via NewStartSessionCommand constructor",
)

// StartSessionCommand opens a new ordering session under a caller-chosen ID.
//
// Example:
//
//	cmd, err := NewStartSessionCommand(kernel.NewUUID())
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to start session: %w", err)
//	}
type StartSessionCommand struct {
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartSessionCommand validates the session ID and creates the command.
func NewStartSessionCommand(sessionID kernel.UUID) (StartSessionCommand, error) {
	if err := sessionID.Validate(); err != nil {
		return StartSessionCommand{}, err
	}

	return StartSessionCommand{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c StartSessionCommand) Validate() error {
	return c.guard.Validate(ErrStartSessionCommandIsNotConstructed)
}

// SessionID returns the ID of the session to open.
func (c StartSessionCommand) SessionID() kernel.UUID {
	return c.sessionID
}
