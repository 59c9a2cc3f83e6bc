package commands

import (
	"errors"
	"strings"

	"pizza/internal/core/domain/model/kernel"
	"pizza/internal/pkg/errs"
	"pizza/internal/pkg/guard"
)

var ErrSetAddressCommandIsNotConstructed = errors.New(
	"SetAddressCommand must be created via NewSetAddressCommand constructor",
)

// SetAddressCommand records the delivery address of a session. The address
// rules themselves live in kernel.NewAddress and apply when handled.
type SetAddressCommand struct {
	sessionID kernel.UUID
	address   string

	guard guard.ConstructorGuard
}

// NewSetAddressCommand creates the command. A blank address is rejected.
func NewSetAddressCommand(sessionID kernel.UUID, address string) (SetAddressCommand, error) {
	var addressErr error
	if strings.TrimSpace(address) == "" {
		addressErr = errs.NewValueIsRequiredError("address")
	}

	if err := errors.Join(sessionID.Validate(), addressErr); err != nil {
		return SetAddressCommand{}, err
	}

	return SetAddressCommand{
		sessionID: sessionID,
		address:   address,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetAddressCommand) Validate() error {
	return c.guard.Validate(ErrSetAddressCommandIsNotConstructed)
}

// SessionID returns the target session.
func (c SetAddressCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// Address returns the raw address text.
func (c SetAddressCommand) Address() string {
	return c.address
}
