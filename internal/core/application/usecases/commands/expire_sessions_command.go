package commands

import (
	"errors"
	"time"

	"pizza/internal/pkg/errs"
	"pizza/internal/pkg/guard"
)

var ErrExpireSessionsCommandIsNotConstructed = errors.New(
	"ExpireSessionsCommand must be created via NewExpireSessionsCommand constructor",
)

// ExpireSessionsCommand drops sessions idle for longer than a timeout.
type ExpireSessionsCommand struct {
	idleTimeout time.Duration

	guard guard.ConstructorGuard
}

// NewExpireSessionsCommand creates the command. The timeout must be positive.
func NewExpireSessionsCommand(idleTimeout time.Duration) (ExpireSessionsCommand, error) {
	if idleTimeout <= 0 {
		return ExpireSessionsCommand{}, errs.NewValueIsOutOfRangeError("idle timeout", idleTimeout, "1ns", "max duration")
	}

	return ExpireSessionsCommand{
		idleTimeout: idleTimeout,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireSessionsCommand) Validate() error {
	return c.guard.Validate(ErrExpireSessionsCommandIsNotConstructed)
}

// IdleTimeout returns how long a session may stay untouched.
func (c ExpireSessionsCommand) IdleTimeout() time.Duration {
	return c.idleTimeout
}
