package commands

import (
	"context"

	"pizza/internal/core/domain/model/order"
	"pizza/internal/core/ports"
	"pizza/internal/pkg/logger"

	"go.uber.org/zap"
)

// SetAddressCommandHandler stores delivery addresses.
type SetAddressCommandHandler struct {
	sessions ports.SessionRepository
	logger   *zap.Logger
}

// NewSetAddressCommandHandler creates the handler.
func NewSetAddressCommandHandler(sessions ports.SessionRepository, l *zap.Logger) SetAddressCommandHandler {
	return SetAddressCommandHandler{
		sessions: sessions,
		logger:   logger.OrNop(l).With(zap.String("component", "set_address_handler")),
	}
}

// Handle sets the address. Outside the Address step it fails with
// order.ErrActionNotAllowed.
func (h SetAddressCommandHandler) Handle(ctx context.Context, cmd SetAddressCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.sessions.Update(ctx, cmd.SessionID(), func(c *order.Controller) error {
		if err := c.SetAddress(cmd.Address()); err != nil {
			return err
		}
		h.logger.Debug("address set", zap.Stringer("session_id", cmd.SessionID()))
		return nil
	})
}
