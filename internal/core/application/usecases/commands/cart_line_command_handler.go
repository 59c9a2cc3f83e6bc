package commands

import (
	"context"

	"pizza/internal/core/domain/model/order"
	"pizza/internal/core/ports"
	"pizza/internal/pkg/logger"

	"go.uber.org/zap"
)

// CartLineCommandHandler applies line operations to a session's cart.
type CartLineCommandHandler struct {
	sessions ports.SessionRepository
	logger   *zap.Logger
}

// NewCartLineCommandHandler creates the handler.
func NewCartLineCommandHandler(sessions ports.SessionRepository, l *zap.Logger) CartLineCommandHandler {
	return CartLineCommandHandler{
		sessions: sessions,
		logger:   logger.OrNop(l).With(zap.String("component", "cart_line_handler")),
	}
}

// Handle runs the line operation. A stale index fails with
// errs.ErrValueIsOutOfRange and leaves the cart untouched.
func (h CartLineCommandHandler) Handle(ctx context.Context, cmd CartLineCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.sessions.Update(ctx, cmd.SessionID(), func(c *order.Controller) error {
		var err error
		switch cmd.Action() {
		case RemoveLine:
			err = c.RemoveFromCart(cmd.Index())
		case EditLine:
			err = c.StartEdit(cmd.Index())
		case ChangeLineQuantity:
			err = c.ChangeQuantity(cmd.Index(), cmd.Delta())
		}
		if err != nil {
			h.logger.Debug("cart line operation rejected",
				zap.Stringer("session_id", cmd.SessionID()),
				zap.Int("index", cmd.Index()),
				zap.Error(err),
			)
			return err
		}

		h.logger.Debug("cart line updated",
			zap.Stringer("session_id", cmd.SessionID()),
			zap.Int("index", cmd.Index()),
			zap.Int("total_price", c.Signals().TotalPrice),
		)
		return nil
	})
}
