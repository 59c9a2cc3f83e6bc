package commands

import (
	"context"

	"pizza/internal/core/domain/model/order"
	"pizza/internal/core/ports"
	"pizza/internal/pkg/logger"

	"go.uber.org/zap"
)

// NavigateCommandHandler applies wizard actions to a session.
type NavigateCommandHandler struct {
	sessions ports.SessionRepository
	logger   *zap.Logger
}

// NewNavigateCommandHandler creates the handler.
func NewNavigateCommandHandler(sessions ports.SessionRepository, l *zap.Logger) NavigateCommandHandler {
	return NavigateCommandHandler{
		sessions: sessions,
		logger:   logger.OrNop(l).With(zap.String("component", "navigate_handler")),
	}
}

// Handle runs the action. Actions the current step does not offer fail with
// order.ErrActionNotAllowed.
func (h NavigateCommandHandler) Handle(ctx context.Context, cmd NavigateCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.sessions.Update(ctx, cmd.SessionID(), func(c *order.Controller) error {
		from := c.Signals().Step

		var err error
		switch cmd.Action() {
		case Advance:
			err = c.Advance()
		case Retreat:
			err = c.Retreat()
		case Cancel:
			err = c.CancelCurrentFlow()
		case AddToCart:
			err = c.AddCurrentToCart()
		case NewItem:
			err = c.StartNewItem()
		case OpenCart:
			err = c.GoToCart()
		}
		if err != nil {
			return err
		}

		h.logger.Debug("navigated",
			zap.Stringer("session_id", cmd.SessionID()),
			zap.String("action", string(cmd.Action())),
			zap.Stringer("from", from),
			zap.Stringer("to", c.Signals().Step),
		)
		return nil
	})
}
