package commands

import (
	"context"

	"pizza/internal/core/domain/model/order"
	"pizza/internal/core/ports"
	"pizza/internal/pkg/logger"

	"go.uber.org/zap"
)

// SelectItemCommandHandler applies catalog selections to a session.
type SelectItemCommandHandler struct {
	sessions ports.SessionRepository
	logger   *zap.Logger
}

// NewSelectItemCommandHandler creates the handler.
func NewSelectItemCommandHandler(sessions ports.SessionRepository, l *zap.Logger) SelectItemCommandHandler {
	return SelectItemCommandHandler{
		sessions: sessions,
		logger:   logger.OrNop(l).With(zap.String("component", "select_item_handler")),
	}
}

// Handle selects the pizza type or dough type, or toggles the topping.
func (h SelectItemCommandHandler) Handle(ctx context.Context, cmd SelectItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.sessions.Update(ctx, cmd.SessionID(), func(c *order.Controller) error {
		var err error
		switch cmd.Kind() {
		case ProductTypeItem:
			err = c.SelectProductType(cmd.ProductType())
		case BaseVariantItem:
			err = c.SelectBaseVariant(cmd.BaseVariant())
		case AddOnItem:
			err = c.ToggleAddOn(cmd.AddOn())
		}
		if err != nil {
			return err
		}

		h.logger.Debug("item selected",
			zap.Stringer("session_id", cmd.SessionID()),
			zap.String("kind", string(cmd.Kind())),
			zap.Int("unit_price", c.Signals().UnitPrice),
		)
		return nil
	})
}
