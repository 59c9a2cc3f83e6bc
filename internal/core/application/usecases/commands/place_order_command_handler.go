package commands

import (
	"context"

	"pizza/internal/core/domain/model/order"
	"pizza/internal/core/ports"
	"pizza/internal/pkg/logger"

	"go.uber.org/zap"
)

// PlaceOrderCommandResponse carries the confirmation of a placed order.
type PlaceOrderCommandResponse struct {
	Confirmation order.Confirmation
}

// PlaceOrderCommandHandler finalises carts.
type PlaceOrderCommandHandler struct {
	sessions ports.SessionRepository
	logger   *zap.Logger
}

// NewPlaceOrderCommandHandler creates the handler.
func NewPlaceOrderCommandHandler(sessions ports.SessionRepository, l *zap.Logger) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		sessions: sessions,
		logger:   logger.OrNop(l).With(zap.String("component", "place_order_handler")),
	}
}

// Handle places the order. The session stays open and starts a new pizza.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (PlaceOrderCommandResponse, error) {
	if err := cmd.Validate(); err != nil {
		return PlaceOrderCommandResponse{}, err
	}

	var confirmation order.Confirmation
	err := h.sessions.Update(ctx, cmd.SessionID(), func(c *order.Controller) error {
		var err error
		confirmation, err = c.PlaceOrder()
		return err
	})
	if err != nil {
		return PlaceOrderCommandResponse{}, err
	}

	h.logger.Info("order placed",
		zap.Stringer("session_id", cmd.SessionID()),
		zap.Stringer("order_id", confirmation.ID()),
		zap.Int("lines", len(confirmation.Lines())),
		zap.Int("total", confirmation.Total()),
	)
	return PlaceOrderCommandResponse{Confirmation: confirmation}, nil
}
