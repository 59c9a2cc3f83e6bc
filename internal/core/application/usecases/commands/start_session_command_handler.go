package commands

import (
	"context"

	"pizza/internal/core/domain/model/order"
	"pizza/internal/core/ports"
	"pizza/internal/pkg/logger"

	"go.uber.org/zap"
)

// StartSessionCommandHandler creates a controller and stores it.
type StartSessionCommandHandler struct {
	sessions ports.SessionRepository
	logger   *zap.Logger
}

// NewStartSessionCommandHandler creates the handler.
func NewStartSessionCommandHandler(sessions ports.SessionRepository, l *zap.Logger) StartSessionCommandHandler {
	return StartSessionCommandHandler{
		sessions: sessions,
		logger:   logger.OrNop(l).With(zap.String("component", "start_session_handler")),
	}
}

// Handle opens the session. The new controller starts at the Initial step.
func (h StartSessionCommandHandler) Handle(ctx context.Context, cmd StartSessionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	controller, err := order.NewController(cmd.SessionID())
	if err != nil {
		return err
	}

	if err = h.sessions.Add(ctx, controller); err != nil {
		return err
	}

	h.logger.Info("session started", zap.Stringer("session_id", cmd.SessionID()))
	return nil
}
