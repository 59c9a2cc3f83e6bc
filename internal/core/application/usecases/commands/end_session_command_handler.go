package commands

import (
	"context"

	"pizza/internal/core/ports"
	"pizza/internal/pkg/logger"

	"go.uber.org/zap"
)

// EndSessionCommandHandler removes sessions.
type EndSessionCommandHandler struct {
	sessions ports.SessionRepository
	logger   *zap.Logger
}

// NewEndSessionCommandHandler creates the handler.
func NewEndSessionCommandHandler(sessions ports.SessionRepository, l *zap.Logger) EndSessionCommandHandler {
	return EndSessionCommandHandler{
		sessions: sessions,
		logger:   logger.OrNop(l).With(zap.String("component", "end_session_handler")),
	}
}

// Handle removes the session.
func (h EndSessionCommandHandler) Handle(ctx context.Context, cmd EndSessionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.sessions.Remove(ctx, cmd.SessionID()); err != nil {
		return err
	}

	h.logger.Info("session ended", zap.Stringer("session_id", cmd.SessionID()))
	return nil
}
