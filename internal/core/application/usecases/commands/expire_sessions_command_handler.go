package commands

import (
	"context"

	"pizza/internal/core/ports"
	"pizza/internal/pkg/clock"
	"pizza/internal/pkg/logger"

	"go.uber.org/zap"
)

// ExpireSessionsCommandResponse reports how many sessions were dropped.
type ExpireSessionsCommandResponse struct {
	Expired int
}

// ExpireSessionsCommandHandler removes idle sessions.
type ExpireSessionsCommandHandler struct {
	sessions ports.SessionRepository
	clock    clock.Clock
	logger   *zap.Logger
}

// NewExpireSessionsCommandHandler creates the handler. The clock must be the
// one the repository stamps activity with.
func NewExpireSessionsCommandHandler(
	sessions ports.SessionRepository,
	clk clock.Clock,
	l *zap.Logger,
) ExpireSessionsCommandHandler {
	return ExpireSessionsCommandHandler{
		sessions: sessions,
		clock:    clk,
		logger:   logger.OrNop(l).With(zap.String("component", "expire_sessions_handler")),
	}
}

// Handle removes every session last active before now minus the timeout.
func (h ExpireSessionsCommandHandler) Handle(
	ctx context.Context,
	cmd ExpireSessionsCommand,
) (ExpireSessionsCommandResponse, error) {
	if err := cmd.Validate(); err != nil {
		return ExpireSessionsCommandResponse{}, err
	}

	cutoff := h.clock.Now().Add(-cmd.IdleTimeout())
	expired, err := h.sessions.RemoveIdle(ctx, cutoff)
	if err != nil {
		return ExpireSessionsCommandResponse{}, err
	}

	if expired > 0 {
		h.logger.Info("idle sessions expired", zap.Int("count", expired), zap.Time("cutoff", cutoff))
	}
	return ExpireSessionsCommandResponse{Expired: expired}, nil
}
