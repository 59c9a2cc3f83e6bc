package jobs

import (
	"context"
	"time"

	"pizza/internal/core/application/usecases/commands"
	"pizza/internal/pkg/logger"
	"pizza/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// SessionExpiryJob periodically removes idle ordering sessions.
type SessionExpiryJob struct {
	handler  commands.ExpireSessionsCommandHandler
	cmd      commands.ExpireSessionsCommand
	schedule string
	cron     *cron.Cron
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// NewSessionExpiryJob creates the job. schedule is a six-field cron
// expression (seconds first).
func NewSessionExpiryJob(
	handler commands.ExpireSessionsCommandHandler,
	idleTimeout time.Duration,
	schedule string,
	m *metrics.Metrics,
	l *zap.Logger,
) (*SessionExpiryJob, error) {
	cmd, err := commands.NewExpireSessionsCommand(idleTimeout)
	if err != nil {
		return nil, err
	}

	return &SessionExpiryJob{
		handler:  handler,
		cmd:      cmd,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		metrics:  m,
		logger:   logger.OrNop(l).With(zap.String("component", "session_expiry_job")),
	}, nil
}

// Start schedules the job.
func (j *SessionExpiryJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Session expiry job started",
		zap.String("schedule", j.schedule),
		zap.Duration("idle_timeout", j.cmd.IdleTimeout()),
	)
	return nil
}

// RunOnce performs a single sweep and returns how many sessions expired.
func (j *SessionExpiryJob) RunOnce(ctx context.Context) int {
	resp, err := j.handler.Handle(ctx, j.cmd)
	if err != nil {
		j.logger.Error("Session expiry job failed", zap.Error(err))
		return 0
	}

	if j.metrics != nil && resp.Expired > 0 {
		j.metrics.SessionsExpired.Add(float64(resp.Expired))
		j.metrics.SessionsActive.Sub(float64(resp.Expired))
	}
	return resp.Expired
}

// Stop stops the schedule and waits for a running sweep to finish.
func (j *SessionExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Session expiry job stopped")
}
