package jobs

import (
	"fmt"
	"time"

	"pizza/internal/core/application/usecases/commands"
	"pizza/internal/pkg/metrics"

	"go.uber.org/zap"
)

// Config holds the job settings.
type Config struct {
	SessionIdleTimeout   time.Duration
	SessionSweepSchedule string
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	sessionExpiryJob *SessionExpiryJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	expireSessionsHandler commands.ExpireSessionsCommandHandler,
	cfg Config,
	m *metrics.Metrics,
	logger *zap.Logger,
) (*JobManager, error) {
	sessionExpiryJob, err := NewSessionExpiryJob(
		expireSessionsHandler,
		cfg.SessionIdleTimeout,
		cfg.SessionSweepSchedule,
		m,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create session expiry job: %w", err)
	}

	return &JobManager{sessionExpiryJob: sessionExpiryJob}, nil
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.sessionExpiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start session expiry job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.sessionExpiryJob.Stop()
}
