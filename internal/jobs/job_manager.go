package jobs

import (
	"fmt"
	"log/slog"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	workflowAuditJob *WorkflowAuditJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	driftHandler queries.WorkflowDriftQueryHandler,
	payments ports.PaymentRepository,
	progress ports.ProgressRepository,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		workflowAuditJob: NewWorkflowAuditJob(driftHandler, payments, progress, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.workflowAuditJob.Start(); err != nil {
		return fmt.Errorf("failed to start workflow audit job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.workflowAuditJob.Stop()
}
