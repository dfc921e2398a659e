package jobs

import (
	"context"
	"errors"
	"log/slog"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/workflow"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// recentPaymentsAuditWindow caps how many payments each audit pass inspects.
const recentPaymentsAuditWindow = 100

// WorkflowAuditJob periodically reconciles order statuses against the
// progress store and logs any disagreement. It never repairs anything: the
// log lines are the input for manual postmortem reconciliation.
type WorkflowAuditJob struct {
	driftHandler queries.WorkflowDriftQueryHandler
	payments     ports.PaymentRepository
	progress     ports.ProgressRepository
	cron         *cron.Cron
	logger       *slog.Logger
}

// NewWorkflowAuditJob creates the audit job. Runs every minute.
func NewWorkflowAuditJob(
	driftHandler queries.WorkflowDriftQueryHandler,
	payments ports.PaymentRepository,
	progress ports.ProgressRepository,
	logger *slog.Logger,
) *WorkflowAuditJob {
	return &WorkflowAuditJob{
		driftHandler: driftHandler,
		payments:     payments,
		progress:     progress,
		cron:         cron.New(cron.WithSeconds()),
		logger:       logger.With("component", "workflow_audit_job"),
	}
}

// Start schedules the audit to run at the top of every minute.
func (j *WorkflowAuditJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		j.auditStatusDrift(ctx)
		j.auditPaymentDrift(ctx)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Workflow audit job started (running every minute)")
	return nil
}

// Stop stops the audit job.
func (j *WorkflowAuditJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Workflow audit job stopped")
}

// auditStatusDrift logs orders whose delivery status and delivery step
// completion disagree in either direction.
func (j *WorkflowAuditJob) auditStatusDrift(ctx context.Context) {
	drifts, err := j.driftHandler.Handle(ctx, queries.NewWorkflowDriftQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Workflow drift audit failed", "error", err)
		return
	}

	for _, drift := range drifts {
		j.logger.WarnContext(ctx, "Order status and progress records disagree",
			"order_id", drift.OrderID.String(),
			"status", drift.StatusName,
			"step_code", drift.StepCode,
			"drift", string(drift.Kind),
		)
	}
}

// auditPaymentDrift logs orders that have a payment on file but no recorded
// payment step completion. The checklist lagging the billing system is
// usually harmless; persistent lag points at a dropped completion.
func (j *WorkflowAuditJob) auditPaymentDrift(ctx context.Context) {
	payments, err := j.payments.ListRecent(ctx, recentPaymentsAuditWindow)
	if err != nil {
		j.logger.ErrorContext(ctx, "Payment drift audit failed", "error", err)
		return
	}

	seen := make(map[string]struct{}, len(payments))
	for _, p := range payments {
		orderKey := p.OrderID().String()
		if _, ok := seen[orderKey]; ok {
			continue
		}
		seen[orderKey] = struct{}{}

		_, err = j.progress.GetByOrderAndStep(ctx, p.OrderID(), workflow.StepCustomerPayment)
		if err == nil {
			continue
		}
		if !errors.Is(err, errs.ErrObjectNotFound) {
			j.logger.ErrorContext(ctx, "Payment drift audit failed", "order_id", orderKey, "error", err)
			continue
		}

		j.logger.WarnContext(ctx, "Payment on file without a payment step completion",
			"order_id", orderKey,
			"payment_status", p.StatusName(),
			"step_code", workflow.StepCustomerPayment,
		)
	}
}
