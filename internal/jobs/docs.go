// Package jobs provides scheduled background tasks for the fulfillment
// workflow engine, built on github.com/robfig/cron/v3.
//
// # Available Jobs
//
// WorkflowAuditJob runs every minute and reconciles the order lifecycle
// against the progress store: delivered orders without a recorded delivery
// step, delivery completions on undelivered orders, and payments on file
// without a payment step completion. The job only reads and logs; the
// request path stays synchronous and the log lines feed postmortem
// reconciliation.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(driftHandler, paymentRepo, progressRepo, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
