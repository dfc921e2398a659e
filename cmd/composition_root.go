package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/paymentrepo"
	"fulfillment/internal/adapters/out/postgres/progressrepo"
	"fulfillment/internal/adapters/out/postgres/statusrepo"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/jobs"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB      *gorm.DB
	uowFactory  postgres.GormUnitOfWorkFactory
	resolver    services.StateResolver
	transitions services.TransitionTable
	logger      *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:      gormDB,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		resolver:    services.NewStateResolver(),
		transitions: services.NewTransitionTable(),
		logger:      logger,
	}
}

func (c *CompositionRoot) CreateApplyWorkflowTransitionCommandHandler() commands.ApplyWorkflowTransitionCommandHandler {
	var f commands.TransitionUoWFactory = FuncTransitionUoWFactory(func() commands.TransitionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApplyWorkflowTransitionCommandHandler(f, c.transitions, c.logger)
}

func (c *CompositionRoot) CreateStepsForRoleQueryHandler() queries.StepsForRoleQueryHandler {
	return queries.NewStepsForRoleQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateProgressForUserQueryHandler() queries.ProgressForUserQueryHandler {
	return queries.NewProgressForUserQueryHandler(c.gormDB, c.resolver)
}

func (c *CompositionRoot) CreateProgressForOrderQueryHandler() queries.ProgressForOrderQueryHandler {
	return queries.NewProgressForOrderQueryHandler(c.gormDB, c.resolver)
}

func (c *CompositionRoot) CreateTimelineForOrderQueryHandler() queries.TimelineForOrderQueryHandler {
	return queries.NewTimelineForOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateIncompleteUsersQueryHandler() queries.IncompleteUsersQueryHandler {
	return queries.NewIncompleteUsersQueryHandler(c.gormDB, c.resolver)
}

func (c *CompositionRoot) CreateRoleStatsQueryHandler() queries.RoleStatsQueryHandler {
	return queries.NewRoleStatsQueryHandler(c.gormDB, c.resolver)
}

func (c *CompositionRoot) CreateWorkflowDriftQueryHandler() queries.WorkflowDriftQueryHandler {
	return queries.NewWorkflowDriftQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateWorkflowDriftQueryHandler(),
		paymentrepo.NewGormPaymentRepository(c.gormDB),
		progressrepo.NewGormProgressRepository(c.gormDB, noopTracker{}),
		c.logger,
	)
}

// ValidateStatusCatalog checks that every status a workflow transition can
// target exists in the configured catalog. Run at startup under
// STRICT_STATUS_CATALOG: a missing row then fails the boot instead of
// surfacing later as a completion whose status update was skipped.
func (c *CompositionRoot) ValidateStatusCatalog(ctx context.Context) error {
	catalog := statusrepo.NewGormStatusCatalog(c.gormDB)

	var missing []string
	for stepCode, target := range c.transitions.Targets() {
		_, err := catalog.GetByCategoryAndName(ctx, target.Category, target.StatusName)
		if err == nil {
			continue
		}
		if errors.Is(err, errs.ErrObjectNotFound) {
			missing = append(missing, fmt.Sprintf("%s -> %s/%s", stepCode, target.Category.String(), target.StatusName))
			continue
		}
		return err
	}

	if len(missing) > 0 {
		return fmt.Errorf("status catalog is missing transition targets: %v", missing)
	}
	return nil
}

type FuncTransitionUoWFactory func() commands.TransitionUoW

func (f FuncTransitionUoWFactory) Create() commands.TransitionUoW {
	return f()
}

// noopTracker satisfies the repositories' tracker dependency outside a unit
// of work, where read-mostly callers have no commit hook to feed.
type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}
