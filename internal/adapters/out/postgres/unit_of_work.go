// Package postgres provides the GORM-based Unit of Work tying the workflow
// engine's repositories to a single database transaction.
//
// The completion flow writes a progress record and, for coupled steps, an
// order status update. Both must land together or not at all, so command
// handlers run every repository touch through one unit of work:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.ProgressRepository().Upsert(ctx, record); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each instance owns at most one transaction. Rollback after a successful
// Commit is a no-op error, which makes the deferred-rollback pattern safe.
package postgres

import (
	"context"

	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/paymentrepo"
	"fulfillment/internal/adapters/out/postgres/progressrepo"
	"fulfillment/internal/adapters/out/postgres/statusrepo"
	"fulfillment/internal/adapters/out/postgres/steprepo"
	"fulfillment/internal/adapters/out/postgres/userrepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances over one GORM
// connection. Every business operation gets a fresh instance so concurrent
// requests never share transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory bound to a database connection.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with no open transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction across the workflow
// repositories and records which aggregates were touched inside it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin opens the transaction. Calling Begin again on an instance with an
// open transaction is a no-op rather than a nested transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit makes every change in the transaction permanent and closes it.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction. Returns gorm.ErrInvalidTransaction
// when none is open, so it is safe to defer unconditionally.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// conn returns the open transaction, or the bare connection outside one.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// ProgressRepository provides progress record persistence within the
// current transaction.
func (uow *GormUnitOfWork) ProgressRepository() ports.ProgressRepository {
	return progressrepo.NewGormProgressRepository(uow.conn(), uow)
}

// OrderRepository provides order reads and status updates within the
// current transaction.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// UserRepository provides account reads within the current transaction.
func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(uow.conn())
}

// PaymentRepository provides payment reads within the current transaction.
func (uow *GormUnitOfWork) PaymentRepository() ports.PaymentRepository {
	return paymentrepo.NewGormPaymentRepository(uow.conn())
}

// StepCatalog provides step definition reads within the current transaction.
func (uow *GormUnitOfWork) StepCatalog() ports.StepCatalog {
	return steprepo.NewGormStepCatalog(uow.conn())
}

// StatusCatalog provides status catalog reads within the current transaction.
func (uow *GormUnitOfWork) StatusCatalog() ports.StatusCatalog {
	return statusrepo.NewGormStatusCatalog(uow.conn())
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Repositories call it on successful writes.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
