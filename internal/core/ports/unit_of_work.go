package ports

import "context"

// UnitOfWork coordinates a database transaction across the repositories a
// workflow operation touches. Pairing a progress upsert with an order status
// change must commit both-or-neither; a crash between the two writes must not
// leave one committed without the other.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	ProgressRepository() ProgressRepository
	OrderRepository() OrderRepository
	UserRepository() UserRepository
	StepCatalog() StepCatalog
	StatusCatalog() StatusCatalog
}
