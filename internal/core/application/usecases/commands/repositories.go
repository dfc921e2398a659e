// Package commands contains the write operations of the workflow engine.
// Implements the Command pattern for the CQRS write side. All commands follow
// the same shape: constructor validation, transaction management through a
// unit of work, and persistence.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure a progress write and its paired order status
// change commit both-or-neither.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ProgressRepoFactory provides access to the progress store within a transaction.
	ProgressRepoFactory interface {
		ProgressRepository() ports.ProgressRepository
	}

	// OrderRepoFactory provides access to the order store within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// UserRepoFactory provides access to the account store within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// StepCatalogFactory provides access to the step reference data within a transaction.
	StepCatalogFactory interface {
		StepCatalog() ports.StepCatalog
	}

	// StatusCatalogFactory provides access to the status reference data within a transaction.
	StatusCatalogFactory interface {
		StatusCatalog() ports.StatusCatalog
	}

	// ProgressUoW manages transactions for plain step completions: the
	// progress write plus the reference lookups that guard it.
	ProgressUoW interface {
		TxManager
		ProgressRepoFactory
		OrderRepoFactory
		UserRepoFactory
		StepCatalogFactory
	}

	// ProgressUoWFactory creates unit of work instances for step completions.
	ProgressUoWFactory interface {
		Create() ProgressUoW
	}

	// TransitionUoW manages transactions for workflow transitions, which pair
	// a completion record with an order status change.
	TransitionUoW interface {
		TxManager
		ProgressRepoFactory
		OrderRepoFactory
		UserRepoFactory
		StepCatalogFactory
		StatusCatalogFactory
	}

	// TransitionUoWFactory creates unit of work instances for workflow transitions.
	TransitionUoWFactory interface {
		Create() TransitionUoW
	}
)
