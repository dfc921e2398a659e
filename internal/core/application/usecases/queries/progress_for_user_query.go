package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrProgressForUserQueryIsNotConstructed = errors.New(
		"ProgressForUserQuery must be created via NewProgressForUserQuery constructor",
	)
)

// ProgressForUserQuery retrieves a user's checklist across all of their
// orders. Completed steps come from the progress store; steps without a
// record show the label derived by the business state resolver.
//
// Example:
//
//	query, err := NewProgressForUserQuery(userID)
//	if err != nil {
//	    return err
//	}
//	handler := NewProgressForUserQueryHandler(db, resolver)
//
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get progress: %w", err)
//	}
//
//	fmt.Printf("%s: %.0f%% (%d/%d)\n",
//	    view.Role, view.Percentage, view.CompletedSteps, view.TotalSteps)
type ProgressForUserQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewProgressForUserQuery creates a query for one user's overall progress.
// Returns an error when the user ID is invalid.
func NewProgressForUserQuery(userID kernel.UUID) (ProgressForUserQuery, error) {
	if err := userID.Validate(); err != nil {
		return ProgressForUserQuery{}, err
	}

	return ProgressForUserQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// UserID returns the identifier of the user whose progress is requested.
func (q ProgressForUserQuery) UserID() kernel.UUID {
	return q.userID
}

// Validate ensures the query was created through the constructor.
// Returns ErrProgressForUserQueryIsNotConstructed if validation fails.
func (q ProgressForUserQuery) Validate() error {
	return q.guard.Validate(ErrProgressForUserQueryIsNotConstructed)
}
