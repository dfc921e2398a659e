package queries

import (
	"context"

	"fulfillment/internal/core/domain/services"

	"gorm.io/gorm"
)

// ProgressForUserQueryHandler assembles a user's checklist from the step
// catalog and the progress store, falling back to the state resolver for
// steps that carry no completion record.
type ProgressForUserQueryHandler struct {
	assembler progressAssembler
}

// NewProgressForUserQueryHandler creates a handler for user progress queries.
func NewProgressForUserQueryHandler(db *gorm.DB, resolver services.StateResolver) ProgressForUserQueryHandler {
	return ProgressForUserQueryHandler{assembler: newProgressAssembler(db, resolver)}
}

// Handle executes the query and returns the user's full checklist.
// Returns errs.ErrObjectNotFound when the user does not exist.
func (h ProgressForUserQueryHandler) Handle(
	ctx context.Context,
	query ProgressForUserQuery,
) (ProgressView, error) {
	if err := query.Validate(); err != nil {
		return ProgressView{}, err
	}

	return h.assembler.forUser(ctx, query.UserID(), nil)
}
