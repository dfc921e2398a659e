package queries

import (
	"context"

	"fulfillment/internal/core/domain/services"

	"gorm.io/gorm"
)

// ProgressForOrderQueryHandler is the order-scoped variant of the user
// progress query: completions on other orders are ignored.
type ProgressForOrderQueryHandler struct {
	assembler progressAssembler
}

// NewProgressForOrderQueryHandler creates a handler for order-scoped
// progress queries.
func NewProgressForOrderQueryHandler(db *gorm.DB, resolver services.StateResolver) ProgressForOrderQueryHandler {
	return ProgressForOrderQueryHandler{assembler: newProgressAssembler(db, resolver)}
}

// Handle executes the query and returns the checklist for one user on one
// order. Returns errs.ErrObjectNotFound when the user does not exist.
func (h ProgressForOrderQueryHandler) Handle(
	ctx context.Context,
	query ProgressForOrderQuery,
) (ProgressView, error) {
	if err := query.Validate(); err != nil {
		return ProgressView{}, err
	}

	orderID := query.OrderID()
	return h.assembler.forUser(ctx, query.UserID(), &orderID)
}
