package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrTimelineForOrderQueryIsNotConstructed = errors.New(
		"TimelineForOrderQuery must be created via NewTimelineForOrderQuery constructor",
	)
)

// TimelineForOrderQuery retrieves every completion recorded against one
// order, joined with the step catalog and the acting user. It is the
// cross-role audit view of an order's history.
//
// Example:
//
//	query, err := NewTimelineForOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	handler := NewTimelineForOrderQueryHandler(db)
//
//	entries, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get timeline: %w", err)
//	}
//
//	for _, entry := range entries {
//	    fmt.Printf("%s by %s at %s\n", entry.StepName, entry.Actor.DisplayName, entry.CompletedAt)
//	}
type TimelineForOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewTimelineForOrderQuery creates a query for one order's completion history.
func NewTimelineForOrderQuery(orderID kernel.UUID) (TimelineForOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return TimelineForOrderQuery{}, err
	}

	return TimelineForOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the order whose timeline is requested.
func (q TimelineForOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Validate ensures the query was created through the constructor.
// Returns ErrTimelineForOrderQueryIsNotConstructed if validation fails.
func (q TimelineForOrderQuery) Validate() error {
	return q.guard.Validate(ErrTimelineForOrderQueryIsNotConstructed)
}

// TimelineActor describes the user who recorded a completion. The zero
// value stands in for actors whose account no longer exists.
type TimelineActor struct {
	ID          kernel.UUID
	DisplayName string
	Role        string
	Phone       string
}

// TimelineForOrderQueryResponse is one completion entry. Entries whose step
// code no longer appears in the catalog keep their recorded data but carry
// no catalog fields and sort after all cataloged entries.
type TimelineForOrderQueryResponse struct {
	StepCode    string
	StepName    string
	Description string
	SortOrder   int
	InCatalog   bool
	Completed   bool
	CompletedAt time.Time
	Details     string
	Actor       TimelineActor
}
