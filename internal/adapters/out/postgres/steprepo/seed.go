package steprepo

import (
	"context"

	"fulfillment/internal/core/domain/model/workflow"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultSteps returns the stock three-role checklist. Deployments may
// replace or extend it; the engine only ever reads what is in the table.
func DefaultSteps() []StepDefinitionDTO {
	return []StepDefinitionDTO{
		{Code: workflow.StepCustomerCreateOrder, Role: workflow.RoleCustomer.String(), Name: "Create Order", Description: "Place a new delivery order", SortOrder: 1},
		{Code: workflow.StepCustomerPayment, Role: workflow.RoleCustomer.String(), Name: "Payment", Description: "Pay for the order", SortOrder: 2},
		{Code: workflow.StepDispatcherAcceptOrder, Role: workflow.RoleDispatcher.String(), Name: "Accept Order", Description: "Confirm the order for processing", SortOrder: 1},
		{Code: workflow.StepDispatcherAssignDriver, Role: workflow.RoleDispatcher.String(), Name: "Assign Driver", Description: "Pick a driver for the delivery", SortOrder: 2},
		{Code: workflow.StepDriverReceiveOrder, Role: workflow.RoleDriver.String(), Name: "Receive Order", Description: "Pick the order up from the warehouse", SortOrder: 1},
		{Code: workflow.StepDriverUpdateLocation, Role: workflow.RoleDriver.String(), Name: "Update Location", Description: "Report position while en route", SortOrder: 2},
		{Code: workflow.StepDriverDelivered, Role: workflow.RoleDriver.String(), Name: "Delivered", Description: "Hand the order to the customer", SortOrder: 3},
	}
}

// Seed inserts the default step catalog, leaving already-present codes
// untouched. Idempotent; used by local bootstrap and integration tests,
// never by the request path.
func Seed(ctx context.Context, db *gorm.DB) error {
	steps := DefaultSteps()
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&steps).Error
}
