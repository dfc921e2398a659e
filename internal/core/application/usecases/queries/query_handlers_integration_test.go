package queries_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/paymentrepo"
	"fulfillment/internal/adapters/out/postgres/progressrepo"
	"fulfillment/internal/adapters/out/postgres/statusrepo"
	"fulfillment/internal/adapters/out/postgres/steprepo"
	"fulfillment/internal/adapters/out/postgres/userrepo"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/workflow"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type QueryHandlersTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	resolver  services.StateResolver
}

func (suite *QueryHandlersTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&userrepo.UserDTO{},
		&statusrepo.StatusDTO{},
		&orderrepo.OrderDTO{},
		&paymentrepo.PaymentDTO{},
		&steprepo.StepDefinitionDTO{},
		&progressrepo.ProgressRecordDTO{},
	)
	suite.Require().NoError(err)

	suite.Require().NoError(steprepo.Seed(ctx, db))
	suite.resolver = services.NewStateResolver()
}

func (suite *QueryHandlersTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *QueryHandlersTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE progress_records, payments, orders, users, statuses").Error
	suite.Require().NoError(err)
}

func (suite *QueryHandlersTestSuite) createUser(username string, role workflow.Role) kernel.UUID {
	id := kernel.NewUUID()
	err := suite.db.Create(&userrepo.UserDTO{
		ID:          id.Bytes(),
		Username:    username,
		DisplayName: username,
		Phone:       "+10000000000",
		Role:        role.String(),
	}).Error
	suite.Require().NoError(err)
	return id
}

func (suite *QueryHandlersTestSuite) createStatus(category, name string) kernel.UUID {
	id := kernel.NewUUID()
	err := suite.db.Create(&statusrepo.StatusDTO{
		ID:       id.Bytes(),
		Category: category,
		Name:     name,
	}).Error
	suite.Require().NoError(err)
	return id
}

func (suite *QueryHandlersTestSuite) createOrder(customerID, statusID kernel.UUID, createdAt time.Time) kernel.UUID {
	id := kernel.NewUUID()
	err := suite.db.Create(&orderrepo.OrderDTO{
		ID:         id.Bytes(),
		CustomerID: customerID.Bytes(),
		StatusID:   statusID.Bytes(),
		CreatedAt:  createdAt,
	}).Error
	suite.Require().NoError(err)
	return id
}

func (suite *QueryHandlersTestSuite) createPayment(orderID, statusID kernel.UUID, createdAt time.Time) {
	err := suite.db.Create(&paymentrepo.PaymentDTO{
		ID:        kernel.NewUUID().Bytes(),
		OrderID:   orderID.Bytes(),
		StatusID:  statusID.Bytes(),
		CreatedAt: createdAt,
	}).Error
	suite.Require().NoError(err)
}

func (suite *QueryHandlersTestSuite) completeStep(orderID kernel.UUID, stepCode string, userID kernel.UUID, details string, at time.Time) {
	err := suite.db.Create(&progressrepo.ProgressRecordDTO{
		ID:          kernel.NewUUID().Bytes(),
		OrderID:     orderID.Bytes(),
		StepCode:    stepCode,
		UserID:      userID.Bytes(),
		Completed:   true,
		CompletedAt: at,
		Details:     details,
	}).Error
	suite.Require().NoError(err)
}

func (suite *QueryHandlersTestSuite) TestStepsForRole_ReturnsCatalogInSortOrder() {
	handler := queries.NewStepsForRoleQueryHandler(suite.db)

	steps, err := handler.Handle(context.Background(), queries.NewStepsForRoleQuery("driver"))

	suite.Require().NoError(err)
	suite.Require().Len(steps, 3)
	suite.Equal(workflow.StepDriverReceiveOrder, steps[0].Code)
	suite.Equal(workflow.StepDriverUpdateLocation, steps[1].Code)
	suite.Equal(workflow.StepDriverDelivered, steps[2].Code)
	suite.Equal("Driver", steps[0].Role)
}

func (suite *QueryHandlersTestSuite) TestStepsForRole_UnknownRole_ReturnsEmpty() {
	handler := queries.NewStepsForRoleQueryHandler(suite.db)

	steps, err := handler.Handle(context.Background(), queries.NewStepsForRoleQuery("manager"))

	suite.Require().NoError(err)
	suite.Empty(steps)
}

func (suite *QueryHandlersTestSuite) TestUserProgress_MilestoneLabelsComeFromDomainState() {
	customerID := suite.createUser("alice", workflow.RoleCustomer)
	pendingID := suite.createStatus("ORDER", "Pending")
	paidID := suite.createStatus("PAYMENT", "Paid")
	orderID := suite.createOrder(customerID, pendingID, time.Now())
	suite.createPayment(orderID, paidID, time.Now())

	handler := queries.NewProgressForUserQueryHandler(suite.db, suite.resolver)
	query, err := queries.NewProgressForUserQuery(customerID)
	suite.Require().NoError(err)

	view, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal("Customer", view.Role)
	suite.Equal(2, view.TotalSteps)
	suite.Equal(0, view.CompletedSteps)
	suite.InDelta(0.0, view.Percentage, 0.001)

	suite.Require().Len(view.Steps, 2)
	suite.Equal(workflow.StepCustomerCreateOrder, view.Steps[0].Code)
	suite.Equal("Pending", view.Steps[0].StatusLabel)
	suite.False(view.Steps[0].Completed)
	suite.Equal(workflow.StepCustomerPayment, view.Steps[1].Code)
	suite.Equal("Paid", view.Steps[1].StatusLabel)
}

func (suite *QueryHandlersTestSuite) TestUserProgress_MisconfiguredCategory_FallsBackToNotReached() {
	customerID := suite.createUser("bob", workflow.RoleCustomer)
	bogusID := suite.createStatus("BOGUS", "Pending")
	suite.createOrder(customerID, bogusID, time.Now())

	handler := queries.NewProgressForUserQueryHandler(suite.db, suite.resolver)
	query, err := queries.NewProgressForUserQuery(customerID)
	suite.Require().NoError(err)

	view, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(view.Steps, 2)
	suite.Equal(services.NotYetReachedLabel, view.Steps[0].StatusLabel)
	suite.Equal(services.NotYetReachedLabel, view.Steps[1].StatusLabel)
}

func (suite *QueryHandlersTestSuite) TestUserProgress_CompletedStepCountsTowardPercentage() {
	driverID := suite.createUser("carol", workflow.RoleDriver)
	pendingID := suite.createStatus("ORDER", "Pending")
	orderID := suite.createOrder(kernel.NewUUID(), pendingID, time.Now())
	suite.completeStep(orderID, workflow.StepDriverReceiveOrder, driverID, "picked up at dock 4", time.Now())

	handler := queries.NewProgressForUserQueryHandler(suite.db, suite.resolver)
	query, err := queries.NewProgressForUserQuery(driverID)
	suite.Require().NoError(err)

	view, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(3, view.TotalSteps)
	suite.Equal(1, view.CompletedSteps)
	suite.InDelta(100.0/3.0, view.Percentage, 0.001)

	suite.Require().Len(view.Steps, 3)
	suite.True(view.Steps[0].Completed)
	suite.Equal(queries.CompletedLabel, view.Steps[0].StatusLabel)
	suite.Equal("picked up at dock 4", view.Steps[0].CompletionDetail)
	suite.False(view.Steps[1].Completed)
	suite.Equal(services.NotYetReachedLabel, view.Steps[1].StatusLabel)
}

func (suite *QueryHandlersTestSuite) TestOrderScopedProgress_IgnoresOtherOrders() {
	driverID := suite.createUser("dave", workflow.RoleDriver)
	pendingID := suite.createStatus("ORDER", "Pending")
	orderA := suite.createOrder(kernel.NewUUID(), pendingID, time.Now())
	orderB := suite.createOrder(kernel.NewUUID(), pendingID, time.Now())
	suite.completeStep(orderA, workflow.StepDriverReceiveOrder, driverID, "", time.Now())

	handler := queries.NewProgressForOrderQueryHandler(suite.db, suite.resolver)
	query, err := queries.NewProgressForOrderQuery(orderB, driverID)
	suite.Require().NoError(err)

	view, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(0, view.CompletedSteps)
	for _, step := range view.Steps {
		suite.False(step.Completed)
	}
}

func (suite *QueryHandlersTestSuite) TestUserProgress_UnknownUser_ReturnsNotFound() {
	handler := queries.NewProgressForUserQueryHandler(suite.db, suite.resolver)
	query, err := queries.NewProgressForUserQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = handler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersTestSuite) TestUserProgress_EmptyCatalog_YieldsZeroPercentage() {
	err := suite.db.Exec("DELETE FROM step_definitions WHERE role = ?", workflow.RoleDispatcher.String()).Error
	suite.Require().NoError(err)
	defer func() {
		suite.Require().NoError(steprepo.Seed(context.Background(), suite.db))
	}()

	dispatcherID := suite.createUser("mara", workflow.RoleDispatcher)

	handler := queries.NewProgressForUserQueryHandler(suite.db, suite.resolver)
	query, err := queries.NewProgressForUserQuery(dispatcherID)
	suite.Require().NoError(err)

	view, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(0, view.TotalSteps)
	suite.Equal(0, view.CompletedSteps)
	suite.InDelta(0.0, view.Percentage, 0.001)
	suite.Empty(view.Steps)
}

func (suite *QueryHandlersTestSuite) TestTimeline_SortsByCatalogWithUncatalogedLast() {
	dispatcherID := suite.createUser("erin", workflow.RoleDispatcher)
	driverID := suite.createUser("frank", workflow.RoleDriver)
	pendingID := suite.createStatus("ORDER", "Pending")
	orderID := suite.createOrder(kernel.NewUUID(), pendingID, time.Now())

	base := time.Now().Add(-time.Hour)
	suite.completeStep(orderID, "LEGACY_HANDOFF", driverID, "", base)
	suite.completeStep(orderID, workflow.StepDriverReceiveOrder, driverID, "", base.Add(2*time.Minute))
	suite.completeStep(orderID, workflow.StepDispatcherAcceptOrder, dispatcherID, "", base.Add(time.Minute))

	handler := queries.NewTimelineForOrderQueryHandler(suite.db)
	query, err := queries.NewTimelineForOrderQuery(orderID)
	suite.Require().NoError(err)

	entries, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(entries, 3)

	// Cataloged entries first, in sort order; the unknown code trails.
	suite.Equal(workflow.StepDispatcherAcceptOrder, entries[0].StepCode)
	suite.True(entries[0].InCatalog)
	suite.Equal("Accept Order", entries[0].StepName)
	suite.Equal("erin", entries[0].Actor.DisplayName)
	suite.Equal("Dispatcher", entries[0].Actor.Role)

	suite.Equal(workflow.StepDriverReceiveOrder, entries[1].StepCode)
	suite.Equal("LEGACY_HANDOFF", entries[2].StepCode)
	suite.False(entries[2].InCatalog)
	suite.Empty(entries[2].StepName)
}

func (suite *QueryHandlersTestSuite) TestIncompleteUsers_FiltersOutFullyCompleted() {
	pendingID := suite.createStatus("ORDER", "Pending")
	doneID := suite.createUser("gina", workflow.RoleDriver)
	slowID := suite.createUser("hank", workflow.RoleDriver)
	orderID := suite.createOrder(kernel.NewUUID(), pendingID, time.Now())

	for _, code := range []string{workflow.StepDriverReceiveOrder, workflow.StepDriverUpdateLocation, workflow.StepDriverDelivered} {
		suite.completeStep(orderID, code, doneID, "", time.Now())
	}

	handler := queries.NewIncompleteUsersQueryHandler(suite.db, suite.resolver)

	incomplete, err := handler.Handle(context.Background(), queries.NewIncompleteUsersQuery("Driver"))

	suite.Require().NoError(err)
	suite.Require().Len(incomplete, 1)
	suite.True(incomplete[0].UserID.IsEqual(slowID))
	suite.InDelta(0.0, incomplete[0].Percentage, 0.001)
}

func (suite *QueryHandlersTestSuite) TestIncompleteUsers_UnknownRole_ReturnsEmpty() {
	handler := queries.NewIncompleteUsersQueryHandler(suite.db, suite.resolver)

	incomplete, err := handler.Handle(context.Background(), queries.NewIncompleteUsersQuery("auditor"))

	suite.Require().NoError(err)
	suite.Empty(incomplete)
}

func (suite *QueryHandlersTestSuite) TestRoleStats_AveragesOverRoster() {
	pendingID := suite.createStatus("ORDER", "Pending")
	doneID := suite.createUser("ivan", workflow.RoleDriver)
	suite.createUser("judy", workflow.RoleDriver)
	orderID := suite.createOrder(kernel.NewUUID(), pendingID, time.Now())

	for _, code := range []string{workflow.StepDriverReceiveOrder, workflow.StepDriverUpdateLocation, workflow.StepDriverDelivered} {
		suite.completeStep(orderID, code, doneID, "", time.Now())
	}

	handler := queries.NewRoleStatsQueryHandler(suite.db, suite.resolver)

	stats, err := handler.Handle(context.Background(), queries.NewRoleStatsQuery("driver"))

	suite.Require().NoError(err)
	suite.Equal("Driver", stats.Role)
	suite.Equal(2, stats.TotalUsers)
	suite.Equal(1, stats.CompletedUsers)
	suite.InDelta(50.0, stats.AverageProgress, 0.001)
	suite.InDelta(50.0, stats.CompletionRate, 0.001)
}

func (suite *QueryHandlersTestSuite) TestRoleStats_UnknownRole_ReturnsZeroes() {
	handler := queries.NewRoleStatsQueryHandler(suite.db, suite.resolver)

	stats, err := handler.Handle(context.Background(), queries.NewRoleStatsQuery("auditor"))

	suite.Require().NoError(err)
	suite.Equal(0, stats.TotalUsers)
	suite.Equal(0, stats.CompletedUsers)
	suite.InDelta(0.0, stats.AverageProgress, 0.001)
}

func (suite *QueryHandlersTestSuite) TestWorkflowDrift_DetectsBothDirections() {
	driverID := suite.createUser("kate", workflow.RoleDriver)
	deliveredID := suite.createStatus("ORDER", "Delivered")
	pendingID := suite.createStatus("ORDER", "Pending")

	// Delivered order without the terminal step record.
	silentOrder := suite.createOrder(kernel.NewUUID(), deliveredID, time.Now().Add(-time.Minute))

	// Terminal step record on an order that never reached Delivered.
	laggingOrder := suite.createOrder(kernel.NewUUID(), pendingID, time.Now())
	suite.completeStep(laggingOrder, workflow.StepDriverDelivered, driverID, "", time.Now())

	handler := queries.NewWorkflowDriftQueryHandler(suite.db)

	drifts, err := handler.Handle(context.Background(), queries.NewWorkflowDriftQuery())

	suite.Require().NoError(err)
	suite.Require().Len(drifts, 2)

	suite.True(drifts[0].OrderID.IsEqual(silentOrder))
	suite.Equal(queries.DriftMissingCompletion, drifts[0].Kind)
	suite.Equal("Delivered", drifts[0].StatusName)

	suite.True(drifts[1].OrderID.IsEqual(laggingOrder))
	suite.Equal(queries.DriftMissingStatus, drifts[1].Kind)
	suite.Equal("Pending", drifts[1].StatusName)
}

func (suite *QueryHandlersTestSuite) TestWorkflowDrift_CleanDataYieldsNothing() {
	driverID := suite.createUser("liam", workflow.RoleDriver)
	deliveredID := suite.createStatus("ORDER", "Delivered")
	orderID := suite.createOrder(kernel.NewUUID(), deliveredID, time.Now())
	suite.completeStep(orderID, workflow.StepDriverDelivered, driverID, "", time.Now())

	handler := queries.NewWorkflowDriftQueryHandler(suite.db)

	drifts, err := handler.Handle(context.Background(), queries.NewWorkflowDriftQuery())

	suite.Require().NoError(err)
	suite.Empty(drifts)
}

func TestQueryHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersTestSuite))
}
