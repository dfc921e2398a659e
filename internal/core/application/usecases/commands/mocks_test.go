package commands_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/user"
	"fulfillment/internal/core/domain/model/workflow"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type MockProgressRepository struct{ mock.Mock }

func (m *MockProgressRepository) Upsert(ctx context.Context, record *workflow.ProgressRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockProgressRepository) GetByOrderAndStep(ctx context.Context, orderID kernel.UUID, stepCode string) (*workflow.ProgressRecord, error) {
	args := m.Called(ctx, orderID, stepCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workflow.ProgressRecord), args.Error(1)
}

func (m *MockProgressRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*workflow.ProgressRecord, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*workflow.ProgressRecord), args.Error(1)
}

func (m *MockProgressRepository) ListByUser(ctx context.Context, userID kernel.UUID) ([]*workflow.ProgressRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*workflow.ProgressRecord), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, aggregate *order.Order, statusID kernel.UUID) error {
	args := m.Called(ctx, aggregate, statusID)
	return args.Error(0)
}

func (m *MockOrderRepository) ListByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) ListByRole(ctx context.Context, role workflow.Role) ([]*user.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*user.User), args.Error(1)
}

type MockStepCatalog struct{ mock.Mock }

func (m *MockStepCatalog) ListByRole(ctx context.Context, role workflow.Role) ([]workflow.StepDefinition, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]workflow.StepDefinition), args.Error(1)
}

func (m *MockStepCatalog) GetByCode(ctx context.Context, code string) (workflow.StepDefinition, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(workflow.StepDefinition), args.Error(1)
}

type MockStatusCatalog struct{ mock.Mock }

func (m *MockStatusCatalog) GetByCategoryAndName(ctx context.Context, category workflow.StatusCategory, name string) (workflow.Status, error) {
	args := m.Called(ctx, category, name)
	return args.Get(0).(workflow.Status), args.Error(1)
}

func (m *MockStatusCatalog) Get(ctx context.Context, id kernel.UUID) (workflow.Status, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(workflow.Status), args.Error(1)
}

func (m *MockStatusCatalog) ListByCategory(ctx context.Context, category workflow.StatusCategory) ([]workflow.Status, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]workflow.Status), args.Error(1)
}

type MockTransitionUoW struct{ mock.Mock }

func (m *MockTransitionUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTransitionUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTransitionUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTransitionUoW) ProgressRepository() ports.ProgressRepository {
	args := m.Called()
	return args.Get(0).(ports.ProgressRepository)
}

func (m *MockTransitionUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockTransitionUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

func (m *MockTransitionUoW) StepCatalog() ports.StepCatalog {
	args := m.Called()
	return args.Get(0).(ports.StepCatalog)
}

func (m *MockTransitionUoW) StatusCatalog() ports.StatusCatalog {
	args := m.Called()
	return args.Get(0).(ports.StatusCatalog)
}

type MockProgressUoWFactory struct{ mock.Mock }

func (m *MockProgressUoWFactory) Create() commands.ProgressUoW {
	args := m.Called()
	return args.Get(0).(commands.ProgressUoW)
}

type MockTransitionUoWFactory struct{ mock.Mock }

func (m *MockTransitionUoWFactory) Create() commands.TransitionUoW {
	args := m.Called()
	return args.Get(0).(commands.TransitionUoW)
}

// Fixture helpers.

func testUser(role workflow.Role) *user.User {
	u, err := user.RestoreUser(kernel.NewUUID(), "driver9", "Dana Driver", "+15550100", role)
	if err != nil {
		panic(err)
	}
	return u
}

func testOrder(status order.Status) *order.Order {
	o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), status, time.Now())
	if err != nil {
		panic(err)
	}
	return o
}

func testStep(role workflow.Role, code string, sortOrder int) workflow.StepDefinition {
	step, err := workflow.NewStepDefinition(role, code, code, "", sortOrder)
	if err != nil {
		panic(err)
	}
	return step
}

func testStatus(category workflow.StatusCategory, name string) workflow.Status {
	status, err := workflow.NewStatus(kernel.NewUUID(), category, name)
	if err != nil {
		panic(err)
	}
	return status
}
