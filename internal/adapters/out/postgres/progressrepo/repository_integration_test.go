package progressrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/progressrepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/workflow"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (t *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type GormProgressRepositoryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *progressrepo.GormProgressRepository
}

func (suite *GormProgressRepositoryTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
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

	err = db.AutoMigrate(&progressrepo.ProgressRecordDTO{})
	suite.Require().NoError(err)

	suite.repo = progressrepo.NewGormProgressRepository(db, &mockAggregateTracker{})
}

func (suite *GormProgressRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GormProgressRepositoryTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE progress_records").Error
	suite.Require().NoError(err)
}

func (suite *GormProgressRepositoryTestSuite) TestUpsert_NewRecord_RoundTrips() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	userID := kernel.NewUUID()
	at := time.Now().UTC()

	record, err := workflow.NewProgressRecord(orderID, workflow.StepDriverReceiveOrder, userID, "picked up", at)
	suite.Require().NoError(err)

	err = suite.repo.Upsert(ctx, record)
	suite.Require().NoError(err)

	loaded, err := suite.repo.GetByOrderAndStep(ctx, orderID, workflow.StepDriverReceiveOrder)
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(record.ID()))
	suite.True(loaded.UserID().IsEqual(userID))
	suite.True(loaded.Completed())
	suite.Equal("picked up", loaded.Details())
	suite.WithinDuration(at, loaded.CompletedAt(), time.Millisecond)
}

func (suite *GormProgressRepositoryTestSuite) TestUpsert_Conflict_OverwritesExistingRow() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	firstActor := kernel.NewUUID()
	secondActor := kernel.NewUUID()

	first, err := workflow.NewProgressRecord(orderID, workflow.StepDriverDelivered, firstActor, "left at door", time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Upsert(ctx, first))

	// A second completion arrives as a brand-new aggregate with its own ID.
	second, err := workflow.NewProgressRecord(orderID, workflow.StepDriverDelivered, secondActor, "handed over", time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Upsert(ctx, second))

	loaded, err := suite.repo.GetByOrderAndStep(ctx, orderID, workflow.StepDriverDelivered)
	suite.Require().NoError(err)

	// The stored row keeps its original identity; only the completion
	// columns follow the last writer.
	suite.True(loaded.ID().IsEqual(first.ID()))
	suite.True(loaded.UserID().IsEqual(secondActor))
	suite.Equal("handed over", loaded.Details())

	var count int64
	err = suite.db.Model(&progressrepo.ProgressRecordDTO{}).
		Where("order_id = ? AND step_code = ?", orderID.Bytes(), workflow.StepDriverDelivered).
		Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(1), count)
}

func (suite *GormProgressRepositoryTestSuite) TestUpsert_ConcurrentWriters_ConvergeToOneRow() {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	const writers = 10
	var wg sync.WaitGroup
	errCh := make(chan error, writers)

	for range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			record, err := workflow.NewProgressRecord(
				orderID, workflow.StepDriverUpdateLocation, kernel.NewUUID(), "at checkpoint", time.Now())
			if err != nil {
				errCh <- err
				return
			}
			errCh <- suite.repo.Upsert(ctx, record)
		}()
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		suite.Require().NoError(err)
	}

	var count int64
	err := suite.db.Model(&progressrepo.ProgressRecordDTO{}).
		Where("order_id = ? AND step_code = ?", orderID.Bytes(), workflow.StepDriverUpdateLocation).
		Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(1), count)
}

func (suite *GormProgressRepositoryTestSuite) TestGetByOrderAndStep_Missing_ReturnsNotFound() {
	_, err := suite.repo.GetByOrderAndStep(context.Background(), kernel.NewUUID(), workflow.StepDriverDelivered)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GormProgressRepositoryTestSuite) TestListByOrder_ReturnsOldestFirst() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	userID := kernel.NewUUID()
	base := time.Now().Add(-time.Hour)

	stepCodes := []string{
		workflow.StepDriverReceiveOrder,
		workflow.StepDriverUpdateLocation,
		workflow.StepDriverDelivered,
	}
	// Insert out of completion order.
	for _, i := range []int{2, 0, 1} {
		record, err := workflow.NewProgressRecord(
			orderID, stepCodes[i], userID, "", base.Add(time.Duration(i)*time.Minute))
		suite.Require().NoError(err)
		suite.Require().NoError(suite.repo.Upsert(ctx, record))
	}

	records, err := suite.repo.ListByOrder(ctx, orderID)
	suite.Require().NoError(err)
	suite.Require().Len(records, 3)
	for i, record := range records {
		suite.Equal(stepCodes[i], record.StepCode())
	}
}

func (suite *GormProgressRepositoryTestSuite) TestListByUser_FiltersByActor() {
	ctx := context.Background()
	actor := kernel.NewUUID()
	other := kernel.NewUUID()

	mine, err := workflow.NewProgressRecord(kernel.NewUUID(), workflow.StepDriverDelivered, actor, "", time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Upsert(ctx, mine))

	theirs, err := workflow.NewProgressRecord(kernel.NewUUID(), workflow.StepDriverDelivered, other, "", time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Upsert(ctx, theirs))

	records, err := suite.repo.ListByUser(ctx, actor)
	suite.Require().NoError(err)
	suite.Require().Len(records, 1)
	suite.True(records[0].ID().IsEqual(mine.ID()))
}

func TestGormProgressRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(GormProgressRepositoryTestSuite))
}
