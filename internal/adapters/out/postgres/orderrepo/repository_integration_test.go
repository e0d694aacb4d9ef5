package orderrepo_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	postgresadapter "ordertrack/internal/adapters/out/postgres"
	"ordertrack/internal/adapters/out/postgres/orderrepo"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/pkg/errs"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderRepositoryIntegrationTestSuite verifies persistence behavior against a
// real PostgreSQL instance, including the embedded goose migrations.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	// Apply the embedded goose migrations over a plain connection first.
	migrationDB, err := sql.Open("postgres", connStr)
	suite.Require().NoError(err)
	suite.Require().NoError(postgresadapter.RunMigrations(migrationDB))
	suite.Require().NoError(migrationDB.Close())

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(customerName string) *order.Order {
	o, err := order.NewOrder(kernel.NewOrderID(), customerName, 99.50, time.Now().UTC().Truncate(time.Microsecond))
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("Alice Corp")

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	var count int64
	suite.Require().NoError(suite.db.Table("orders").Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateID_StorageConflict() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("Alice Corp")
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().ErrorIs(err, errs.ErrStorageConflict)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_UnconstructedOrder_Rejected() {
	err := suite.repository.Add(context.Background(), &order.Order{})
	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAll_EmptyTable() {
	orders, err := suite.repository.GetAll(context.Background())

	suite.Require().NoError(err)
	suite.Empty(orders)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAll_PreservesInsertionOrder() {
	ctx := context.Background()

	names := []string{"Alice Corp", "Bob Inc", "Charlie LLC"}
	for _, name := range names {
		suite.Require().NoError(suite.repository.Add(ctx, suite.createTestOrder(name)))
	}

	orders, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(orders, len(names))
	for i, name := range names {
		suite.Equal(name, orders[i].CustomerName())
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAll_RoundTripsAllFields() {
	ctx := context.Background()

	stored := suite.createTestOrder("Alice Corp")
	suite.Require().NoError(suite.repository.Add(ctx, stored))

	orders, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)

	restored := orders[0]
	suite.True(stored.ID().IsEqual(restored.ID()))
	suite.Equal(stored.CustomerName(), restored.CustomerName())
	suite.InDelta(stored.OrderAmount(), restored.OrderAmount(), 0.001)
	suite.True(stored.OrderDate().Equal(restored.OrderDate()))
	suite.Equal(order.Pending, restored.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAll_RestoresStoredStatus() {
	ctx := context.Background()

	restored, err := order.RestoreOrder(
		kernel.NewOrderID(), "Alice Corp", 10, time.Now().UTC(), order.Cancelled,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, restored))

	orders, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.Equal(order.Cancelled, orders[0].Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUnitOfWork_CommitPersists() {
	ctx := context.Background()
	factory := postgresadapter.NewGormUnitOfWorkFactory(suite.db)

	uow := factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, suite.createTestOrder("Alice Corp")))
	suite.Require().NoError(uow.Commit(ctx))
	suite.Require().NoError(uow.Rollback(ctx)) // no-op after commit

	orders, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Len(orders, 1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUnitOfWork_RollbackDiscards() {
	ctx := context.Background()
	factory := postgresadapter.NewGormUnitOfWorkFactory(suite.db)

	uow := factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, suite.createTestOrder("Alice Corp")))
	suite.Require().NoError(uow.Rollback(ctx))

	orders, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Empty(orders)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
