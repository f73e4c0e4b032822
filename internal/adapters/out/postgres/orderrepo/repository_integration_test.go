package orderrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/PortzApp/portzapp-web-sub002/internal/adapters/out/postgres/orderrepo"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/kernel"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/order"
	"github.com/PortzApp/portzapp-web-sub002/internal/pkg/errs"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for
// OrderRepository using PostgreSQL containers.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderGroupDTO{},
		&orderrepo.OrderGroupServiceDTO{},
	))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE orders, order_groups, order_group_services").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_PersistsOrderWithGroupsAndLines() {
	ctx := context.Background()

	aggregate, groups := suite.placedOrder(2)
	suite.Require().NoError(suite.repository.Add(ctx, aggregate, groups))

	loaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.OrderStatusPending, loaded.Status())
	suite.Equal(aggregate.TotalPrice(), loaded.TotalPrice())
	suite.True(loaded.PlacedByOrgID().IsEqual(aggregate.PlacedByOrgID()))

	loadedGroups, err := suite.repository.GetGroupsForOrder(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Require().Len(loadedGroups, 2)

	for _, g := range loadedGroups {
		suite.Equal(order.StatusPending, g.Status())
		suite.Require().Len(g.Services(), 1)
		suite.Equal(int64(50000), g.Services()[0].PriceSnapshot())
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	loaded, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Nil(loaded)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateGroupStatus_StaleWriterLoses() {
	ctx := context.Background()

	aggregate, groups := suite.placedOrder(1)
	suite.Require().NoError(suite.repository.Add(ctx, aggregate, groups))

	group, err := suite.repository.GetGroup(ctx, groups[0].ID())
	suite.Require().NoError(err)

	expected := group.Status()
	suite.Require().NoError(group.Accept(kernel.NewUUID(), time.Now()))
	suite.Require().NoError(suite.repository.UpdateGroupStatus(ctx, group, expected))

	// A writer that read the group before the accept carries a stale expected
	// status and must not overwrite the accepted state.
	stale, err := order.RestoreOrderGroup(
		group.ID(), group.OrderID(), group.FulfillingOrgID(),
		order.StatusRejected, group.Services(), nil, nil, nil, "")
	suite.Require().NoError(err)

	err = suite.repository.UpdateGroupStatus(ctx, stale, order.StatusPending)
	suite.Require().ErrorIs(err, errs.ErrConcurrentModification)

	reloaded, err := suite.repository.GetGroup(ctx, group.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusAccepted, reloaded.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateGroupStatus_ConcurrentWritersSerialize() {
	ctx := context.Background()

	aggregate, groups := suite.placedOrder(1)
	suite.Require().NoError(suite.repository.Add(ctx, aggregate, groups))
	groupID := groups[0].ID()

	accepting, err := suite.repository.GetGroup(ctx, groupID)
	suite.Require().NoError(err)
	rejecting, err := suite.repository.GetGroup(ctx, groupID)
	suite.Require().NoError(err)

	suite.Require().NoError(accepting.Accept(kernel.NewUUID(), time.Now()))
	suite.Require().NoError(rejecting.Reject(time.Now()))

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i, g := range []*order.OrderGroup{accepting, rejecting} {
		wg.Add(1)
		go func(slot int, g *order.OrderGroup) {
			defer wg.Done()
			results[slot] = suite.repository.UpdateGroupStatus(ctx, g, order.StatusPending)
		}(i, g)
	}
	wg.Wait()

	var wins, losses int
	for _, result := range results {
		if result == nil {
			wins++
		} else {
			suite.Require().ErrorIs(result, errs.ErrConcurrentModification)
			losses++
		}
	}
	suite.Equal(1, wins)
	suite.Equal(1, losses)

	reloaded, err := suite.repository.GetGroup(ctx, groupID)
	suite.Require().NoError(err)
	suite.Contains([]order.Status{order.StatusAccepted, order.StatusRejected}, reloaded.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateGroupServiceStatus_StaleWriterLoses() {
	ctx := context.Background()

	aggregate, groups := suite.placedOrder(1)
	suite.Require().NoError(suite.repository.Add(ctx, aggregate, groups))

	group, err := suite.repository.GetGroup(ctx, groups[0].ID())
	suite.Require().NoError(err)
	line := group.Services()[0]

	expected := line.Status()
	suite.Require().NoError(line.Transition(order.StatusInProgress))
	suite.Require().NoError(
		suite.repository.UpdateGroupServiceStatus(ctx, group.ID(), line, expected))

	err = suite.repository.UpdateGroupServiceStatus(ctx, group.ID(), line, order.StatusPending)
	suite.Require().ErrorIs(err, errs.ErrConcurrentModification)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDeleteGroup_OnlyPendingGroupsAreRemoved() {
	ctx := context.Background()

	aggregate, groups := suite.placedOrder(2)
	suite.Require().NoError(suite.repository.Add(ctx, aggregate, groups))

	accepted, err := suite.repository.GetGroup(ctx, groups[0].ID())
	suite.Require().NoError(err)
	suite.Require().NoError(accepted.Accept(kernel.NewUUID(), time.Now()))
	suite.Require().NoError(suite.repository.UpdateGroupStatus(ctx, accepted, order.StatusPending))

	err = suite.repository.DeleteGroup(ctx, accepted.ID())
	suite.Require().ErrorIs(err, errs.ErrConcurrentModification)

	suite.Require().NoError(suite.repository.DeleteGroup(ctx, groups[1].ID()))

	remaining, err := suite.repository.GetGroupsForOrder(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Require().Len(remaining, 1)
	suite.True(remaining[0].ID().IsEqual(accepted.ID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetOrdersNeedingRollup_FindsDivergedOrders() {
	ctx := context.Background()

	// Diverged: the group was accepted but the order still says pending.
	diverged, divergedGroups := suite.placedOrder(1)
	suite.Require().NoError(suite.repository.Add(ctx, diverged, divergedGroups))

	g, err := suite.repository.GetGroup(ctx, divergedGroups[0].ID())
	suite.Require().NoError(err)
	suite.Require().NoError(g.Accept(kernel.NewUUID(), time.Now()))
	suite.Require().NoError(suite.repository.UpdateGroupStatus(ctx, g, order.StatusPending))

	// Consistent: untouched pending order with pending groups.
	consistent, consistentGroups := suite.placedOrder(1)
	suite.Require().NoError(suite.repository.Add(ctx, consistent, consistentGroups))

	needing, err := suite.repository.GetOrdersNeedingRollup(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(needing, 1)
	suite.True(needing[0].ID().IsEqual(diverged.ID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) placedOrder(groupCount int) (*order.Order, []*order.OrderGroup) {
	aggregate, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(err)

	groups := make([]*order.OrderGroup, 0, groupCount)
	for range groupCount {
		line, lineErr := order.NewOrderGroupService(kernel.NewUUID(), kernel.NewUUID(), 50000)
		suite.Require().NoError(lineErr)
		g, groupErr := order.NewOrderGroup(
			kernel.NewUUID(), aggregate.ID(), kernel.NewUUID(), []*order.OrderGroupService{line})
		suite.Require().NoError(groupErr)
		groups = append(groups, g)
	}

	suite.Require().NoError(aggregate.Reconcile(groups))
	return aggregate, groups
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
