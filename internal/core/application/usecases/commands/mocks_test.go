package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/PortzApp/portzapp-web-sub002/internal/core/application/usecases/commands"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/actor"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/chat"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/joinrequest"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/kernel"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/order"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/service"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/vessel"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/wizard"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/ports"
)

var errNotStubbed = errors.New("not implemented in mock")

type MockActorRepository struct{ mock.Mock }

func (m *MockActorRepository) Get(ctx context.Context, id kernel.UUID) (*actor.Actor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*actor.Actor), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order, groups []*order.OrderGroup) error {
	args := m.Called(ctx, o, groups)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetGroup(ctx context.Context, id kernel.UUID) (*order.OrderGroup, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.OrderGroup), args.Error(1)
}

func (m *MockOrderRepository) GetGroupsForOrder(ctx context.Context, orderID kernel.UUID) ([]*order.OrderGroup, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.OrderGroup), args.Error(1)
}

func (m *MockOrderRepository) UpdateGroupStatus(ctx context.Context, group *order.OrderGroup, expected order.Status) error {
	args := m.Called(ctx, group, expected)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateGroupServiceStatus(
	ctx context.Context,
	groupID kernel.UUID,
	line *order.OrderGroupService,
	expected order.Status,
) error {
	args := m.Called(ctx, groupID, line, expected)
	return args.Error(0)
}

func (m *MockOrderRepository) DeleteGroup(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) GetOrdersNeedingRollup(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockServiceRepository struct{ mock.Mock }

func (m *MockServiceRepository) Add(ctx context.Context, s *service.Service) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockServiceRepository) Update(_ context.Context, _ *service.Service) error {
	return errNotStubbed
}

func (m *MockServiceRepository) Get(_ context.Context, _ kernel.UUID) (*service.Service, error) {
	return nil, errNotStubbed
}

func (m *MockServiceRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*service.Service, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*service.Service), args.Error(1)
}

type MockVesselRepository struct{ mock.Mock }

func (m *MockVesselRepository) Add(ctx context.Context, v *vessel.Vessel) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVesselRepository) Update(_ context.Context, _ *vessel.Vessel) error {
	return errNotStubbed
}

func (m *MockVesselRepository) Get(ctx context.Context, id kernel.UUID) (*vessel.Vessel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vessel.Vessel), args.Error(1)
}

type MockJoinRequestRepository struct{ mock.Mock }

func (m *MockJoinRequestRepository) Add(_ context.Context, _ *joinrequest.JoinRequest) error {
	return errNotStubbed
}

func (m *MockJoinRequestRepository) Update(ctx context.Context, r *joinrequest.JoinRequest) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockJoinRequestRepository) Get(ctx context.Context, id kernel.UUID) (*joinrequest.JoinRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*joinrequest.JoinRequest), args.Error(1)
}

func (m *MockJoinRequestRepository) GetPendingForOrganization(
	_ context.Context, _ kernel.UUID,
) ([]*joinrequest.JoinRequest, error) {
	return nil, errNotStubbed
}

type MockWizardSessionRepository struct{ mock.Mock }

func (m *MockWizardSessionRepository) Add(_ context.Context, _ *wizard.Session) error {
	return errNotStubbed
}

func (m *MockWizardSessionRepository) Update(ctx context.Context, s *wizard.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockWizardSessionRepository) Get(ctx context.Context, id kernel.UUID) (*wizard.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*wizard.Session), args.Error(1)
}

type MockConversationRepository struct{ mock.Mock }

func (m *MockConversationRepository) Add(ctx context.Context, c *chat.Conversation) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockConversationRepository) Update(_ context.Context, _ *chat.Conversation) error {
	return errNotStubbed
}

func (m *MockConversationRepository) GetByOrderGroup(_ context.Context, _ kernel.UUID) (*chat.Conversation, error) {
	return nil, errNotStubbed
}

func (m *MockConversationRepository) AddMessage(_ context.Context, _ kernel.UUID, _ chat.Message) error {
	return errNotStubbed
}

// fakeUoW satisfies every unit of work composition the handlers use. The
// transaction methods count calls; the repositories are plugged in per test.
type fakeUoW struct {
	begun, committed, rolledBack int

	actors        *MockActorRepository
	orders        *MockOrderRepository
	services      *MockServiceRepository
	vessels       *MockVesselRepository
	requests      *MockJoinRequestRepository
	sessions      *MockWizardSessionRepository
	conversations *MockConversationRepository
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{
		actors:        new(MockActorRepository),
		orders:        new(MockOrderRepository),
		services:      new(MockServiceRepository),
		vessels:       new(MockVesselRepository),
		requests:      new(MockJoinRequestRepository),
		sessions:      new(MockWizardSessionRepository),
		conversations: new(MockConversationRepository),
	}
}

func (f *fakeUoW) Begin(context.Context) error    { f.begun++; return nil }
func (f *fakeUoW) Commit(context.Context) error   { f.committed++; return nil }
func (f *fakeUoW) Rollback(context.Context) error { f.rolledBack++; return nil }

func (f *fakeUoW) ActorRepository() ports.ActorRepository                 { return f.actors }
func (f *fakeUoW) OrderRepository() ports.OrderRepository                 { return f.orders }
func (f *fakeUoW) ServiceRepository() ports.ServiceRepository             { return f.services }
func (f *fakeUoW) VesselRepository() ports.VesselRepository               { return f.vessels }
func (f *fakeUoW) JoinRequestRepository() ports.JoinRequestRepository     { return f.requests }
func (f *fakeUoW) WizardSessionRepository() ports.WizardSessionRepository { return f.sessions }
func (f *fakeUoW) ConversationRepository() ports.ConversationRepository   { return f.conversations }

type fakeOrderUoWFactory struct{ uow *fakeUoW }

func (f fakeOrderUoWFactory) Create() commands.OrderUoW { return f.uow }

type fakePlaceOrderUoWFactory struct{ uow *fakeUoW }

func (f fakePlaceOrderUoWFactory) Create() commands.PlaceOrderUoW { return f.uow }

type fakeCatalogUoWFactory struct{ uow *fakeUoW }

func (f fakeCatalogUoWFactory) Create() commands.CatalogUoW { return f.uow }

type fakeFleetUoWFactory struct{ uow *fakeUoW }

func (f fakeFleetUoWFactory) Create() commands.FleetUoW { return f.uow }

type fakeMembershipUoWFactory struct{ uow *fakeUoW }

func (f fakeMembershipUoWFactory) Create() commands.MembershipUoW { return f.uow }

type fakeRollupUoWFactory struct{ uow *fakeUoW }

func (f fakeRollupUoWFactory) Create() commands.RollupUoW { return f.uow }

func nowForTest() time.Time { return time.Now() }

// placedOrder builds a pending order with fresh identifiers.
func placedOrder(t *testing.T) *order.Order {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	return o
}

// capturingPublisher records published events for assertions.
type capturingPublisher struct {
	events []ports.OrderStatusChanged
}

func (p *capturingPublisher) Publish(_ context.Context, event ports.OrderStatusChanged) {
	p.events = append(p.events, event)
}
