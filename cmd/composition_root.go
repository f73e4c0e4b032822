package cmd

import (
	"log/slog"

	"gorm.io/gorm"

	"github.com/PortzApp/portzapp-web-sub002/internal/adapters/out/notify"
	"github.com/PortzApp/portzapp-web-sub002/internal/adapters/out/postgres"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/application/usecases/commands"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/application/usecases/queries"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/ports"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.OrderStatusPublisher
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  notify.NewSlogPublisher(logger),
	}
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.PlaceOrderUoWFactory = FuncPlaceOrderUoWFactory(func() commands.PlaceOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateAcceptOrderGroupCommandHandler() commands.AcceptOrderGroupCommandHandler {
	return commands.NewAcceptOrderGroupCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateRejectOrderGroupCommandHandler() commands.RejectOrderGroupCommandHandler {
	return commands.NewRejectOrderGroupCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateStartOrderGroupCommandHandler() commands.StartOrderGroupCommandHandler {
	return commands.NewStartOrderGroupCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateCompleteOrderGroupCommandHandler() commands.CompleteOrderGroupCommandHandler {
	return commands.NewCompleteOrderGroupCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateDeleteOrderGroupCommandHandler() commands.DeleteOrderGroupCommandHandler {
	return commands.NewDeleteOrderGroupCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateUpdateOrderGroupServiceCommandHandler() commands.UpdateOrderGroupServiceCommandHandler {
	return commands.NewUpdateOrderGroupServiceCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateCreateServiceCommandHandler() commands.CreateServiceCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateServiceCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateVesselCommandHandler() commands.CreateVesselCommandHandler {
	var f commands.FleetUoWFactory = FuncFleetUoWFactory(func() commands.FleetUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateVesselCommandHandler(f)
}

func (c *CompositionRoot) CreateApproveJoinRequestCommandHandler() commands.ApproveJoinRequestCommandHandler {
	return commands.NewApproveJoinRequestCommandHandler(c.membershipUoWFactory())
}

func (c *CompositionRoot) CreateRejectJoinRequestCommandHandler() commands.RejectJoinRequestCommandHandler {
	return commands.NewRejectJoinRequestCommandHandler(c.membershipUoWFactory())
}

func (c *CompositionRoot) CreateWithdrawJoinRequestCommandHandler() commands.WithdrawJoinRequestCommandHandler {
	return commands.NewWithdrawJoinRequestCommandHandler(c.membershipUoWFactory())
}

func (c *CompositionRoot) CreateReconcileOrdersCommandHandler() commands.ReconcileOrdersCommandHandler {
	var f commands.RollupUoWFactory = FuncRollupUoWFactory(func() commands.RollupUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReconcileOrdersCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrdersForActorQueryHandler() queries.GetOrdersForActorQueryHandler {
	return queries.NewGetOrdersForActorQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderGroupsForOrganizationQueryHandler() queries.GetOrderGroupsForOrganizationQueryHandler {
	return queries.NewGetOrderGroupsForOrganizationQueryHandler(c.gormDB)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) membershipUoWFactory() commands.MembershipUoWFactory {
	return FuncMembershipUoWFactory(func() commands.MembershipUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPlaceOrderUoWFactory func() commands.PlaceOrderUoW

func (f FuncPlaceOrderUoWFactory) Create() commands.PlaceOrderUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncFleetUoWFactory func() commands.FleetUoW

func (f FuncFleetUoWFactory) Create() commands.FleetUoW {
	return f()
}

type FuncMembershipUoWFactory func() commands.MembershipUoW

func (f FuncMembershipUoWFactory) Create() commands.MembershipUoW {
	return f()
}

type FuncRollupUoWFactory func() commands.RollupUoW

func (f FuncRollupUoWFactory) Create() commands.RollupUoW {
	return f()
}
