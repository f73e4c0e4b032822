// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. The unit of work maintains the set of aggregates touched by one
// business transaction and coordinates writing their changes atomically.
//
// Key Features:
//   - Transaction management across multiple repositories
//   - Aggregate tracking for domain event processing
//   - Proper isolation between concurrent operations
//   - Repository factory pattern for consistent database connections
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Add(ctx, aggregate, groups); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance provides an isolated transaction; concurrent
// goroutines must use separate instances. Status transitions on order groups
// additionally use compare-and-swap guards inside the repositories, so two
// transactions racing on the same group serialize at the row level.
package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/PortzApp/portzapp-web-sub002/internal/adapters/out/postgres/actorrepo"
	"github.com/PortzApp/portzapp-web-sub002/internal/adapters/out/postgres/chatrepo"
	"github.com/PortzApp/portzapp-web-sub002/internal/adapters/out/postgres/joinrequestrepo"
	"github.com/PortzApp/portzapp-web-sub002/internal/adapters/out/postgres/orderrepo"
	"github.com/PortzApp/portzapp-web-sub002/internal/adapters/out/postgres/servicerepo"
	"github.com/PortzApp/portzapp-web-sub002/internal/adapters/out/postgres/vesselrepo"
	"github.com/PortzApp/portzapp-web-sub002/internal/adapters/out/postgres/wizardrepo"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/kernel"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/ports"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{}
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database
// connections. Each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances. The provided database connection is shared by all instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance ready for business transaction
// management. Each instance maintains its own transaction state and
// aggregate tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate
// changes for business operations. The tracked aggregates become available
// after commit, enabling patterns like domain event publishing.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Multiple calls on the same instance are safe and will not nest.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns error if no active transaction exists or if the commit fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns error if no active transaction exists or if the rollback fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// conn returns the active transaction, or the main connection when no
// transaction has been started.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// ActorRepository provides membership snapshot loading within the unit of work.
func (uow *GormUnitOfWork) ActorRepository() ports.ActorRepository {
	return actorrepo.NewGormActorRepository(uow.conn())
}

// OrderRepository provides order persistence operations within the unit of work.
// The returned repository tracks all order aggregates added or updated.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// ServiceRepository provides catalog service persistence within the unit of work.
func (uow *GormUnitOfWork) ServiceRepository() ports.ServiceRepository {
	return servicerepo.NewGormServiceRepository(uow.conn(), uow)
}

// VesselRepository provides vessel persistence within the unit of work.
func (uow *GormUnitOfWork) VesselRepository() ports.VesselRepository {
	return vesselrepo.NewGormVesselRepository(uow.conn(), uow)
}

// JoinRequestRepository provides join request persistence within the unit of work.
func (uow *GormUnitOfWork) JoinRequestRepository() ports.JoinRequestRepository {
	return joinrequestrepo.NewGormJoinRequestRepository(uow.conn(), uow)
}

// WizardSessionRepository provides wizard session persistence within the unit of work.
func (uow *GormUnitOfWork) WizardSessionRepository() ports.WizardSessionRepository {
	return wizardrepo.NewGormWizardSessionRepository(uow.conn(), uow)
}

// ConversationRepository provides conversation persistence within the unit of work.
func (uow *GormUnitOfWork) ConversationRepository() ports.ConversationRepository {
	return chatrepo.NewGormConversationRepository(uow.conn(), uow)
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Repository implementations call this when aggregates are added or
// updated; the collected set supports post-commit processing.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
